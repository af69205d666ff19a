package vision

import (
	"fmt"

	"vision-speech/internal/domain/entity"
	"vision-speech/internal/domain/port"
)

// Preparer приводит изображение к размеру входа модели подписи и кодирует в JPEG.
// Реализация Prepare выбирается тегом сборки: gocv или golang.org/x/image/draw.
type Preparer struct {
	MaxSide int // самая длинная сторона после масштабирования
	MinSide int // изображения меньше этого отклоняются, по умолчанию 1
	Quality int // качество JPEG
}

// NewPreparer создаёт препроцессор; нулевые значения заменяются значениями по умолчанию.
func NewPreparer(maxSide, minSide int) *Preparer {
	if maxSide <= 0 {
		maxSide = 384
	}
	if minSide <= 0 {
		minSide = 1
	}
	return &Preparer{
		MaxSide: maxSide,
		MinSide: minSide,
		Quality: 90,
	}
}

// check входной фильтр перед масштабированием.
func (p *Preparer) check(img entity.Image) error {
	if err := img.Validate(); err != nil {
		return err
	}
	if img.Width() < p.MinSide || img.Height() < p.MinSide {
		return fmt.Errorf("%w (%dx%d, min side %d)", entity.ErrImageTooSmall, img.Width(), img.Height(), p.MinSide)
	}
	return nil
}

// scaledSize уменьшает размеры с сохранением пропорций; увеличение не выполняется.
func scaledSize(w, h, maxSide int) (int, int) {
	if w <= maxSide && h <= maxSide {
		return w, h
	}
	scale := float64(maxSide) / float64(maxInt(w, h))
	newW := maxInt(1, int(float64(w)*scale))
	newH := maxInt(1, int(float64(h)*scale))
	return newW, newH
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Проверка реализации интерфейса
var _ port.ImagePreparer = (*Preparer)(nil)
