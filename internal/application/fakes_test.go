package app

import (
	"context"
	"os"
	"path/filepath"

	"vision-speech/internal/domain/entity"
)

type fakeCaptioner struct {
	caption string
	err     error
	calls   *[]string
}

func (f *fakeCaptioner) Caption(ctx context.Context, img entity.Image) (string, error) {
	*f.calls = append(*f.calls, "caption")
	if err := img.Validate(); err != nil {
		return "", err
	}
	return f.caption, f.err
}

type fakeTranslator struct {
	err   error
	input string
	calls *[]string
}

func (f *fakeTranslator) Translate(ctx context.Context, text string) (string, error) {
	*f.calls = append(*f.calls, "translate")
	f.input = text
	if f.err != nil {
		return "", f.err
	}
	return "ترجمة: " + text, nil
}

type fakeSpeaker struct {
	dir   string
	n     int
	err   error
	input string
	calls *[]string
}

func (f *fakeSpeaker) Speak(ctx context.Context, text string) (string, error) {
	*f.calls = append(*f.calls, "speak")
	f.input = text
	if f.err != nil {
		return "", f.err
	}
	f.n++
	path := filepath.Join(f.dir, string(rune('a'+f.n))+".mp3")
	if err := os.WriteFile(path, []byte("ID3"), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
