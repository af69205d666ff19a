package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	app "vision-speech/internal/application"
	"vision-speech/internal/domain/entity"
)

const (
	msgStart = `👋 Привет! Я превращаю фотографию в арабскую речь.

📸 Отправьте мне фото, и я:
1️⃣ опишу его на английском
2️⃣ переведу описание на арабский
3️⃣ озвучу перевод

📋 Команды:
/help — справка`

	msgHelp = `ℹ️ Как пользоваться ботом:

Отправьте фото (или изображение файлом) и дождитесь ответа.
Вы получите подпись, перевод и аудио с озвучкой.

💡 Поддерживаются JPEG, PNG, GIF, WebP и BMP.`

	msgSendPhoto       = "📸 Пожалуйста, отправьте фото."
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgProcessing      = "⏳ Обрабатываю изображение..."
	msgProcessingError = "⚠️ Не удалось обработать изображение. Попробуйте другое фото."
	msgBadImage        = "⚠️ Не получилось прочитать изображение. Отправьте JPEG или PNG."
	msgTooLarge        = "⚠️ Изображение слишком большое. Уменьшите его и отправьте снова."
)

// Bot представляет Telegram-бота
type Bot struct {
	api      *tgbotapi.BotAPI
	frontend *app.Frontend
	http     *http.Client
	timeout  time.Duration
	logger   *log.Logger
}

// NewBot создаёт нового бота
func NewBot(token string, frontend *app.Frontend, timeout time.Duration, logger *log.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	logger = logger.WithPrefix("telegram")

	logger.Info("authorized", "account", api.Self.UserName)

	return &Bot{
		api:      api,
		frontend: frontend,
		http:     &http.Client{Timeout: time.Minute},
		timeout:  timeout,
		logger:   logger,
	}, nil
}

// Run запускает основной цикл обработки сообщений до отмены контекста
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	// Обработка команд
	if msg.IsCommand() {
		b.handleCommand(msg)
		return
	}

	if fileID, ok := imageFileID(msg); ok {
		b.handleImage(ctx, msg, fileID)
		return
	}

	// Текстовое сообщение (не команда)
	b.sendMessage(msg.Chat.ID, msgSendPhoto)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.sendMessage(msg.Chat.ID, msgStart)
	case "help":
		b.sendMessage(msg.Chat.ID, msgHelp)
	default:
		b.sendMessage(msg.Chat.ID, msgUnknownCommand)
	}
}

// handleImage скачивает изображение, прогоняет через конвейер и отправляет текст и аудио
func (b *Bot) handleImage(ctx context.Context, msg *tgbotapi.Message, fileID string) {
	b.sendMessage(msg.Chat.ID, msgProcessing)

	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	imageData, err := b.downloadFile(ctx, fileID)
	if err != nil {
		b.logger.Error("download failed", "chat", msg.Chat.ID, "err", err)
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		return
	}
	b.logger.Debug("image received", "chat", msg.Chat.ID, "size", humanize.Bytes(uint64(len(imageData))))

	result, err := b.frontend.ProcessBytes(ctx, imageData)
	if err != nil {
		b.logger.Error("processing failed", "chat", msg.Chat.ID, "err", err)
		b.sendMessage(msg.Chat.ID, replyForError(err))
		return
	}

	b.sendMessage(msg.Chat.ID, formatReply(result))

	audio := tgbotapi.NewAudio(msg.Chat.ID, tgbotapi.FilePath(result.AudioPath))
	audio.Title = result.Caption
	audio.ReplyToMessageID = msg.MessageID
	if _, err := b.api.Send(audio); err != nil {
		b.logger.Error("send audio failed", "chat", msg.Chat.ID, "err", err)
	}
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(b.api.Token), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := b.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("send message failed", "chat", chatID, "err", err)
	}
}

// imageFileID возвращает файл с максимальным разрешением либо документ-изображение
func imageFileID(msg *tgbotapi.Message) (string, bool) {
	if len(msg.Photo) > 0 {
		return msg.Photo[len(msg.Photo)-1].FileID, true
	}
	if msg.Document != nil && strings.HasPrefix(msg.Document.MimeType, "image/") {
		return msg.Document.FileID, true
	}
	return "", false
}

func formatReply(result *entity.Result) string {
	return fmt.Sprintf("📝 Caption: %s\n🌍 Translation: %s", result.Caption, result.Translation)
}

func replyForError(err error) string {
	switch {
	case errors.Is(err, entity.ErrEmptyImage),
		errors.Is(err, entity.ErrUnsupportedImage),
		errors.Is(err, entity.ErrImageTooSmall):
		return msgBadImage
	case errors.Is(err, entity.ErrImageTooLarge):
		return msgTooLarge
	default:
		return msgProcessingError
	}
}
