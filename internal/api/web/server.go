// Package web отдаёт HTML-форму загрузки изображения и JSON API поверх конвейера.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	app "vision-speech/internal/application"
	"vision-speech/internal/domain/entity"
	"vision-speech/internal/domain/port"
)

// Server HTTP-интерфейс приложения
type Server struct {
	frontend  *app.Frontend
	store     port.AudioStore
	logger    *log.Logger
	maxUpload int64
	timeout   time.Duration
	mux       *http.ServeMux
}

type page struct {
	Result *entity.Result
	Error  string
}

type processResponse struct {
	ID          string `json:"id"`
	Caption     string `json:"caption"`
	Translation string `json:"translation"`
	AudioURL    string `json:"audio_url"`
	ElapsedMS   int64  `json:"elapsed_ms"`
}

// errBadForm тело запроса не удалось разобрать как multipart-форму
var errBadForm = errors.New("malformed multipart form")

type errorResponse struct {
	Error string `json:"error"`
}

// NewServer регистрирует маршруты.
func NewServer(frontend *app.Frontend, store port.AudioStore, maxUpload int64, timeout time.Duration, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		frontend:  frontend,
		store:     store,
		logger:    logger.WithPrefix("web"),
		maxUpload: maxUpload,
		timeout:   timeout,
		mux:       http.NewServeMux(),
	}

	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("POST /process", s.handleProcessForm)
	s.mux.HandleFunc("POST /api/v1/process", s.handleProcessAPI)
	s.mux.HandleFunc("GET /results/{id}", s.handleResult)
	s.mux.HandleFunc("GET /audio/{name}", s.handleAudio)
	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	return s
}

// ServeHTTP реализует http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Run слушает addr до отмены контекста, затем корректно завершает соединения.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, page{})
}

func (s *Server) handleProcessForm(w http.ResponseWriter, r *http.Request) {
	result, err := s.process(w, r)
	if err != nil {
		s.render(w, statusFor(err), page{Error: messageFor(err)})
		return
	}
	s.render(w, http.StatusOK, page{Result: result})
}

func (s *Server) handleProcessAPI(w http.ResponseWriter, r *http.Request) {
	result, err := s.process(w, r)
	if err != nil {
		writeJSON(w, statusFor(err), errorResponse{Error: messageFor(err)})
		return
	}
	writeJSON(w, http.StatusOK, processResponse{
		ID:          result.ID,
		Caption:     result.Caption,
		Translation: result.Translation,
		AudioURL:    "/audio/" + result.AudioName(),
		ElapsedMS:   result.Elapsed.Milliseconds(),
	})
}

func (s *Server) handleResult(w http.ResponseWriter, r *http.Request) {
	result, err := s.frontend.Result(r.Context(), r.PathValue("id"))
	if err != nil {
		s.render(w, statusFor(err), page{Error: messageFor(err)})
		return
	}
	s.render(w, http.StatusOK, page{Result: result})
}

func (s *Server) handleAudio(w http.ResponseWriter, r *http.Request) {
	path, err := s.store.Path(r.PathValue("name"))
	if err != nil {
		http.Error(w, messageFor(err), statusFor(err))
		return
	}
	w.Header().Set("Content-Type", "audio/mpeg")
	http.ServeFile(w, r, path)
}

// process читает поле image из multipart-формы и запускает конвейер с таймаутом.
func (s *Server) process(w http.ResponseWriter, r *http.Request) (*entity.Result, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		return nil, fmt.Errorf("%w: %w", errBadForm, err)
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, entity.ErrEmptyImage
		}
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("upload received", "name", header.Filename, "size", humanize.Bytes(uint64(len(data))))

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	result, err := s.frontend.ProcessBytes(ctx, data)
	if err != nil {
		s.logger.Error("processing failed", "name", header.Filename, "err", err)
		return nil, err
	}
	return result, nil
}

func (s *Server) render(w http.ResponseWriter, status int, p page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, p); err != nil {
		s.logger.Error("render failed", "err", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// statusFor сопоставляет ошибку конвейера HTTP-статусу
func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, entity.ErrEmptyImage),
		errors.Is(err, entity.ErrUnsupportedImage),
		errors.Is(err, entity.ErrImageTooSmall),
		errors.Is(err, entity.ErrImageTooLarge):
		return http.StatusUnprocessableEntity
	case errors.Is(err, entity.ErrResultNotFound),
		errors.Is(err, entity.ErrAudioNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case entity.IsBackendError(err),
		errors.Is(err, entity.ErrEmptyCaption),
		errors.Is(err, entity.ErrEmptyTranslation):
		return http.StatusBadGateway
	case errors.Is(err, http.ErrNotMultipart),
		errors.Is(err, http.ErrMissingBoundary),
		errors.Is(err, errBadForm):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// messageFor возвращает текст ошибки для пользователя без внутренних деталей
func messageFor(err error) string {
	switch statusFor(err) {
	case http.StatusRequestEntityTooLarge:
		return "image is too large"
	case http.StatusUnprocessableEntity, http.StatusNotFound:
		return err.Error()
	case http.StatusGatewayTimeout:
		return "processing timed out"
	case http.StatusBadGateway:
		return "a model backend failed, please try again later"
	case http.StatusBadRequest:
		return "expected a multipart form with an image field"
	default:
		return "internal error"
	}
}
