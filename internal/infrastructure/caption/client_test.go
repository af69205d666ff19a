package caption

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"vision-speech/internal/domain/entity"
	"vision-speech/internal/infrastructure/vision"
)

func testImage(w, h int) entity.Image {
	return entity.Image{Bitmap: image.NewRGBA(image.Rect(0, 0, w, h)), Format: "png"}
}

func newTestClient(url string) *Client {
	return NewClient(Config{URL: url, Token: "hf_test", Timeout: time.Second}, vision.NewPreparer(64, 8), log.New(io.Discard))
}

func TestClient_Caption(t *testing.T) {
	var body []byte
	var contentType, auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		contentType = r.Header.Get("Content-Type")
		auth = r.Header.Get("Authorization")
		w.Write([]byte(`[{"generated_text":"  a dog sitting on the grass "}]`))
	}))
	defer srv.Close()

	caption, err := newTestClient(srv.URL).Caption(context.Background(), testImage(200, 100))
	require.NoError(t, err)
	require.Equal(t, "a dog sitting on the grass", caption)
	require.Equal(t, "image/jpeg", contentType)
	require.Equal(t, "Bearer hf_test", auth)

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(body))
	require.NoError(t, err)
	require.Equal(t, 64, cfg.Width)
	require.Equal(t, 32, cfg.Height)
}

func TestClient_CaptionEmptyImageNeverCallsModel(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Caption(context.Background(), entity.Image{})
	require.ErrorIs(t, err, entity.ErrEmptyImage)
	require.False(t, called)
}

func TestClient_CaptionEmptyResult(t *testing.T) {
	for _, payload := range []string{`[]`, `[{"generated_text":"   "}]`} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(payload))
		}))

		_, err := newTestClient(srv.URL).Caption(context.Background(), testImage(20, 20))
		require.ErrorIs(t, err, entity.ErrEmptyCaption, payload)
		srv.Close()
	}
}

func TestClient_CaptionBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad image", http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Caption(context.Background(), testImage(20, 20))
	require.True(t, entity.IsBackendError(err))
}
