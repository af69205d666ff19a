package speech

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"vision-speech/internal/domain/entity"
	"vision-speech/internal/infrastructure/storage"
)

type ttsServer struct {
	mu      sync.Mutex
	queries []url.Values
	status  int
}

func (s *ttsServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.queries = append(s.queries, r.URL.Query())
	s.mu.Unlock()

	if s.status != 0 {
		w.WriteHeader(s.status)
		w.Write([]byte("blocked"))
		return
	}
	w.Header().Set("Content-Type", "audio/mpeg")
	w.Write([]byte("ID3:" + r.URL.Query().Get("idx") + ";"))
}

func newGoogleEngine(t *testing.T, srvURL string, slow bool) (*GoogleEngine, *storage.FileAudioStore) {
	t.Helper()
	store, err := storage.NewFileAudioStore(t.TempDir())
	require.NoError(t, err)
	e, err := NewGoogleEngine(Config{URL: srvURL, Slow: slow, RequestsPerMinute: 60000}, store, log.New(io.Discard))
	require.NoError(t, err)
	return e, store
}

func TestGoogleEngine_Speak(t *testing.T) {
	tts := &ttsServer{}
	srv := httptest.NewServer(tts)
	defer srv.Close()

	e, store := newGoogleEngine(t, srv.URL, false)
	path, err := e.Speak(context.Background(), "كلب يجلس على العشب. قطة تنام.")
	require.NoError(t, err)
	require.Equal(t, store.Dir(), filepath.Dir(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "ID3:0;ID3:1;", string(data))

	require.Len(t, tts.queries, 2)
	require.Equal(t, "ar", tts.queries[0].Get("tl"))
	require.Equal(t, "tw-ob", tts.queries[0].Get("client"))
	require.Equal(t, "2", tts.queries[0].Get("total"))
	require.Equal(t, "1", tts.queries[0].Get("ttsspeed"))
	require.Equal(t, "كلب يجلس على العشب.", tts.queries[0].Get("q"))
}

func TestGoogleEngine_SpeakTwiceGivesDistinctFiles(t *testing.T) {
	srv := httptest.NewServer(&ttsServer{})
	defer srv.Close()

	e, _ := newGoogleEngine(t, srv.URL, true)
	first, err := e.Speak(context.Background(), "مرحبا")
	require.NoError(t, err)
	second, err := e.Speak(context.Background(), "مرحبا")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.FileExists(t, first)
	require.FileExists(t, second)
}

func TestGoogleEngine_SpeakEmpty(t *testing.T) {
	e, _ := newGoogleEngine(t, "http://127.0.0.1:0", false)
	_, err := e.Speak(context.Background(), " ")
	require.ErrorIs(t, err, entity.ErrEmptyText)
}

func TestGoogleEngine_BackendFailureRemovesFile(t *testing.T) {
	srv := httptest.NewServer(&ttsServer{status: http.StatusTooManyRequests})
	defer srv.Close()

	e, store := newGoogleEngine(t, srv.URL, false)
	_, err := e.Speak(context.Background(), "مرحبا")

	var be *entity.BackendError
	require.True(t, errors.As(err, &be))
	require.Equal(t, http.StatusTooManyRequests, be.Status)

	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestNewGoogleEngine_UnsupportedLanguage(t *testing.T) {
	store, err := storage.NewFileAudioStore(t.TempDir())
	require.NoError(t, err)

	_, err = NewGoogleEngine(Config{Language: "xx"}, store, nil)
	require.ErrorIs(t, err, entity.ErrUnsupportedLanguage)
}
