package container

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"vision-speech/config"
)

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		SourceLang:              "en_XX",
		TargetLang:              "ar_AR",
		SpeechEngine:            "google",
		SpeechLang:              "ar",
		SpeechRequestsPerMinute: 50,
		OutputDir:               t.TempDir(),
		AudioTTL:                time.Hour,
		HTTPTimeout:             time.Second,
		CaptionMaxSide:          384,
		CaptionMinSide:          1,
	}
}

func TestBuild(t *testing.T) {
	c, err := Build(testConfig(t), log.New(io.Discard))
	require.NoError(t, err)
	require.NotNil(t, c.Pipeline)
	require.NotNil(t, c.Frontend)
	require.NotNil(t, c.Janitor)
	require.NotNil(t, c.AudioStore)
}

func TestBuild_InvalidLanguages(t *testing.T) {
	cfg := testConfig(t)
	cfg.TargetLang = cfg.SourceLang
	_, err := Build(cfg, log.New(io.Discard))
	require.Error(t, err)

	cfg = testConfig(t)
	cfg.SpeechLang = "klingon"
	_, err = Build(cfg, log.New(io.Discard))
	require.Error(t, err)
}
