package app

import (
	"context"
	"errors"
	"image"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"vision-speech/internal/domain/entity"
)

func testImage() entity.Image {
	return entity.Image{Bitmap: image.NewRGBA(image.Rect(0, 0, 32, 32)), Format: "png"}
}

func newTestPipeline(t *testing.T) (*Pipeline, *fakeCaptioner, *fakeTranslator, *fakeSpeaker, *[]string) {
	t.Helper()
	calls := &[]string{}
	c := &fakeCaptioner{caption: "a dog on the grass", calls: calls}
	tr := &fakeTranslator{calls: calls}
	s := &fakeSpeaker{dir: t.TempDir(), calls: calls}
	return NewPipeline(c, tr, s, log.New(io.Discard)), c, tr, s, calls
}

func TestPipeline_Process(t *testing.T) {
	p, _, tr, s, calls := newTestPipeline(t)

	result, err := p.Process(context.Background(), testImage())
	require.NoError(t, err)

	require.Equal(t, []string{"caption", "translate", "speak"}, *calls)
	require.Equal(t, "a dog on the grass", result.Caption)
	require.Equal(t, "a dog on the grass", tr.input)
	require.Equal(t, "ترجمة: a dog on the grass", result.Translation)
	require.Equal(t, result.Translation, s.input)
	require.FileExists(t, result.AudioPath)
	require.Equal(t, "b", result.ID)
}

func TestPipeline_TwiceGivesDistinctAudio(t *testing.T) {
	p, _, _, _, _ := newTestPipeline(t)

	first, err := p.Process(context.Background(), testImage())
	require.NoError(t, err)
	second, err := p.Process(context.Background(), testImage())
	require.NoError(t, err)

	require.NotEqual(t, first.AudioPath, second.AudioPath)
	require.FileExists(t, first.AudioPath)
	require.FileExists(t, second.AudioPath)
}

func TestPipeline_EmptyImageFailsAtCaption(t *testing.T) {
	p, _, _, _, calls := newTestPipeline(t)

	result, err := p.Process(context.Background(), entity.Image{})
	require.ErrorIs(t, err, entity.ErrEmptyImage)
	require.Nil(t, result)
	require.Equal(t, []string{"caption"}, *calls)
}

func TestPipeline_StageErrorsPropagateUnmodified(t *testing.T) {
	boom := &entity.BackendError{Service: "translate", Status: 503, Body: "loading"}

	p, _, tr, _, calls := newTestPipeline(t)
	tr.err = boom

	_, err := p.Process(context.Background(), testImage())
	require.Same(t, boom, err)
	require.Equal(t, []string{"caption", "translate"}, *calls)

	p, _, _, s, calls := newTestPipeline(t)
	speakErr := errors.New("speech backend unreachable")
	s.err = speakErr

	_, err = p.Process(context.Background(), testImage())
	require.Same(t, speakErr, err)
	require.Equal(t, []string{"caption", "translate", "speak"}, *calls)
}

func TestPipeline_NotConfigured(t *testing.T) {
	_, err := NewPipeline(nil, nil, nil, nil).Process(context.Background(), testImage())
	require.Error(t, err)
}
