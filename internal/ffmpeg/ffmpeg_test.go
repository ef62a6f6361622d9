package ffmpeg

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaledDimensionsPortraitSource(t *testing.T) {
	// width < height: height is fixed to the canvas height
	w, h := ScaledDimensions(540, 960, 1080, 1920)
	assert.Equal(t, 1920, h)
	assert.Equal(t, 1080, w)

	// Narrower source keeps its aspect ratio on the free dimension
	w, h = ScaledDimensions(480, 960, 1080, 1920)
	assert.Equal(t, 1920, h)
	assert.Equal(t, 960, w)
}

func TestScaledDimensionsLandscapeSource(t *testing.T) {
	// width >= height: width is fixed to the canvas width
	w, h := ScaledDimensions(1920, 1080, 1080, 1920)
	assert.Equal(t, 1080, w)
	assert.Equal(t, 606, h) // 607.5 forced down to even

	// Square sources count as landscape
	w, h = ScaledDimensions(720, 720, 1080, 1920)
	assert.Equal(t, 1080, w)
	assert.Equal(t, 1080, h)
}

func TestScaledDimensionsWidePortraitOverflowsCanvas(t *testing.T) {
	// A portrait source wider than the canvas ratio scales past the canvas
	// width; the overflow is cropped away later, not squeezed.
	w, h := ScaledDimensions(1000, 1200, 1080, 1920)
	assert.Equal(t, 1920, h)
	assert.Equal(t, 1600, w)
}

func TestScaledDimensionsAreEven(t *testing.T) {
	w, h := ScaledDimensions(405, 720, 1080, 1920)
	assert.Zero(t, w%2)
	assert.Zero(t, h%2)
	assert.Equal(t, 1920, h)
}

func TestFitToCanvasCropsOverflow(t *testing.T) {
	// 1000x1200 portrait scaled for 1080x1920: 1600 wide, overflow cropped
	// to the canvas width, nothing left to pad.
	f := fitToCanvas(1600, 1920, 1080, 1920)
	assert.True(t, f.needsCrop())
	assert.Equal(t, 1080, f.CropWidth)
	assert.Equal(t, 1920, f.CropHeight)
	assert.False(t, f.needsPad())
}

func TestFitToCanvasPadsShortfall(t *testing.T) {
	// Narrow portrait: no crop, centered pad on the width.
	f := fitToCanvas(960, 1920, 1080, 1920)
	assert.False(t, f.needsCrop())
	assert.True(t, f.needsPad())
	assert.Equal(t, 60, f.PadLeft)
	assert.Equal(t, 0, f.PadTop)

	// Landscape on a portrait canvas: centered pad on the height.
	f = fitToCanvas(1080, 606, 1080, 1920)
	assert.False(t, f.needsCrop())
	assert.True(t, f.needsPad())
	assert.Equal(t, 0, f.PadLeft)
	assert.Equal(t, 657, f.PadTop)
}

func TestFitToCanvasExactFit(t *testing.T) {
	f := fitToCanvas(1080, 1920, 1080, 1920)
	assert.False(t, f.needsCrop())
	assert.False(t, f.needsPad())
}

func TestFadeStart(t *testing.T) {
	assert.Equal(t, 59.0, FadeStart(60, 1))
	assert.Equal(t, 0.0, FadeStart(0.5, 1))
	assert.Equal(t, 0.0, FadeStart(1, 1))
}

func TestAudioMixTracks(t *testing.T) {
	assert.Equal(t, 0, (&AudioMix{}).Tracks())
	assert.Equal(t, 1, (&AudioMix{MusicPath: "music.mp3"}).Tracks())
	assert.Equal(t, 2, (&AudioMix{MusicPath: "music.mp3", VoiceOverPath: "vo.wav"}).Tracks())
}

func TestFormatGain(t *testing.T) {
	assert.Equal(t, "0.25", formatGain(0.25))
	assert.Equal(t, "1", formatGain(1.0))
}

func TestWriteConcatListPreservesOrder(t *testing.T) {
	inputs := []string{"clip_001.mp4", "clip_002.mp4", "clip_003.mp4"}

	listPath, err := writeConcatList(inputs)
	require.NoError(t, err)
	defer os.Remove(listPath)

	data, err := os.ReadFile(listPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	for i, line := range lines {
		assert.True(t, strings.HasPrefix(line, "file '"))
		assert.Contains(t, line, inputs[i])
	}
}

func TestWriteConcatListEscapesQuotes(t *testing.T) {
	listPath, err := writeConcatList([]string{"it's a clip.mp4"})
	require.NoError(t, err)
	defer os.Remove(listPath)

	data, err := os.ReadFile(listPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `it'\''s a clip.mp4`)
}
