package ffmpeg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// exportArgs compiles the export graph for the mix and returns the ffmpeg
// command line it would run, without invoking ffmpeg.
func exportArgs(mix *AudioMix, videoDuration float64) string {
	out := ffmpeg.Output(
		[]*ffmpeg.Stream{ffmpeg.Input("timeline.mp4"), AudioGraph(mix, videoDuration)},
		"final_video.mp4",
	)
	return strings.Join(out.GetArgs(), " ")
}

func TestAudioGraphBothTracks(t *testing.T) {
	mix := &AudioMix{
		MusicPath:     "music.mp3",
		VoiceOverPath: "vo.wav",
		MusicGain:     0.25,
		VoiceOverGain: 1.0,
		FadeOut:       1.0,
	}
	args := exportArgs(mix, 60)

	assert.Contains(t, args, "music.mp3")
	assert.Contains(t, args, "vo.wav")
	assert.Contains(t, args, "volume=0.25")
	assert.Contains(t, args, "volume=1")
	assert.Contains(t, args, "amix=inputs=2:duration=longest")
	assert.Contains(t, args, "afade=t=out:st=59.000:d=1.000")
}

func TestAudioGraphMusicOnly(t *testing.T) {
	mix := &AudioMix{MusicPath: "music.mp3", MusicGain: 0.25, FadeOut: 1.0}
	args := exportArgs(mix, 60)

	assert.Contains(t, args, "volume=0.25")
	assert.NotContains(t, args, "amix", "single track needs no layering")
	assert.Contains(t, args, "afade=t=out:st=59.000:d=1.000")
}

func TestAudioGraphVoiceOverOnly(t *testing.T) {
	mix := &AudioMix{VoiceOverPath: "vo.wav", VoiceOverGain: 1.0, FadeOut: 1.0}
	args := exportArgs(mix, 60)

	assert.Contains(t, args, "volume=1")
	assert.NotContains(t, args, "volume=0.25")
	assert.NotContains(t, args, "amix")
}

func TestAudioGraphFadeAnchorsAtVideoEnd(t *testing.T) {
	mix := &AudioMix{MusicPath: "music.mp3", MusicGain: 0.25, FadeOut: 1.0}

	assert.Contains(t, exportArgs(mix, 12.5), "afade=t=out:st=11.500:d=1.000")

	// Shorter than the fade itself: fade starts at zero.
	assert.Contains(t, exportArgs(mix, 0.5), "afade=t=out:st=0.000:d=1.000")
}
