package ffmpeg

import (
	"fmt"
	"log"
	"strconv"

	"github.com/ZacxDev/video-assembler/internal/config"
	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// AudioMix describes the optional audio overlay for the final export.
// Either path may be empty; gains are linear amplitude factors.
type AudioMix struct {
	MusicPath     string
	VoiceOverPath string
	MusicGain     float64
	VoiceOverGain float64
	FadeOut       float64 // seconds of fade-to-silence at the end
}

// Tracks returns how many source tracks the mix carries.
func (m *AudioMix) Tracks() int {
	n := 0
	if m.MusicPath != "" {
		n++
	}
	if m.VoiceOverPath != "" {
		n++
	}
	return n
}

// Export encodes the composed timeline to outputPath with the fixed
// codec/bitrate/frame-rate settings. A nil mix exports the timeline as-is;
// the timeline carries no audio stream (ProcessClip maps video only), so the
// artifact is silent. Present audio tracks are gain-adjusted, layered and
// faded out over the final second; the composite is clamped to the video
// duration.
func (p *Processor) Export(inputPath, outputPath string, mix *AudioMix) error {
	outputKwargs := ffmpeg.KwArgs{
		"c:v":      config.VideoCodec,
		"c:a":      config.AudioCodec,
		"b:v":      config.VideoBitrate,
		"r":        config.FrameRate,
		"preset":   config.EncodePreset,
		"pix_fmt":  "yuv420p",
		"movflags": "+faststart",
	}

	video := ffmpeg.Input(inputPath)

	if mix == nil || mix.Tracks() == 0 {
		if p.verbose {
			log.Printf("Exporting %s without an audio track\n", outputPath)
		}
		err := video.Output(outputPath, outputKwargs).
			OverWriteOutput().
			ErrorToStdOut().
			Run()
		if err != nil {
			return errors.Wrap(err, "failed to export video")
		}
		return nil
	}

	metadata, err := p.GetVideoMetadata(inputPath)
	if err != nil {
		return errors.Wrap(err, "failed to get timeline metadata")
	}

	// Audio may outlast the timeline; cut the output at the video end.
	outputKwargs["t"] = metadata.Duration

	if p.verbose {
		log.Printf("Exporting %s with %d audio track(s), fade at %.2fs\n",
			outputPath, mix.Tracks(), FadeStart(metadata.Duration, mix.FadeOut))
	}

	err = ffmpeg.Output(
		[]*ffmpeg.Stream{video, AudioGraph(mix, metadata.Duration)},
		outputPath, outputKwargs,
	).
		OverWriteOutput().
		ErrorToStdOut().
		Run()

	if err != nil {
		return errors.Wrap(err, "failed to export video")
	}

	return nil
}

// AudioGraph builds the filter chain for the mix: every present track is
// gain-adjusted, multiple tracks are layered with amix, and the composite
// fades to silence over the final FadeOut seconds, anchored at the end of
// the video.
func AudioGraph(mix *AudioMix, videoDuration float64) *ffmpeg.Stream {
	var tracks []*ffmpeg.Stream
	if mix.MusicPath != "" {
		tracks = append(tracks, ffmpeg.Input(mix.MusicPath).Audio().
			Filter("volume", ffmpeg.Args{formatGain(mix.MusicGain)}))
	}
	if mix.VoiceOverPath != "" {
		tracks = append(tracks, ffmpeg.Input(mix.VoiceOverPath).Audio().
			Filter("volume", ffmpeg.Args{formatGain(mix.VoiceOverGain)}))
	}

	audio := tracks[0]
	if len(tracks) > 1 {
		audio = ffmpeg.Filter(tracks, "amix", ffmpeg.Args{
			fmt.Sprintf("inputs=%d", len(tracks)),
			"duration=longest",
		})
	}

	return audio.Filter("afade", ffmpeg.Args{
		"t=out",
		fmt.Sprintf("st=%s", formatSeconds(FadeStart(videoDuration, mix.FadeOut))),
		fmt.Sprintf("d=%s", formatSeconds(mix.FadeOut)),
	})
}

// FadeStart anchors a fade of the given length at the end of the timeline.
func FadeStart(videoDuration, fade float64) float64 {
	if videoDuration <= fade {
		return 0
	}
	return videoDuration - fade
}

func formatGain(gain float64) string {
	return strconv.FormatFloat(gain, 'f', -1, 64)
}

func formatSeconds(s float64) string {
	return strconv.FormatFloat(s, 'f', 3, 64)
}
