package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZacxDev/video-assembler/internal/config"
	"github.com/ZacxDev/video-assembler/internal/ffmpeg"
	"github.com/ZacxDev/video-assembler/internal/profile"
	"github.com/pkg/errors"
)

// Run executes the whole pipeline. Stages run strictly in order and any
// failure aborts the run; already-downloaded assets survive in the assets
// directory and are reused on the next run.
func (a *Assembler) Run(ctx context.Context) error {
	prof, err := profile.Get(a.opts.Profile)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := os.MkdirAll(a.opts.AssetsDir, 0755); err != nil {
		return errors.Wrap(err, "failed to create assets directory")
	}

	if err := a.fetchAssets(ctx); err != nil {
		return err
	}

	tempDir, err := os.MkdirTemp("", "video_assembler_")
	if err != nil {
		return errors.Wrap(err, "failed to create temp directory")
	}
	defer os.RemoveAll(tempDir)

	processed, err := a.processClips(tempDir, prof)
	if err != nil {
		return err
	}

	timeline := filepath.Join(tempDir, "timeline.mp4")
	a.logger.Info().Int("clips", len(processed)).Msg("concatenating timeline")
	if err := a.media.Concat(processed, timeline); err != nil {
		return err
	}

	mix := a.detectAudioMix()
	if mix != nil {
		a.logger.Info().
			Str("music", mix.MusicPath).
			Str("voice_over", mix.VoiceOverPath).
			Msg("mixing audio overlay")
	} else {
		a.logger.Info().Msg("no audio files found, exporting silent")
	}

	a.logger.Info().Str("output", a.opts.OutputPath).Msg("rendering final video")
	if err := a.media.Export(timeline, a.opts.OutputPath, mix); err != nil {
		return err
	}

	a.logger.Info().Str("output", a.opts.OutputPath).Msg("done")
	return nil
}

// fetchAssets downloads every missing segment asset, in plan order. Assets
// already on disk skip both the search and the download: the search result
// is only ever consumed by the downloader, so a warm cache issues zero
// network requests.
func (a *Assembler) fetchAssets(ctx context.Context) error {
	for i, seg := range a.plan {
		dest := filepath.Join(a.opts.AssetsDir, seg.Filename)

		if _, err := os.Stat(dest); err == nil {
			a.logger.Debug().Str("file", seg.Filename).Msg("asset cached, skipping fetch")
			continue
		}

		a.logger.Info().
			Str("query", seg.Query).
			Str("file", seg.Filename).
			Msg("fetching segment")

		url, err := a.search.FindBestVideoURL(ctx, seg.Query)
		if err != nil {
			return errors.Wrapf(err, "segment %d (%s)", i+1, seg.Query)
		}

		if err := a.fetch.Fetch(ctx, url, dest); err != nil {
			return errors.Wrapf(err, "segment %d (%s)", i+1, seg.Query)
		}
	}
	return nil
}

// processClips trims and resizes every asset into tempDir, preserving plan
// order in the returned paths.
func (a *Assembler) processClips(tempDir string, prof profile.Profile) ([]string, error) {
	processed := make([]string, 0, len(a.plan))
	for i, seg := range a.plan {
		input := filepath.Join(a.opts.AssetsDir, seg.Filename)
		output := filepath.Join(tempDir, fmt.Sprintf("clip_%03d.mp4", i+1))

		a.logger.Info().
			Str("file", seg.Filename).
			Float64("duration", seg.Duration).
			Msgf("processing clip %d/%d", i+1, len(a.plan))

		if err := a.media.ProcessClip(input, output, seg.Duration, prof); err != nil {
			return nil, errors.Wrapf(err, "segment %d (%s)", i+1, seg.Query)
		}
		processed = append(processed, output)
	}
	return processed, nil
}

// detectAudioMix looks for the configured music and voice-over files and
// builds the mix settings for whichever exist. Returns nil when neither is
// present.
func (a *Assembler) detectAudioMix() *ffmpeg.AudioMix {
	mix := &ffmpeg.AudioMix{
		MusicGain:     config.MusicGain,
		VoiceOverGain: config.VoiceOverGain,
		FadeOut:       config.FadeOutSeconds,
	}

	if _, err := os.Stat(a.opts.MusicPath); err == nil {
		mix.MusicPath = a.opts.MusicPath
	}
	if _, err := os.Stat(a.opts.VoiceOverPath); err == nil {
		mix.VoiceOverPath = a.opts.VoiceOverPath
	}

	if mix.Tracks() == 0 {
		return nil
	}
	return mix
}
