package processor

import (
	"context"

	"github.com/ZacxDev/video-assembler/internal/config"
	"github.com/ZacxDev/video-assembler/internal/ffmpeg"
	"github.com/ZacxDev/video-assembler/internal/profile"
	"github.com/rs/zerolog"
)

// Searcher resolves a text query to a direct video download URL.
type Searcher interface {
	FindBestVideoURL(ctx context.Context, query string) (string, error)
}

// Fetcher streams a URL to local storage, skipping files that already exist.
type Fetcher interface {
	Fetch(ctx context.Context, url, dest string) error
}

// MediaProcessor covers the ffmpeg operations the pipeline needs.
type MediaProcessor interface {
	ProcessClip(inputPath, outputPath string, duration float64, prof profile.Profile) error
	Concat(inputs []string, outputPath string) error
	Export(inputPath, outputPath string, mix *ffmpeg.AudioMix) error
}

// Assembler runs the fetch -> process -> concatenate -> mix -> export
// pipeline for a segment plan.
type Assembler struct {
	opts   *config.AssemblerOptions
	plan   []config.Segment
	search Searcher
	fetch  Fetcher
	media  MediaProcessor
	logger zerolog.Logger
}

// NewAssembler creates a new video assembler
func NewAssembler(
	opts *config.AssemblerOptions,
	plan []config.Segment,
	search Searcher,
	fetch Fetcher,
	media MediaProcessor,
	logger zerolog.Logger,
) *Assembler {
	return &Assembler{
		opts:   opts,
		plan:   plan,
		search: search,
		fetch:  fetch,
		media:  media,
		logger: logger.With().Str("component", "assembler").Logger(),
	}
}
