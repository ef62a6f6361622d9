package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ZacxDev/video-assembler/internal/config"
	"github.com/ZacxDev/video-assembler/internal/download"
	ffmpegWrap "github.com/ZacxDev/video-assembler/internal/ffmpeg"
	"github.com/ZacxDev/video-assembler/internal/logging"
	"github.com/ZacxDev/video-assembler/internal/pixabay"
	"github.com/ZacxDev/video-assembler/internal/processor"
	"github.com/ZacxDev/video-assembler/internal/profile"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "video-assembler",
		Short: "Assemble short vertical videos from Pixabay stock footage",
		Long: `video-assembler builds a short vertical video from royalty-free stock
clips fetched from the Pixabay API, with optional background music and
voice-over mixed in.

Examples:
  # Build the default 60-second video into final_video.mp4
  video-assembler assemble

  # Use a custom segment plan and output path
  video-assembler assemble --plan plan.yaml -o promo.mp4`,
	}

	assembleCmd = &cobra.Command{
		Use:   "assemble",
		Short: "Fetch stock clips and render the final video",
		Long: fmt.Sprintf(`Fetch a stock clip for every segment in the plan, trim and resize each
one, concatenate them in plan order, overlay any audio files found, and
encode the result.

Downloads are cached in the assets directory and reused on later runs.
Reads the API key from %s, prompting when unset.

Supported profiles: %s`,
			config.EnvAPIKey, strings.Join(profile.Supported(), ", ")),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &config.AssemblerOptions{}

			opts.AssetsDir, _ = cmd.Flags().GetString("assets-dir")
			opts.OutputPath, _ = cmd.Flags().GetString("output")
			opts.MusicPath, _ = cmd.Flags().GetString("music")
			opts.VoiceOverPath, _ = cmd.Flags().GetString("voice-over")
			opts.PlanPath, _ = cmd.Flags().GetString("plan")
			opts.Profile, _ = cmd.Flags().GetString("profile")
			opts.Verbose, _ = cmd.Flags().GetBool("verbose")

			return assemble(opts)
		},
	}
)

func assemble(opts *config.AssemblerOptions) error {
	logger := logging.New(opts.Verbose)

	key, err := config.ResolveAPIKey(os.Getenv, os.Stdin, os.Stderr)
	if err != nil {
		return err
	}
	opts.APIKey = key

	plan := config.DefaultPlan()
	if opts.PlanPath != "" {
		plan, err = config.LoadPlan(opts.PlanPath)
		if err != nil {
			return err
		}
		logger.Info().Str("plan", opts.PlanPath).Int("segments", len(plan)).
			Msg("loaded segment plan")
	}

	asm := processor.NewAssembler(
		opts,
		plan,
		pixabay.NewClient(opts.APIKey),
		download.NewFetcher(),
		ffmpegWrap.NewProcessor(opts.Verbose),
		logger,
	)

	return asm.Run(context.Background())
}

func init() {
	assembleCmd.Flags().StringP("assets-dir", "a", config.DefaultAssetsDir, "Directory for cached downloaded clips")
	assembleCmd.Flags().StringP("output", "o", config.DefaultOutputPath, "Output video path")
	assembleCmd.Flags().String("music", config.DefaultMusicPath, "Background music file (mixed at 25% if present)")
	assembleCmd.Flags().String("voice-over", config.DefaultVoicePath, "Voice-over file (mixed at full volume if present)")
	assembleCmd.Flags().String("plan", "", "YAML segment plan overriding the built-in one")
	assembleCmd.Flags().String("profile", "portrait",
		fmt.Sprintf("Output profile (%s)", strings.Join(profile.Supported(), ", ")))
	assembleCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(assembleCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
