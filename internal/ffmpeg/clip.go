package ffmpeg

import (
	"fmt"
	"log"
	"strconv"

	"github.com/ZacxDev/video-assembler/internal/config"
	"github.com/ZacxDev/video-assembler/internal/profile"
	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// ScaledDimensions applies the resize policy against a target canvas:
// sources narrower than tall are scaled to the full canvas height, all
// others to the full canvas width. The free dimension follows the source
// aspect ratio and is forced even for the encoder.
func ScaledDimensions(srcWidth, srcHeight, canvasWidth, canvasHeight int) (int, int) {
	var scaleWidth, scaleHeight int
	if srcWidth < srcHeight {
		scaleHeight = canvasHeight
		scaleWidth = int(float64(canvasHeight) * float64(srcWidth) / float64(srcHeight))
	} else {
		scaleWidth = canvasWidth
		scaleHeight = int(float64(canvasWidth) * float64(srcHeight) / float64(srcWidth))
	}

	// Ensure dimensions are even
	scaleWidth = scaleWidth - (scaleWidth % 2)
	scaleHeight = scaleHeight - (scaleHeight % 2)

	return scaleWidth, scaleHeight
}

// framing describes how a scaled clip lands on the canvas: overflow on the
// free dimension is center-cropped to the canvas, shortfall is center-padded
// on black.
type framing struct {
	ScaleWidth, ScaleHeight   int
	CanvasWidth, CanvasHeight int
	CropWidth, CropHeight     int
	PadLeft, PadTop           int
}

func fitToCanvas(scaleWidth, scaleHeight, canvasWidth, canvasHeight int) framing {
	f := framing{
		ScaleWidth:   scaleWidth,
		ScaleHeight:  scaleHeight,
		CanvasWidth:  canvasWidth,
		CanvasHeight: canvasHeight,
		CropWidth:    min(scaleWidth, canvasWidth),
		CropHeight:   min(scaleHeight, canvasHeight),
	}
	f.PadLeft = (canvasWidth - f.CropWidth) / 2
	f.PadTop = (canvasHeight - f.CropHeight) / 2
	return f
}

func (f framing) needsCrop() bool {
	return f.CropWidth < f.ScaleWidth || f.CropHeight < f.ScaleHeight
}

func (f framing) needsPad() bool {
	return f.CropWidth < f.CanvasWidth || f.CropHeight < f.CanvasHeight
}

// ProcessClip trims inputPath to [0, duration), resizes it for the profile
// canvas and normalizes the frame rate. The free dimension is center-cropped
// when it overflows the canvas and padded on black when it falls short, so
// every processed clip lands on the exact canvas. Source audio is dropped;
// the timeline gets its audio from the mix stage.
func (p *Processor) ProcessClip(inputPath, outputPath string, duration float64, prof profile.Profile) error {
	metadata, err := p.GetVideoMetadata(inputPath)
	if err != nil {
		return errors.Wrap(err, "failed to get video metadata")
	}

	if metadata.Duration < duration {
		return fmt.Errorf("source %s is %.2fs long, shorter than the requested %.2fs",
			inputPath, metadata.Duration, duration)
	}

	canvasWidth, canvasHeight := prof.GetCanvas()
	scaleWidth, scaleHeight := ScaledDimensions(metadata.Width, metadata.Height, canvasWidth, canvasHeight)

	if p.verbose {
		log.Printf("Processing clip %s: %dx%d -> scale %dx%d on %dx%d canvas\n",
			inputPath, metadata.Width, metadata.Height, scaleWidth, scaleHeight,
			canvasWidth, canvasHeight)
	}

	stream := ffmpeg.Input(inputPath, ffmpeg.KwArgs{
		"t": duration,
	}).Video().Filter("scale", ffmpeg.Args{
		fmt.Sprintf("%d:%d", scaleWidth, scaleHeight),
	})

	frame := fitToCanvas(scaleWidth, scaleHeight, canvasWidth, canvasHeight)

	if frame.needsCrop() {
		// crop centers by default
		stream = stream.Filter("crop", ffmpeg.Args{
			fmt.Sprintf("%d:%d", frame.CropWidth, frame.CropHeight),
		})
	}

	if frame.needsPad() {
		stream = stream.Filter("pad", ffmpeg.Args{
			fmt.Sprintf("%d:%d:%d:%d", canvasWidth, canvasHeight, frame.PadLeft, frame.PadTop),
		}, ffmpeg.KwArgs{
			"color": "black",
		})
	}

	stream = stream.Filter("fps", ffmpeg.Args{
		strconv.Itoa(prof.GetFrameRate()),
	})

	err = stream.Output(outputPath, ffmpeg.KwArgs{
		"c:v":     config.VideoCodec,
		"b:v":     config.VideoBitrate,
		"preset":  config.EncodePreset,
		"pix_fmt": "yuv420p",
	}).
		OverWriteOutput().
		ErrorToStdOut().
		Run()

	if err != nil {
		return errors.Wrapf(err, "failed to process clip %s", inputPath)
	}

	return nil
}
