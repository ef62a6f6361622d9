package ffmpeg

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Concat joins the inputs into one timeline, preserving input order.
// Processed clips share the same canvas, frame rate and codec, so the concat
// demuxer with stream copy is enough; no re-encode happens here.
func (p *Processor) Concat(inputs []string, outputPath string) error {
	if len(inputs) == 0 {
		return fmt.Errorf("no input clips provided")
	}

	listPath, err := writeConcatList(inputs)
	if err != nil {
		return errors.Wrap(err, "failed to create concat list")
	}
	defer os.Remove(listPath)

	if p.verbose {
		log.Printf("Concatenating %d clips into %s\n", len(inputs), outputPath)
	}

	err = ffmpeg.Input(listPath, ffmpeg.KwArgs{
		"f":    "concat",
		"safe": 0,
	}).Output(outputPath, ffmpeg.KwArgs{
		"c": "copy",
	}).
		OverWriteOutput().
		ErrorToStdOut().
		Run()

	if err != nil {
		return errors.Wrap(err, "failed to concatenate clips")
	}

	return nil
}

// writeConcatList generates a temporary file list for the ffmpeg concat
// demuxer, one absolute path per line. The list is removed again when
// writing fails partway.
func writeConcatList(inputs []string) (string, error) {
	tmpFile, err := os.CreateTemp("", "video_assembler_concat_*.txt")
	if err != nil {
		return "", err
	}
	defer tmpFile.Close()

	for _, input := range inputs {
		absPath, err := filepath.Abs(input)
		if err != nil {
			os.Remove(tmpFile.Name())
			return "", err
		}
		// Entries are single-quoted; the demuxer expects embedded quotes
		// escaped shell-style.
		escaped := strings.ReplaceAll(absPath, "'", `'\''`)
		if _, err := fmt.Fprintf(tmpFile, "file '%s'\n", escaped); err != nil {
			os.Remove(tmpFile.Name())
			return "", err
		}
	}

	return tmpFile.Name(), nil
}
