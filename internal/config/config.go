package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Segment describes one slot in the final video: what to search for, how
// long the clip runs, and which cached file it lives in. Plan order is the
// final video order.
type Segment struct {
	Query    string  `yaml:"query"`
	Duration float64 `yaml:"duration"`
	Filename string  `yaml:"filename"`
}

// AssemblerOptions defines options for assembling a video from stock clips
type AssemblerOptions struct {
	APIKey        string
	AssetsDir     string
	OutputPath    string
	MusicPath     string
	VoiceOverPath string
	PlanPath      string
	Profile       string
	Verbose       bool
}

const (
	// Environment variable holding the Pixabay API key
	EnvAPIKey = "PIXABAY_KEY"

	// Default file locations
	DefaultAssetsDir  = "assets"
	DefaultOutputPath = "final_video.mp4"
	DefaultMusicPath  = "music.mp3"
	DefaultVoicePath  = "vo.wav"

	// Export settings (H.264/AAC for broad compatibility)
	VideoCodec   = "libx264"
	AudioCodec   = "aac"
	VideoBitrate = "20M"
	FrameRate    = 30
	EncodePreset = "medium"

	// Audio mix settings
	MusicGain      = 0.25 // ~12 dB reduction
	VoiceOverGain  = 1.0
	FadeOutSeconds = 1.0

	// Per-request timeouts
	SearchTimeout   = 15 * time.Second
	DownloadTimeout = 60 * time.Second
)

// DefaultPlan returns the built-in segment list. Order is meaningful: it is
// the order the clips appear in the final video.
func DefaultPlan() []Segment {
	return []Segment{
		{Query: "sunrise timelapse", Duration: 5, Filename: "sunrise.mp4"},
		{Query: "diverse friends smiling", Duration: 5, Filename: "friends.mp4"},
		{Query: "bible pages turning", Duration: 10, Filename: "bible.mp4"},
		{Query: "family hug reunion", Duration: 10, Filename: "family.mp4"},
		{Query: "people dancing field", Duration: 10, Filename: "dancing.mp4"},
		{Query: "worship church crowd", Duration: 10, Filename: "worship.mp4"},
		{Query: "cross silhouette sunset", Duration: 10, Filename: "cross.mp4"},
	}
}

// LoadPlan reads a segment plan from a YAML file. The file holds a list of
// segments; file order is preserved.
func LoadPlan(path string) ([]Segment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read plan file")
	}

	var plan []Segment
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, errors.Wrap(err, "failed to parse plan file")
	}

	if err := ValidatePlan(plan); err != nil {
		return nil, err
	}

	return plan, nil
}

// ValidatePlan checks every segment for an empty query, a non-positive
// duration, or a missing filename.
func ValidatePlan(plan []Segment) error {
	if len(plan) == 0 {
		return errors.New("plan contains no segments")
	}
	for i, seg := range plan {
		if strings.TrimSpace(seg.Query) == "" {
			return fmt.Errorf("segment %d: query is empty", i+1)
		}
		if seg.Duration <= 0 {
			return fmt.Errorf("segment %d (%s): duration must be positive, got %v",
				i+1, seg.Query, seg.Duration)
		}
		if strings.TrimSpace(seg.Filename) == "" {
			return fmt.Errorf("segment %d (%s): filename is empty", i+1, seg.Query)
		}
	}
	return nil
}

// ResolveAPIKey returns the Pixabay API key from the environment, falling
// back to an interactive prompt on `in`. The typed value is
// whitespace-trimmed. The key format is not validated here; a bad key
// surfaces as an auth error from the search API.
func ResolveAPIKey(getenv func(string) string, in io.Reader, out io.Writer) (string, error) {
	if key := strings.TrimSpace(getenv(EnvAPIKey)); key != "" {
		return key, nil
	}

	fmt.Fprint(out, "Enter your Pixabay API key: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrap(err, "failed to read API key")
	}

	key := strings.TrimSpace(line)
	if key == "" {
		return "", errors.New("no API key provided")
	}
	return key, nil
}
