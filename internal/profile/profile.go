package profile

import (
	"fmt"
	"sort"
)

// Profile defines the interface for output canvas profiles
type Profile interface {
	// GetName returns the profile name
	GetName() string

	// GetCanvas returns the output canvas dimensions
	GetCanvas() (width, height int)

	// GetFrameRate returns the output frame rate
	GetFrameRate() int
}

var profiles = make(map[string]Profile)

// Register adds a profile to the registry
func Register(p Profile) {
	profiles[p.GetName()] = p
}

// Get returns a profile by name
func Get(name string) (Profile, error) {
	p, ok := profiles[name]
	if !ok {
		return nil, fmt.Errorf("unsupported profile: %s", name)
	}
	return p, nil
}

// Supported returns a sorted list of supported profile names
func Supported() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
