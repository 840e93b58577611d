// Package profile loads optional survey-profile files that override
// the built-in layer stack, column mode, and chainage step.
package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gpr-profile-service/internal/domain"
	"gpr-profile-service/internal/services"
)

// On-disk survey profile. All fields are optional; zero values leave
// the corresponding option untouched.
type Profile struct {
	Layers []string `yaml:"layers"`
	Mode   string   `yaml:"mode"`
	Step   float64  `yaml:"step"`
}

// Load reads a YAML survey profile from path.
func Load(path string) (Profile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("load profile: read %q: %w", path, err)
	}

	var p Profile
	if err := yaml.Unmarshal(b, &p); err != nil {
		return Profile{}, fmt.Errorf("load profile: parse %q: %w", path, err)
	}

	return p, nil
}

// Apply overlays the profile onto processing options.
func (p Profile) Apply(opts services.Options) (services.Options, error) {
	if len(p.Layers) > 0 {
		opts.Layers = domain.LayerSet{Names: p.Layers}
	}

	if p.Mode != "" {
		mode, err := services.ParseColumnMode(p.Mode)
		if err != nil {
			return opts, fmt.Errorf("apply profile: %w", err)
		}
		opts.Mode = mode
	}

	if p.Step > 0 {
		opts.Step = p.Step
	}

	return opts, nil
}
