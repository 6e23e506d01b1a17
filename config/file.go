package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig is the subset of configuration that can be overridden from a YAML file.
// Keys left out of the file keep their current values.
//
// Example:
//
//	orbit:
//	  radiusX: 200
//	  minPeriod: 4
//	fireworks:
//	  sparksPerBurst: 64
type FileConfig struct {
	Window    WindowConfig    `yaml:"window"`
	Orbit     OrbitConfig     `yaml:"orbit"`
	Bear      BearConfig      `yaml:"bear"`
	Starfield StarfieldConfig `yaml:"starfield"`
	Fireworks FireworksConfig `yaml:"fireworks"`
	Hue       HueConfig       `yaml:"hue"`
}

// Current returns a FileConfig holding the active configuration.
func Current() FileConfig {
	return FileConfig{
		Window:    Window,
		Orbit:     Orbit,
		Bear:      Bear,
		Starfield: Starfield,
		Fireworks: Fireworks,
		Hue:       Hue,
	}
}

// LoadFile reads a YAML override file on top of the active configuration.
// The result is validated but not applied.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML overrides on top of the active configuration.
func Parse(data []byte) (*FileConfig, error) {
	fc := Current()
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := fc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &fc, nil
}

// Validate rejects values that would stall or break the game loop.
// Orbit radii and scales are not checked; degenerate values give a degenerate orbit.
func (fc *FileConfig) Validate() error {
	var errs []error

	if fc.Window.Width <= 0 || fc.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", fc.Window.Width, fc.Window.Height))
	}
	if fc.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("window tps must be positive, got %d", fc.Window.TPS))
	}
	if fc.Orbit.MinPeriod <= 0 {
		errs = append(errs, fmt.Errorf("orbit minPeriod must be positive, got %.2f", fc.Orbit.MinPeriod))
	}
	if fc.Orbit.MinPeriod > fc.Orbit.MaxPeriod {
		errs = append(errs, fmt.Errorf("orbit period range invalid: min(%.2f) > max(%.2f)",
			fc.Orbit.MinPeriod, fc.Orbit.MaxPeriod))
	}
	if fc.Orbit.ReferenceFrameRate <= 0 {
		errs = append(errs, fmt.Errorf("orbit referenceFrameRate must be positive, got %.2f", fc.Orbit.ReferenceFrameRate))
	}
	if fc.Bear.FramesPerSecond < 0 {
		errs = append(errs, fmt.Errorf("bear framesPerSecond must not be negative, got %.2f", fc.Bear.FramesPerSecond))
	}
	if fc.Starfield.Count < 0 {
		errs = append(errs, fmt.Errorf("starfield count must not be negative, got %d", fc.Starfield.Count))
	}
	if fc.Starfield.MinRadius > fc.Starfield.MaxRadius {
		errs = append(errs, fmt.Errorf("starfield radius range invalid: min(%.2f) > max(%.2f)",
			fc.Starfield.MinRadius, fc.Starfield.MaxRadius))
	}
	if fc.Fireworks.SparksPerBurst <= 0 || fc.Fireworks.MaxSparks <= 0 {
		errs = append(errs, fmt.Errorf("fireworks spark counts must be positive, got %d per burst, %d max",
			fc.Fireworks.SparksPerBurst, fc.Fireworks.MaxSparks))
	}
	if fc.Fireworks.MinSpeed > fc.Fireworks.MaxSpeed {
		errs = append(errs, fmt.Errorf("fireworks speed range invalid: min(%.2f) > max(%.2f)",
			fc.Fireworks.MinSpeed, fc.Fireworks.MaxSpeed))
	}
	if fc.Fireworks.Lifetime <= 0 {
		errs = append(errs, fmt.Errorf("fireworks lifetime must be positive, got %.2f", fc.Fireworks.Lifetime))
	}

	return errors.Join(errs...)
}

// Apply makes fc the active configuration.
func (fc *FileConfig) Apply() {
	Window = fc.Window
	Orbit = fc.Orbit
	Bear = fc.Bear
	Starfield = fc.Starfield
	Fireworks = fc.Fireworks
	Hue = fc.Hue

	C.Width = Window.Width
	C.Height = Window.Height
}
