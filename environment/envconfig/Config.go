// Package envconfig provides configuration structs for wrapping
// Universe environments with reduced action spaces. Configurations in
// this package are JSON serializable.
package envconfig

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/samuelfneumann/gouniverse/environment"
	"github.com/samuelfneumann/gouniverse/environment/gymcore"
	"github.com/samuelfneumann/gouniverse/environment/wrappers"
)

// WrapperName stores the name of action space wrappers that can be
// configured with this package
type WrapperName string

// Wrappers available for configuration. NoWrapper leaves the raw VNC
// action space in place.
const (
	NoWrapper         WrapperName = ""
	SafeActionSpace   WrapperName = "SafeActionSpace"
	SoftmaxClickMouse WrapperName = "SoftmaxClickMouse"
)

// Config implements a specific configuration of an action space
// wrapper for a specific environment.
//
// ActiveRegion is given as [XLow, YLow, XHigh, YHigh] and each
// NoclickRegion as [X, Width, Y, Height]. ActiveRegion and
// DiscreteMouseStep take their defaults from package wrappers when
// unset, so a zero DiscreteMouseStep selects the default step. They are
// only used by the SoftmaxClickMouse wrapper.
type Config struct {
	Environment       string
	Wrapper           WrapperName
	ActiveRegion      *[4]int  `json:",omitempty"`
	DiscreteMouseStep int      `json:",omitempty"`
	NoclickRegions    [][4]int `json:",omitempty"`
}

// Load reads a Config from JSON. Unknown fields are an error.
func Load(r io.Reader) (Config, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var c Config
	if err := dec.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("load: could not decode config: %v", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("load: %v", err)
	}
	return c, nil
}

// LoadFile reads a Config from the JSON file at path
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("loadFile: %v", err)
	}
	defer f.Close()
	return Load(f)
}

// Validate returns an error if the Config cannot describe a wrapper
func (c Config) Validate() error {
	switch c.Wrapper {
	case NoWrapper, SafeActionSpace, SoftmaxClickMouse:
	default:
		return fmt.Errorf("validate: no such wrapper %q", c.Wrapper)
	}
	if c.Wrapper != SoftmaxClickMouse && (c.ActiveRegion != nil ||
		c.DiscreteMouseStep != 0 || len(c.NoclickRegions) > 0) {
		return fmt.Errorf("validate: click grid fields set for wrapper %q",
			c.Wrapper)
	}
	return nil
}

// ClickGridArgs returns the arguments of the SoftmaxClickMouse wrapper
// described by the Config, with defaults filled in
func (c Config) ClickGridArgs() (wrappers.ActiveRegion, int,
	[]wrappers.Region) {
	active := wrappers.DefaultActiveRegion
	if c.ActiveRegion != nil {
		r := *c.ActiveRegion
		active = wrappers.ActiveRegion{XLow: r[0], YLow: r[1], XHigh: r[2],
			YHigh: r[3]}
	}

	step := wrappers.DefaultDiscreteMouseStep
	if c.DiscreteMouseStep != 0 {
		step = c.DiscreteMouseStep
	}

	noclick := make([]wrappers.Region, len(c.NoclickRegions))
	for i, r := range c.NoclickRegions {
		noclick[i] = wrappers.Region{X: r[0], Width: r[1], Y: r[2],
			Height: r[3]}
	}

	return active, step, noclick
}

// Wrap wraps env with the action space wrapper described by the
// Config. gym-core environments are resolved through lookup. If the
// Config names an environment, it must match the ID of env's spec.
func (c Config) Wrap(env environment.Vectorized, lookup gymcore.Lookup,
	logger environment.Logger) (environment.Vectorized, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("wrap: %v", err)
	}
	if spec := env.Spec(); c.Environment != "" && spec != nil &&
		spec.ID != c.Environment {
		return nil, fmt.Errorf("wrap: config is for %v but environment is "+
			"%v", c.Environment, spec.ID)
	}

	switch c.Wrapper {
	case SafeActionSpace:
		wrapped, err := wrappers.NewSafeActionSpace(env, lookup, logger)
		if err != nil {
			return nil, fmt.Errorf("wrap: %w", err)
		}
		return wrapped, nil

	case SoftmaxClickMouse:
		active, step, noclick := c.ClickGridArgs()
		wrapped, err := wrappers.NewSoftmaxClickMouse(env, active, step,
			noclick, logger)
		if err != nil {
			return nil, fmt.Errorf("wrap: %v", err)
		}
		return wrapped, nil

	default:
		return env, nil
	}
}
