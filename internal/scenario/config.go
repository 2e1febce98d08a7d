package scenario

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/zeusync/nbody/internal/core/particles"
	"github.com/zeusync/nbody/pkg/rotation"
	"github.com/zeusync/nbody/pkg/vector"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownFrame = errors.New("unknown frame type")
	ErrZeroVector   = errors.New("vector must be nonzero")
	ErrMissingField = errors.New("required field missing")
	ErrNotFinite    = errors.New("value must be finite")
	ErrUnknownField = errors.New("unknown field")
)

// Frame types understood by Frame.Rotation.
const (
	FrameIdentity  = "identity"
	FrameOrbital   = "orbital"
	FrameAngleAxis = "angle_axis"
	FrameFromTo    = "from_to"
	FrameNewAxes   = "new_axes"
)

// Vec is a vector written as a three element list, e.g. [0, 0, 1].
type Vec [3]float64

func (v Vec) Vector() vector.Vector3 { return vector.New(v[0], v[1], v[2]) }

// Config describes a particle set and the chain of frame changes applied to it.
type Config struct {
	Name      string           `json:"name" yaml:"name"`
	Frames    []Frame          `json:"frames" yaml:"frames"`
	Particles []ParticleConfig `json:"particles" yaml:"particles"`
}

// Frame is one rotation in the chain. Angles are in degrees.
type Frame struct {
	Type string `json:"type" yaml:"type"`

	// orbital
	Node float64 `json:"Omega,omitempty" yaml:"Omega,omitempty"`
	Inc  float64 `json:"inc,omitempty" yaml:"inc,omitempty"`
	Peri float64 `json:"omega,omitempty" yaml:"omega,omitempty"`

	// angle_axis
	Angle float64 `json:"angle,omitempty" yaml:"angle,omitempty"`
	Axis  *Vec    `json:"axis,omitempty" yaml:"axis,omitempty"`

	// from_to
	From *Vec `json:"from,omitempty" yaml:"from,omitempty"`
	To   *Vec `json:"to,omitempty" yaml:"to,omitempty"`

	// new_axes
	NewZ *Vec `json:"newz,omitempty" yaml:"newz,omitempty"`
	NewX *Vec `json:"newx,omitempty" yaml:"newx,omitempty"`
}

// frameKeys are the JSON keys of Frame. Omega and omega differ only by case,
// so keys are matched exactly instead of the usual case-insensitive way.
var frameKeys = map[string]struct{}{
	"type": {}, "Omega": {}, "inc": {}, "omega": {},
	"angle": {}, "axis": {}, "from": {}, "to": {}, "newz": {}, "newx": {},
}

func (f *Frame) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key := range raw {
		if _, ok := frameKeys[key]; !ok {
			return fmt.Errorf("frame key %q: %w", key, ErrUnknownField)
		}
	}
	type plain Frame
	return json.Unmarshal(data, (*plain)(f))
}

type ParticleConfig struct {
	Mass float64 `json:"mass" yaml:"mass"`
	X    float64 `json:"x" yaml:"x"`
	Y    float64 `json:"y" yaml:"y"`
	Z    float64 `json:"z" yaml:"z"`
	VX   float64 `json:"vx" yaml:"vx"`
	VY   float64 `json:"vy" yaml:"vy"`
	VZ   float64 `json:"vz" yaml:"vz"`
}

// LoadJSON loads config from JSON reader.
func LoadJSON(r io.Reader) (*Config, error) {
	var c Config
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadYAML loads config from YAML reader.
func LoadYAML(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate validates the scenario configuration
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("scenario name: %w", ErrMissingField)
	}

	for i := range c.Frames {
		if err := c.Frames[i].Validate(); err != nil {
			return fmt.Errorf("frame %d validation failed: %w", i, err)
		}
	}

	for i, p := range c.Particles {
		for _, f := range [...]float64{p.Mass, p.X, p.Y, p.Z, p.VX, p.VY, p.VZ} {
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return fmt.Errorf("particle %d: %w", i, ErrNotFinite)
			}
		}
	}

	return nil
}

// Validate checks that the fields needed by the frame type are present and
// that every direction is nonzero, since the rotation builders do not check.
func (f *Frame) Validate() error {
	switch f.Type {
	case FrameIdentity:
		return nil
	case FrameOrbital:
		return finite(f.Node, f.Inc, f.Peri)
	case FrameAngleAxis:
		if err := finite(f.Angle); err != nil {
			return err
		}
		return nonzero("axis", f.Axis)
	case FrameFromTo:
		if err := nonzero("from", f.From); err != nil {
			return err
		}
		return nonzero("to", f.To)
	case FrameNewAxes:
		if err := nonzero("newz", f.NewZ); err != nil {
			return err
		}
		return nonzero("newx", f.NewX)
	case "":
		return fmt.Errorf("frame type: %w", ErrMissingField)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFrame, f.Type)
	}
}

func finite(vs ...float64) error {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNotFinite
		}
	}
	return nil
}

func nonzero(name string, v *Vec) error {
	if v == nil {
		return fmt.Errorf("%s: %w", name, ErrMissingField)
	}
	if err := finite(v[0], v[1], v[2]); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if v.Vector().LengthSquared() == 0 {
		return fmt.Errorf("%s: %w", name, ErrZeroVector)
	}
	return nil
}

// Rotation builds the rotation for a validated frame.
func (f *Frame) Rotation() rotation.Rotation {
	switch f.Type {
	case FrameOrbital:
		return rotation.Orbital(radians(f.Node), radians(f.Inc), radians(f.Peri))
	case FrameAngleAxis:
		return rotation.AngleAxis(radians(f.Angle), f.Axis.Vector())
	case FrameFromTo:
		return rotation.FromTo(f.From.Vector(), f.To.Vector())
	case FrameNewAxes:
		return rotation.ToNewAxes(f.NewZ.Vector(), f.NewX.Vector())
	default:
		return rotation.Identity()
	}
}

// Rotation composes all frames; the first frame is applied first.
func (c *Config) Rotation() rotation.Rotation {
	q := rotation.Identity()
	for i := range c.Frames {
		q = q.Then(c.Frames[i].Rotation())
	}
	return q
}

// ParticleSet builds a particle set, assigning each particle a new ID.
func (c *Config) ParticleSet() *particles.Set {
	s := particles.NewSet()
	for _, p := range c.Particles {
		s.Add(particles.New(p.Mass, vector.New(p.X, p.Y, p.Z), vector.New(p.VX, p.VY, p.VZ)))
	}
	return s
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
