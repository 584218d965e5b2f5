package model

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/itohio/symdyn/pkg/core/math/symbolic"
	"github.com/itohio/symdyn/pkg/dynamics/ht"
)

// Config is the YAML-serializable description of a DM's numeric attachments:
// joint names, gravity, and per-joint damping, plus point masses and
// diagonal-Izz inertias at constant base-frame positions/orientations. It
// deliberately only covers the constant-attachment case (attachments that
// are themselves symbolic expressions over q are built in code, not YAML,
// since expressions have no serialized form here).
type Config struct {
	Joints  []string   `yaml:"joints"`
	Gravity float64    `yaml:"gravity"`
	Damping []float64  `yaml:"damping,omitempty"`
	Masses  []MassSpec `yaml:"masses,omitempty"`
	Bodies  []BodySpec `yaml:"bodies,omitempty"`
}

// MassSpec is one point mass attachment at a constant base-frame position.
type MassSpec struct {
	M float64    `yaml:"m"`
	X [3]float64 `yaml:"x"`
}

// BodySpec is one diagonal-Izz inertia attachment with a constant base-frame
// rotation given as ZYX Euler angles (radians).
type BodySpec struct {
	Izz   float64    `yaml:"izz"`
	Euler [3]float64 `yaml:"euler"`
}

// LoadConfigFile reads and parses a Config from a YAML file.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return LoadConfig(data)
}

// LoadConfig parses a Config from YAML bytes.
func LoadConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SaveConfigFile writes cfg to path as YAML.
func SaveConfigFile(cfg Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Build constructs a fresh DM from cfg: joints named per cfg.Joints, gravity
// magnitude cfg.Gravity along -Z, damping per cfg.Damping (zero-filled if
// omitted), and every mass/body attachment at its constant position or
// orientation.
func (cfg Config) Build() (*DM, error) {
	d := NewNamed(cfg.Joints...)
	d.SetGravity(symbolic.Const(cfg.Gravity), [3]symbolic.Expr{symbolic.Const(0), symbolic.Const(0), symbolic.Const(-1)})

	if len(cfg.Damping) > 0 {
		b := make([]symbolic.Expr, d.N())
		for i := range b {
			if i < len(cfg.Damping) {
				b[i] = symbolic.Const(cfg.Damping[i])
			} else {
				b[i] = symbolic.Const(0)
			}
		}
		if err := d.SetDamping(b); err != nil {
			return nil, err
		}
	}

	for _, ms := range cfg.Masses {
		d.AddMass(symbolic.Const(ms.M), [3]symbolic.Expr{
			symbolic.Const(ms.X[0]), symbolic.Const(ms.X[1]), symbolic.Const(ms.X[2]),
		})
	}

	for _, bs := range cfg.Bodies {
		phi := [3]symbolic.Expr{symbolic.Const(bs.Euler[0]), symbolic.Const(bs.Euler[1]), symbolic.Const(bs.Euler[2])}
		if err := d.AddInertiaScalar(symbolic.Const(bs.Izz), ht.EulerToRot(phi)); err != nil {
			return nil, err
		}
	}

	return d, nil
}
