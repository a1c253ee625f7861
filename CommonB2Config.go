package box2d

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

/// Tunable solver settings. A settings value is copied into every step and
/// must not change while a step runs; all joints of a world observe the same
/// values.
type B2Settings struct {
	/// Constraint tolerance, see B2_linearSlop.
	LinearSlop float64 `yaml:"linear_slop"`

	/// Number of velocity solver passes per step.
	VelocityIterations int `yaml:"velocity_iterations"`

	/// Upper bound on position solver passes per step.
	PositionIterations int `yaml:"position_iterations"`

	/// Reuse the previous step's impulses as the initial guess.
	WarmStarting bool `yaml:"warm_starting"`

	/// Largest translation a body may move in one step.
	MaxTranslation float64 `yaml:"max_translation"`

	/// Largest rotation a body may turn in one step, in radians.
	MaxRotation float64 `yaml:"max_rotation"`
}

func MakeB2Settings() B2Settings {
	return B2Settings{
		LinearSlop:         B2_linearSlop,
		VelocityIterations: B2_defaultVelocityIterations,
		PositionIterations: B2_defaultPositionIterations,
		WarmStarting:       true,
		MaxTranslation:     B2_maxTranslation,
		MaxRotation:        B2_maxRotation,
	}
}

func (settings B2Settings) Validate() error {
	if !B2IsValid(settings.LinearSlop) || settings.LinearSlop <= 0.0 {
		return errors.Errorf("linear_slop must be positive, got %v", settings.LinearSlop)
	}

	if settings.VelocityIterations < 1 {
		return errors.Errorf("velocity_iterations must be at least 1, got %d", settings.VelocityIterations)
	}

	if settings.PositionIterations < 0 {
		return errors.Errorf("position_iterations must not be negative, got %d", settings.PositionIterations)
	}

	if !B2IsValid(settings.MaxTranslation) || settings.MaxTranslation <= 0.0 {
		return errors.Errorf("max_translation must be positive, got %v", settings.MaxTranslation)
	}

	if !B2IsValid(settings.MaxRotation) || settings.MaxRotation <= 0.0 {
		return errors.Errorf("max_rotation must be positive, got %v", settings.MaxRotation)
	}

	return nil
}

/// Decode YAML settings on top of the defaults. Unknown keys are rejected.
func LoadB2Settings(r io.Reader) (B2Settings, error) {
	settings := MakeB2Settings()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(&settings); err != nil && err != io.EOF {
		return B2Settings{}, errors.Wrap(err, "decode settings")
	}

	if err := settings.Validate(); err != nil {
		return B2Settings{}, errors.Wrap(err, "invalid settings")
	}

	return settings, nil
}
