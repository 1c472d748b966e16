package pendulum

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNoNodes is returned when a chain has no nodes.
	ErrNoNodes = errors.New("pendulum: chain needs at least one node")

	// ErrStiffness is returned for non-positive stiffness.
	ErrStiffness = errors.New("pendulum: stiffness must be positive")

	// ErrDamping is returned when damping is outside [0, 1).
	ErrDamping = errors.New("pendulum: damping must be in [0, 1)")

	// ErrFraction is returned when lag or coupling is outside [0, 1].
	ErrFraction = errors.New("pendulum: lag and coupling must be in [0, 1]")
)

// Config holds the fixed parameters of a chain.
type Config struct {
	Nodes     int     // Chain length
	Stiffness float64 // Spring constant per tick; natural frequency is sqrt(Stiffness) rad/tick
	Damping   float64 // Fraction of velocity lost per tick
	Lag       float64 // How much of the anchor's previous position each node follows
	Coupling  float64 // Fraction of relative velocity shared with the upstream node
}

// SwayConfig is the primary arm sway chain.
func SwayConfig() Config {
	return Config{
		Nodes:     4,
		Stiffness: 1,
		Damping:   0.07,
	}
}

// WobbleConfig is the secondary feedback chain driven by the sway chain's tail.
func WobbleConfig() Config {
	return Config{
		Nodes:     6,
		Stiffness: 0.065,
		Damping:   0.02,
		Lag:       0.01,
		Coupling:  0.6,
	}
}

// Validate checks the parameters.
func (c Config) Validate() error {
	if c.Nodes < 1 {
		return ErrNoNodes
	}
	if !(c.Stiffness > 0) || math.IsInf(c.Stiffness, 0) {
		return fmt.Errorf("%w: got %v", ErrStiffness, c.Stiffness)
	}
	if !(c.Damping >= 0 && c.Damping < 1) {
		return fmt.Errorf("%w: got %v", ErrDamping, c.Damping)
	}
	if !(c.Lag >= 0 && c.Lag <= 1) || !(c.Coupling >= 0 && c.Coupling <= 1) {
		return fmt.Errorf("%w: lag=%v coupling=%v", ErrFraction, c.Lag, c.Coupling)
	}
	return nil
}

// dampingRatio maps per-tick velocity loss to a spring damping ratio:
// an undriven spring then loses Damping of its energy per tick.
func (c Config) dampingRatio() float64 {
	return -math.Log(1-c.Damping) / (2 * math.Sqrt(c.Stiffness))
}
