package armsway

import (
	"log/slog"
	"math"

	"github.com/teslashibe/go-armsway/pkg/pendulum"
	"github.com/teslashibe/go-armsway/pkg/skeleton"
)

// DefaultMultiplier scales vertical chest movement against horizontal
// movement when driving the sway chain.
const DefaultMultiplier = 50.0

// Defaults are the startup values of the switch parameters. A region whose
// default is off can never be enabled from the parameter store.
type Defaults struct {
	Active       bool // ArmSwayActive
	LeftArm      bool // LeftSwayActive
	RightArm     bool // RightSwayActive
	LeftFingers  bool // LeftFingerActive
	RightFingers bool // RightFingerActive
	LeftLeg      bool // LeftLegSwayActive
	RightLeg     bool // RightLegSwayActive
}

// allowed returns the defaults indexed by region.
func (d Defaults) allowed() [skeleton.RegionCount]bool {
	var a [skeleton.RegionCount]bool
	a[skeleton.LeftArm] = d.LeftArm
	a[skeleton.RightArm] = d.RightArm
	a[skeleton.LeftFingers] = d.LeftFingers
	a[skeleton.RightFingers] = d.RightFingers
	a[skeleton.LeftLeg] = d.LeftLeg
	a[skeleton.RightLeg] = d.RightLeg
	return a
}

// Allow sets the default of region r.
func (d *Defaults) Allow(r skeleton.Region, on bool) {
	switch r {
	case skeleton.LeftArm:
		d.LeftArm = on
	case skeleton.RightArm:
		d.RightArm = on
	case skeleton.LeftFingers:
		d.LeftFingers = on
	case skeleton.RightFingers:
		d.RightFingers = on
	case skeleton.LeftLeg:
		d.LeftLeg = on
	case skeleton.RightLeg:
		d.RightLeg = on
	}
}

// Config holds engine configuration.
// Use functional options (WithXxx) to set these values.
type Config struct {
	// Chest drive
	Multiplier float64

	// Chains
	Sway   pendulum.Config
	Wobble pendulum.Config

	// Startup switches
	Defaults Defaults

	// Renormalize written bone rotations. Off by default: each tick corrects a
	// fresh host rotation, so error does not accumulate across ticks.
	Renormalize bool

	// Observability
	Logger *slog.Logger
}

// Option is a functional option for configuring the engine.
type Option func(*Config)

// WithMultiplier sets the vertical chest multiplier.
func WithMultiplier(m float64) Option {
	return func(c *Config) {
		c.Multiplier = m
	}
}

// WithSwayChain overrides the primary chain parameters.
func WithSwayChain(cfg pendulum.Config) Option {
	return func(c *Config) {
		c.Sway = cfg
	}
}

// WithWobbleChain overrides the feedback chain parameters.
func WithWobbleChain(cfg pendulum.Config) Option {
	return func(c *Config) {
		c.Wobble = cfg
	}
}

// WithDefaults sets the startup switch values.
func WithDefaults(d Defaults) Option {
	return func(c *Config) {
		c.Defaults = d
	}
}

// WithRenormalize enables renormalizing written rotations.
func WithRenormalize(on bool) Option {
	return func(c *Config) {
		c.Renormalize = on
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// DefaultConfig returns the arm sway setup: both arms and both hands'
// fingers allowed, legs off.
func DefaultConfig() *Config {
	return &Config{
		Multiplier: DefaultMultiplier,
		Sway:       pendulum.SwayConfig(),
		Wobble:     pendulum.WobbleConfig(),
		Defaults: Defaults{
			Active:       true,
			LeftArm:      true,
			RightArm:     true,
			LeftFingers:  true,
			RightFingers: true,
		},
		Logger: slog.Default(),
	}
}

// Apply applies functional options to the config.
func (c *Config) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if math.IsNaN(c.Multiplier) || math.IsInf(c.Multiplier, 0) {
		return ErrMultiplier
	}
	if err := c.Sway.Validate(); err != nil {
		return err
	}
	if err := c.Wobble.Validate(); err != nil {
		return err
	}
	if c.Sway.Nodes < swayNodes || c.Wobble.Nodes < wobbleNodes {
		return ErrChainTooShort
	}
	return nil
}
