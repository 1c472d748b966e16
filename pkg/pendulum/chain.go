// Package pendulum simulates a fixed-length chain of damped spring nodes.
//
// Node 0 hangs from the drive input; every later node hangs from the node
// before it. Each tick the chain is advanced from a single scalar drive value
// and every node reports its swing away from its anchor. A sudden change in
// the drive therefore travels down the chain with increasing delay, the
// "whip" that arm sway is built on.
//
// Time is measured in ticks. A chain carries momentum between ticks and is
// not safe for concurrent use.
package pendulum

import (
	"fmt"
	"math"

	"github.com/charmbracelet/harmonica"
)

// node is the state of one spring in the chain.
type node struct {
	pos   float64 // absolute position
	vel   float64 // velocity in units per tick
	prev  float64 // position at the end of the previous tick
	value float64 // pos minus the anchor it was pulled toward
}

// Chain is a cascade of damped spring nodes.
type Chain struct {
	cfg Config

	inner harmonica.Spring // interior nodes: tied to both neighbours
	tail  harmonica.Spring // last node: tied to its anchor only

	nodes     []node
	lastDrive float64
	ticks     uint64
}

// New creates a chain at rest.
func New(cfg Config) (*Chain, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	omega := math.Sqrt(cfg.Stiffness)
	zeta := cfg.dampingRatio()

	return &Chain{
		cfg:   cfg,
		inner: harmonica.NewSpring(1, omega*math.Sqrt2, zeta),
		tail:  harmonica.NewSpring(1, omega, zeta),
		nodes: make([]node, cfg.Nodes),
	}, nil
}

// MustNew is like New but panics on an invalid config.
// Intended for the built-in presets.
func MustNew(cfg Config) *Chain {
	c, err := New(cfg)
	if err != nil {
		panic(fmt.Sprintf("pendulum: %v", err))
	}
	return c
}

// SetDriveValue advances the chain by one tick with x as the root position.
// A non-finite x is treated as 0 so one bad sample cannot poison the chain.
func (c *Chain) SetDriveValue(x float64) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		x = 0
	}
	lag := c.cfg.Lag
	up, prevUp := x, c.lastDrive
	c.lastDrive = x

	last := len(c.nodes) - 1
	for i := range c.nodes {
		n := &c.nodes[i]
		anchor := up*(1-lag) + prevUp*lag

		spring, target := c.tail, anchor
		if i < last {
			spring, target = c.inner, (anchor+c.nodes[i+1].pos)/2
		}
		n.pos, n.vel = spring.Update(n.pos, n.vel, target)

		// Viscous coupling with the upstream node. Momentum is shared, never added.
		if i > 0 && c.cfg.Coupling > 0 {
			p := &c.nodes[i-1]
			dv := (p.vel - n.vel) * c.cfg.Coupling / 2
			n.vel += dv
			p.vel -= dv
		}

		n.value = n.pos - anchor
		prevUp, up = n.prev, n.pos
		n.prev = n.pos
	}
	c.ticks++
}

// Value returns the swing of node i. It panics if i is outside [0, Len()),
// which is a programming error.
func (c *Chain) Value(i int) float64 {
	if i < 0 || i >= len(c.nodes) {
		panic(fmt.Sprintf("pendulum: node index %d out of range [0,%d)", i, len(c.nodes)))
	}
	return c.nodes[i].value
}

// Values returns a copy of every node's swing, root first.
func (c *Chain) Values() []float64 {
	out := make([]float64, len(c.nodes))
	for i := range c.nodes {
		out[i] = c.nodes[i].value
	}
	return out
}

// Len returns the number of nodes.
func (c *Chain) Len() int { return len(c.nodes) }

// Drive returns the last drive value fed to the chain.
func (c *Chain) Drive() float64 { return c.lastDrive }

// Ticks returns how many times the chain has been advanced.
func (c *Chain) Ticks() uint64 { return c.ticks }

// Config returns the parameters the chain was built with.
func (c *Chain) Config() Config { return c.cfg }

// Reset returns the chain to rest at the origin.
func (c *Chain) Reset() {
	for i := range c.nodes {
		c.nodes[i] = node{}
	}
	c.lastDrive = 0
	c.ticks = 0
}
