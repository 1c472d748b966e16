// Package host is a minimal in-process animation host: a parameter store,
// trigger registry, bone naming and a frame source, plus a fixed-rate loop
// that drives the arm sway engine the way a real host would.
package host

import (
	"math"
	"sync"
	"time"

	"github.com/teslashibe/go-armsway/pkg/armsway"
	"github.com/teslashibe/go-armsway/pkg/params"
	"github.com/teslashibe/go-armsway/pkg/qmath"
	"github.com/teslashibe/go-armsway/pkg/skeleton"
)

// Motion describes the simulated chest movement in avatar units.
type Motion struct {
	BobAmplitude  float64 // vertical
	BobHz         float64
	SwayAmplitude float64 // horizontal
	SwayHz        float64
}

// DefaultMotion is a gentle idle bob.
func DefaultMotion() Motion {
	return Motion{
		BobAmplitude:  0.02,
		BobHz:         1.2,
		SwayAmplitude: 0.01,
		SwayHz:        0.6,
	}
}

// Sim implements armsway.Host in memory.
type Sim struct {
	*params.Memory
	*params.Registry

	motion Motion

	mu     sync.RWMutex
	names  map[skeleton.Bone]string
	layers []armsway.PoseLayer
	rest   *armsway.Frame
}

// Ensure Sim implements armsway.Host
var _ armsway.Host = (*Sim)(nil)

// NewSim creates a host with a rest pose and the given chest motion.
func NewSim(motion Motion) *Sim {
	return &Sim{
		Memory:   params.NewMemory(),
		Registry: params.NewRegistry(),
		motion:   motion,
		names:    make(map[skeleton.Bone]string),
		rest:     armsway.NewFrame(),
	}
}

// BoneName returns the display name of b: an override if one was set,
// otherwise the humanoid name.
func (s *Sim) BoneName(b skeleton.Bone) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if n, ok := s.names[b]; ok {
		return n
	}
	return b.Name()
}

// SetBoneName overrides the display name of b. Call before the engine is
// created; names are resolved once.
func (s *Sim) SetBoneName(b skeleton.Bone, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.names[b] = name
}

// RegisterPoseLayer adds l to the host's layer stack.
func (s *Sim) RegisterPoseLayer(l armsway.PoseLayer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.layers = append(s.layers, l)
}

// Layers returns the registered layers in registration order.
func (s *Sim) Layers() []armsway.PoseLayer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]armsway.PoseLayer(nil), s.layers...)
}

// CurrentFrame returns a fresh copy of the rest pose for one tick.
func (s *Sim) CurrentFrame() *armsway.Frame {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rest.Clone()
}

// SetRestRotation changes the rest rotation of b in every later frame.
func (s *Sim) SetRestRotation(b skeleton.Bone, q qmath.Quat) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rest.Rotations[b] = q
}

// Chest returns the chest displacement at elapsed time t.
func (s *Sim) Chest(t time.Duration) (x, y float64) {
	sec := t.Seconds()
	x = s.motion.SwayAmplitude * math.Sin(2*math.Pi*s.motion.SwayHz*sec)
	y = s.motion.BobAmplitude * math.Sin(2*math.Pi*s.motion.BobHz*sec)
	return x, y
}
