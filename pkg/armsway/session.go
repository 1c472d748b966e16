package armsway

import (
	"math"

	"github.com/google/uuid"

	"github.com/teslashibe/go-armsway/pkg/pendulum"
)

// Chain nodes read by the engine.
const (
	swayNodes   = 4
	wobbleNodes = 6

	swayTail = 3 // sway node feeding the arms and the wobble chain
)

// Readout is the set of scalars derived from the chains each tick.
type Readout struct {
	SwayLeft  float64
	SwayRight float64

	// Feedback holds SwayFeedback..SwayFeedback4.
	Feedback [4]float64
}

// Session is the long-lived engine state: both chains, the bone selection and
// the layer switch. It is created at startup and lives for the process.
// Not safe for concurrent use; the host calls in from one goroutine.
type Session struct {
	ID uuid.UUID

	Sway   *pendulum.Chain
	Wobble *pendulum.Chain

	Selection Selection

	multiplier float64
	active     bool
}

// NewSession builds the chains from cfg.
func NewSession(cfg *Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sway, err := pendulum.New(cfg.Sway)
	if err != nil {
		return nil, err
	}
	wobble, err := pendulum.New(cfg.Wobble)
	if err != nil {
		return nil, err
	}

	return &Session{
		ID:         uuid.New(),
		Sway:       sway,
		Wobble:     wobble,
		multiplier: cfg.Multiplier,
		active:     cfg.Defaults.Active,
	}, nil
}

// Drive advances both chains one tick from the chest position. The wobble
// chain is driven by the inverted, doubled sway tail.
func (s *Session) Drive(chestX, chestY float64) {
	s.Sway.SetDriveValue(finite(chestY*s.multiplier - chestX))
	s.Wobble.SetDriveValue(-2 * s.Sway.Value(swayTail))
}

// Readout derives the sway and feedback scalars from the current chain state.
func (s *Session) Readout() Readout {
	right := s.Sway.Value(swayTail)
	w3 := s.Wobble.Value(3)
	return Readout{
		SwayLeft:  -right,
		SwayRight: right,
		Feedback: [4]float64{
			w3 * 1,
			s.Wobble.Value(4) * 3,
			w3 * 2,
			s.Wobble.Value(5) * 3,
		},
	}
}

// finite returns v, or 0 when v is NaN or infinite.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Active reports the layer switch.
func (s *Session) Active() bool { return s.active }

// SetActive sets the layer switch and reports whether it changed.
func (s *Session) SetActive(on bool) bool {
	changed := s.active != on
	s.active = on
	return changed
}

// Multiplier returns the chest multiplier.
func (s *Session) Multiplier() float64 { return s.multiplier }
