package host

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/teslashibe/go-armsway/pkg/armsway"
)

// FrameSource supplies the pose and chest position for each tick.
type FrameSource interface {
	CurrentFrame() *armsway.Frame
	Chest(t time.Duration) (x, y float64)
}

// Stats is a snapshot of loop counters.
type Stats struct {
	Ticks       uint64
	ActiveTicks uint64
	Elapsed     time.Duration
	SwayLeft    float64
	SwayRight   float64
}

// Loop runs the engine at a fixed rate, one host frame per tick.
//
// Each tick steps the controller from the chest position, then, if the layer
// is active, borrows a frame from the source and lets the layer correct it.
// Simulated time advances by exactly one rate per tick, so runs are
// reproducible regardless of scheduling jitter.
type Loop struct {
	ctrl   *armsway.Controller
	src    FrameSource
	rate   time.Duration
	logger *slog.Logger

	mu       sync.RWMutex
	stats    Stats
	last     *armsway.Frame
	running  bool
	stop     chan struct{}
	stopOnce sync.Once

	heartbeat uint64
}

// NewLoop creates a loop. rate should be ~16ms for a 60Hz host.
func NewLoop(ctrl *armsway.Controller, src FrameSource, rate time.Duration, logger *slog.Logger) *Loop {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loop{
		ctrl:      ctrl,
		src:       src,
		rate:      rate,
		logger:    logger.With("component", "loop"),
		stop:      make(chan struct{}),
		heartbeat: 100,
	}
}

// Run starts the loop. Blocks until ctx is done or Stop is called.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.rate)
	defer ticker.Stop()

	l.mu.Lock()
	l.running = true
	l.mu.Unlock()
	defer func() {
		l.mu.Lock()
		l.running = false
		l.mu.Unlock()
	}()

	l.logger.Info("loop started", "hz", 1.0/l.rate.Seconds())

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("loop stopped", "reason", ctx.Err(), "ticks", l.Stats().Ticks)
			return ctx.Err()
		case <-l.stop:
			l.logger.Info("loop stopped", "ticks", l.Stats().Ticks)
			return nil
		case <-ticker.C:
			l.Step()
		}
	}
}

// Stop halts the loop. Safe to call more than once.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

// Running reports whether Run is executing.
func (l *Loop) Running() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.running
}

// Step executes one host frame synchronously.
func (l *Loop) Step() {
	l.mu.RLock()
	elapsed := l.stats.Elapsed
	l.mu.RUnlock()

	// 1. Chains and switches
	x, y := l.src.Chest(elapsed)
	l.ctrl.Tick(x, y)

	// 2. Pose correction
	layer := l.ctrl.Layer()
	var frame *armsway.Frame
	if layer.IsActive() {
		frame = l.src.CurrentFrame()
		layer.Update(frame)
	}
	r := l.ctrl.Session().Readout()

	l.mu.Lock()
	l.stats.Ticks++
	l.stats.Elapsed += l.rate
	if frame != nil {
		l.stats.ActiveTicks++
		l.last = frame
	}
	l.stats.SwayLeft = r.SwayLeft
	l.stats.SwayRight = r.SwayRight
	s := l.stats
	l.mu.Unlock()

	// 3. Periodic heartbeat
	if s.Ticks%l.heartbeat == 0 {
		l.logger.Debug("heartbeat",
			"ticks", s.Ticks,
			"active_ticks", s.ActiveTicks,
			"sway_left", s.SwayLeft,
			"sway_right", s.SwayRight)
	}
}

// Stats returns the loop counters.
func (l *Loop) Stats() Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.stats
}

// LastFrame returns the most recent frame corrected by the layer, or nil if
// the layer has not been active yet.
func (l *Loop) LastFrame() *armsway.Frame {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.last
}
