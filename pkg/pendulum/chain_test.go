package pendulum

import (
	"errors"
	"math"
	"testing"
)

func maxAbs(vs []float64) float64 {
	m := 0.0
	for _, v := range vs {
		m = math.Max(m, math.Abs(v))
	}
	return m
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"sway preset", SwayConfig(), nil},
		{"wobble preset", WobbleConfig(), nil},
		{"no nodes", Config{Stiffness: 1}, ErrNoNodes},
		{"zero stiffness", Config{Nodes: 2}, ErrStiffness},
		{"nan stiffness", Config{Nodes: 2, Stiffness: math.NaN()}, ErrStiffness},
		{"full damping", Config{Nodes: 2, Stiffness: 1, Damping: 1}, ErrDamping},
		{"negative lag", Config{Nodes: 2, Stiffness: 1, Lag: -0.1}, ErrFraction},
		{"coupling above one", Config{Nodes: 2, Stiffness: 1, Coupling: 1.5}, ErrFraction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.cfg)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if c.Len() != tt.cfg.Nodes {
					t.Errorf("Len() = %d, want %d", c.Len(), tt.cfg.Nodes)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestChain_StartsAtRest(t *testing.T) {
	c := MustNew(WobbleConfig())
	for i := 0; i < c.Len(); i++ {
		if v := c.Value(i); v != 0 {
			t.Errorf("node %d = %v before first tick", i, v)
		}
	}
}

func TestChain_FirstTickReachesTail(t *testing.T) {
	for _, cfg := range []Config{SwayConfig(), WobbleConfig()} {
		c := MustNew(cfg)
		c.SetDriveValue(50)

		for i := 0; i < c.Len(); i++ {
			v := c.Value(i)
			if v == 0 {
				t.Errorf("nodes=%d: node %d still at rest after one tick", cfg.Nodes, i)
			}
		}
		// Root lags behind a positive jump.
		if c.Value(0) >= 0 {
			t.Errorf("nodes=%d: root swing = %v, want negative", cfg.Nodes, c.Value(0))
		}
		if c.Drive() != 50 {
			t.Errorf("Drive() = %v, want 50", c.Drive())
		}
	}
}

func TestChain_ConvergesAtRest(t *testing.T) {
	for _, cfg := range []Config{SwayConfig(), WobbleConfig()} {
		c := MustNew(cfg)
		c.SetDriveValue(25)
		for i := 0; i < 8000; i++ {
			c.SetDriveValue(0)
		}
		if m := maxAbs(c.Values()); m > 1e-9 {
			t.Errorf("nodes=%d: max swing after settling = %g", cfg.Nodes, m)
		}
	}
}

func TestChain_ConstantDriveSettlesToZeroSwing(t *testing.T) {
	for _, cfg := range []Config{SwayConfig(), WobbleConfig()} {
		c := MustNew(cfg)
		for i := 0; i < 8000; i++ {
			c.SetDriveValue(65)
		}
		if m := maxAbs(c.Values()); m > 1e-9 {
			t.Errorf("nodes=%d: max swing under constant drive = %g", cfg.Nodes, m)
		}
	}
}

func TestChain_StepResponseBounded(t *testing.T) {
	for _, cfg := range []Config{SwayConfig(), WobbleConfig()} {
		c := MustNew(cfg)
		peak := 0.0
		for i := 0; i < 8000; i++ {
			c.SetDriveValue(1)
			peak = math.Max(peak, maxAbs(c.Values()))
		}
		if peak > 1 {
			t.Errorf("nodes=%d: unit step produced swing %v", cfg.Nodes, peak)
		}
	}
}

func TestChain_PulsePropagatesWithLag(t *testing.T) {
	for _, cfg := range []Config{SwayConfig(), WobbleConfig()} {
		c := MustNew(cfg)
		peakTick := make([]int, c.Len())
		peakMag := make([]float64, c.Len())

		for tick := 0; tick < 8000; tick++ {
			drive := 0.0
			if tick == 0 {
				drive = 1
			}
			c.SetDriveValue(drive)
			for i := 0; i < c.Len(); i++ {
				if m := math.Abs(c.Value(i)); m > peakMag[i]+1e-12 {
					peakMag[i] = m
					peakTick[i] = tick
				}
			}
		}

		for i := 1; i < c.Len(); i++ {
			if peakTick[i] < peakTick[i-1] {
				t.Errorf("nodes=%d: node %d peaked at tick %d, before node %d at tick %d",
					cfg.Nodes, i, peakTick[i], i-1, peakTick[i-1])
			}
			if peakMag[i] == 0 {
				t.Errorf("nodes=%d: node %d never moved", cfg.Nodes, i)
			}
		}
		t.Logf("nodes=%d peak ticks %v", cfg.Nodes, peakTick)
	}
}

func TestChain_Deterministic(t *testing.T) {
	a := MustNew(WobbleConfig())
	b := MustNew(WobbleConfig())
	for i := 0; i < 500; i++ {
		x := math.Sin(float64(i) / 7)
		a.SetDriveValue(x)
		b.SetDriveValue(x)
	}
	for i := 0; i < a.Len(); i++ {
		if a.Value(i) != b.Value(i) {
			t.Fatalf("node %d diverged: %v vs %v", i, a.Value(i), b.Value(i))
		}
	}
}

func TestChain_Reset(t *testing.T) {
	c := MustNew(SwayConfig())
	for i := 0; i < 10; i++ {
		c.SetDriveValue(3)
	}
	if c.Ticks() != 10 {
		t.Errorf("Ticks() = %d, want 10", c.Ticks())
	}

	c.Reset()
	if c.Ticks() != 0 || c.Drive() != 0 || maxAbs(c.Values()) != 0 {
		t.Errorf("Reset left state: ticks=%d drive=%v values=%v", c.Ticks(), c.Drive(), c.Values())
	}

	// Same as a fresh chain afterwards.
	fresh := MustNew(SwayConfig())
	c.SetDriveValue(50)
	fresh.SetDriveValue(50)
	if c.Value(3) != fresh.Value(3) {
		t.Errorf("after Reset tail = %v, fresh = %v", c.Value(3), fresh.Value(3))
	}
}

func TestChain_ValueOutOfRangePanics(t *testing.T) {
	c := MustNew(SwayConfig())
	for _, idx := range []int{-1, 4, 100} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Value(%d) did not panic", idx)
				}
			}()
			_ = c.Value(idx)
		}()
	}
}

func TestChain_SingleNode(t *testing.T) {
	c := MustNew(Config{Nodes: 1, Stiffness: 0.5, Damping: 0.1})
	c.SetDriveValue(10)
	if c.Value(0) >= 0 {
		t.Errorf("single node swing = %v, want negative", c.Value(0))
	}
}

func TestMustNew_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew did not panic")
		}
	}()
	MustNew(Config{})
}

func TestChain_NonFiniteDriveTreatedAsZero(t *testing.T) {
	a := MustNew(WobbleConfig())
	b := MustNew(WobbleConfig())

	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		a.SetDriveValue(x)
		b.SetDriveValue(0)
	}
	for i := 0; i < 50; i++ {
		a.SetDriveValue(10)
		b.SetDriveValue(10)
	}

	va, vb := a.Values(), b.Values()
	for i := range va {
		if va[i] != vb[i] {
			t.Errorf("node %d = %v, want %v", i, va[i], vb[i])
		}
	}
	if a.Drive() != 10 {
		t.Errorf("Drive() = %v, want 10", a.Drive())
	}
}
