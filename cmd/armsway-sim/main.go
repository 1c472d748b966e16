// armsway-sim drives the arm sway engine against a simulated host and logs
// the published sway values.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/teslashibe/go-armsway/internal/config"
	"github.com/teslashibe/go-armsway/internal/log"
	"github.com/teslashibe/go-armsway/pkg/armsway"
	"github.com/teslashibe/go-armsway/pkg/host"
	"github.com/teslashibe/go-armsway/pkg/params"
)

func main() {
	config.LoadEnv()

	debug := flag.Bool("debug", false, "Enable verbose debug logging")
	fps := flag.Int("fps", config.FPS(), "Host frame rate")
	duration := flag.Duration("duration", config.SimDuration(), "Run time (0 runs until interrupted)")
	multiplier := flag.Float64("multiplier", config.Multiplier(), "Vertical chest multiplier")
	bob := flag.Float64("bob", config.BobAmplitude(), "Vertical chest amplitude")
	sway := flag.Float64("sway", config.SwayAmplitude(), "Horizontal chest amplitude")
	legs := flag.Bool("legs", config.Legs(), "Allow leg sway")
	renormalize := flag.Bool("renormalize", false, "Renormalize corrected rotations")
	regions := flag.String("regions", "", "Comma separated regions allowed to sway, e.g. leftarm,rightarm (default arms and fingers)")
	boneNames := flag.String("bone-names", "", "Display name overrides, e.g. LeftHand=J_Bip_L_Hand")
	flag.Parse()

	level := config.LogLevel()
	if *debug {
		level = "debug"
	}
	log.Init(level)

	opts := options{
		fps:         *fps,
		duration:    *duration,
		multiplier:  *multiplier,
		bob:         *bob,
		sway:        *sway,
		legs:        *legs,
		renormalize: *renormalize,
		regions:     *regions,
		boneNames:   *boneNames,
	}
	if err := run(opts); err != nil {
		log.Error("armsway-sim failed", "error", err)
		os.Exit(1)
	}
}

type options struct {
	fps         int
	duration    time.Duration
	multiplier  float64
	bob         float64
	sway        float64
	legs        bool
	renormalize bool
	regions     string
	boneNames   string
}

func run(o options) error {
	if o.fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", o.fps)
	}

	defaults := armsway.DefaultConfig().Defaults
	if o.regions != "" {
		allowed, err := host.ParseRegions(o.regions)
		if err != nil {
			return err
		}
		defaults = armsway.Defaults{Active: true}
		for _, r := range allowed {
			defaults.Allow(r, true)
		}
	}
	if o.legs {
		defaults.LeftLeg, defaults.RightLeg = true, true
	}

	names, err := host.ParseBoneNames(o.boneNames)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	if o.duration > 0 {
		var stop context.CancelFunc
		ctx, stop = context.WithTimeout(ctx, o.duration)
		defer stop()
	}

	motion := host.DefaultMotion()
	motion.BobAmplitude = o.bob
	motion.SwayAmplitude = o.sway
	sim := host.NewSim(motion)
	sim.SetBoneNames(names)

	ctrl, err := armsway.NewController(sim,
		armsway.WithMultiplier(o.multiplier),
		armsway.WithDefaults(defaults),
		armsway.WithRenormalize(o.renormalize),
		armsway.WithLogger(log.L()),
	)
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}
	ctrl.Start()

	// Tune every region to follow the chain one to one.
	for _, side := range []params.Side{params.Left, params.Right} {
		for _, region := range params.SwayRegions {
			sim.SetFloat(params.RegionMult(side, region), 1)
		}
	}

	loop := host.NewLoop(ctrl, sim, config.FrameInterval(o.fps), log.L())
	err = loop.Run(ctx)

	s := loop.Stats()
	log.Info("simulation finished",
		"ticks", s.Ticks,
		"active_ticks", s.ActiveTicks,
		"elapsed", s.Elapsed,
		"sway_left", s.SwayLeft,
		"sway_right", s.SwayRight,
		"feedback", sim.Float(params.SwayFeedback))

	snap := sim.Snapshot()
	for _, k := range sim.Keys() {
		if strings.HasSuffix(k, "Sway") {
			log.Debug("region sway", "param", k, "value", snap[k])
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
