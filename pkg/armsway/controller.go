package armsway

import (
	"log/slog"

	"github.com/teslashibe/go-armsway/pkg/params"
	"github.com/teslashibe/go-armsway/pkg/skeleton"
)

// Controller is the host-facing half of the engine. It owns the session,
// reads the switch parameters every tick and steps the chains; the Layer it
// registers does the per-frame pose work.
type Controller struct {
	host    Host
	cfg     *Config
	session *Session
	layer   *Layer
	logger  *slog.Logger

	allowed [skeleton.RegionCount]bool
	started bool
}

// NewController creates the session and pose layer for host.
func NewController(host Host, opts ...Option) (*Controller, error) {
	if host == nil {
		return nil, ErrNilHost
	}
	cfg := DefaultConfig()
	cfg.Apply(opts...)
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	session, err := NewSession(cfg)
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger.With("component", "armsway", "session", session.ID.String())
	cfg.Logger = logger

	return &Controller{
		host:    host,
		cfg:     cfg,
		session: session,
		layer:   NewLayer(session, host, cfg),
		logger:  logger,
		allowed: cfg.Defaults.allowed(),
	}, nil
}

// Session returns the engine state.
func (c *Controller) Session() *Session { return c.session }

// Layer returns the pose layer.
func (c *Controller) Layer() *Layer { return c.layer }

// Start registers the pose layer, seeds the switch parameters with their
// defaults and zeroes the correction parameters of every region's bones.
// Calling it twice is a no-op.
func (c *Controller) Start() {
	if c.started {
		return
	}
	c.started = true

	c.host.RegisterPoseLayer(c.layer)

	d := c.cfg.Defaults
	c.host.SetFloat(params.ArmSwayActive, params.Bool(d.Active))
	c.host.SetFloat(params.LeftSwayActive, params.Bool(d.LeftArm))
	c.host.SetFloat(params.RightSwayActive, params.Bool(d.RightArm))
	c.host.SetFloat(params.LeftLegSwayActive, params.Bool(d.LeftLeg))
	c.host.SetFloat(params.RightLegSwayActive, params.Bool(d.RightLeg))
	c.host.SetFloat(params.LeftFingerActive, params.Bool(d.LeftFingers))
	c.host.SetFloat(params.RightFingerActive, params.Bool(d.RightFingers))
	c.host.SetFloat(params.LeftMotionDetect, 0)
	c.host.SetFloat(params.RightMotionDetect, 0)
	c.host.SetFloat(params.MirrorTracking, 0)

	c.host.SetString(params.CurrentPose, params.DefaultPose)

	c.initBoneParameters()
	c.syncSwitches()

	c.logger.Info("arm sway started",
		"active", d.Active,
		"multiplier", c.cfg.Multiplier,
		"sway_nodes", c.session.Sway.Len(),
		"wobble_nodes", c.session.Wobble.Len())
}

// initBoneParameters zeroes the three correction parameters of every bone
// that any region can select.
func (c *Controller) initBoneParameters() {
	n := 0
	for _, r := range skeleton.Regions() {
		for _, b := range r.Bones() {
			for _, key := range c.layer.BoneKeys(b) {
				c.host.SetFloat(key, 0)
				n++
			}
		}
	}
	c.logger.Debug("bone parameters initialized", "count", n)
}

// Tick runs once per host frame before the layer update: it steps the chains
// from the chest position, then refreshes the layer switch and the region
// selection from the parameter store.
func (c *Controller) Tick(chestX, chestY float64) {
	c.session.Drive(chestX, chestY)
	c.syncSwitches()
}

// syncSwitches applies the store's switch parameters.
//
// Motion detection hands a side back to real tracking: while a side reports
// motion its arm and fingers are never swayed. With mirrored tracking the
// detect parameters are swapped.
func (c *Controller) syncSwitches() {
	h := c.host

	if c.session.SetActive(params.Flag(h, params.ArmSwayActive)) {
		c.logger.Info("arm sway layer toggled", "active", c.session.Active())
	}

	leftDetect, rightDetect := params.LeftMotionDetect, params.RightMotionDetect
	if h.Float(params.MirrorTracking) != 0 {
		leftDetect, rightDetect = rightDetect, leftDetect
	}
	leftFree := h.Float(leftDetect) == 0
	rightFree := h.Float(rightDetect) == 0

	leftArm := params.Flag(h, params.LeftSwayActive)
	rightArm := params.Flag(h, params.RightSwayActive)

	var flags [skeleton.RegionCount]bool
	flags[skeleton.LeftArm] = c.allowed[skeleton.LeftArm] && leftFree && leftArm
	flags[skeleton.LeftFingers] = c.allowed[skeleton.LeftFingers] && leftFree && leftArm
	flags[skeleton.RightArm] = c.allowed[skeleton.RightArm] && rightFree && rightArm
	flags[skeleton.RightFingers] = c.allowed[skeleton.RightFingers] && rightFree && rightArm
	flags[skeleton.LeftLeg] = c.allowed[skeleton.LeftLeg] && params.Flag(h, params.LeftLegSwayActive)
	flags[skeleton.RightLeg] = c.allowed[skeleton.RightLeg] && params.Flag(h, params.RightLegSwayActive)

	if c.session.Selection.SetAll(flags) {
		c.logger.Debug("sway selection changed",
			"flags", c.session.Selection.Flags(),
			"bones", c.session.Selection.Len())
	}
}
