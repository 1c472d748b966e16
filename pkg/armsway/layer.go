package armsway

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/teslashibe/go-armsway/pkg/params"
	"github.com/teslashibe/go-armsway/pkg/qmath"
	"github.com/teslashibe/go-armsway/pkg/skeleton"
)

// regionKeys are the multiplier and output keys of one sway region.
type regionKeys struct {
	mult string
	sway string
}

// Layer applies the sway corrections to a borrowed host frame.
type Layer struct {
	session  *Session
	store    params.Store
	triggers params.Triggers
	logger   *slog.Logger

	renormalize bool

	// Built once at startup so the per-frame path does no string work.
	boneKeys   [skeleton.BoneCount][3]string
	regionKeys [2][]regionKeys

	frame   *Frame
	missing [skeleton.BoneCount]bool
}

// NewLayer creates the pose layer for a session.
func NewLayer(s *Session, host Host, cfg *Config) *Layer {
	l := &Layer{
		session:     s,
		store:       host,
		triggers:    host,
		logger:      cfg.Logger,
		renormalize: cfg.Renormalize,
	}
	if l.logger == nil {
		l.logger = slog.Default()
	}

	for _, b := range skeleton.All() {
		mode := b.Axes()
		name := host.BoneName(b)
		switch name {
		case "", b.Name():
			name = b.Name()
		default:
			mode = skeleton.Classify(name)
		}
		l.boneKeys[b] = skeleton.ParamKeys(name, mode)
	}
	for _, side := range []params.Side{params.Left, params.Right} {
		for _, region := range params.SwayRegions {
			l.regionKeys[side] = append(l.regionKeys[side], regionKeys{
				mult: params.RegionMult(side, region),
				sway: params.RegionSway(side, region),
			})
		}
	}
	return l
}

// BoneKeys returns the three correction parameter names read for b.
func (l *Layer) BoneKeys(b skeleton.Bone) [3]string {
	if !b.Valid() {
		return [3]string{}
	}
	return l.boneKeys[b]
}

// IsActive reports whether the host should use this layer at all.
func (l *Layer) IsActive() bool {
	return l.session.Active()
}

// Update publishes this tick's sway values, fires the addon triggers, then
// corrects every selected bone in frame. An inactive layer leaves the frame
// and the store untouched.
func (l *Layer) Update(frame *Frame) {
	l.frame = frame
	if frame == nil || !l.session.Active() {
		return
	}

	r := l.session.Readout()
	l.publish(r)

	for _, name := range params.AddonTriggers {
		l.triggers.Call(name)
	}

	for _, b := range l.session.Selection.bones {
		rot, ok := frame.Rotations[b]
		if !ok {
			l.reportMissing(b)
			continue
		}
		keys := &l.boneKeys[b]
		q := qmath.RotateByEulerHost(rot,
			finite(l.store.Float(keys[0])),
			finite(l.store.Float(keys[1])),
			finite(l.store.Float(keys[2])))
		if l.renormalize {
			q = qmath.Normalize(q)
		}
		frame.Rotations[b] = q
	}
}

// publish writes the chain readout and the per-region sway values.
func (l *Layer) publish(r Readout) {
	l.store.SetFloat(params.SwayMultiplierL, r.SwayLeft)
	l.store.SetFloat(params.SwayMultiplierR, r.SwayRight)

	l.store.SetFloat(params.SwayFeedback, r.Feedback[0])
	l.store.SetFloat(params.SwayFeedback2, r.Feedback[1])
	l.store.SetFloat(params.SwayFeedback3, r.Feedback[2])
	l.store.SetFloat(params.SwayFeedback4, r.Feedback[3])

	sides := [2]float64{params.Left: r.SwayLeft, params.Right: r.SwayRight}
	for side, keys := range l.regionKeys {
		for _, k := range keys {
			l.store.SetFloat(k.sway, sides[side]*finite(l.store.Float(k.mult)))
		}
	}
}

// reportMissing logs a selected bone absent from the frame, once per bone.
func (l *Layer) reportMissing(b skeleton.Bone) {
	if l.missing[b] {
		return
	}
	l.missing[b] = true
	l.logger.Debug("bone missing from frame, skipped", "bone", b.String())
}

// Frame returns the frame most recently passed to Update.
func (l *Layer) Frame() *Frame {
	return l.frame
}

// BoneRotation returns b's rotation in the current frame, or identity.
func (l *Layer) BoneRotation(b skeleton.Bone) qmath.Quat {
	if l.frame != nil {
		if q, ok := l.frame.Rotations[b]; ok {
			return q
		}
	}
	return qmath.Identity()
}

// BonePosition returns b's position in the current frame, or zero.
func (l *Layer) BonePosition(b skeleton.Bone) mgl64.Vec3 {
	if l.frame != nil {
		return l.frame.Positions[b]
	}
	return mgl64.Vec3{}
}

// BoneScale returns b's scale multiplier in the current frame, or one.
func (l *Layer) BoneScale(b skeleton.Bone) mgl64.Vec3 {
	if l.frame != nil {
		if v, ok := l.frame.Scales[b]; ok {
			return v
		}
	}
	return mgl64.Vec3{1, 1, 1}
}

// RootPosition returns the frame's root position.
func (l *Layer) RootPosition() mgl64.Vec3 {
	if l.frame != nil {
		return l.frame.RootPosition
	}
	return mgl64.Vec3{}
}

// RootRotation returns the frame's root rotation.
func (l *Layer) RootRotation() qmath.Quat {
	if l.frame != nil {
		return l.frame.RootRotation
	}
	return qmath.Identity()
}
