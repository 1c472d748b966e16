// Package armsway is the pose application engine: it drives the sway and
// wobble pendulum chains from the avatar's chest displacement, publishes the
// resulting sway values to the host parameter store, and writes Euler
// corrections onto the selected bones of the host's pose frame.
//
// The host owns the frame loop. Each tick it calls Controller.Tick, then, if
// the layer reports active, Layer.Update with the frame it wants adjusted.
// Nothing here blocks or spawns goroutines.
package armsway

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/teslashibe/go-armsway/pkg/params"
	"github.com/teslashibe/go-armsway/pkg/qmath"
	"github.com/teslashibe/go-armsway/pkg/skeleton"
)

// PoseLayer is the per-frame contract the host composes with its other layers.
// The read accessors report the frame most recently passed to Update.
type PoseLayer interface {
	IsActive() bool
	BoneRotation(b skeleton.Bone) qmath.Quat
	BonePosition(b skeleton.Bone) mgl64.Vec3
	BoneScale(b skeleton.Bone) mgl64.Vec3
	RootPosition() mgl64.Vec3
	RootRotation() qmath.Quat
	Update(frame *Frame)
}

// BoneNamer resolves a bone's display name.
type BoneNamer interface {
	BoneName(b skeleton.Bone) string
}

// LayerRegistrar accepts pose layers.
type LayerRegistrar interface {
	RegisterPoseLayer(l PoseLayer)
}

// Host is everything the engine consumes from the animation host.
type Host interface {
	params.Store
	params.Triggers
	BoneNamer
	LayerRegistrar
}

// Ensure Layer implements PoseLayer
var _ PoseLayer = (*Layer)(nil)
