package armsway

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/teslashibe/go-armsway/pkg/qmath"
	"github.com/teslashibe/go-armsway/pkg/skeleton"
)

// Frame is the host's pose snapshot for one tick. The engine borrows it for
// the duration of Update and only rewrites entries of Rotations.
type Frame struct {
	Rotations map[skeleton.Bone]qmath.Quat
	Positions map[skeleton.Bone]mgl64.Vec3
	Scales    map[skeleton.Bone]mgl64.Vec3

	RootPosition mgl64.Vec3
	RootRotation qmath.Quat
}

// NewFrame returns a rest pose for every bone: identity rotations, zero
// positions and unit scales.
func NewFrame() *Frame {
	f := &Frame{
		Rotations:    make(map[skeleton.Bone]qmath.Quat, skeleton.BoneCount),
		Positions:    make(map[skeleton.Bone]mgl64.Vec3, skeleton.BoneCount),
		Scales:       make(map[skeleton.Bone]mgl64.Vec3, skeleton.BoneCount),
		RootRotation: qmath.Identity(),
	}
	for _, b := range skeleton.All() {
		f.Rotations[b] = qmath.Identity()
		f.Positions[b] = mgl64.Vec3{}
		f.Scales[b] = mgl64.Vec3{1, 1, 1}
	}
	return f
}

// Clone deep-copies the frame.
func (f *Frame) Clone() *Frame {
	c := &Frame{
		Rotations:    make(map[skeleton.Bone]qmath.Quat, len(f.Rotations)),
		Positions:    make(map[skeleton.Bone]mgl64.Vec3, len(f.Positions)),
		Scales:       make(map[skeleton.Bone]mgl64.Vec3, len(f.Scales)),
		RootPosition: f.RootPosition,
		RootRotation: f.RootRotation,
	}
	for b, q := range f.Rotations {
		c.Rotations[b] = q
	}
	for b, v := range f.Positions {
		c.Positions[b] = v
	}
	for b, v := range f.Scales {
		c.Scales[b] = v
	}
	return c
}
