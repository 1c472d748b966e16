// Package skeleton describes the standard humanoid rig: bone identifiers,
// display names, the body regions that are toggled together, and how each
// bone's correction parameters map onto Euler axes.
package skeleton

// Bone identifies one joint of the humanoid rig. Values match the host's
// bone enumeration and must not be reordered.
type Bone int

const (
	Hips Bone = iota
	LeftUpperLeg
	RightUpperLeg
	LeftLowerLeg
	RightLowerLeg
	LeftFoot
	RightFoot
	Spine
	Chest
	Neck
	Head
	LeftShoulder
	RightShoulder
	LeftUpperArm
	RightUpperArm
	LeftLowerArm
	RightLowerArm
	LeftHand
	RightHand
	LeftToes
	RightToes
	LeftEye
	RightEye
	Jaw
	LeftThumbProximal
	LeftThumbIntermediate
	LeftThumbDistal
	LeftIndexProximal
	LeftIndexIntermediate
	LeftIndexDistal
	LeftMiddleProximal
	LeftMiddleIntermediate
	LeftMiddleDistal
	LeftRingProximal
	LeftRingIntermediate
	LeftRingDistal
	LeftLittleProximal
	LeftLittleIntermediate
	LeftLittleDistal
	RightThumbProximal
	RightThumbIntermediate
	RightThumbDistal
	RightIndexProximal
	RightIndexIntermediate
	RightIndexDistal
	RightMiddleProximal
	RightMiddleIntermediate
	RightMiddleDistal
	RightRingProximal
	RightRingIntermediate
	RightRingDistal
	RightLittleProximal
	RightLittleIntermediate
	RightLittleDistal
	UpperChest

	// BoneCount is the number of real bones.
	BoneCount
)

var boneNames = [BoneCount]string{
	"Hips",
	"LeftUpperLeg",
	"RightUpperLeg",
	"LeftLowerLeg",
	"RightLowerLeg",
	"LeftFoot",
	"RightFoot",
	"Spine",
	"Chest",
	"Neck",
	"Head",
	"LeftShoulder",
	"RightShoulder",
	"LeftUpperArm",
	"RightUpperArm",
	"LeftLowerArm",
	"RightLowerArm",
	"LeftHand",
	"RightHand",
	"LeftToes",
	"RightToes",
	"LeftEye",
	"RightEye",
	"Jaw",
	"LeftThumbProximal",
	"LeftThumbIntermediate",
	"LeftThumbDistal",
	"LeftIndexProximal",
	"LeftIndexIntermediate",
	"LeftIndexDistal",
	"LeftMiddleProximal",
	"LeftMiddleIntermediate",
	"LeftMiddleDistal",
	"LeftRingProximal",
	"LeftRingIntermediate",
	"LeftRingDistal",
	"LeftLittleProximal",
	"LeftLittleIntermediate",
	"LeftLittleDistal",
	"RightThumbProximal",
	"RightThumbIntermediate",
	"RightThumbDistal",
	"RightIndexProximal",
	"RightIndexIntermediate",
	"RightIndexDistal",
	"RightMiddleProximal",
	"RightMiddleIntermediate",
	"RightMiddleDistal",
	"RightRingProximal",
	"RightRingIntermediate",
	"RightRingDistal",
	"RightLittleProximal",
	"RightLittleIntermediate",
	"RightLittleDistal",
	"UpperChest",
}

// Valid reports whether b is a real bone.
func (b Bone) Valid() bool {
	return b >= 0 && b < BoneCount
}

// Name returns the display name, or "" for an unknown bone.
func (b Bone) Name() string {
	if !b.Valid() {
		return ""
	}
	return boneNames[b]
}

// String implements fmt.Stringer.
func (b Bone) String() string {
	if !b.Valid() {
		return "Bone(?)"
	}
	return boneNames[b]
}

// Lookup finds a bone by display name.
func Lookup(name string) (Bone, bool) {
	for i, n := range boneNames {
		if n == name {
			return Bone(i), true
		}
	}
	return 0, false
}

// All returns every bone in enumeration order.
func All() []Bone {
	out := make([]Bone, BoneCount)
	for i := range out {
		out[i] = Bone(i)
	}
	return out
}
