package skeleton

// Region is a group of bones toggled together.
type Region int

// Regions in declaration order. Bone lists are built in this order.
const (
	LeftArm Region = iota
	RightArm
	LeftFingers
	RightFingers
	LeftLeg
	RightLeg

	RegionCount
)

var regionNames = [RegionCount]string{
	"leftarm",
	"rightarm",
	"leftfingers",
	"rightfingers",
	"leftleg",
	"rightleg",
}

var regionBones = [RegionCount][]Bone{
	LeftArm:  {LeftShoulder, LeftUpperArm, LeftLowerArm, LeftHand},
	RightArm: {RightShoulder, RightUpperArm, RightLowerArm, RightHand},
	LeftFingers: {
		LeftThumbProximal, LeftThumbIntermediate, LeftThumbDistal,
		LeftIndexProximal, LeftIndexIntermediate, LeftIndexDistal,
		LeftMiddleProximal, LeftMiddleIntermediate, LeftMiddleDistal,
		LeftRingProximal, LeftRingIntermediate, LeftRingDistal,
		LeftLittleProximal, LeftLittleIntermediate, LeftLittleDistal,
	},
	RightFingers: {
		RightThumbProximal, RightThumbIntermediate, RightThumbDistal,
		RightIndexProximal, RightIndexIntermediate, RightIndexDistal,
		RightMiddleProximal, RightMiddleIntermediate, RightMiddleDistal,
		RightRingProximal, RightRingIntermediate, RightRingDistal,
		RightLittleProximal, RightLittleIntermediate, RightLittleDistal,
	},
	LeftLeg:  {LeftUpperLeg, LeftLowerLeg, LeftFoot},
	RightLeg: {RightUpperLeg, RightLowerLeg, RightFoot},
}

// Regions returns every region in declaration order.
func Regions() []Region {
	out := make([]Region, RegionCount)
	for i := range out {
		out[i] = Region(i)
	}
	return out
}

// String returns the region key, e.g. "leftarm".
func (r Region) String() string {
	if r < 0 || r >= RegionCount {
		return "region(?)"
	}
	return regionNames[r]
}

// Bones returns a copy of the region's fixed bone list.
func (r Region) Bones() []Bone {
	if r < 0 || r >= RegionCount {
		return nil
	}
	return append([]Bone(nil), regionBones[r]...)
}

// ParseRegion finds a region by key.
func ParseRegion(s string) (Region, bool) {
	for i, n := range regionNames {
		if n == s {
			return Region(i), true
		}
	}
	return 0, false
}
