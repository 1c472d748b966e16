package skeleton

import "strings"

// AxisMode says which correction parameters feed the X, Y and Z Euler axes.
// Finger joints expose a single "Curl" instead of full three-axis freedom.
type AxisMode int

const (
	// AxisXYZ reads <bone>X, <bone>Y, <bone>Z.
	AxisXYZ AxisMode = iota
	// AxisThumb reads <bone>X, <bone>Curl, <bone>Z.
	AxisThumb
	// AxisFinger reads <bone>X, <bone>Y, <bone>Curl.
	AxisFinger
)

// Suffixes returns the parameter suffixes for the X, Y and Z axes.
func (m AxisMode) Suffixes() [3]string {
	switch m {
	case AxisThumb:
		return [3]string{"X", "Curl", "Z"}
	case AxisFinger:
		return [3]string{"X", "Y", "Curl"}
	default:
		return [3]string{"X", "Y", "Z"}
	}
}

// Classify derives the axis mode from a display name. It inspects the string,
// so call it once per bone at startup and keep the result.
func Classify(name string) AxisMode {
	switch {
	case strings.Contains(name, "Thumb"):
		return AxisThumb
	case strings.Contains(name, "Index"),
		strings.Contains(name, "Middle"),
		strings.Contains(name, "Ring"),
		strings.Contains(name, "Little"):
		return AxisFinger
	default:
		return AxisXYZ
	}
}

var axisModes = func() [BoneCount]AxisMode {
	var t [BoneCount]AxisMode
	for i, name := range boneNames {
		t[i] = Classify(name)
	}
	return t
}()

// Axes returns the precomputed axis mode of b. Unknown bones use AxisXYZ.
func (b Bone) Axes() AxisMode {
	if !b.Valid() {
		return AxisXYZ
	}
	return axisModes[b]
}

// ParamKeys returns the three correction parameter names for a bone with the
// given display name, in X, Y, Z order.
func ParamKeys(name string, mode AxisMode) [3]string {
	s := mode.Suffixes()
	return [3]string{name + s[0], name + s[1], name + s[2]}
}
