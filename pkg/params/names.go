package params

// Literal parameter names shared with the host. They must match exactly.
const (
	ArmSwayActive      = "ArmSwayActive"
	LeftSwayActive     = "LeftSwayActive"
	RightSwayActive    = "RightSwayActive"
	LeftFingerActive   = "LeftFingerActive"
	RightFingerActive  = "RightFingerActive"
	LeftLegSwayActive  = "LeftLegSwayActive"
	RightLegSwayActive = "RightLegSwayActive"
	LeftMotionDetect   = "LeftMotionDetect"
	RightMotionDetect  = "RightMotionDetect"
	MirrorTracking     = "MirrorTracking"

	SwayMultiplierL = "SwayMultiplier_L"
	SwayMultiplierR = "SwayMultiplier_R"

	SwayFeedback  = "SwayFeedback"
	SwayFeedback2 = "SwayFeedback2"
	SwayFeedback3 = "SwayFeedback3"
	SwayFeedback4 = "SwayFeedback4"

	CurrentPose = "currentPose"
	DefaultPose = "DefaultPose"
)

// Trigger names fired after the sway values are published.
const (
	TriggerArmSwayAddon = "ArmSwayAddon"
	TriggerLeftAddon    = "LeftAddon"
	TriggerRightAddon   = "RightAddon"
)

// Triggers in the order they are fired.
var AddonTriggers = []string{TriggerArmSwayAddon, TriggerLeftAddon, TriggerRightAddon}

// Side is the left or right half of the body.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Right {
		return "Right"
	}
	return "Left"
}

// SwayRegions are the per-side tuning regions, shoulder to fingertip.
var SwayRegions = []string{"Shoulder", "Up", "Down", "Hand", "Finger"}

// RegionMult returns the multiplier key, e.g. "LeftShoulderMult".
func RegionMult(s Side, region string) string {
	return s.String() + region + "Mult"
}

// RegionSway returns the published sway key, e.g. "LeftShoulderSway".
func RegionSway(s Side, region string) string {
	return s.String() + region + "Sway"
}
