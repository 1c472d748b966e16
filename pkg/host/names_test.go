package host

import (
	"testing"

	"github.com/teslashibe/go-armsway/pkg/skeleton"
)

func TestParseBoneNames(t *testing.T) {
	got, err := ParseBoneNames(" LeftHand=J_Bip_L_Hand, LeftThumbProximal = J_Bip_L_Thumb1 ,")
	if err != nil {
		t.Fatalf("ParseBoneNames: %v", err)
	}
	want := map[skeleton.Bone]string{
		skeleton.LeftHand:          "J_Bip_L_Hand",
		skeleton.LeftThumbProximal: "J_Bip_L_Thumb1",
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for b, n := range want {
		if got[b] != n {
			t.Errorf("%s = %q, want %q", b, got[b], n)
		}
	}

	if names, err := ParseBoneNames(""); err != nil || len(names) != 0 {
		t.Errorf(`ParseBoneNames("") = %v, %v`, names, err)
	}

	for _, bad := range []string{"Tail=X", "LeftHand", "LeftHand="} {
		if _, err := ParseBoneNames(bad); err == nil {
			t.Errorf("ParseBoneNames(%q) accepted", bad)
		}
	}
}

func TestParseRegions(t *testing.T) {
	got, err := ParseRegions("leftarm, RightFingers")
	if err != nil {
		t.Fatalf("ParseRegions: %v", err)
	}
	if len(got) != 2 || got[0] != skeleton.LeftArm || got[1] != skeleton.RightFingers {
		t.Errorf("ParseRegions = %v", got)
	}
	if _, err := ParseRegions("leftarm,tail"); err == nil {
		t.Error("unknown region accepted")
	}
}

func TestSim_SetBoneNamesFeedsEngineKeys(t *testing.T) {
	sim := NewSim(DefaultMotion())
	names, err := ParseBoneNames("LeftThumbProximal=J_Bip_L_Thumb1")
	if err != nil {
		t.Fatal(err)
	}
	sim.SetBoneNames(names)
	newEngine(t, sim)

	if !sim.Has("J_Bip_L_Thumb1Curl") {
		t.Error("renamed thumb did not get a Curl parameter")
	}
	if sim.Has("LeftThumbProximalCurl") {
		t.Error("humanoid name still used after override")
	}
}
