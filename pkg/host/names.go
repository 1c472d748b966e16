package host

import (
	"fmt"
	"strings"

	"github.com/teslashibe/go-armsway/pkg/skeleton"
)

// ParseBoneNames parses "LeftHand=J_Bip_L_Hand,RightHand=J_Bip_R_Hand" into
// display name overrides keyed by humanoid bone. An empty string yields none.
func ParseBoneNames(s string) (map[skeleton.Bone]string, error) {
	out := make(map[skeleton.Bone]string)
	for _, pair := range splitList(s) {
		bone, name, ok := strings.Cut(pair, "=")
		bone, name = strings.TrimSpace(bone), strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("bone name %q: want Bone=Name", pair)
		}
		b, found := skeleton.Lookup(bone)
		if !found {
			return nil, fmt.Errorf("bone name %q: unknown bone %q", pair, bone)
		}
		out[b] = name
	}
	return out, nil
}

// ParseRegions parses a comma separated region list such as
// "leftarm,rightfingers".
func ParseRegions(s string) ([]skeleton.Region, error) {
	var out []skeleton.Region
	for _, key := range splitList(s) {
		r, ok := skeleton.ParseRegion(strings.ToLower(key))
		if !ok {
			return nil, fmt.Errorf("unknown region %q", key)
		}
		out = append(out, r)
	}
	return out, nil
}

// SetBoneNames applies every override in names.
func (s *Sim) SetBoneNames(names map[skeleton.Bone]string) {
	for b, n := range names {
		s.SetBoneName(b, n)
	}
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
