package armsway

import "github.com/teslashibe/go-armsway/pkg/skeleton"

// Selection holds the per-region on/off flags and the bone list derived from
// them. The list is rebuilt whenever a flag changes and is never edited
// directly.
type Selection struct {
	on    [skeleton.RegionCount]bool
	bones []skeleton.Bone
}

// Set switches a region and reports whether anything changed.
func (s *Selection) Set(r skeleton.Region, on bool) bool {
	if r < 0 || r >= skeleton.RegionCount || s.on[r] == on {
		return false
	}
	s.on[r] = on
	s.rebuild()
	return true
}

// SetAll replaces every flag at once and reports whether anything changed.
func (s *Selection) SetAll(flags [skeleton.RegionCount]bool) bool {
	if s.on == flags {
		return false
	}
	s.on = flags
	s.rebuild()
	return true
}

// Enabled reports a region's flag.
func (s *Selection) Enabled(r skeleton.Region) bool {
	if r < 0 || r >= skeleton.RegionCount {
		return false
	}
	return s.on[r]
}

// Flags returns every region flag.
func (s *Selection) Flags() [skeleton.RegionCount]bool {
	return s.on
}

// Bones returns a copy of the derived bone list.
func (s *Selection) Bones() []skeleton.Bone {
	return append([]skeleton.Bone(nil), s.bones...)
}

// Len returns the number of selected bones.
func (s *Selection) Len() int {
	return len(s.bones)
}

// rebuild concatenates enabled regions in declaration order, skipping duplicates.
func (s *Selection) rebuild() {
	var seen [skeleton.BoneCount]bool
	s.bones = s.bones[:0]
	for _, r := range skeleton.Regions() {
		if !s.on[r] {
			continue
		}
		for _, b := range r.Bones() {
			if seen[b] {
				continue
			}
			seen[b] = true
			s.bones = append(s.bones, b)
		}
	}
}
