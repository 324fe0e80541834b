package sizeattr

import "debug/dwarf"

// If a debug entry references output code, it can fall into one of
// three scenarios:
// - just a low pc, referencing a single location
// - a low pc and a high pc, referencing one contiguous region
// - a ranges attribute, referencing multiple regions
//
// mappedSize ignores the first case and sums up the total bytes
// referenced by the other two. ok is false when the entry carries no
// usable address information at all.
func (u *Unit) mappedSize(entry *dwarf.Entry) (size uint64, ok bool, err error) {
	// Ranges first: a compilation unit can have a low pc attribute
	// and a ranges attribute, and ranges is the precise one.
	if entry.AttrField(dwarf.AttrRanges) != nil {
		ranges, err := u.ranges(entry)
		if err != nil {
			return 0, false, err
		}
		for _, r := range ranges {
			size += r[1] - r[0]
		}
		return size, true, nil
	}
	low, hasLow := entry.Val(dwarf.AttrLowpc).(uint64)
	if !hasLow {
		return 0, false, nil
	}
	switch high := entry.Val(dwarf.AttrHighpc).(type) {
	case uint64:
		return high - low, true, nil
	case int64:
		return uint64(high), true, nil
	}
	return 0, false, nil
}
