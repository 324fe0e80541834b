package sizeattr

import (
	"debug/dwarf"
	"path"
	"strings"
)

const (
	UnknownDir      = "<unknown dir>"
	UnknownFile     = "<unknown file>"
	UnknownFunction = "<unknown function>"
)

// dereference follows the abstract origin chain from entry to the
// declaration it is an instance of. Well-formed input needs exactly one
// hop; a dangling or cyclic reference yields nil.
func (u *Unit) dereference(entry *dwarf.Entry) *dwarf.Entry {
	seen := map[dwarf.Offset]struct{}{}
	for {
		if _, ok := seen[entry.Offset]; ok {
			return nil
		}
		seen[entry.Offset] = struct{}{}
		origin, ok := entry.Val(dwarf.AttrAbstractOrigin).(dwarf.Offset)
		if !ok {
			return entry
		}
		referenced, ok := u.entries[origin]
		if !ok {
			return nil
		}
		entry = referenced
	}
}

// declFile resolves the (directory, file) pair entry's code was
// declared in, via the unit's line-table file entries.
func (u *Unit) declFile(entry *dwarf.Entry) (dir, file string, ok bool) {
	entry = u.dereference(entry)
	if entry == nil {
		return "", "", false
	}
	index, ok := entry.Val(dwarf.AttrDeclFile).(int64)
	if !ok || index < 0 || index >= int64(len(u.files)) || u.files[index] == nil {
		return "", "", false
	}
	dir, file = path.Split(u.files[index].Name)
	return strings.TrimSuffix(dir, "/"), file, true
}

// funcName resolves the entry's own name, falling back to the name of
// its abstract origin for inlined instances.
func (u *Unit) funcName(entry *dwarf.Entry) (string, bool) {
	if name, ok := entry.Val(dwarf.AttrName).(string); ok {
		return name, true
	}
	referenced := u.dereference(entry)
	if referenced == nil || referenced == entry {
		return "", false
	}
	name, ok := referenced.Val(dwarf.AttrName).(string)
	return name, ok
}

// location resolves directory, file and function name for entry,
// degrading to the unknown sentinels rather than failing: attribution
// proceeds under an unknown bucket when debug info is incomplete.
func (u *Unit) location(entry *dwarf.Entry) (dir, file, name string) {
	dir, file, ok := u.declFile(entry)
	if !ok {
		dir, file = UnknownDir, UnknownFile
	}
	// A relative directory is relative to the unit's working dir.
	if !strings.HasPrefix(dir, "/") && !strings.HasPrefix(dir, "<") {
		dir = path.Join(u.CompDir, dir)
	}
	name, ok = u.funcName(entry)
	if !ok {
		name = UnknownFunction
	}
	return dir, file, name
}
