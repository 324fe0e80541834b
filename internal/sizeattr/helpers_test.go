package sizeattr

import "debug/dwarf"

// test scaffolding: hand-built entries and units, no real DWARF needed

var nextOffset dwarf.Offset

func testEntry(tag dwarf.Tag, fields ...dwarf.Field) *dwarf.Entry {
	nextOffset++
	return &dwarf.Entry{
		Offset: nextOffset,
		Tag:    tag,
		Field:  fields,
	}
}

func lowpc(v uint64) dwarf.Field {
	return dwarf.Field{Attr: dwarf.AttrLowpc, Val: v, Class: dwarf.ClassAddress}
}

func highpcAddr(v uint64) dwarf.Field {
	return dwarf.Field{Attr: dwarf.AttrHighpc, Val: v, Class: dwarf.ClassAddress}
}

func highpcLength(v int64) dwarf.Field {
	return dwarf.Field{Attr: dwarf.AttrHighpc, Val: v, Class: dwarf.ClassConstant}
}

func rangesRef(v int64) dwarf.Field {
	return dwarf.Field{Attr: dwarf.AttrRanges, Val: v, Class: dwarf.ClassRangeListPtr}
}

func declFileIndex(v int64) dwarf.Field {
	return dwarf.Field{Attr: dwarf.AttrDeclFile, Val: v, Class: dwarf.ClassConstant}
}

func abstractOrigin(target *dwarf.Entry) dwarf.Field {
	return dwarf.Field{Attr: dwarf.AttrAbstractOrigin, Val: target.Offset, Class: dwarf.ClassReference}
}

func name(v string) dwarf.Field {
	return dwarf.Field{Attr: dwarf.AttrName, Val: v, Class: dwarf.ClassString}
}

func compDir(v string) dwarf.Field {
	return dwarf.Field{Attr: dwarf.AttrCompDir, Val: v, Class: dwarf.ClassString}
}

func testUnit(files ...string) *Unit {
	unit := &Unit{
		Name:    "unit.c",
		CompDir: "/home/proj/",
		entries: map[dwarf.Offset]*dwarf.Entry{},
		files:   []*dwarf.LineFile{nil},
		ranges: func(*dwarf.Entry) ([][2]uint64, error) {
			return nil, nil
		},
	}
	for _, file := range files {
		unit.files = append(unit.files, &dwarf.LineFile{Name: file})
	}
	return unit
}

// register records the entries of node and its subtree in the unit's
// offset index, the way the loader does.
func (u *Unit) register(node *Node) *Node {
	u.entries[node.Entry.Offset] = node.Entry
	for _, child := range node.Children {
		u.register(child)
	}
	return node
}

func tree(entry *dwarf.Entry, children ...*Node) *Node {
	return &Node{Entry: entry, Children: children}
}
