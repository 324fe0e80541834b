package sizeattr

import (
	"debug/dwarf"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const UnknownUnit = "<unknown compilation unit>"

// Node is one debug entry plus its subtree. Trees are materialized up
// front so that walking a child never disturbs the iteration over its
// siblings.
type Node struct {
	Entry    *dwarf.Entry
	Children []*Node
}

// Unit is one compilation unit's entry tree together with the lookup
// tables the walker needs: an offset index for abstract-origin
// dereferencing, the line-table files for decl-file resolution and a
// resolver for address-range references.
type Unit struct {
	Name    string
	CompDir string
	Root    *Node

	entries map[dwarf.Offset]*dwarf.Entry
	files   []*dwarf.LineFile
	ranges  func(*dwarf.Entry) ([][2]uint64, error)
}

// LoadUnits reads every compilation unit out of dw into indexed trees.
func LoadUnits(dw *dwarf.Data) (units []*Unit, err error) {
	reader := dw.Reader()
	for {
		entry, err := reader.Next()
		if err != nil {
			return nil, errors.WithMessage(err, "iterate compilation units")
		}
		if entry == nil {
			return units, nil
		}
		if entry.Tag != dwarf.TagCompileUnit {
			reader.SkipChildren()
			continue
		}
		unit, err := loadUnit(dw, reader, entry)
		if err != nil {
			return nil, err
		}
		log.Debugf("loaded compilation unit %s", unit.Name)
		units = append(units, unit)
	}
}

// newUnit starts a unit from its compilation unit entry, applying the
// unit-name sentinel and stripping leading path separators.
func newUnit(entry *dwarf.Entry) *Unit {
	unit := &Unit{
		Name:    UnknownUnit,
		Root:    &Node{Entry: entry},
		entries: map[dwarf.Offset]*dwarf.Entry{entry.Offset: entry},
	}
	if name, ok := entry.Val(dwarf.AttrName).(string); ok {
		unit.Name = strings.TrimLeft(name, "/")
	}
	if dir, ok := entry.Val(dwarf.AttrCompDir).(string); ok {
		unit.CompDir = dir
	}
	return unit
}

func loadUnit(dw *dwarf.Data, reader *dwarf.Reader, entry *dwarf.Entry) (_ *Unit, err error) {
	unit := newUnit(entry)
	unit.ranges = dw.Ranges
	if lineReader, err := dw.LineReader(entry); err == nil && lineReader != nil {
		unit.files = lineReader.Files()
	}
	if entry.Children {
		if unit.Root.Children, err = loadSubtrees(reader, unit); err != nil {
			return nil, errors.WithMessagef(err, "compilation unit %s", unit.Name)
		}
	}
	return unit, nil
}

// loadSubtrees consumes entries up to the null terminator closing the
// current parent, building one Node per child.
func loadSubtrees(reader *dwarf.Reader, unit *Unit) (nodes []*Node, err error) {
	for {
		entry, err := reader.Next()
		if err != nil {
			return nil, err
		}
		if entry == nil {
			return nil, TruncatedTreeError
		}
		if entry.Tag == 0 {
			return nodes, nil
		}
		unit.entries[entry.Offset] = entry
		node := &Node{Entry: entry}
		if entry.Children {
			if node.Children, err = loadSubtrees(reader, unit); err != nil {
				return nil, err
			}
		}
		nodes = append(nodes, node)
	}
}
