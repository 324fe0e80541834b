package sizeattr

import (
	"debug/dwarf"
	"strings"

	"github.com/pkg/errors"
)

// walk drives a depth-first traversal from node, handing every entry to
// the attributor. A size-bearing entry consumes its whole subtree;
// anything else is transparent and its children are visited in turn.
func (u *Unit) walk(node *Node, opts *Options, contributors Contributors) error {
	sub, err := u.attribute(node, opts)
	if err != nil {
		return err
	}
	if sub != nil {
		contributors.Extend(sub)
		return nil
	}
	for _, child := range node.Children {
		if err := u.walk(child, opts, contributors); err != nil {
			return err
		}
	}
	return nil
}

// attribute computes the contributions of node and its descendants, or
// nil when node is not size-bearing. Bytes already claimed by nested
// size-bearing children are subtracted from the entry's own mapped
// size, so summing the returned map reproduces the raw mapped size.
func (u *Unit) attribute(node *Node, opts *Options) (Contributors, error) {
	entry := node.Entry
	if entry.Tag != dwarf.TagSubprogram && entry.Tag != dwarf.TagInlinedSubroutine {
		return nil, nil
	}

	size, ok, err := u.mappedSize(entry)
	if err != nil {
		return nil, errors.WithMessagef(err, "resolve ranges of entry %#x", entry.Offset)
	}
	if !ok {
		return nil, errors.WithMessagef(NoMappingDataError, "entry %#x", entry.Offset)
	}
	dir, file, name := u.location(entry)

	result := Contributors{}
	for _, child := range node.Children {
		sub, err := u.attribute(child, opts)
		if err != nil {
			return nil, err
		}
		result.Extend(sub)
	}
	childrenSize := result.Total()
	if childrenSize > size {
		return nil, errors.Wrapf(ChildrenOverflowError, "children of %s from %s/%s", name, dir, file)
	}
	result[u.buildKey(dir, file, name, opts)] += size - childrenSize
	return result, nil
}

// buildKey joins the resolved location into the hierarchical key the
// report is grouped by, honoring the configured key shape.
func (u *Unit) buildKey(dir, file, name string, opts *Options) string {
	segments := make([]string, 0, 8)
	if opts.Prefix != "" {
		segments = append(segments, opts.Prefix)
	}
	if opts.CompilationUnits {
		segments = append(segments, "@compilation_unit: "+u.Name)
	}
	segments = append(segments, "@source_files")
	if opts.SplitPaths {
		segments = append(segments, strings.Split(dir, "/")...)
	} else {
		segments = append(segments, dir)
	}
	segments = append(segments, file)
	segments = append(segments, "@function: "+name)
	return strings.Join(segments, ";")
}
