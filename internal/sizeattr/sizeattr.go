// Package sizeattr attributes the compiled-code size of a binary to
// the source files and functions that produced it, by walking the
// DWARF debug entry trees and summing address-range sizes per
// subprogram and inlined subroutine.
package sizeattr

import (
	"debug/dwarf"

	log "github.com/sirupsen/logrus"
)

// Options controls how contribution keys are constructed.
type Options struct {
	// Prefix, when non-empty, is prepended as the first key segment.
	Prefix string
	// CompilationUnits partitions the key hierarchy per compilation
	// unit instead of merging everything into one flat namespace.
	CompilationUnits bool
	// SplitPaths keeps directory components as separate key segments;
	// when unset the directory is one segment.
	SplitPaths bool
}

// Analyze walks every compilation unit in dw and returns the merged
// byte attribution. Either the full map for all units is returned, or
// an error and no partial result.
func Analyze(dw *dwarf.Data, opts *Options) (Contributors, error) {
	if opts == nil {
		opts = &Options{}
	}
	units, err := LoadUnits(dw)
	if err != nil {
		return nil, err
	}
	contributors := Contributors{}
	for _, unit := range units {
		sub, err := unit.Analyze(opts)
		if err != nil {
			return nil, err
		}
		contributors.Extend(sub)
	}
	return contributors, nil
}

// Analyze walks the unit's entry tree and returns its contributions.
func (u *Unit) Analyze(opts *Options) (Contributors, error) {
	contributors := Contributors{}
	for _, node := range u.Root.Children {
		if err := u.walk(node, opts, contributors); err != nil {
			return nil, err
		}
	}
	log.Debugf("unit %s: %d bytes in %d keys", u.Name, contributors.Total(), len(contributors))
	return contributors, nil
}
