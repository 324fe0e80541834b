package elf

import "errors"

var (
	NoDebugInfoError = errors.New("no DWARF debug info")
)
