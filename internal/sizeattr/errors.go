package sizeattr

import "errors"

var (
	NoMappingDataError    = errors.New("subprogram or inlined subroutine without mapping data")
	ChildrenOverflowError = errors.New("children add up to more bytes than the item itself")
	TruncatedTreeError    = errors.New("debug entry stream ended inside a subtree")
)
