package report

import "errors"

var (
	UnknownFormatError = errors.New("unknown report format")
)
