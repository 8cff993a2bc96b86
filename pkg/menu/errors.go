package menu

import "errors"

var (
	ErrInvalidPattern    = errors.New("invalid pattern")
	ErrPatternNotDefined = errors.New("pattern not defined")
	ErrNoFrameAttached   = errors.New("no frame attached")
	ErrFrameNotFound     = errors.New("frame not found in pattern")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrSlotOutOfRange    = errors.New("slot out of range")
)
