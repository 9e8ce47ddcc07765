package qrmatrix

import "errors"

var (
	ErrCapacityOverflow   = errors.New("qrmatrix: code length overflow")
	ErrOutOfRange         = errors.New("qrmatrix: coordinates out of range")
	ErrUnsupportedVersion = errors.New("qrmatrix: unsupported version or level")
	ErrInvalidMask        = errors.New("qrmatrix: invalid mask pattern")
	ErrInvalidLevel       = errors.New("qrmatrix: invalid error correction level")
	ErrUnsetModule        = errors.New("qrmatrix: module left unset")
	ErrNotBuilt           = errors.New("qrmatrix: symbol not built")
	ErrInvalidColor       = errors.New("qrmatrix: invalid color")
)
