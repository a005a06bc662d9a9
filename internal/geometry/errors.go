package geometry

import "errors"

var (
	// ErrInvalidInput indicates a caller-supplied value that fails validation
	// before any geometry is constructed (nil curve, non-positive count,
	// mismatched sequence lengths, and so on).
	ErrInvalidInput = errors.New("geometry: invalid input")
	// ErrConstruction indicates a geometric operation (patch, frame, loft,
	// split, boolean) produced no usable result.
	ErrConstruction = errors.New("geometry: construction failed")
	// ErrUnsupportedInput indicates a surface-like input outside the accepted
	// variant set (surface, face, brep).
	ErrUnsupportedInput = errors.New("geometry: unsupported input type")
)
