package io

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidLayer is returned for layer identifiers which aren't made
// entirely of decimal digits.
var ErrInvalidLayer = errors.New("invalid layer identifier")

// DefaultExtension is the extension COMCOT gives its output files.
const DefaultExtension = "dat"

// LayerID is a normalized COMCOT layer number: decimal digits, zero-padded to
// at least two characters ("3" -> "03").
type LayerID string

// ParseLayer validates and normalizes a layer identifier.
func ParseLayer(s string) (LayerID, error) {
	if s == "" {
		return "", fmt.Errorf("empty string: %w", ErrInvalidLayer)
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return "", fmt.Errorf("'%s': %w", s, ErrInvalidLayer)
		}
	}

	if len(s) < 2 { s = "0" + s }
	return LayerID(s), nil
}

// LayerFromInt returns the LayerID for an integer layer number.
func LayerFromInt(n int) (LayerID, error) {
	if n < 0 {
		return "", fmt.Errorf("%d: %w", n, ErrInvalidLayer)
	}
	return ParseLayer(strconv.Itoa(n))
}

// Int returns the layer number.
func (id LayerID) Int() int {
	n, _ := strconv.Atoi(string(id))
	return n
}

// LayerFiles holds the names of the four COMCOT output files that make up
// one layer.
type LayerFiles struct {
	X, Y, Zmax, TTT string
}

// Files returns the input file names for the layer. An empty ext means
// DefaultExtension.
func (id LayerID) Files(ext string) LayerFiles {
	if ext == "" { ext = DefaultExtension }
	return LayerFiles{
		X:    fmt.Sprintf("layer%s_x.%s", id, ext),
		Y:    fmt.Sprintf("layer%s_y.%s", id, ext),
		Zmax: fmt.Sprintf("zmax_layer%s.%s", id, ext),
		TTT:  fmt.Sprintf("ttt_layer%s.%s", id, ext),
	}
}

// Outputs returns the names of the XYZ files written for the layer.
func (id LayerID) Outputs() (zmax, ttt string) {
	return fmt.Sprintf("zmax_%s.xyz", id), fmt.Sprintf("ttt_%s.xyz", id)
}
