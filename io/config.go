package io

import (
	"fmt"
	"strings"

	"gopkg.in/gcfg.v1"
)

const (
	ExampleConvertFile = `[Convert]

#######################
# Required Parameters #
#######################

# Directory containing the COMCOT output files (layer02_x.dat, layer02_y.dat,
# zmax_layer02.dat, ttt_layer02.dat, ...). If unset, $COMCOT_INPUT is used.
Input = path/to/comcot/output
# Directory which the zmax_NN.xyz and ttt_NN.xyz files will be written to. It
# is created if it doesn't exist. If unset, $COMCOT_OUTPUT is used.
Output = path/to/xyz/dir

# The layer to convert. Single digit layers are zero-padded, so 2 and 02 both
# refer to layer02_x.dat, etc.
Layer = 02

#######################
# Optional Parameters #
#######################

# Converts every layer in the (inclusive) range [LayerStart, LayerEnd]
# instead of Layer. Both must be set.
# LayerStart = 1
# LayerEnd = 5

# What to do when a layer in a range fails to convert. Must be one of
# [ Abort | Skip ]. Abort stops at the first bad layer, Skip logs the error
# and moves on to the next layer. Nothing is ever written for a bad layer.
# OnError = Abort

# COMCOT writes latitudes and grid rows in the same order, so by default each
# value is paired with the latitude of its own row. Setting ReverseY pairs row
# j with the j-th latitude counted from the end of the latitude file instead,
# which is what some older versions of this converter did.
# ReverseY = false

# Extension of the input files.
# Extension = dat

# Re-reads the coordinate files numerically and checks that they agree with
# the tokens read for the conversion. One-value-per-line and wrapped
# coordinate files are both accepted.
# CheckCoordinates = false

# Output file which is useful for debugging. Log statements go to stderr
# otherwise.
# LogFile = log.out`
)

// Batch error policies.
const (
	AbortOnError = "Abort"
	SkipOnError  = "Skip"
)

type SharedConfig struct {
	// Required
	Input, Output string
	// Optional
	LogFile string
}

func (con *SharedConfig) ValidInput() bool {
	return con.Input != ""
}
func (con *SharedConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *SharedConfig) ValidLogFile() bool {
	return con.LogFile != ""
}

type ConvertConfig struct {
	SharedConfig

	// Required
	Layer string

	// Optional
	LayerStart, LayerEnd int
	OnError string
	ReverseY bool
	Extension string
	CheckCoordinates bool
}

type ConvertWrapper struct {
	Convert ConvertConfig
}

func DefaultConvertWrapper() *ConvertWrapper {
	con := ConvertConfig{}
	con.LayerStart = -1
	con.LayerEnd = -1
	con.OnError = AbortOnError
	con.Extension = DefaultExtension
	return &ConvertWrapper{con}
}

func (con *ConvertConfig) ValidLayer() bool {
	_, err := ParseLayer(con.Layer)
	return err == nil
}
func (con *ConvertConfig) ValidLayerStart() bool {
	return con.LayerStart >= 0
}
func (con *ConvertConfig) ValidLayerEnd() bool {
	return con.LayerEnd >= 0 && con.LayerEnd >= con.LayerStart
}
func (con *ConvertConfig) ValidOnError() bool {
	return con.OnError == AbortOnError || con.OnError == SkipOnError
}
func (con *ConvertConfig) ValidExtension() bool {
	return con.Extension != "" && !strings.ContainsAny(con.Extension, "/. \t")
}

// IsRange returns true if the config describes a range of layers rather
// than a single one.
func (con *ConvertConfig) IsRange() bool {
	return con.LayerStart != -1 || con.LayerEnd != -1
}

// Layers returns the layers the config asks for, in conversion order.
func (con *ConvertConfig) Layers() ([]LayerID, error) {
	if !con.IsRange() {
		id, err := ParseLayer(con.Layer)
		if err != nil { return nil, err }
		return []LayerID{id}, nil
	}

	if !con.ValidLayerStart() || !con.ValidLayerEnd() {
		return nil, fmt.Errorf(
			"Invalid layer range [%d, %d].", con.LayerStart, con.LayerEnd,
		)
	}

	ids := make([]LayerID, 0, con.LayerEnd-con.LayerStart+1)
	for n := con.LayerStart; n <= con.LayerEnd; n++ {
		id, err := LayerFromInt(n)
		if err != nil { return nil, err }
		ids = append(ids, id)
	}
	return ids, nil
}

// Check returns a descriptive error for the first invalid field of the
// config.
func (con *ConvertConfig) Check() error {
	switch {
	case !con.ValidInput():
		return fmt.Errorf("Invalid/non-existent 'Input' value.")
	case !con.ValidOutput():
		return fmt.Errorf("Invalid/non-existent 'Output' value.")
	case !con.ValidOnError():
		return fmt.Errorf(
			"'OnError' must be one of [%s | %s], but is '%s'.",
			AbortOnError, SkipOnError, con.OnError,
		)
	case !con.ValidExtension():
		return fmt.Errorf("Invalid 'Extension' value '%s'.", con.Extension)
	}

	if con.IsRange() {
		if !con.ValidLayerStart() || !con.ValidLayerEnd() {
			return fmt.Errorf(
				"'LayerStart' and 'LayerEnd' must both be set, with " +
					"0 <= LayerStart <= LayerEnd, but are %d and %d.",
				con.LayerStart, con.LayerEnd,
			)
		} else if con.Layer != "" {
			return fmt.Errorf(
				"Only one of 'Layer' and 'LayerStart'/'LayerEnd' may be set.",
			)
		}
		return nil
	}

	if _, err := ParseLayer(con.Layer); err != nil {
		return fmt.Errorf("Invalid/non-existent 'Layer' value: %w", err)
	}
	return nil
}

// ReadConvertConfig reads a [Convert] config file, fills unset directories
// from the environment and checks the result. A non-empty layer replaces the
// file's Layer value and any LayerStart/LayerEnd range.
func ReadConvertConfig(fname, layer string) (*ConvertConfig, error) {
	wrap := DefaultConvertWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	return finishConvertConfig(wrap, layer)
}

// ReadConvertString is identical to ReadConvertConfig, but reads the config
// from a string.
func ReadConvertString(text, layer string) (*ConvertConfig, error) {
	wrap := DefaultConvertWrapper()
	if err := gcfg.ReadStringInto(wrap, text); err != nil {
		return nil, err
	}
	return finishConvertConfig(wrap, layer)
}

func finishConvertConfig(wrap *ConvertWrapper, layer string) (*ConvertConfig, error) {
	con := &wrap.Convert
	if layer != "" {
		con.Layer = layer
		con.LayerStart, con.LayerEnd = -1, -1
	}

	con.FillFromEnv()
	if err := con.Check(); err != nil { return nil, err }
	return con, nil
}
