// Package kernels names the predefined convolution kernel presets accepted by
// the raster convolution function, in addition to user-defined kernels. The
// coefficient matrices live with the convolution function, not here.
package kernels

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Preset selects one of the predefined convolution kernels understood by the
// raster convolution function. The integer values are part of the wire and
// storage contract and must never change.
type Preset int

const (
	LineDetectionHorizontal    Preset = 0
	LineDetectionVertical      Preset = 1
	LineDetectionLeftDiagonal  Preset = 2
	LineDetectionRightDiagonal Preset = 3
	GradientNorth              Preset = 4
	GradientWest               Preset = 5
	GradientEast               Preset = 6
	GradientSouth              Preset = 7
	GradientNorthEast          Preset = 8
	GradientNorthWest          Preset = 9
	SmoothArithmeticMean       Preset = 10
	Smoothing3x3               Preset = 11
	Smoothing5x5               Preset = 12
	Sharpening3x3              Preset = 13
	Sharpening5x5              Preset = 14
	Laplacian3x3               Preset = 15
	Laplacian5x5               Preset = 16
	SobelHorizontal            Preset = 17
	SobelVertical              Preset = 18
	Sharpen                    Preset = 19
	Sharpen2                   Preset = 20
	PointSpread                Preset = 21
)

const (
	MinCode = 0
	MaxCode = 21
	Count   = MaxCode - MinCode + 1
)

// ErrUnknownPreset is returned when a name or code is not in the table.
var ErrUnknownPreset = errors.New("unknown kernel preset")

// Indexed by code.
var names = [Count]string{
	"LINE_DETECTION_HORIZONTAL",
	"LINE_DETECTION_VERTICAL",
	"LINE_DETECTION_LEFT_DIAGONAL",
	"LINE_DETECTION_RIGHT_DIAGONAL",
	"GRADIENT_NORTH",
	"GRADIENT_WEST",
	"GRADIENT_EAST",
	"GRADIENT_SOUTH",
	"GRADIENT_NORTH_EAST",
	"GRADIENT_NORTH_WEST",
	"SMOOTH_ARITHMETIC_MEAN",
	"SMOOTHING_3X3",
	"SMOOTHING_5X5",
	"SHARPENING_3X3",
	"SHARPENING_5X5",
	"LAPLACIAN_3X3",
	"LAPLACIAN_5X5",
	"SOBEL_HORIZONTAL",
	"SOBEL_VERTICAL",
	"SHARPEN",
	"SHARPEN2",
	"POINT_SPREAD",
}

var presetByName = func() map[string]Preset {
	m := make(map[string]Preset, Count)
	for code, name := range names {
		m[name] = Preset(code)
	}
	return m
}()

// Valid reports whether p is one of the defined presets.
func (p Preset) Valid() bool {
	return p >= MinCode && p <= MaxCode
}

// Code returns the integer value of p.
func (p Preset) Code() int {
	return int(p)
}

// Name returns the canonical upper-snake name, or "" when p is not valid.
func (p Preset) Name() string {
	if !p.Valid() {
		return ""
	}
	return names[p]
}

func (p Preset) String() string {
	if !p.Valid() {
		return "Preset(" + strconv.Itoa(int(p)) + ")"
	}
	return names[p]
}

// All returns every preset in code order. The slice is a fresh copy.
func All() []Preset {
	out := make([]Preset, Count)
	for i := range out {
		out[i] = Preset(i)
	}
	return out
}

// Names returns the canonical names in code order.
func Names() []string {
	out := make([]string, Count)
	copy(out, names[:])
	return out
}

// Lookup returns the preset with the exact canonical name.
func Lookup(name string) (Preset, bool) {
	p, ok := presetByName[name]
	return p, ok
}

// FromCode returns the preset for an integer code.
func FromCode(code int) (Preset, error) {
	p := Preset(code)
	if !p.Valid() {
		return 0, fmt.Errorf("%w: code %d", ErrUnknownPreset, code)
	}
	return p, nil
}

// Parse accepts a canonical name in any ASCII case, with '-' or ' ' in place
// of '_', or a decimal code. Input outside ASCII is rejected so Unicode case
// folding cannot map a foreign string onto a canonical name.
//
//	Parse("sobel-vertical") // SobelVertical
//	Parse("18")             // SobelVertical
func Parse(s string) (Preset, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0, fmt.Errorf("%w: empty", ErrUnknownPreset)
	}

	if code, err := strconv.Atoi(raw); err == nil {
		return FromCode(code)
	}

	if key, ok := normalizeName(raw); ok {
		if p, ok := presetByName[key]; ok {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPreset, s)
}

// normalizeName upper-cases ASCII letters and maps '-' and ' ' to '_'. It
// reports false for any byte outside ASCII.
func normalizeName(s string) (string, bool) {
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 0x80:
			return "", false
		case 'a' <= c && c <= 'z':
			c -= 'a' - 'A'
		case c == '-' || c == ' ':
			c = '_'
		}
		b[i] = c
	}
	return string(b), true
}
