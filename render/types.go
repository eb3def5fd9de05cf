// Package render: tunable options and error definitions for depiction.
package render

import (
	"errors"
	"fmt"
	"image/color"
)

// Sentinel errors for rendering.
var (
	// ErrTopologyNil is returned if a nil topology pointer is passed.
	ErrTopologyNil = errors.New("render: topology is nil")

	// ErrEmptyTopology is returned for a topology with no atoms.
	ErrEmptyTopology = errors.New("render: topology has no atoms")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("render: invalid option supplied")

	// ErrFontLoad is returned when the configured font cannot be loaded.
	ErrFontLoad = errors.New("render: cannot load font")
)

// Option configures rendering via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Render is invoked.
type Option func(*Options)

// Options holds parameters customizing one depiction.
type Options struct {
	// Width, Height set the canvas size in pixels.
	Width, Height int

	// FontPath points at a TTF file for element labels. Empty keeps the
	// drawing context's built-in face.
	FontPath string

	// FontSize scales labels; bond width and highlight radius derive
	// from it.
	FontSize float64

	// Highlight fills the discs under highlighted atoms.
	Highlight color.Color

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - 512x512 canvas
//   - built-in font face at 14pt
//   - soft red highlight discs.
func DefaultOptions() Options {
	return Options{
		Width:     512,
		Height:    512,
		FontPath:  "",
		FontSize:  14,
		Highlight: color.RGBA{R: 0xE8, G: 0x53, B: 0x4A, A: 0xFF},
		err:       nil,
	}
}

// WithSize sets the canvas size in pixels.
//
//	w, h > 0: canvas is w x h
//	w or h < 1: invalid option → ErrOptionViolation
func WithSize(w, h int) Option {
	return func(o *Options) {
		if w < 1 || h < 1 {
			o.err = fmt.Errorf("%w: canvas %dx%d", ErrOptionViolation, w, h)

			return
		}
		o.Width, o.Height = w, h
	}
}

// WithFontPath loads element labels from the TTF file at path.
func WithFontPath(path string) Option {
	return func(o *Options) {
		if path != "" {
			o.FontPath = path
		}
	}
}

// WithFontSize sets the label size in points.
//
//	pts > 0: labels at pts
//	pts <= 0: invalid option → ErrOptionViolation
func WithFontSize(pts float64) Option {
	return func(o *Options) {
		if pts <= 0 {
			o.err = fmt.Errorf("%w: FontSize must be positive (%g)", ErrOptionViolation, pts)

			return
		}
		o.FontSize = pts
	}
}

// WithHighlightColor sets the disc fill for highlighted atoms.
func WithHighlightColor(c color.Color) Option {
	return func(o *Options) {
		if c != nil {
			o.Highlight = c
		}
	}
}
