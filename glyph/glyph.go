// seehuhn.de/go/charstring - a Type 1 and Type 2 charstring interpreter
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package glyph assembles decoded glyph outlines from charstring runs.
package glyph

import (
	"math"

	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/charstring/funit"
)

// Glyph holds a decoded glyph outline together with its metrics and
// stem hints.
type Glyph struct {
	Outline *path.Data

	// HStem and VStem hold the stem hints, as flattened pairs of start
	// and end coordinates.
	HStem []funit.Int16
	VStem []funit.Int16

	WidthX float64
	WidthY float64

	// LSBX is the x coordinate of the left side bearing point.
	LSBX float64
}

// outline returns the glyph outline, allocating it on first use.
func (g *Glyph) outline() *path.Data {
	if g.Outline == nil {
		g.Outline = &path.Data{}
	}
	return g.Outline
}

// MoveTo starts a new sub-path and moves the current point to (x, y).
func (g *Glyph) MoveTo(x, y float64) {
	g.outline().MoveTo(vec.Vec2{X: x, Y: y})
}

// LineTo adds a straight line to the current sub-path.
func (g *Glyph) LineTo(x, y float64) {
	g.outline().LineTo(vec.Vec2{X: x, Y: y})
}

// CurveTo adds a cubic Bezier curve to the current sub-path.
func (g *Glyph) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	g.outline().CubeTo(
		vec.Vec2{X: x1, Y: y1},
		vec.Vec2{X: x2, Y: y2},
		vec.Vec2{X: x3, Y: y3})
}

// ClosePath closes the current sub-path.
func (g *Glyph) ClosePath() {
	g.outline().Close()
}

// IsBlank returns true if the glyph has no visible outline.
func (g *Glyph) IsBlank() bool {
	return g.Outline.IsBlank()
}

// Path returns the glyph outline as a path.
func (g *Glyph) Path() path.Path {
	if g.Outline == nil {
		var empty path.Data
		return empty.Iter()
	}
	return g.Outline.Iter()
}

// Advance returns the advance vector in 26.6 fixed point units, for use
// with the glyph drawing interfaces of golang.org/x/image/font.
func (g *Glyph) Advance() fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(g.WidthX * 64)),
		Y: fixed.Int26_6(math.Round(g.WidthY * 64)),
	}
}
