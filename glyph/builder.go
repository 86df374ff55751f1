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

package glyph

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/charstring"
	"seehuhn.de/go/charstring/funit"
)

// A Builder is a charstring action sink which assembles a Glyph.
// The charstring events carry no explicit moveto; the builder starts a
// new sub-path whenever a segment does not continue the previous one.
type Builder struct {
	Glyph *Glyph

	pos      vec.Vec2
	needMove bool
}

// NewBuilder allocates a builder with an empty glyph.
func NewBuilder() *Builder {
	return &Builder{
		Glyph:    &Glyph{},
		needMove: true,
	}
}

// Actions returns the callback set which feeds the builder.
func (b *Builder) Actions() *charstring.Actions {
	return &charstring.Actions{
		Sidebearing: b.sidebearing,
		Width:       b.width,
		Line:        b.line,
		Curve:       b.curve,
		ClosePath:   b.closePath,
		HStem:       b.hStem,
		VStem:       b.vStem,
	}
}

func (b *Builder) sidebearing(_ charstring.Op, p vec.Vec2) {
	b.Glyph.LSBX = p.X
}

func (b *Builder) width(_ charstring.Op, p vec.Vec2) {
	b.Glyph.WidthX = p.X
	b.Glyph.WidthY = p.Y
}

func (b *Builder) startSegment(p0 vec.Vec2) {
	if b.needMove || p0 != b.pos {
		b.Glyph.MoveTo(p0.X, p0.Y)
		b.needMove = false
	}
}

func (b *Builder) line(_ charstring.Op, p0, p1 vec.Vec2) {
	b.startSegment(p0)
	b.Glyph.LineTo(p1.X, p1.Y)
	b.pos = p1
}

func (b *Builder) curve(_ charstring.Op, p0, p1, p2, p3 vec.Vec2) {
	b.startSegment(p0)
	b.Glyph.CurveTo(p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y)
	b.pos = p3
}

func (b *Builder) closePath(_ charstring.Op) {
	if !b.needMove {
		b.Glyph.ClosePath()
	}
	b.needMove = true
}

func (b *Builder) hStem(_ charstring.Op, y, dy float64) {
	b.Glyph.HStem = append(b.Glyph.HStem,
		funit.Int16(math.Round(y)),
		funit.Int16(math.Round(y+dy)))
}

func (b *Builder) vStem(_ charstring.Op, x, dx float64) {
	b.Glyph.VStem = append(b.Glyph.VStem,
		funit.Int16(math.Round(x)),
		funit.Int16(math.Round(x+dx)))
}
