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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/charstring"
)

// Encode converts the glyph into a Type 1 charstring.
func (g *Glyph) Encode() charstring.Type1Charstring {
	w := &csWriter{}

	sbx := int32(math.Round(g.LSBX))
	wx := int32(math.Round(g.WidthX))
	wy := int32(math.Round(g.WidthY))
	if wy == 0 {
		w.putInt(sbx)
		w.putInt(wx)
		w.putOp(charstring.OpHsbw)
	} else {
		w.putInt(sbx)
		w.putInt(0)
		w.putInt(wx)
		w.putInt(wy)
		w.putOp(charstring.OpSbw)
	}

	// Stems are stored as (start, end) pairs; the operators take a
	// start and a width, with vertical stems relative to the side
	// bearing.
	for i := 0; i+1 < len(g.HStem); i += 2 {
		lo, hi := g.HStem[i], g.HStem[i+1]
		w.putInt(int32(lo))
		w.putInt(int32(hi - lo))
		w.putOp(charstring.OpHstem)
	}
	for i := 0; i+1 < len(g.VStem); i += 2 {
		lo, hi := g.VStem[i], g.VStem[i+1]
		w.putInt(int32(lo) - sbx)
		w.putInt(int32(hi - lo))
		w.putOp(charstring.OpVstem)
	}

	w.x = float64(sbx)
	for cmd, pts := range g.Path() {
		switch cmd {
		case path.CmdMoveTo:
			w.moveTo(pts[0])
		case path.CmdLineTo:
			w.lineTo(pts[0])
		case path.CmdCubeTo:
			w.curveTo(pts[0], pts[1], pts[2])
		case path.CmdClose:
			w.putOp(charstring.OpClosepath)
		}
	}

	w.putOp(charstring.OpEndchar)
	return charstring.Type1Charstring(w.buf)
}

// A csWriter accumulates charstring bytes.  The fields x and y track
// the current point as the interpreter will see it, i.e. including any
// rounding introduced by the number encoding.
type csWriter struct {
	buf  []byte
	x, y float64
}

const coordEps = 1e-6

func nearZero(d float64) bool {
	return math.Abs(d) < coordEps
}

func (w *csWriter) putOp(op charstring.Op) {
	w.buf = appendOp(w.buf, op)
}

func (w *csWriter) putInt(v int32) {
	w.buf = appendInt(w.buf, v)
}

// putNum appends v as a charstring number and returns the value which
// will be decoded, so that the caller can keep its coordinate tracking
// consistent with the interpreter.
func (w *csWriter) putNum(v float64) float64 {
	var got float64
	w.buf, got = appendNumber(w.buf, v)
	return got
}

func (w *csWriter) moveTo(p vec.Vec2) {
	dx := p.X - w.x
	dy := p.Y - w.y
	switch {
	case nearZero(dy):
		w.x += w.putNum(dx)
		w.putOp(charstring.OpHmoveto)
	case nearZero(dx):
		w.y += w.putNum(dy)
		w.putOp(charstring.OpVmoveto)
	default:
		w.x += w.putNum(dx)
		w.y += w.putNum(dy)
		w.putOp(charstring.OpRmoveto)
	}
}

func (w *csWriter) lineTo(p vec.Vec2) {
	dx := p.X - w.x
	dy := p.Y - w.y
	switch {
	case nearZero(dy):
		w.x += w.putNum(dx)
		w.putOp(charstring.OpHlineto)
	case nearZero(dx):
		w.y += w.putNum(dy)
		w.putOp(charstring.OpVlineto)
	default:
		w.x += w.putNum(dx)
		w.y += w.putNum(dy)
		w.putOp(charstring.OpRlineto)
	}
}

func (w *csWriter) curveTo(p1, p2, p3 vec.Vec2) {
	switch {
	case nearZero(p1.Y-w.y) && nearZero(p3.X-p2.X):
		// tangent horizontal at the start, vertical at the end
		dx1 := w.putNum(p1.X - w.x)
		dx2 := w.putNum(p2.X - w.x - dx1)
		dy2 := w.putNum(p2.Y - w.y)
		dy3 := w.putNum(p3.Y - w.y - dy2)
		w.putOp(charstring.OpHvcurveto)
		w.x += dx1 + dx2
		w.y += dy2 + dy3
	case nearZero(p1.X-w.x) && nearZero(p3.Y-p2.Y):
		// tangent vertical at the start, horizontal at the end
		dy1 := w.putNum(p1.Y - w.y)
		dx2 := w.putNum(p2.X - w.x)
		dy2 := w.putNum(p2.Y - w.y - dy1)
		dx3 := w.putNum(p3.X - w.x - dx2)
		w.putOp(charstring.OpVhcurveto)
		w.x += dx2 + dx3
		w.y += dy1 + dy2
	default:
		dx1 := w.putNum(p1.X - w.x)
		dy1 := w.putNum(p1.Y - w.y)
		dx2 := w.putNum(p2.X - w.x - dx1)
		dy2 := w.putNum(p2.Y - w.y - dy1)
		dx3 := w.putNum(p3.X - w.x - dx1 - dx2)
		dy3 := w.putNum(p3.Y - w.y - dy1 - dy2)
		w.putOp(charstring.OpRrcurveto)
		w.x += dx1 + dx2 + dx3
		w.y += dy1 + dy2 + dy3
	}
}

// appendInt appends v using the Type 1 integer encodings: one byte for
// small values, two bytes for medium ones, five bytes otherwise.
func appendInt(buf []byte, v int32) []byte {
	if v >= -107 && v <= 107 {
		return append(buf, byte(v+139))
	}
	if v >= -1131 && v <= 1131 {
		if v > 0 {
			v -= 108
			return append(buf, byte(247+v>>8), byte(v))
		}
		v = -v - 108
		return append(buf, byte(251+v>>8), byte(v))
	}
	return append(buf, 255, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// appendNumber appends x as a charstring number.  Charstrings have no
// syntax for fractional literals, so non-integral values are written as
// a quotient of two integers followed by the div operator.  The second
// return value is the number the interpreter will actually compute.
func appendNumber(buf []byte, x float64) ([]byte, float64) {
	if i := int32(x); float64(i) == x {
		return appendInt(buf, i), x
	}

	// Look for the smallest denominator which represents x exactly;
	// both parts must fit the two-byte integer encoding for this to be
	// worthwhile.
	for q := int32(2); q <= 107; q++ {
		p := x * float64(q)
		if p == math.Trunc(p) && p >= -1131 && p <= 1131 {
			buf = appendInt(buf, int32(p))
			buf = appendInt(buf, q)
			buf = appendOp(buf, charstring.OpDiv)
			return buf, float64(int32(p)) / float64(q)
		}
	}

	// No exact representation; round to 1/64 units.
	p := math.Round(x * 64)
	if p > math.MaxInt32 {
		p = math.MaxInt32
	} else if p < math.MinInt32 {
		p = math.MinInt32
	}
	buf = appendInt(buf, int32(p))
	buf = appendInt(buf, 64)
	buf = appendOp(buf, charstring.OpDiv)
	return buf, float64(int32(p)) / 64
}

func appendOp(buf []byte, op charstring.Op) []byte {
	if op >= 32 {
		return append(buf, 12, byte(op-32))
	}
	return append(buf, byte(op))
}
