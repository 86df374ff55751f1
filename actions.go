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

package charstring

import "seehuhn.de/go/geom/vec"

// Actions receives the events generated while a charstring runs.  Each
// callback is given the operator which caused the event, for use in
// diagnostics.  All coordinates are absolute.
//
// Any field may be left nil to select the default behavior:
//
//   - Line forwards to Curve, with the control points placed on the end
//     points.
//   - HStem3 and VStem3 decompose into three individual stem events.
//   - DefaultWidth and NominalWidthDelta look up the font-wide width
//     via [Program.GlobalWidthX] and forward to Width.
//   - Flex decomposes into two Curve events, dropping the flex depth.
//   - Seac runs the standard composite character recursion, overlaying
//     the accent glyph on the base glyph.
//   - All remaining callbacks default to doing nothing.
//
// Points and mask bytes passed to the callbacks must not be retained
// across calls.
type Actions struct {
	// Sidebearing is emitted once per glyph by the Type 1 hsbw and sbw
	// operators, before any drawing events.  Type 2 charstrings do not
	// emit it.
	Sidebearing func(op Op, p vec.Vec2)

	// Width is emitted once per glyph with the advance width.
	Width func(op Op, p vec.Vec2)

	// DefaultWidth is emitted when a Type 2 charstring does not carry
	// an explicit width.
	DefaultWidth func(op Op)

	// NominalWidthDelta is emitted when a Type 2 charstring carries an
	// explicit width, given as a difference to the font's nominal
	// width.
	NominalWidthDelta func(op Op, delta float64)

	// Line is emitted for a straight outline segment from p0 to p1.
	Line func(op Op, p0, p1 vec.Vec2)

	// Curve is emitted for a cubic Bezier segment from p0 to p3 with
	// control points p1 and p2.
	Curve func(op Op, p0, p1, p2, p3 vec.Vec2)

	// ClosePath is emitted when a subpath is closed, including the
	// implicit close before a moveto while drawing.
	ClosePath func(op Op)

	// HStem and VStem declare horizontal and vertical stem hints.
	HStem func(op Op, y, dy float64)
	VStem func(op Op, x, dx float64)

	// HStem3 and VStem3 declare the Type 1 triple stem hints.
	HStem3 func(op Op, y0, dy0, y1, dy1, y2, dy2 float64)
	VStem3 func(op Op, x0, dx0, x1, dx1, x2, dx2 float64)

	// Hintmask is emitted for the Type 2 hintmask and cntrmask
	// operators.  The mask contains one bit per declared stem, in
	// declaration order, most significant bit first.
	Hintmask func(op Op, mask []byte, numHints int)

	// Seac is emitted for composite characters.  The base and accent
	// glyphs are given as Adobe Standard Encoding codes.
	Seac func(op Op, asb, adx, ady float64, bchar, achar int)

	// Flex is emitted for a flex section: two curves p0-p1-p2-p34 and
	// p34-p5-p6-p7, with the flex depth in character space units.
	Flex func(op Op, p0, p1, p2, p34, p5, p6, p7 vec.Vec2, depth float64)
}

func (interp *Interp) actSidebearing(op Op, p vec.Vec2) {
	if f := interp.actions.Sidebearing; f != nil {
		f(op, p)
	}
}

func (interp *Interp) actWidth(op Op, p vec.Vec2) {
	if f := interp.actions.Width; f != nil {
		f(op, p)
	}
}

func (interp *Interp) actDefaultWidth(op Op) {
	if f := interp.actions.DefaultWidth; f != nil {
		f(op)
		return
	}
	if interp.program == nil {
		return
	}
	if w, ok := interp.program.GlobalWidthX(false); ok {
		interp.actWidth(op, vec.Vec2{X: w})
	}
}

func (interp *Interp) actNominalWidthDelta(op Op, delta float64) {
	if f := interp.actions.NominalWidthDelta; f != nil {
		f(op, delta)
		return
	}
	if interp.program == nil {
		return
	}
	if w, ok := interp.program.GlobalWidthX(true); ok {
		interp.actWidth(op, vec.Vec2{X: w + delta})
	}
}

func (interp *Interp) actLine(op Op, p0, p1 vec.Vec2) {
	if f := interp.actions.Line; f != nil {
		f(op, p0, p1)
		return
	}
	interp.actCurve(op, p0, p0, p1, p1)
}

func (interp *Interp) actCurve(op Op, p0, p1, p2, p3 vec.Vec2) {
	if f := interp.actions.Curve; f != nil {
		f(op, p0, p1, p2, p3)
	}
}

func (interp *Interp) actClosePath(op Op) {
	if f := interp.actions.ClosePath; f != nil {
		f(op)
	}
}

func (interp *Interp) actHstem(op Op, y, dy float64) {
	if f := interp.actions.HStem; f != nil {
		f(op, y, dy)
	}
}

func (interp *Interp) actVstem(op Op, x, dx float64) {
	if f := interp.actions.VStem; f != nil {
		f(op, x, dx)
	}
}

func (interp *Interp) actHstem3(op Op, y0, dy0, y1, dy1, y2, dy2 float64) {
	if f := interp.actions.HStem3; f != nil {
		f(op, y0, dy0, y1, dy1, y2, dy2)
		return
	}
	interp.actHstem(op, y0, dy0)
	interp.actHstem(op, y1, dy1)
	interp.actHstem(op, y2, dy2)
}

func (interp *Interp) actVstem3(op Op, x0, dx0, x1, dx1, x2, dx2 float64) {
	if f := interp.actions.VStem3; f != nil {
		f(op, x0, dx0, x1, dx1, x2, dx2)
		return
	}
	interp.actVstem(op, x0, dx0)
	interp.actVstem(op, x1, dx1)
	interp.actVstem(op, x2, dx2)
}

func (interp *Interp) actHintmask(op Op, mask []byte, numHints int) {
	if f := interp.actions.Hintmask; f != nil {
		f(op, mask, numHints)
	}
}

func (interp *Interp) actSeac(op Op, asb, adx, ady float64, bchar, achar int) {
	if f := interp.actions.Seac; f != nil {
		f(op, asb, adx, ady, bchar, achar)
		return
	}
	interp.seac(op, asb, adx, ady, bchar, achar)
}

func (interp *Interp) actFlex(op Op, p0, p1, p2, p34, p5, p6, p7 vec.Vec2, depth float64) {
	if f := interp.actions.Flex; f != nil {
		f(op, p0, p1, p2, p34, p5, p6, p7, depth)
		return
	}
	interp.actCurve(op, p0, p1, p2, p34)
	interp.actCurve(op, p34, p5, p6, p7)
}

// actRmoveto shifts the current point.  Movetos generate no event of
// their own; the sink observes them via the start points of subsequent
// segments.
func (interp *Interp) actRmoveto(_ Op, dx, dy float64) {
	interp.cp.X += dx
	interp.cp.Y += dy
}

func (interp *Interp) actRlineto(op Op, dx, dy float64) {
	p0 := interp.cp
	interp.cp.X += dx
	interp.cp.Y += dy
	interp.actLine(op, p0, interp.cp)
}

func (interp *Interp) actRrcurveto(op Op, dx1, dy1, dx2, dy2, dx3, dy3 float64) {
	p0 := interp.cp
	p1 := vec.Vec2{X: p0.X + dx1, Y: p0.Y + dy1}
	p2 := vec.Vec2{X: p1.X + dx2, Y: p1.Y + dy2}
	p3 := vec.Vec2{X: p2.X + dx3, Y: p2.Y + dy3}
	interp.cp = p3
	interp.actCurve(op, p0, p1, p2, p3)
}

func (interp *Interp) actRrflex(op Op, dx1, dy1, dx2, dy2, dx3, dy3, dx4, dy4, dx5, dy5, dx6, dy6, depth float64) {
	p0 := interp.cp
	p1 := vec.Vec2{X: p0.X + dx1, Y: p0.Y + dy1}
	p2 := vec.Vec2{X: p1.X + dx2, Y: p1.Y + dy2}
	p34 := vec.Vec2{X: p2.X + dx3, Y: p2.Y + dy3}
	p5 := vec.Vec2{X: p34.X + dx4, Y: p34.Y + dy4}
	p6 := vec.Vec2{X: p5.X + dx5, Y: p5.Y + dy5}
	interp.cp = vec.Vec2{X: p6.X + dx6, Y: p6.Y + dy6}
	interp.actFlex(op, p0, p1, p2, p34, p5, p6, interp.cp, depth)
}
