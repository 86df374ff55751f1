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

// Package charstring interprets the byte-coded glyph programs of
// PostScript Type 1 and CFF (Type 2) fonts.  Running a charstring
// produces a stream of geometric events (side bearing, width, lines,
// curves, hints) which are delivered to an Actions sink; the caller
// never sees the bytecode itself.
package charstring

import (
	"seehuhn.de/go/charstring/psenc"
	"seehuhn.de/go/geom/vec"
)

// Interpreter ordering states.  A glyph program moves through these in
// order, except that it alternates between stateIPath and statePath as
// sub-paths are closed and started; only the composite character
// protocol resets them.
const (
	stateInitial = iota
	stateSeac
	stateSbw
	stateHstem
	stateVstem
	stateHintmask
	stateIPath
	statePath
)

// An Interp executes charstring programs.  An interpreter must not be
// shared between goroutines; each goroutine needs its own instance.
type Interp struct {
	actions *Actions
	program Program
	weight  []float64

	stack   [stackSize]float64
	sp      int
	psStack [psStackSize]float64
	psSp    int
	scratch []float64

	errCode ErrCode
	errData int

	lsb        vec.Vec2
	cp         vec.Vec2
	seacOrigin vec.Vec2

	state     int
	flex      bool
	numHints  int
	subrDepth int
	done      bool
}

// NewInterp allocates an interpreter delivering events to the given
// sink.  A nil sink discards all events; this is still useful for
// validating charstrings.
func NewInterp(actions *Actions) *Interp {
	if actions == nil {
		actions = &Actions{}
	}
	return &Interp{
		actions: actions,
		scratch: make([]float64, scratchSize),
	}
}

// Run executes the glyph program cs.  The program environment p and the
// multiple master weight vector are borrowed for the duration of the
// call; both may be nil.  The scratch vector survives between runs, all
// other interpreter state is reset.
func (interp *Interp) Run(p Program, weight []float64, cs Charstring) error {
	interp.program = p
	interp.weight = weight
	interp.reset()
	cs.run(interp)
	return interp.Err()
}

func (interp *Interp) reset() {
	interp.clear()
	interp.psClear()
	interp.done = false
	interp.errCode = ErrOK
	interp.errData = 0

	interp.lsb = vec.Vec2{}
	interp.cp = vec.Vec2{}
	interp.seacOrigin = vec.Vec2{}
	interp.state = stateInitial
	interp.flex = false
	interp.numHints = 0
	interp.subrDepth = 0
}

// Done reports whether the most recent run reached an endchar (or a
// Type 1 seac) operator.
func (interp *Interp) Done() bool {
	return interp.done
}

// CurrentPoint returns the interpreter's current point.
func (interp *Interp) CurrentPoint() vec.Vec2 {
	return interp.cp
}

// number is called by the byte decoders for every numeric literal.
func (interp *Interp) number(v float64) bool {
	interp.push(v)
	return interp.errCode == ErrOK
}

func (interp *Interp) callsubr(op Op) bool {
	if !interp.need(1, op) {
		return false
	}
	which := int(interp.pop())

	var subr Charstring
	if interp.program != nil {
		subr = interp.program.Subr(which)
	}
	if subr == nil {
		return interp.fail(ErrSubr, which)
	}

	if interp.subrDepth >= maxSubrDepth {
		return interp.fail(ErrSubrDepth, which)
	}
	interp.subrDepth++
	subr.run(interp)
	interp.subrDepth--

	if interp.errCode != ErrOK {
		return false
	}
	return !interp.done
}

func (interp *Interp) callgsubr(op Op) bool {
	if !interp.need(1, op) {
		return false
	}
	which := int(interp.pop())

	var subr Charstring
	if interp.program != nil {
		subr = interp.program.GSubr(which)
	}
	if subr == nil {
		return interp.fail(ErrSubr, which)
	}

	if interp.subrDepth >= maxSubrDepth {
		return interp.fail(ErrSubrDepth, which)
	}
	interp.subrDepth++
	subr.run(interp)
	interp.subrDepth--

	if interp.errCode != ErrOK {
		return false
	}
	return !interp.done
}

// seac overlays two glyphs from the Adobe Standard Encoding to form a
// composite character.  The accent glyph is drawn first, translated so
// that its reference point coincides with the accent position; then the
// base glyph is drawn at the original origin.  Side bearing and width
// events are suppressed for both inner runs.
func (interp *Interp) seac(op Op, asb, adx, ady float64, bchar, achar int) {
	if achar < 0 || achar > 255 {
		interp.fail(ErrGlyph, achar)
		return
	}
	if bchar < 0 || bchar > 255 {
		interp.fail(ErrGlyph, bchar)
		return
	}
	var acs, bcs Charstring
	if interp.program != nil {
		acs = interp.program.GlyphByName(psenc.StandardEncoding[achar])
		bcs = interp.program.GlyphByName(psenc.StandardEncoding[bchar])
	}
	if acs == nil {
		interp.fail(ErrGlyph, achar)
		return
	}
	if bcs == nil {
		interp.fail(ErrGlyph, bchar)
		return
	}

	apos := vec.Vec2{
		X: adx + interp.lsb.X - asb,
		Y: ady + interp.lsb.Y,
	}
	saveLsb := interp.lsb
	saveOrigin := interp.seacOrigin

	interp.reset()
	interp.seacOrigin = apos
	interp.state = stateSeac
	acs.run(interp)
	if interp.errCode == ErrOK {
		interp.reset()
		interp.seacOrigin = saveOrigin
		interp.state = stateSeac
		bcs.run(interp)
	}

	interp.lsb = saveLsb
}
