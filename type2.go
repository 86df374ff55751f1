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

import "math"

// handleWidth decides, at the first ordering-relevant operator of a
// Type 2 charstring, whether the bottom operand is an explicit width.
// It returns the number of operands consumed by the width.
func (interp *Interp) handleWidth(op Op, haveWidth bool) int {
	if haveWidth {
		interp.actNominalWidthDelta(op, interp.at(0))
		return 1
	}
	interp.actDefaultWidth(op)
	return 0
}

// checkState verifies that drawing is allowed and records that a path
// is now under construction.
func (interp *Interp) checkState(op Op) bool {
	if interp.state < stateIPath {
		return interp.fail(ErrOrdering, int(op))
	}
	interp.state = statePath
	return true
}

// type2Command executes a single Type 2 operator.  tail holds the
// bytes following the operator; the hintmask and cntrmask operators
// read their mask bytes from it.  The first return value is the number
// of mask bytes consumed; the second reports whether execution of the
// current byte stream continues.
func (interp *Interp) type2Command(op Op, tail []byte) (int, bool) {
	bottom := 0
	used := 0

	switch op {
	case OpHstem, OpHstemhm:
		if !interp.need(2, op) {
			return 0, false
		}
		if interp.state == stateInitial {
			bottom = interp.handleWidth(op, interp.sp%2 == 1)
		}
		if interp.state > stateHstem {
			return 0, interp.fail(ErrOrdering, int(op))
		}
		interp.state = stateHstem
		for pos := 0.0; bottom+1 < interp.sp; bottom += 2 {
			interp.numHints++
			interp.actHstem(op, pos+interp.at(bottom), interp.at(bottom+1))
			pos += interp.at(bottom) + interp.at(bottom+1)
		}

	case OpVstem, OpVstemhm:
		if !interp.need(2, op) {
			return 0, false
		}
		if interp.state == stateInitial {
			bottom = interp.handleWidth(op, interp.sp%2 == 1)
		}
		if interp.state > stateVstem {
			return 0, interp.fail(ErrOrdering, int(op))
		}
		interp.state = stateVstem
		for pos := 0.0; bottom+1 < interp.sp; bottom += 2 {
			interp.numHints++
			interp.actVstem(op, pos+interp.at(bottom), interp.at(bottom+1))
			pos += interp.at(bottom) + interp.at(bottom+1)
		}

	case OpHintmask, OpCntrmask:
		// Leftover operands are an implicit vstem declaration.
		if interp.state == stateHstem && interp.sp >= 2 {
			for pos := 0.0; bottom+1 < interp.sp; bottom += 2 {
				interp.numHints++
				interp.actVstem(op, pos+interp.at(bottom), interp.at(bottom+1))
				pos += interp.at(bottom) + interp.at(bottom+1)
			}
		}
		if interp.state < stateHintmask {
			interp.state = stateHintmask
		}
		if interp.numHints == 0 {
			return 0, interp.fail(ErrHintmask, int(op))
		}
		numBytes := (interp.numHints + 7) / 8
		if numBytes > len(tail) {
			return 0, interp.fail(ErrRunoff, int(op))
		}
		interp.actHintmask(op, tail[:numBytes], interp.numHints)
		used = numBytes

	case OpRmoveto:
		if !interp.need(2, op) {
			return 0, false
		}
		if interp.state == stateInitial {
			bottom = interp.handleWidth(op, interp.sp > 2)
		} else if interp.state == statePath {
			interp.actClosePath(op)
		}
		interp.state = stateIPath
		interp.actRmoveto(op, interp.at(bottom), interp.at(bottom+1))

	case OpHmoveto:
		if !interp.need(1, op) {
			return 0, false
		}
		if interp.state == stateInitial {
			bottom = interp.handleWidth(op, interp.sp > 1)
		} else if interp.state == statePath {
			interp.actClosePath(op)
		}
		interp.state = stateIPath
		interp.actRmoveto(op, interp.at(bottom), 0)

	case OpVmoveto:
		if !interp.need(1, op) {
			return 0, false
		}
		if interp.state == stateInitial {
			bottom = interp.handleWidth(op, interp.sp > 1)
		} else if interp.state == statePath {
			interp.actClosePath(op)
		}
		interp.state = stateIPath
		interp.actRmoveto(op, 0, interp.at(bottom))

	case OpRlineto:
		if !interp.need(2, op) || !interp.checkState(op) {
			return 0, false
		}
		for ; bottom+1 < interp.sp; bottom += 2 {
			interp.actRlineto(op, interp.at(bottom), interp.at(bottom+1))
		}

	case OpHlineto:
		if !interp.need(1, op) || !interp.checkState(op) {
			return 0, false
		}
		for bottom < interp.sp {
			interp.actRlineto(op, interp.at(bottom), 0)
			bottom++
			if bottom < interp.sp {
				interp.actRlineto(op, 0, interp.at(bottom))
				bottom++
			}
		}

	case OpVlineto:
		if !interp.need(1, op) || !interp.checkState(op) {
			return 0, false
		}
		for bottom < interp.sp {
			interp.actRlineto(op, 0, interp.at(bottom))
			bottom++
			if bottom < interp.sp {
				interp.actRlineto(op, interp.at(bottom), 0)
				bottom++
			}
		}

	case OpRrcurveto:
		if !interp.need(6, op) || !interp.checkState(op) {
			return 0, false
		}
		for ; bottom+5 < interp.sp; bottom += 6 {
			interp.actRrcurveto(op,
				interp.at(bottom), interp.at(bottom+1),
				interp.at(bottom+2), interp.at(bottom+3),
				interp.at(bottom+4), interp.at(bottom+5))
		}

	case OpHhcurveto:
		if !interp.need(4, op) || !interp.checkState(op) {
			return 0, false
		}
		if interp.sp%2 == 1 {
			interp.actRrcurveto(op,
				interp.at(bottom+1), interp.at(bottom),
				interp.at(bottom+2), interp.at(bottom+3),
				interp.at(bottom+4), 0)
			bottom += 5
		}
		for ; bottom+3 < interp.sp; bottom += 4 {
			interp.actRrcurveto(op,
				interp.at(bottom), 0,
				interp.at(bottom+1), interp.at(bottom+2),
				interp.at(bottom+3), 0)
		}

	case OpHvcurveto:
		if !interp.need(4, op) || !interp.checkState(op) {
			return 0, false
		}
		for bottom+3 < interp.sp {
			dx3 := 0.0
			if bottom+5 == interp.sp {
				dx3 = interp.at(bottom + 4)
			}
			interp.actRrcurveto(op,
				interp.at(bottom), 0,
				interp.at(bottom+1), interp.at(bottom+2),
				dx3, interp.at(bottom+3))
			bottom += 4
			if bottom+3 < interp.sp {
				dy3 := 0.0
				if bottom+5 == interp.sp {
					dy3 = interp.at(bottom + 4)
				}
				interp.actRrcurveto(op,
					0, interp.at(bottom),
					interp.at(bottom+1), interp.at(bottom+2),
					interp.at(bottom+3), dy3)
				bottom += 4
			}
		}

	case OpRcurveline:
		if !interp.need(8, op) || !interp.checkState(op) {
			return 0, false
		}
		for ; bottom+7 < interp.sp; bottom += 6 {
			interp.actRrcurveto(op,
				interp.at(bottom), interp.at(bottom+1),
				interp.at(bottom+2), interp.at(bottom+3),
				interp.at(bottom+4), interp.at(bottom+5))
		}
		interp.actRlineto(op, interp.at(bottom), interp.at(bottom+1))

	case OpRlinecurve:
		if !interp.need(8, op) || !interp.checkState(op) {
			return 0, false
		}
		for ; bottom+7 < interp.sp; bottom += 2 {
			interp.actRlineto(op, interp.at(bottom), interp.at(bottom+1))
		}
		interp.actRrcurveto(op,
			interp.at(bottom), interp.at(bottom+1),
			interp.at(bottom+2), interp.at(bottom+3),
			interp.at(bottom+4), interp.at(bottom+5))

	case OpVhcurveto:
		if !interp.need(4, op) || !interp.checkState(op) {
			return 0, false
		}
		for bottom+3 < interp.sp {
			dy3 := 0.0
			if bottom+5 == interp.sp {
				dy3 = interp.at(bottom + 4)
			}
			interp.actRrcurveto(op,
				0, interp.at(bottom),
				interp.at(bottom+1), interp.at(bottom+2),
				interp.at(bottom+3), dy3)
			bottom += 4
			if bottom+3 < interp.sp {
				dx3 := 0.0
				if bottom+5 == interp.sp {
					dx3 = interp.at(bottom + 4)
				}
				interp.actRrcurveto(op,
					interp.at(bottom), 0,
					interp.at(bottom+1), interp.at(bottom+2),
					dx3, interp.at(bottom+3))
				bottom += 4
			}
		}

	case OpVvcurveto:
		if !interp.need(4, op) || !interp.checkState(op) {
			return 0, false
		}
		if interp.sp%2 == 1 {
			interp.actRrcurveto(op,
				interp.at(bottom), interp.at(bottom+1),
				interp.at(bottom+2), interp.at(bottom+3),
				0, interp.at(bottom+4))
			bottom += 5
		}
		for ; bottom+3 < interp.sp; bottom += 4 {
			interp.actRrcurveto(op,
				0, interp.at(bottom),
				interp.at(bottom+1), interp.at(bottom+2),
				0, interp.at(bottom+3))
		}

	case OpFlex:
		if !interp.need(13, op) || !interp.checkState(op) {
			return 0, false
		}
		interp.actRrflex(op,
			interp.at(0), interp.at(1), interp.at(2), interp.at(3),
			interp.at(4), interp.at(5), interp.at(6), interp.at(7),
			interp.at(8), interp.at(9), interp.at(10), interp.at(11),
			interp.at(12))

	case OpHflex:
		if !interp.need(7, op) || !interp.checkState(op) {
			return 0, false
		}
		interp.actRrflex(op,
			interp.at(0), 0, interp.at(1), interp.at(2),
			interp.at(3), 0, interp.at(4), 0,
			interp.at(5), -interp.at(2), interp.at(6), 0,
			50)

	case OpHflex1:
		if !interp.need(9, op) || !interp.checkState(op) {
			return 0, false
		}
		interp.actRrflex(op,
			interp.at(0), interp.at(1), interp.at(2), interp.at(3),
			interp.at(4), 0, interp.at(5), 0,
			interp.at(6), interp.at(7), interp.at(8),
			-(interp.at(1) + interp.at(3) + interp.at(7)),
			50)

	case OpFlex1:
		if !interp.need(11, op) || !interp.checkState(op) {
			return 0, false
		}
		dx := interp.at(0) + interp.at(2) + interp.at(4) +
			interp.at(6) + interp.at(8)
		dy := interp.at(1) + interp.at(3) + interp.at(5) +
			interp.at(7) + interp.at(9)
		if math.Abs(dx) > math.Abs(dy) {
			interp.actRrflex(op,
				interp.at(0), interp.at(1), interp.at(2), interp.at(3),
				interp.at(4), interp.at(5), interp.at(6), interp.at(7),
				interp.at(8), interp.at(9), interp.at(10), -dy,
				50)
		} else {
			interp.actRrflex(op,
				interp.at(0), interp.at(1), interp.at(2), interp.at(3),
				interp.at(4), interp.at(5), interp.at(6), interp.at(7),
				interp.at(8), interp.at(9), -dx, interp.at(10),
				50)
		}

	case OpEndchar:
		if interp.state == stateInitial {
			bottom = interp.handleWidth(op,
				interp.sp > 0 && interp.sp != 4)
		}
		if bottom+3 < interp.sp && interp.state == stateInitial {
			// the deprecated seac-like form
			interp.actSeac(op, 0,
				interp.at(bottom), interp.at(bottom+1),
				int(interp.at(bottom+2)), int(interp.at(bottom+3)))
		} else if interp.state == statePath {
			interp.actClosePath(op)
		}
		interp.done = true
		interp.clear()
		return used, false

	case OpReturn:
		return used, false

	case OpCallsubr:
		return used, interp.callsubr(op)

	case OpCallgsubr:
		return used, interp.callgsubr(op)

	case OpPut, OpGet, OpStore, OpLoad:
		return used, interp.vectorCommand(op)

	case OpBlend, OpAbs, OpAdd, OpSub, OpDiv, OpNeg, OpRandom, OpMul,
		OpSqrt, OpDrop, OpExch, OpIndex, OpRoll, OpDup, OpAnd, OpOr,
		OpNot, OpEq, OpIfelse, OpPop, Op(15):
		return used, interp.arithCommand(op)

	case OpDotsection:
		// deprecated, ignored

	default:
		return used, interp.fail(ErrUnimplemented, int(op))
	}

	interp.clear()
	return used, interp.errCode == ErrOK
}
