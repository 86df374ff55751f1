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

// type1Command executes a single Type 1 operator.  It returns false
// when execution of the current byte stream must stop, either because
// of an error or because a return/seac/endchar operator was reached.
func (interp *Interp) type1Command(op Op) bool {
	switch op {
	case OpReturn:
		return false

	case OpHsbw:
		if !interp.need(2, op) {
			return false
		}
		if interp.state > stateSeac {
			return interp.fail(ErrOrdering, int(op))
		}
		interp.lsb = vec.Vec2{
			X: interp.seacOrigin.X + interp.at(0),
			Y: interp.seacOrigin.Y,
		}
		interp.cp = interp.lsb
		if interp.state == stateInitial {
			interp.actSidebearing(op, interp.lsb)
			interp.actWidth(op, vec.Vec2{X: interp.at(1)})
		}
		interp.state = stateSbw

	case OpSbw:
		if !interp.need(4, op) {
			return false
		}
		if interp.state > stateSeac {
			return interp.fail(ErrOrdering, int(op))
		}
		interp.lsb = vec.Vec2{
			X: interp.seacOrigin.X + interp.at(0),
			Y: interp.seacOrigin.Y + interp.at(1),
		}
		interp.cp = interp.lsb
		if interp.state == stateInitial {
			interp.actSidebearing(op, interp.lsb)
			interp.actWidth(op, vec.Vec2{X: interp.at(2), Y: interp.at(3)})
		}
		interp.state = stateSbw

	case OpSeac:
		if !interp.need(5, op) {
			return false
		}
		if interp.state > stateSbw {
			return interp.fail(ErrOrdering, int(op))
		}
		interp.actSeac(op, interp.at(0), interp.at(1), interp.at(2),
			int(interp.at(3)), int(interp.at(4)))
		interp.done = true
		interp.clear()
		return false

	case OpCallsubr:
		return interp.callsubr(op)

	case OpCallothersubr:
		if !interp.need(2, op) {
			return false
		}
		num := int(interp.top(0))
		n := int(interp.top(1))
		interp.popN(2)
		if num < 0 || interp.sp < n {
			return interp.fail(ErrOthersubr, num)
		}
		return interp.callothersubr(num, n)

	case OpPut, OpGet, OpStore, OpLoad:
		return interp.vectorCommand(op)

	case OpBlend, OpAbs, OpAdd, OpSub, OpDiv, OpNeg, OpRandom, OpMul,
		OpSqrt, OpDrop, OpExch, OpIndex, OpRoll, OpDup, OpAnd, OpOr,
		OpNot, OpEq, OpIfelse, OpPop, Op(15):
		return interp.arithCommand(op)

	case OpHlineto:
		if !interp.need(1, op) {
			return false
		}
		interp.state = statePath
		interp.actRlineto(op, interp.at(0), 0)

	case OpHmoveto:
		if !interp.need(1, op) {
			return false
		}
		if interp.state == statePath {
			interp.actClosePath(op)
		}
		interp.state = stateIPath
		interp.actRmoveto(op, interp.at(0), 0)

	case OpHvcurveto:
		if !interp.need(4, op) {
			return false
		}
		interp.state = statePath
		interp.actRrcurveto(op, interp.at(0), 0,
			interp.at(1), interp.at(2), 0, interp.at(3))

	case OpRlineto:
		if !interp.need(2, op) {
			return false
		}
		interp.state = statePath
		interp.actRlineto(op, interp.at(0), interp.at(1))

	case OpRmoveto:
		if !interp.need(2, op) {
			return false
		}
		if interp.state == statePath {
			interp.actClosePath(op)
		}
		interp.state = stateIPath
		interp.actRmoveto(op, interp.at(0), interp.at(1))

	case OpRrcurveto:
		if !interp.need(6, op) {
			return false
		}
		interp.state = statePath
		interp.actRrcurveto(op, interp.at(0), interp.at(1),
			interp.at(2), interp.at(3), interp.at(4), interp.at(5))

	case OpVhcurveto:
		if !interp.need(4, op) {
			return false
		}
		interp.state = statePath
		interp.actRrcurveto(op, 0, interp.at(0),
			interp.at(1), interp.at(2), interp.at(3), 0)

	case OpVlineto:
		if !interp.need(1, op) {
			return false
		}
		interp.state = statePath
		interp.actRlineto(op, 0, interp.at(0))

	case OpVmoveto:
		if !interp.need(1, op) {
			return false
		}
		if interp.state == statePath {
			interp.actClosePath(op)
		}
		interp.state = stateIPath
		interp.actRmoveto(op, 0, interp.at(0))

	case OpDotsection:
		// deprecated, ignored

	case OpHstem:
		if !interp.need(2, op) {
			return false
		}
		interp.actHstem(op, interp.lsb.Y+interp.at(0), interp.at(1))

	case OpHstem3:
		if !interp.need(6, op) {
			return false
		}
		interp.actHstem3(op,
			interp.lsb.Y+interp.at(0), interp.at(1),
			interp.lsb.Y+interp.at(2), interp.at(3),
			interp.lsb.Y+interp.at(4), interp.at(5))

	case OpVstem:
		if !interp.need(2, op) {
			return false
		}
		interp.actVstem(op, interp.lsb.X+interp.at(0), interp.at(1))

	case OpVstem3:
		if !interp.need(6, op) {
			return false
		}
		interp.actVstem3(op,
			interp.lsb.X+interp.at(0), interp.at(1),
			interp.lsb.X+interp.at(2), interp.at(3),
			interp.lsb.X+interp.at(4), interp.at(5))

	case OpSetcurrentpoint:
		if !interp.need(2, op) {
			return false
		}
		interp.cp = vec.Vec2{X: interp.at(0), Y: interp.at(1)}

	case OpClosepath:
		if interp.state == statePath {
			interp.actClosePath(op)
		}
		interp.state = stateIPath

	case OpEndchar:
		if interp.state == statePath {
			interp.actClosePath(op)
		}
		interp.done = true
		return false

	default:
		return interp.fail(ErrUnimplemented, int(op))
	}

	interp.clear()
	return interp.errCode == ErrOK
}

// callothersubr dispatches the Type 1 callothersubr operator.  The
// known othersubrs implement flex, hint replacement, multiple master
// blends and the ITC scratch vector extensions; unknown numbers copy
// their arguments onto the PostScript stack for a later Pop.
func (interp *Interp) callothersubr(num, n int) bool {
	switch {
	case num == othFlexend && n == 3:
		if !interp.flex || interp.psSp != 16 {
			return interp.fail(ErrFlex, 0)
		}
		interp.actFlex(OpCallothersubr,
			vec.Vec2{X: interp.psAt(0), Y: interp.psAt(1)},
			vec.Vec2{X: interp.psAt(4), Y: interp.psAt(5)},
			vec.Vec2{X: interp.psAt(6), Y: interp.psAt(7)},
			vec.Vec2{X: interp.psAt(8), Y: interp.psAt(9)},
			vec.Vec2{X: interp.psAt(10), Y: interp.psAt(11)},
			vec.Vec2{X: interp.psAt(12), Y: interp.psAt(13)},
			vec.Vec2{X: interp.psAt(14), Y: interp.psAt(15)},
			interp.top(2))
		interp.psClear()
		interp.psPush(interp.top(0))
		interp.psPush(interp.top(1))
		interp.flex = false
		interp.state = statePath

	case num == othFlexbegin && n == 0:
		if interp.flex {
			return interp.fail(ErrFlex, 0)
		}
		interp.psClear()
		interp.psPush(interp.cp.X)
		interp.psPush(interp.cp.Y)
		interp.flex = true
		interp.state = stateIPath

	case num == othFlexmiddle && n == 0:
		if !interp.flex {
			return interp.fail(ErrFlex, 0)
		}
		interp.psPush(interp.cp.X)
		interp.psPush(interp.cp.Y)

	case num == othReplacehints && n == 1:
		interp.psClear()
		interp.psPush(interp.top(0))

	case num >= othMM1 && num <= othMM6:
		return interp.mmCommand(num, n)

	case num >= othITCLoad && num <= othITCRandom:
		return interp.itcCommand(num, n)

	default:
		interp.psClear()
		for i := 0; i < n; i++ {
			interp.psPush(interp.top(i))
		}
	}

	interp.popN(n)
	return true
}

// mmCommand evaluates a multiple master blend othersubr.  The results
// are pushed onto the PostScript stack in reverse, so that subsequent
// Pop operators retrieve them in program order.
func (interp *Interp) mmCommand(num, onStack int) bool {
	if len(interp.weight) == 0 {
		return interp.fail(ErrVector, int(OpCallothersubr))
	}

	var nargs int
	switch num {
	case othMM1:
		nargs = 1
	case othMM2:
		nargs = 2
	case othMM3:
		nargs = 3
	case othMM4:
		nargs = 4
	case othMM6:
		nargs = 6
	default:
		return interp.fail(ErrInternal, int(OpCallothersubr))
	}

	nmasters := len(interp.weight)
	if interp.sp < nargs*nmasters || onStack != nargs*nmasters {
		return interp.fail(ErrMultipleMaster, int(OpCallothersubr))
	}

	base := interp.sp - onStack
	off := base + nargs
	for j := 0; j < nargs; j++ {
		val := interp.stack[base+j]
		for i := 1; i < nmasters; i++ {
			val += interp.weight[i] * interp.stack[off]
			off++
		}
		interp.stack[base+j] = val
	}

	for i := nargs - 1; i >= 0; i-- {
		interp.psPush(interp.stack[base+i])
	}

	interp.popN(onStack)
	return true
}

// itcCommand evaluates one of the ITC othersubr extensions, which give
// Type 1 programs access to the scratch vector and simple arithmetic.
// Results are returned via the PostScript stack.
func (interp *Interp) itcCommand(num, onStack int) bool {
	if len(interp.weight) == 0 {
		return interp.fail(ErrVector, int(OpCallothersubr))
	}

	base := interp.sp - onStack
	switch num {
	case othITCLoad:
		if onStack != 1 {
			return interp.fail(ErrOthersubr, num)
		}
		offset := int(interp.at(base))
		for i, w := range interp.weight {
			interp.scratchPut(offset+i, w)
		}

	case othITCPut:
		if onStack != 2 {
			return interp.fail(ErrOthersubr, num)
		}
		offset := int(interp.at(base + 1))
		interp.scratchPut(offset, interp.at(base))

	case othITCGet:
		if onStack != 1 {
			return interp.fail(ErrOthersubr, num)
		}
		offset := int(interp.at(base))
		interp.psPush(interp.scratchGet(offset))

	case othITCAdd:
		if onStack != 2 {
			return interp.fail(ErrOthersubr, num)
		}
		interp.psPush(interp.at(base) + interp.at(base+1))

	case othITCSub:
		if onStack != 2 {
			return interp.fail(ErrOthersubr, num)
		}
		interp.psPush(interp.at(base) - interp.at(base+1))

	case othITCMul:
		if onStack != 2 {
			return interp.fail(ErrOthersubr, num)
		}
		interp.psPush(interp.at(base) * interp.at(base+1))

	case othITCDiv:
		if onStack != 2 {
			return interp.fail(ErrOthersubr, num)
		}
		interp.psPush(interp.at(base) / interp.at(base+1))

	case othITCIfelse:
		if onStack != 4 {
			return interp.fail(ErrOthersubr, num)
		}
		if interp.at(base+2) <= interp.at(base+3) {
			interp.psPush(interp.at(base))
		} else {
			interp.psPush(interp.at(base + 1))
		}

	default:
		return interp.fail(ErrOthersubr, num)
	}

	interp.popN(onStack)
	return true
}
