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

import (
	"math"
	"math/rand/v2"
)

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// arithCommand implements the arithmetic and stack manipulation
// operators shared by both dialects.  These operators leave their
// results on the stack; the operand stack is not cleared afterwards.
func (interp *Interp) arithCommand(op Op) bool {
	switch op {
	case OpBlend:
		return interp.blendCommand(op)

	case OpAbs:
		if !interp.need(1, op) {
			return false
		}
		if interp.top(0) < 0 {
			interp.setTop(0, -interp.top(0))
		}

	case OpAdd:
		if !interp.need(2, op) {
			return false
		}
		d := interp.pop()
		interp.setTop(0, interp.top(0)+d)

	case OpSub:
		if !interp.need(2, op) {
			return false
		}
		d := interp.pop()
		interp.setTop(0, interp.top(0)-d)

	case OpDiv:
		if !interp.need(2, op) {
			return false
		}
		d := interp.pop()
		interp.setTop(0, interp.top(0)/d)

	case OpNeg:
		if !interp.need(1, op) {
			return false
		}
		interp.setTop(0, -interp.top(0))

	case OpRandom:
		// must be strictly positive
		for {
			d := rand.Float64()
			if d != 0 {
				interp.push(d)
				break
			}
		}

	case OpMul:
		if !interp.need(2, op) {
			return false
		}
		d := interp.pop()
		interp.setTop(0, interp.top(0)*d)

	case OpSqrt:
		if !interp.need(1, op) {
			return false
		}
		if interp.top(0) < 0 {
			return interp.fail(ErrValue, int(op))
		}
		interp.setTop(0, math.Sqrt(interp.top(0)))

	case OpDrop:
		if !interp.need(1, op) {
			return false
		}
		interp.pop()

	case OpExch:
		if !interp.need(2, op) {
			return false
		}
		d := interp.top(0)
		interp.setTop(0, interp.top(1))
		interp.setTop(1, d)

	case OpIndex:
		if !interp.need(1, op) {
			return false
		}
		i := int(interp.top(0))
		if i < 0 {
			return interp.fail(ErrValue, int(op))
		}
		if !interp.need(i+2, op) {
			return false
		}
		interp.setTop(0, interp.top(i+1))

	case OpRoll:
		return interp.rollCommand(op)

	case OpDup:
		if !interp.need(1, op) {
			return false
		}
		interp.push(interp.top(0))

	case OpAnd:
		if !interp.need(2, op) {
			return false
		}
		d := interp.pop()
		interp.setTop(0, flag(interp.top(0) != 0 && d != 0))

	case OpOr:
		if !interp.need(2, op) {
			return false
		}
		d := interp.pop()
		interp.setTop(0, flag(interp.top(0) != 0 || d != 0))

	case OpNot:
		if !interp.need(1, op) {
			return false
		}
		interp.setTop(0, flag(interp.top(0) == 0))

	case OpEq:
		if !interp.need(2, op) {
			return false
		}
		d := interp.pop()
		interp.setTop(0, flag(interp.top(0) == d))

	case OpIfelse:
		if !interp.need(4, op) {
			return false
		}
		if interp.top(1) > interp.top(0) {
			interp.setTop(3, interp.top(2))
		}
		interp.popN(3)

	case OpPop:
		if interp.psSp < 1 {
			return interp.fail(ErrUnderflow, int(op))
		}
		interp.push(interp.psPop())

	case Op(15):
		// found in the wild (JansonText-Roman) with no documented
		// meaning; drops two operands
		if !interp.need(2, op) {
			return false
		}
		interp.popN(2)

	default:
		return interp.fail(ErrUnimplemented, int(op))
	}

	return true
}

func (interp *Interp) blendCommand(op Op) bool {
	if !interp.need(1, op) {
		return false
	}
	nargs := int(interp.pop())

	nmasters := len(interp.weight)
	if nmasters == 0 {
		return interp.fail(ErrVector, int(op))
	}
	if nargs < 0 {
		return interp.fail(ErrValue, int(op))
	}
	if !interp.need(nargs*nmasters, op) {
		return false
	}

	base := interp.sp - nargs*nmasters
	off := base + nargs
	for j := 0; j < nargs; j++ {
		val := interp.stack[base+j]
		for i := 1; i < nmasters; i++ {
			val += interp.weight[i] * interp.stack[off]
			off++
		}
		interp.stack[base+j] = val
	}

	interp.popN(nargs * (nmasters - 1))
	return true
}

func (interp *Interp) rollCommand(op Op) bool {
	if !interp.need(2, op) {
		return false
	}
	amount := int(interp.pop())
	n := int(interp.pop())
	if n <= 0 {
		return interp.fail(ErrValue, int(op))
	}
	if !interp.need(n, op) {
		return false
	}

	base := interp.sp - n
	for amount < 0 {
		amount += n
	}

	var rolled [stackSize]float64
	for i := 0; i < n; i++ {
		rolled[i] = interp.stack[base+(i+amount)%n]
	}
	copy(interp.stack[base:base+n], rolled[:n])

	return true
}

// vectorCommand implements the Put, Get, Store and Load operators,
// which move values between the operand stack, the scratch vector, and
// the multiple master design vectors.
func (interp *Interp) vectorCommand(op Op) bool {
	switch op {
	case OpPut:
		if !interp.need(2, op) {
			return false
		}
		offset := int(interp.top(0))
		interp.scratchPut(offset, interp.top(1))
		interp.popN(2)

	case OpGet:
		if !interp.need(1, op) {
			return false
		}
		offset := int(interp.top(0))
		interp.setTop(0, interp.scratchGet(offset))

	case OpStore:
		if !interp.need(4, op) {
			return false
		}
		whichVector := int(interp.top(3))
		vectorOff := int(interp.top(2))
		offset := int(interp.top(1))
		num := int(interp.top(0))
		interp.popN(4)

		if interp.program == nil {
			return interp.fail(ErrVector, int(op))
		}
		var vector []float64
		switch whichVector {
		case 0:
			vector = interp.weight
		case 1:
			vector = interp.program.NormDesignVector()
		}
		if vector == nil {
			return interp.fail(ErrVector, int(op))
		}
		if !interp.program.WritableVectors() {
			return interp.fail(ErrVector, int(op))
		}

		for i := 0; i < num; i++ {
			if vectorOff+i >= 0 && vectorOff+i < len(vector) {
				vector[vectorOff+i] = interp.scratchGet(offset + i)
			}
		}

	case OpLoad:
		if !interp.need(3, op) {
			return false
		}
		whichVector := int(interp.top(2))
		offset := int(interp.top(1))
		num := int(interp.top(0))
		interp.popN(3)

		if interp.program == nil {
			return interp.fail(ErrVector, int(op))
		}
		var vector []float64
		switch whichVector {
		case 0:
			vector = interp.weight
		case 1:
			vector = interp.program.NormDesignVector()
		case 2:
			vector = interp.program.DesignVector()
		}
		if vector == nil {
			return interp.fail(ErrVector, int(op))
		}

		for i := 0; i < num; i++ {
			var v float64
			if i < len(vector) {
				v = vector[i]
			}
			interp.scratchPut(offset+i, v)
		}

	default:
		return interp.fail(ErrUnimplemented, int(op))
	}

	return true
}
