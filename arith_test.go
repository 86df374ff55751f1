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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func (interp *Interp) stackSlice() []float64 {
	res := make([]float64, interp.sp)
	copy(res, interp.stack[:interp.sp])
	return res
}

func TestBlend(t *testing.T) {
	interp := NewInterp(nil)
	interp.reset()
	interp.weight = []float64{0.25, 0.75}

	for _, v := range []float64{10, 20, 1, 3} {
		interp.push(v)
	}
	interp.push(2) // nargs
	if !interp.arithCommand(OpBlend) {
		t.Fatal(interp.Err())
	}

	want := []float64{10.75, 22.25}
	if d := cmp.Diff(want, interp.stackSlice()); d != "" {
		t.Errorf("stack mismatch (-want +got):\n%s", d)
	}
}

// TestBlendUniformWeights checks that blending with uniform weights
// leaves the first-master values unchanged when all master deltas are
// zero.
func TestBlendUniformWeights(t *testing.T) {
	interp := NewInterp(nil)
	interp.reset()
	m := 4
	interp.weight = make([]float64, m)
	for i := range interp.weight {
		interp.weight[i] = 1 / float64(m)
	}

	// Blending v with deltas of zero leaves v unchanged.
	for j := 0; j < 3; j++ {
		interp.push(float64(j + 1))
	}
	for i := 0; i < 3*(m-1); i++ {
		interp.push(0)
	}
	interp.push(3)
	if !interp.arithCommand(OpBlend) {
		t.Fatal(interp.Err())
	}

	want := []float64{1, 2, 3}
	if d := cmp.Diff(want, interp.stackSlice()); d != "" {
		t.Errorf("stack mismatch (-want +got):\n%s", d)
	}
}

// TestBlendSingleMaster checks that with a single master the Blend
// operator only removes the argument count.
func TestBlendSingleMaster(t *testing.T) {
	interp := NewInterp(nil)
	interp.reset()
	interp.weight = []float64{1}

	for _, v := range []float64{7, 8, 9} {
		interp.push(v)
	}
	interp.push(3)
	if !interp.arithCommand(OpBlend) {
		t.Fatal(interp.Err())
	}

	want := []float64{7, 8, 9}
	if d := cmp.Diff(want, interp.stackSlice()); d != "" {
		t.Errorf("stack mismatch (-want +got):\n%s", d)
	}
}

func TestBlendWithoutWeights(t *testing.T) {
	interp := NewInterp(nil)
	interp.reset()
	interp.push(1)
	interp.push(1)
	if interp.arithCommand(OpBlend) {
		t.Fatal("expected failure")
	}
	if interp.errCode != ErrVector {
		t.Errorf("got error code %d, want ErrVector", interp.errCode)
	}
}

func TestRoll(t *testing.T) {
	interp := NewInterp(nil)
	interp.reset()
	for _, v := range []float64{1, 2, 3, 4, 5} {
		interp.push(v)
	}

	interp.push(5)
	interp.push(2)
	if !interp.arithCommand(OpRoll) {
		t.Fatal(interp.Err())
	}
	want := []float64{3, 4, 5, 1, 2}
	if d := cmp.Diff(want, interp.stackSlice()); d != "" {
		t.Errorf("stack mismatch (-want +got):\n%s", d)
	}

	// rolling back by the negated amount restores the original order
	interp.push(5)
	interp.push(-2)
	if !interp.arithCommand(OpRoll) {
		t.Fatal(interp.Err())
	}
	want = []float64{1, 2, 3, 4, 5}
	if d := cmp.Diff(want, interp.stackSlice()); d != "" {
		t.Errorf("stack mismatch (-want +got):\n%s", d)
	}
}

func TestRollBadCount(t *testing.T) {
	interp := NewInterp(nil)
	interp.reset()
	interp.push(0)
	interp.push(1)
	if interp.arithCommand(OpRoll) {
		t.Fatal("expected failure")
	}
	if interp.errCode != ErrValue {
		t.Errorf("got error code %d, want ErrValue", interp.errCode)
	}
}

// TestIfelse checks the comparison direction: the first value survives
// unless top(1) is strictly greater than top(0).
func TestIfelse(t *testing.T) {
	tests := []struct {
		v1, v2 float64
		want   float64
	}{
		{1, 2, 10}, // v1 <= v2: keep the first
		{2, 2, 10},
		{3, 2, 20}, // v1 > v2: keep the second
	}
	for _, test := range tests {
		interp := NewInterp(nil)
		interp.reset()
		interp.push(10)
		interp.push(20)
		interp.push(test.v1)
		interp.push(test.v2)
		if !interp.arithCommand(OpIfelse) {
			t.Fatal(interp.Err())
		}
		got := interp.stackSlice()
		if len(got) != 1 || got[0] != test.want {
			t.Errorf("ifelse(10, 20, %g, %g): got %v, want [%g]",
				test.v1, test.v2, got, test.want)
		}
	}
}

// TestOpcode15 checks the undocumented operator 15, which consumes two
// operands and does nothing.
func TestOpcode15(t *testing.T) {
	interp := NewInterp(nil)
	err := interp.Run(nil, nil, t1(0, 100, OpHsbw, 1, 2, Op(15), OpEndchar))
	if err != nil {
		t.Fatal(err)
	}
	if interp.sp != 0 {
		t.Errorf("stack depth = %d, want 0", interp.sp)
	}
}

func TestRandom(t *testing.T) {
	interp := NewInterp(nil)
	interp.reset()
	for i := 0; i < 1000; i++ {
		if !interp.arithCommand(OpRandom) {
			t.Fatal(interp.Err())
		}
		v := interp.pop()
		if v <= 0 || v > 1 {
			t.Fatalf("random value %g out of range", v)
		}
	}
}

func TestSqrtNegative(t *testing.T) {
	interp := NewInterp(nil)
	interp.reset()
	interp.push(-4)
	if interp.arithCommand(OpSqrt) {
		t.Fatal("expected failure")
	}
	if interp.errCode != ErrValue {
		t.Errorf("got error code %d, want ErrValue", interp.errCode)
	}
}

func TestIndex(t *testing.T) {
	interp := NewInterp(nil)
	interp.reset()
	for _, v := range []float64{1, 2, 3} {
		interp.push(v)
	}
	interp.push(1)
	if !interp.arithCommand(OpIndex) {
		t.Fatal(interp.Err())
	}
	want := []float64{1, 2, 3, 2}
	if d := cmp.Diff(want, interp.stackSlice()); d != "" {
		t.Errorf("stack mismatch (-want +got):\n%s", d)
	}
}

func TestArithViaCharstring(t *testing.T) {
	interp := NewInterp(nil)

	// 12 3 div  5 mul  1 sub  4 add  -> 23 on the stack
	cs := t1(12, 3, OpDiv, 5, OpMul, 1, OpSub, 4, OpAdd, OpEndchar)
	err := interp.Run(nil, nil, cs)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{23}
	if d := cmp.Diff(want, interp.stackSlice()); d != "" {
		t.Errorf("stack mismatch (-want +got):\n%s", d)
	}
}

func TestPutGet(t *testing.T) {
	interp := NewInterp(nil)
	interp.reset()

	interp.push(42)
	interp.push(7)
	if !interp.vectorCommand(OpPut) {
		t.Fatal(interp.Err())
	}
	interp.push(7)
	if !interp.vectorCommand(OpGet) {
		t.Fatal(interp.Err())
	}
	if got := interp.pop(); got != 42 {
		t.Errorf("got %g, want 42", got)
	}

	// reads beyond the end of the scratch vector yield zero
	interp.push(100000)
	if !interp.vectorCommand(OpGet) {
		t.Fatal(interp.Err())
	}
	if got := interp.pop(); got != 0 {
		t.Errorf("got %g, want 0", got)
	}
}

func TestScratchGrows(t *testing.T) {
	interp := NewInterp(nil)
	interp.reset()

	interp.push(1.5)
	interp.push(200)
	if !interp.vectorCommand(OpPut) {
		t.Fatal(interp.Err())
	}
	if got := interp.scratchGet(200); got != 1.5 {
		t.Errorf("got %g, want 1.5", got)
	}
}

func TestStoreLoad(t *testing.T) {
	prog := &testProgram{
		norm:     make([]float64, 4),
		writable: true,
	}
	interp := NewInterp(nil)
	interp.program = prog
	interp.weight = []float64{0.5, 0.5}
	interp.reset()

	// scratch[0] = 42
	interp.push(42)
	interp.push(0)
	if !interp.vectorCommand(OpPut) {
		t.Fatal(interp.Err())
	}

	// norm[0] = scratch[0]
	interp.push(1)
	interp.push(0)
	interp.push(0)
	interp.push(1)
	if !interp.vectorCommand(OpStore) {
		t.Fatal(interp.Err())
	}
	if prog.norm[0] != 42 {
		t.Errorf("norm[0] = %g, want 42", prog.norm[0])
	}

	// scratch[5], scratch[6] = norm[0], norm[1]
	interp.push(1)
	interp.push(5)
	interp.push(2)
	if !interp.vectorCommand(OpLoad) {
		t.Fatal(interp.Err())
	}
	if interp.scratchGet(5) != 42 || interp.scratchGet(6) != 0 {
		t.Error("wrong scratch contents after Load")
	}
}

func TestStoreReadOnly(t *testing.T) {
	prog := &testProgram{
		norm: make([]float64, 4),
	}
	interp := NewInterp(nil)
	interp.program = prog
	interp.reset()

	interp.push(1)
	interp.push(0)
	interp.push(0)
	interp.push(1)
	if interp.vectorCommand(OpStore) {
		t.Fatal("expected failure")
	}
	if interp.errCode != ErrVector {
		t.Errorf("got error code %d, want ErrVector", interp.errCode)
	}
}

func TestStoreWithoutProgram(t *testing.T) {
	interp := NewInterp(nil)
	interp.reset()

	interp.push(0)
	interp.push(0)
	interp.push(0)
	interp.push(1)
	if interp.vectorCommand(OpStore) {
		t.Fatal("expected failure")
	}
	if interp.errCode != ErrVector {
		t.Errorf("got error code %d, want ErrVector", interp.errCode)
	}
}

func TestMMBlend(t *testing.T) {
	interp := NewInterp(nil)

	// othersubr 15 blends two arguments over two masters; the results
	// come back in program order via Pop.
	cs := t1(10, 20, 1, 3, 4, 15, OpCallothersubr,
		OpPop, OpPop, OpEndchar)
	err := interp.Run(nil, []float64{0.25, 0.75}, cs)
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{10.75, 22.25}
	if d := cmp.Diff(want, interp.stackSlice()); d != "" {
		t.Errorf("stack mismatch (-want +got):\n%s", d)
	}
}

func TestMMWithoutWeights(t *testing.T) {
	interp := NewInterp(nil)
	err := interp.Run(nil, nil, t1(1, 2, 2, 15, OpCallothersubr))
	code, _ := errCodeOf(t, err)
	if code != ErrVector {
		t.Errorf("got error code %d, want ErrVector", code)
	}
}

func TestITCCommands(t *testing.T) {
	weight := []float64{0.5, 0.5}

	tests := []struct {
		name string
		cs   Type1Charstring
		want []float64
	}{
		{
			name: "add",
			cs:   t1(3, 4, 2, 20, OpCallothersubr, OpPop, OpEndchar),
			want: []float64{7},
		},
		{
			name: "sub",
			cs:   t1(10, 4, 2, 21, OpCallothersubr, OpPop, OpEndchar),
			want: []float64{6},
		},
		{
			name: "mul",
			cs:   t1(6, 7, 2, 22, OpCallothersubr, OpPop, OpEndchar),
			want: []float64{42},
		},
		{
			name: "div",
			cs:   t1(10, 4, 2, 23, OpCallothersubr, OpPop, OpEndchar),
			want: []float64{2.5},
		},
		{
			name: "put/get",
			cs: t1(99, 3, 2, 24, OpCallothersubr,
				3, 1, 25, OpCallothersubr, OpPop, OpEndchar),
			want: []float64{99},
		},
		{
			name: "ifelse low",
			cs: t1(7, 8, 1, 2, 4, 27, OpCallothersubr,
				OpPop, OpEndchar),
			want: []float64{7},
		},
		{
			name: "ifelse high",
			cs: t1(7, 8, 2, 1, 4, 27, OpCallothersubr,
				OpPop, OpEndchar),
			want: []float64{8},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			interp := NewInterp(nil)
			err := interp.Run(nil, weight, test.cs)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(test.want, interp.stackSlice()); d != "" {
				t.Errorf("stack mismatch (-want +got):\n%s", d)
			}
		})
	}
}

// TestOthersubrPassthrough checks that unknown othersubr numbers copy
// their arguments to the PostScript stack.
func TestOthersubrPassthrough(t *testing.T) {
	interp := NewInterp(nil)
	cs := t1(1, 2, 2, 77, OpCallothersubr, OpPop, OpPop, OpEndchar)
	err := interp.Run(nil, nil, cs)
	if err != nil {
		t.Fatal(err)
	}

	// the first Pop retrieves the first argument
	want := []float64{1, 2}
	if d := cmp.Diff(want, interp.stackSlice()); d != "" {
		t.Errorf("stack mismatch (-want +got):\n%s", d)
	}
}

func TestReplacehints(t *testing.T) {
	interp := NewInterp(nil)
	cs := t1(3, 1, 3, OpCallothersubr, OpPop, OpEndchar)
	err := interp.Run(nil, nil, cs)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{3}
	if d := cmp.Diff(want, interp.stackSlice()); d != "" {
		t.Errorf("stack mismatch (-want +got):\n%s", d)
	}
}
