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

import "strconv"

// An Op identifies a single charstring operator.  Single-byte operators
// use their byte value (0 to 31), two-byte operators introduced by the
// escape byte 12 are mapped to 32 plus the second byte.
type Op int

// Operators shared between the Type 1 and Type 2 charstring dialects,
// plus the operators specific to one of the two.
const (
	OpHstem      Op = 1
	OpVstem      Op = 3
	OpVmoveto    Op = 4
	OpRlineto    Op = 5
	OpHlineto    Op = 6
	OpVlineto    Op = 7
	OpRrcurveto  Op = 8
	OpClosepath  Op = 9 // Type 1
	OpCallsubr   Op = 10
	OpReturn     Op = 11
	opEscape     Op = 12
	OpHsbw       Op = 13 // Type 1
	OpEndchar    Op = 14
	OpBlend      Op = 16
	OpHstemhm    Op = 18 // Type 2
	OpHintmask   Op = 19 // Type 2
	OpCntrmask   Op = 20 // Type 2
	OpRmoveto    Op = 21
	OpHmoveto    Op = 22
	OpVstemhm    Op = 23 // Type 2
	OpRcurveline Op = 24 // Type 2
	OpRlinecurve Op = 25 // Type 2
	OpVvcurveto  Op = 26 // Type 2
	OpHhcurveto  Op = 27 // Type 2
	opShortint   Op = 28 // Type 2 number prefix, not an operator
	OpCallgsubr  Op = 29 // Type 2
	OpVhcurveto  Op = 30
	OpHvcurveto  Op = 31

	OpDotsection      Op = 32 + 0
	OpVstem3          Op = 32 + 1 // Type 1
	OpHstem3          Op = 32 + 2 // Type 1
	OpAnd             Op = 32 + 3
	OpOr              Op = 32 + 4
	OpNot             Op = 32 + 5
	OpSeac            Op = 32 + 6 // Type 1
	OpSbw             Op = 32 + 7 // Type 1
	OpStore           Op = 32 + 8
	OpAbs             Op = 32 + 9
	OpAdd             Op = 32 + 10
	OpSub             Op = 32 + 11
	OpDiv             Op = 32 + 12
	OpLoad            Op = 32 + 13
	OpNeg             Op = 32 + 14
	OpEq              Op = 32 + 15
	OpCallothersubr   Op = 32 + 16 // Type 1
	OpPop             Op = 32 + 17 // Type 1
	OpDrop            Op = 32 + 18
	OpPut             Op = 32 + 20
	OpGet             Op = 32 + 21
	OpIfelse          Op = 32 + 22
	OpRandom          Op = 32 + 23
	OpMul             Op = 32 + 24
	OpSqrt            Op = 32 + 26
	OpDup             Op = 32 + 27
	OpExch            Op = 32 + 28
	OpIndex           Op = 32 + 29
	OpRoll            Op = 32 + 30
	OpSetcurrentpoint Op = 32 + 33 // Type 1
	OpHflex           Op = 32 + 34 // Type 2
	OpFlex            Op = 32 + 35 // Type 2
	OpHflex1          Op = 32 + 36 // Type 2
	OpFlex1           Op = 32 + 37 // Type 2
)

var opNames = [...]string{
	OpHstem:      "hstem",
	OpVstem:      "vstem",
	OpVmoveto:    "vmoveto",
	OpRlineto:    "rlineto",
	OpHlineto:    "hlineto",
	OpVlineto:    "vlineto",
	OpRrcurveto:  "rrcurveto",
	OpClosepath:  "closepath",
	OpCallsubr:   "callsubr",
	OpReturn:     "return",
	opEscape:     "escape",
	OpHsbw:       "hsbw",
	OpEndchar:    "endchar",
	OpBlend:      "blend",
	OpHstemhm:    "hstemhm",
	OpHintmask:   "hintmask",
	OpCntrmask:   "cntrmask",
	OpRmoveto:    "rmoveto",
	OpHmoveto:    "hmoveto",
	OpVstemhm:    "vstemhm",
	OpRcurveline: "rcurveline",
	OpRlinecurve: "rlinecurve",
	OpVvcurveto:  "vvcurveto",
	OpHhcurveto:  "hhcurveto",
	opShortint:   "shortint",
	OpCallgsubr:  "callgsubr",
	OpVhcurveto:  "vhcurveto",
	OpHvcurveto:  "hvcurveto",

	OpDotsection:      "dotsection",
	OpVstem3:          "vstem3",
	OpHstem3:          "hstem3",
	OpAnd:             "and",
	OpOr:              "or",
	OpNot:             "not",
	OpSeac:            "seac",
	OpSbw:             "sbw",
	OpStore:           "store",
	OpAbs:             "abs",
	OpAdd:             "add",
	OpSub:             "sub",
	OpDiv:             "div",
	OpLoad:            "load",
	OpNeg:             "neg",
	OpEq:              "eq",
	OpCallothersubr:   "callothersubr",
	OpPop:             "pop",
	OpDrop:            "drop",
	OpPut:             "put",
	OpGet:             "get",
	OpIfelse:          "ifelse",
	OpRandom:          "random",
	OpMul:             "mul",
	OpSqrt:            "sqrt",
	OpDup:             "dup",
	OpExch:            "exch",
	OpIndex:           "index",
	OpRoll:            "roll",
	OpSetcurrentpoint: "setcurrentpoint",
	OpHflex:           "hflex",
	OpFlex:            "flex",
	OpHflex1:          "hflex1",
	OpFlex1:           "flex1",
}

// String returns the conventional name of the operator, or a placeholder
// for operator codes which have no assigned meaning.
func (op Op) String() string {
	if op >= 0 && int(op) < len(opNames) && opNames[op] != "" {
		return opNames[op]
	}
	if op >= 32 {
		return "UNKNOWN_12_" + strconv.Itoa(int(op)-32)
	}
	return "UNKNOWN_" + strconv.Itoa(int(op))
}

// Othersubr numbers used by the Type 1 callothersubr operator.
const (
	othFlexend      = 0
	othFlexbegin    = 1
	othFlexmiddle   = 2
	othReplacehints = 3

	othMM1 = 14
	othMM2 = 15
	othMM3 = 16
	othMM4 = 17
	othMM6 = 18

	othITCLoad    = 19
	othITCAdd     = 20
	othITCSub     = 21
	othITCMul     = 22
	othITCDiv     = 23
	othITCPut     = 24
	othITCGet     = 25
	othITCUnknown = 26
	othITCIfelse  = 27
	othITCRandom  = 28
)
