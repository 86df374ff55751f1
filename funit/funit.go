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

// Package funit provides integer types for font design units.
package funit

// Int16 is a 16-bit integer in font design units.
type Int16 int16

// AsFloat converts x to a float64, scaled by q.
func (x Int16) AsFloat(q float64) float64 {
	return float64(x) * q
}

// Int is an integer in font design units.
type Int int32

// AsFloat converts x to a float64, scaled by q.
func (x Int) AsFloat(q float64) float64 {
	return float64(x) * q
}
