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

package psenc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStandardEncoding(t *testing.T) {
	for _, code := range []int{0, 31, 127, 160, 255} {
		if StandardEncoding[code] != ".notdef" {
			t.Errorf("code %d: got %q, want .notdef",
				code, StandardEncoding[code])
		}
	}
	if StandardEncoding[65] != "A" || StandardEncoding[193] != "grave" {
		t.Error("wrong glyph names")
	}

	enc := make([]string, 256)
	for i := 0; i < 256; i++ {
		enc[i] = ".notdef"
	}
	for name, c := range StandardEncodingRev {
		enc[c] = name
	}

	if d := cmp.Diff(enc, StandardEncoding[:]); d != "" {
		t.Errorf("mismatch: %s", d)
	}
}
