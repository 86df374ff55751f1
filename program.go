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

// A Program is the read-only view into a font that the interpreter
// needs while running a glyph.  All methods are called during Run only;
// implementations need not be safe for concurrent use with a single
// interpreter.
type Program interface {
	// Subr returns the local subroutine with the given number, or nil
	// if there is no such subroutine.
	Subr(i int) Charstring

	// GSubr returns the global subroutine with the given number, or
	// nil.  Only Type 2 charstrings call global subroutines.
	GSubr(i int) Charstring

	// GlyphByName returns the charstring of the named glyph, or nil.
	// This is used to resolve the base and accent glyphs of composite
	// characters.
	GlyphByName(name string) Charstring

	// NormDesignVector returns the normalized design vector of a
	// multiple master font, or nil.
	NormDesignVector() []float64

	// DesignVector returns the user design vector of a multiple master
	// font, or nil.
	DesignVector() []float64

	// WritableVectors reports whether the Store operator may modify the
	// weight and normalized design vectors.
	WritableVectors() bool

	// GlobalWidthX returns the font-wide nominal (nominal true) or
	// default (nominal false) horizontal advance width.  The second
	// return value reports whether the width is known.
	GlobalWidthX(nominal bool) (float64, bool)
}
