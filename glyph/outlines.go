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

package glyph

import (
	"sort"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/charstring"
)

// Outlines holds the charstrings of a font, together with the tables
// needed to interpret them.  It implements [charstring.Program].
type Outlines struct {
	Glyphs map[string]charstring.Charstring

	// Subrs and GSubrs are the local and global subroutine tables.
	Subrs  []charstring.Charstring
	GSubrs []charstring.Charstring

	Encoding []string

	// WeightVector holds the blend weights of a multiple master font.
	WeightVector []float64

	// NormDesign and UserDesign are the normalized and user design
	// vectors of a multiple master font.
	NormDesign []float64
	UserDesign []float64

	// Writable allows charstrings to modify the weight and normalized
	// design vectors.
	Writable bool

	// DefaultWidthX and NominalWidthX are the font-wide advance widths
	// of a CFF font; HasWidths reports whether they are present.
	DefaultWidthX float64
	NominalWidthX float64
	HasWidths     bool
}

// Subr returns the local subroutine with the given number, or nil.
func (o *Outlines) Subr(i int) charstring.Charstring {
	if i < 0 || i >= len(o.Subrs) {
		return nil
	}
	return o.Subrs[i]
}

// GSubr returns the global subroutine with the given number, or nil.
func (o *Outlines) GSubr(i int) charstring.Charstring {
	if i < 0 || i >= len(o.GSubrs) {
		return nil
	}
	return o.GSubrs[i]
}

// GlyphByName returns the charstring of the named glyph, or nil.
func (o *Outlines) GlyphByName(name string) charstring.Charstring {
	cs, ok := o.Glyphs[name]
	if !ok {
		return nil
	}
	return cs
}

// NormDesignVector returns the normalized design vector, or nil.
func (o *Outlines) NormDesignVector() []float64 {
	return o.NormDesign
}

// DesignVector returns the user design vector, or nil.
func (o *Outlines) DesignVector() []float64 {
	return o.UserDesign
}

// WritableVectors reports whether charstrings may modify the weight and
// normalized design vectors.
func (o *Outlines) WritableVectors() bool {
	return o.Writable
}

// GlobalWidthX returns the font-wide default or nominal advance width.
func (o *Outlines) GlobalWidthX(nominal bool) (float64, bool) {
	if !o.HasWidths {
		return 0, false
	}
	if nominal {
		return o.NominalWidthX, true
	}
	return o.DefaultWidthX, true
}

// Build interprets the named glyph and returns the decoded outline.
func (o *Outlines) Build(name string) (*Glyph, error) {
	cs, ok := o.Glyphs[name]
	if !ok {
		return nil, errNoSuchGlyph
	}

	b := NewBuilder()
	interp := charstring.NewInterp(b.Actions())
	err := interp.Run(o, o.WeightVector, cs)
	if err != nil {
		return nil, err
	}
	return b.Glyph, nil
}

// NumGlyphs returns the number of glyphs in the font (including the
// .notdef glyph).
func (o *Outlines) NumGlyphs() int {
	n := len(o.Glyphs)
	if _, ok := o.Glyphs[".notdef"]; !ok {
		n++
	}
	return n
}

// GlyphList returns a list of all glyph names in the font.
// The list starts with ".notdef", followed by the glyphs in the
// Encoding vector, followed by the remaining glyph names in
// alphabetical order.
func (o *Outlines) GlyphList() []string {
	glyphNames := maps.Keys(o.Glyphs)
	if _, ok := o.Glyphs[".notdef"]; !ok {
		glyphNames = append(glyphNames, ".notdef")
	}

	order := make(map[string]int, len(glyphNames))
	for _, name := range glyphNames {
		order[name] = 256
	}
	order[".notdef"] = -1
	for i, name := range o.Encoding {
		if name != ".notdef" {
			order[name] = i
		}
	}
	sort.Slice(glyphNames, func(i, j int) bool {
		oi := order[glyphNames[i]]
		oj := order[glyphNames[j]]
		if oi != oj {
			return oi < oj
		}
		return glyphNames[i] < glyphNames[j]
	})
	return glyphNames
}

// BuiltinEncoding returns the built-in encoding of the font.
func (o *Outlines) BuiltinEncoding() []string {
	return o.Encoding
}

// IsBlank returns true if the glyph with the given name does not add
// marks to the page.  Missing glyphs fall back to the ".notdef" glyph.
func (o *Outlines) IsBlank(name string) bool {
	if _, ok := o.Glyphs[name]; !ok {
		name = ".notdef"
	}
	g, err := o.Build(name)
	if err != nil {
		return true
	}
	return g.IsBlank()
}

// GlyphBBox computes the bounding box of a glyph, after the matrix M
// has been applied to the glyph outline.  If the glyph is missing or
// blank, the zero rectangle is returned.
func (o *Outlines) GlyphBBox(M matrix.Matrix, name string) rect.Rect {
	g, err := o.Build(name)
	if err != nil {
		return rect.Rect{}
	}
	return g.Path().Transform(M).BBox()
}
