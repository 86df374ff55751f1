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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/charstring"
	"seehuhn.de/go/charstring/funit"
)

func segmentsOf(g *Glyph) []pathSegment {
	var segments []pathSegment
	for cmd, points := range g.Path() {
		segments = append(segments, pathSegment{
			cmd:    cmd,
			points: append([]vec.Vec2(nil), points...),
		})
	}
	return segments
}

// TestEncodeRoundTrip encodes glyphs as Type 1 charstrings and runs
// them through the interpreter again; this must reproduce the original
// outlines and metrics.  All test outlines are closed, since endchar
// closes an open sub-path.
func TestEncodeRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Glyph)
	}{
		{
			name:  "blank",
			setup: func(g *Glyph) {},
		},
		{
			name: "triangle",
			setup: func(g *Glyph) {
				g.MoveTo(50, 0)
				g.LineTo(250, 0)
				g.LineTo(250, 400)
				g.ClosePath()
			},
		},
		{
			name: "curves",
			setup: func(g *Glyph) {
				g.MoveTo(50, 0)
				g.CurveTo(60, 5, 70, 15, 80, 10)
				g.CurveTo(90, 5, 100, 0, 110, 10)
				g.ClosePath()
			},
		},
		{
			name: "fractional coordinates",
			setup: func(g *Glyph) {
				g.MoveTo(50, 0)
				g.LineTo(60.5, 0)
				g.LineTo(60.5, 10.25)
				g.ClosePath()
			},
		},
		{
			name: "two subpaths",
			setup: func(g *Glyph) {
				g.MoveTo(50, 0)
				g.LineTo(100, 100)
				g.ClosePath()
				g.MoveTo(200, 200)
				g.LineTo(300, 210)
				g.ClosePath()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &Glyph{
				WidthX: 600,
				LSBX:   50,
				HStem:  []funit.Int16{0, 10, 400, 410},
				VStem:  []funit.Int16{60, 70},
			}
			tt.setup(g)

			o := &Outlines{
				Glyphs: map[string]charstring.Charstring{
					"test": g.Encode(),
				},
			}
			g2, err := o.Build("test")
			if err != nil {
				t.Fatal(err)
			}

			if d := cmp.Diff(segmentsOf(g), segmentsOf(g2),
				cmp.AllowUnexported(pathSegment{})); d != "" {
				t.Errorf("outline mismatch (-want +got):\n%s", d)
			}
			if g2.WidthX != g.WidthX || g2.WidthY != g.WidthY {
				t.Errorf("width = (%g,%g), want (%g,%g)",
					g2.WidthX, g2.WidthY, g.WidthX, g.WidthY)
			}
			if g2.LSBX != g.LSBX {
				t.Errorf("LSBX = %g, want %g", g2.LSBX, g.LSBX)
			}
			if d := cmp.Diff(g.HStem, g2.HStem); d != "" {
				t.Errorf("HStem mismatch (-want +got):\n%s", d)
			}
			if d := cmp.Diff(g.VStem, g2.VStem); d != "" {
				t.Errorf("VStem mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestBuildType2(t *testing.T) {
	// 100 0 rmoveto  30 40 rlineto  endchar
	body := []byte{239, 139, 21, 169, 179, 5, 14}

	o := &Outlines{
		Glyphs: map[string]charstring.Charstring{
			"a": charstring.Type2Charstring(body),
			// the same glyph with an explicit width of 600+250
			"b": charstring.Type2Charstring(append([]byte{247, 142}, body...)),
		},
		DefaultWidthX: 500,
		NominalWidthX: 600,
		HasWidths:     true,
	}

	a, err := o.Build("a")
	if err != nil {
		t.Fatal(err)
	}
	if a.WidthX != 500 {
		t.Errorf("WidthX = %g, want 500", a.WidthX)
	}

	b, err := o.Build("b")
	if err != nil {
		t.Fatal(err)
	}
	if b.WidthX != 850 {
		t.Errorf("WidthX = %g, want 850", b.WidthX)
	}

	if d := cmp.Diff(segmentsOf(a), segmentsOf(b),
		cmp.AllowUnexported(pathSegment{})); d != "" {
		t.Errorf("outlines differ (-a +b):\n%s", d)
	}
}

func TestBuildMissing(t *testing.T) {
	o := &Outlines{}
	_, err := o.Build("nonexistent")
	var fontErr *InvalidFontError
	if !errors.As(err, &fontErr) {
		t.Fatalf("expected *InvalidFontError, got %v", err)
	}
}

func TestGlyphList(t *testing.T) {
	o := &Outlines{
		Glyphs: map[string]charstring.Charstring{
			"alpha": nil,
			"beta":  nil,
			"gamma": nil,
		},
		Encoding: []string{"gamma", "beta"},
	}

	want := []string{".notdef", "gamma", "beta", "alpha"}
	if d := cmp.Diff(want, o.GlyphList()); d != "" {
		t.Errorf("glyph list mismatch (-want +got):\n%s", d)
	}

	if o.NumGlyphs() != 4 {
		t.Errorf("NumGlyphs = %d, want 4", o.NumGlyphs())
	}
}

func TestIsBlank(t *testing.T) {
	o := &Outlines{
		Glyphs: map[string]charstring.Charstring{
			// 0 500 hsbw  endchar
			".notdef": charstring.Type1Charstring{139, 248, 136, 13, 14},
			"a": charstring.Type1Charstring{
				139, 248, 136, 13, // 0 500 hsbw
				139, 139, 21, // 0 0 rmoveto
				239, 189, 5, // 100 50 rlineto
				14, // endchar
			},
		},
	}

	if !o.IsBlank(".notdef") {
		t.Error("empty glyph reported as marked")
	}
	if o.IsBlank("a") {
		t.Error("marked glyph reported as blank")
	}
	if !o.IsBlank("unknown") {
		t.Error("missing glyph should fall back to .notdef")
	}
}
