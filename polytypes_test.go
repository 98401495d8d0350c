/*
 * polytypes_test.go, part of closepack.
 *
 * Copyright 2019 The closepack authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package closepack

import (
	"math"
	"testing"
)

func TestPolytypes(Te *testing.T) {
	names := Polytypes()
	want := []string{"1H", "2H1", "2H2", "3H1", "3H2", "3R1", "3R2"}
	if len(names) != len(want) {
		Te.Fatalf("polytype count: got %d, want %d", len(names), len(want))
	}
	for i, n := range names {
		if n != want[i] {
			Te.Errorf("polytype %d: got %q, want %q", i, n, want[i])
		}
	}
}

func TestPolytypeSequence(Te *testing.T) {
	o, mn := unitLayers(Te)
	seq, err := PolytypeSequence("3R1", o, mn)
	if err != nil {
		Te.Fatal(err)
	}
	if len(seq) != 9 {
		Te.Fatalf("3R1 sequence length: got %d, want 9", len(seq))
	}
	//AbC = CaB = BcA: anion sheets on steps 0,2,3,5,6,8, cation on 1,4,7
	for i, st := range seq {
		wantLayer := o
		if i%3 == 1 {
			wantLayer = mn
		}
		if st.Layer != wantLayer {
			Te.Errorf("step %d layer: got %v, want the %s sheet", i, st.Layer.Site(0).Species, wantLayer.Site(0).Species)
		}
	}
	//second triple is CaB
	wantShifts := []Vec3{ColumnC, ColumnA, ColumnB}
	for i, w := range wantShifts {
		if seq[3+i].Shift != w {
			Te.Errorf("3R1 triple 2 step %d shift: got %v, want %v", i, seq[3+i].Shift, w)
		}
	}
}

func TestPolytypeSequenceUnknown(Te *testing.T) {
	o, mn := unitLayers(Te)
	if _, err := PolytypeSequence("4H9", o, mn); err == nil {
		Te.Error("unknown polytype must be rejected")
	}
	if _, err := PolytypeSequence("1H", nil, mn); err == nil {
		Te.Error("nil anion sheet must be rejected")
	}
	if _, err := PolytypeBlocks("4H9"); err == nil {
		Te.Error("unknown polytype must be rejected")
	}
}

func TestHexLayer(Te *testing.T) {
	latt, err := NewLattice(math.Sqrt(3)*2.85, 2.85, 1, 90, 90, 90)
	if err != nil {
		Te.Fatal(err)
	}
	sheet, err := HexLayer("O", 0.25, 1, latt)
	if err != nil {
		Te.Fatal(err)
	}
	if sheet.Len() != 2 {
		Te.Fatalf("sheet has %d sites, want 2", sheet.Len())
	}
	if sheet.Site(0).Lattice() != sheet.Lattice() || sheet.Site(1).Lattice() != sheet.Lattice() {
		Te.Error("sheet sites must share the sheet lattice instance")
	}
	if sheet.Site(1).Fx() != 0.5 || sheet.Site(1).Fy() != 0.5 {
		Te.Errorf("centering site: got %v", sheet.Site(1).Fxyz())
	}
	if sheet.Site(0).Occ != 0.25 {
		Te.Errorf("occupancy: got %v, want 0.25", sheet.Site(0).Occ)
	}
}

func TestBirnessiteInterlayer(Te *testing.T) {
	v := BirnessiteInterlayer(7.1, 1)
	if v[0] != 0 || v[1] != 0 {
		Te.Errorf("interlayer spacing must be axial: %v", v)
	}
	if math.Abs(v[2]-4.1) > tol {
		Te.Errorf("spacing: got %v, want 4.1", v[2])
	}
}
