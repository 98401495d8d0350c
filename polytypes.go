/*
 * polytypes.go, part of closepack.
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
	"fmt"
	"sort"
)

//Close-packing columns referred to a C-centered monoclinic cell with
//a = sqrt(3)*b, after Drits, Lanson & Gaillot (2007), Table 2
//(DOI: 10.2138/am.2007.2207). The z component is the layer-count
//contribution of one sheet to the stack height.
var (
	ColumnA = Vec3{0, 0, 1}
	ColumnB = Vec3{-1.0 / 3, 0, 1}
	ColumnC = Vec3{-2.0 / 3, 0, 1}
)

//One anion-cation-anion sheet triple, each member in its column.
type triplet [3]Vec3

//Periodic stacking modes for pristine birnessite layers, Drits et al. (2007)
//Table 1. Names follow their NS_m convention: N layers per cell, H/R for the
//layer symmetry, m the polytype index. The columns are stored pre-resolved,
//upper case rows are anion sheets and the middle one the cation sheet.
var stackings = map[string][]triplet{
	"1H":  {{ColumnA, ColumnB, ColumnC}},                                                     //AbC - AbC ...
	"2H1": {{ColumnA, ColumnB, ColumnC}, {ColumnC, ColumnB, ColumnA}},                        //AbC = CbA ...
	"2H2": {{ColumnA, ColumnB, ColumnC}, {ColumnA, ColumnC, ColumnB}},                        //AbC - AcB ...
	"3R1": {{ColumnA, ColumnB, ColumnC}, {ColumnC, ColumnA, ColumnB}, {ColumnB, ColumnC, ColumnA}}, //AbC = CaB = BcA ...
	"3R2": {{ColumnA, ColumnB, ColumnC}, {ColumnB, ColumnC, ColumnA}, {ColumnC, ColumnA, ColumnB}}, //AbC - BcA - CaB ...
	"3H1": {{ColumnA, ColumnB, ColumnC}, {ColumnA, ColumnC, ColumnB}, {ColumnA, ColumnC, ColumnB}}, //AbC - AcB - AcB ...
	"3H2": {{ColumnA, ColumnB, ColumnC}, {ColumnA, ColumnC, ColumnB}, {ColumnC, ColumnA, ColumnB}}, //AbC - AcB - CaB ...
}

//Polytypes returns the names of the tabulated stacking modes, sorted.
func Polytypes() []string {
	names := make([]string, 0, len(stackings))
	for k := range stackings {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

//PolytypeBlocks returns how many sheet triples (blocks) the named polytype
//spans per cell, i.e. the nBlocks that yields exactly one period.
func PolytypeBlocks(name string) (int, error) {
	tr, ok := stackings[name]
	if !ok {
		return 0, CError{fmt.Sprintf("unknown polytype %q (have %v)", name, Polytypes()), []string{"PolytypeBlocks"}}
	}
	return len(tr), nil
}

//PolytypeSequence expands the named stacking mode into a Build sequence over
//the given anion and cation sheets. Each table triple becomes three steps:
//anion, cation, anion, at their respective columns. The usual call is then
//Build(seq, interlayer, 3, PolytypeBlocks(name)).
func PolytypeSequence(name string, anion, cation *Structure) ([]Step, error) {
	tr, ok := stackings[name]
	if !ok {
		return nil, CError{fmt.Sprintf("unknown polytype %q (have %v)", name, Polytypes()), []string{"PolytypeSequence"}}
	}
	if anion == nil || cation == nil {
		return nil, CError{"nil layer structure for polytype " + name, []string{"PolytypeSequence"}}
	}
	seq := make([]Step, 0, 3*len(tr))
	for _, t := range tr {
		seq = append(seq, Step{anion, t[0]}, Step{cation, t[1]}, Step{anion, t[2]})
	}
	return seq, nil
}

//SheetPeriod is the number of close-packed sheets in one anion-cation-anion
//block, the blockPeriod for every tabulated polytype.
const SheetPeriod = 3

//HexLayer builds the standard two-site close-packed sheet for the given
//species: one site at the cell origin and one at (1/2, 1/2, 0), the
//C-centering translation.
func HexLayer(species string, occ, biso float64, latt *Lattice) (*Structure, error) {
	s1, err := NewSite(species, occ, 0, 0, 0, biso, latt)
	if err != nil {
		return nil, errDecorate(err, "HexLayer")
	}
	s2, err := NewSite(species, occ, 0.5, 0.5, 0, biso, latt)
	if err != nil {
		return nil, errDecorate(err, "HexLayer")
	}
	st, err := NewStructure([]*Site{s1, s2}, latt)
	if err != nil {
		return nil, errDecorate(err, "HexLayer")
	}
	return st, nil
}

//BirnessiteInterlayer returns the axial spacing vector (absolute units) that
//pads a SheetPeriod-sheet block of height layerC each up to the observed
//basal spacing d001, e.g. 7.1 Angstrom for hydrated birnessite.
func BirnessiteInterlayer(d001, layerC float64) Vec3 {
	return Vec3{0, 0, d001 - SheetPeriod*layerC}
}
