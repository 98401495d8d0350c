/*
 * structure.go, part of closepack.
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
	"strings"

	"gonum.org/v1/gonum/mat"
)

//Structure is an ordered collection of sites sharing one Lattice instance,
//without symmetry operations. Site order matters: it defines the atom order
//in the exported files. The lattice is shared by identity: every site points
//at the same instance the Structure holds, so a cell edit is a single swap
//seen by all sites at once.
type Structure struct {
	sites []*Site
	latt  *Lattice
}

//NewStructure builds a Structure over sites and latt. Every site's lattice
//reference is forced to latt, overwriting whatever lattice each site carried
//before. An empty (or nil) site list is fine; a nil lattice or a nil site is
//an error.
func NewStructure(sites []*Site, latt *Lattice) (*Structure, error) {
	if latt == nil {
		return nil, CError{"nil lattice for structure", []string{"NewStructure"}}
	}
	for i, s := range sites {
		if s == nil {
			return nil, CError{fmt.Sprintf("nil site at position %d", i), []string{"NewStructure"}}
		}
		s.latt = latt
	}
	return &Structure{sites: sites, latt: latt}, nil
}

//Len returns the number of sites.
func (S *Structure) Len() int { return len(S.sites) }

//Site returns the site at position i. Panics if out of range.
func (S *Structure) Site(i int) *Site {
	if i >= S.Len() {
		panic("Structure: requested site out of bounds")
	}
	return S.sites[i]
}

//Sites returns the underlying site slice, in traversal order. Ranging over it
//is the iteration surface of the Structure; the slice can be walked to the
//end and walked again freely.
func (S *Structure) Sites() []*Site { return S.sites }

//Lattice returns the shared lattice instance.
func (S *Structure) Lattice() *Lattice { return S.latt }

//SetLattice swaps the shared lattice for latt and re-points every site to it.
//This is the only mutation path for the cell: each site keeps its fractional
//coordinates and its absolute ones follow from the new lengths. The
//re-association happens even if latt equals the current lattice by value.
func (S *Structure) SetLattice(latt *Lattice) error {
	if latt == nil {
		return CError{"nil lattice for structure", []string{"SetLattice"}}
	}
	S.latt = latt
	for _, s := range S.sites {
		s.latt = latt
	}
	return nil
}

//SetC replaces the c cell length, keeping the other five parameters. It
//builds a fresh Lattice and routes through SetLattice, so all sites observe
//the change at once.
func (S *Structure) SetC(c float64) error {
	err := S.SetLattice(S.latt.withC(c))
	if err != nil {
		return errDecorate(err, "SetC")
	}
	return nil
}

//Copy returns a fully independent Structure: an independent lattice,
//independent sites, and the copied sites re-associated to the new lattice
//instance.
func (S *Structure) Copy() *Structure {
	latt := S.latt.Copy()
	sites := make([]*Site, len(S.sites))
	for i, s := range S.sites {
		n := *s
		n.latt = latt
		sites[i] = &n
	}
	return &Structure{sites: sites, latt: latt}
}

//CoordMatrix returns the absolute coordinates of all sites as a Len x 3
//dense matrix, in traversal order.
func (S *Structure) CoordMatrix() *mat.Dense {
	data := make([]float64, 0, 3*len(S.sites))
	for _, s := range S.sites {
		data = append(data, s.X(), s.Y(), s.Z())
	}
	if len(data) == 0 {
		return &mat.Dense{}
	}
	return mat.NewDense(len(S.sites), 3, data)
}

//FracMatrix returns the fractional coordinates of all sites as a Len x 3
//dense matrix, in traversal order.
func (S *Structure) FracMatrix() *mat.Dense {
	data := make([]float64, 0, 3*len(S.sites))
	for _, s := range S.sites {
		data = append(data, s.fx, s.fy, s.fz)
	}
	if len(data) == 0 {
		return &mat.Dense{}
	}
	return mat.NewDense(len(S.sites), 3, data)
}

func (S *Structure) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Structure<\n   %v\n", S.latt)
	for _, s := range S.sites {
		fmt.Fprintf(&b, "   %v\n", s)
	}
	b.WriteString("   >")
	return b.String()
}
