/*
 * site.go, part of closepack.
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

import "fmt"

//Site is one atomic position referred to a Lattice. The fractional
//coordinates are the stored representation; the absolute ones are derived
//from the associated lattice lengths on every read, so the invariant
//x = fx*a, y = fy*b, z = fz*c holds at all times by construction. Writing an
//absolute coordinate stores the fractional value implied by the current
//lattice.
//
//Occupancy and coordinates are not range-checked: during stack assembly,
//fractional coordinates routinely leave [0,1) and are only wrapped in the
//final pass of Build.
type Site struct {
	Name    string //display label, overwritten by UniqueLabels
	Species string //element symbol
	Occ     float64
	Biso    float64
	fx, fy, fz float64
	latt       *Lattice
}

//NewSite builds a Site for the given species at the fractional coordinates
//fx, fy, fz of latt, with occupancy occ and isotropic thermal parameter biso.
//The display name starts out as the species symbol. A nil lattice is an
//error: every coordinate read needs the cell lengths.
func NewSite(species string, occ, fx, fy, fz, biso float64, latt *Lattice) (*Site, error) {
	if latt == nil {
		return nil, CError{"nil lattice for site " + species, []string{"NewSite"}}
	}
	return &Site{Name: species, Species: species, Occ: occ, Biso: biso, fx: fx, fy: fy, fz: fz, latt: latt}, nil
}

//Lattice returns the lattice the site is referred to.
func (S *Site) Lattice() *Lattice { return S.latt }

//SetLattice re-associates the site to latt. The fractional coordinates are
//preserved; the absolute ones follow from the new cell lengths. Callers that
//want to keep absolute positions instead must capture them before the swap
//and write them back after.
func (S *Site) SetLattice(latt *Lattice) error {
	if latt == nil {
		return CError{"nil lattice for site " + S.Species, []string{"SetLattice"}}
	}
	S.latt = latt
	return nil
}

//Fx returns the fractional x coordinate.
func (S *Site) Fx() float64 { return S.fx }

//Fy returns the fractional y coordinate.
func (S *Site) Fy() float64 { return S.fy }

//Fz returns the fractional z coordinate.
func (S *Site) Fz() float64 { return S.fz }

//SetFx sets the fractional x coordinate.
func (S *Site) SetFx(v float64) { S.fx = v }

//SetFy sets the fractional y coordinate.
func (S *Site) SetFy(v float64) { S.fy = v }

//SetFz sets the fractional z coordinate.
func (S *Site) SetFz(v float64) { S.fz = v }

//X returns the absolute x coordinate, fx*a.
func (S *Site) X() float64 { return S.fx * S.latt.a }

//Y returns the absolute y coordinate, fy*b.
func (S *Site) Y() float64 { return S.fy * S.latt.b }

//Z returns the absolute z coordinate, fz*c.
func (S *Site) Z() float64 { return S.fz * S.latt.c }

//SetX sets the absolute x coordinate, storing v/a as the fractional value.
func (S *Site) SetX(v float64) { S.fx = v / S.latt.a }

//SetY sets the absolute y coordinate, storing v/b as the fractional value.
func (S *Site) SetY(v float64) { S.fy = v / S.latt.b }

//SetZ sets the absolute z coordinate, storing v/c as the fractional value.
func (S *Site) SetZ(v float64) { S.fz = v / S.latt.c }

//Fxyz returns the three fractional coordinates.
func (S *Site) Fxyz() [3]float64 { return [3]float64{S.fx, S.fy, S.fz} }

//Xyz returns the three absolute coordinates.
func (S *Site) Xyz() [3]float64 { return [3]float64{S.X(), S.Y(), S.Z()} }

//Copy returns a fully independent Site, including an independent copy of the
//referenced lattice. A caller that needs the copy on a shared lattice
//re-associates it with SetLattice afterwards (NewStructure does this for
//every site it takes).
func (S *Site) Copy() *Site {
	n := *S
	n.latt = S.latt.Copy()
	return &n
}

func (S *Site) String() string {
	return fmt.Sprintf("Site<%s occ=%g fx=%g, fy=%g, fz=%g>", S.Name, S.Occ, S.fx, S.fy, S.fz)
}
