/*
 * lattice.go, part of closepack.
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
	"math"
)

//Lattice is a scalar parameterization of a unit cell: the lengths a, b, c
//(Angstrom) and the angles alpha, beta, gamma (degrees). A Lattice is
//immutable once built. Sites never edit a cell parameter in place; the only
//way to change the cell seen by a set of sites is Structure.SetLattice, which
//swaps the whole reference. The struct is comparable, so Lattice values can
//key maps directly (equality is by the six values, nothing else).
type Lattice struct {
	a, b, c    float64
	al, be, ga float64
}

var latticeParamNames = [6]string{"a", "b", "c", "alpha", "beta", "gamma"}

//NewLattice builds a Lattice from the six cell parameters. It returns an
//error for non-finite values and for negative lengths.
func NewLattice(a, b, c, al, be, ga float64) (*Lattice, error) {
	for i, v := range [6]float64{a, b, c, al, be, ga} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, CError{fmt.Sprintf("lattice parameter %s is not finite: %v", latticeParamNames[i], v), []string{"NewLattice"}}
		}
	}
	if a < 0 || b < 0 || c < 0 {
		return nil, CError{fmt.Sprintf("negative cell length in (%v, %v, %v)", a, b, c), []string{"NewLattice"}}
	}
	return &Lattice{a, b, c, al, be, ga}, nil
}

//A returns the a cell length.
func (L *Lattice) A() float64 { return L.a }

//B returns the b cell length.
func (L *Lattice) B() float64 { return L.b }

//C returns the c cell length.
func (L *Lattice) C() float64 { return L.c }

//Alpha returns the alpha cell angle, in degrees.
func (L *Lattice) Alpha() float64 { return L.al }

//Beta returns the beta cell angle, in degrees.
func (L *Lattice) Beta() float64 { return L.be }

//Gamma returns the gamma cell angle, in degrees.
func (L *Lattice) Gamma() float64 { return L.ga }

//ABC returns the three cell lengths.
func (L *Lattice) ABC() [3]float64 { return [3]float64{L.a, L.b, L.c} }

//Angles returns the three cell angles, in degrees.
func (L *Lattice) Angles() [3]float64 { return [3]float64{L.al, L.be, L.ga} }

//List returns all six cell parameters in a, b, c, alpha, beta, gamma order.
func (L *Lattice) List() [6]float64 {
	return [6]float64{L.a, L.b, L.c, L.al, L.be, L.ga}
}

//Copy returns an independent Lattice with the same parameters.
func (L *Lattice) Copy() *Lattice {
	v := *L
	return &v
}

//withC returns an independent Lattice with the c length replaced.
func (L *Lattice) withC(c float64) *Lattice {
	v := *L
	v.c = c
	return &v
}

//Equal reports whether L and o hold exactly the same six parameters.
//Two distinct instances compare equal when their values match.
func (L *Lattice) Equal(o *Lattice) bool {
	if L == nil || o == nil {
		return L == o
	}
	return *L == *o
}

func (L *Lattice) String() string {
	return fmt.Sprintf("Lattice<a=%g, b=%g, c=%g, alpha=%g, beta=%g, gamma=%g>", L.a, L.b, L.c, L.al, L.be, L.ga)
}
