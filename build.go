/*
 * build.go, part of closepack.
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

//Vec3 is a plain 3-vector. Which units its components are in depends on
//where it is used: Step shifts are fractional in x,y with a layer-count z,
//interlayer vectors are absolute.
type Vec3 [3]float64

//Step pairs one layer with the column shift it occupies in the stack.
//Shift x and y are fractional in-plane offsets (multiplied by the layer's a
//and b); Shift z is a layer-count multiplier, applied to the layer's c to
//advance the running stack height. It is not a fractional coordinate.
type Step struct {
	Layer *Structure
	Shift Vec3
}

//Layers with in-plane lengths differing by more than this cannot be stacked
//together: the assembled cell has a single a and b, and the wrapped
//fractional coordinates are only meaningful when every layer agrees on them.
const abTol = 1e-9

//Build assembles a supercell Structure from a cyclic sequence of (layer,
//shift) steps. The sequence is drawn blockPeriod*nBlocks times, wrapping
//around as needed; after every completed block of blockPeriod steps the next
//interlayer vector (absolute units) is added into the running origin, where
//it stays for all subsequent layers. Each step contributes Shift[2]*layer.c
//to the stack height. The resulting lattice copies a, b and the angles from
//the last visited layer and sets c to the total accumulated height.
//
//A nil or empty interlayer slice means no extra spacing (a single zero
//vector). The input layers are never mutated: only deep copies of their
//sites end up in the output, with fractional x,y wrapped into [0,1) and
//fractional z literal against the supercell c.
//
//blockPeriod and nBlocks must be non-negative; zero steps yield an empty
//Structure whose lattice takes a, b and angles from the first layer of the
//sequence with a degenerate c = 0. Whether blockPeriod matches the intended
//periodicity of the sequence is the caller's responsibility: a mismatch is
//not detectable here and simply places the interlayer spacings at the
//boundaries the caller asked for.
func Build(sequence []Step, interlayer []Vec3, blockPeriod, nBlocks int) (*Structure, error) {
	if len(sequence) == 0 {
		return nil, CError{"sequence: no (layer, shift) steps given", []string{"Build"}}
	}
	if blockPeriod < 0 || nBlocks < 0 {
		return nil, CError{fmt.Sprintf("blockPeriod (%d) and nBlocks (%d) must be non-negative", blockPeriod, nBlocks), []string{"Build"}}
	}
	lateral := false
	for _, v := range interlayer {
		if v[0] != 0 || v[1] != 0 {
			lateral = true
			break
		}
	}
	if sequence[0].Layer == nil {
		return nil, CError{"sequence: step 0 has a nil layer", []string{"Build"}}
	}
	ref := sequence[0].Layer.Lattice()
	for i, st := range sequence {
		if st.Layer == nil {
			return nil, CError{fmt.Sprintf("sequence: step %d has a nil layer", i), []string{"Build"}}
		}
		l := st.Layer.Lattice()
		if math.Abs(l.a-ref.a) > abTol || math.Abs(l.b-ref.b) > abTol {
			return nil, CError{fmt.Sprintf("sequence: step %d layer has in-plane lengths (%g, %g), want (%g, %g): all stacked layers must share a and b", i, l.a, l.b, ref.a, ref.b), []string{"Build"}}
		}
		if l.ga != 90 && (st.Shift[0] != 0 || st.Shift[1] != 0 || lateral) {
			return nil, GeometryError{fmt.Sprintf("sequence: step %d layer has gamma=%g: lateral offsets are only defined for gamma=90", i, l.ga), []string{"Build"}}
		}
	}
	if len(interlayer) == 0 {
		interlayer = []Vec3{{}}
	}
	ss, err := NewCycle(sequence)
	if err != nil {
		return nil, errDecorate(err, "Build")
	}
	iv, err := NewCycle(interlayer)
	if err != nil {
		return nil, errDecorate(err, "Build")
	}

	var origin Vec3 //absolute units, grows with the stack
	steps := blockPeriod * nBlocks
	sites := make([]*Site, 0, steps*sequence[0].Layer.Len())
	last := sequence[0].Layer
	for idx := 0; idx < steps; idx++ {
		step := ss.Next()
		layer := step.Layer
		last = layer
		la := layer.Lattice()
		for _, s := range layer.Sites() {
			rv := s.Copy()
			rv.SetX(rv.X() + step.Shift[0]*la.a + origin[0])
			rv.SetY(rv.Y() + step.Shift[1]*la.b + origin[1])
			//z is replaced, not shifted: the layer's atoms sit at the
			//current stack height regardless of their fz in the layer cell.
			rv.SetZ(origin[2])
			sites = append(sites, rv)
		}
		//after a completed block, inject the next interlayer vector. The
		//offset is cumulative: it moves the origin for everything above it.
		if idx != 0 && (idx+1)%blockPeriod == 0 {
			v := iv.Next()
			origin[0] += v[0]
			origin[1] += v[1]
			origin[2] += v[2]
		}
		origin[2] += step.Shift[2] * la.c
	}

	//the supercell keeps the in-plane cell of the last visited layer and
	//takes the accumulated height as c.
	tl := last.Lattice()
	slatt := &Lattice{tl.a, tl.b, origin[2], tl.al, tl.be, tl.ga}

	for _, s := range sites {
		zabs := s.Z()
		if slatt.c != 0 {
			s.fz = zabs / slatt.c
		} else {
			s.fz = 0
		}
		s.fx = wrap01(s.fx)
		s.fy = wrap01(s.fy)
	}

	sup, err := NewStructure(sites, slatt)
	if err != nil {
		return nil, errDecorate(err, "Build")
	}
	return sup, nil
}

//wrap01 maps v into [0,1) by modulo, keeping negative values positive.
func wrap01(v float64) float64 {
	v = math.Mod(v, 1)
	if v < 0 {
		v++
	}
	return v
}
