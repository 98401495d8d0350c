/*
 * cycle.go, part of closepack.
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

//Cycle is an infinite, restartable cursor over a finite slice. After the last
//element it restarts at index 0, so Next never exhausts; the internal index
//stays in [0, Len-1]. Build relies on this for both the layer sequence and
//the interlayer vectors.
type Cycle[T any] struct {
	items   []T
	current int
}

//NewCycle wraps items in a Cycle. An empty slice is an error: there is
//nothing to produce.
func NewCycle[T any](items []T) (*Cycle[T], error) {
	if len(items) == 0 {
		return nil, CError{"empty slice given to cycle over", []string{"NewCycle"}}
	}
	return &Cycle[T]{items: items}, nil
}

//Next returns the current element and advances the cursor, wrapping around
//at the end.
func (C *Cycle[T]) Next() T {
	v := C.items[C.current]
	C.current = (C.current + 1) % len(C.items)
	return v
}

//Reset moves the cursor back to the first element.
func (C *Cycle[T]) Reset() { C.current = 0 }

//Len returns the length of the wrapped slice, i.e. the period of the cycle.
func (C *Cycle[T]) Len() int { return len(C.items) }
