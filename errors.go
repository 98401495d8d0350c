/*
 * errors.go, part of closepack.
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

//Error is the interface for errors that the packages in this library implement.
//The Decorate method allows to add and retrieve info from the error as it is
//passed up, without changing its type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string
}

//CError is the concrete Error for malformed input: nil lattices, empty
//sequences and the like. These are caught eagerly, at construction or at the
//Build boundary, instead of letting bad values propagate through the
//coordinate arithmetic.
type CError struct {
	message string
	deco    []string
}

func (err CError) Error() string { return err.message }

//Decorate adds dec to the decoration slice of the error and returns the
//resulting slice. An empty string only retrieves the current value.
//Even though the receiver is a value, appending works as deco is
//itself a pointer.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//GeometryError signals a cell geometry the scalar stacking model cannot
//represent, i.e. gamma != 90 combined with lateral (x,y) offsets. The stacking
//arithmetic combines a and b contributions as plain scalars and applies no
//in-plane rotation, so such a build would silently produce wrong coordinates.
type GeometryError struct {
	message string
	deco    []string
}

func (err GeometryError) Error() string { return err.message }

//Decorate adds dec to the decoration slice of the error and returns the
//resulting slice. An empty string only retrieves the current value.
func (err GeometryError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//errDecorate asserts that err implements Error and decorates it with the
//caller's name before returning it. Using it on any other error will panic.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}
