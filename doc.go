/*
 * doc.go, part of closepack.
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

/*
Package closepack generates close-packed layer stacking polytypes, primarily
for birnessite-like minerals, as plain P1 structures ready for export to CIF
or TOPAS str files.

The model is deliberately small: a Lattice is six scalar cell parameters, a
Site is one atom holding fractional coordinates against a shared Lattice, and
a Structure is an ordered list of Sites on a single Lattice instance. Build
assembles a supercell from a cyclic sequence of (layer, column shift) steps,
injecting an interlayer spacing vector after every block of sheets and
deriving the supercell c from the accumulated stack height.

The polytype table of Drits, Lanson & Gaillot (2007) for pristine birnessite
layers is bundled (see Polytypes and PolytypeSequence), so the classic 1H,
2H1, 2H2, 3R1, 3R2, 3H1 and 3H2 cells can be produced without writing the
stacking sequences by hand.

There is no symmetry support and no general triclinic handling: the stacking
arithmetic is scalar, so gamma != 90 combined with lateral offsets is
rejected rather than approximated. The cif and topas subpackages consume a
finished Structure; stackplot draws one.
*/
package closepack
