/*
 * labels.go, part of closepack.
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

import "strconv"

//UniqueLabels renames every site to species plus a per-species counter
//(Mn1, Mn2, O1, ...), numbering occurrences in traversal order. TOPAS
//requires unique site labels; CIF readers appreciate them too. Species,
//occupancies and coordinates are untouched.
func UniqueLabels(S *Structure) {
	counts := make(map[string]int)
	for _, s := range S.Sites() {
		counts[s.Species]++
		s.Name = s.Species + strconv.Itoa(counts[s.Species])
	}
}
