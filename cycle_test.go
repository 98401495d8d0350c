/*
 * cycle_test.go, part of closepack.
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

import "testing"

//TestCycleRestart: after N draws the cycle is back at the start, and the
//element at draw N+k equals the element at draw k, for any k. It never
//exhausts.
func TestCycleRestart(Te *testing.T) {
	items := []string{"A", "B", "C"}
	c, err := NewCycle(items)
	if err != nil {
		Te.Fatal(err)
	}
	const draws = 20
	got := make([]string, draws)
	for i := range got {
		got[i] = c.Next()
	}
	for k, v := range got {
		if v != items[k%len(items)] {
			Te.Errorf("draw %d: got %q, want %q", k, v, items[k%len(items)])
		}
	}
}

func TestCycleReset(Te *testing.T) {
	c, err := NewCycle([]int{1, 2, 3})
	if err != nil {
		Te.Fatal(err)
	}
	c.Next()
	c.Next()
	c.Reset()
	if v := c.Next(); v != 1 {
		Te.Errorf("after Reset: got %d, want 1", v)
	}
	if c.Len() != 3 {
		Te.Errorf("Len: got %d, want 3", c.Len())
	}
}

func TestCycleEmpty(Te *testing.T) {
	if _, err := NewCycle([]int{}); err == nil {
		Te.Error("empty slice must be rejected")
	}
}

func TestCycleSingle(Te *testing.T) {
	c, err := NewCycle([]float64{7.5})
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		if v := c.Next(); v != 7.5 {
			Te.Errorf("draw %d: got %v", i, v)
		}
	}
}
