/*
 * bonds.go, part of molview.
 *
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 *
 */

package chem

import "fmt"

// BondOrder is the order of a bond. It is only used for display.
type BondOrder int

const (
	Single BondOrder = iota + 1
	Double
)

func (O BondOrder) String() string {
	switch O {
	case Single:
		return "single"
	case Double:
		return "double"
	}
	return fmt.Sprintf("BondOrder(%d)", int(O))
}

// Bond joins the atoms with indexes At1 and At2 in a Structure.
// Bonds are undirected: {0,1} and {1,0} are the same bond.
type Bond struct {
	At1   int
	At2   int
	Order BondOrder
}

// Cross returns the index of the atom at the other end of the bond, starting
// from origin. Panics if origin is not part of the bond.
func (B Bond) Cross(origin int) int {
	if origin == B.At1 {
		return B.At2
	}
	if origin == B.At2 {
		return B.At1
	}
	panic(ErrNotInBond) //I think this got to be a programming error, so a panic is warranted.
}

// Joins returns true if the bond joins the atoms i and j, in any order.
func (B Bond) Joins(i, j int) bool {
	return (B.At1 == i && B.At2 == j) || (B.At1 == j && B.At2 == i)
}

// key returns the bond endpoints with the smallest index first.
func (B Bond) key() [2]int {
	if B.At1 > B.At2 {
		return [2]int{B.At2, B.At1}
	}
	return [2]int{B.At1, B.At2}
}

// checkBonds verifies that every bond references one of the natoms atoms and
// is Single or Double, that no bond joins an atom to itself and that no pair
// of atoms is bonded twice.
func checkBonds(natoms int, bonds []Bond) error {
	seen := make(map[[2]int]int, len(bonds))
	for i, b := range bonds {
		if b.At1 < 0 || b.At1 >= natoms || b.At2 < 0 || b.At2 >= natoms {
			return &CError{msg: fmt.Sprintf("Bond %d (%d-%d) references an atom out of range (%d atoms)", i, b.At1, b.At2, natoms), deco: []string{"checkBonds"}, critical: true}
		}
		if b.Order != Single && b.Order != Double {
			return &CError{msg: fmt.Sprintf("Bond %d (%d-%d) has an invalid order %d", i, b.At1, b.At2, int(b.Order)), deco: []string{"checkBonds"}, critical: true}
		}
		if b.At1 == b.At2 {
			return &CError{msg: fmt.Sprintf("Bond %d joins atom %d to itself", i, b.At1), deco: []string{"checkBonds"}, critical: true}
		}
		if prev, ok := seen[b.key()]; ok {
			return &CError{msg: fmt.Sprintf("Bonds %d and %d join the same atoms (%d-%d)", prev, i, b.At1, b.At2), deco: []string{"checkBonds"}, critical: true}
		}
		seen[b.key()] = i
	}
	return nil
}
