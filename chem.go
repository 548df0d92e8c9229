/*
 * chem.go, part of molview.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package chem

import (
	"fmt"
	"sort"
	"strings"

	v3 "github.com/rmera/molview/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

/**Note: Some funcitons here panic instead of returning errors. This is because they are "fundamental"
 * functions. I considered that if something goes wrong here, the program is way-most likely wrong and should
 * crash. Most panics are related to trying to access out-of bounds fields**/

// Atom is an atom in a Structure. The position travels with the atom,
// since a Structure has exactly one conformation.
type Atom struct {
	ID       int //The position of the atom in its Structure, starting from 0.
	Element  Element
	Position r3.Vec
}

// Symbol is a shortcut for A.Element.Symbol()
func (A Atom) Symbol() string {
	return A.Element.Symbol()
}

/*****Structure type***/

// Structure contains the atoms of a molecule and the bonds between them.
// A Structure is never modified once built: to show another molecule,
// build another Structure. The zero value is a valid, empty Structure.
type Structure struct {
	atoms []Atom
	bonds []Bond
}

// NewStructure makes a Structure from the given atoms and bonds. The atom IDs
// are reset to their positions in atoms. It returns an error if a bond
// references an atom that is not in the structure, has an order other than
// Single or Double, bonds an atom to itself, or repeats a pair of atoms
// already bonded (in any order).
// The given slices are copied.
func NewStructure(atoms []Atom, bonds []Bond) (Structure, error) {
	S := Structure{
		atoms: make([]Atom, len(atoms)),
		bonds: make([]Bond, len(bonds)),
	}
	copy(S.atoms, atoms)
	copy(S.bonds, bonds)
	for i := range S.atoms {
		S.atoms[i].ID = i
	}
	if err := checkBonds(len(S.atoms), S.bonds); err != nil {
		return Structure{}, errDecorate(err, "NewStructure")
	}
	return S, nil
}

// Len returns the number of atoms in the Structure.
func (S Structure) Len() int {
	return len(S.atoms)
}

// NBonds returns the number of bonds in the Structure.
func (S Structure) NBonds() int {
	return len(S.bonds)
}

// Empty returns true if the structure has no atoms.
func (S Structure) Empty() bool {
	return len(S.atoms) == 0
}

// Atom returns the Atom corresponding to the index i. Panics if
// out of range.
func (S Structure) Atom(i int) Atom {
	if i < 0 || i >= len(S.atoms) {
		panic(ErrAtomOutOfRange)
	}
	return S.atoms[i]
}

// Bond returns the ith Bond. Panics if out of range.
func (S Structure) Bond(i int) Bond {
	if i < 0 || i >= len(S.bonds) {
		panic(ErrBondOutOfRange)
	}
	return S.bonds[i]
}

// Atoms returns a copy of the atoms of the structure.
func (S Structure) Atoms() []Atom {
	ret := make([]Atom, len(S.atoms))
	copy(ret, S.atoms)
	return ret
}

// Bonds returns a copy of the bonds of the structure.
func (S Structure) Bonds() []Bond {
	ret := make([]Bond, len(S.bonds))
	copy(ret, S.bonds)
	return ret
}

// Primary returns the first atom of the structure, which, for structures
// built from a Recipe, is the central atom. ok is false for an empty structure.
func (S Structure) Primary() (at Atom, ok bool) {
	if S.Empty() {
		return Atom{}, false
	}
	return S.atoms[0], true
}

// Points returns the positions of all atoms, in order.
func (S Structure) Points() []r3.Vec {
	ret := make([]r3.Vec, len(S.atoms))
	for i, at := range S.atoms {
		ret[i] = at.Position
	}
	return ret
}

// Coords returns a new coordinate matrix, with one vector per atom.
func (S Structure) Coords() *v3.Matrix {
	return v3.FromVecs(S.Points())
}

// BondsOf returns the bonds where the atom with index i takes part.
func (S Structure) BondsOf(i int) []Bond {
	if i < 0 || i >= len(S.atoms) {
		panic(ErrAtomOutOfRange)
	}
	var ret []Bond
	for _, b := range S.bonds {
		if b.At1 == i || b.At2 == i {
			ret = append(ret, b)
		}
	}
	return ret
}

// Formula returns the molecular formula of the structure in Hill order:
// carbon first, then hydrogen, then everything else alphabetically. If
// there is no carbon, all symbols go in alphabetical order.
func (S Structure) Formula() string {
	count := make(map[string]int)
	for _, at := range S.atoms {
		count[at.Symbol()]++
	}
	symbols := make([]string, 0, len(count))
	for k := range count {
		symbols = append(symbols, k)
	}
	_, hasC := count["C"]
	sort.Slice(symbols, func(i, j int) bool {
		if hasC {
			ri, rj := hillRank(symbols[i]), hillRank(symbols[j])
			if ri != rj {
				return ri < rj
			}
		}
		return symbols[i] < symbols[j]
	})
	var b strings.Builder
	for _, s := range symbols {
		b.WriteString(s)
		if n := count[s]; n > 1 {
			fmt.Fprintf(&b, "%d", n)
		}
	}
	return b.String()
}

func hillRank(symbol string) int {
	switch symbol {
	case "C":
		return 0
	case "H":
		return 1
	}
	return 2
}

// String returns a short description of the structure.
func (S Structure) String() string {
	if S.Empty() {
		return "empty structure"
	}
	return fmt.Sprintf("%s: %d atoms, %d bonds", S.Formula(), S.Len(), S.NBonds())
}
