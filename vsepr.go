/*
 * vsepr.go, part of molview
 *
 * Copyright 2024 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

package chem

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Geometry is the idealized (VSEPR-like) shape used to place the terminal
// atoms of a molecule around its central atom.
type Geometry int

const (
	Linear Geometry = iota
	Bent
	Tetrahedral
)

// TetrahedralAngle is the angle, in degrees, between any two bonds of a
// regular tetrahedron, acos(-1/3).
var TetrahedralAngle = math.Acos(-1.0/3.0) * Rad2Deg

func (G Geometry) String() string {
	switch G {
	case Linear:
		return "linear"
	case Bent:
		return "bent"
	case Tetrahedral:
		return "tetrahedral"
	}
	return fmt.Sprintf("Geometry(%d)", int(G))
}

// Terminals returns the number of terminal atoms for the geometry.
func (G Geometry) Terminals() int {
	switch G {
	case Linear, Bent:
		return 2
	case Tetrahedral:
		return 4
	}
	return 0
}

// Recipe contains what is needed to place the atoms of a molecule with
// one central atom and identical terminal atoms.
type Recipe struct {
	Name       string //Display name, i.e. "Water (H₂O)"
	Geometry   Geometry
	BondLength float64 //In the same units the positions will be.
	BondAngle  float64 //Terminal-center-terminal angle, in degrees. Ignored for Linear.
	Center     Element
	Terminal   Element
	Order      BondOrder //The zero value means Single.
}

// Build places the atoms for the recipe and bonds the central atom to each
// terminal one. The central atom is at the origin and is always the first atom.
func (R Recipe) Build() Structure {
	d := R.BondLength
	var terminals []r3.Vec
	switch R.Geometry {
	case Linear:
		terminals = []r3.Vec{{X: d}, {X: -d}}
	case Bent:
		half := R.BondAngle * Deg2Rad / 2
		x := d * math.Sin(half)
		y := d * math.Cos(half)
		terminals = []r3.Vec{{X: x, Y: y}, {X: -x, Y: y}}
	case Tetrahedral:
		theta := R.BondAngle * Deg2Rad
		terminals = make([]r3.Vec, 0, 4)
		terminals = append(terminals, r3.Vec{Y: d})
		for k := 0; k < 3; k++ {
			phi := float64(k) * 2 * math.Pi / 3
			terminals = append(terminals, r3.Vec{
				X: d * math.Sin(theta) * math.Cos(phi),
				Y: d * math.Cos(theta),
				Z: d * math.Sin(theta) * math.Sin(phi),
			})
		}
	default:
		panic(fmt.Sprintf("Recipe %q: unknown geometry %v", R.Name, R.Geometry))
	}
	order := R.Order
	if order == 0 {
		order = Single
	}
	atoms := make([]Atom, 0, len(terminals)+1)
	bonds := make([]Bond, 0, len(terminals))
	atoms = append(atoms, Atom{Element: R.Center})
	for i, t := range terminals {
		atoms = append(atoms, Atom{Element: R.Terminal, Position: t})
		bonds = append(bonds, Bond{At1: 0, At2: i + 1, Order: order})
	}
	S, err := NewStructure(atoms, bonds)
	if err != nil {
		panic(err.Error()) //the bonds above can't be wrong, so this means the program is wrong.
	}
	return S
}
