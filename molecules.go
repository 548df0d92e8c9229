/*
 * molecules.go, part of molview
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
	"sort"
	"strings"

	"github.com/samber/lo"
)

// MoleculeID identifies one of the molecules that can be built.
type MoleculeID string

// Bond lengths in Angstroms, bond angles in degrees.
// Adding a molecule is adding a row here.
var molecules = map[MoleculeID]Recipe{
	"h2o":  {Name: "Water (H₂O)", Geometry: Bent, BondLength: 0.96, BondAngle: 104.5, Center: Oxygen, Terminal: Hydrogen},
	"h2s":  {Name: "Hydrogen sulfide (H₂S)", Geometry: Bent, BondLength: 1.34, BondAngle: 92.1, Center: Sulfur, Terminal: Hydrogen},
	"of2":  {Name: "Oxygen difluoride (OF₂)", Geometry: Bent, BondLength: 1.41, BondAngle: 103.1, Center: Oxygen, Terminal: Fluorine},
	"ch4":  {Name: "Methane (CH₄)", Geometry: Tetrahedral, BondLength: 1.09, BondAngle: TetrahedralAngle, Center: Carbon, Terminal: Hydrogen},
	"sih4": {Name: "Silane (SiH₄)", Geometry: Tetrahedral, BondLength: 1.48, BondAngle: TetrahedralAngle, Center: Silicon, Terminal: Hydrogen},
	"ccl4": {Name: "Carbon tetrachloride (CCl₄)", Geometry: Tetrahedral, BondLength: 1.77, BondAngle: TetrahedralAngle, Center: Carbon, Terminal: Chlorine},
	"co2":  {Name: "Carbon Dioxide (CO₂)", Geometry: Linear, BondLength: 1.16, Center: Carbon, Terminal: Oxygen, Order: Double},
	"cs2":  {Name: "Carbon disulfide (CS₂)", Geometry: Linear, BondLength: 1.55, Center: Carbon, Terminal: Sulfur, Order: Double},
	"beh2": {Name: "Beryllium hydride (BeH₂)", Geometry: Linear, BondLength: 1.33, Center: Beryllium, Terminal: Hydrogen},
}

//Other names accepted for some molecules.
var aliases = map[MoleculeID]MoleculeID{
	"water":          "h2o",
	"methane":        "ch4",
	"carbon-dioxide": "co2",
}

func canonical(id MoleculeID) MoleculeID {
	id = MoleculeID(strings.ToLower(strings.TrimSpace(string(id))))
	if c, ok := aliases[id]; ok {
		return c
	}
	return id
}

// Lookup returns the recipe for the molecule id (or any of its aliases).
// ok is false if the molecule is unknown.
func Lookup(id MoleculeID) (r Recipe, ok bool) {
	r, ok = molecules[canonical(id)]
	return r, ok
}

// Build returns the structure for the molecule id.
// Build never fails: an unknown id gives an empty Structure, with no atoms
// and no bonds, which is a perfectly valid thing to show (i.e. nothing).
func Build(id MoleculeID) Structure {
	r, ok := Lookup(id)
	if !ok {
		return Structure{}
	}
	return r.Build()
}

// Molecules returns the canonical ids of all the molecules that can be built, sorted.
func Molecules() []MoleculeID {
	ids := lo.Keys(molecules)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// DisplayName returns a human-readable name for the molecule id, or
// the id itself if the molecule is unknown.
func DisplayName(id MoleculeID) string {
	if r, ok := Lookup(id); ok {
		return r.Name
	}
	return string(id)
}
