/*
 * chem_test.go
 *
 * Copyright 2013  <rmera@Holmes>
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
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

const tol = 1e-9

func recipesWith(g Geometry) map[MoleculeID]Recipe {
	ret := make(map[MoleculeID]Recipe)
	for id, r := range molecules {
		if r.Geometry == g {
			ret[id] = r
		}
	}
	return ret
}

// TestBent checks that, for every bent molecule, both terminal atoms
// are at the bond length from the center and that the angle between the
// bonds is the one in the table.
func TestBent(Te *testing.T) {
	for id, r := range recipesWith(Bent) {
		s := Build(id)
		if s.Len() != 3 || s.NBonds() != 2 {
			Te.Fatalf("%s: expected 3 atoms and 2 bonds, got %d, %d", id, s.Len(), s.NBonds())
		}
		for _, i := range []int{1, 2} {
			if d := s.Distance(0, i); math.Abs(d-r.BondLength) > tol {
				Te.Errorf("%s: atom %d at %v from the center, want %v", id, i, d, r.BondLength)
			}
		}
		angle, err := s.BondAngle(1, 0, 2)
		if err != nil {
			Te.Fatal(err)
		}
		if math.Abs(angle-r.BondAngle) > 1e-6 {
			Te.Errorf("%s: bond angle %v, want %v", id, angle, r.BondAngle)
		}
		fmt.Println(id, s, angle)
	}
}

func TestTetrahedral(Te *testing.T) {
	for id, r := range recipesWith(Tetrahedral) {
		s := Build(id)
		if s.Len() != 5 || s.NBonds() != 4 {
			Te.Fatalf("%s: expected 5 atoms and 4 bonds, got %d, %d", id, s.Len(), s.NBonds())
		}
		for i := 1; i < 5; i++ {
			if d := s.Distance(0, i); math.Abs(d-r.BondLength) > tol {
				Te.Errorf("%s: atom %d at %v from the center, want %v", id, i, d, r.BondLength)
			}
			for j := i + 1; j < 5; j++ {
				angle, err := s.BondAngle(i, 0, j)
				if err != nil {
					Te.Fatal(err)
				}
				if math.Abs(angle-TetrahedralAngle) > 1e-6 {
					Te.Errorf("%s: angle %d-0-%d is %v, want %v", id, i, j, angle, TetrahedralAngle)
				}
			}
		}
		if s.Atom(1).Position != (r3.Vec{Y: r.BondLength}) {
			Te.Errorf("%s: the first terminal atom should be along +y, got %v", id, s.Atom(1).Position)
		}
	}
}

func TestLinear(Te *testing.T) {
	for id, r := range recipesWith(Linear) {
		s := Build(id)
		if s.Len() != 3 || s.NBonds() != 2 {
			Te.Fatalf("%s: expected 3 atoms and 2 bonds, got %d, %d", id, s.Len(), s.NBonds())
		}
		if s.Atom(1).Position != (r3.Vec{X: r.BondLength}) || s.Atom(2).Position != (r3.Vec{X: -r.BondLength}) {
			Te.Errorf("%s: terminal atoms misplaced: %v %v", id, s.Atom(1).Position, s.Atom(2).Position)
		}
		angle, err := s.BondAngle(1, 0, 2)
		if err != nil {
			Te.Fatal(err)
		}
		if math.Abs(angle-180) > 1e-6 {
			Te.Errorf("%s: linear molecule with a %v angle", id, angle)
		}
	}
}

// TestBentScenario builds a bent molecule with a bond length of 3 and
// checks the actual positions.
func TestBentScenario(Te *testing.T) {
	r := Recipe{Name: "test", Geometry: Bent, BondLength: 3, BondAngle: 104.5, Center: Oxygen, Terminal: Hydrogen}
	s := r.Build()
	center, ok := s.Primary()
	if !ok || center.Position != (r3.Vec{}) || center.Element != Oxygen {
		Te.Fatalf("bad central atom %v", center)
	}
	want := []r3.Vec{{X: 2.37207, Y: 1.83665}, {X: -2.37207, Y: 1.83665}}
	for i, w := range want {
		p := s.Atom(i + 1).Position
		if r3.Norm(r3.Sub(p, w)) > 1e-3 {
			Te.Errorf("terminal atom %d at %v, want about %v", i+1, p, w)
		}
	}
}

func TestUnknown(Te *testing.T) {
	s := Build("unknown")
	if !s.Empty() || s.Len() != 0 || s.NBonds() != 0 {
		Te.Errorf("an unknown molecule should be empty, got %v", s)
	}
	if _, ok := s.Primary(); ok {
		Te.Error("an empty structure has no primary atom")
	}
	if len(s.Points()) != 0 || s.Coords().NVecs() != 0 {
		Te.Error("an empty structure has no points")
	}
	if _, ok := Lookup("unknown"); ok {
		Te.Error("Lookup found an unknown molecule")
	}
}

func TestTable(Te *testing.T) {
	ids := Molecules()
	if len(ids) != len(molecules) {
		Te.Fatalf("Molecules returned %d ids, the table has %d", len(ids), len(molecules))
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			Te.Errorf("ids not sorted: %v", ids)
		}
	}
	for _, id := range ids {
		r, _ := Lookup(id)
		s := Build(id)
		if s.Len() != r.Geometry.Terminals()+1 || s.NBonds() != r.Geometry.Terminals() {
			Te.Errorf("%s: %d atoms, %d bonds for a %v molecule", id, s.Len(), s.NBonds(), r.Geometry)
		}
		//Build is deterministic.
		s2 := Build(id)
		for i := 0; i < s.Len(); i++ {
			if s.Atom(i) != s2.Atom(i) {
				Te.Errorf("%s: atom %d differs between builds", id, i)
			}
		}
		if _, err := NewStructure(s.Atoms(), s.Bonds()); err != nil {
			Te.Errorf("%s: %v", id, err)
		}
	}
}

func TestNames(Te *testing.T) {
	cases := []struct {
		id      MoleculeID
		formula string
		name    string
	}{
		{"h2o", "H2O", "Water (H₂O)"},
		{"water", "H2O", "Water (H₂O)"},
		{"ch4", "CH4", "Methane (CH₄)"},
		{"Methane", "CH4", "Methane (CH₄)"},
		{"carbon-dioxide", "CO2", "Carbon Dioxide (CO₂)"},
		{"of2", "F2O", "Oxygen difluoride (OF₂)"},
		{"ccl4", "CCl4", "Carbon tetrachloride (CCl₄)"},
		{"nope", "", "nope"},
	}
	for _, c := range cases {
		if f := Build(c.id).Formula(); f != c.formula {
			Te.Errorf("%s: formula %q, want %q", c.id, f, c.formula)
		}
		if n := DisplayName(c.id); n != c.name {
			Te.Errorf("%s: name %q, want %q", c.id, n, c.name)
		}
	}
	if Build("co2").Bond(0).Order != Double || Build("h2o").Bond(0).Order != Single {
		Te.Error("wrong bond orders")
	}
}

func TestNewStructure(Te *testing.T) {
	atoms := []Atom{{Element: Carbon}, {Element: Oxygen, Position: r3.Vec{X: 1}}}
	bad := [][]Bond{
		{{At1: 0, At2: 2}},
		{{At1: -1, At2: 0}},
		{{At1: 1, At2: 1}},
		{{At1: 0, At2: 1, Order: Single}, {At1: 1, At2: 0, Order: Double}},
		{{At1: 0, At2: 1}},
		{{At1: 0, At2: 1, Order: 3}},
		{{At1: 0, At2: 1, Order: -1}},
	}
	for _, b := range bad {
		_, err := NewStructure(atoms, b)
		if err == nil {
			Te.Errorf("bonds %v should have been rejected", b)
			continue
		}
		fmt.Println(err)
	}
	s, err := NewStructure(atoms, []Bond{{At1: 1, At2: 0, Order: Double}})
	if err != nil {
		Te.Fatal(err)
	}
	atoms[0].Element = Sulfur
	if s.Atom(0).Element != Carbon {
		Te.Error("NewStructure doesn't copy its input")
	}
	if s.Atom(1).ID != 1 {
		Te.Errorf("atom IDs should match positions, got %d", s.Atom(1).ID)
	}
	if _, err := s.BondAngle(0, 1, 0); err != nil {
		Te.Errorf("BondAngle over one bond should work: %v", err)
	}
	if _, err := s.BondAngle(0, 0, 1); err == nil {
		Te.Error("BondAngle should fail for atoms not bonded to the center")
	}
}

func TestCross(Te *testing.T) {
	b := Bond{At1: 2, At2: 5}
	if b.Cross(2) != 5 || b.Cross(5) != 2 {
		Te.Error("Cross failed")
	}
	if !b.Joins(5, 2) || b.Joins(2, 3) {
		Te.Error("Joins failed")
	}
	defer func() {
		if r := recover(); r != ErrNotInBond {
			Te.Errorf("expected panic %v, got %v", ErrNotInBond, r)
		}
	}()
	b.Cross(3)
}

func TestElements(Te *testing.T) {
	for _, e := range []Element{Hydrogen, Beryllium, Carbon, Nitrogen, Oxygen, Fluorine, Silicon, Sulfur, Chlorine} {
		if ElementFromSymbol(e.Symbol()) != e {
			Te.Errorf("%v doesn't round trip through its symbol", e)
		}
		if e.Radius() <= 0 || e.Color().A != 255 {
			Te.Errorf("%v: bad display data", e)
		}
	}
	if ElementFromSymbol("Xx") != Unknown || Element(99).Symbol() != "X" {
		Te.Error("unknown elements not handled")
	}
	if Hydrogen.Radius() >= Carbon.Radius() {
		Te.Error("hydrogen should look smaller than carbon")
	}
}

func TestXYZWrite(Te *testing.T) {
	var sb strings.Builder
	if err := XYZWrite(&sb, Build("ch4"), "Methane\nignored"); err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) != 7 {
		Te.Fatalf("expected 7 lines, got %d:\n%s", len(lines), sb.String())
	}
	if strings.TrimSpace(lines[0]) != "5" || lines[1] != "Methane" {
		Te.Errorf("bad header %q %q", lines[0], lines[1])
	}
	if f := strings.Fields(lines[2]); len(f) != 4 || f[0] != "C" {
		Te.Errorf("bad first atom line %q", lines[2])
	}
	fmt.Print(sb.String())
	name := filepath.Join(Te.TempDir(), "h2o.xyz")
	if err := XYZFileWrite(name, Build("h2o"), "water"); err != nil {
		Te.Fatal(err)
	}
	if err := XYZFileWrite(filepath.Join(Te.TempDir(), "nodir", "h2o.xyz"), Build("h2o"), ""); err == nil {
		Te.Error("writing to a missing directory should fail")
	}
}

type failingWriter struct{ after int }

func (F *failingWriter) Write(p []byte) (int, error) {
	if F.after <= 0 {
		return 0, os.ErrClosed
	}
	F.after--
	return len(p), nil
}

func TestXYZWriteErrors(Te *testing.T) {
	err := XYZWrite(&failingWriter{after: 2}, Build("h2o"), "water")
	if err == nil {
		Te.Fatal("a failing writer should give an error")
	}
	e := err.(*CError)
	e.Decorate("XYZFileWrite")
	if d := e.Decorate(""); len(d) != 2 || d[1] != "XYZFileWrite" {
		Te.Errorf("decoration lost: %v", d)
	}
	fmt.Println(err)
}
