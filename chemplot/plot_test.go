/*
 * plot_test.go
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
 *
 */

package chemplot

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	chem "github.com/rmera/molview"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot/vg"
)

//TestStructurePlot draws every molecule in the table on each plane.
func TestStructurePlot(Te *testing.T) {
	dir := Te.TempDir()
	for _, id := range chem.Molecules() {
		mol := chem.Build(id)
		for _, proj := range []Projection{XY, XZ, ZY} {
			p, err := StructurePlot(mol, chem.DisplayName(id), proj)
			if err != nil {
				Te.Fatal(err)
			}
			if math.Abs((p.X.Max-p.X.Min)-(p.Y.Max-p.Y.Min)) > 1e-9 {
				Te.Errorf("%s, %v: axes are not square", id, proj)
			}
			name := filepath.Join(dir, fmt.Sprintf("%s_%v.png", id, proj))
			if err := Save(p, name); err != nil {
				Te.Fatal(err)
			}
			if fi, err := os.Stat(name); err != nil || fi.Size() == 0 {
				Te.Errorf("%s was not written", name)
			}
		}
	}
	p, _ := StructurePlot(chem.Build("h2o"), "water", XY)
	if err := Save(p, filepath.Join(dir, "water.svg")); err != nil {
		Te.Error(err)
	}
	if err := Save(p, filepath.Join(dir, "water")); err == nil {
		Te.Error("Save should fail without a file extension")
	}
}

func TestEmptyPlot(Te *testing.T) {
	if _, err := StructurePlot(chem.Build("nothing"), "nothing", XY); err == nil {
		Te.Error("plotting an empty structure should fail")
	}
}

func TestProjection(Te *testing.T) {
	v := r3.Vec{X: 1, Y: 2, Z: 3}
	cases := map[Projection][2]float64{XY: {1, 2}, XZ: {1, 3}, ZY: {3, 2}}
	for proj, want := range cases {
		xy := proj.XYs([]r3.Vec{v})[0]
		if xy.X != want[0] || xy.Y != want[1] {
			Te.Errorf("%v: got %v, want %v", proj, xy, want)
		}
		if p, ok := ParseProjection(proj.String()); !ok || p != proj {
			Te.Errorf("%v doesn't parse back", proj)
		}
	}
	if _, ok := ParseProjection("yx"); ok {
		Te.Error("yx is not a projection")
	}
	if x, y := ZY.Labels(); x != "Z (Å)" || y != "Y (Å)" {
		Te.Errorf("bad labels %s %s", x, y)
	}
}

func TestPlotTitle(Te *testing.T) {
	p, err := StructurePlot(chem.Build("ch4"), "Methane", ZY)
	if err != nil {
		Te.Fatal(err)
	}
	if p.Title.Text != "Methane" || p.Title.Padding != 3*vg.Millimeter {
		Te.Errorf("bad title %q, padding %v", p.Title.Text, p.Title.Padding)
	}
	if p.X.Label.Text != "Z (Å)" {
		Te.Errorf("bad x label %q", p.X.Label.Text)
	}
}

//TestErrorDecoration checks that callers are added to the error, not to a copy of it.
func TestErrorDecoration(Te *testing.T) {
	_, err := StructurePlot(chem.Structure{}, "nothing", XY)
	e, ok := err.(*Error)
	if !ok {
		Te.Fatalf("unexpected error type %T", err)
	}
	e.Decorate("caller")
	if d := e.Decorate(""); len(d) != 2 || d[1] != "caller" {
		Te.Errorf("decoration lost: %v", d)
	}
	wrapped := errDecorate(errDecorate(os.ErrNotExist, "Save"), "main")
	if d := wrapped.(*Error).Decorate(""); len(d) != 2 || d[0] != "Save" || d[1] != "main" {
		Te.Errorf("decoration lost: %v", d)
	}
}
