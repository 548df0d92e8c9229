/*
 * json_test.go, part of molview.
 *
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

package chemjson

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	chem "github.com/rmera/molview"
	"github.com/rmera/molview/frame"
	v3 "github.com/rmera/molview/v3"
	"gonum.org/v1/gonum/mat"
)

func waterScene(Te *testing.T) *Scene {
	mol := chem.Build("h2o")
	s, p, err := frame.NewFramer().Pose(mol.Points())
	if err != nil {
		Te.Fatal(err)
	}
	return NewScene("h2o", mol, s, p)
}

func TestSceneRoundTrip(Te *testing.T) {
	for _, compressed := range []bool{false, true} {
		S := waterScene(Te)
		var buf bytes.Buffer
		var err *Error
		if compressed {
			err = S.SendCompressed(&buf)
		} else {
			err = S.Send(&buf)
		}
		if err != nil {
			Te.Fatal(err)
		}
		S2, err := ReceiveScene(&buf, compressed)
		if err != nil {
			Te.Fatal(err)
		}
		if S2.Name != "Water (H₂O)" || S2.Formula != "H2O" || len(S2.Atoms) != 3 || len(S2.Bonds) != 2 {
			Te.Fatalf("compressed: %v, bad scene %+v", compressed, S2)
		}
		if S2.FramePose() != S.FramePose() {
			Te.Errorf("compressed: %v, pose changed: %+v %+v", compressed, S.Pose, S2.Pose)
		}
		mol, err2 := S2.Structure()
		if err2 != nil {
			Te.Fatal(err2)
		}
		orig := chem.Build("h2o")
		for i := 0; i < orig.Len(); i++ {
			if mol.Atom(i) != orig.Atom(i) {
				Te.Errorf("atom %d changed: %v %v", i, orig.Atom(i), mol.Atom(i))
			}
		}
	}
}

func TestSceneColors(Te *testing.T) {
	S := waterScene(Te)
	if S.Atoms[0].Symbol != "O" || !strings.HasPrefix(S.Atoms[0].Color, "#") || len(S.Atoms[0].Color) != 7 {
		Te.Errorf("bad oxygen %+v", S.Atoms[0])
	}
	fmt.Printf("%+v\n", S.Atoms)
}

func TestBadScene(Te *testing.T) {
	S := waterScene(Te)
	S.Bonds = append(S.Bonds, Bond{At1: 0, At2: 7, Order: 1})
	_, err := S.Structure()
	if err == nil {
		Te.Fatal("a bond to a missing atom should fail")
	}
	jerr, ok := err.(*Error)
	if !ok || !jerr.IsError || !jerr.InPostProcess || jerr.Function != "Scene.Structure" {
		Te.Errorf("unexpected error %#v", err)
	}
	fmt.Println(string(jerr.Marshal()))
	S = waterScene(Te)
	S.Bonds[0].Order = 0
	if _, err := S.Structure(); err == nil {
		Te.Error("a bond of order 0 should be rejected")
	}
	if _, err := ReceiveScene(strings.NewReader("{not json"), false); err == nil || !err.InOptions {
		Te.Error("ReceiveScene should fail on broken input")
	}
}

func TestCoords(Te *testing.T) {
	coords, err := ReceiveCoords(strings.NewReader("[[1,2,3],[-1,0,0.5]]"))
	if err != nil {
		Te.Fatal(err)
	}
	if coords.NVecs() != 2 || coords.At(1, 2) != 0.5 {
		Te.Fatalf("bad coordinates %v", coords)
	}
	var buf bytes.Buffer
	if err := SendCoords(coords, &buf); err != nil {
		Te.Fatal(err)
	}
	coords2, err := ReceiveCoords(&buf)
	if err != nil {
		Te.Fatal(err)
	}
	if !mat.Equal(v3.Matrix2Dense(coords2), v3.Matrix2Dense(coords)) {
		Te.Errorf("coordinates changed: %v %v", coords, coords2)
	}
	empty, err := ReceiveCoords(strings.NewReader("[]"))
	if err != nil {
		Te.Fatal(err)
	}
	if s := frame.BoundsMatrix(empty); !s.Empty() {
		Te.Errorf("empty point set should give an empty sphere, got %v", s)
	}
	for _, bad := range []string{`[[1,2,"a"]]`, `[[1,2]]`, `[[1,2,3,4]]`, `[[1,2,3],[]]`} {
		c, err := ReceiveCoords(strings.NewReader(bad))
		if err == nil {
			Te.Errorf("%s should fail, got %v", bad, c)
			continue
		}
		if !err.InOptions {
			Te.Errorf("%s: error not flagged as input error: %v", bad, err)
		}
	}
}
