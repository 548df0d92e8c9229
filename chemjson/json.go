/*
 * json.go, part of molview.
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
	"bufio"
	"encoding/json"
	"fmt"
	"image/color"
	"io"

	"github.com/klauspost/compress/zstd"
	chem "github.com/rmera/molview"
	"github.com/rmera/molview/frame"
	v3 "github.com/rmera/molview/v3"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/spatial/r3"
)

// Atom is a ready-to-serialize container for an atom.
type Atom struct {
	ID     int
	Symbol string
	Color  string //"#rrggbb"
	Radius float64
	Coords [3]float64
}

// Bond is a ready-to-serialize container for a bond.
type Bond struct {
	At1   int
	At2   int
	Order int
}

// Sphere is a ready-to-serialize bounding sphere.
type Sphere struct {
	Center [3]float64
	Radius float64
}

// Pose is a ready-to-serialize camera pose.
type Pose struct {
	Target      [3]float64
	Distance    float64
	MinDistance float64
	MaxDistance float64
}

// Scene is everything a renderer needs to draw a molecule and point the camera at it.
type Scene struct {
	Molecule string
	Name     string
	Formula  string
	Atoms    []Atom
	Bonds    []Bond
	Sphere   Sphere
	Pose     Pose
}

func vec2array(v r3.Vec) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func array2vec(a [3]float64) r3.Vec {
	return r3.Vec{X: a[0], Y: a[1], Z: a[2]}
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// NewScene puts together a serializable scene for the molecule id, from its
// structure mol, the bounding sphere s and the camera pose p.
func NewScene(id chem.MoleculeID, mol chem.Structure, s frame.Sphere, p frame.Pose) *Scene {
	S := &Scene{
		Molecule: string(id),
		Name:     chem.DisplayName(id),
		Formula:  mol.Formula(),
	}
	S.Atoms = lo.Map(mol.Atoms(), func(at chem.Atom, _ int) Atom {
		return Atom{
			ID:     at.ID,
			Symbol: at.Symbol(),
			Color:  hexColor(at.Element.Color()),
			Radius: at.Element.Radius(),
			Coords: vec2array(at.Position),
		}
	})
	S.Bonds = lo.Map(mol.Bonds(), func(b chem.Bond, _ int) Bond {
		return Bond{At1: b.At1, At2: b.At2, Order: int(b.Order)}
	})
	S.Sphere = Sphere{Center: vec2array(s.Center), Radius: s.Radius}
	S.Pose = Pose{Target: vec2array(p.Target), Distance: p.Distance, MinDistance: p.MinDistance, MaxDistance: p.MaxDistance}
	return S
}

// Structure rebuilds the chem.Structure described by the scene.
func (S *Scene) Structure() (chem.Structure, error) {
	atoms := lo.Map(S.Atoms, func(at Atom, _ int) chem.Atom {
		return chem.Atom{ID: at.ID, Element: chem.ElementFromSymbol(at.Symbol), Position: array2vec(at.Coords)}
	})
	bonds := lo.Map(S.Bonds, func(b Bond, _ int) chem.Bond {
		return chem.Bond{At1: b.At1, At2: b.At2, Order: chem.BondOrder(b.Order)}
	})
	mol, err := chem.NewStructure(atoms, bonds)
	if err != nil {
		return chem.Structure{}, NewError("postprocess", "Scene.Structure", err)
	}
	return mol, nil
}

// FramePose returns the scene pose as a frame.Pose.
func (S *Scene) FramePose() frame.Pose {
	return frame.Pose{Target: array2vec(S.Pose.Target), Distance: S.Pose.Distance, MinDistance: S.Pose.MinDistance, MaxDistance: S.Pose.MaxDistance}
}

// Send Marshals the scene and writes it to out, returns an error or nil
func (S *Scene) Send(out io.Writer) *Error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(S); err != nil {
		return NewError("postprocess", "Scene.Send", err)
	}
	return nil
}

// SendCompressed is like Send, but the JSON stream is zstd-compressed.
func (S *Scene) SendCompressed(out io.Writer) *Error {
	zw, err := zstd.NewWriter(out)
	if err != nil {
		return NewError("postprocess", "Scene.SendCompressed", err)
	}
	if err := S.Send(zw); err != nil {
		zw.Close()
		err.Decorate("Scene.SendCompressed")
		return err
	}
	if err := zw.Close(); err != nil {
		return NewError("postprocess", "Scene.SendCompressed", err)
	}
	return nil
}

// ReceiveScene reads a scene written by Send or, if compressed is true, by SendCompressed.
func ReceiveScene(in io.Reader, compressed bool) (*Scene, *Error) {
	if compressed {
		zr, err := zstd.NewReader(in)
		if err != nil {
			return nil, NewError("options", "ReceiveScene", err)
		}
		defer zr.Close()
		in = zr
	}
	S := new(Scene)
	dec := json.NewDecoder(bufio.NewReader(in))
	if err := dec.Decode(S); err != nil {
		return nil, NewError("options", "ReceiveScene", err)
	}
	return S, nil
}

// ReceiveCoords reads a set of points given as a JSON array of [x,y,z] arrays,
// i.e. the positions already decoded by an external loader from some 3D asset.
// An empty array gives an empty matrix. A point without exactly 3 coordinates
// is an error.
func ReceiveCoords(in io.Reader) (*v3.Matrix, *Error) {
	var raw [][]float64
	dec := json.NewDecoder(bufio.NewReader(in))
	if err := dec.Decode(&raw); err != nil {
		return nil, NewError("options", "ReceiveCoords", err)
	}
	rawcoords := make([]float64, 0, 3*len(raw))
	for i, v := range raw {
		if len(v) != 3 {
			return nil, NewError("options", "ReceiveCoords", fmt.Errorf("point %d has %d coordinates, not 3", i, len(v)))
		}
		rawcoords = append(rawcoords, v...)
	}
	coords, err := v3.NewMatrix(rawcoords)
	if err != nil {
		return nil, NewError("options", "ReceiveCoords", err)
	}
	return coords, nil
}

// SendCoords writes the vectors in coords as a JSON array of [x,y,z] arrays,
// the format read by ReceiveCoords.
func SendCoords(coords *v3.Matrix, out io.Writer) *Error {
	raw := lo.Map(coords.Vecs(), func(v r3.Vec, _ int) [3]float64 { return vec2array(v) })
	if err := json.NewEncoder(out).Encode(raw); err != nil {
		return NewError("postprocess", "SendCoords", err)
	}
	return nil
}
