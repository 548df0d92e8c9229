/*
 * bounds.go, part of molview
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

package frame

import (
	v3 "github.com/rmera/molview/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// Box is an axis-aligned bounding box.
type Box struct {
	Min r3.Vec
	Max r3.Vec
}

// Center returns the midpoint of the box.
func (B Box) Center() r3.Vec {
	return r3.Scale(0.5, r3.Add(B.Min, B.Max))
}

// Diagonal returns the length of the box diagonal.
func (B Box) Diagonal() float64 {
	return r3.Norm(r3.Sub(B.Max, B.Min))
}

// Sphere is a bounding sphere. The zero value, a sphere of radius 0
// at the origin, means "nothing to frame".
type Sphere struct {
	Center r3.Vec
	Radius float64
}

// Empty returns true if the sphere has radius 0.
func (S Sphere) Empty() bool {
	return S.Radius == 0
}

// Contains returns true if p is not farther than S.Radius+tol from S.Center.
func (S Sphere) Contains(p r3.Vec, tol float64) bool {
	return r3.Norm(r3.Sub(p, S.Center)) <= S.Radius+tol
}

// BoxOf returns the axis-aligned bounding box of points, in a single
// pass over them. ok is false if points is empty.
func BoxOf(points []r3.Vec) (b Box, ok bool) {
	if len(points) == 0 {
		return Box{}, false
	}
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	zs := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i], zs[i] = p.X, p.Y, p.Z
	}
	b.Min = r3.Vec{X: floats.Min(xs), Y: floats.Min(ys), Z: floats.Min(zs)}
	b.Max = r3.Vec{X: floats.Max(xs), Y: floats.Max(ys), Z: floats.Max(zs)}
	return b, true
}

// Bounds returns the bounding sphere of points: centered at the
// middle of their axis-aligned bounding box, with a radius of half the
// box diagonal. This is not the smallest sphere containing the points,
// but it contains all of them and is cheap to get.
// An empty set of points gives the zero Sphere, which callers must
// treat as "nothing to frame".
func Bounds(points []r3.Vec) Sphere {
	b, ok := BoxOf(points)
	if !ok {
		return Sphere{}
	}
	return Sphere{Center: b.Center(), Radius: b.Diagonal() / 2}
}

// BoundsMatrix is like Bounds, but takes the points as the vectors of a
// coordinate matrix. A nil or empty matrix gives the zero Sphere.
func BoundsMatrix(coords *v3.Matrix) Sphere {
	if coords.NVecs() == 0 {
		return Sphere{}
	}
	return Bounds(coords.Vecs())
}
