/*
 * gocoords.go, part of molview.
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

package v3

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

//METHODS

// NVecs returns the number of vecs in F. A nil or empty
// Matrix has 0 vecs.
func (F *Matrix) NVecs() int {
	if F == nil || F.Dense == nil || F.IsEmpty() {
		return 0
	}
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

// Len is the same as NVecs, so a Matrix can be used where a length is expected.
func (F *Matrix) Len() int {
	return F.NVecs()
}

// Vec returns the ith vector of F as an r3.Vec value. The value doesn't
// share memory with F.
func (F *Matrix) Vec(i int) r3.Vec {
	if i < 0 || i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	return r3.Vec{X: F.At(i, 0), Y: F.At(i, 1), Z: F.At(i, 2)}
}

// SetVec sets the ith vector of F to v.
func (F *Matrix) SetVec(i int, v r3.Vec) {
	if i < 0 || i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	F.Set(i, 0, v.X)
	F.Set(i, 1, v.Y)
	F.Set(i, 2, v.Z)
}

// Vecs returns all the vectors in F as r3.Vec values, in order.
func (F *Matrix) Vecs() []r3.Vec {
	ret := make([]r3.Vec, F.NVecs())
	for i := range ret {
		ret[i] = F.Vec(i)
	}
	return ret
}

// Dot returns the dot product between 2 vectors or matrices (the latter
// being the sum of the element-wise products).
func (F *Matrix) Dot(B *Matrix) float64 {
	if F.NVecs() != B.NVecs() {
		panic(ErrShape)
	}
	var ret float64
	for i := 0; i < F.NVecs(); i++ {
		ret += r3.Dot(F.Vec(i), B.Vec(i))
	}
	return ret
}

// Norm returns the Euclidean norm of F, treating all its elements as
// one vector. The argument is kept for compatibility and ignored
// unless it is math.Inf(1), in which case the largest absolute element is returned.
func (F *Matrix) Norm(i float64) float64 {
	if F.NVecs() == 0 {
		return 0
	}
	data := make([]float64, 0, 3*F.NVecs())
	for k := 0; k < F.NVecs(); k++ {
		v := F.Vec(k)
		data = append(data, v.X, v.Y, v.Z)
	}
	if math.IsInf(i, 1) {
		return floats.Norm(data, math.Inf(1))
	}
	return floats.Norm(data, 2)
}
