/*
 * geometric.go, part of molview
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

	v3 "github.com/rmera/molview/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

// Angle takes 2 vectors and calculate the angle in radians between them
// It does not check for correctness or return errors!
func Angle(v1, v2 *v3.Matrix) float64 {
	normproduct := v1.Norm(2) * v2.Norm(2)
	dotprod := v1.Dot(v2)
	argument := dotprod / normproduct
	//Take care of floating point math errors
	if math.Abs(argument-1) <= appzero {
		argument = 1
	} else if math.Abs(argument+1) <= appzero {
		argument = -1
	}
	angle := math.Acos(argument)
	if math.Abs(angle) <= appzero {
		return 0.00
	}
	return angle
}

// Neighbors returns the indexes of the atoms bonded to the atom i.
func (S Structure) Neighbors(i int) []int {
	bonds := S.BondsOf(i)
	ret := make([]int, 0, len(bonds))
	for _, b := range bonds {
		ret = append(ret, b.Cross(i))
	}
	return ret
}

// Distance returns the distance between the atoms i and j.
func (S Structure) Distance(i, j int) float64 {
	return r3.Norm(r3.Sub(S.Atom(j).Position, S.Atom(i).Position))
}

// BondAngle returns the angle, in degrees, between the bonds center-i and center-j.
// It returns an error if either i or j is not bonded to center.
func (S Structure) BondAngle(i, center, j int) (float64, error) {
	neighbors := S.Neighbors(center)
	for _, v := range []int{i, j} {
		if !isInInt(neighbors, v) {
			return 0, &CError{msg: fmt.Sprintf("Atom %d is not bonded to atom %d", v, center), deco: []string{"BondAngle"}}
		}
	}
	c := S.Atom(center).Position
	v1 := v3.FromVecs([]r3.Vec{r3.Sub(S.Atom(i).Position, c)})
	v2 := v3.FromVecs([]r3.Vec{r3.Sub(S.Atom(j).Position, c)})
	return Angle(v1, v2) * Rad2Deg, nil
}
