/*
 * plotutils.go, part of molview.
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
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot/plotter"
)

// Projection is the plane on which a structure is drawn.
type Projection int

const (
	XY Projection = iota //looking down the z axis, as the default camera does.
	XZ
	ZY
)

var projNames = map[Projection]string{XY: "xy", XZ: "xz", ZY: "zy"}

func (P Projection) String() string {
	if n, ok := projNames[P]; ok {
		return n
	}
	return "unknown"
}

// ParseProjection returns the projection named name ("xy", "xz" or "zy"),
// case-insensitively. ok is false for any other name.
func ParseProjection(name string) (P Projection, ok bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, v := range projNames {
		if v == name {
			return k, true
		}
	}
	return XY, false
}

// Labels returns the labels for the horizontal and vertical axes.
func (P Projection) Labels() (string, string) {
	n := P.String()
	if len(n) != 2 {
		n = "xy"
	}
	return strings.ToUpper(n[:1]) + " (Å)", strings.ToUpper(n[1:]) + " (Å)"
}

func (P Projection) project(v r3.Vec) plotter.XY {
	switch P {
	case XZ:
		return plotter.XY{X: v.X, Y: v.Z}
	case ZY:
		return plotter.XY{X: v.Z, Y: v.Y}
	default:
		return plotter.XY{X: v.X, Y: v.Y}
	}
}

// XYs projects points on the plane.
func (P Projection) XYs(points []r3.Vec) plotter.XYs {
	ret := make(plotter.XYs, len(points))
	for i, v := range points {
		ret[i] = P.project(v)
	}
	return ret
}

//Errors

// Error is the error type for the chemplot package.
type Error struct {
	message  string
	deco     []string
	critical bool
}

// Error returns a string with an error message.
func (err *Error) Error() string {
	return err.message
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical return whether the error is critical or it can be ignored
func (err *Error) Critical() bool { return err.critical }

type decorater interface {
	error
	Decorate(string) []string
}

// errDecorate wraps errors that don't know about decorations in an Error,
// and decorates the ones that do.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if err2, ok := err.(decorater); ok {
		err2.Decorate(caller)
		return err2
	}
	return &Error{err.Error(), []string{caller}, true}
}
