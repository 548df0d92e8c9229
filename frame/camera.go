/*
 * camera.go, part of molview
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
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultDistance is the camera distance used by CameraPose when there is nothing to frame.
const DefaultDistance = 10.0

// Pose is where a camera should look from, and how close or far
// the user should be allowed to move it. MinDistance <= Distance <= MaxDistance
// always holds.
type Pose struct {
	Target      r3.Vec
	Distance    float64
	MinDistance float64
	MaxDistance float64
}

// Position returns the camera eye for the pose, when looking along dir
// (i.e. the eye is at Target-Distance*dir/|dir|). A zero dir is taken as -z,
// so the camera sits on the +z side of the target.
func (P Pose) Position(dir r3.Vec) r3.Vec {
	n := r3.Norm(dir)
	if n == 0 {
		dir, n = r3.Vec{Z: -1}, 1
	}
	return r3.Sub(P.Target, r3.Scale(P.Distance/n, dir))
}

// CameraPose returns a pose that fits the sphere s in a vertical field of view of
// fov degrees, leaving some room around it: the distance is multiplied by padding.
// fov has to be in (0,180) and padding has to be at least 1, otherwise
// an error matching ErrInvalidParameter is returned.
// MinDistance is half a radius. MaxDistance is max(10*radius, distance), not
// just 10 radii: with a narrow field of view (e.g. 5 degrees with a padding of 3)
// the pose itself is farther than 10 radii, and a MaxDistance below Distance
// would put the camera out of its own zoom range.
// A sphere of radius 0 gives a default pose, DefaultDistance away from the sphere center.
func CameraPose(s Sphere, fov, padding float64) (Pose, error) {
	return cameraPose(s, fov, padding, DefaultDistance)
}

func cameraPose(s Sphere, fov, padding, defdist float64) (Pose, error) {
	if err := checkParameters(fov, padding); err != nil {
		return Pose{}, errDecorate(err, "CameraPose")
	}
	if s.Radius <= 0 {
		return defaultPose(s.Center, defdist), nil
	}
	half := fov * deg2Rad / 2
	//sin, not tan: the sphere must touch the frustum planes.
	dist := padding * s.Radius / math.Sin(half)
	return Pose{
		Target:      s.Center,
		Distance:    dist,
		MinDistance: s.Radius / 2,
		MaxDistance: math.Max(s.Radius*10, dist), //only narrow fields of view need more than 10 radii.
	}, nil
}

func defaultPose(target r3.Vec, dist float64) Pose {
	return Pose{
		Target:      target,
		Distance:    dist,
		MinDistance: dist / 10,
		MaxDistance: dist * 10,
	}
}

const deg2Rad = math.Pi / 180

func checkParameters(fov, padding float64) error {
	if math.IsNaN(fov) || fov <= 0 || fov >= 180 {
		return newInvalidParameter(fmt.Sprintf("field of view must be in (0,180) degrees, got %v", fov))
	}
	if math.IsNaN(padding) || math.IsInf(padding, 0) || padding < 1 {
		return newInvalidParameter(fmt.Sprintf("padding must be a finite number >= 1, got %v", padding))
	}
	return nil
}

// Framer keeps the choices of the embedding application for framing structures.
type Framer struct {
	FieldOfView     float64 //vertical, in degrees
	Padding         float64
	DefaultDistance float64 //for empty point sets
}

// NewFramer returns a Framer with a 75 degree field of view, a padding of 1.5
// and DefaultDistance for empty point sets.
func NewFramer() *Framer {
	return &Framer{FieldOfView: 75, Padding: 1.5, DefaultDistance: DefaultDistance}
}

// Validate returns an error if the Framer parameters can't produce a pose.
func (F *Framer) Validate() error {
	if err := checkParameters(F.FieldOfView, F.Padding); err != nil {
		return errDecorate(err, "Framer.Validate")
	}
	if math.IsNaN(F.DefaultDistance) || math.IsInf(F.DefaultDistance, 0) || F.DefaultDistance <= 0 {
		return errDecorate(newInvalidParameter(fmt.Sprintf("default distance must be positive, got %v", F.DefaultDistance)), "Framer.Validate")
	}
	return nil
}

// SpherePose returns the pose for the sphere s.
func (F *Framer) SpherePose(s Sphere) (Pose, error) {
	if err := F.Validate(); err != nil {
		return Pose{}, errDecorate(err, "Framer.SpherePose")
	}
	return cameraPose(s, F.FieldOfView, F.Padding, F.DefaultDistance)
}

// Pose returns the bounding sphere of points and the pose that frames it.
func (F *Framer) Pose(points []r3.Vec) (Sphere, Pose, error) {
	s := Bounds(points)
	p, err := F.SpherePose(s)
	if err != nil {
		return s, Pose{}, errDecorate(err, "Framer.Pose")
	}
	return s, p, nil
}
