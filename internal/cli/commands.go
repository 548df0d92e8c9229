/*
 * commands.go, part of molview.
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

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	chem "github.com/rmera/molview"
	"github.com/rmera/molview/chemjson"
	"github.com/rmera/molview/chemplot"
	"github.com/rmera/molview/frame"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists the molecules that can be built",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, id := range chem.Molecules() {
				r, _ := chem.Lookup(id)
				fmt.Fprintf(cmd.OutOrStdout(), "%-6s %-32s %v\n", id, r.Name, r.Geometry)
			}
			return nil
		},
	}
}

// frameMolecule builds the molecule id and frames it. Unknown molecules
// give an empty structure and the default pose, which is logged.
func (a *app) frameMolecule(id chem.MoleculeID) (chem.Structure, frame.Sphere, frame.Pose, error) {
	mol := chem.Build(id)
	if mol.Empty() {
		a.log.Warn("unknown molecule, nothing to frame", zap.String("molecule", string(id)))
	}
	s, p, err := a.cfg.Framer().Pose(mol.Points())
	if err != nil {
		return mol, s, p, errors.Wrapf(err, "framing %s", id)
	}
	if s.Empty() {
		a.log.Warn("using the default camera pose", zap.Float64("distance", p.Distance))
	}
	a.log.Debug("molecule framed",
		zap.String("molecule", string(id)),
		zap.Int("atoms", mol.Len()),
		zap.Float64("radius", s.Radius),
		zap.Float64("distance", p.Distance))
	return mol, s, p, nil
}

func newBuildCmd(a *app) *cobra.Command {
	var compress bool
	var out, format string
	cmd := &cobra.Command{
		Use:   "build <molecule>",
		Short: "Builds a molecule and writes it, with its camera pose, as a JSON scene (or as plain XYZ)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "json" && format != "xyz" {
				return errors.Mark(errors.Newf("unknown format %q, use json or xyz", format), errUsage)
			}
			id := chem.MoleculeID(args[0])
			mol, s, p, err := a.frameMolecule(id)
			if err != nil {
				return err
			}
			w, closer, err := output(cmd, out)
			if err != nil {
				return err
			}
			if err := writeMolecule(w, format, compress, id, mol, s, p); err != nil {
				closer()
				return err
			}
			if err := closer(); err != nil {
				return errors.Wrapf(err, "closing %s", out)
			}
			a.log.Info("molecule written", zap.String("molecule", string(id)), zap.String("format", format), zap.Bool("compressed", compress))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&compress, "compress", "z", false, "zstd-compress the JSON scene")
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output file, - for standard output")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format (json, xyz); xyz carries no camera pose")
	return cmd
}

// frameResult is what the frame command writes.
type frameResult struct {
	Sphere chemjson.Sphere
	Pose   chemjson.Pose
}

func newFrameCmd(a *app) *cobra.Command {
	var points string
	cmd := &cobra.Command{
		Use:   "frame",
		Short: "Frames a set of points given as a JSON array of [x,y,z] arrays",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if points != "-" {
				f, err := os.Open(points)
				if err != nil {
					return errors.Wrap(err, "opening the points file")
				}
				defer f.Close()
				in = f
			}
			coords, jerr := chemjson.ReceiveCoords(in)
			if jerr != nil {
				return errors.Wrap(jerr, "reading points")
			}
			s := frame.BoundsMatrix(coords)
			if s.Empty() {
				a.log.Warn("degenerate point set, using the default camera pose", zap.Int("points", coords.NVecs()))
			}
			p, err := a.cfg.Framer().SpherePose(s)
			if err != nil {
				return errors.Wrap(err, "framing points")
			}
			res := frameResult{
				Sphere: chemjson.Sphere{Center: [3]float64{s.Center.X, s.Center.Y, s.Center.Z}, Radius: s.Radius},
				Pose:   chemjson.Pose{Target: [3]float64{p.Target.X, p.Target.Y, p.Target.Z}, Distance: p.Distance, MinDistance: p.MinDistance, MaxDistance: p.MaxDistance},
			}
			return errors.Wrap(json.NewEncoder(cmd.OutOrStdout()).Encode(res), "writing the pose")
		},
	}
	cmd.Flags().StringVarP(&points, "points", "p", "-", "points file, - for standard input")
	return cmd
}

func newPlotCmd(a *app) *cobra.Command {
	var out, projection string
	cmd := &cobra.Command{
		Use:   "plot <molecule>",
		Short: "Draws a molecule projected on a plane",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, ok := chemplot.ParseProjection(projection)
			if !ok {
				return errors.Mark(errors.Newf("unknown projection %q, use xy, xz or zy", projection), errUsage)
			}
			id := chem.MoleculeID(args[0])
			mol, _, _, err := a.frameMolecule(id)
			if err != nil {
				return err
			}
			p, err := chemplot.StructurePlot(mol, chem.DisplayName(id), proj)
			if err != nil {
				return errors.Wrapf(err, "plotting %s", id)
			}
			if out == "" {
				out = fmt.Sprintf("%s_%v.png", mol.Formula(), proj)
			}
			if err := chemplot.Save(p, out); err != nil {
				return errors.Wrapf(err, "saving %s", out)
			}
			a.log.Info("plot saved", zap.String("molecule", string(id)), zap.String("file", out))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "image file; the format follows the extension (default <formula>_<projection>.png)")
	cmd.Flags().StringVar(&projection, "projection", "xy", "plane to draw on (xy, xz, zy)")
	return cmd
}

// writeMolecule writes mol to w as XYZ or as a JSON scene with its camera pose.
func writeMolecule(w io.Writer, format string, compress bool, id chem.MoleculeID, mol chem.Structure, s frame.Sphere, p frame.Pose) error {
	if format == "xyz" {
		if err := chem.XYZWrite(w, mol, chem.DisplayName(id)); err != nil {
			return errors.Wrapf(err, "writing %s as XYZ", id)
		}
		return nil
	}
	scene := chemjson.NewScene(id, mol, s, p)
	var jerr *chemjson.Error
	if compress {
		jerr = scene.SendCompressed(w)
	} else {
		jerr = scene.Send(w)
	}
	if jerr != nil {
		return errors.Wrapf(jerr, "writing the scene for %s", id)
	}
	return nil
}

// output returns the writer for name, standard output for "-", and a function
// that closes it, reporting any error on close.
func output(cmd *cobra.Command, name string) (io.Writer, func() error, error) {
	if name == "-" || name == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, nil, errors.Wrap(err, "creating output file")
	}
	return f, f.Close, nil
}
