/*
 * structure.go, part of molview.
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
	"image/color"
	"math"
	"path/filepath"
	"strings"

	chem "github.com/rmera/molview"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// glyphScale turns the relative display radius of an element into a glyph radius.
const glyphScale = 18

var outline = color.RGBA{A: 255}

func basicStructurePlot(title string, proj Projection) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	xl, yl := proj.Labels()
	p.X.Label.Text = xl
	p.Y.Label.Text = yl
	p.Add(plotter.NewGrid())
	return p
}

// StructurePlot draws the structure s projected on the plane given by proj.
// Bonds are drawn as lines, thicker for higher orders, and atoms as circles with the
// color and relative size of their element. Both axes span the same range, so
// the angles in the plot are the real ones. Returns an error for an empty structure.
func StructurePlot(s chem.Bonder, title string, proj Projection) (*plot.Plot, error) {
	if s.Len() == 0 {
		return nil, &Error{fmt.Sprintf("Nothing to plot for %q", title), []string{"StructurePlot"}, true}
	}
	p := basicStructurePlot(title, proj)
	points := make([]r3.Vec, s.Len())
	for i := range points {
		points[i] = s.Atom(i).Position
	}
	xys := proj.XYs(points)
	for i := 0; i < s.NBonds(); i++ {
		b := s.Bond(i)
		l, err := plotter.NewLine(plotter.XYs{xys[b.At1], xys[b.At2]})
		if err != nil {
			return nil, errDecorate(err, "StructurePlot")
		}
		l.LineStyle.Width = vg.Points(1.5 * float64(b.Order))
		l.LineStyle.Color = color.Gray{Y: 90}
		p.Add(l)
	}
	var maxrad float64
	for i := range points {
		el := s.Atom(i).Element
		sc, err := plotter.NewScatter(plotter.XYs{xys[i]})
		if err != nil {
			return nil, errDecorate(err, "StructurePlot")
		}
		rad := el.Radius()
		maxrad = math.Max(maxrad, rad)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Color = el.Color()
		sc.GlyphStyle.Radius = vg.Points(glyphScale * rad)
		ring, err := plotter.NewScatter(plotter.XYs{xys[i]})
		if err != nil {
			return nil, errDecorate(err, "StructurePlot")
		}
		//so white atoms can be seen.
		ring.GlyphStyle.Shape = draw.RingGlyph{}
		ring.GlyphStyle.Color = outline
		ring.GlyphStyle.Radius = sc.GlyphStyle.Radius
		p.Add(sc, ring)
	}
	squareAxes(p, xys, maxrad+0.5)
	return p, nil
}

// squareAxes sets both axes to the same span, enough to hold all points with
// margin on every side.
func squareAxes(p *plot.Plot, xys plotter.XYs, margin float64) {
	xmin, xmax, ymin, ymax := plotter.XYRange(xys)
	half := math.Max(xmax-xmin, ymax-ymin)/2 + margin
	cx, cy := (xmin+xmax)/2, (ymin+ymax)/2
	p.X.Min, p.X.Max = cx-half, cx+half
	p.Y.Min, p.Y.Max = cy-half, cy+half
}

// Save writes p to filename as a 4 inch square image. The format is
// taken from the file extension (png, svg, pdf, among others).
func Save(p *plot.Plot, filename string) error {
	if strings.TrimPrefix(filepath.Ext(filename), ".") == "" {
		return &Error{fmt.Sprintf("No extension in %s, can't pick a format", filename), []string{"Save"}, true}
	}
	if err := p.Save(4*vg.Inch, 4*vg.Inch, filename); err != nil {
		return errDecorate(err, "Save")
	}
	return nil
}
