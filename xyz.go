/*
 * xyz.go, part of molview.
 *
 * Copyright 2013  <rmera@Holmes>
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


package chem

import (
	"fmt"
	"io"
	"os"
)

// XYZWrite writes the atoms in S to out in XYZ format, with comment
// in the second line. Only the first line of comment is used.
func XYZWrite(out io.Writer, S Atomer, comment string) error {
	for i, c := range comment {
		if c == '\n' || c == '\r' {
			comment = comment[:i]
			break
		}
	}
	if _, err := fmt.Fprintf(out, "%-4d\n%s\n", S.Len(), comment); err != nil {
		return &CError{err.Error(), []string{"XYZWrite"}, true}
	}
	for i := 0; i < S.Len(); i++ {
		at := S.Atom(i)
		c := at.Position
		_, err := fmt.Fprintf(out, "%-2s  %12.6f%12.6f%12.6f \n", at.Symbol(), c.X, c.Y, c.Z)
		if err != nil {
			return &CError{err.Error(), []string{"XYZWrite"}, true}
		}
	}
	return nil
}

// XYZFileWrite writes the atoms in S in an XYZ file with name xyzname which will
// be created for that. If the file exist it will be overwriten.
func XYZFileWrite(xyzname string, S Atomer, comment string) error {
	out, err := os.Create(xyzname)
	if err != nil {
		return &CError{err.Error(), []string{"os.Create", "XYZFileWrite"}, true}
	}
	if err := XYZWrite(out, S, comment); err != nil {
		out.Close()
		return errDecorate(err, "XYZFileWrite")
	}
	if err := out.Close(); err != nil {
		return &CError{err.Error(), []string{"os.File.Close", "XYZFileWrite"}, true}
	}
	return nil
}
