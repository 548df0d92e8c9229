/*
 * doc.go, part of molview.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*
Package chem is the main package of molview. It provides atom, bond and structure types,
and builds small molecules from idealized bond lengths and angles, so they can be
shown by a 3D rendering engine.

	**molview Capabilities**

	Builds small molecules (water, methane, carbon dioxide and a few others)
	from a static table. Each molecule is placed with one of three
	VSEPR-like geometries: linear, bent or tetrahedral. The central atom is
	always the first one.

	Unknown molecules give an empty structure, not an error.

	Measures distances and bond angles in a structure.

	Writes structures in XYZ format.

	Computes a bounding sphere for any set of points and, from it, a camera
	pose that frames the whole set (package frame).

	Serializes structures and camera poses as JSON, optionally zstd-compressed,
	for an external renderer (package chemjson).

	Draws 2D projections of structures (package chemplot).

Coordinates are handled either as gonum r3.Vec values, for single points, or as
v3.Matrix, an Nx3 matrix based on gonum's Dense, where each row is one point in space.

Apart from writing XYZ files, nothing in this package does I/O, and structures are never modified after they are
built, so they can be freely shared.
*/
package chem
