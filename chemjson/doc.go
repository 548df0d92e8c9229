/*
 * doc.go, part of molview.
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

//Package chemjson implements serializacion and unserialization of
//molview data types. It's planned use is the communication with the
//rendering engine, which can be written in languages other than Go:
//a Scene carries the atoms, bonds, bounding sphere and camera pose for
//one molecule, and can be sent as plain or zstd-compressed JSON.
//chemjson also reads the point sets that an external loader obtained
//from a 3D asset, so they can be framed without going through a Structure.
package chemjson
