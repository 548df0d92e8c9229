/*
 * atomicdata.go, part of molview.
 *
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package chem

import "image/color"

// Element is the kind of an atom. The set is closed: only the elements
// needed by the molecule table are present.
type Element int

const (
	Unknown Element = iota
	Hydrogen
	Beryllium
	Carbon
	Nitrogen
	Oxygen
	Fluorine
	Silicon
	Sulfur
	Chlorine
)

type elementData struct {
	symbol string
	name   string
	color  color.RGBA
	radius float64
}

// Colors are the usual CPK-like ones. Radii are relative display radii,
// not physical ones: they only need to look right next to each other.
var elements = map[Element]elementData{
	Unknown:   {"X", "Unknown", color.RGBA{R: 255, G: 20, B: 147, A: 255}, 0.35},
	Hydrogen:  {"H", "Hydrogen", color.RGBA{R: 255, G: 255, B: 255, A: 255}, 0.25},
	Beryllium: {"Be", "Beryllium", color.RGBA{R: 194, G: 255, B: 0, A: 255}, 0.40},
	Carbon:    {"C", "Carbon", color.RGBA{R: 64, G: 64, B: 64, A: 255}, 0.40},
	Nitrogen:  {"N", "Nitrogen", color.RGBA{R: 48, G: 80, B: 248, A: 255}, 0.38},
	Oxygen:    {"O", "Oxygen", color.RGBA{R: 255, G: 13, B: 13, A: 255}, 0.36},
	Fluorine:  {"F", "Fluorine", color.RGBA{R: 144, G: 224, B: 80, A: 255}, 0.33},
	Silicon:   {"Si", "Silicon", color.RGBA{R: 240, G: 200, B: 160, A: 255}, 0.50},
	Sulfur:    {"S", "Sulfur", color.RGBA{R: 255, G: 255, B: 48, A: 255}, 0.48},
	Chlorine:  {"Cl", "Chlorine", color.RGBA{R: 31, G: 240, B: 31, A: 255}, 0.46},
}

//A map for assigning elements to symbols.
var symbolElement = map[string]Element{
	"H":  Hydrogen,
	"Be": Beryllium,
	"C":  Carbon,
	"N":  Nitrogen,
	"O":  Oxygen,
	"F":  Fluorine,
	"Si": Silicon,
	"S":  Sulfur,
	"Cl": Chlorine,
}

func (E Element) data() elementData {
	d, ok := elements[E]
	if !ok {
		return elements[Unknown]
	}
	return d
}

// Symbol returns the chemical symbol of the element, "X" for Unknown.
func (E Element) Symbol() string { return E.data().symbol }

// Name returns the english name of the element.
func (E Element) Name() string { return E.data().name }

// Color returns the display color for the element.
func (E Element) Color() color.RGBA { return E.data().color }

// Radius returns the relative display radius for the element.
func (E Element) Radius() float64 { return E.data().radius }

// String implements fmt.Stringer, it returns the symbol.
func (E Element) String() string { return E.Symbol() }

// ElementFromSymbol returns the Element with the given symbol, or Unknown.
func ElementFromSymbol(symbol string) Element {
	return symbolElement[symbol]
}
