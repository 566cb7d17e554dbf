/*
 * atom.go, part of chemrec.
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

package chem

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

/**Note: The setters and getters here never return errors. An atom that exists is valid, and
 * an absent coordinate is reported with a bool, not an error. Using a nil *Atom is a programming
 * error and panics, as in the rest of the library.**/

// Unset is the value Charge returns for an atom whose charge was never assigned.
// It is a NaN, so it can't be confused with any real charge, 0 included.
// Compare against it with IsUnset, not with ==.
var Unset = math.NaN()

// IsUnset returns true if f is the unset sentinel (any NaN).
func IsUnset(f float64) bool {
	return math.IsNaN(f)
}

// Atom is an atom record: an element symbol, a partial charge and up to three
// independent positions (planar, Cartesian and fractional crystallographic).
// Coordinates are kept by value, so no two records ever share them.
// An Atom optionally carries a Residue payload, in which case it is a "PDB atom".
type Atom struct {
	symbol   string
	charge   float64
	p2       r2.Vec
	p3       r3.Vec
	fract    r3.Vec
	has2     bool
	has3     bool
	hasFract bool
	res      *Residue
}

// NewAtom returns a generic atom record with the given symbol and, if given, the
// Cartesian position point3d[0]. Everything else is absent and the charge is Unset.
// It returns an *InvalidIdentityError if the symbol is empty or malformed.
func NewAtom(symbol string, point3d ...r3.Vec) (*Atom, error) {
	if err := checkSymbol(symbol); err != nil {
		err.Decorate("NewAtom")
		return nil, err
	}
	A := &Atom{symbol: symbol, charge: Unset}
	if len(point3d) > 0 {
		A.SetPoint3D(point3d[0])
	}
	return A, nil
}

// NewPDBAtom is like NewAtom, but the record carries an empty residue payload.
func NewPDBAtom(symbol string, point3d ...r3.Vec) (*Atom, error) {
	A, err := NewAtom(symbol, point3d...)
	if err != nil {
		return nil, errDecorate(err, "NewPDBAtom")
	}
	A.res = &Residue{Record: "ATOM"}
	return A, nil
}

// checkSymbol accepts 1 to 3 ASCII letters, the first one upper case
// and the rest lower case (C, Cl, Uuo).
func checkSymbol(symbol string) *InvalidIdentityError {
	if symbol == "" {
		return &InvalidIdentityError{Symbol: symbol, Reason: "empty symbol"}
	}
	if len(symbol) > 3 {
		return &InvalidIdentityError{Symbol: symbol, Reason: "symbol longer than 3 characters"}
	}
	for i := 0; i < len(symbol); i++ {
		c := symbol[i]
		if i == 0 && (c < 'A' || c > 'Z') {
			return &InvalidIdentityError{Symbol: symbol, Reason: "symbol must start with an upper case letter"}
		}
		if i > 0 && (c < 'a' || c > 'z') {
			return &InvalidIdentityError{Symbol: symbol, Reason: "only the first letter of a symbol can be upper case"}
		}
	}
	return nil
}

//Atom methods

// Symbol returns the element symbol of the atom.
func (A *Atom) Symbol() string {
	return A.symbol
}

// Charge returns the partial charge, or Unset.
func (A *Atom) Charge() float64 {
	return A.charge
}

// SetCharge sets the partial charge. Setting a NaN is the same as ClearCharge.
func (A *Atom) SetCharge(q float64) {
	if math.IsNaN(q) {
		q = Unset
	}
	A.charge = q
}

// HasCharge returns true if a charge has been assigned.
func (A *Atom) HasCharge() bool {
	return !IsUnset(A.charge)
}

// ClearCharge sets the charge back to Unset.
func (A *Atom) ClearCharge() {
	A.charge = Unset
}

// Point2D returns the planar coordinates and whether they are present.
func (A *Atom) Point2D() (r2.Vec, bool) {
	return A.p2, A.has2
}

// Point3D returns the Cartesian coordinates and whether they are present.
func (A *Atom) Point3D() (r3.Vec, bool) {
	return A.p3, A.has3
}

// FractionalPoint3D returns the fractional crystallographic coordinates and whether
// they are present.
func (A *Atom) FractionalPoint3D() (r3.Vec, bool) {
	return A.fract, A.hasFract
}

// HasPoint2D returns true if the atom has planar coordinates.
func (A *Atom) HasPoint2D() bool { return A.has2 }

// HasPoint3D returns true if the atom has Cartesian coordinates.
func (A *Atom) HasPoint3D() bool { return A.has3 }

// HasFractionalPoint3D returns true if the atom has fractional coordinates.
func (A *Atom) HasFractionalPoint3D() bool { return A.hasFract }

// SetPoint2D sets the planar coordinates to a copy of p.
func (A *Atom) SetPoint2D(p r2.Vec) {
	A.p2 = p
	A.has2 = true
}

// SetPoint3D sets the Cartesian coordinates to a copy of p.
func (A *Atom) SetPoint3D(p r3.Vec) {
	A.p3 = p
	A.has3 = true
}

// SetFractionalPoint3D sets the fractional coordinates to a copy of p.
func (A *Atom) SetFractionalPoint3D(p r3.Vec) {
	A.fract = p
	A.hasFract = true
}

// ClearPoint2D removes the planar coordinates. The other frames are kept.
func (A *Atom) ClearPoint2D() {
	A.p2 = r2.Vec{}
	A.has2 = false
}

// ClearPoint3D removes the Cartesian coordinates. The other frames are kept.
func (A *Atom) ClearPoint3D() {
	A.p3 = r3.Vec{}
	A.has3 = false
}

// ClearFractionalPoint3D removes the fractional coordinates. The other frames are kept.
func (A *Atom) ClearFractionalPoint3D() {
	A.fract = r3.Vec{}
	A.hasFract = false
}

//The component setters. An absent point becomes the origin before the
//component is set.

// SetX2D sets the x planar coordinate.
func (A *Atom) SetX2D(x float64) {
	A.touch2()
	A.p2.X = x
}

// SetY2D sets the y planar coordinate.
func (A *Atom) SetY2D(y float64) {
	A.touch2()
	A.p2.Y = y
}

// SetX3D sets the x Cartesian coordinate.
func (A *Atom) SetX3D(x float64) {
	A.touch3()
	A.p3.X = x
}

// SetY3D sets the y Cartesian coordinate.
func (A *Atom) SetY3D(y float64) {
	A.touch3()
	A.p3.Y = y
}

// SetZ3D sets the z Cartesian coordinate.
func (A *Atom) SetZ3D(z float64) {
	A.touch3()
	A.p3.Z = z
}

// SetFractX3D sets the x fractional coordinate.
func (A *Atom) SetFractX3D(x float64) {
	A.touchFract()
	A.fract.X = x
}

// SetFractY3D sets the y fractional coordinate.
func (A *Atom) SetFractY3D(y float64) {
	A.touchFract()
	A.fract.Y = y
}

// SetFractZ3D sets the z fractional coordinate.
func (A *Atom) SetFractZ3D(z float64) {
	A.touchFract()
	A.fract.Z = z
}

func (A *Atom) touch2() {
	if !A.has2 {
		A.p2 = r2.Vec{}
		A.has2 = true
	}
}

func (A *Atom) touch3() {
	if !A.has3 {
		A.p3 = r3.Vec{}
		A.has3 = true
	}
}

func (A *Atom) touchFract() {
	if !A.hasFract {
		A.fract = r3.Vec{}
		A.hasFract = true
	}
}

// IsPDB returns true if the atom carries a residue payload.
func (A *Atom) IsPDB() bool {
	return A.res != nil
}

// Residue returns a copy of the residue payload, and false if the atom has none.
func (A *Atom) Residue() (Residue, bool) {
	if A.res == nil {
		return Residue{}, false
	}
	return *A.res, true
}

// SetResidue attaches a copy of r to the atom, turning it into a PDB atom
// if it wasn't one.
func (A *Atom) SetResidue(r Residue) {
	A.res = &r
}

// Clone returns a deep copy of the atom. Nothing in the copy is shared with A.
func (A *Atom) Clone() *Atom {
	if A == nil {
		panic(ErrNilAtom)
	}
	N := *A
	if A.res != nil {
		r := *A.res
		N.res = &r
	}
	return &N
}

// Compare returns true if other is an atom record of the same variant (generic or PDB)
// and with the same symbol, charge, coordinates and residue payload as A.
// For anything else, including values of unrelated types and nil, it returns false.
func (A *Atom) Compare(other any) bool {
	if A == nil {
		return false
	}
	var B *Atom
	switch o := other.(type) {
	case *Atom:
		B = o
	case Atom:
		B = &o
	default:
		return false
	}
	if B == nil {
		return false
	}
	if A == B {
		return true
	}
	if A.symbol != B.symbol || A.IsPDB() != B.IsPDB() {
		return false
	}
	if !sameFloat(A.charge, B.charge) {
		return false
	}
	if A.has2 != B.has2 || (A.has2 && A.p2 != B.p2) {
		return false
	}
	if A.has3 != B.has3 || (A.has3 && A.p3 != B.p3) {
		return false
	}
	if A.hasFract != B.hasFract || (A.hasFract && A.fract != B.fract) {
		return false
	}
	if A.res != nil && !A.res.equal(B.res) {
		return false
	}
	return true
}

// sameFloat is == except that two NaNs are the same.
func sameFloat(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return a == b
}

var oneLine = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// String returns a one-line description of the atom. The result never contains
// line breaks, whatever was stored in the record.
func (A *Atom) String() string {
	if A == nil {
		return "Atom(nil)"
	}
	var b strings.Builder
	if A.res != nil {
		b.WriteString("PDBAtom(")
	} else {
		b.WriteString("Atom(")
	}
	b.WriteString(A.symbol)
	b.WriteString(", charge: ")
	if A.HasCharge() {
		b.WriteString(ftoa(A.charge))
	} else {
		b.WriteString("unset")
	}
	b.WriteString(", 2D: ")
	if A.has2 {
		b.WriteString("[" + ftoa(A.p2.X) + " " + ftoa(A.p2.Y) + "]")
	} else {
		b.WriteString("absent")
	}
	b.WriteString(", 3D: ")
	writeVec(&b, A.p3, A.has3)
	b.WriteString(", fractional: ")
	writeVec(&b, A.fract, A.hasFract)
	if A.res != nil {
		b.WriteString(", residue: ")
		b.WriteString(A.res.String())
	}
	b.WriteString(")")
	return oneLine.Replace(b.String())
}

func writeVec(b *strings.Builder, v r3.Vec, present bool) {
	if !present {
		b.WriteString("absent")
		return
	}
	b.WriteString("[" + ftoa(v.X) + " " + ftoa(v.Y) + " " + ftoa(v.Z) + "]")
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
