/*
 * chem.go, part of chemrec.
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
	"fmt"

	v3 "github.com/rmera/chemrec/v3"
	"gonum.org/v1/gonum/floats"
)

var (
	_ Atomer   = Atoms(nil)
	_ Masser   = Atoms(nil)
	_ Comparer = (*Atom)(nil)
	_ Builder  = (*DefaultBuilder)(nil)
)

// Atoms is an ordered set of atom records. It is the simplest Atomer, and
// what the file readers in this library return. It knows nothing about bonds.
type Atoms []*Atom

// Len returns the number of atoms in the set.
func (A Atoms) Len() int {
	return len(A)
}

// Atom returns the Atom corresponding to the index i. Panics if
// out of range.
func (A Atoms) Atom(i int) *Atom {
	if i < 0 || i >= len(A) {
		panic(ErrIndexOutOfRange)
	}
	return A[i]
}

// Clone returns a deep copy of the set. Mutating an atom in the copy
// never affects the original, and vice versa.
func (A Atoms) Clone() Atoms {
	if A == nil {
		return nil
	}
	ret := make(Atoms, len(A))
	for i, at := range A {
		ret[i] = at.Clone()
	}
	return ret
}

// Compare returns true if other is an Atoms (or *Atoms) of the same length whose
// atoms compare equal one by one.
func (A Atoms) Compare(other any) bool {
	var B Atoms
	switch o := other.(type) {
	case Atoms:
		B = o
	case *Atoms:
		if o == nil {
			return false
		}
		B = *o
	default:
		return false
	}
	if len(A) != len(B) {
		return false
	}
	for i := range A {
		if !A[i].Compare(B[i]) {
			return false
		}
	}
	return true
}

// Coords returns the Cartesian coordinates of all atoms, one per row.
// It returns an error naming the first atom with no Cartesian position.
func (A Atoms) Coords() (*v3.Matrix, error) {
	if len(A) == 0 {
		return nil, fmt.Errorf("chemrec: no atoms to take coordinates from")
	}
	ret := v3.Zeros(len(A))
	for i, at := range A {
		p, ok := at.Point3D()
		if !ok {
			return nil, fmt.Errorf("chemrec: atom %d (%s) has no Cartesian coordinates", i, at.Symbol())
		}
		ret.SetVec(i, p)
	}
	return ret, nil
}

// SetCoords sets the Cartesian coordinates of each atom to the corresponding row of coords.
func (A Atoms) SetCoords(coords *v3.Matrix) error {
	if coords == nil {
		return fmt.Errorf("chemrec: nil coordinates")
	}
	if coords.NVecs() != len(A) {
		return fmt.Errorf("chemrec: %d coordinates given for %d atoms", coords.NVecs(), len(A))
	}
	for i, at := range A {
		at.SetPoint3D(coords.Vec(i))
	}
	return nil
}

// Masses returns the standard masses of the atoms. It returns an error
// if one of them is not known.
func (A Atoms) Masses() ([]float64, error) {
	ret := make([]float64, len(A))
	for i, at := range A {
		m, ok := Mass(at.Symbol())
		if !ok {
			return nil, fmt.Errorf("chemrec: no mass known for atom %d (%s)", i, at.Symbol())
		}
		ret[i] = m
	}
	return ret, nil
}

// Charge returns the sum of the assigned partial charges, and false if
// no atom has a charge assigned. Atoms with Unset charge are ignored.
func (A Atoms) Charge() (float64, bool) {
	q := make([]float64, 0, len(A))
	for _, at := range A {
		if at.HasCharge() {
			q = append(q, at.Charge())
		}
	}
	if len(q) == 0 {
		return Unset, false
	}
	return floats.Sum(q), true
}
