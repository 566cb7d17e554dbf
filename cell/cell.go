/*
 * cell.go, part of chemrec.
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

// Package cell converts atom records between Cartesian and fractional
// crystallographic coordinates, given the parameters of a unit cell.
// The a axis of the cell lies along x, and b lies in the xy plane.
package cell

import (
	"fmt"
	"math"

	chem "github.com/rmera/chemrec"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

func deg2Rad(f float64) float64 {
	return f * math.Pi / 180
}

// Cell is a crystallographic unit cell. Lengths are in A, angles in degrees.
// A Cell must be obtained from New and can't be changed afterwards;
// the methods of a zero Cell panic with ErrNotBuilt.
type Cell struct {
	a, b, c            float64
	alpha, beta, gamma float64
	orth               *mat.Dense //fractional to Cartesian
	frac               *mat.Dense //Cartesian to fractional
}

// PanicMsg is the type of the messages this package panics with.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const ErrNotBuilt = PanicMsg("cell: Cell not created with New")

func (C *Cell) check() {
	if C == nil || C.orth == nil || C.frac == nil {
		panic(ErrNotBuilt)
	}
}

// Lengths returns the a, b and c lengths of the cell.
func (C *Cell) Lengths() (a, b, c float64) {
	C.check()
	return C.a, C.b, C.c
}

// Angles returns the alpha, beta and gamma angles of the cell, in degrees.
func (C *Cell) Angles() (alpha, beta, gamma float64) {
	C.check()
	return C.alpha, C.beta, C.gamma
}

// New returns the cell with the given parameters, or an error if they
// don't describe a cell with positive volume.
func New(a, b, c, alpha, beta, gamma float64) (*Cell, error) {
	if a <= 0 || b <= 0 || c <= 0 {
		return nil, fmt.Errorf("cell: lengths must be positive, got %g %g %g", a, b, c)
	}
	for _, ang := range []float64{alpha, beta, gamma} {
		if ang <= 0 || ang >= 180 {
			return nil, fmt.Errorf("cell: angles must be between 0 and 180 degrees, got %g", ang)
		}
	}
	ca, cb, cg := math.Cos(deg2Rad(alpha)), math.Cos(deg2Rad(beta)), math.Cos(deg2Rad(gamma))
	sg := math.Sin(deg2Rad(gamma))
	vterm := 1 - ca*ca - cb*cb - cg*cg + 2*ca*cb*cg
	if vterm <= 0 {
		return nil, fmt.Errorf("cell: angles %g %g %g don't form a cell", alpha, beta, gamma)
	}
	vol := a * b * c * math.Sqrt(vterm)
	C := &Cell{a: a, b: b, c: c, alpha: alpha, beta: beta, gamma: gamma}
	C.orth = mat.NewDense(3, 3, []float64{
		a, b * cg, c * cb,
		0, b * sg, c * (ca - cb*cg) / sg,
		0, 0, vol / (a * b * sg),
	})
	C.frac = mat.NewDense(3, 3, nil)
	if err := C.frac.Inverse(C.orth); err != nil {
		return nil, fmt.Errorf("cell: can't invert the orthogonalization matrix: %w", err)
	}
	return C, nil
}

// Volume returns the volume of the cell in A^3.
func (C *Cell) Volume() float64 {
	C.check()
	return mat.Det(C.orth)
}

// ToCartesian returns the Cartesian coordinates of the fractional point f.
func (C *Cell) ToCartesian(f r3.Vec) r3.Vec {
	C.check()
	return mulVec(C.orth, f)
}

// ToFractional returns the fractional coordinates of the Cartesian point p.
func (C *Cell) ToFractional(p r3.Vec) r3.Vec {
	C.check()
	return mulVec(C.frac, p)
}

func mulVec(m *mat.Dense, v r3.Vec) r3.Vec {
	var out mat.VecDense
	out.MulVec(m, mat.NewVecDense(3, []float64{v.X, v.Y, v.Z}))
	return r3.Vec{X: out.AtVec(0), Y: out.AtVec(1), Z: out.AtVec(2)}
}

// Fractionalize sets the fractional point of every atom in mol that has a
// Cartesian one, and returns how many were set. Other atoms are left as they are.
func (C *Cell) Fractionalize(mol chem.Atomer) int {
	C.check()
	n := 0
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		if p, ok := at.Point3D(); ok {
			at.SetFractionalPoint3D(C.ToFractional(p))
			n++
		}
	}
	return n
}

// Cartesianize sets the Cartesian point of every atom in mol that has a
// fractional one, and returns how many were set.
func (C *Cell) Cartesianize(mol chem.Atomer) int {
	C.check()
	n := 0
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		if f, ok := at.FractionalPoint3D(); ok {
			at.SetPoint3D(C.ToCartesian(f))
			n++
		}
	}
	return n
}

// Wrap brings the fractional point of every atom that has one into [0,1).
func (C *Cell) Wrap(mol chem.Atomer) {
	C.check()
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		if f, ok := at.FractionalPoint3D(); ok {
			at.SetFractionalPoint3D(r3.Vec{X: wrap(f.X), Y: wrap(f.Y), Z: wrap(f.Z)})
		}
	}
}

func wrap(f float64) float64 {
	f -= math.Floor(f)
	if f >= 1 { //-1e-17 and the like
		f = 0
	}
	return f
}

func (C *Cell) String() string {
	if C == nil || C.orth == nil {
		return "Cell(not built)"
	}
	return fmt.Sprintf("Cell(a=%g b=%g c=%g alpha=%g beta=%g gamma=%g)", C.a, C.b, C.c, C.alpha, C.beta, C.gamma)
}
