/*
 * cell_test.go, part of chemrec.
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

package cell

import (
	"math"
	"testing"

	chem "github.com/rmera/chemrec"
	"gonum.org/v1/gonum/spatial/r3"
)

func near(a, b r3.Vec, tol float64) bool {
	return r3.Norm(r3.Sub(a, b)) < tol
}

func TestOrthorhombic(Te *testing.T) {
	C, err := New(10, 20, 30, 90, 90, 90)
	if err != nil {
		Te.Fatal(err)
	}
	p := C.ToCartesian(r3.Vec{X: 0.5, Y: 0.5, Z: 0.5})
	if !near(p, r3.Vec{X: 5, Y: 10, Z: 15}, 1e-9) {
		Te.Errorf("expected (5,10,15), got %v", p)
	}
	if v := C.Volume(); math.Abs(v-6000) > 1e-6 {
		Te.Errorf("expected volume 6000, got %v", v)
	}
}

func TestRoundTrip(Te *testing.T) {
	C, err := New(5.4, 7.1, 9.3, 81, 95.5, 103.2)
	if err != nil {
		Te.Fatal(err)
	}
	f := r3.Vec{X: 0.13, Y: -0.4, Z: 1.7}
	back := C.ToFractional(C.ToCartesian(f))
	if !near(f, back, 1e-9) {
		Te.Errorf("round trip gave %v, expected %v", back, f)
	}
}

func TestBadCells(Te *testing.T) {
	bad := [][6]float64{
		{0, 1, 1, 90, 90, 90},
		{1, 1, 1, 0, 90, 90},
		{1, 1, 1, 90, 90, 180},
		{1, 1, 1, 120, 120, 120},
	}
	for _, b := range bad {
		if _, err := New(b[0], b[1], b[2], b[3], b[4], b[5]); err == nil {
			Te.Errorf("%v should not be a valid cell", b)
		}
	}
}

func TestFractionalizeAtoms(Te *testing.T) {
	C, err := New(10, 10, 10, 90, 90, 90)
	if err != nil {
		Te.Fatal(err)
	}
	a, _ := chem.NewAtom("Na", r3.Vec{X: 5, Y: 2.5, Z: 12})
	b, _ := chem.NewAtom("Cl")
	b.SetFractionalPoint3D(r3.Vec{X: 0.5, Y: 0.5, Z: 0.5})
	mol := chem.Atoms{a, b}
	if n := C.Fractionalize(mol); n != 1 {
		Te.Errorf("expected 1 atom fractionalized, got %d", n)
	}
	if f, _ := a.FractionalPoint3D(); !near(f, r3.Vec{X: 0.5, Y: 0.25, Z: 1.2}, 1e-9) {
		Te.Errorf("wrong fractional point %v", f)
	}
	if b.HasPoint3D() {
		Te.Error("an atom with no Cartesian point should be left alone")
	}
	a.SetX3D(0) //the frames are independent after the conversion
	if f, _ := a.FractionalPoint3D(); !near(f, r3.Vec{X: 0.5, Y: 0.25, Z: 1.2}, 1e-9) {
		Te.Errorf("the fractional point followed the Cartesian one: %v", f)
	}
	C.Wrap(mol)
	if f, _ := a.FractionalPoint3D(); !near(f, r3.Vec{X: 0.5, Y: 0.25, Z: 0.2}, 1e-9) {
		Te.Errorf("wrong wrapped point %v", f)
	}
	if n := C.Cartesianize(mol); n != 2 {
		Te.Errorf("expected 2 atoms cartesianized, got %d", n)
	}
	if p, _ := b.Point3D(); !near(p, r3.Vec{X: 5, Y: 5, Z: 5}, 1e-9) {
		Te.Errorf("wrong Cartesian point %v", p)
	}
}

func TestParameters(Te *testing.T) {
	C, err := New(5.4, 7.1, 9.3, 81, 95.5, 103.2)
	if err != nil {
		Te.Fatal(err)
	}
	if a, b, c := C.Lengths(); a != 5.4 || b != 7.1 || c != 9.3 {
		Te.Errorf("wrong lengths %g %g %g", a, b, c)
	}
	if al, be, ga := C.Angles(); al != 81 || be != 95.5 || ga != 103.2 {
		Te.Errorf("wrong angles %g %g %g", al, be, ga)
	}
}

func TestZeroCellPanics(Te *testing.T) {
	var Z Cell
	calls := map[string]func(){
		"Volume":       func() { Z.Volume() },
		"ToCartesian":  func() { Z.ToCartesian(r3.Vec{X: 1}) },
		"ToFractional": func() { Z.ToFractional(r3.Vec{X: 1}) },
		"Lengths":      func() { Z.Lengths() },
		"Wrap":         func() { Z.Wrap(chem.Atoms{}) },
	}
	for name, f := range calls {
		func() {
			defer func() {
				if r := recover(); r != ErrNotBuilt {
					Te.Errorf("%s: expected a panic with ErrNotBuilt, got %v", name, r)
				}
			}()
			f()
		}()
	}
	if s := Z.String(); s != "Cell(not built)" {
		Te.Errorf("unexpected String for a zero cell: %q", s)
	}
}
