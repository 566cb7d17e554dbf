/*
 * atom_test.go, part of chemrec.
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
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// both variants must honour the same contracts, so most tests run on both.
var constructors = map[string]func(string, ...r3.Vec) (*Atom, error){
	"generic": NewAtom,
	"pdb":     NewPDBAtom,
}

func mustAtom(Te *testing.T, f func(string, ...r3.Vec) (*Atom, error), symbol string, p ...r3.Vec) *Atom {
	Te.Helper()
	a, err := f(symbol, p...)
	if err != nil {
		Te.Fatal(err)
	}
	return a
}

func TestNewAtom(Te *testing.T) {
	for name, f := range constructors {
		a := mustAtom(Te, f, "C")
		if a.Symbol() != "C" {
			Te.Errorf("%s: wrong symbol %q", name, a.Symbol())
		}
		if _, ok := a.Point2D(); ok {
			Te.Errorf("%s: a new atom should have no 2D point", name)
		}
		if _, ok := a.Point3D(); ok {
			Te.Errorf("%s: a new atom should have no 3D point", name)
		}
		if _, ok := a.FractionalPoint3D(); ok {
			Te.Errorf("%s: a new atom should have no fractional point", name)
		}
		if a.HasCharge() {
			Te.Errorf("%s: a new atom should have no charge", name)
		}
	}
}

func TestNewAtomPoint3D(Te *testing.T) {
	for name, f := range constructors {
		p := r3.Vec{X: 1, Y: 2, Z: 3}
		a := mustAtom(Te, f, "C", p)
		got, ok := a.Point3D()
		if !ok {
			Te.Fatalf("%s: 3D point absent", name)
		}
		if diff := cmp.Diff(p, got); diff != "" {
			Te.Errorf("%s: 3D point mismatch (-want +got):\n%s", name, diff)
		}
		p.X = 10 //the record must hold its own copy.
		if got, _ := a.Point3D(); got.X != 1 {
			Te.Errorf("%s: the record aliases the caller's point", name)
		}
		if a.HasPoint2D() || a.HasFractionalPoint3D() {
			Te.Errorf("%s: only the 3D point should be present", name)
		}
	}
}

func TestInvalidIdentity(Te *testing.T) {
	for _, s := range []string{"", "c", "CL", "Abcd", "C1", "C\n", " C"} {
		a, err := NewAtom(s)
		if a != nil || err == nil {
			Te.Errorf("symbol %q should be rejected", s)
			continue
		}
		var ierr *InvalidIdentityError
		if !errors.As(err, &ierr) {
			Te.Errorf("symbol %q: expected an InvalidIdentityError, got %T", s, err)
		}
		if !errors.Is(err, ErrInvalidIdentity) {
			Te.Errorf("symbol %q: errors.Is should match ErrInvalidIdentity", s)
		}
		if ierr != nil && ierr.Symbol != s {
			Te.Errorf("error carries symbol %q, expected %q", ierr.Symbol, s)
		}
	}
	_, err := NewPDBAtom("")
	var ierr *InvalidIdentityError
	if !errors.As(err, &ierr) {
		Te.Fatalf("expected an InvalidIdentityError, got %v", err)
	}
	if d := ierr.Decorate(""); len(d) != 2 || d[0] != "NewAtom" || d[1] != "NewPDBAtom" {
		Te.Errorf("unexpected decoration %v", d)
	}
}

func TestFractionalComponentSetters(Te *testing.T) {
	for name, f := range constructors {
		a := mustAtom(Te, f, "C")
		a.SetFractX3D(0.5)
		a.SetFractY3D(0.5)
		a.SetFractZ3D(0.5)
		p, ok := a.FractionalPoint3D()
		if !ok || p != (r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}) {
			Te.Errorf("%s: expected fractional (0.5,0.5,0.5), got %v (%v)", name, p, ok)
		}
		if a.HasPoint3D() {
			Te.Errorf("%s: fractional setters must not touch the Cartesian point", name)
		}
	}
}

func TestCartesianComponentSetters(Te *testing.T) {
	for name, f := range constructors {
		a := mustAtom(Te, f, "C")
		a.SetX3D(1.0)
		if p, ok := a.Point3D(); !ok || p != (r3.Vec{X: 1}) {
			Te.Errorf("%s: expected (1,0,0), got %v (%v)", name, p, ok)
		}
		b := mustAtom(Te, f, "C")
		b.SetY3D(2.0)
		c := mustAtom(Te, f, "C")
		c.SetZ3D(3.0)
		if p, _ := b.Point3D(); p != (r3.Vec{Y: 2}) {
			Te.Errorf("%s: expected (0,2,0), got %v", name, p)
		}
		if p, _ := c.Point3D(); p != (r3.Vec{Z: 3}) {
			Te.Errorf("%s: expected (0,0,3), got %v", name, p)
		}
		if a.HasFractionalPoint3D() || b.HasFractionalPoint3D() || c.HasFractionalPoint3D() {
			Te.Errorf("%s: Cartesian setters must not touch the fractional point", name)
		}
		a.SetX3D(1.0)
		a.SetX3D(1.0)
		if p, _ := a.Point3D(); p != (r3.Vec{X: 1}) {
			Te.Errorf("%s: setting twice should just overwrite, got %v", name, p)
		}
	}
}

func TestPlanarSetters(Te *testing.T) {
	a := mustAtom(Te, NewAtom, "O")
	a.SetY2D(-1.5)
	if p, ok := a.Point2D(); !ok || p != (r2.Vec{Y: -1.5}) {
		Te.Errorf("expected (0,-1.5), got %v (%v)", p, ok)
	}
	a.SetPoint2D(r2.Vec{X: 3, Y: 4})
	a.SetX2D(7)
	if p, _ := a.Point2D(); p != (r2.Vec{X: 7, Y: 4}) {
		Te.Errorf("expected (7,4), got %v", p)
	}
	a.ClearPoint2D()
	if a.HasPoint2D() {
		Te.Error("ClearPoint2D should make the point absent")
	}
}

func TestFramesIndependent(Te *testing.T) {
	a := mustAtom(Te, NewAtom, "Fe")
	a.SetPoint3D(r3.Vec{X: 1, Y: 1, Z: 1})
	a.SetFractionalPoint3D(r3.Vec{X: 0.1, Y: 0.2, Z: 0.3})
	a.SetX3D(9)
	if p, _ := a.FractionalPoint3D(); p != (r3.Vec{X: 0.1, Y: 0.2, Z: 0.3}) {
		Te.Errorf("changing the Cartesian point changed the fractional one: %v", p)
	}
	a.SetFractZ3D(0.9)
	if p, _ := a.Point3D(); p != (r3.Vec{X: 9, Y: 1, Z: 1}) {
		Te.Errorf("changing the fractional point changed the Cartesian one: %v", p)
	}
	a.ClearPoint3D()
	if !a.HasFractionalPoint3D() {
		Te.Error("clearing the Cartesian point cleared the fractional one")
	}
	a.SetZ3D(2)
	if p, _ := a.Point3D(); p != (r3.Vec{Z: 2}) {
		Te.Errorf("a cleared point should come back from the origin, got %v", p)
	}
}

func TestZeroIsNotAbsent(Te *testing.T) {
	a := mustAtom(Te, NewAtom, "N")
	a.SetPoint3D(r3.Vec{})
	if p, ok := a.Point3D(); !ok || p != (r3.Vec{}) {
		Te.Errorf("(0,0,0) should be present, got %v (%v)", p, ok)
	}
	a.SetCharge(0)
	if !a.HasCharge() || a.Charge() != 0 {
		Te.Errorf("a zero charge should be set, got %v", a.Charge())
	}
}

func TestDefaultChargeValue(Te *testing.T) {
	for name, f := range constructors {
		a := mustAtom(Te, f, "C")
		if math.Float64bits(a.Charge()) != math.Float64bits(Unset) {
			Te.Errorf("%s: default charge %v is not the Unset sentinel", name, a.Charge())
		}
		if !IsUnset(a.Charge()) || a.Charge() == 0 {
			Te.Errorf("%s: default charge should be unset, not zero", name)
		}
		a.SetCharge(-0.42)
		if a.Charge() != -0.42 {
			Te.Errorf("%s: charge not stored", name)
		}
		a.ClearCharge()
		if a.HasCharge() {
			Te.Errorf("%s: ClearCharge should unset the charge", name)
		}
	}
}

func TestSetChargeNaN(Te *testing.T) {
	a := mustAtom(Te, NewAtom, "C")
	a.SetCharge(1.5)
	a.SetCharge(math.Float64frombits(0x7ff8000000000abc)) //a NaN other than Unset
	if a.HasCharge() {
		Te.Error("setting a NaN should unset the charge")
	}
	if math.Float64bits(a.Charge()) != math.Float64bits(Unset) {
		Te.Errorf("a NaN charge should be stored as Unset, got bits %x", math.Float64bits(a.Charge()))
	}
}

func TestClone(Te *testing.T) {
	for name, f := range constructors {
		a := mustAtom(Te, f, "C")
		var c Comparer = a.Clone()
		if _, ok := c.(*Atom); !ok {
			Te.Errorf("%s: a clone should be an atom record", name)
		}
		if !a.Compare(c) {
			Te.Errorf("%s: a clone should compare equal to its source", name)
		}
	}
}

func TestClonePoint3D(Te *testing.T) {
	for name, f := range constructors {
		a := mustAtom(Te, f, "C")
		a.SetPoint3D(r3.Vec{X: 2, Y: 3, Z: 4})
		clone := a.Clone()
		a.SetX3D(5)
		if p, _ := clone.Point3D(); p.X != 2.0 {
			Te.Errorf("%s: clone's X changed to %v", name, p.X)
		}
		clone.SetY3D(8)
		if p, _ := a.Point3D(); p.Y != 3.0 {
			Te.Errorf("%s: source's Y changed to %v", name, p.Y)
		}
	}
}

func TestCloneFractionalPoint3D(Te *testing.T) {
	for name, f := range constructors {
		a := mustAtom(Te, f, "C")
		a.SetFractionalPoint3D(r3.Vec{X: 2, Y: 3, Z: 4})
		clone := a.Clone()
		a.SetFractX3D(5)
		if p, _ := clone.FractionalPoint3D(); p.X != 2.0 {
			Te.Errorf("%s: clone's fractional X changed to %v", name, p.X)
		}
	}
}

func TestClonePoint2DAndResidue(Te *testing.T) {
	a := mustAtom(Te, NewPDBAtom, "N")
	a.SetPoint2D(r2.Vec{X: 1, Y: 1})
	a.SetResidue(Residue{Record: "ATOM", Serial: 1, Name: "N", ResName: "ALA", ChainID: "A", ResSeq: 1})
	clone := a.Clone()
	a.SetY2D(6)
	r, _ := a.Residue()
	r.ResName = "GLY"
	a.SetResidue(r)
	if p, _ := clone.Point2D(); p.Y != 1 {
		Te.Errorf("clone's 2D Y changed to %v", p.Y)
	}
	cr, _ := clone.Residue()
	if cr.ResName != "ALA" {
		Te.Errorf("clone's residue changed to %q", cr.ResName)
	}
	got, _ := a.Residue()
	got.ChainID = "Z" //a copy, the record keeps its own.
	if again, _ := a.Residue(); again.ChainID != "A" {
		Te.Error("Residue should return a copy")
	}
}

// The scenario from start to end: fractional X only, clone, then change Y on the source.
func TestFractionalCloneScenario(Te *testing.T) {
	a := mustAtom(Te, NewPDBAtom, "C")
	a.SetFractX3D(0.5)
	if p, ok := a.FractionalPoint3D(); !ok || p != (r3.Vec{X: 0.5}) {
		Te.Fatalf("expected fractional (0.5,0,0), got %v (%v)", p, ok)
	}
	if a.HasPoint3D() || a.HasPoint2D() || a.HasCharge() {
		Te.Fatal("only the fractional point should be set")
	}
	clone := a.Clone()
	a.SetFractY3D(0.9)
	if p, _ := clone.FractionalPoint3D(); p != (r3.Vec{X: 0.5}) {
		Te.Errorf("clone's fractional point changed to %v", p)
	}
}

func TestCompare(Te *testing.T) {
	for name, f := range constructors {
		a := mustAtom(Te, f, "C")
		if !a.Compare(a) {
			Te.Errorf("%s: an atom should compare equal to itself", name)
		}
		h := mustAtom(Te, f, "H")
		if a.Compare(h) {
			Te.Errorf("%s: C and H should not compare equal", name)
		}
		if a.Compare("C") {
			Te.Errorf("%s: an atom should not compare equal to a string", name)
		}
		var nilAtom *Atom
		if a.Compare(nil) || a.Compare(nilAtom) || a.Compare(42) {
			Te.Errorf("%s: comparing to nil or to an int should give false", name)
		}
		if nilAtom.Compare(a) {
			Te.Errorf("%s: a nil atom compares false", name)
		}
	}
	generic := mustAtom(Te, NewAtom, "C")
	pdb := mustAtom(Te, NewPDBAtom, "C")
	if generic.Compare(pdb) || pdb.Compare(generic) {
		Te.Error("a generic atom and a PDB atom should not compare equal")
	}
	b := generic.Clone()
	b.SetCharge(0.1)
	if generic.Compare(b) {
		Te.Error("atoms with different charges should not compare equal")
	}
	b = generic.Clone()
	b.SetFractX3D(0)
	if generic.Compare(b) {
		Te.Error("an absent and a present (0,0,0) point should not compare equal")
	}
	if !generic.Compare(*generic) {
		Te.Error("an atom should compare equal to a copy of its value")
	}
}

func TestToString(Te *testing.T) {
	full := mustAtom(Te, NewPDBAtom, "C")
	full.SetPoint2D(r2.Vec{X: 1, Y: 2})
	full.SetPoint3D(r3.Vec{X: 1, Y: 2, Z: 3})
	full.SetFractionalPoint3D(r3.Vec{X: 0.1, Y: 0.2, Z: 0.3})
	full.SetCharge(-1)
	full.SetResidue(Residue{Record: "HETATM\r\n", Name: "C1\n", ResName: "LIG\r", ChainID: "\n"})
	atoms := []*Atom{mustAtom(Te, NewAtom, "C"), mustAtom(Te, NewPDBAtom, "C"), full}
	for _, a := range atoms {
		s := a.String()
		if strings.ContainsAny(s, "\r\n") {
			Te.Errorf("String() contains a line break: %q", s)
		}
		if !strings.Contains(s, "C") {
			Te.Errorf("String() should mention the symbol: %q", s)
		}
	}
	if s := atoms[0].String(); !strings.Contains(s, "charge: unset") || !strings.Contains(s, "3D: absent") {
		Te.Errorf("unexpected description for an empty atom: %q", s)
	}
}

func TestCloneNilPanics(Te *testing.T) {
	defer func() {
		if r := recover(); r != ErrNilAtom {
			Te.Errorf("expected %v, got %v", ErrNilAtom, r)
		}
	}()
	var a *Atom
	a.Clone()
}
