/*
 * geometric.go, part of chemrec.
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
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

const appzero float64 = 0.0000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

//positions returns the Cartesian points of the given atoms, or an error
//naming the first one that has none.
func positions(atoms ...*Atom) ([]r3.Vec, error) {
	ret := make([]r3.Vec, len(atoms))
	for i, at := range atoms {
		if at == nil {
			panic(ErrNilAtom)
		}
		p, ok := at.Point3D()
		if !ok {
			return nil, fmt.Errorf("chemrec: atom %d (%s) has no Cartesian coordinates", i, at.Symbol())
		}
		ret[i] = p
	}
	return ret, nil
}

//Distance returns the distance between the Cartesian points of a and b.
func Distance(a, b *Atom) (float64, error) {
	p, err := positions(a, b)
	if err != nil {
		return 0, err
	}
	return r3.Norm(r3.Sub(p[1], p[0])), nil
}

//vecAngle returns the angle in radians between v1 and v2.
func vecAngle(v1, v2 r3.Vec) float64 {
	argument := r3.Dot(v1, v2) / (r3.Norm(v1) * r3.Norm(v2))
	//Take care of floating point math errors
	if math.Abs(argument-1) <= appzero {
		argument = 1
	} else if math.Abs(argument+1) <= appzero {
		argument = -1
	}
	angle := math.Acos(argument)
	if math.Abs(angle) <= appzero {
		return 0.00
	}
	return angle
}

//Angle returns the a-b-c angle, in radians, with b at the vertex.
//The result is NaN if b coincides with a or c.
func Angle(a, b, c *Atom) (float64, error) {
	p, err := positions(a, b, c)
	if err != nil {
		return 0, err
	}
	return vecAngle(r3.Sub(p[0], p[1]), r3.Sub(p[2], p[1])), nil
}

//Dihedral returns the dihedral angle, in radians, between the planes
//abc and bcd.
func Dihedral(a, b, c, d *Atom) (float64, error) {
	p, err := positions(a, b, c, d)
	if err != nil {
		return 0, err
	}
	//bma=b minus a
	bma := r3.Sub(p[1], p[0])
	cmb := r3.Sub(p[2], p[1])
	dmc := r3.Sub(p[3], p[2])
	first := r3.Dot(r3.Scale(r3.Norm(cmb), bma), r3.Cross(cmb, dmc))
	second := r3.Dot(r3.Cross(bma, cmb), r3.Cross(cmb, dmc))
	return math.Atan2(first, second), nil
}

//CenterOfMass returns the center of mass of the atoms in mol, weighted by
//mass. If mass is nil, the standard masses of the elements are used.
func CenterOfMass(mol Atomer, mass []float64) (r3.Vec, error) {
	atoms := make([]*Atom, mol.Len())
	for i := range atoms {
		atoms[i] = mol.Atom(i)
	}
	if len(atoms) == 0 {
		return r3.Vec{}, fmt.Errorf("chemrec: no atoms to get the center of mass")
	}
	p, err := positions(atoms...)
	if err != nil {
		return r3.Vec{}, err
	}
	if mass == nil {
		mass = make([]float64, len(atoms))
		for i, at := range atoms {
			m, ok := Mass(at.Symbol())
			if !ok {
				return r3.Vec{}, fmt.Errorf("chemrec: no mass known for atom %d (%s)", i, at.Symbol())
			}
			mass[i] = m
		}
	}
	if len(mass) != len(p) {
		return r3.Vec{}, fmt.Errorf("chemrec: %d masses given for %d atoms", len(mass), len(p))
	}
	total := floats.Sum(mass)
	if total == 0 {
		return r3.Vec{}, fmt.Errorf("chemrec: total mass is zero")
	}
	var ret r3.Vec
	for i, v := range p {
		ret = r3.Add(ret, r3.Scale(mass[i], v))
	}
	return r3.Scale(1/total, ret), nil
}
