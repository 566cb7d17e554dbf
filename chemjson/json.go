/*
 * json.go, part of chemrec.
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

package chemjson

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	chem "github.com/rmera/chemrec"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Atom is the ready-to-serialize form of an atom record.
// nil fields are absent (or, for the charge, unset).
type Atom struct {
	Symbol     string        `json:"symbol"`
	Charge     *float64      `json:"charge,omitempty"`
	Point2D    []float64     `json:"point2d,omitempty"`
	Point3D    []float64     `json:"point3d,omitempty"`
	Fractional []float64     `json:"fractional,omitempty"`
	Residue    *chem.Residue `json:"residue,omitempty"`
}

// FromAtom returns the serializable form of a.
func FromAtom(a *chem.Atom) *Atom {
	J := &Atom{Symbol: a.Symbol()}
	if a.HasCharge() {
		q := a.Charge()
		J.Charge = &q
	}
	if p, ok := a.Point2D(); ok {
		J.Point2D = []float64{p.X, p.Y}
	}
	if p, ok := a.Point3D(); ok {
		J.Point3D = []float64{p.X, p.Y, p.Z}
	}
	if p, ok := a.FractionalPoint3D(); ok {
		J.Fractional = []float64{p.X, p.Y, p.Z}
	}
	if r, ok := a.Residue(); ok {
		J.Residue = &r
	}
	return J
}

// ToAtom builds the atom record described by J with the builder b.
// A record with a residue is built with b.NewPDBAtom.
func (J *Atom) ToAtom(b chem.Builder) (*chem.Atom, error) {
	var a *chem.Atom
	var err error
	if J.Residue != nil {
		a, err = b.NewPDBAtom(J.Symbol)
	} else {
		a, err = b.NewAtom(J.Symbol)
	}
	if err != nil {
		return nil, err
	}
	if J.Residue != nil {
		a.SetResidue(*J.Residue)
	}
	if J.Charge != nil {
		a.SetCharge(*J.Charge)
	}
	if J.Point2D != nil {
		if len(J.Point2D) != 2 {
			return nil, fmt.Errorf("chemjson: point2d needs 2 components, got %d", len(J.Point2D))
		}
		a.SetPoint2D(r2.Vec{X: J.Point2D[0], Y: J.Point2D[1]})
	}
	if J.Point3D != nil {
		p, err := vec3("point3d", J.Point3D)
		if err != nil {
			return nil, err
		}
		a.SetPoint3D(p)
	}
	if J.Fractional != nil {
		p, err := vec3("fractional", J.Fractional)
		if err != nil {
			return nil, err
		}
		a.SetFractionalPoint3D(p)
	}
	return a, nil
}

func vec3(field string, s []float64) (r3.Vec, error) {
	if len(s) != 3 {
		return r3.Vec{}, fmt.Errorf("chemjson: %s needs 3 components, got %d", field, len(s))
	}
	return r3.Vec{X: s[0], Y: s[1], Z: s[2]}, nil
}

// Marshal returns the JSON form of a.
func Marshal(a *chem.Atom) ([]byte, error) {
	return json.Marshal(FromAtom(a))
}

// Unmarshal builds an atom record from its JSON form, using the builder b.
func Unmarshal(data []byte, b chem.Builder) (*chem.Atom, error) {
	J := new(Atom)
	if err := json.Unmarshal(data, J); err != nil {
		return nil, err
	}
	return J.ToAtom(b)
}

// An easily JSON-serializable error type,
type Error struct {
	deco          []string
	IsError       bool   //If this is false (no error) all the other fields will be at their zero-values.
	InProcess     bool   //was it in reading or building the atoms?
	InPostProcess bool   //was it in preparing the output?
	Atom          int    //Which atom, counting from 0, or -1
	Function      string //which go function gave the error
	Message       string //the error itself
}

// Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

// Marshal serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - "))
	}
	return ret
}

// NewError takes an error and some additional info to create a json-marshal-ble error.
// where is "postprocess" for errors preparing the output, anything else means "process".
func NewError(where, function string, err error) *Error {
	jerr := new(Error)
	jerr.IsError = true
	jerr.Atom = -1
	if where == "postprocess" {
		jerr.InPostProcess = true
	} else {
		jerr.InProcess = true
	}
	jerr.Function = function
	jerr.Message = err.Error()
	return jerr
}

// EncodeAtoms encodes every atom of mol, one JSON object each, with enc.
func EncodeAtoms(mol chem.Atomer, enc *json.Encoder) *Error {
	const funcname = "EncodeAtoms"
	if mol == nil {
		return nil //Its assumed to be intentional.
	}
	for i := 0; i < mol.Len(); i++ {
		if err := enc.Encode(FromAtom(mol.Atom(i))); err != nil {
			jerr := NewError("postprocess", funcname, err)
			jerr.Atom = i
			return jerr
		}
	}
	return nil
}

// SendAtoms encodes mol and writes it to out.
func SendAtoms(mol chem.Atomer, out io.Writer) *Error {
	return EncodeAtoms(mol, json.NewEncoder(out))
}

// DecodeAtoms reads atomnumber atoms, one JSON object per line, from stream, and builds
// them with b. If atomnumber is negative it reads until the end of the stream.
// Blank lines are skipped.
func DecodeAtoms(stream *bufio.Reader, b chem.Builder, atomnumber int) (chem.Atoms, *Error) {
	const funcname = "DecodeAtoms"
	var atoms chem.Atoms
	if atomnumber > 0 {
		atoms = make(chem.Atoms, 0, atomnumber)
	}
	for atomnumber < 0 || len(atoms) < atomnumber {
		line, err := stream.ReadBytes('\n')
		if len(bytes.TrimSpace(line)) > 0 {
			at, err2 := Unmarshal(line, b)
			if err2 != nil {
				jerr := NewError("process", funcname, err2)
				jerr.Atom = len(atoms)
				return atoms, jerr
			}
			atoms = append(atoms, at)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return atoms, NewError("process", funcname, err)
		}
	}
	if atomnumber > 0 && len(atoms) < atomnumber {
		return atoms, NewError("process", funcname, fmt.Errorf("expected %d atoms, read %d", atomnumber, len(atoms)))
	}
	return atoms, nil
}
