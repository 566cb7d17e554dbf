/*
 * interfaces.go, part of chemrec.
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

package chem

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Atomer is the basic interface for a set of atom records.
type Atomer interface {

	//Atom returns the Atom corresponding to the index i
	//of the set. Should panic if out of range.
	Atom(i int) *Atom

	Len() int
}

// Comparer is implemented by anything that can be checked for semantic
// equality against a value of unknown type. Compare must return false,
// not panic, when other is of an unrelated type.
type Comparer interface {
	Compare(other any) bool
}

// Masser can  return a slice with the masses of each atom in the set.
type Masser interface {
	Masses() ([]float64, error)
}

// Builder is the factory for atom records. Implementations decide which
// identity tokens they accept.
type Builder interface {
	//NewAtom returns a generic atom record.
	NewAtom(symbol string, point3d ...r3.Vec) (*Atom, error)

	//NewPDBAtom returns an atom record carrying a residue payload.
	NewPDBAtom(symbol string, point3d ...r3.Vec) (*Atom, error)
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call returns the decoration slice after the call. An empty string adds nothing.
}

// ErrInvalidIdentity is matched, through errors.Is, by every InvalidIdentityError.
var ErrInvalidIdentity = errors.New("invalid atom identity")

// InvalidIdentityError is returned when an atom record is requested with a
// symbol that is empty, malformed or, for a Builder, not recognized.
// It is the only error an atom record can produce, and only at construction.
type InvalidIdentityError struct {
	Symbol string
	Reason string
	deco   []string
}

func (E *InvalidIdentityError) Error() string {
	return fmt.Sprintf("chemrec: invalid atom identity %q: %s", E.Symbol, E.Reason)
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (E *InvalidIdentityError) Decorate(dec string) []string {
	if dec == "" {
		return E.deco
	}
	E.deco = append(E.deco, dec)
	return E.deco
}

// Critical is always true: the record was not created.
func (E *InvalidIdentityError) Critical() bool { return true }

// Is makes errors.Is(err, ErrInvalidIdentity) work.
func (E *InvalidIdentityError) Is(target error) bool {
	return target == ErrInvalidIdentity
}

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilAtom         = PanicMsg("chemrec: nil atom record")
	ErrIndexOutOfRange = PanicMsg("chemrec: atom index out of range")
)

// errDecorate decorates err with caller if it implements Error, and returns it.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var e Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}
