/*
 * builder.go, part of chemrec.
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
	"io"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

// DefaultBuilder creates atom records, accepting only the symbols in its
// element table (unless it is permissive). It is safe for concurrent use
// once built, as it never changes after NewBuilder returns.
type DefaultBuilder struct {
	logger     *zap.Logger
	table      map[string]Element
	permissive bool
}

// BuilderOption configures a DefaultBuilder.
type BuilderOption func(*DefaultBuilder)

// WithLogger sets the logger. The default logs nothing.
func WithLogger(l *zap.Logger) BuilderOption {
	return func(B *DefaultBuilder) {
		if l != nil {
			B.logger = l
		}
	}
}

// WithElements adds the given symbols to the element table, with no data.
// The symbols must still be well formed.
func WithElements(symbols ...string) BuilderOption {
	return func(B *DefaultBuilder) {
		for _, s := range symbols {
			if _, ok := B.table[s]; !ok {
				B.table[s] = Element{Symbol: s}
			}
		}
	}
}

// WithElementTable adds (or replaces) the given elements in the table.
func WithElementTable(elements map[string]Element) BuilderOption {
	return func(B *DefaultBuilder) {
		for k, v := range elements {
			if v.Symbol == "" {
				v.Symbol = k
			}
			B.table[k] = v
		}
	}
}

// Permissive makes the builder accept any well-formed symbol, known or not.
func Permissive() BuilderOption {
	return func(B *DefaultBuilder) {
		B.permissive = true
	}
}

// NewBuilder returns a builder with the default element table, modified by opts.
func NewBuilder(opts ...BuilderOption) *DefaultBuilder {
	B := &DefaultBuilder{logger: zap.NewNop(), table: DefaultElements()}
	for _, o := range opts {
		o(B)
	}
	return B
}

// NewAtom returns a generic atom record. See the package-level NewAtom.
func (B *DefaultBuilder) NewAtom(symbol string, point3d ...r3.Vec) (*Atom, error) {
	if err := B.recognize(symbol); err != nil {
		err.Decorate("DefaultBuilder.NewAtom")
		return nil, err
	}
	A, err := NewAtom(symbol, point3d...)
	if err != nil {
		return nil, errDecorate(err, "DefaultBuilder.NewAtom")
	}
	B.logger.Debug("Created atom", zap.String("symbol", symbol), zap.Bool("point3d", len(point3d) > 0))
	return A, nil
}

// NewPDBAtom returns an atom record with an empty residue payload.
func (B *DefaultBuilder) NewPDBAtom(symbol string, point3d ...r3.Vec) (*Atom, error) {
	if err := B.recognize(symbol); err != nil {
		err.Decorate("DefaultBuilder.NewPDBAtom")
		return nil, err
	}
	A, err := NewPDBAtom(symbol, point3d...)
	if err != nil {
		return nil, errDecorate(err, "DefaultBuilder.NewPDBAtom")
	}
	B.logger.Debug("Created PDB atom", zap.String("symbol", symbol), zap.Bool("point3d", len(point3d) > 0))
	return A, nil
}

// Element returns the table entry for symbol.
func (B *DefaultBuilder) Element(symbol string) (Element, bool) {
	e, ok := B.table[symbol]
	return e, ok
}

// Masses returns the masses of all the atoms in mol, as known to this builder.
// It returns an error naming the first atom with no known mass.
func (B *DefaultBuilder) Masses(mol Atomer) ([]float64, error) {
	ret := make([]float64, mol.Len())
	for i := range ret {
		s := mol.Atom(i).Symbol()
		e, ok := B.table[s]
		if !ok || e.Mass == 0 {
			return nil, fmt.Errorf("chemrec: no mass known for atom %d (%s)", i, s)
		}
		ret[i] = e.Mass
	}
	return ret, nil
}

func (B *DefaultBuilder) recognize(symbol string) *InvalidIdentityError {
	if B.permissive {
		return nil
	}
	if _, ok := B.table[symbol]; ok {
		return nil
	}
	B.logger.Debug("Rejected unknown symbol", zap.String("symbol", symbol))
	return &InvalidIdentityError{Symbol: symbol, Reason: "not a recognized element"}
}

// LoadElements reads a YAML list of elements, i.e.
//
//	- symbol: Xx
//	  mass: 10.5
//	- symbol: Du
//
// and returns them as a table, ready for WithElementTable.
// Every symbol must be well formed.
func LoadElements(r io.Reader) (map[string]Element, error) {
	var list []Element
	if err := yaml.NewDecoder(r).Decode(&list); err != nil {
		if err == io.EOF {
			return map[string]Element{}, nil
		}
		return nil, fmt.Errorf("chemrec: reading element table: %w", err)
	}
	ret := make(map[string]Element, len(list))
	for _, e := range list {
		if err := checkSymbol(e.Symbol); err != nil {
			err.Decorate("LoadElements")
			return nil, err
		}
		ret[e.Symbol] = e
	}
	return ret, nil
}
