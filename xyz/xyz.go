/*
 * xyz.go, part of chemrec.
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

// Package xyz reads and writes atom records in the XYZ format. Only the
// symbol and the Cartesian coordinates of each record are written; charges,
// the other coordinate frames and residue data are not part of the format.
package xyz

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	chem "github.com/rmera/chemrec"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"
)

var oneLine = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// The atom count in the header is not trusted for preallocation beyond this.
const maxPrealloc = 1 << 16

// Write writes the atoms of mol to out as one XYZ frame. The comment goes in the
// second line, with any line breaks replaced by spaces.
// It fails, before writing anything, if an atom has no Cartesian coordinates.
func Write(out io.Writer, mol chem.Atomer, comment string) error {
	coords := make([]r3.Vec, mol.Len())
	for i := range coords {
		at := mol.Atom(i)
		p, ok := at.Point3D()
		if !ok {
			return fmt.Errorf("xyz: atom %d (%s) has no Cartesian coordinates", i, at.Symbol())
		}
		coords[i] = p
	}
	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "%d\n%s\n", len(coords), oneLine.Replace(comment))
	for i, c := range coords {
		fmt.Fprintf(w, "%-2s %14.6f %14.6f %14.6f\n", mol.Atom(i).Symbol(), c.X, c.Y, c.Z)
	}
	return w.Flush()
}

// Read reads one XYZ frame from in and builds the atoms with b. It returns the atoms and
// the comment line. Symbols in upper case (CL) are accepted and normalized (Cl).
// An optional logger receives debug messages about normalized symbols.
func Read(in io.Reader, b chem.Builder, logger ...*zap.Logger) (chem.Atoms, string, error) {
	log := zap.NewNop()
	if len(logger) > 0 && logger[0] != nil {
		log = logger[0]
	}
	xyz := bufio.NewReader(in)
	line, err := xyz.ReadString('\n')
	if err != nil && line == "" {
		return nil, "", fmt.Errorf("xyz: ill formatted file, can't read the number of atoms: %w", err)
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || natoms < 0 {
		return nil, "", fmt.Errorf("xyz: line 1: ill formatted number of atoms %q", strings.TrimSpace(line))
	}
	comment, err := xyz.ReadString('\n')
	if err != nil && (err != io.EOF || natoms > 0) {
		return nil, "", fmt.Errorf("xyz: line 2: missing comment line: %w", err)
	}
	comment = strings.TrimRight(comment, "\r\n")
	atoms := make(chem.Atoms, 0, min(natoms, maxPrealloc))
	for i := 0; i < natoms; i++ {
		lineno := i + 3
		line, err = xyz.ReadString('\n')
		if err != nil && (err != io.EOF || strings.TrimSpace(line) == "") {
			return nil, comment, fmt.Errorf("xyz: line %d: expected %d atoms, found %d", lineno, natoms, i)
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, comment, fmt.Errorf("xyz: line %d: ill formed atom line %q", lineno, strings.TrimSpace(line))
		}
		var c [3]float64
		for j := range c {
			c[j], err = strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, comment, fmt.Errorf("xyz: line %d: %w", lineno, err)
			}
		}
		symbol := normalize(fields[0])
		if symbol != fields[0] {
			log.Debug("Normalized symbol", zap.Int("line", lineno), zap.String("read", fields[0]), zap.String("symbol", symbol))
		}
		at, err := b.NewAtom(symbol, r3.Vec{X: c[0], Y: c[1], Z: c[2]})
		if err != nil {
			return nil, comment, fmt.Errorf("xyz: line %d: %w", lineno, err)
		}
		atoms = append(atoms, at)
	}
	return atoms, comment, nil
}

// normalize turns CL or cl into Cl. Anything that isn't all letters is returned as is,
// so the builder can reject it.
func normalize(s string) string {
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return s
		}
	}
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
