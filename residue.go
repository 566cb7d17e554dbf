/*
 * residue.go, part of chemrec.
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
	"strings"
)

// Residue is the payload that turns an atom record into a PDB atom.
// It only identifies the atom within a biomolecule; it plays no part in
// the coordinates of the record.
type Residue struct {
	Record     string  `json:"record,omitempty"` //ATOM or HETATM
	Serial     int     `json:"serial,omitempty"`
	Name       string  `json:"name,omitempty"` //atom name, i.e. CA
	AltLoc     string  `json:"altloc,omitempty"`
	ResName    string  `json:"resname,omitempty"`
	ChainID    string  `json:"chain,omitempty"`
	ResSeq     int     `json:"resseq,omitempty"`
	ICode      string  `json:"icode,omitempty"`
	Occupancy  float64 `json:"occupancy,omitempty"`
	TempFactor float64 `json:"bfactor,omitempty"`
	SegID      string  `json:"segid,omitempty"`
	Het        bool    `json:"het,omitempty"`
	Oxt        bool    `json:"oxt,omitempty"` //terminal oxygen
}

func (R *Residue) equal(O *Residue) bool {
	if R == nil || O == nil {
		return R == O
	}
	return R.Record == O.Record && R.Serial == O.Serial && R.Name == O.Name &&
		R.AltLoc == O.AltLoc && R.ResName == O.ResName && R.ChainID == O.ChainID &&
		R.ResSeq == O.ResSeq && R.ICode == O.ICode && R.SegID == O.SegID &&
		R.Het == O.Het && R.Oxt == O.Oxt &&
		sameFloat(R.Occupancy, O.Occupancy) && sameFloat(R.TempFactor, O.TempFactor)
}

// String returns a short, space separated description of the residue.
func (R *Residue) String() string {
	fields := make([]string, 0, 6)
	for _, v := range []string{R.Record, fmt.Sprint(R.Serial), R.Name + R.AltLoc, R.ResName, R.ChainID} {
		if v = strings.TrimSpace(v); v != "" {
			fields = append(fields, v)
		}
	}
	fields = append(fields, fmt.Sprintf("%d%s", R.ResSeq, strings.TrimSpace(R.ICode)))
	return strings.Join(fields, " ")
}
