/*
 * doc.go, part of chemrec.
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

/*
Package chem is the main package of the chemrec library. It provides the atom record,
the per-atom data every other part of a modelling program relies on: an element symbol,
a partial charge and positions in up to three coordinate frames.

	**Coordinate frames**

    Planar (2D) coordinates, for depictions, as gonum r2.Vec.

    Cartesian (3D) coordinates, as gonum r3.Vec.

    Fractional crystallographic coordinates, also as r3.Vec. They are a frame of
	their own: setting them never touches the Cartesian ones, and vice versa.
	Use the cell package to convert between the two.

Each frame is either absent or present. Absent is not the origin: the getters return
a bool that tells them apart. The component setters (SetX3D, SetFractY3D...) place an
absent point at the origin before setting the component.

The charge of a new atom is Unset, a NaN, never 0. Use HasCharge or IsUnset.

Coordinates are stored by value, so two atom records never share them, and Clone
returns a record fully independent of the original.

Atom records with a Residue payload are "PDB atoms". Everything above applies to them
the same way; Compare only considers two records equal if both or neither are PDB atoms.

Atom records are not safe for concurrent mutation. Give each goroutine its own (Clone
is cheap) or lock around a shared one.

The subpackages chemjson, xyz and chemplot read, write and draw atom records; v3 and
cell do the linear algebra.
*/
package chem
