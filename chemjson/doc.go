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

//Package chemjson implements serialization and unserialization of
//chemrec atom records. Its planned use is the communication of chemrec
//programs with other, independent programs which can be written in
//languages other than Go, one JSON object per line, for instance via
//UNIX pipes.
//Fields of a record that are absent or unset are omitted from the JSON,
//and an omitted field decodes as absent or unset, never as zero.
package chemjson
