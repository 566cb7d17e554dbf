/*
 * depiction.go, part of chemrec.
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

// Package chemplot draws the 2D depiction coordinates of atom records.
package chemplot

import (
	"fmt"
	"image/color"
	"path/filepath"
	"sort"

	chem "github.com/rmera/chemrec"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const defaultExt = ".png"

// Depiction plots the 2D points of the atoms in mol, one series per element,
// with each atom labeled by its symbol. Atoms with no 2D point are skipped.
// The atoms with indexes in tag (at most 4) are drawn with a distinct glyph.
// If plotname has no extension, a PNG is written.
func Depiction(mol chem.Atomer, tag []int, title, plotname string) error {
	series := make(map[string]plotter.XYs)
	var all plotter.XYs
	var labels []string
	var tagged []plotter.XY
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		p, ok := at.Point2D()
		if !ok {
			continue
		}
		xy := plotter.XY{X: p.X, Y: p.Y}
		all = append(all, xy)
		labels = append(labels, at.Symbol())
		if isInInt(tag, i) {
			tagged = append(tagged, xy)
			continue
		}
		series[at.Symbol()] = append(series[at.Symbol()], xy)
	}
	if len(all) == 0 {
		return fmt.Errorf("chemplot: no atom with 2D coordinates to depict")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"
	p.Add(plotter.NewGrid())
	symbols := make([]string, 0, len(series))
	for s := range series {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	for key, s := range symbols {
		sc, err := plotter.NewScatter(series[s])
		if err != nil {
			return err
		}
		r, g, b := colors(key, len(symbols))
		sc.GlyphStyle.Color = color.RGBA{R: r, G: g, B: b, A: 255}
		sc.GlyphStyle.Radius = vg.Points(4)
		p.Add(sc)
		p.Legend.Add(s, sc)
	}
	var tagerr error
	for i, xy := range tagged {
		sc, err := plotter.NewScatter(plotter.XYs{xy})
		if err != nil {
			return err
		}
		sc.GlyphStyle.Shape, err = getShape(i)
		if err != nil && tagerr == nil {
			tagerr = err
		}
		sc.GlyphStyle.Color = color.Black
		sc.GlyphStyle.Radius = vg.Points(5)
		p.Add(sc)
	}
	l, err := plotter.NewLabels(plotter.XYLabels{XYs: all, Labels: labels})
	if err != nil {
		return err
	}
	p.Add(l)
	if filepath.Ext(plotname) == "" {
		plotname += defaultExt
	}
	if err := p.Save(5*vg.Inch, 5*vg.Inch, plotname); err != nil {
		return err
	}
	return tagerr
}
