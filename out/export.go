// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"encoding/csv"
	goio "io"
	"strconv"

	"github.com/cpmech/gosl/chk"
	"github.com/xuri/excelize/v2"

	"github.com/jghorbani2/boussinesq-p/inp"
)

// Table returns the header and rows of results
//  Lines:            s, x, y, z, components...
//  Grids:            x, y, z, components...
//  Trapezoid grids:  x, z, sigma_z (plane-strain section)
func (o *Results) Table() (header []string, rows [][]float64) {
	var cols [][]float64
	switch {
	case o.S != nil:
		header = []string{"s", "x", "y", "z"}
		cols = [][]float64{o.S, o.X, o.Y, o.Z}
	case o.Kind == inp.KindTrapezoid:
		header = []string{"x", "z"}
		cols = [][]float64{o.X, o.Z}
	default:
		header = []string{"x", "y", "z"}
		cols = [][]float64{o.X, o.Y, o.Z}
	}
	for _, l := range o.Labels {
		header = append(header, l)
		cols = append(cols, o.Comps[l])
	}
	rows = make([][]float64, o.Npts())
	for i := range rows {
		rows[i] = make([]float64, len(cols))
		for j, c := range cols {
			rows[i][j] = c[i]
		}
	}
	return
}

// WriteCSV writes results in comma-separated values format
func WriteCSV(w goio.Writer, o *Results) error {
	header, rows := o.Table()
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return chk.Err("cannot write csv header:\n%v", err)
	}
	rec := make([]string, len(header))
	for _, row := range rows {
		for j, v := range row {
			rec[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return chk.Err("cannot write csv record:\n%v", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes results to a spreadsheet; one sheet for values and one for case data
func WriteXLSX(fnpath string, o *Results) (err error) {
	f := excelize.NewFile()
	defer func() {
		if e := f.Close(); err == nil && e != nil {
			err = e
		}
	}()

	// values
	sheet := "results"
	if err = f.SetSheetName("Sheet1", sheet); err != nil {
		return
	}
	header, rows := o.Table()
	if err = f.SetSheetRow(sheet, "A1", &header); err != nil {
		return
	}
	for i, row := range rows {
		cell, e := excelize.CoordinatesToCellName(1, i+2)
		if e != nil {
			return e
		}
		if err = f.SetSheetRow(sheet, cell, &row); err != nil {
			return
		}
	}

	// case data
	if _, err = f.NewSheet("case"); err != nil {
		return
	}
	info := [][]interface{}{
		{"id", o.Id},
		{"key", o.Key},
		{"desc", o.Desc},
		{"kind", o.Kind},
		{"npts", o.Npts()},
	}
	if o.Plane != "" {
		info = append(info, []interface{}{"plane", o.Plane}, []interface{}{"ny", o.Shape[0]}, []interface{}{"nx", o.Shape[1]})
	}
	for i, r := range info {
		cell, e := excelize.CoordinatesToCellName(1, i+1)
		if e != nil {
			return e
		}
		if err = f.SetSheetRow("case", cell, &r); err != nil {
			return
		}
	}
	if err = f.SaveAs(fnpath); err != nil {
		return chk.Err("cannot save spreadsheet %q:\n%v", fnpath, err)
	}
	return
}
