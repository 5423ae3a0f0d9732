// Package export writes the geometry of a generated antenna to an Excel
// workbook for review outside KiCad.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/OpenTraceLab/nfcant/pkg/antenna"
	"github.com/OpenTraceLab/nfcant/pkg/antenna/header"
)

// Sheet names
const (
	SheetParameters = "Parameters"
	SheetSegments   = "Segments"
	SheetPads       = "Pads"
)

var (
	parameterColumns = []interface{}{"Parameter", "Requested", "Used"}
	segmentColumns   = []interface{}{"Pad", "Index", "Start X", "Start Y", "End X", "End Y", "Width", "Length"}
	padColumns       = []interface{}{"Number", "Type", "Shape", "X", "Y", "Size", "Drill", "Primitives"}
)

// Workbook builds the workbook for result. requested holds the parameters as
// given by the user; result.Spec holds the resolved values.
// Segment coordinates are absolute footprint coordinates in mm.
func Workbook(requested antenna.Spec, result *antenna.Result) (*excelize.File, error) {
	if result == nil || result.Footprint == nil {
		return nil, fmt.Errorf("nothing to export")
	}

	f := excelize.NewFile()
	for _, name := range []string{SheetParameters, SheetSegments, SheetPads} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}

	b := &sheetBuilder{f: f}
	b.parameters(requested, result.Spec)
	b.segments(result)
	b.pads(result)
	if b.err != nil {
		f.Close()
		return nil, b.err
	}

	f.SetActiveSheet(0)
	return f, nil
}

// WriteWorkbook writes the workbook for result to w
func WriteWorkbook(w io.Writer, requested antenna.Spec, result *antenna.Result) error {
	f, err := Workbook(requested, result)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// SaveWorkbook writes the workbook for result to path
func SaveWorkbook(path string, requested antenna.Spec, result *antenna.Result) error {
	f, err := Workbook(requested, result)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// sheetBuilder appends rows and keeps the first error
type sheetBuilder struct {
	f   *excelize.File
	err error
}

func (b *sheetBuilder) row(sheet string, n int, values []interface{}) {
	if b.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		b.err = err
		return
	}
	if err := b.f.SetSheetRow(sheet, cell, &values); err != nil {
		b.err = fmt.Errorf("failed to write %s row %d: %w", sheet, n, err)
	}
}

func (b *sheetBuilder) parameters(requested, used antenna.Spec) {
	b.row(SheetParameters, 1, parameterColumns)

	rows := [][]interface{}{
		{header.KeyModuleName, requested.Name, used.Name},
		{header.KeyTurns, requested.Turns, used.Turns},
		{header.KeyAntennaLength, requested.Length, used.Length},
		{header.KeyAntennaWidth, requested.Width, used.Width},
		{header.KeyConductorWidth, requested.ConductorWidth, used.ConductorWidth},
		{header.KeyConductorSpace, requested.ConductorSpace, used.ConductorSpace},
		{header.KeyDrillSize, requested.DrillSize, used.DrillSize},
		{header.KeyMinSlopeSpace, requested.MinSlopeSpace, used.MinSlopeSpace},
		{header.KeySilkMargin, requested.SilkMargin, used.SilkMargin},
		{header.KeyStyle, int(requested.Style), used.Style.String()},
	}
	for i, r := range rows {
		b.row(SheetParameters, i+2, r)
	}
}

func (b *sheetBuilder) segments(result *antenna.Result) {
	b.row(SheetSegments, 1, segmentColumns)

	n := 2
	for _, pad := range result.Footprint.Pads {
		if !pad.IsCustom() {
			continue
		}
		for i, line := range pad.AbsolutePrimitives() {
			b.row(SheetSegments, n, []interface{}{
				pad.Number, i + 1,
				line.Start.X, line.Start.Y,
				line.End.X, line.End.Y,
				line.Width, line.Length(),
			})
			n++
		}
	}
}

func (b *sheetBuilder) pads(result *antenna.Result) {
	b.row(SheetPads, 1, padColumns)

	for i, pad := range result.Footprint.Pads {
		b.row(SheetPads, i+2, []interface{}{
			pad.Number, pad.Type, pad.Shape,
			pad.Position.X, pad.Position.Y,
			pad.Size.Width, pad.Drill,
			len(pad.Primitives),
		})
	}
}
