/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package report

import (
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/xuri/excelize/v2"

	"github.com/mikeb26/ratingsheet/internal"
	"github.com/mikeb26/ratingsheet/rating"
)

// Options carries workbook cosmetics shared by every sheet.
type Options struct {
	// Title is the event's display name; when empty, sheet titles carry
	// only the group name.
	Title string
	// EventDate is appended to sheet titles when set.
	EventDate time.Time
}

// BuildWorkbook renders one styled sheet per group, highest final rating
// first on each sheet. Sheet names derive from group names via SheetNamer,
// so duplicate or unusable group names still produce a loadable workbook.
func BuildWorkbook(results []rating.GroupResult, roundCount int,
	opts Options) (*excelize.File, error) {

	if len(results) == 0 {
		return nil, fmt.Errorf("no groups to render")
	}

	f := excelize.NewFile()

	styles, err := newSheetStyles(f)
	if err != nil {
		return nil, fmt.Errorf("unable to prepare workbook styles: %w", err)
	}

	namer := NewSheetNamer()
	for i, res := range results {
		sheet := namer.Name(res.Name)
		if i == 0 {
			// take over the default sheet
			err = f.SetSheetName(f.GetSheetName(0), sheet)
			if err != nil {
				return nil, fmt.Errorf("unable to name sheet %v: %w", sheet,
					err)
			}
		} else {
			if _, err = f.NewSheet(sheet); err != nil {
				return nil, fmt.Errorf("unable to add sheet %v: %w", sheet,
					err)
			}
		}
		err = writeGroupSheet(f, sheet, res, roundCount, opts, styles)
		if err != nil {
			return nil, fmt.Errorf("unable to render sheet %v: %w", sheet,
				err)
		}
	}

	title := opts.Title
	if title == "" {
		title = "Rating Report"
	}
	err = f.SetDocProps(&excelize.DocProperties{
		Title:   title,
		Creator: internal.ToolName,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to set workbook properties: %w", err)
	}

	return f, nil
}

// WriteWorkbook renders results and saves the workbook to path.
func WriteWorkbook(path string, results []rating.GroupResult, roundCount int,
	opts Options) error {

	f, err := BuildWorkbook(results, roundCount, opts)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("unable to write workbook: %w", err)
	}

	return nil
}

type sheetStyles struct {
	title  int
	header int
	text   int
	score  int
	change int
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	var styles sheetStyles
	var err error

	styles.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return styles, err
	}

	thin := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	styles.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{"D9D9D9"},
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thin,
	})
	if err != nil {
		return styles, err
	}

	styles.text, err = f.NewStyle(&excelize.Style{Border: thin})
	if err != nil {
		return styles, err
	}

	scoreFmt := "0.0"
	styles.score, err = f.NewStyle(&excelize.Style{
		Border:       thin,
		CustomNumFmt: &scoreFmt,
	})
	if err != nil {
		return styles, err
	}

	changeFmt := "+0.0;-0.0;0.0"
	styles.change, err = f.NewStyle(&excelize.Style{
		Border:       thin,
		CustomNumFmt: &changeFmt,
	})
	if err != nil {
		return styles, err
	}

	return styles, nil
}

// sheetTitle combines the event name, group name, and date into the merged
// banner above the table.
func sheetTitle(opts Options, groupName string) string {
	title := groupName
	if opts.Title != "" {
		title = opts.Title + " - " + groupName
	}
	if date := internal.FormatDate(opts.EventDate); date != "" {
		title += " (" + date + ")"
	}
	return title
}

func writeGroupSheet(f *excelize.File, sheet string, res rating.GroupResult,
	roundCount int, opts Options, styles sheetStyles) error {

	headers := tableHeaders(roundCount)
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return fmt.Errorf("unable to map columns: %w", err)
	}

	err = f.SetCellValue(sheet, "A1", sheetTitle(opts, res.Name))
	if err != nil {
		return fmt.Errorf("unable to write title: %w", err)
	}
	if err := f.MergeCell(sheet, "A1", lastCol+"1"); err != nil {
		return fmt.Errorf("unable to merge title row: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", styles.title); err != nil {
		return fmt.Errorf("unable to style title row: %w", err)
	}
	if err := f.SetRowHeight(sheet, 1, 24); err != nil {
		return fmt.Errorf("unable to size title row: %w", err)
	}

	for c, h := range headers {
		cell, err := excelize.CoordinatesToCellName(c+1, 2)
		if err != nil {
			return fmt.Errorf("unable to map header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("unable to write header %v: %w", h, err)
		}
	}
	if err := f.SetCellStyle(sheet, "A2", lastCol+"2", styles.header); err != nil {
		return fmt.Errorf("unable to style header row: %w", err)
	}

	ranked := rankedRows(res.Rows)
	for r, row := range ranked {
		if err := writeSheetRow(f, sheet, r+3, row); err != nil {
			return err
		}
	}

	err = styleDataRows(f, sheet, roundCount, len(ranked), styles)
	if err != nil {
		return err
	}
	if err := setColumnWidths(f, sheet, res, roundCount); err != nil {
		return err
	}

	// keep the banner and headers on screen while scrolling long groups
	err = f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      2,
		TopLeftCell: "A3",
		ActivePane:  "bottomLeft",
	})
	if err != nil {
		return fmt.Errorf("unable to freeze header rows: %w", err)
	}

	return nil
}

func writeSheetRow(f *excelize.File, sheet string, excelRow int,
	row rating.ComputedRow) error {

	values := []any{row.Seq, row.Name, row.Rating, row.KFactor}
	for _, d := range row.RoundDisplays {
		values = append(values, d)
	}
	values = append(values, row.TotalScore, row.AvgOpponentRating,
		row.ExpectedScore, row.RatingChange, row.FinalRating)

	for c, v := range values {
		cell, err := excelize.CoordinatesToCellName(c+1, excelRow)
		if err != nil {
			return fmt.Errorf("unable to map cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("unable to write row %d: %w", excelRow, err)
		}
	}

	return nil
}

// styleDataRows borders the data region and applies 1 decimal number
// formats to the score, expected, and change columns.
func styleDataRows(f *excelize.File, sheet string, roundCount int,
	rowCount int, styles sheetStyles) error {

	if rowCount == 0 {
		return nil
	}
	lastRow := 2 + rowCount
	lastCol, err := excelize.ColumnNumberToName(9 + roundCount)
	if err != nil {
		return fmt.Errorf("unable to map columns: %w", err)
	}
	err = f.SetCellStyle(sheet, "A3", fmt.Sprintf("%v%d", lastCol, lastRow),
		styles.text)
	if err != nil {
		return fmt.Errorf("unable to style rows: %w", err)
	}

	numCols := []struct {
		col   int
		style int
	}{
		{5 + roundCount, styles.score},
		{7 + roundCount, styles.score},
		{8 + roundCount, styles.change},
	}
	for _, nc := range numCols {
		name, err := excelize.ColumnNumberToName(nc.col)
		if err != nil {
			return fmt.Errorf("unable to map columns: %w", err)
		}
		err = f.SetCellStyle(sheet, fmt.Sprintf("%v3", name),
			fmt.Sprintf("%v%d", name, lastRow), nc.style)
		if err != nil {
			return fmt.Errorf("unable to style column %v: %w", name, err)
		}
	}

	return nil
}

func setColumnWidths(f *excelize.File, sheet string, res rating.GroupResult,
	roundCount int) error {

	nameWidth := float64(len("Name"))
	for _, row := range res.Rows {
		if w := float64(runewidth.StringWidth(row.Name)); w > nameWidth {
			nameWidth = w
		}
	}
	nameWidth += 2
	if nameWidth > 40 {
		nameWidth = 40
	}

	widths := []float64{5, nameWidth, 8, 5}
	for i := 0; i < roundCount; i++ {
		widths = append(widths, 6)
	}
	widths = append(widths, 7, 9, 7, 7, 7)

	for c, w := range widths {
		name, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return fmt.Errorf("unable to map columns: %w", err)
		}
		if err := f.SetColWidth(sheet, name, name, w); err != nil {
			return fmt.Errorf("unable to size column %v: %w", name, err)
		}
	}

	return nil
}
