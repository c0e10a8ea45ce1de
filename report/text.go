/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/mikeb26/ratingsheet/rating"
)

// tableHeaders returns the column headers shared by the text preview and
// the workbook sheets.
func tableHeaders(roundCount int) []string {
	headers := []string{"No", "Name", "Rating", "K"}
	for i := 1; i <= roundCount; i++ {
		headers = append(headers, fmt.Sprintf("R%d", i))
	}
	return append(headers, "Score", "Avg Opp", "Exp", "+/-", "New")
}

// rankedRows orders rows by final rating, best first, for presentation.
// Ties keep record sheet order, and Seq still reports the original seat.
func rankedRows(rows []rating.ComputedRow) []rating.ComputedRow {
	ranked := append([]rating.ComputedRow(nil), rows...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].FinalRating > ranked[j].FinalRating
	})
	return ranked
}

// BuildGroupText formats one group's computed rows as an aligned text table,
// highest final rating first. Column widths use terminal display width so
// East Asian names keep the columns straight.
func BuildGroupText(res rating.GroupResult, roundCount int) string {
	headers := tableHeaders(roundCount)

	rows := make([][]string, 0, len(res.Rows))
	for _, row := range rankedRows(res.Rows) {
		cells := []string{
			fmt.Sprintf("%d.", row.Seq),
			row.Name,
			strconv.Itoa(row.Rating),
			strconv.Itoa(row.KFactor),
		}
		cells = append(cells, row.RoundDisplays...)
		cells = append(cells,
			fmt.Sprintf("%.1f", row.TotalScore),
			strconv.Itoa(row.AvgOpponentRating),
			fmt.Sprintf("%.1f", row.ExpectedScore),
			fmt.Sprintf("%+.1f", row.RatingChange),
			strconv.Itoa(row.FinalRating),
		)
		rows = append(rows, cells)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%v\n", res.Name))
	writeAligned(&sb, headers, rows)
	return sb.String()
}

// writeAligned pads every column to its widest member and writes the header
// and rows with two space gutters.
func writeAligned(sb *strings.Builder, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, cells := range rows {
		for i, cell := range cells {
			if i >= len(widths) {
				break
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	writeRow := func(cells []string) {
		var line strings.Builder
		for i, cell := range cells {
			if i > 0 {
				line.WriteString("  ")
			}
			line.WriteString(cell)
			if pad := widths[i] - runewidth.StringWidth(cell); pad > 0 {
				line.WriteString(strings.Repeat(" ", pad))
			}
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteString("\n")
	}

	writeRow(headers)
	for _, cells := range rows {
		writeRow(cells)
	}
}
