/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package roster

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mikeb26/ratingsheet/rating"
)

// ReadHTMLGroup parses a group from a results page saved out of a pairing
// program or spreadsheet export. Rows are read from table#players when the
// page carries one, otherwise from the first table in the document; cells
// follow the record sheet field order and pass through the same row checks
// as the plain reader.
func ReadHTMLGroup(r io.Reader, name string, roundCount int) (rating.Group,
	error) {

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return rating.Group{}, fmt.Errorf("unable to parse group %v: %w",
			name, err)
	}

	table := doc.Find("table#players").First()
	if table.Length() == 0 {
		table = doc.Find("table").First()
	}
	if table.Length() == 0 {
		return rating.Group{}, fmt.Errorf("group %v has no results table",
			name)
	}

	group := rating.Group{Name: name}
	table.Find("tr").Each(func(rowNum int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() == 0 {
			// header row
			return
		}
		fields := make([]string, 0, cells.Length())
		cells.Each(func(_ int, cell *goquery.Selection) {
			fields = append(fields, strings.TrimSpace(cell.Text()))
		})
		player, ok := playerFromFields(fields, roundCount)
		if !ok {
			log.Printf("warning: %v row %d: discarding malformed player row",
				name, rowNum+1)
			return
		}
		group.Players = append(group.Players, player)
	})

	if len(group.Players) == 0 {
		return rating.Group{}, fmt.Errorf("group %v has no valid player rows",
			name)
	}

	return group, nil
}
