/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/mikeb26/ratingsheet/rating"
)

// BuildUpdateFeed renders the name,oldRating,newRating feed consumed by the
// club's roster update tooling. One line per player; players stay in record
// sheet order and groups in submission order.
func BuildUpdateFeed(results []rating.GroupResult) string {
	var sb strings.Builder
	for _, res := range results {
		for _, row := range res.Rows {
			sb.WriteString(fmt.Sprintf("%s,%d,%d\n", row.Name, row.Rating,
				row.FinalRating))
		}
	}
	return sb.String()
}

// WriteUpdateFeed writes the update feed for results to path.
func WriteUpdateFeed(path string, results []rating.GroupResult) error {
	err := os.WriteFile(path, []byte(BuildUpdateFeed(results)), 0o644)
	if err != nil {
		return fmt.Errorf("unable to write update feed: %w", err)
	}
	return nil
}
