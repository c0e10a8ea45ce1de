/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package rating

import (
	"testing"
)

// TestParseOpponentToken verifies result markers are stripped, dirty cells
// degrade to a zero OpponentID, and the display text is always preserved
// verbatim.
func TestParseOpponentToken(t *testing.T) {
	cases := []struct {
		name   string
		token  string
		wantID int
	}{
		{name: "bare number", token: "7", wantID: 7},
		{name: "win marker", token: "W3", wantID: 3},
		{name: "lowercase win marker", token: "w3", wantID: 3},
		{name: "draw marker", token: "D12", wantID: 12},
		{name: "lowercase draw marker", token: "d1", wantID: 1},
		{name: "loss marker", token: "L4", wantID: 4},
		{name: "surrounding spaces", token: " 8 ", wantID: 8},
		{name: "empty cell", token: "", wantID: 0},
		{name: "spaces only", token: "   ", wantID: 0},
		{name: "bye text", token: "bye", wantID: 0},
		{name: "marker without number", token: "W", wantID: 0},
		{name: "unknown marker", token: "X3", wantID: 0},
		{name: "fractional number", token: "3.5", wantID: 0},
		{name: "explicit zero", token: "0", wantID: 0},
		{name: "negative seat", token: "-2", wantID: -2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ParseOpponentToken(c.token)
			if got.OpponentID != c.wantID {
				t.Errorf("%s: OpponentID = %d; want %d", c.name,
					got.OpponentID, c.wantID)
			}
			if got.Display != c.token {
				t.Errorf("%s: Display = %q; want %q", c.name, got.Display,
					c.token)
			}
		})
	}
}
