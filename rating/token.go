/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

package rating

import (
	"strconv"
	"strings"
)

// RoundToken is the parsed form of one round result cell. OpponentID is the
// 1-based seat of the opponent within the group as written in the cell; it is
// not range checked here, and 0 means the cell named no opponent at all (bye,
// forfeit, or text the parser could not read). Display carries the original
// cell content verbatim for rendering.
type RoundToken struct {
	OpponentID int
	Display    string
}

// ParseOpponentToken reads a round result cell such as "7", "W3", "d12", or
// "L4". A single leading W, D, or L result marker in either case is stripped
// before the numeric parse. Cells that do not yield an integer produce a
// zero OpponentID rather than an error; hand-entered sheets make dirty cells
// the common case, not the exceptional one.
func ParseOpponentToken(token string) RoundToken {
	tok := strings.TrimSpace(token)
	if tok == "" {
		return RoundToken{Display: token}
	}

	num := tok
	switch tok[0] {
	case 'W', 'w', 'D', 'd', 'L', 'l':
		num = tok[1:]
	}

	id, err := strconv.Atoi(num)
	if err != nil {
		return RoundToken{Display: token}
	}

	return RoundToken{OpponentID: id, Display: token}
}
