/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

package rating

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"
)

// Player is one row of a group's record sheet as entered by the director.
// Identity within a group is positional: round result cells refer to
// opponents by 1-based seat number, so reordering players changes the
// meaning of every cell.
type Player struct {
	Name        string
	Rating      int
	KFactor     int
	RoundTokens []string
	TotalScore  float64
}

// Group is a named, ordered set of players who all played the same number
// of rounds for the same full mark.
type Group struct {
	Name    string
	Players []Player
}

// ComputedRow is the derived rating line for one player. Seq preserves the
// player's 1-based seat in the input group regardless of how a renderer
// later orders the rows.
type ComputedRow struct {
	Seq               int
	Name              string
	Rating            int
	KFactor           int
	RoundDisplays     []string
	TotalScore        float64
	AvgOpponentRating int
	ExpectedScore     float64
	RatingChange      float64
	FinalRating       int
}

// GroupResult pairs a group's name with its computed rows.
type GroupResult struct {
	Name string
	Rows []ComputedRow
}

// ComputeGroup derives one ComputedRow per player. The output order matches
// the input order, and every opponent lookup resolves against the original
// ratings, so the result does not depend on which player is computed first.
//
// Rounds whose cell names no resolvable opponent (a bye, a forfeit, the
// player's own seat, a seat outside the group, or unreadable text) are
// excluded from the opponent average rather than counted as zero.
func ComputeGroup(players []Player, roundCount int,
	fullMark float64) []ComputedRow {

	rows := make([]ComputedRow, 0, len(players))

	for i, p := range players {
		displays := make([]string, roundCount)
		ratingSum := 0
		playedRounds := 0
		for r := 0; r < roundCount; r++ {
			tok := ""
			if r < len(p.RoundTokens) {
				tok = p.RoundTokens[r]
			}
			parsed := ParseOpponentToken(tok)
			displays[r] = parsed.Display

			oppIdx := parsed.OpponentID - 1
			if oppIdx < 0 || oppIdx >= len(players) || oppIdx == i {
				continue
			}
			ratingSum += players[oppIdx].Rating
			playedRounds++
		}

		avgOpp := 0
		if playedRounds > 0 {
			avgOpp = int(math.Ceil(float64(ratingSum) /
				float64(playedRounds)))
		}

		expected := round1(ExpectedScore(p.Rating, avgOpp, fullMark))
		change := (p.TotalScore - expected) * float64(p.KFactor)

		rows = append(rows, ComputedRow{
			Seq:               i + 1,
			Name:              p.Name,
			Rating:            p.Rating,
			KFactor:           p.KFactor,
			RoundDisplays:     displays,
			TotalScore:        p.TotalScore,
			AvgOpponentRating: avgOpp,
			ExpectedScore:     expected,
			RatingChange:      change,
			FinalRating:       int(math.Round(float64(p.Rating) + change)),
		})
	}

	return rows
}

// round1 rounds to 1 decimal place, half away from zero.
func round1(v float64) float64 {
	return math.Round(v*10.0) / 10.0
}

// ComputeGroups computes every group concurrently and returns the results in
// submission order. Groups share no state; each goroutine writes only its
// own slot.
func ComputeGroups(ctx context.Context, groups []Group, roundCount int,
	fullMark float64) ([]GroupResult, error) {

	results := make([]GroupResult, len(groups))

	g, ctx := errgroup.WithContext(ctx)
	for i := range groups {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = GroupResult{
				Name: groups[i].Name,
				Rows: ComputeGroup(groups[i].Players, roundCount,
					fullMark),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
