/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package roster

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mikeb26/ratingsheet/rating"
)

// ReadGroupFile reads one group from path. The group is named after the file
// base name. Files ending in .html or .htm are parsed as an exported results
// table; everything else is parsed as a comma separated record sheet.
func ReadGroupFile(path string, roundCount int) (rating.Group, error) {
	f, err := os.Open(path)
	if err != nil {
		return rating.Group{}, fmt.Errorf("unable to open group file: %w",
			err)
	}
	defer f.Close()

	ext := filepath.Ext(path)
	name := strings.TrimSuffix(filepath.Base(path), ext)
	switch strings.ToLower(ext) {
	case ".html", ".htm":
		return ReadHTMLGroup(f, name, roundCount)
	}

	return ReadGroup(f, name, roundCount)
}

// ReadGroup parses a group's record sheet, one player per line:
//
//	name,rating,kFactor,round1,...,roundN,totalScore
//
// Lines that fail the row checks are discarded with a warning so one typo
// does not sink a whole group; the rating engine never sees them. An error
// is returned only when no valid row survives.
func ReadGroup(r io.Reader, name string, roundCount int) (rating.Group,
	error) {

	group := rating.Group{Name: name}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		player, ok := playerFromFields(fields, roundCount)
		if !ok {
			log.Printf("warning: %v line %d: discarding malformed player row",
				name, lineNum)
			continue
		}
		group.Players = append(group.Players, player)
	}
	if err := scanner.Err(); err != nil {
		return rating.Group{}, fmt.Errorf("unable to read group %v: %w",
			name, err)
	}
	if len(group.Players) == 0 {
		return rating.Group{}, fmt.Errorf("group %v has no valid player rows",
			name)
	}

	return group, nil
}

// playerFromFields applies the row checks shared by the record sheet and
// HTML readers: an exact field count, a non-empty name, and integer rating
// and K-factor. The total score is permissive and degrades to 0 when it
// does not parse; a missing total is a data entry gap, not a reason to drop
// the player's rounds.
func playerFromFields(fields []string, roundCount int) (rating.Player, bool) {
	if len(fields) != roundCount+4 {
		return rating.Player{}, false
	}

	name := fields[0]
	if name == "" {
		return rating.Player{}, false
	}
	ratingVal, err := strconv.Atoi(fields[1])
	if err != nil {
		return rating.Player{}, false
	}
	kFactor, err := strconv.Atoi(fields[2])
	if err != nil {
		return rating.Player{}, false
	}

	tokens := make([]string, roundCount)
	copy(tokens, fields[3:3+roundCount])

	totalScore := 0.0
	if ts, err := strconv.ParseFloat(fields[3+roundCount], 64); err == nil {
		totalScore = ts
	}

	return rating.Player{
		Name:        name,
		Rating:      ratingVal,
		KFactor:     kFactor,
		RoundTokens: tokens,
		TotalScore:  totalScore,
	}, true
}
