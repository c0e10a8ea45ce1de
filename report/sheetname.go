/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package report

import (
	"fmt"
	"strings"
)

// maxSheetNameLen is the hard limit Excel places on sheet names.
const maxSheetNameLen = 31

var sheetNameReplacer = strings.NewReplacer(
	"\\", "_",
	"/", "_",
	"?", "_",
	"*", "_",
	"[", "_",
	"]", "_",
	":", "_",
)

// SanitizeSheetName makes raw usable as a workbook sheet name: the
// characters Excel forbids become underscores and the result is capped at
// 31 characters. An unusable name falls back to "Sheet".
func SanitizeSheetName(raw string) string {
	name := sheetNameReplacer.Replace(strings.TrimSpace(raw))
	if name == "" {
		return "Sheet"
	}
	if runes := []rune(name); len(runes) > maxSheetNameLen {
		name = string(runes[:maxSheetNameLen])
	}
	return name
}

// SheetNamer hands out sanitized sheet names that are unique within one
// workbook. Excel compares sheet names case insensitively, so the namer
// does too.
type SheetNamer struct {
	used map[string]bool
}

func NewSheetNamer() *SheetNamer {
	return &SheetNamer{used: make(map[string]bool)}
}

// Name returns a workbook-safe name for raw. Names already handed out gain
// a _2, _3, ... suffix in first-seen order, shortening the base as needed
// to stay within the length cap.
func (sn *SheetNamer) Name(raw string) string {
	base := SanitizeSheetName(raw)

	candidate := base
	for n := 2; sn.used[strings.ToLower(candidate)]; n++ {
		suffix := fmt.Sprintf("_%d", n)
		runes := []rune(base)
		if len(runes)+len(suffix) > maxSheetNameLen {
			runes = runes[:maxSheetNameLen-len(suffix)]
		}
		candidate = string(runes) + suffix
	}

	sn.used[strings.ToLower(candidate)] = true
	return candidate
}
