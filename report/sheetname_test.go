/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package report

import (
	"strings"
	"testing"
)

// TestSanitizeSheetName verifies forbidden characters, the length cap, and
// the empty name fallback.
func TestSanitizeSheetName(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{name: "clean", raw: "Open", want: "Open"},
		{name: "slash", raw: "Open/U1600", want: "Open_U1600"},
		{name: "colon and question", raw: "Quads: Fall?", want: "Quads_ Fall_"},
		{name: "brackets and star", raw: "[W]*[L]", want: "_W___L_"},
		{name: "backslash", raw: "a\\b", want: "a_b"},
		{name: "padded", raw: "  Reserve  ", want: "Reserve"},
		{name: "empty", raw: "", want: "Sheet"},
		{name: "spaces only", raw: "   ", want: "Sheet"},
		{name: "over long", raw: strings.Repeat("x", 40),
			want: strings.Repeat("x", 31)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := SanitizeSheetName(c.raw)
			if got != c.want {
				t.Errorf("%s: SanitizeSheetName(%q) = %q; want %q", c.name,
					c.raw, got, c.want)
			}
		})
	}
}

// TestSheetNamer verifies collisions gain deterministic suffixes in
// first-seen order, comparing case insensitively the way Excel does.
func TestSheetNamer(t *testing.T) {
	sn := NewSheetNamer()

	got := []string{
		sn.Name("Quads"),
		sn.Name("Quads"),
		sn.Name("quads"),
		sn.Name("Open"),
	}
	want := []string{"Quads", "Quads_2", "quads_3", "Open"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Name #%d = %q; want %q", i+1, got[i], want[i])
		}
	}
}

// TestSheetNamerLongCollision verifies suffixed names still respect the
// 31 character cap.
func TestSheetNamerLongCollision(t *testing.T) {
	sn := NewSheetNamer()
	long := strings.Repeat("A", 40)

	first := sn.Name(long)
	if len(first) != 31 {
		t.Errorf("len(first) = %d; want 31", len(first))
	}

	second := sn.Name(long)
	if len(second) != 31 {
		t.Errorf("len(second) = %d; want 31", len(second))
	}
	if !strings.HasSuffix(second, "_2") {
		t.Errorf("second = %q; want _2 suffix", second)
	}
	if first == second {
		t.Errorf("collision not resolved: both %q", first)
	}
}
