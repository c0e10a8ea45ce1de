/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/mikeb26/ratingsheet/internal"
)

// FileConfig mirrors the optional ratingsheet.toml.
type FileConfig struct {
	Calc CalcConfig `toml:"calc"`
}

// CalcConfig maps calculation settings. Pointer fields let flag handling
// tell "unset" apart from zero values.
type CalcConfig struct {
	Rounds         *int     `toml:"rounds"`
	PointsPerRound *float64 `toml:"points-per-round"`
	Output         *string  `toml:"output"`
	EventDate      *string  `toml:"event-date"`
}

// loadConfig reads the TOML config at path. A missing file is not an error;
// flags and defaults cover everything the file can set.
func loadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("unable to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("unable to decode config: %w", err)
	}
	return cfg, nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# %v configuration
# Uncomment a value to enable it. CLI flags override config values.

[calc]
# rounds = %d              # Rounds per group
# points-per-round = %.1f  # Points a win is worth in one round
# output = %q         # Display name used in titles and default file names
# event-date = ""          # Event date for sheet titles (any common format)
`,
		internal.ToolName,
		defaultRounds,
		defaultPointsPerRound,
		internal.DefaultOutputName,
	)
}
