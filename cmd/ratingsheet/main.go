/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mikeb26/ratingsheet/internal"
	"github.com/mikeb26/ratingsheet/rating"
	"github.com/mikeb26/ratingsheet/report"
	"github.com/mikeb26/ratingsheet/roster"
)

const (
	defaultRounds         = 4
	defaultPointsPerRound = 1.0
)

var (
	cfgPath    string
	calcRounds int
	calcPoints float64
	calcOutput string
	calcDate   string

	calcOutFile  string
	calcFeedFile string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ratingsheet <group-file> [<group-file>...]",
		Short:         "Compute post-event club ratings and render report spreadsheets",
		Version:       internal.Version,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runCalcCmd,
	}

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config",
		internal.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().IntVar(&calcRounds, "rounds", defaultRounds,
		"rounds per group")
	rootCmd.PersistentFlags().Float64Var(&calcPoints, "points",
		defaultPointsPerRound, "points a win is worth in one round")
	rootCmd.PersistentFlags().StringVar(&calcOutput, "output",
		internal.DefaultOutputName,
		"display name used in titles and default file names")
	rootCmd.PersistentFlags().StringVar(&calcDate, "date", "",
		"event date for sheet titles (any common format)")

	rootCmd.Flags().StringVar(&calcOutFile, "out", "",
		"workbook path (default <output>.xlsx)")
	rootCmd.Flags().StringVar(&calcFeedFile, "feed-out", "",
		"update feed path (default <output>-updates.txt)")

	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newFeedCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// runParams is the merged view of flags, config file, and defaults for one
// invocation.
type runParams struct {
	rounds    int
	fullMark  float64
	output    string
	eventDate time.Time
	outFile   string
	feedFile  string
}

func resolveParams(cmd *cobra.Command) (runParams, error) {
	fileCfg, err := loadConfig(cfgPath)
	if err != nil {
		return runParams{}, err
	}
	applyIntConfig(cmd, "rounds", &calcRounds, fileCfg.Calc.Rounds)
	applyFloatConfig(cmd, "points", &calcPoints, fileCfg.Calc.PointsPerRound)
	applyStringConfig(cmd, "output", &calcOutput, fileCfg.Calc.Output)
	applyStringConfig(cmd, "date", &calcDate, fileCfg.Calc.EventDate)

	if calcRounds < 1 {
		return runParams{}, fmt.Errorf("--rounds must be >= 1")
	}
	if calcPoints <= 0 {
		return runParams{}, fmt.Errorf("--points must be > 0")
	}
	if calcOutput == "" {
		return runParams{}, fmt.Errorf("--output must not be empty")
	}

	eventDate, err := internal.ParseDateOrZero(calcDate)
	if err != nil {
		return runParams{}, fmt.Errorf("unable to parse --date %q: %w",
			calcDate, err)
	}

	p := runParams{
		rounds:    calcRounds,
		fullMark:  calcPoints * float64(calcRounds),
		output:    calcOutput,
		eventDate: eventDate,
		outFile:   calcOutFile,
		feedFile:  calcFeedFile,
	}
	if p.outFile == "" {
		p.outFile = p.output + ".xlsx"
	}
	if p.feedFile == "" {
		p.feedFile = p.output + "-updates.txt"
	}

	return p, nil
}

// computeAll reads one group per path and rates them all.
func computeAll(ctx context.Context, paths []string,
	p runParams) ([]rating.GroupResult, error) {

	groups := make([]rating.Group, 0, len(paths))
	for _, path := range paths {
		group, err := roster.ReadGroupFile(path, p.rounds)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}

	return rating.ComputeGroups(ctx, groups, p.rounds, p.fullMark)
}

func runCalcCmd(cmd *cobra.Command, args []string) error {
	p, err := resolveParams(cmd)
	if err != nil {
		return err
	}
	results, err := computeAll(cmd.Context(), args, p)
	if err != nil {
		return err
	}

	opts := report.Options{Title: p.output, EventDate: p.eventDate}
	if err := report.WriteWorkbook(p.outFile, results, p.rounds, opts); err != nil {
		return err
	}
	if err := report.WriteUpdateFeed(p.feedFile, results); err != nil {
		return err
	}

	for _, res := range results {
		fmt.Printf("%v: rated %v players\n", res.Name, len(res.Rows))
	}
	fmt.Printf("wrote %v and %v\n", p.outFile, p.feedFile)

	return nil
}

func newPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview <group-file> [<group-file>...]",
		Short: "Print group tables to the terminal without writing files",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runPreviewCmd,
	}
}

func runPreviewCmd(cmd *cobra.Command, args []string) error {
	p, err := resolveParams(cmd)
	if err != nil {
		return err
	}
	results, err := computeAll(cmd.Context(), args, p)
	if err != nil {
		return err
	}

	for _, res := range results {
		fmt.Print(report.BuildGroupText(res, p.rounds))
		fmt.Println()
	}

	return nil
}

func newFeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "feed <group-file> [<group-file>...]",
		Short: "Print the name,oldRating,newRating update feed",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runFeedCmd,
	}
}

func runFeedCmd(cmd *cobra.Command, args []string) error {
	p, err := resolveParams(cmd)
	if err != nil {
		return err
	}
	results, err := computeAll(cmd.Context(), args, p)
	if err != nil {
		return err
	}

	fmt.Print(report.BuildUpdateFeed(results))

	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create and open the config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	if err := os.MkdirAll(filepath.Dir(cfgPath), 0o755); err != nil {
		return fmt.Errorf("unable to create config directory: %w", err)
	}
	if _, err := os.Stat(cfgPath); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("unable to stat config: %w", err)
		}
		err = os.WriteFile(cfgPath, []byte(defaultConfigTemplate()), 0o644)
		if err != nil {
			return fmt.Errorf("unable to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	edit := exec.Command(parts[0], append(parts[1:], cfgPath)...)
	edit.Stdin = os.Stdin
	edit.Stdout = os.Stdout
	edit.Stderr = os.Stderr
	if err := edit.Run(); err != nil {
		return fmt.Errorf("unable to open editor: %w", err)
	}

	return nil
}
