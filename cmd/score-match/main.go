// Command score-match scores one or more saved match-report documents and
// writes the combined, sorted score table.
//
// Usage:
//
//	score-match report.html
//	score-match --out scores.csv report1.html https://example.com/report2
//	score-match --no-early-sub-penalty report.html
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hfwleague/fantasy-soccer-backends/internal/fetch"
	"github.com/hfwleague/fantasy-soccer-backends/internal/pipeline"
)

func main() {
	_ = godotenv.Load(".env")

	var (
		outPath           string
		format            string
		noEarlySubPenalty bool
	)

	root := &cobra.Command{
		Use:   "score-match [reports...]",
		Short: "Score saved match-report documents into a fantasy point table",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), args, outPath, format, noEarlySubPenalty)
		},
	}
	root.Flags().StringVar(&outPath, "out", "", "write CSV to this file instead of stdout")
	root.Flags().StringVar(&format, "format", "table", "stdout format: table or csv")
	root.Flags().BoolVar(&noEarlySubPenalty, "no-early-sub-penalty", false,
		"disable the defender early-substitution clean-sheet penalty")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, refs []string, outPath, format string, noEarlySubPenalty bool) error {
	log, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer log.Sync()

	scorer := pipeline.New()
	scorer.Rules.EarlySubCleanSheetPenalty = !noEarlySubPenalty
	fetcher := fetch.New(log)

	var rows []pipeline.ScoreRow
	failed := 0
	for _, ref := range refs {
		html, err := fetcher.Fetch(ctx, ref)
		if err != nil {
			log.Error("fetch report", zap.String("ref", ref), zap.Error(err))
			failed++
			continue
		}
		r, err := scorer.ScoreMatch(html)
		if err != nil {
			log.Error("score report", zap.String("ref", ref), zap.Error(err))
			failed++
			continue
		}
		log.Info("scored report", zap.String("ref", ref), zap.Int("players", len(r)))
		rows = append(rows, r...)
	}
	if failed == len(refs) {
		return fmt.Errorf("all %d report(s) failed", failed)
	}
	pipeline.SortRows(rows)

	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		return pipeline.WriteCSV(f, rows)
	}
	if format == "csv" {
		return pipeline.WriteCSV(os.Stdout, rows)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PLAYER\tTEAM\tPOS\tSCORE")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", r.Player, r.Team, r.Pos, r.Score)
	}
	return tw.Flush()
}
