package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sandeepkv93/dayboard/internal/jurisprudence"
)

func loadDecisions(path string) ([]jurisprudence.Decision, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return jurisprudence.LoadCSV(f)
}

func (c *cli) termsCmd() *cobra.Command {
	var (
		court    string
		rawTerms string
		n        int
		csvPath  string
		seed     uint64
	)
	cmd := &cobra.Command{
		Use:   "terms",
		Short: "Count legal terms across court decision summaries",
		Long: `terms counts how often each comma separated term appears in the summaries
of a set of court decisions. STF decisions come from --csv; STJ decisions are
simulated. The default court filter splits the set between both.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := jurisprudence.ParseCourtFilter(court)
			if err != nil {
				return err
			}
			terms := jurisprudence.ParseTerms(rawTerms)
			if len(terms) == 0 {
				return errors.New("at least one term is required")
			}
			if n <= 0 {
				return errors.New("--n must be positive")
			}
			loaded, err := loadDecisions(csvPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				seed = uint64(time.Now().UnixNano())
			}
			rng := jurisprudence.NewRand(seed)
			decisions := jurisprudence.Select(loaded, filter, n, rng)
			report := jurisprudence.Analyze(decisions, terms, rng)
			c.logger.Debug("analysed decisions",
				zap.String("court", string(filter)),
				zap.Int("loaded", len(loaded)),
				zap.Int("total", report.Total),
			)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "court: %s | decisions: %d\n", filter, report.Total)

			counts := newTable("TERM", "COUNT")
			for _, tc := range report.Terms {
				counts.Row(tc.Term, fmt.Sprint(tc.Count))
			}
			fmt.Fprintln(out, counts.Render())

			for _, section := range []struct {
				title   string
				buckets []jurisprudence.Bucket
			}{
				{"OUTCOME", report.Outcomes},
				{"COURT", report.Courts},
			} {
				t := newTable(section.title, "COUNT", "SHARE")
				for _, b := range section.buckets {
					t.Row(b.Value, fmt.Sprint(b.Count), fmt.Sprintf("%.1f%%", b.Share(report.Total)*100))
				}
				fmt.Fprintln(out, t.Render())
			}

			if len(report.Sample) > 0 {
				fmt.Fprintln(out, boldColor("sample:"))
				for _, d := range report.Sample {
					fmt.Fprintf(out, "- [%s %s] %s %s\n", d.Court, d.ID, d.Summary, dimColor("("+d.Outcome+")"))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&court, "court", string(jurisprudence.FilterBoth), "stf, stj or all")
	cmd.Flags().StringVar(&rawTerms, "terms", jurisprudence.DefaultTerms, "comma separated terms")
	cmd.Flags().IntVar(&n, "n", jurisprudence.DefaultCount, "number of decisions to analyse")
	cmd.Flags().StringVar(&csvPath, "csv", "", "CSV of STF decisions (id,court,summary,outcome)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed for simulated decisions")
	return cmd
}
