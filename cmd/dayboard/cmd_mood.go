package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/dayboard/internal/astro"
	"github.com/sandeepkv93/dayboard/internal/model"
)

func (c *cli) moodCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mood <happy|calm|neutral|anxious|sad> [note...] [sign:<sign>]",
		Short: "Log a mood journal entry",
		Example: `  dayboard mood calm long walk after lunch
  dayboard mood anxious sign:virgo`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runText(cmd, "mood "+strings.Join(args, " "))
		},
	}
	cmd.AddCommand(c.moodClearCmd(), c.moodTrendCmd(), c.moodRecommendCmd())
	return cmd
}

func (c *cli) moodClearCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the whole mood journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errors.New("refusing to clear the mood journal without --yes")
			}
			return c.runText(cmd, "clear mood")
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm the deletion")
	return cmd
}

// signFlag resolves --sign, then the configured sign, then the default.
func (c *cli) signFlag(raw string) (model.Sign, error) {
	if raw != "" {
		return model.ParseSign(raw)
	}
	if sign := c.sign(); sign != "" {
		return sign, nil
	}
	return astro.DefaultSign, nil
}

func (c *cli) moodTrendCmd() *cobra.Command {
	var (
		rawSign string
		days    int
	)
	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Print the daily mood average for a sign",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sign, err := c.signFlag(rawSign)
			if err != nil {
				return err
			}
			s, err := c.openStore()
			if err != nil {
				return err
			}
			defer s.Close()
			set := s.Load(cmd.Context())
			if err := s.LoadErr(); err != nil {
				return err
			}

			trend := astro.BuildTrend(set.All(), sign, time.Now(), days)
			info := astro.Lookup(sign)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", info.Glyph, boldColor(info.Name))
			if trend.Count == 0 {
				fmt.Fprintln(out, dimColor("no mood entries yet"))
				return nil
			}
			if trend.FullHistory {
				fmt.Fprintln(out, warnColor(fmt.Sprintf("nothing in the last %d days, showing the full history", days)))
			}
			for _, d := range trend.Days {
				if d.Entries == 0 {
					continue
				}
				fmt.Fprintf(out, "%s  %5.2f  (%d)\n", d.Day.Format(model.DateLayout), d.Mean, d.Entries)
			}
			fmt.Fprintf(out, "mean %.2f over %d entries\n", trend.Mean, trend.Count)
			return nil
		},
	}
	cmd.Flags().StringVar(&rawSign, "sign", "", "zodiac sign (default from config)")
	cmd.Flags().IntVar(&days, "days", astro.DefaultTrendDays, "window size in days")
	return cmd
}

func (c *cli) moodRecommendCmd() *cobra.Command {
	var rawSign string
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Suggest a song and a self-care tip for the latest mood",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sign, err := c.signFlag(rawSign)
			if err != nil {
				return err
			}
			s, err := c.openStore()
			if err != nil {
				return err
			}
			defer s.Close()
			set := s.Load(cmd.Context())
			if err := s.LoadErr(); err != nil {
				return err
			}

			info := astro.Lookup(sign)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s: %s\n", info.Glyph, boldColor(info.Name), info.Horoscope)
			rec, ok := astro.Recommend(set.All(), sign, astro.RandomPicker)
			if !ok {
				fmt.Fprintln(out, dimColor("log a mood first: dayboard mood <mood>"))
				return nil
			}
			fmt.Fprintf(out, "latest mood: %s\n", rec.Mood)
			if rec.Song != nil {
				fmt.Fprintf(out, "song: %s %s\n", rec.Song.Title, dimColor(rec.Song.URL))
			}
			if rec.CareTip != "" {
				fmt.Fprintf(out, "self care: %s\n", rec.CareTip)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&rawSign, "sign", "", "zodiac sign (default from config)")
	return cmd
}
