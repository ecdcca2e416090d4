package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/dayboard/internal/commands"
	"github.com/sandeepkv93/dayboard/internal/model"
	"github.com/sandeepkv93/dayboard/internal/store"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func (c *cli) listCmd() *cobra.Command {
	var limit, offset int
	cmd := &cobra.Command{
		Use:     "list [category]",
		Aliases: []string{"ls", "show"},
		Short:   "List records, optionally of one category",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := store.RecordListFilter{Limit: limit, Offset: offset}
			if len(args) == 1 {
				category, err := model.ParseCategory(args[0])
				if err != nil {
					return err
				}
				filter.Category = category
			}
			s, err := c.openStore()
			if err != nil {
				return err
			}
			defer s.Close()
			records, err := s.List(cmd.Context(), filter)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), dimColor("no records"))
				return nil
			}

			t := newTable("ID", "CATEGORY", "ITEM", "STATUS", "CREATED")
			for _, rec := range records {
				t.Row(
					commands.ShortID(rec.ID),
					string(rec.Category()),
					rec.Text(),
					recordStatus(rec),
					rec.Created.Local().Format("2006-01-02 15:04"),
				)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "show at most this many records (0 for all)")
	cmd.Flags().IntVar(&offset, "offset", 0, "skip this many records")
	return cmd
}

func recordStatus(rec model.Record) string {
	switch e := rec.Entry.(type) {
	case model.MoodEntry:
		if e.Sign != "" {
			return fmt.Sprintf("%s (%s)", e.Mood, e.Sign)
		}
		return string(e.Mood)
	case model.Goal:
		status := fmt.Sprintf("%g/%g", e.Current, e.Target)
		if e.Deadline != nil {
			status += " by " + e.Deadline.Format(model.DateLayout)
		}
		return status
	}
	if rec.Done() {
		return "done"
	}
	return "open"
}

func (c *cli) summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print completion and progress per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := c.openStore()
			if err != nil {
				return err
			}
			defer s.Close()
			set := s.Load(cmd.Context())
			if err := s.LoadErr(); err != nil {
				return err
			}

			t := newTable("CATEGORY", "RECORDS", "MEASURE", "VALUE")
			for _, category := range model.Categories() {
				sum := set.Aggregate(category, summaryField(category))
				t.Row(string(category), fmt.Sprint(sum.Count), string(sum.Field), summaryValue(sum))
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}

func summaryField(c model.Category) model.Field {
	switch c {
	case model.CategoryGoal:
		return model.FieldCurrent
	case model.CategoryMood:
		return model.FieldMood
	default:
		return model.FieldDone
	}
}

func summaryValue(sum store.Summary) string {
	if sum.Count == 0 {
		return "-"
	}
	switch sum.Field {
	case model.FieldMood:
		return fmt.Sprintf("mean %.2f", sum.Ratio())
	case model.FieldCurrent:
		return fmt.Sprintf("%g/%g (%.0f%%)", sum.Value, sum.Total, sum.Percent())
	default:
		return fmt.Sprintf("%.0f/%.0f (%.0f%%)", sum.Value, sum.Total, sum.Percent())
	}
}
