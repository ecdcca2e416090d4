package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sandeepkv93/dayboard/internal/model"
	"github.com/sandeepkv93/dayboard/internal/store"
)

func (c *cli) exportCmd() *cobra.Command {
	var (
		format   string
		category string
		output   string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the records as CSV, whatever the storage format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f := strings.ToLower(format); f != string(store.FormatCSV) {
				return fmt.Errorf("unsupported export format %q", format)
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

			records := set.All()
			if category != "" {
				cat, err := model.ParseCategory(category)
				if err != nil {
					return err
				}
				records = set.Category(cat)
			}

			var out io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			if err := store.EncodeCSV(out, records); err != nil {
				return err
			}
			c.logger.Debug("exported records", zap.Int("count", len(records)), zap.String("output", output))
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", string(store.FormatCSV), "export format (csv)")
	cmd.Flags().StringVar(&category, "category", "", "only export this category")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}
