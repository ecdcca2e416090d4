package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sandeepkv93/dayboard/internal/commands"
	"github.com/sandeepkv93/dayboard/internal/model"
)

var (
	okColor   = color.New(color.FgGreen).SprintFunc()
	warnColor = color.New(color.FgYellow).SprintFunc()
	dimColor  = color.New(color.Faint).SprintFunc()
	boldColor = color.New(color.Bold).SprintFunc()
)

// runText executes one text command, the same grammar the dashboard
// palette accepts, as a single load, change, save cycle.
func (c *cli) runText(cmd *cobra.Command, input string) error {
	s, err := c.openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	parsed, err := commands.Parse(input)
	if err != nil {
		return err
	}
	res, err := commands.RunCommand(cmd.Context(), s, parsed, c.sign())
	if err != nil {
		c.logger.Debug("command failed", zap.String("input", input), zap.Error(err))
		return err
	}
	if loadErr := s.LoadErr(); loadErr != nil && parsed.Type.Mutates() {
		c.logger.Warn("unreadable data file overwritten", zap.String("path", s.Path()), zap.Error(loadErr))
		fmt.Fprintln(cmd.ErrOrStderr(), warnColor(fmt.Sprintf(
			"warning: %s could not be read and was overwritten: %v", s.Path(), loadErr)))
	}
	fmt.Fprintln(cmd.OutOrStdout(), okColor(res.Message))
	return nil
}

func (c *cli) sign() model.Sign {
	if sign, err := model.ParseSign(c.cfg.Sign); err == nil {
		return sign
	}
	return ""
}

func (c *cli) textCmd(verb, use, short string, args cobra.PositionalArgs) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runText(cmd, verb+" "+strings.Join(args, " "))
		},
	}
}

func (c *cli) addCmd() *cobra.Command {
	cmd := c.textCmd("add", "add <checklist|shopping|task> <text...>", "Add a checklist, shopping or task item", cobra.MinimumNArgs(2))
	cmd.Example = "  dayboard add shopping oat milk\n  dayboard add task renew passport"
	return cmd
}

func (c *cli) goalCmd() *cobra.Command {
	cmd := c.textCmd("goal", "goal <target> <text...> [by:YYYY-MM-DD]", "Add a goal with a numeric target", cobra.MinimumNArgs(2))
	cmd.Example = "  dayboard goal 12 read books by:2026-12-31"
	return cmd
}

func (c *cli) doneCmd() *cobra.Command {
	return c.textCmd("done", "done <id-prefix>", "Toggle an item between open and done", cobra.ExactArgs(1))
}

func (c *cli) progressCmd() *cobra.Command {
	return c.textCmd("progress", "progress <id-prefix> <value>", "Set the current progress of a goal", cobra.ExactArgs(2))
}

func (c *cli) rmCmd() *cobra.Command {
	cmd := c.textCmd("rm", "rm <id-prefix>", "Delete a record", cobra.ExactArgs(1))
	cmd.Aliases = []string{"delete"}
	return cmd
}

func (c *cli) clearCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear <category>",
		Short: "Delete every record of a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to clear without --yes")
			}
			return c.runText(cmd, "clear "+args[0])
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm the deletion")
	return cmd
}
