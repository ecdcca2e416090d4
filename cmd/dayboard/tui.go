package main

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sandeepkv93/dayboard/internal/scheduler"
	"github.com/sandeepkv93/dayboard/internal/update"
	"github.com/sandeepkv93/dayboard/internal/watch"
)

func (c *cli) runDashboard(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	rc, err := update.RuntimeConfigFrom(c.cfg)
	if err != nil {
		return err
	}
	decisionsPath, _ := cmd.Flags().GetString("decisions")
	decisions, err := loadDecisions(decisionsPath)
	if err != nil {
		return fmt.Errorf("load decisions: %w", err)
	}

	s, err := c.openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	engine := scheduler.NewEngine(rc.SchedulerBuffer, c.logger.Named("scheduler"))
	engine.Start()
	defer engine.Stop()

	var watcher *watch.Watcher
	if rc.Watch {
		watcher, err = watch.New(s.Path(), watch.DefaultDebounce, c.logger.Named("watch"))
		if err != nil {
			return err
		}
		if err := watcher.Start(ctx); err != nil {
			return err
		}
		defer watcher.Stop()
	}

	m := update.NewModel(update.Options{
		Context:      ctx,
		Store:        s,
		Scheduler:    engine,
		Watcher:      watcher,
		Logger:       c.logger.Named("ui"),
		Config:       rc,
		Decisions:    decisions,
		DecisionSeed: uint64(time.Now().UnixNano()),
	})
	c.logger.Info("dashboard started",
		zap.String("store", s.Path()),
		zap.String("format", string(s.Format())),
		zap.Bool("watch", rc.Watch),
	)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}
