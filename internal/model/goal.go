package model

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

type Goal struct {
	Text     string
	Current  float64
	Target   float64
	Deadline *time.Time
}

func (Goal) Category() Category { return CategoryGoal }

func (g Goal) Validate() error {
	if err := validateText(g.Text); err != nil {
		return err
	}
	if math.IsNaN(g.Target) || math.IsInf(g.Target, 0) || g.Target <= 0 {
		return fmt.Errorf("%w: target must be positive, got %v", ErrInvalidProgress, g.Target)
	}
	if math.IsNaN(g.Current) || g.Current < 0 || g.Current > g.Target {
		return fmt.Errorf("%w: current %v not in [0, %v]", ErrInvalidProgress, g.Current, g.Target)
	}
	return nil
}

func (g Goal) WithCurrent(current float64) (Goal, error) {
	next := g
	next.Current = current
	if err := next.Validate(); err != nil {
		return g, err
	}
	return next, nil
}

func (g Goal) WithTarget(target float64) (Goal, error) {
	next := g
	next.Target = target
	if err := next.Validate(); err != nil {
		return g, err
	}
	return next, nil
}

// Progress is current/target in [0, 1].
func (g Goal) Progress() float64 {
	if g.Target <= 0 {
		return 0
	}
	return math.Min(1, math.Max(0, g.Current/g.Target))
}

func (g Goal) Complete() bool {
	return g.Target > 0 && g.Current >= g.Target
}

func (g Goal) Overdue(now time.Time) bool {
	if g.Deadline == nil || g.Complete() {
		return false
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return g.Deadline.Before(today)
}

func NewGoal(text string, target float64, deadline *time.Time) (Goal, error) {
	g := Goal{Text: strings.TrimSpace(text), Target: target, Deadline: deadline}
	if deadline != nil {
		d := DateOnly(*deadline)
		g.Deadline = &d
	}
	if err := g.Validate(); err != nil {
		return Goal{}, err
	}
	return g, nil
}

func ParseDate(raw string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, errors.New("model: date must be YYYY-MM-DD")
	}
	return t, nil
}

// DateOnly drops the time of day, keeping the calendar date of t, as UTC
// midnight. Deadlines are stored at this precision.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
