package update

import (
	"fmt"
	"time"

	"github.com/sandeepkv93/dayboard/internal/astro"
	"github.com/sandeepkv93/dayboard/internal/config"
	"github.com/sandeepkv93/dayboard/internal/model"
)

// RuntimeConfig is the part of the application config the dashboard reads.
type RuntimeConfig struct {
	Sign            model.Sign
	ReminderLead    time.Duration
	SchedulerBuffer int
	Watch           bool
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		Sign:            astro.DefaultSign,
		ReminderLead:    24 * time.Hour,
		SchedulerBuffer: 64,
	}
}

func RuntimeConfigFrom(cfg config.Config) (RuntimeConfig, error) {
	out := DefaultRuntimeConfig()
	if cfg.Sign != "" {
		sign, err := model.ParseSign(cfg.Sign)
		if err != nil {
			return RuntimeConfig{}, fmt.Errorf("update: %w", err)
		}
		out.Sign = sign
	}
	if cfg.ReminderLeadHours >= 0 {
		out.ReminderLead = time.Duration(cfg.ReminderLeadHours) * time.Hour
	}
	if cfg.SchedulerBuffer > 0 {
		out.SchedulerBuffer = cfg.SchedulerBuffer
	}
	out.Watch = cfg.Watch
	return out, nil
}
