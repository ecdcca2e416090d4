package update

import (
	"testing"
	"time"

	"github.com/sandeepkv93/dayboard/internal/config"
	"github.com/sandeepkv93/dayboard/internal/model"
)

func TestRuntimeConfigDefaults(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	if cfg.Sign != model.SignLibra || cfg.ReminderLead != 24*time.Hour {
		t.Fatalf("unexpected runtime defaults: %+v", cfg)
	}
	if cfg.SchedulerBuffer != 64 || cfg.Watch {
		t.Fatalf("unexpected runtime defaults: %+v", cfg)
	}
}

func TestRuntimeConfigFromConfig(t *testing.T) {
	base := config.Default()
	base.Sign = "Leo"
	base.ReminderLeadHours = 6
	base.SchedulerBuffer = 128
	base.Watch = true

	cfg, err := RuntimeConfigFrom(base)
	if err != nil {
		t.Fatalf("RuntimeConfigFrom: %v", err)
	}
	if cfg.Sign != model.SignLeo || cfg.ReminderLead != 6*time.Hour {
		t.Fatalf("unexpected sign or lead: %+v", cfg)
	}
	if cfg.SchedulerBuffer != 128 || !cfg.Watch {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}

	base.Sign = "dragon"
	if _, err := RuntimeConfigFrom(base); err == nil {
		t.Fatal("expected invalid sign error")
	}
}
