package commands

import (
	"errors"
	"testing"
	"time"

	"github.com/sandeepkv93/dayboard/internal/model"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add task pay rent", TypeAdd},
		{"goal 500 read pages by:2026-04-01", TypeGoal},
		{"mood calm sign:leo quiet day", TypeMood},
		{"done 1a2b", TypeDone},
		{"toggle 1a2b", TypeDone},
		{"progress 1a2b 20", TypeProgress},
		{"rm 1a2b", TypeRemove},
		{"show shopping", TypeShow},
		{"clear mood", TypeClear},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseArguments(t *testing.T) {
	cmd, err := Parse("add compras oat milk")
	if err != nil {
		t.Fatalf("parse add: %v", err)
	}
	if cmd.Add.Category != model.CategoryShopping || cmd.Add.Text != "oat milk" {
		t.Fatalf("unexpected add args: %+v", cmd.Add)
	}

	cmd, err = Parse("goal 42.5 run a marathon by:2026-10-01")
	if err != nil {
		t.Fatalf("parse goal: %v", err)
	}
	want := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	if cmd.Goal.Target != 42.5 || cmd.Goal.Text != "run a marathon" || cmd.Goal.Deadline == nil || !cmd.Goal.Deadline.Equal(want) {
		t.Fatalf("unexpected goal args: %+v", cmd.Goal)
	}

	cmd, err = Parse("mood Anxious exam tomorrow sign:virgo")
	if err != nil {
		t.Fatalf("parse mood: %v", err)
	}
	if cmd.Mood.Mood != model.MoodAnxious || cmd.Mood.Sign != model.SignVirgo || cmd.Mood.Note != "exam tomorrow" {
		t.Fatalf("unexpected mood args: %+v", cmd.Mood)
	}
}

func TestParseRejectsBadArguments(t *testing.T) {
	bad := []string{
		"add task",
		"add goal read",
		"add bills pay",
		"goal -3 nothing",
		"goal 10",
		"goal 10 x by:tomorrow",
		"mood elated",
		"mood calm sign:dragon",
		"done",
		"progress abc lots",
		"rm a b",
		"show",
		"clear",
	}
	for _, in := range bad {
		_, err := Parse(in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
			t.Fatalf("parse %q: expected invalid argument, got %v", in, err)
		}
	}
}

func TestParseUnknownCommand(t *testing.T) {
	_, err := Parse("/unknown do x")
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown command error, got %v", err)
	}
	_, err = Parse("  / ")
	if !errors.As(err, &ce) || ce.Code != ErrCodeEmptyInput {
		t.Fatalf("expected empty input error, got %v", err)
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/add checklist write docs")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Add: func(a AddArgs) (Result, error) {
			called = true
			if a.Text != "write docs" {
				t.Fatalf("unexpected text: %q", a.Text)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("show tasks")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
