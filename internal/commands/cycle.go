package commands

import (
	"context"
	"fmt"

	"github.com/sandeepkv93/dayboard/internal/model"
	"github.com/sandeepkv93/dayboard/internal/store"
)

// ShortID is the id prefix shown to users.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// StoreHandlers binds every command to s. The handlers only change the
// in-memory set; Run takes care of loading and persisting around them.
// defaultSign tags mood entries that do not name a sign.
func StoreHandlers(s *store.Store, defaultSign model.Sign) Handlers {
	added := func(rec model.Record) Result {
		return Result{
			Message:  fmt.Sprintf("added %s %q (%s)", rec.Category(), rec.Text(), ShortID(rec.ID)),
			RecordID: rec.ID,
			Focus:    string(rec.Category()),
		}
	}
	return Handlers{
		Add: func(a AddArgs) (Result, error) {
			entry, err := model.NewItem(a.Category, a.Text)
			if err != nil {
				return Result{}, err
			}
			rec, err := s.Add(entry)
			if err != nil {
				return Result{}, err
			}
			return added(rec), nil
		},
		Goal: func(a GoalArgs) (Result, error) {
			g, err := model.NewGoal(a.Text, a.Target, a.Deadline)
			if err != nil {
				return Result{}, err
			}
			rec, err := s.Add(g)
			if err != nil {
				return Result{}, err
			}
			return added(rec), nil
		},
		Mood: func(a MoodArgs) (Result, error) {
			sign := a.Sign
			if sign == "" {
				sign = defaultSign
			}
			rec, err := s.Add(model.MoodEntry{Mood: a.Mood, Sign: sign, Note: a.Note})
			if err != nil {
				return Result{}, err
			}
			return Result{
				Message:  fmt.Sprintf("logged mood %s (%s)", a.Mood, ShortID(rec.ID)),
				RecordID: rec.ID,
				Focus:    string(model.CategoryMood),
			}, nil
		},
		Done: func(a DoneArgs) (Result, error) {
			rec, err := s.Resolve(a.Target)
			if err != nil {
				return Result{}, err
			}
			rec, err = s.Toggle(rec.ID)
			if err != nil {
				return Result{}, err
			}
			state := "open"
			if rec.Done() {
				state = "done"
			}
			return Result{
				Message:  fmt.Sprintf("%q is %s", rec.Text(), state),
				RecordID: rec.ID,
				Focus:    string(rec.Category()),
			}, nil
		},
		Progress: func(a ProgressArgs) (Result, error) {
			rec, err := s.Resolve(a.Target)
			if err != nil {
				return Result{}, err
			}
			rec, err = s.Update(rec.ID, model.FieldCurrent, a.Value)
			if err != nil {
				return Result{}, err
			}
			g := rec.Entry.(model.Goal)
			return Result{
				Message:  fmt.Sprintf("%q at %.0f%%", g.Text, g.Progress()*100),
				RecordID: rec.ID,
				Focus:    string(model.CategoryGoal),
			}, nil
		},
		Remove: func(a RemoveArgs) (Result, error) {
			rec, err := s.Resolve(a.Target)
			if err != nil {
				return Result{}, err
			}
			if err := s.Delete(rec.ID); err != nil {
				return Result{}, err
			}
			return Result{
				Message:  fmt.Sprintf("deleted %s %q", rec.Category(), rec.Text()),
				RecordID: rec.ID,
				Focus:    string(rec.Category()),
			}, nil
		},
		Show: func(a ShowArgs) (Result, error) {
			return Result{Message: "showing " + string(a.Category), Focus: string(a.Category)}, nil
		},
		Clear: func(a ClearArgs) (Result, error) {
			n := s.DeleteCategory(a.Category)
			return Result{Message: fmt.Sprintf("cleared %d %s records", n, a.Category), Focus: string(a.Category)}, nil
		},
	}
}

// Run executes one input against s as a single load, mutate, persist cycle.
// Nothing is persisted when parsing or the mutation fails.
func Run(ctx context.Context, s *store.Store, input string, defaultSign model.Sign) (Result, error) {
	cmd, err := Parse(input)
	if err != nil {
		return Result{}, err
	}
	return RunCommand(ctx, s, cmd, defaultSign)
}

func RunCommand(ctx context.Context, s *store.Store, cmd Command, defaultSign model.Sign) (Result, error) {
	s.Load(ctx)
	res, err := Execute(cmd, StoreHandlers(s, defaultSign))
	if err != nil {
		return Result{}, err
	}
	if cmd.Type.Mutates() {
		if err := s.Persist(ctx); err != nil {
			return Result{}, err
		}
	}
	return res, nil
}
