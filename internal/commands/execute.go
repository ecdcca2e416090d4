package commands

import "fmt"

type Result struct {
	Message string
	// RecordID is set when the command touched a single record.
	RecordID string
	// Focus is the category the caller should show next, if any.
	Focus string
}

type Handlers struct {
	Add      func(AddArgs) (Result, error)
	Goal     func(GoalArgs) (Result, error)
	Mood     func(MoodArgs) (Result, error)
	Done     func(DoneArgs) (Result, error)
	Progress func(ProgressArgs) (Result, error)
	Remove   func(RemoveArgs) (Result, error)
	Show     func(ShowArgs) (Result, error)
	Clear    func(ClearArgs) (Result, error)
}

func missing(name string) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: name + " handler not configured"}
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, missing("add")
		}
		return handlers.Add(*cmd.Add)
	case TypeGoal:
		if handlers.Goal == nil {
			return Result{}, missing("goal")
		}
		return handlers.Goal(*cmd.Goal)
	case TypeMood:
		if handlers.Mood == nil {
			return Result{}, missing("mood")
		}
		return handlers.Mood(*cmd.Mood)
	case TypeDone:
		if handlers.Done == nil {
			return Result{}, missing("done")
		}
		return handlers.Done(*cmd.Done)
	case TypeProgress:
		if handlers.Progress == nil {
			return Result{}, missing("progress")
		}
		return handlers.Progress(*cmd.Progress)
	case TypeRemove:
		if handlers.Remove == nil {
			return Result{}, missing("rm")
		}
		return handlers.Remove(*cmd.Remove)
	case TypeShow:
		if handlers.Show == nil {
			return Result{}, missing("show")
		}
		return handlers.Show(*cmd.Show)
	case TypeClear:
		if handlers.Clear == nil {
			return Result{}, missing("clear")
		}
		return handlers.Clear(*cmd.Clear)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
