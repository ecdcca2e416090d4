package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sandeepkv93/dayboard/internal/model"
)

type Type string

const (
	TypeAdd      Type = "add"
	TypeGoal     Type = "goal"
	TypeMood     Type = "mood"
	TypeDone     Type = "done"
	TypeProgress Type = "progress"
	TypeRemove   Type = "rm"
	TypeShow     Type = "show"
	TypeClear    Type = "clear"
)

// Mutates reports whether the command changes the store.
func (t Type) Mutates() bool {
	return t != TypeShow
}

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func invalid(format string, args ...any) error {
	return &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

type AddArgs struct {
	Category model.Category
	Text     string
}

type GoalArgs struct {
	Target   float64
	Text     string
	Deadline *time.Time
}

type MoodArgs struct {
	Mood model.Mood
	Sign model.Sign
	Note string
}

type DoneArgs struct {
	Target string
}

type ProgressArgs struct {
	Target string
	Value  float64
}

type RemoveArgs struct {
	Target string
}

type ShowArgs struct {
	Category model.Category
}

type ClearArgs struct {
	Category model.Category
}

type Command struct {
	Type     Type
	Raw      string
	Add      *AddArgs
	Goal     *GoalArgs
	Mood     *MoodArgs
	Done     *DoneArgs
	Progress *ProgressArgs
	Remove   *RemoveArgs
	Show     *ShowArgs
	Clear    *ClearArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeGoal:
		return parseGoal(input, args)
	case TypeMood:
		return parseMood(input, args)
	case TypeDone, "toggle":
		return parseDone(input, args)
	case TypeProgress:
		return parseProgress(input, args)
	case TypeRemove, "delete":
		return parseRemove(input, args)
	case TypeShow:
		return parseShow(input, args)
	case TypeClear:
		return parseClear(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, invalid("add requires a category and text")
	}
	category, err := model.ParseCategory(args[0])
	if err != nil {
		return Command{}, invalid("%v", err)
	}
	switch category {
	case model.CategoryGoal:
		return Command{}, invalid("use goal <target> <text> for goals")
	case model.CategoryMood:
		return Command{}, invalid("use mood <mood> for mood entries")
	}
	text := strings.TrimSpace(strings.Join(args[1:], " "))
	if text == "" {
		return Command{}, invalid("add requires text")
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Category: category, Text: text}}, nil
}

func parseGoal(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, invalid("goal requires a target and text")
	}
	target, err := strconv.ParseFloat(args[0], 64)
	if err != nil || target <= 0 {
		return Command{}, invalid("goal target must be a positive number, got %q", args[0])
	}
	out := GoalArgs{Target: target}
	words := make([]string, 0, len(args)-1)
	for _, arg := range args[1:] {
		if strings.HasPrefix(strings.ToLower(arg), "by:") {
			d, dateErr := model.ParseDate(arg[len("by:"):])
			if dateErr != nil {
				return Command{}, invalid("%v", dateErr)
			}
			out.Deadline = &d
			continue
		}
		words = append(words, arg)
	}
	out.Text = strings.TrimSpace(strings.Join(words, " "))
	if out.Text == "" {
		return Command{}, invalid("goal requires text")
	}
	return Command{Type: TypeGoal, Raw: raw, Goal: &out}, nil
}

func parseMood(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, invalid("mood requires one of happy, calm, neutral, anxious, sad")
	}
	mood, err := model.ParseMood(args[0])
	if err != nil {
		return Command{}, invalid("%v", err)
	}
	out := MoodArgs{Mood: mood}
	words := make([]string, 0, len(args)-1)
	for _, arg := range args[1:] {
		if strings.HasPrefix(strings.ToLower(arg), "sign:") {
			sign, signErr := model.ParseSign(arg[len("sign:"):])
			if signErr != nil {
				return Command{}, invalid("%v", signErr)
			}
			out.Sign = sign
			continue
		}
		words = append(words, arg)
	}
	out.Note = strings.TrimSpace(strings.Join(words, " "))
	return Command{Type: TypeMood, Raw: raw, Mood: &out}, nil
}

func parseDone(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, invalid("done requires one record id")
	}
	return Command{Type: TypeDone, Raw: raw, Done: &DoneArgs{Target: args[0]}}, nil
}

func parseProgress(raw string, args []string) (Command, error) {
	if len(args) != 2 {
		return Command{}, invalid("progress requires a record id and a value")
	}
	value, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return Command{}, invalid("progress value must be a number, got %q", args[1])
	}
	return Command{Type: TypeProgress, Raw: raw, Progress: &ProgressArgs{Target: args[0], Value: value}}, nil
}

func parseRemove(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, invalid("rm requires one record id")
	}
	return Command{Type: TypeRemove, Raw: raw, Remove: &RemoveArgs{Target: args[0]}}, nil
}

func parseShow(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, invalid("show requires a category")
	}
	category, err := model.ParseCategory(args[0])
	if err != nil {
		return Command{}, invalid("%v", err)
	}
	return Command{Type: TypeShow, Raw: raw, Show: &ShowArgs{Category: category}}, nil
}

func parseClear(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, invalid("clear requires a category")
	}
	category, err := model.ParseCategory(args[0])
	if err != nil {
		return Command{}, invalid("%v", err)
	}
	return Command{Type: TypeClear, Raw: raw, Clear: &ClearArgs{Category: category}}, nil
}
