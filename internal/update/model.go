package update

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"go.uber.org/zap"

	"github.com/sandeepkv93/dayboard/internal/astro"
	"github.com/sandeepkv93/dayboard/internal/jurisprudence"
	"github.com/sandeepkv93/dayboard/internal/logging"
	"github.com/sandeepkv93/dayboard/internal/model"
	"github.com/sandeepkv93/dayboard/internal/scheduler"
	"github.com/sandeepkv93/dayboard/internal/store"
	"github.com/sandeepkv93/dayboard/internal/watch"
)

type View string

const (
	ViewOverview  View = "Overview"
	ViewChecklist View = "Checklist"
	ViewShopping  View = "Shopping"
	ViewTasks     View = "Tasks"
	ViewMood      View = "Mood"
	ViewGoals     View = "Goals"
	ViewTerms     View = "Terms"
)

// Views lists every view in tab order.
func Views() []View {
	return []View{ViewOverview, ViewChecklist, ViewShopping, ViewTasks, ViewMood, ViewGoals, ViewTerms}
}

// Category is the record category a view lists, if any.
func (v View) Category() (model.Category, bool) {
	switch v {
	case ViewChecklist:
		return model.CategoryChecklist, true
	case ViewShopping:
		return model.CategoryShopping, true
	case ViewTasks:
		return model.CategoryTask, true
	case ViewMood:
		return model.CategoryMood, true
	case ViewGoals:
		return model.CategoryGoal, true
	default:
		return "", false
	}
}

func viewForCategory(c model.Category) (View, bool) {
	for _, v := range Views() {
		if vc, ok := v.Category(); ok && vc == c {
			return v, true
		}
	}
	return "", false
}

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Overview  string
	Checklist string
	Shopping  string
	Tasks     string
	Mood      string
	Goals     string
	Terms     string
	Help      string
	Quit      string
}

func (k GlobalKeyMap) viewFor(key string) (View, bool) {
	switch key {
	case k.Overview:
		return ViewOverview, true
	case k.Checklist:
		return ViewChecklist, true
	case k.Shopping:
		return ViewShopping, true
	case k.Tasks:
		return ViewTasks, true
	case k.Mood:
		return ViewMood, true
	case k.Goals:
		return ViewGoals, true
	case k.Terms:
		return ViewTerms, true
	default:
		return "", false
	}
}

func (k GlobalKeyMap) keyFor(v View) string {
	switch v {
	case ViewOverview:
		return k.Overview
	case ViewChecklist:
		return k.Checklist
	case ViewShopping:
		return k.Shopping
	case ViewTasks:
		return k.Tasks
	case ViewMood:
		return k.Mood
	case ViewGoals:
		return k.Goals
	case ViewTerms:
		return k.Terms
	default:
		return ""
	}
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

// Options wires the dashboard to its collaborators. Store is required; the
// scheduler and the watcher are optional.
type Options struct {
	Context      context.Context
	Store        *store.Store
	Scheduler    *scheduler.Engine
	Watcher      *watch.Watcher
	Logger       *zap.Logger
	Config       RuntimeConfig
	Now          func() time.Time
	Picker       astro.Picker
	Decisions    []jurisprudence.Decision
	DecisionSeed uint64
}

type Model struct {
	CurrentView   View
	Sign          model.Sign
	Records       store.RecordSet
	Cursors       map[View]int
	Palette       CommandPaletteState
	HelpVisible   bool
	Notifications []Notification
	DeadlineLog   []scheduler.DeadlineEvent
	Terms         TermsState
	Status        StatusBar
	Keys          GlobalKeyMap
	Quitting      bool
	LastError     error

	ctx       context.Context
	store     *store.Store
	scheduler *scheduler.Engine
	watcher   *watch.Watcher
	log       *zap.Logger
	now       func() time.Time
	pick      astro.Picker
	lead      time.Duration
	// fired remembers which deadline each goal was already reminded about.
	fired          map[string]time.Time
	recommendation *astro.Recommendation

	commandInput textinput.Model
	termsInput   textinput.Model
	goalProgress progress.Model
	termsTable   table.Model
	helpModel    help.Model
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type DeadlineDueMsg struct {
	Event scheduler.DeadlineEvent
}

// StoreChangedMsg reports that the data file changed outside the dashboard.
type StoreChangedMsg struct {
	Event watch.Event
}

type ReloadMsg struct{}

func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg == (RuntimeConfig{}) {
		cfg = DefaultRuntimeConfig()
	}
	m := Model{
		CurrentView: ViewOverview,
		Sign:        cfg.Sign,
		Cursors:     make(map[View]int),
		Keys: GlobalKeyMap{
			Overview:  "1",
			Checklist: "2",
			Shopping:  "3",
			Tasks:     "4",
			Mood:      "5",
			Goals:     "6",
			Terms:     "7",
			Help:      "?",
			Quit:      "q",
		},
		ctx:       opts.Context,
		store:     opts.Store,
		scheduler: opts.Scheduler,
		watcher:   opts.Watcher,
		log:       logging.OrNop(opts.Logger),
		now:       opts.Now,
		pick:      opts.Picker,
		lead:      cfg.ReminderLead,
		fired:     make(map[string]time.Time),
	}
	if m.ctx == nil {
		m.ctx = context.Background()
	}
	if m.now == nil {
		m.now = time.Now
	}
	if m.pick == nil {
		m.pick = astro.RandomPicker
	}
	if m.Sign == "" {
		m.Sign = astro.DefaultSign
	}
	m.initBubbleComponents()
	m.Terms = newTermsState(opts.Decisions, opts.DecisionSeed)
	m.refreshTerms()
	m.reload()
	return m
}

func (m *Model) initBubbleComponents() {
	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.termsInput = textinput.New()
	m.termsInput.Prompt = "terms> "
	m.termsInput.CharLimit = 256
	m.termsInput.Width = 42

	m.goalProgress = progress.New(progress.WithDefaultGradient(), progress.WithWidth(20), progress.WithoutPercentage())

	cols := []table.Column{
		{Title: "Term", Width: 24},
		{Title: "Count", Width: 7},
	}
	m.termsTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithHeight(8))

	m.helpModel = help.New()
}
