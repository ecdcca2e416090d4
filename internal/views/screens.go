package views

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type ItemRow struct {
	ID       string
	Text     string
	Done     bool
	Selected bool
	Detail   string
}

type ListPanelData struct {
	Title   string
	Rows    []ItemRow
	Summary string
	Actions string
}

type CategoryCount struct {
	Name  string
	Done  int
	Total int
}

type OverviewData struct {
	Date         string
	Counts       []CategoryCount
	MoodToday    string
	GoalProgress string
	NextDeadline string
	Overdue      []string
}

type TrendPoint struct {
	Day     string
	Mean    float64
	Entries int
}

type MoodPanelData struct {
	SignName    string
	Glyph       string
	Color       string
	Trend       []TrendPoint
	Mean        float64
	Count       int
	FullHistory bool
	Rows        []ItemRow
}

// MoodCardData feeds the markdown card rendered next to the mood journal.
type MoodCardData struct {
	SignName  string
	Glyph     string
	Horoscope string
	Mood      string
	Song      string
	SongURL   string
	CareTip   string
}

type GoalRow struct {
	ID           string
	Text         string
	ProgressView string
	Percent      float64
	Current      float64
	Target       float64
	Deadline     string
	Overdue      bool
	Complete     bool
	Selected     bool
}

type GoalsPanelData struct {
	Rows    []GoalRow
	Summary string
}

type BucketData struct {
	Value string
	Count int
	Share float64
}

type TermsPanelData struct {
	Terms     string
	Court     string
	Requested int
	Total     int
	TableView string
	Outcomes  []BucketData
	Courts    []BucketData
	Editing   bool
	InputView string
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderListPanel(data ListPanelData) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(strings.ToLower(data.Title)+":") + "\n")
	if data.Summary != "" {
		b.WriteString(data.Summary + "\n")
	}
	if data.Actions != "" {
		b.WriteString(mutedStyle.Render("actions: "+data.Actions) + "\n")
	}
	if len(data.Rows) == 0 {
		b.WriteString("  (empty)")
		return b.String()
	}
	for _, row := range data.Rows {
		b.WriteString(renderItemRow(row) + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func renderItemRow(row ItemRow) string {
	cursor := " "
	if row.Selected {
		cursor = cursorStyle.Render(">")
	}
	box := "[ ]"
	text := row.Text
	if row.Done {
		box = "[x]"
		text = doneStyle.Render(text)
	}
	line := fmt.Sprintf("%s %s %s %s", cursor, box, mutedStyle.Render(row.ID), text)
	if row.Detail != "" {
		line += " " + mutedStyle.Render(row.Detail)
	}
	return line
}

func RenderOverview(data OverviewData) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("overview: "+data.Date) + "\n")
	for _, c := range data.Counts {
		b.WriteString(fmt.Sprintf("%-10s %d/%d done\n", c.Name, c.Done, c.Total))
	}
	mood := data.MoodToday
	if mood == "" {
		mood = "(not logged)"
	}
	b.WriteString(fmt.Sprintf("\nmood today: %s\n", mood))
	if data.GoalProgress != "" {
		b.WriteString(fmt.Sprintf("goal progress: %s\n", data.GoalProgress))
	}
	if data.NextDeadline != "" {
		b.WriteString(fmt.Sprintf("next deadline: %s\n", data.NextDeadline))
	}
	for _, text := range data.Overdue {
		b.WriteString(warnStyle.Render("overdue: "+text) + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderMoodPanel(data MoodPanelData) string {
	accent := lipgloss.NewStyle().Bold(true)
	if data.Color != "" {
		accent = accent.Foreground(lipgloss.Color(data.Color))
	}
	var b strings.Builder
	b.WriteString(accent.Render(strings.TrimSpace(data.Glyph+" "+data.SignName)) + "\n")
	b.WriteString(mutedStyle.Render("actions: [s]next sign [j/k]move [d]delete") + "\n")

	if data.Count == 0 {
		b.WriteString("trend: no entries yet\n")
	} else {
		label := "trend"
		if data.FullHistory {
			label = "trend (full history)"
		}
		b.WriteString(fmt.Sprintf("%s: mean %.2f over %d entries\n", label, data.Mean, data.Count))
		for _, p := range data.Trend {
			if p.Entries == 0 {
				continue
			}
			b.WriteString(fmt.Sprintf("%s %s %.2f\n", p.Day, scoreBar(p.Mean), p.Mean))
		}
	}

	b.WriteString("\nhistory:\n")
	if len(data.Rows) == 0 {
		b.WriteString("  (empty)")
		return b.String()
	}
	for _, row := range data.Rows {
		cursor := " "
		if row.Selected {
			cursor = cursorStyle.Render(">")
		}
		line := fmt.Sprintf("%s %s %s", cursor, mutedStyle.Render(row.ID), row.Text)
		if row.Detail != "" {
			line += " " + mutedStyle.Render(row.Detail)
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// scoreBar maps a mood score in [-1, 3] onto a five cell bar.
func scoreBar(score float64) string {
	filled := int(math.Round((score + 1) * 5 / 4))
	filled = max(0, min(filled, 5))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", 5-filled) + "]"
}

// MoodCardMarkdown builds the horoscope and recommendation card.
func MoodCardMarkdown(data MoodCardData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("## %s %s\n\n", data.Glyph, data.SignName))
	b.WriteString(fmt.Sprintf("> %s\n\n", data.Horoscope))
	if data.Mood == "" {
		b.WriteString("_Log a mood to get a recommendation._\n")
		return b.String()
	}
	b.WriteString(fmt.Sprintf("**Latest mood:** %s\n\n", data.Mood))
	if data.Song != "" && data.SongURL != "" {
		b.WriteString(fmt.Sprintf("- Song: [%s](%s)\n", data.Song, data.SongURL))
	} else if data.Song != "" {
		b.WriteString(fmt.Sprintf("- Song: %s\n", data.Song))
	}
	if data.CareTip != "" {
		b.WriteString(fmt.Sprintf("- Self care: %s\n", data.CareTip))
	}
	return b.String()
}

func RenderGoalsPanel(data GoalsPanelData) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("goals:") + "\n")
	if data.Summary != "" {
		b.WriteString(data.Summary + "\n")
	}
	b.WriteString(mutedStyle.Render("actions: [j/k]move [+/-]step [d]delete") + "\n")
	if len(data.Rows) == 0 {
		b.WriteString("  (empty)")
		return b.String()
	}
	for _, row := range data.Rows {
		cursor := " "
		if row.Selected {
			cursor = cursorStyle.Render(">")
		}
		text := row.Text
		if row.Complete {
			text = doneStyle.Render(text)
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", cursor, mutedStyle.Render(row.ID), text))
		b.WriteString(fmt.Sprintf("  %s %g/%g (%.0f%%)", row.ProgressView, row.Current, row.Target, row.Percent))
		if row.Deadline != "" {
			deadline := "by " + row.Deadline
			if row.Overdue {
				deadline = warnStyle.Render(deadline + " overdue")
			}
			b.WriteString(" " + deadline)
		}
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderTermsPanel(data TermsPanelData) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("jurisprudence:") + "\n")
	if data.Requested > 0 {
		b.WriteString(fmt.Sprintf("court: %s | decisions: %d of %d\n", data.Court, data.Total, data.Requested))
	} else {
		b.WriteString(fmt.Sprintf("court: %s | decisions: %d\n", data.Court, data.Total))
	}
	b.WriteString(fmt.Sprintf("terms: %s\n", data.Terms))
	if data.Editing {
		b.WriteString(data.InputView + "\n")
	}
	b.WriteString(mutedStyle.Render("actions: [c]court [e]edit terms [+/-]count [r]resample") + "\n")
	b.WriteString(data.TableView + "\n")
	renderBuckets(&b, "outcomes", data.Outcomes)
	renderBuckets(&b, "courts", data.Courts)
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderTermsSample(sample []string) string {
	if len(sample) == 0 {
		return "sample:\n(none)"
	}
	return "sample:\n- " + strings.Join(sample, "\n- ")
}

func renderBuckets(b *strings.Builder, title string, buckets []BucketData) {
	b.WriteString(fmt.Sprintf("\n%s:\n", title))
	if len(buckets) == 0 {
		b.WriteString("  (none)\n")
		return
	}
	for _, bucket := range buckets {
		b.WriteString(fmt.Sprintf("  %-24s %3d %5.1f%%\n", bucket.Value, bucket.Count, bucket.Share*100))
	}
}

func RenderCommandPalette(active bool, inputView string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: %s", inputView)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}
