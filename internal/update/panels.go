package update

import (
	"fmt"
	"strings"
	"time"

	"github.com/sandeepkv93/dayboard/internal/astro"
	"github.com/sandeepkv93/dayboard/internal/commands"
	"github.com/sandeepkv93/dayboard/internal/model"
	"github.com/sandeepkv93/dayboard/internal/store"
	"github.com/sandeepkv93/dayboard/internal/views"
)

const notificationLogSize = 40

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.commandInput.View())
}

func (m Model) renderNotificationsView() string {
	if len(m.Notifications) == 0 {
		return ""
	}
	n := m.Notifications[len(m.Notifications)-1]
	return views.RenderNotification(n.Level, n.Body)
}

func (m Model) renderOverview() string {
	today := m.now()
	data := views.OverviewData{Date: today.Format("Monday, 02 Jan 2006")}
	for _, c := range model.Categories() {
		s := m.Records.Aggregate(c, model.FieldDone)
		data.Counts = append(data.Counts, views.CategoryCount{Name: string(c), Done: int(s.Value), Total: s.Count})
	}
	if mood, ok := moodOfDay(m.Records.Category(model.CategoryMood), today); ok {
		data.MoodToday = string(mood)
	}

	goals := m.Records.Category(model.CategoryGoal)
	if len(goals) > 0 {
		s := store.Aggregate(goals, model.CategoryGoal, model.FieldCurrent)
		data.GoalProgress = fmt.Sprintf("%.0f%% across %d goal(s)", s.Percent(), s.Count)
	}
	var next *model.Goal
	for _, rec := range goals {
		g := rec.Entry.(model.Goal)
		if g.Overdue(today) {
			data.Overdue = append(data.Overdue, g.Text)
			continue
		}
		if g.Deadline == nil || g.Complete() {
			continue
		}
		if next == nil || g.Deadline.Before(*next.Deadline) {
			next = &g
		}
	}
	if next != nil {
		data.NextDeadline = fmt.Sprintf("%s (%s)", next.Text, next.Deadline.Format(model.DateLayout))
	}
	return views.RenderOverview(data)
}

// moodOfDay is the latest mood logged on the calendar day of now.
func moodOfDay(records []model.Record, now time.Time) (model.Mood, bool) {
	y, mo, d := now.Date()
	var latest model.Record
	found := false
	for _, rec := range records {
		ry, rm, rd := rec.Created.In(now.Location()).Date()
		if ry != y || rm != mo || rd != d {
			continue
		}
		if !found || !rec.Created.Before(latest.Created) {
			latest = rec
			found = true
		}
	}
	if !found {
		return "", false
	}
	return latest.Entry.(model.MoodEntry).Mood, true
}

func (m Model) renderListView() string {
	c, _ := m.CurrentView.Category()
	s := m.Records.Aggregate(c, model.FieldDone)
	return views.RenderListPanel(views.ListPanelData{
		Title:   string(m.CurrentView),
		Rows:    m.itemRows(),
		Summary: fmt.Sprintf("%d/%d done (%.0f%%)", int(s.Value), s.Count, s.Percent()),
		Actions: "[j/k]move [space]toggle [d]delete [/]add",
	})
}

func (m Model) renderMoodView() (string, string) {
	info := astro.Lookup(m.Sign)
	trend := astro.BuildTrend(m.Records.All(), m.Sign, m.now(), astro.DefaultTrendDays)
	points := make([]views.TrendPoint, 0, len(trend.Days))
	for _, d := range trend.Days {
		points = append(points, views.TrendPoint{Day: d.Day.Format(model.DateLayout), Mean: d.Mean, Entries: d.Entries})
	}

	records := m.visibleRecords()
	cursor := m.Cursors[ViewMood]
	rows := make([]views.ItemRow, 0, len(records))
	for i, rec := range records {
		entry := rec.Entry.(model.MoodEntry)
		text := string(entry.Mood)
		if entry.Note != "" {
			text += ": " + entry.Note
		}
		rows = append(rows, views.ItemRow{
			ID:       commands.ShortID(rec.ID),
			Text:     text,
			Selected: i == cursor,
			Detail:   rec.Created.Local().Format("Jan 02 15:04"),
		})
	}

	left := views.RenderMoodPanel(views.MoodPanelData{
		SignName:    info.Name,
		Glyph:       info.Glyph,
		Color:       info.Color,
		Trend:       points,
		Mean:        trend.Mean,
		Count:       trend.Count,
		FullHistory: trend.FullHistory,
		Rows:        rows,
	})

	card := views.MoodCardData{SignName: info.Name, Glyph: info.Glyph, Horoscope: info.Horoscope}
	if rec := m.recommendation; rec != nil {
		card.Mood = string(rec.Mood)
		card.CareTip = rec.CareTip
		if rec.Song != nil {
			card.Song = rec.Song.Title
			card.SongURL = rec.Song.URL
		}
	}
	return left, views.RenderMarkdown(views.MoodCardMarkdown(card))
}

func (m Model) renderGoalsView() string {
	records := m.visibleRecords()
	cursor := m.Cursors[ViewGoals]
	today := m.now()
	rows := make([]views.GoalRow, 0, len(records))
	for i, rec := range records {
		g := rec.Entry.(model.Goal)
		row := views.GoalRow{
			ID:           commands.ShortID(rec.ID),
			Text:         g.Text,
			ProgressView: m.goalProgress.ViewAs(g.Progress()),
			Percent:      g.Progress() * 100,
			Current:      g.Current,
			Target:       g.Target,
			Overdue:      g.Overdue(today),
			Complete:     g.Complete(),
			Selected:     i == cursor,
		}
		if g.Deadline != nil {
			row.Deadline = g.Deadline.Format(model.DateLayout)
		}
		rows = append(rows, row)
	}
	s := m.Records.Aggregate(model.CategoryGoal, model.FieldDone)
	return views.RenderGoalsPanel(views.GoalsPanelData{
		Rows:    rows,
		Summary: fmt.Sprintf("%d/%d complete", int(s.Value), s.Count),
	})
}

func (m Model) renderDeadlineLog() string {
	if len(m.DeadlineLog) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("deadlines:\n")
	for i := len(m.DeadlineLog) - 1; i >= 0 && i >= len(m.DeadlineLog)-5; i-- {
		ev := m.DeadlineLog[i]
		b.WriteString(fmt.Sprintf("- %s %s\n", ev.Deadline.Format(model.DateLayout), ev.Text))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (m *Model) notify(title, body, level string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	m.Notifications = append(m.Notifications, Notification{
		Title: title,
		Body:  body,
		Level: level,
		At:    m.now().UTC(),
	})
	if len(m.Notifications) > notificationLogSize {
		m.Notifications = m.Notifications[len(m.Notifications)-notificationLogSize:]
	}
}
