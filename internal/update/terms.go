package update

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/dayboard/internal/jurisprudence"
	"github.com/sandeepkv93/dayboard/internal/views"
)

type TermsState struct {
	Raw     string
	Filter  jurisprudence.CourtFilter
	Count   int
	Editing bool
	Report  jurisprudence.Report

	loaded []jurisprudence.Decision
	rng    *rand.Rand
}

func newTermsState(loaded []jurisprudence.Decision, seed uint64) TermsState {
	return TermsState{
		Raw:    jurisprudence.DefaultTerms,
		Filter: jurisprudence.FilterBoth,
		Count:  jurisprudence.DefaultCount,
		loaded: loaded,
		rng:    jurisprudence.NewRand(seed),
	}
}

// refreshTerms re-draws the analysed decisions and recounts the terms.
func (m *Model) refreshTerms() {
	decisions := jurisprudence.Select(m.Terms.loaded, m.Terms.Filter, m.Terms.Count, m.Terms.rng)
	m.Terms.Report = jurisprudence.Analyze(decisions, jurisprudence.ParseTerms(m.Terms.Raw), m.Terms.rng)

	rows := make([]table.Row, 0, len(m.Terms.Report.Terms))
	for _, tc := range m.Terms.Report.Terms {
		rows = append(rows, table.Row{tc.Term, strconv.Itoa(tc.Count)})
	}
	m.termsTable.SetRows(rows)
}

func nextCourtFilter(f jurisprudence.CourtFilter) jurisprudence.CourtFilter {
	switch f {
	case jurisprudence.FilterBoth:
		return jurisprudence.FilterSTF
	case jurisprudence.FilterSTF:
		return jurisprudence.FilterSTJ
	default:
		return jurisprudence.FilterBoth
	}
}

func (m Model) handleTermsKey(msg tea.KeyMsg) Model {
	if m.Terms.Editing {
		switch msg.String() {
		case "esc":
			m.Terms.Editing = false
			m.termsInput.Blur()
			m.Status = StatusBar{Text: "terms unchanged"}
		case "enter":
			m.Terms.Editing = false
			m.termsInput.Blur()
			if len(jurisprudence.ParseTerms(m.termsInput.Value())) == 0 {
				m.Status = StatusBar{Text: "enter at least one term", IsError: true}
				return m
			}
			m.Terms.Raw = m.termsInput.Value()
			m.refreshTerms()
			m.Status = StatusBar{Text: fmt.Sprintf("counting %d term(s)", len(m.Terms.Report.Terms))}
		default:
			m.termsInput, _ = m.termsInput.Update(msg)
		}
		return m
	}

	switch msg.String() {
	case "c":
		m.Terms.Filter = nextCourtFilter(m.Terms.Filter)
		m.refreshTerms()
		m.Status = StatusBar{Text: "court filter: " + string(m.Terms.Filter)}
	case "e":
		m.Terms.Editing = true
		m.termsInput.SetValue(m.Terms.Raw)
		m.termsInput.Focus()
	case "+", "=", "-":
		step := jurisprudence.CountStep
		if msg.String() == "-" {
			step = -step
		}
		next := jurisprudence.ClampCount(m.Terms.Count + step)
		if next == m.Terms.Count {
			m.Status = StatusBar{Text: fmt.Sprintf("decision count stays at %d", next)}
			return m
		}
		m.Terms.Count = next
		m.refreshTerms()
		m.Status = StatusBar{Text: fmt.Sprintf("analysing %d decisions", next)}
	case "r":
		m.refreshTerms()
		m.Status = StatusBar{Text: "decisions resampled"}
	case "j", "down":
		m.termsTable.MoveDown(1)
	case "k", "up":
		m.termsTable.MoveUp(1)
	}
	return m
}

func (m Model) renderTermsView() (string, string) {
	report := m.Terms.Report
	left := views.RenderTermsPanel(views.TermsPanelData{
		Terms:     m.Terms.Raw,
		Court:     string(m.Terms.Filter),
		Requested: m.Terms.Count,
		Total:     report.Total,
		TableView: m.termsTable.View(),
		Outcomes:  bucketData(report.Outcomes, report.Total),
		Courts:    bucketData(report.Courts, report.Total),
		Editing:   m.Terms.Editing,
		InputView: m.termsInput.View(),
	})
	sample := make([]string, 0, len(report.Sample))
	for _, d := range report.Sample {
		sample = append(sample, fmt.Sprintf("%s #%s %s (%s)", d.Court, d.ID, d.Summary, d.Outcome))
	}
	return left, views.RenderTermsSample(sample)
}

func bucketData(buckets []jurisprudence.Bucket, total int) []views.BucketData {
	out := make([]views.BucketData, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, views.BucketData{Value: b.Value, Count: b.Count, Share: b.Share(total)})
	}
	return out
}
