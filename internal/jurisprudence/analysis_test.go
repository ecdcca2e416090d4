package jurisprudence

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTerms(t *testing.T) {
	got := ParseTerms(" Dano Moral, ,repercussão geral ,, INCONSTITUCIONALIDADE")
	assert.Equal(t, []string{"dano moral", "repercussão geral", "inconstitucionalidade"}, got)
	assert.Empty(t, ParseTerms(" , "))
}

func TestCountTermsNonOverlapping(t *testing.T) {
	decisions := []Decision{
		{Summary: "Dano moral e DANO MORAL"},
		{Summary: "aaaa"},
		{Summary: "nada"},
	}
	got := CountTerms(decisions, []string{"dano moral", "aa", "ausente"})
	assert.Equal(t, []TermCount{{"dano moral", 2}, {"aa", 2}, {"ausente", 0}}, got)
}

func TestDistributionsSortByCountThenName(t *testing.T) {
	decisions := []Decision{
		{Court: "STJ", Outcome: "Procedente"},
		{Court: "STF", Outcome: "Improcedente"},
		{Court: "STJ", Outcome: "Improcedente"},
		{Court: "STF", Outcome: "Procedente"},
		{Court: "STJ", Outcome: "Anulado"},
	}
	assert.Equal(t, []Bucket{{"STJ", 3}, {"STF", 2}}, CourtDistribution(decisions))
	assert.Equal(t, []Bucket{{"Improcedente", 2}, {"Procedente", 2}, {"Anulado", 1}}, OutcomeDistribution(decisions))
	assert.InDelta(t, 0.6, Bucket{Count: 3}.Share(5), 1e-9)
}

func TestSimulateIsSeeded(t *testing.T) {
	a := Simulate(20, NewRand(7))
	b := Simulate(20, NewRand(7))
	require.Len(t, a, 20)
	assert.Equal(t, a, b)
	assert.Equal(t, "1", a[0].ID)
	for _, d := range a {
		assert.Equal(t, CourtSTJ, d.Court)
		assert.Contains(t, simulatedSummaries, d.Summary)
		assert.Contains(t, simulatedOutcomes, d.Outcome)
	}
}

func TestSelectByCourt(t *testing.T) {
	loaded := []Decision{{ID: "1", Court: "STF", Summary: "x"}, {ID: "2", Court: "STF", Summary: "y"}}
	rng := NewRand(1)
	assert.Len(t, Select(loaded, FilterSTF, 10, rng), 2)
	assert.Len(t, Select(loaded, FilterSTJ, 10, rng), 10)
	both := Select(loaded, FilterBoth, 4, rng)
	require.Len(t, both, 4)
	assert.Equal(t, "STF", both[0].Court)
	assert.Equal(t, "STJ", both[3].Court)
}

func TestSampleWithoutReplacement(t *testing.T) {
	decisions := Simulate(50, NewRand(3))
	sample := Sample(decisions, SampleSize, NewRand(4))
	require.Len(t, sample, 5)
	seen := map[string]bool{}
	for _, d := range sample {
		assert.False(t, seen[d.ID])
		seen[d.ID] = true
	}
	assert.Len(t, Sample(decisions[:2], SampleSize, NewRand(4)), 2)
}

func TestLoadCSV(t *testing.T) {
	raw := "Summary,ID,Outcome,Court\n" +
		"\"Recurso sobre dano moral, provido\",10,Procedente,\n" +
		",11,Procedente,STF\n" +
		"Pedido improvido,12,,STJ\n"
	got, err := LoadCSV(strings.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, Decision{ID: "10", Court: "STF", Summary: "Recurso sobre dano moral, provido", Outcome: "Procedente"}, got[0])
	assert.Equal(t, unspecifiedOutcome, got[1].Outcome)

	_, err = LoadCSV(strings.NewReader("court,outcome\nSTF,x\n"))
	assert.ErrorContains(t, err, "missing column")
}

func TestParseCourtFilter(t *testing.T) {
	f, err := ParseCourtFilter("AMBOS")
	require.NoError(t, err)
	assert.Equal(t, FilterBoth, f)
	_, err = ParseCourtFilter("TST")
	assert.ErrorIs(t, err, ErrInvalidCourt)
}

func TestAnalyzeDefaultTerms(t *testing.T) {
	decisions := Simulate(100, NewRand(11))
	report := Analyze(decisions, ParseTerms(DefaultTerms), NewRand(12))
	assert.Equal(t, 100, report.Total)
	require.Len(t, report.Terms, 3)
	sum := 0
	for _, b := range report.Outcomes {
		sum += b.Count
	}
	assert.Equal(t, 100, sum)
	assert.Len(t, report.Sample, SampleSize)
}

func TestClampCount(t *testing.T) {
	assert.Equal(t, MinCount, ClampCount(0))
	assert.Equal(t, 200, ClampCount(DefaultCount))
	assert.Equal(t, MaxCount, ClampCount(MaxCount+CountStep))
}
