package jurisprudence

import (
	"math/rand/v2"
	"sort"
	"strings"
)

const DefaultTerms = "dano moral, repercussão geral, inconstitucionalidade"

const SampleSize = 5

// Size of the analysed set: the default and the range the dashboard steps
// through.
const (
	DefaultCount = 200
	MinCount     = 50
	MaxCount     = 1000
	CountStep    = 50
)

// ClampCount keeps n inside [MinCount, MaxCount].
func ClampCount(n int) int {
	return min(max(n, MinCount), MaxCount)
}

// ParseTerms splits on commas, trims, lower-cases and drops empties.
func ParseTerms(raw string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		term := strings.ToLower(strings.TrimSpace(part))
		if term != "" {
			out = append(out, term)
		}
	}
	return out
}

type TermCount struct {
	Term  string
	Count int
}

// CountTerms sums non-overlapping occurrences of each term across the
// lower-cased summaries, in term order.
func CountTerms(decisions []Decision, terms []string) []TermCount {
	lowered := make([]string, len(decisions))
	for i, d := range decisions {
		lowered[i] = strings.ToLower(d.Summary)
	}
	out := make([]TermCount, 0, len(terms))
	for _, term := range terms {
		total := 0
		for _, summary := range lowered {
			total += strings.Count(summary, term)
		}
		out = append(out, TermCount{Term: term, Count: total})
	}
	return out
}

type Bucket struct {
	Value string
	Count int
}

func (b Bucket) Share(total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(b.Count) / float64(total)
}

func OutcomeDistribution(decisions []Decision) []Bucket {
	return distribution(decisions, func(d Decision) string { return d.Outcome })
}

func CourtDistribution(decisions []Decision) []Bucket {
	return distribution(decisions, func(d Decision) string { return d.Court })
}

func distribution(decisions []Decision, key func(Decision) string) []Bucket {
	counts := map[string]int{}
	for _, d := range decisions {
		counts[key(d)]++
	}
	out := make([]Bucket, 0, len(counts))
	for value, count := range counts {
		out = append(out, Bucket{Value: value, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out
}

// Sample draws up to k decisions without replacement.
func Sample(decisions []Decision, k int, rng *rand.Rand) []Decision {
	k = min(k, len(decisions))
	idx := rng.Perm(len(decisions))[:k]
	out := make([]Decision, 0, k)
	for _, i := range idx {
		out = append(out, decisions[i])
	}
	return out
}

type Report struct {
	Total    int
	Terms    []TermCount
	Outcomes []Bucket
	Courts   []Bucket
	Sample   []Decision
}

func Analyze(decisions []Decision, terms []string, rng *rand.Rand) Report {
	return Report{
		Total:    len(decisions),
		Terms:    CountTerms(decisions, terms),
		Outcomes: OutcomeDistribution(decisions),
		Courts:   CourtDistribution(decisions),
		Sample:   Sample(decisions, SampleSize, rng),
	}
}

func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
