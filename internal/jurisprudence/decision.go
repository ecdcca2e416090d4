package jurisprudence

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"
)

const (
	CourtSTF = "STF"
	CourtSTJ = "STJ"

	unspecifiedOutcome = "Não especificado"
)

var ErrInvalidCourt = errors.New("jurisprudence: invalid court filter")

type Decision struct {
	ID      string
	Court   string
	Summary string
	Outcome string
}

// CourtFilter picks which court the analysed set is drawn from.
type CourtFilter string

const (
	FilterSTF  CourtFilter = "stf"
	FilterSTJ  CourtFilter = "stj"
	FilterBoth CourtFilter = "all"
)

func ParseCourtFilter(raw string) (CourtFilter, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "stf":
		return FilterSTF, nil
	case "stj":
		return FilterSTJ, nil
	case "all", "both", "ambos", "":
		return FilterBoth, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidCourt, raw)
	}
}

var simulatedOutcomes = []string{"Procedente", "Improcedente", "Parcialmente Procedente"}

var simulatedSummaries = []string{
	"Recurso especial sobre dano moral julgado improcedente.",
	"Pedido de habeas corpus parcialmente procedente.",
	"Reconhecida a repercussão geral em tema de direito administrativo.",
	"Ação declaratória de inconstitucionalidade julgada procedente.",
	"Pedido improvido por ausência de provas documentais.",
}

// Simulate produces n STJ decisions drawn from fixed summary and outcome
// pools. IDs run from 1.
func Simulate(n int, rng *rand.Rand) []Decision {
	out := make([]Decision, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, Decision{
			ID:      strconv.Itoa(i + 1),
			Court:   CourtSTJ,
			Summary: simulatedSummaries[rng.IntN(len(simulatedSummaries))],
			Outcome: simulatedOutcomes[rng.IntN(len(simulatedOutcomes))],
		})
	}
	return out
}

// LoadCSV reads decisions with an id,court,summary,outcome header in any
// column order. Rows without a summary are skipped; a blank court becomes
// STF and a blank outcome becomes unspecified.
func LoadCSV(r io.Reader) ([]Decision, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("jurisprudence: read header: %w", err)
	}
	cols := map[string]int{}
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"id", "summary"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("jurisprudence: missing column %q", required)
		}
	}
	get := func(line []string, name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(line) {
			return ""
		}
		return strings.TrimSpace(line[idx])
	}

	out := make([]Decision, 0)
	for {
		line, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("jurisprudence: read row: %w", readErr)
		}
		d := Decision{
			ID:      get(line, "id"),
			Court:   get(line, "court"),
			Summary: get(line, "summary"),
			Outcome: get(line, "outcome"),
		}
		if d.Summary == "" {
			continue
		}
		if d.Court == "" {
			d.Court = CourtSTF
		}
		if d.Outcome == "" {
			d.Outcome = unspecifiedOutcome
		}
		out = append(out, d)
	}
	return out, nil
}

// Select builds the analysed set of n decisions. STF decisions come from
// loaded, STJ ones are simulated; the combined filter splits n in half.
func Select(loaded []Decision, filter CourtFilter, n int, rng *rand.Rand) []Decision {
	take := func(k int) []Decision {
		k = min(k, len(loaded))
		out := make([]Decision, k)
		copy(out, loaded[:k])
		return out
	}
	switch filter {
	case FilterSTF:
		return take(n)
	case FilterSTJ:
		return Simulate(n, rng)
	default:
		return append(take(n/2), Simulate(n/2, rng)...)
	}
}
