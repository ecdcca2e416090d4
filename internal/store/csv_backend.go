package store

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sandeepkv93/dayboard/internal/model"
)

var csvHeader = []string{"id", "category", "text", "done", "created", "current", "target", "deadline", "mood", "sign", "note"}

type CSVBackend struct {
	path string
}

func (b *CSVBackend) Read(_ context.Context) ([]model.Record, error) {
	raw, ok, err := readFileIfExists(b.path)
	if err != nil || !ok {
		return nil, err
	}
	if strings.TrimSpace(string(raw)) == "" {
		return nil, nil
	}
	reader := csv.NewReader(bytes.NewReader(raw))
	reader.FieldsPerRecord = len(csvHeader)
	lines, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("decode csv: %w", err)
	}
	if len(lines) == 0 || strings.Join(lines[0], ",") != strings.Join(csvHeader, ",") {
		return nil, fmt.Errorf("decode csv: unexpected header")
	}

	out := make([]model.Record, 0, len(lines)-1)
	for i, line := range lines[1:] {
		r, rowErr := csvRow(line)
		if rowErr != nil {
			return nil, fmt.Errorf("decode csv line %d: %w", i+2, rowErr)
		}
		rec, recErr := r.record()
		if recErr != nil {
			return nil, recErr
		}
		out = append(out, rec)
	}
	return out, nil
}

func (b *CSVBackend) Write(_ context.Context, records []model.Record) error {
	var buf bytes.Buffer
	if err := EncodeCSV(&buf, records); err != nil {
		return err
	}
	return writeFileAtomic(b.path, buf.Bytes())
}

func (b *CSVBackend) Close() error { return nil }

// EncodeCSV writes records in the csv layout, header first.
func EncodeCSV(out io.Writer, records []model.Record) error {
	w := csv.NewWriter(out)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, rec := range records {
		r := toRow(rec)
		if err := w.Write([]string{
			r.ID, r.Category, r.Text, strconv.FormatBool(r.Done), r.Created,
			formatFloat(r.Current), formatFloat(r.Target), r.Deadline,
			r.Mood, r.Sign, r.Note,
		}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func csvRow(line []string) (row, error) {
	done, err := strconv.ParseBool(strings.TrimSpace(line[3]))
	if err != nil {
		return row{}, fmt.Errorf("done: %w", err)
	}
	current, err := parseFloat(line[5])
	if err != nil {
		return row{}, fmt.Errorf("current: %w", err)
	}
	target, err := parseFloat(line[6])
	if err != nil {
		return row{}, fmt.Errorf("target: %w", err)
	}
	return row{
		ID:       line[0],
		Category: line[1],
		Text:     line[2],
		Done:     done,
		Created:  line[4],
		Current:  current,
		Target:   target,
		Deadline: line[7],
		Mood:     line[8],
		Sign:     line[9],
		Note:     line[10],
	}, nil
}
