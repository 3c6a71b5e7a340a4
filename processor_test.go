package schedula

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/archivista/schedula/dialect"
	"github.com/archivista/schedula/model"
)

type stubStrategy struct {
	name    string
	records []model.RawRecord
	err     error
	panics  bool
	calls   atomic.Int32
}

func (s *stubStrategy) Name() string { return s.name }

func (s *stubStrategy) Extract(_ context.Context, _ *model.Document) ([]model.RawRecord, error) {
	s.calls.Add(1)
	if s.panics {
		panic("malformed page structure")
	}
	return s.records, s.err
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testProcessor(t *testing.T, strategies ...Strategy) *Processor {
	t.Helper()
	p, err := New(Config{
		Profile:    dialect.Virginia(),
		Strategies: strategies,
		Logger:     quietLogger(),
		Now:        func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) },
	})
	if err != nil {
		t.Fatal(err)
	}
	return p
}

// fullRaw normalizes into a record with no penalties and a year bonus.
func fullRaw(seriesID string) model.RawRecord {
	return model.RawRecord{
		SeriesID:    seriesID,
		Title:       "Payroll records",
		Description: "Tracks payroll runs.",
		Retention:   "Retain 5 years",
		Disposition: "Destruction",
		Meta:        model.Meta{ScheduleID: "GS-101"},
	}
}

// flawedRaw normalizes into a record missing its description.
func flawedRaw(seriesID string) model.RawRecord {
	r := fullRaw(seriesID)
	r.Description = ""
	return r
}

func testDoc() *model.Document {
	return &model.Document{Meta: model.Meta{Jurisdiction: "va", ScheduleID: "GS-101"}}
}

func TestNewRequiresProfile(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("New accepted a config without a profile")
	}
}

func TestProcessPicksHighestScore(t *testing.T) {
	// Both candidates carry penalties so arbitration sees every strategy.
	worse := &stubStrategy{name: "a", records: []model.RawRecord{
		{SeriesID: "010101", Title: "Payroll records", Retention: "Retain 5 years", Disposition: "Destruction"},
	}}
	better := &stubStrategy{name: "b", records: []model.RawRecord{
		flawedRaw("010101"), flawedRaw("010102"),
	}}
	p := testProcessor(t, worse, better)

	res, warnings := p.Process(context.Background(), testDoc())
	if res == nil {
		t.Fatal("Process returned nil result")
	}
	if res.Strategy != "b" {
		t.Errorf("winner = %q, want %q", res.Strategy, "b")
	}
	if len(res.Records) != 2 {
		t.Errorf("got %d records, want 2", len(res.Records))
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
}

func TestProcessTiePrefersLayout(t *testing.T) {
	grid := &stubStrategy{name: StrategyGrid, records: []model.RawRecord{flawedRaw("010101")}}
	layout := &stubStrategy{name: StrategyLayout, records: []model.RawRecord{flawedRaw("010101")}}
	p := testProcessor(t, grid, layout)

	res, _ := p.Process(context.Background(), testDoc())
	if res == nil {
		t.Fatal("Process returned nil result")
	}
	if res.Strategy != StrategyLayout {
		t.Errorf("winner = %q, want %q on an exact tie", res.Strategy, StrategyLayout)
	}
}

func TestProcessEarlyTermination(t *testing.T) {
	first := &stubStrategy{name: "a", records: []model.RawRecord{fullRaw("010101")}}
	second := &stubStrategy{name: "b"}
	p := testProcessor(t, first, second)

	res, _ := p.Process(context.Background(), testDoc())
	if res == nil || res.Strategy != "a" {
		t.Fatalf("result = %+v, want strategy a", res)
	}
	if n := second.calls.Load(); n != 0 {
		t.Errorf("second strategy ran %d times after a penalty-free extraction", n)
	}
}

func TestProcessRecoversStrategyFailure(t *testing.T) {
	tests := []struct {
		name string
		bad  *stubStrategy
	}{
		{"error", &stubStrategy{name: "bad", err: errors.New("malformed page")}},
		{"panic", &stubStrategy{name: "bad", panics: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			good := &stubStrategy{name: "good", records: []model.RawRecord{fullRaw("010101")}}
			p := testProcessor(t, tt.bad, good)

			res, warnings := p.Process(context.Background(), testDoc())
			if res == nil || res.Strategy != "good" {
				t.Fatalf("result = %+v, want strategy good", res)
			}
			if len(warnings) != 1 || warnings[0].Code != WarnStrategyFailed {
				t.Errorf("warnings = %v, want one %s", warnings, WarnStrategyFailed)
			}
		})
	}
}

func TestProcessNoViableRecords(t *testing.T) {
	p := testProcessor(t, &stubStrategy{name: "a"}, &stubStrategy{name: "b"})

	res, warnings := p.Process(context.Background(), testDoc())
	if res != nil {
		t.Fatalf("result = %+v, want nil", res)
	}
	if len(warnings) != 1 || warnings[0].Code != WarnNoOutput {
		t.Errorf("warnings = %v, want one %s", warnings, WarnNoOutput)
	}
}

func TestProcessNegativeScoreYieldsNoOutput(t *testing.T) {
	// A lone record with every field empty scores below zero.
	junk := &stubStrategy{name: "a", records: []model.RawRecord{{SeriesID: "010101"}}}
	p := testProcessor(t, junk)

	res, warnings := p.Process(context.Background(), testDoc())
	if res != nil {
		t.Fatalf("result = %+v, want nil", res)
	}
	if len(warnings) != 1 || warnings[0].Code != WarnNoOutput {
		t.Errorf("warnings = %v, want one %s", warnings, WarnNoOutput)
	}
}

func TestProcessStampsLastChecked(t *testing.T) {
	p := testProcessor(t, &stubStrategy{name: "a", records: []model.RawRecord{fullRaw("010101")}})

	res, _ := p.Process(context.Background(), testDoc())
	if res == nil {
		t.Fatal("Process returned nil result")
	}
	if res.Records[0].LastChecked != "2024-03-01" {
		t.Errorf("LastChecked = %q, want %q", res.Records[0].LastChecked, "2024-03-01")
	}
}

func TestProcessAllPreservesOrder(t *testing.T) {
	p := testProcessor(t, &stubStrategy{name: "a", records: []model.RawRecord{fullRaw("010101")}})

	docs := make([]*model.Document, 8)
	for i := range docs {
		docs[i] = testDoc()
	}
	results, warnings := p.ProcessAll(context.Background(), docs, 3)
	if len(results) != len(docs) || len(warnings) != len(docs) {
		t.Fatalf("got %d results, %d warning sets, want %d each", len(results), len(warnings), len(docs))
	}
	for i, res := range results {
		if res == nil || len(res.Records) != 1 {
			t.Errorf("document %d: result = %+v, want one record", i, res)
		}
	}
}
