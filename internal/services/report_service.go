// Package services orchestrates the report pipeline across the ledger
// source and the two presentation sinks.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"budgetreport/internal/amqp"
	"budgetreport/internal/core"
	"budgetreport/internal/ledger"
	"budgetreport/internal/mail"
	"budgetreport/internal/report"
	"budgetreport/internal/sheets"
)

// EventPublisher publishes report lifecycle events. *amqp.Client
// satisfies it; tests provide fakes.
type EventPublisher interface {
	PublishReportGenerated(ctx context.Context, msg *amqp.ReportGeneratedMessage) error
}

// ReportService runs one ledger snapshot through parse, analysis and
// both sinks. One invocation, one report; no retries anywhere.
type ReportService struct {
	source    sheets.LedgerReader
	sink      sheets.ReportWriter
	drafts    mail.DraftSender
	events    EventPublisher
	threshold float64
	now       func() time.Time
}

// RunResult summarizes a finished run. DraftErr carries the narrative
// sink failure when the run succeeded only partially.
type RunResult struct {
	Period            core.Period
	CategoriesParsed  int
	CategoriesFlagged int
	DraftErr          error
}

// NewReportService wires a service. drafts and events may be nil; the
// corresponding steps are skipped.
func NewReportService(source sheets.LedgerReader, sink sheets.ReportWriter, drafts mail.DraftSender, events EventPublisher, threshold float64) *ReportService {
	return &ReportService{
		source:    source,
		sink:      sink,
		drafts:    drafts,
		events:    events,
		threshold: threshold,
		now:       time.Now,
	}
}

// Run executes the full pipeline. The tabular sink is authoritative: a
// failure there (or anywhere before it) aborts the run with no report
// artifact. A narrative sink failure after that point is reported via
// RunResult.DraftErr, preserving the already-written tabular output.
func (s *ReportService) Run(ctx context.Context) (RunResult, error) {
	period, err := s.source.ReadPeriod(ctx)
	if err != nil {
		if errors.Is(err, core.ErrLedgerNotFound) {
			return RunResult{}, fmt.Errorf("ledger source missing: %w", err)
		}
		return RunResult{}, fmt.Errorf("read period: %w", err)
	}

	rows, err := s.source.ReadRows(ctx)
	if err != nil {
		if errors.Is(err, core.ErrLedgerNotFound) {
			return RunResult{}, fmt.Errorf("ledger source missing: %w", err)
		}
		return RunResult{}, fmt.Errorf("read ledger rows: %w", err)
	}

	cats := ledger.Parse(rows)
	rep := report.NewAssembler(s.threshold).Build(period, cats, s.now())

	result := RunResult{
		Period:            period,
		CategoriesParsed:  len(cats),
		CategoriesFlagged: countFlagged(rep),
	}

	slog.InfoContext(ctx, "Ledger analyzed",
		"year", period.Year, "month", int(period.Month),
		"rows", len(rows),
		"categories", result.CategoriesParsed,
		"flagged", result.CategoriesFlagged)

	if err := s.sink.WriteReport(ctx, rep); err != nil {
		return result, fmt.Errorf("write report sheet: %w", err)
	}

	if s.drafts != nil {
		if err := s.drafts.CreateDraft(ctx, rep.EmailSubject(), rep.EmailBody()); err != nil {
			// The tabular output is already in place; keep it and
			// surface the draft failure as partial success.
			slog.WarnContext(ctx, "Narrative draft failed, report sheet preserved", "error", err)
			result.DraftErr = err
		}
	}

	if s.events != nil {
		msg := amqp.NewReportGeneratedMessage(period.Year, int(period.Month), result.CategoriesFlagged)
		if err := s.events.PublishReportGenerated(ctx, msg); err != nil {
			slog.WarnContext(ctx, "Failed to publish report event", "error", err)
		}
	}

	return result, nil
}

func countFlagged(rep *report.Report) int {
	n := 0
	for _, r := range rep.TableRows {
		if r.Kind() == report.RowCategory {
			n++
		}
	}
	return n
}
