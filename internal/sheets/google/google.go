// Package google implements the ledger reader and the report writer on
// top of the Google Sheets API.
package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"budgetreport/internal/core"
	ports "budgetreport/internal/sheets"

	"google.golang.org/api/googleapi"
	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

// Ledger layout. Column roles are fixed: A category label, B item
// description, C planned amount, D unused, E actual amount. The period
// header occupies B1:B4 (year, month, start, end) and data begins at
// the configured offset.
const (
	defaultLedgerSheet  = "Ledger"
	defaultDataStartRow = 5 // 1-indexed

	periodRange = "B1:B4"
)

type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	ledgerSheet   string
	dataStartRow  int
}

// Ensure interface conformance
var (
	_ ports.LedgerReader = (*Client)(nil)
	_ ports.ReportWriter = (*Client)(nil)
)

// Config holds the spreadsheet coordinates for a client.
type Config struct {
	SpreadsheetID string
	LedgerSheet   string
	DataStartRow  int
}

// New creates a Sheets client from explicit configuration, using
// service-account credentials from the environment
// (GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or
// GOOGLE_APPLICATION_CREDENTIALS).
func New(ctx context.Context, cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.SpreadsheetID) == "" {
		return nil, errors.New("missing spreadsheet ID")
	}
	if cfg.LedgerSheet == "" {
		cfg.LedgerSheet = defaultLedgerSheet
	}
	if cfg.DataStartRow <= 0 {
		cfg.DataStartRow = defaultDataStartRow
	}

	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		ledgerSheet:   cfg.LedgerSheet,
		dataStartRow:  cfg.DataStartRow,
	}, nil
}

// newSheetsService initializes a Sheets Service using Service Account
// credentials.
func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	var err error
	switch {
	case serviceAccountJSON != "":
		credentialsJSON = []byte(serviceAccountJSON)
	case serviceAccountFile != "":
		credentialsJSON, err = os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	service, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return service, nil
}

// ReadPeriod reads the reporting window from the fixed header cells.
func (c *Client) ReadPeriod(ctx context.Context) (core.Period, error) {
	rng := fmt.Sprintf("%s!%s", c.ledgerSheet, periodRange)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return core.Period{}, c.wrapReadErr(rng, err)
	}
	cell := func(i int) string {
		if i < len(resp.Values) && len(resp.Values[i]) > 0 {
			return strings.TrimSpace(fmt.Sprint(resp.Values[i][0]))
		}
		return ""
	}

	year, err := strconv.Atoi(cell(0))
	if err != nil {
		return core.Period{}, fmt.Errorf("ledger year cell %q: %w", cell(0), err)
	}
	month, err := parseMonth(cell(1))
	if err != nil {
		return core.Period{}, fmt.Errorf("ledger month cell: %w", err)
	}

	p := core.Period{Year: year, Month: month}
	// Start/end cells are advisory; fall back to calendar month bounds
	// when they fail to parse.
	p.Start = parseDateOr(cell(2), time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
	p.End = parseDateOr(cell(3), time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC))

	if err := p.Validate(); err != nil {
		return core.Period{}, fmt.Errorf("ledger period: %w", err)
	}
	return p, nil
}

// ReadRows reads the raw ledger rows from the data offset down.
func (c *Client) ReadRows(ctx context.Context) ([]core.Row, error) {
	rng := fmt.Sprintf("%s!A%d:E", c.ledgerSheet, c.dataStartRow)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, c.wrapReadErr(rng, err)
	}

	rows := make([]core.Row, 0, len(resp.Values))
	for _, raw := range resp.Values {
		get := func(i int) any {
			if i < len(raw) {
				return raw[i]
			}
			return nil
		}
		// Column D is unused in the ledger layout.
		rows = append(rows, core.NewRow(get(0), get(1), get(2), get(4)))
	}
	slog.InfoContext(ctx, "Ledger rows fetched", "sheet", c.ledgerSheet, "rows", len(rows))
	return rows, nil
}

// wrapReadErr maps a missing sheet onto core.ErrLedgerNotFound so
// callers can tell an absent ledger apart from transport failures.
func (c *Client) wrapReadErr(rng string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		if gerr.Code == 404 || (gerr.Code == 400 && strings.Contains(gerr.Message, "Unable to parse range")) {
			return fmt.Errorf("%w: sheet %q (range %s)", core.ErrLedgerNotFound, c.ledgerSheet, rng)
		}
	}
	return fmt.Errorf("read %s: %w", rng, err)
}

func parseMonth(s string) (time.Month, error) {
	if s == "" {
		return 0, errors.New("empty month cell")
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("month out of range: %d", n)
		}
		return time.Month(n), nil
	}
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(s, m.String()) || strings.EqualFold(s, m.String()[:3]) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unrecognized month: %q", s)
}

func parseDateOr(s string, fallback time.Time) time.Time {
	layouts := []string{"2006-01-02", "1/2/2006", "01/02/2006", "Jan 2, 2006", "January 2, 2006"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return fallback
}
