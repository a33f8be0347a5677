package memory

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"
	"time"

	"budgetreport/internal/core"
)

// NewFromFile seeds a store from a CSV ledger at path. The format is
// the ledger layout flattened to four columns (category, item, planned,
// actual), with an optional leading "period" record:
//
//	period,2025,8,2025-08-01,2025-08-31
//	Shelter,,5409.94,4001.02
//	,Mortgage,700.00,0.00
//	Total Shelter,,5409.94,4001.02
//
// When the file is missing or unreadable a small demo ledger for the
// current month is seeded instead, so local runs work out of the box.
func NewFromFile(path string) *Store {
	s := New()
	period, rows, ok := readCSV(path)
	if !ok {
		now := time.Now()
		demoPeriod, demoRows := demoLedger(now.Year(), now.Month())
		s.Seed(demoPeriod, demoRows)
		return s
	}
	s.Seed(period, rows)
	return s
}

func readCSV(path string) (core.Period, []core.Row, bool) {
	f, err := os.Open(path)
	if err != nil {
		return core.Period{}, nil, false
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil || len(records) == 0 {
		return core.Period{}, nil, false
	}

	var period core.Period
	var rows []core.Row
	for _, rec := range records {
		if len(rec) > 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "period") {
			period = parsePeriodRecord(rec)
			continue
		}
		get := func(i int) any {
			if i < len(rec) {
				return rec[i]
			}
			return nil
		}
		rows = append(rows, core.NewRow(get(0), get(1), get(2), get(3)))
	}
	if period.Year == 0 {
		now := time.Now()
		period = core.Period{Year: now.Year(), Month: now.Month()}
	}
	return period, rows, true
}

func parsePeriodRecord(rec []string) core.Period {
	get := func(i int) string {
		if i < len(rec) {
			return strings.TrimSpace(rec[i])
		}
		return ""
	}
	year, _ := strconv.Atoi(get(1))
	monthNum, _ := strconv.Atoi(get(2))
	p := core.Period{Year: year, Month: time.Month(monthNum)}
	if t, err := time.Parse("2006-01-02", get(3)); err == nil {
		p.Start = t
	}
	if t, err := time.Parse("2006-01-02", get(4)); err == nil {
		p.End = t
	}
	return p
}

func demoLedger(year int, month time.Month) (core.Period, []core.Row) {
	period := core.Period{
		Year:  year,
		Month: month,
		Start: time.Date(year, month, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC),
	}
	rows := []core.Row{
		core.NewRow("Shelter", "", 5409.94, 4001.02),
		core.NewRow("", "Mortgage", 700.00, 0.00),
		core.NewRow("", "Pool Maintenance", 700.00, 193.88),
		core.NewRow("Total Shelter", "", 5409.94, 4001.02),
		core.NewRow(nil, nil, nil, nil),
		core.NewRow("Food", "", nil, nil),
		core.NewRow("", "Groceries", 800.00, 785.00),
		core.NewRow("Total Food", "", 800.00, 785.00),
	}
	return period, rows
}
