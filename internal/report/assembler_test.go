package report

import (
	"strings"
	"testing"
	"time"

	"budgetreport/internal/core"
)

func testPeriod() core.Period {
	return core.Period{
		Year:  2025,
		Month: time.August,
		Start: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC),
	}
}

func shelterCategory() core.Category {
	return core.Category{
		Name: "Shelter",
		Items: []core.Item{
			{Description: "Mortgage", Planned: core.Money{Cents: 70000}, Actual: core.Money{Cents: 0}},
			{Description: "Pool Maintenance", Planned: core.Money{Cents: 70000}, Actual: core.Money{Cents: 19388}},
		},
		TotalPlanned: core.Money{Cents: 540994},
		TotalActual:  core.Money{Cents: 400102},
	}
}

func TestBuildShelterScenario(t *testing.T) {
	rep := NewAssembler(0.20).Build(testPeriod(), []core.Category{shelterCategory()}, time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC))

	if len(rep.NarrativeLines) == 0 {
		t.Fatal("no narrative produced")
	}
	want := "Shelter: Under budget by -26.0% ($4001.02 vs. $5409.94)"
	if rep.NarrativeLines[0] != want {
		t.Fatalf("narrative[0] = %q, want %q", rep.NarrativeLines[0], want)
	}

	// Category row + both items (each past the threshold) + separator.
	if len(rep.TableRows) != 4 {
		t.Fatalf("got %d table rows, want 4: %+v", len(rep.TableRows), rep.TableRows)
	}
	cat := rep.TableRows[0]
	if cat.Kind() != RowCategory || cat.Status != "Under" || cat.Deviation != "-1408.92" {
		t.Fatalf("category row wrong: %+v", cat)
	}
	if rep.TableRows[1].Kind() != RowItem || rep.TableRows[1].Item != "Mortgage" {
		t.Fatalf("item row wrong: %+v", rep.TableRows[1])
	}
	if rep.TableRows[1].Status != "" || rep.TableRows[1].Category != "" {
		t.Fatalf("item rows must leave category and status blank: %+v", rep.TableRows[1])
	}
	if rep.TableRows[3].Kind() != RowSeparator {
		t.Fatalf("last row must be a separator: %+v", rep.TableRows[3])
	}

	if rep.NarrativeLines[1] != "   Key Items:" {
		t.Fatalf("narrative[1] = %q, want Key Items header", rep.NarrativeLines[1])
	}
	wantItem := "     Pool Maintenance: $193.88 (Actual) vs $700.00 (Planned) (Diff: -506.12, -72.3%)"
	if rep.NarrativeLines[3] != wantItem {
		t.Fatalf("narrative[3] = %q, want %q", rep.NarrativeLines[3], wantItem)
	}
	if rep.NarrativeLines[4] != "" {
		t.Fatalf("category block must end with a blank line, got %q", rep.NarrativeLines[4])
	}
}

func TestBuildFiltersOKCategories(t *testing.T) {
	cats := []core.Category{
		{Name: "Steady", TotalPlanned: core.Money{Cents: 10000}, TotalActual: core.Money{Cents: 10500}},
		{Name: "Blown", TotalPlanned: core.Money{Cents: 10000}, TotalActual: core.Money{Cents: 20000}},
	}
	rep := NewAssembler(0.20).Build(testPeriod(), cats, time.Now())
	if len(rep.TableRows) != 2 {
		t.Fatalf("got %d rows, want 2 (Blown + separator): %+v", len(rep.TableRows), rep.TableRows)
	}
	if rep.TableRows[0].Category != "Blown" {
		t.Fatalf("row 0 = %+v, want Blown", rep.TableRows[0])
	}
	if rep.TableRows[0].Deviation != "+100.00" {
		t.Fatalf("positive deviations need an explicit sign, got %q", rep.TableRows[0].Deviation)
	}
	if rep.TableRows[0].Status != "Over" {
		t.Fatalf("status = %q, want Over", rep.TableRows[0].Status)
	}
}

func TestBuildZeroItemCategory(t *testing.T) {
	cats := []core.Category{
		{Name: "Insurance", TotalPlanned: core.Money{Cents: 30000}, TotalActual: core.Money{Cents: 0}},
	}
	rep := NewAssembler(0.20).Build(testPeriod(), cats, time.Now())
	if len(rep.TableRows) != 2 {
		t.Fatalf("zero-item category with reportable totals must still appear: %+v", rep.TableRows)
	}
	for _, line := range rep.NarrativeLines {
		if strings.Contains(line, "Key Items") {
			t.Fatalf("no items, so no Key Items header: %q", line)
		}
	}
}

func TestBuildInsignificantItemsOmitted(t *testing.T) {
	cats := []core.Category{{
		Name: "Food",
		Items: []core.Item{
			{Description: "Groceries", Planned: core.Money{Cents: 50000}, Actual: core.Money{Cents: 52000}},
		},
		TotalPlanned: core.Money{Cents: 50000},
		TotalActual:  core.Money{Cents: 70000},
	}}
	rep := NewAssembler(0.20).Build(testPeriod(), cats, time.Now())
	for _, r := range rep.TableRows {
		if r.Kind() == RowItem {
			t.Fatalf("item within threshold must be omitted: %+v", r)
		}
	}
	for _, line := range rep.NarrativeLines {
		if line == "   Key Items:" {
			t.Fatal("Key Items header must only appear when significant items exist")
		}
	}
}

func TestReportTitlesAndBody(t *testing.T) {
	rep := NewAssembler(0.20).Build(testPeriod(), nil, time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC))

	if got := rep.SheetTitle(); got != "August Budget Comparison" {
		t.Fatalf("sheet title = %q", got)
	}
	if got := rep.EmailSubject(); got != "August 2025 Budget Comparison" {
		t.Fatalf("email subject = %q", got)
	}
	body := rep.EmailBody()
	if !strings.HasPrefix(body, "Monthly Budget Deviation Report\n") {
		t.Fatalf("body preamble wrong:\n%s", body)
	}
	if !strings.Contains(body, "Period: August 2025 (Aug 1, 2025 - Aug 31, 2025)") {
		t.Fatalf("period line missing:\n%s", body)
	}
	if !strings.Contains(body, "Generated: Sep 1, 2025") {
		t.Fatalf("generated line missing:\n%s", body)
	}
}
