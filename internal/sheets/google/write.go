package google

import (
	"context"
	"fmt"
	"log/slog"

	"budgetreport/internal/report"

	gsheet "google.golang.org/api/sheets/v4"
)

// Report sheet layout: period header block in A1:B4, table header on
// row 6, body below it.
const tableHeaderRow = 6 // 1-indexed

var (
	headerBG   = &gsheet.Color{Red: 0.85, Green: 0.85, Blue: 0.85}
	categoryBG = &gsheet.Color{Red: 0.91, Green: 0.94, Blue: 0.99}
	itemBG     = &gsheet.Color{Red: 0.97, Green: 0.97, Blue: 0.97}
	overBG     = &gsheet.Color{Red: 0.96, Green: 0.78, Blue: 0.76}
	underBG    = &gsheet.Color{Red: 0.80, Green: 0.92, Blue: 0.80}
)

// WriteReport replaces the report sheet wholesale: values first, then a
// single batchUpdate carrying every formatting rule. Failure anywhere
// here is fatal for the run; there is no partial tabular output.
func (c *Client) WriteReport(ctx context.Context, rep *report.Report) error {
	title := rep.SheetTitle()
	sheetID, err := c.ensureSheet(ctx, title)
	if err != nil {
		return fmt.Errorf("ensure report sheet: %w", err)
	}

	if _, err := c.svc.Spreadsheets.Values.Clear(c.spreadsheetID, title, &gsheet.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("clear report sheet: %w", err)
	}

	if err := c.writeValues(ctx, title, rep); err != nil {
		return err
	}

	if err := c.applyFormatting(ctx, sheetID, rep); err != nil {
		return err
	}

	slog.InfoContext(ctx, "Report sheet written",
		"sheet", title, "rows", len(rep.TableRows))
	return nil
}

// ensureSheet returns the sheet ID for title, adding the sheet when it
// does not exist yet.
func (c *Client) ensureSheet(ctx context.Context, title string) (int64, error) {
	meta, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("get spreadsheet: %w", err)
	}
	for _, sh := range meta.Sheets {
		if sh.Properties != nil && sh.Properties.Title == title {
			return sh.Properties.SheetId, nil
		}
	}

	resp, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, &gsheet.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheet.Request{{
			AddSheet: &gsheet.AddSheetRequest{
				Properties: &gsheet.SheetProperties{Title: title},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("add sheet %q: %w", title, err)
	}
	return resp.Replies[0].AddSheet.Properties.SheetId, nil
}

func (c *Client) writeValues(ctx context.Context, title string, rep *report.Report) error {
	headerBlock := [][]any{
		{"Year", rep.Period.Year},
		{"Month", rep.Period.Month.String()},
		{"Period Start", rep.Period.Start.Format("2006-01-02")},
		{"Period End", rep.Period.End.Format("2006-01-02")},
	}

	table := make([][]any, 0, len(rep.TableRows)+1)
	table = append(table, report.Header())
	for _, r := range rep.TableRows {
		table = append(table, r.Cells())
	}

	_, err := c.svc.Spreadsheets.Values.BatchUpdate(c.spreadsheetID, &gsheet.BatchUpdateValuesRequest{
		ValueInputOption: "RAW",
		Data: []*gsheet.ValueRange{
			{Range: fmt.Sprintf("%s!A1:B4", title), Values: headerBlock},
			{Range: fmt.Sprintf("%s!A%d", title, tableHeaderRow), Values: table},
		},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("write report values: %w", err)
	}
	return nil
}

// applyFormatting styles the written table: bold shaded header row,
// visually distinct category and item rows, status cell backgrounds
// keyed to the deviation status, right-aligned numeric columns, and
// auto-sized columns.
func (c *Client) applyFormatting(ctx context.Context, sheetID int64, rep *report.Report) error {
	headerIdx := int64(tableHeaderRow - 1) // 0-indexed grid row of the table header
	reqs := []*gsheet.Request{
		repeatCell(sheetID, headerIdx, headerIdx+1, 0, 7, &gsheet.CellFormat{
			BackgroundColor: headerBG,
			TextFormat:      &gsheet.TextFormat{Bold: true},
		}, "userEnteredFormat(backgroundColor,textFormat)"),
		// Numeric columns (Actual..Deviation %) right-aligned.
		repeatCell(sheetID, headerIdx+1, headerIdx+1+int64(len(rep.TableRows)), 2, 6, &gsheet.CellFormat{
			HorizontalAlignment: "RIGHT",
		}, "userEnteredFormat.horizontalAlignment"),
	}

	for i, row := range rep.TableRows {
		gridRow := headerIdx + 1 + int64(i)
		switch row.Kind() {
		case report.RowCategory:
			reqs = append(reqs, repeatCell(sheetID, gridRow, gridRow+1, 0, 7, &gsheet.CellFormat{
				BackgroundColor: categoryBG,
				TextFormat:      &gsheet.TextFormat{Bold: true, Underline: true},
			}, "userEnteredFormat(backgroundColor,textFormat)"))
		case report.RowItem:
			reqs = append(reqs, repeatCell(sheetID, gridRow, gridRow+1, 0, 7, &gsheet.CellFormat{
				BackgroundColor: itemBG,
				TextFormat:      &gsheet.TextFormat{FontSize: 9},
			}, "userEnteredFormat(backgroundColor,textFormat)"))
		}

		var statusBG *gsheet.Color
		switch row.Status {
		case "Over":
			statusBG = overBG
		case "Under":
			statusBG = underBG
		}
		if statusBG != nil {
			reqs = append(reqs, repeatCell(sheetID, gridRow, gridRow+1, 6, 7, &gsheet.CellFormat{
				BackgroundColor: statusBG,
			}, "userEnteredFormat.backgroundColor"))
		}
	}

	reqs = append(reqs, &gsheet.Request{
		AutoResizeDimensions: &gsheet.AutoResizeDimensionsRequest{
			Dimensions: &gsheet.DimensionRange{
				SheetId:    sheetID,
				Dimension:  "COLUMNS",
				StartIndex: 0,
				EndIndex:   7,
			},
		},
	})

	_, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, &gsheet.BatchUpdateSpreadsheetRequest{
		Requests: reqs,
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("format report sheet: %w", err)
	}
	return nil
}

func repeatCell(sheetID, rowStart, rowEnd, colStart, colEnd int64, format *gsheet.CellFormat, fields string) *gsheet.Request {
	return &gsheet.Request{
		RepeatCell: &gsheet.RepeatCellRequest{
			Range: &gsheet.GridRange{
				SheetId:          sheetID,
				StartRowIndex:    rowStart,
				EndRowIndex:      rowEnd,
				StartColumnIndex: colStart,
				EndColumnIndex:   colEnd,
			},
			Cell:   &gsheet.CellData{UserEnteredFormat: format},
			Fields: fields,
		},
	}
}
