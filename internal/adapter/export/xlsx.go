package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/shettypp/ai-syllabus-planner/internal/domain/entity"
)

// XLSXContentType is the media type of BuildXLSX output
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// PlanSheet is the worksheet holding the exported plan
const PlanSheet = "Plan"

var planHeaders = []string{"Date", "Start", "End", "Type", "Subject", "Topic", "Done", "Notes"}

var planColumnWidths = map[string]float64{
	"A": 12, "B": 8, "C": 8, "D": 8, "E": 20, "F": 40, "G": 6, "H": 40,
}

// BuildXLSX renders tasks into a single-sheet workbook, one row per task.
func BuildXLSX(tasks []*entity.Task) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", PlanSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	header := make([]interface{}, len(planHeaders))
	for i, h := range planHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(PlanSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	if err := f.SetCellStyle(PlanSheet, "A1", "H1", headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	for i, t := range tasks {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := taskRow(t)
		if err := f.SetSheetRow(PlanSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write task %d: %w", t.ID, err)
		}
	}

	for col, width := range planColumnWidths {
		if err := f.SetColWidth(PlanSheet, col, col, width); err != nil {
			return nil, fmt.Errorf("failed to size column %s: %w", col, err)
		}
	}
	if err := f.SetPanes(PlanSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("failed to freeze header: %w", err)
	}

	buf := new(bytes.Buffer)
	if _, err := f.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func taskRow(t *entity.Task) []interface{} {
	start, end := "", ""
	if t.StartTime != nil {
		start = t.StartTime.String()
	}
	if t.EndTime != nil {
		end = t.EndTime.String()
	}
	done := "No"
	if t.IsComplete {
		done = "Yes"
	}

	return []interface{}{
		t.DueDate.Format(time.DateOnly),
		start,
		end,
		string(t.TaskType),
		t.Subject,
		t.Topic,
		done,
		t.Notes,
	}
}
