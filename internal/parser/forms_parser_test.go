package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/huoston/attendance-transfer/internal/model"
)

// writeFormsFile 生成一个最小的 Forms 导出文件
func writeFormsFile(t *testing.T, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "forms.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save forms file: %v", err)
	}
	return path
}

func TestFormsParser_Parse(t *testing.T) {
	t.Parallel()

	path := writeFormsFile(t, [][]any{
		{"ID", "Start time", "Completion time", "Email", "Name"},
		{1, "2024-11-26 13:05:00", "2024-11-26 13:15:00", "S4186054@rmit.edu.vn", "Nguyen Van A"},
		{2, "2024-11-26 13:06:00", "2024-11-26 13:08:00", "abc@x.com", "Invalid"},
		{3, "2024-12-03 09:00:00", "2024-12-03 09:01:30", "4019025@rmit.edu.vn", "Le Van C"},
	})

	diag := &model.Diagnostics{}
	records, total, err := NewFormsParser(path).Parse(diag)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if total != 3 {
		t.Fatalf("total want=3 got=%d", total)
	}
	if len(records) != 2 {
		t.Fatalf("records want=2 got=%d (%v)", len(records), records)
	}

	if records[0].StudentID != "4186054" || records[0].DateLabel != "26/11" {
		t.Fatalf("record 0: %+v", records[0])
	}
	if records[0].CompletionTime.Hour() != 13 || records[0].CompletionTime.Minute() != 15 {
		t.Fatalf("record 0 completion: %v", records[0].CompletionTime)
	}
	if records[1].StudentID != "4019025" || records[1].DateLabel != "3/12" {
		t.Fatalf("record 1: %+v", records[1])
	}

	// 非法邮箱只产生告警
	if len(diag.ByStage(model.StageForms)) != 1 {
		t.Fatalf("expected one forms warning, got %v", diag.Items())
	}
}

func TestFormsParser_MissingColumns(t *testing.T) {
	t.Parallel()

	path := writeFormsFile(t, [][]any{
		{"ID", "Name", "Email"},
		{1, "Nguyen Van A", "S4186054@rmit.edu.vn"},
	})

	diag := &model.Diagnostics{}
	if _, _, err := NewFormsParser(path).Parse(diag); err == nil {
		t.Fatalf("missing columns must be fatal")
	}
}

func TestFormsParser_FileMissing(t *testing.T) {
	t.Parallel()

	diag := &model.Diagnostics{}
	missing := filepath.Join(t.TempDir(), "nope.xlsx")
	if _, err := os.Stat(missing); !os.IsNotExist(err) {
		t.Fatalf("precondition: file should not exist")
	}
	if _, _, err := NewFormsParser(missing).Parse(diag); err == nil {
		t.Fatalf("missing file must be fatal")
	}
}
