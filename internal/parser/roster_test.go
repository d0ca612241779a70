package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/huoston/attendance-transfer/internal/config"
	"github.com/huoston/attendance-transfer/internal/model"
)

// writeRosterFile 生成一个 xls 命名、OOXML 内容的模板文件
func writeRosterFile(t *testing.T, rows [][]any) string {
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

	path := filepath.Join(t.TempDir(), "roster.xls")
	w, err := os.Create(path)
	if err != nil {
		t.Fatalf("create roster file: %v", err)
	}
	defer w.Close()
	if err := f.Write(w); err != nil {
		t.Fatalf("write roster file: %v", err)
	}
	return path
}

func rosterRows() [][]any {
	return [][]any{
		{"出席表"},
		{},
		{},
		{"", "", "", "", "", "26/11", "", "3/12", ""},
		{"", "", "", "", "", "Code", "Minutes", "Code", "Minutes"},
		{"4186054", "Nguyen Van A", "", "", "", "--", "--", "--", "--"},
		{"3992383", "Tran Thi B", "", "", "", "--", "--", "--", "--"},
	}
}

func TestReadRosterTable_ZipContent(t *testing.T) {
	t.Parallel()

	path := writeRosterFile(t, rosterRows())

	table, err := ReadRosterTable(path, 0)
	if err != nil {
		t.Fatalf("read roster: %v", err)
	}
	if table.RowCount() != 7 {
		t.Fatalf("rows want=7 got=%d", table.RowCount())
	}
	if got := table.Cell(3, 5); got != "26/11" {
		t.Fatalf("date header want=26/11 got=%q", got)
	}
	if got := table.Cell(5, 0); got != "4186054" {
		t.Fatalf("student id want=4186054 got=%q", got)
	}
	if got := table.Cell(5, 5); got != "--" {
		t.Fatalf("sentinel want=-- got=%q", got)
	}
}

func TestReadRosterTable_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := ReadRosterTable(filepath.Join(t.TempDir(), "nope.xls"), 0); err == nil {
		t.Fatalf("missing file must be fatal")
	}
}

func TestIndexDateColumns(t *testing.T) {
	t.Parallel()

	path := writeRosterFile(t, rosterRows())
	table, err := ReadRosterTable(path, 0)
	if err != nil {
		t.Fatalf("read roster: %v", err)
	}

	diag := &model.Diagnostics{}
	cols := IndexDateColumns(table, config.DefaultConfig().Template, diag)

	if len(cols) != 2 {
		t.Fatalf("date columns want=2 got=%v", cols)
	}
	if pair := cols["26/11"]; pair.CodeCol != 5 || pair.MinutesCol != 6 {
		t.Fatalf("26/11: %+v", pair)
	}
	if pair := cols["3/12"]; pair.CodeCol != 7 || pair.MinutesCol != 8 {
		t.Fatalf("3/12: %+v", pair)
	}
	if diag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", diag.Items())
	}
}

func TestIndexDateColumns_DuplicateLabelLastWins(t *testing.T) {
	t.Parallel()

	table := model.NewRosterTable([][]string{
		{}, {}, {},
		{"", "26/11", "", "26/11", ""},
		{"", "Code", "Minutes", "Code", "Minutes"},
		{"4186054", "--", "--", "--", "--"},
	})

	diag := &model.Diagnostics{}
	cols := IndexDateColumns(table, config.DefaultConfig().Template, diag)

	if len(cols) != 1 {
		t.Fatalf("date columns want=1 got=%v", cols)
	}
	if pair := cols["26/11"]; pair.CodeCol != 3 || pair.MinutesCol != 4 {
		t.Fatalf("last occurrence should win: %+v", pair)
	}
}

func TestIndexDateColumns_MalformedHeader(t *testing.T) {
	t.Parallel()

	// 行数不足：软失败，空映射 + 告警
	short := model.NewRosterTable([][]string{{"出席表"}, {}})
	diag := &model.Diagnostics{}
	if cols := IndexDateColumns(short, config.DefaultConfig().Template, diag); len(cols) != 0 {
		t.Fatalf("short table: want empty map, got %v", cols)
	}
	if len(diag.ByStage(model.StageRoster)) != 1 {
		t.Fatalf("short table should warn, got %v", diag.Items())
	}

	// 表头行没有任何日期列：同样软失败
	noDates := model.NewRosterTable([][]string{
		{}, {}, {},
		{"", "Name", "Group"},
		{"", "", ""},
		{"4186054", "Nguyen Van A", "G1"},
	})
	diag2 := &model.Diagnostics{}
	if cols := IndexDateColumns(noDates, config.DefaultConfig().Template, diag2); len(cols) != 0 {
		t.Fatalf("no dates: want empty map, got %v", cols)
	}
	if len(diag2.ByStage(model.StageRoster)) != 1 {
		t.Fatalf("no dates should warn, got %v", diag2.Items())
	}
}
