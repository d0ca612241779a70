package parser

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"github.com/huoston/attendance-transfer/internal/config"
	"github.com/huoston/attendance-transfer/internal/model"
)

// ReadRosterTable 把点名册模板读成内存表格
// 模板按约定以 .xls 结尾，但实际内容可能是 OOXML（zip 容器）也可能是
// 老式 BIFF，按文件头探测后分别交给 excelize / extrame/xls 处理。
func ReadRosterTable(path string, sheetIndex int) (*model.RosterTable, error) {
	zipBased, err := isZipContent(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open template file: %w", err)
	}

	if zipBased {
		return readRosterXLSX(path, sheetIndex)
	}
	return readRosterXLS(path, sheetIndex)
}

// isZipContent 根据文件头判断是否为 zip 容器（OOXML）
func isZipContent(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	var magic [4]byte
	if _, err := io.ReadFull(f, magic[:]); err != nil {
		return false, err
	}
	return bytes.Equal(magic[:], []byte{'P', 'K', 0x03, 0x04}), nil
}

func readRosterXLSX(path string, sheetIndex int) (*model.RosterTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open template file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(sheetIndex)
	if sheet == "" {
		return nil, fmt.Errorf("template has no sheet at index %d", sheetIndex)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read template sheet: %w", err)
	}

	return model.NewRosterTable(rows), nil
}

func readRosterXLS(path string, sheetIndex int) (*model.RosterTable, error) {
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("failed to open xls template: %w", err)
	}

	sheet := wb.GetSheet(sheetIndex)
	if sheet == nil {
		return nil, fmt.Errorf("template has no sheet at index %d", sheetIndex)
	}

	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]string, row.LastCol())
		for j := 0; j < row.LastCol(); j++ {
			cells[j] = row.Col(j)
		}
		rows = append(rows, cells)
	}

	return model.NewRosterTable(rows), nil
}

// IndexDateColumns 解析模板表头，建立日期标签到列位置的映射
// 逐列升序扫描日期表头行：非空且含 '/' 的单元格视为日期标签，
// Code 列即该列本身，Minutes 列紧随其后；重复标签以靠后的为准。
// 表头缺失或异常只产生告警并返回空映射，由下游把相关日期报为未匹配。
func IndexDateColumns(table *model.RosterTable, cfg config.TemplateConfig, diag *model.Diagnostics) model.DateColumns {
	cols := make(model.DateColumns)

	if table.RowCount() <= cfg.SubHeaderRow {
		diag.Addf(model.StageRoster, "模板只有 %d 行，缺少表头结构（日期表头应在第 %d 行）",
			table.RowCount(), cfg.DateHeaderRow)
		return cols
	}

	for col := 0; col < table.RowLen(cfg.DateHeaderRow); col++ {
		v := strings.TrimSpace(table.Cell(cfg.DateHeaderRow, col))
		if v == "" || !strings.Contains(v, "/") {
			continue
		}
		cols[v] = model.DateColumnPair{CodeCol: col, MinutesCol: col + 1}
	}

	if len(cols) == 0 {
		diag.Addf(model.StageRoster, "日期表头行（第 %d 行）中没有任何日期列", cfg.DateHeaderRow)
	}

	return cols
}
