package excel

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/huoston/attendance-transfer/internal/model"
)

// OutputPath 输出文件名：原文件名主体 + 后缀 + 原扩展名
// 例: attendance.xls -> attendance_updated.xls
func OutputPath(originalPath, suffix string) string {
	ext := filepath.Ext(originalPath)
	return strings.TrimSuffix(originalPath, ext) + suffix + ext
}

// WriteUpdated 把覆盖层写入模板的样式保持副本
// 重新打开原始文件作为副本基底，字体、边框、合并单元格全部原样保留；
// 只写字符串形式与原值不同的单元格（以及超出原表范围的新单元格），
// 数值按数值写入，其余按文本写入，未改动的单元格一概不碰。
// 原文件无法按工作簿重新打开、或输出保存失败，都是致命错误。
// 返回输出路径与实际写入的单元格数。
func WriteUpdated(table *model.RosterTable, originalPath string, sheetIndex int, suffix string) (string, int, error) {
	data, err := os.ReadFile(originalPath)
	if err != nil {
		return "", 0, fmt.Errorf("cannot reopen template for style-preserving copy: %w", err)
	}

	// 经 OpenReader 打开，避免 excelize 校验 .xls 扩展名
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", 0, fmt.Errorf("cannot reopen template for style-preserving copy: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(sheetIndex)
	if sheet == "" {
		return "", 0, fmt.Errorf("template has no sheet at index %d", sheetIndex)
	}

	written := 0
	for _, u := range table.Updates() {
		if u.Value == nil {
			continue
		}
		updated := strings.TrimSpace(fmt.Sprint(u.Value))
		if updated == "" {
			// 空值视为未更新，保留原内容
			continue
		}
		if strings.TrimSpace(table.Cell(u.Row, u.Col)) == updated {
			continue
		}

		cell, err := excelize.CoordinatesToCellName(u.Col+1, u.Row+1)
		if err != nil {
			return "", 0, fmt.Errorf("invalid cell position (%d,%d): %w", u.Row, u.Col, err)
		}

		value := u.Value
		if !isNumeric(value) {
			value = fmt.Sprint(u.Value)
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return "", 0, fmt.Errorf("failed to write cell %s: %w", cell, err)
		}
		written++
	}

	out := OutputPath(originalPath, suffix)
	w, err := os.Create(out)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create output file: %w", err)
	}
	if err := f.Write(w); err != nil {
		w.Close()
		return "", 0, fmt.Errorf("failed to save output file: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", 0, fmt.Errorf("failed to save output file: %w", err)
	}

	return out, written, nil
}

func isNumeric(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}
