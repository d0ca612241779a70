package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/huoston/attendance-transfer/internal/model"
)

// 表单文件必须包含的列名（与 Microsoft Forms 导出一致）
const (
	ColEmail          = "Email"
	ColStartTime      = "Start time"
	ColCompletionTime = "Completion time"
)

// FormsParser Microsoft Forms 签到表解析器
type FormsParser struct {
	path string
}

// NewFormsParser 创建签到表解析器
func NewFormsParser(path string) *FormsParser {
	return &FormsParser{path: path}
}

// Parse 读取表单文件并产出有效签到记录
// 返回值依次为：记录列表、表单数据行总数、致命错误。
// 学号或时间无法解析的行记入诊断后跳过，不会中断整次运行。
func (p *FormsParser) Parse(diag *model.Diagnostics) ([]model.FormRecord, int, error) {
	f, err := excelize.OpenFile(p.path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open forms file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, 0, fmt.Errorf("no worksheet in forms file %s", p.path)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read forms sheet: %w", err)
	}
	if len(rows) == 0 {
		return nil, 0, fmt.Errorf("forms sheet is empty: %s", p.path)
	}

	// 第一行是表头
	headers := rows[0]
	emailCol := findColumn(headers, ColEmail)
	startCol := findColumn(headers, ColStartTime)
	doneCol := findColumn(headers, ColCompletionTime)
	if emailCol < 0 || startCol < 0 || doneCol < 0 {
		return nil, 0, fmt.Errorf("forms sheet missing required columns (%s / %s / %s)",
			ColEmail, ColStartTime, ColCompletionTime)
	}

	var records []model.FormRecord
	total := len(rows) - 1
	for i := 1; i < len(rows); i++ {
		row := rows[i]

		email := cellAt(row, emailCol)
		id, err := ExtractStudentID(email)
		if err != nil {
			diag.Addf(model.StageForms, "第 %d 行：无法从邮箱 %q 提取学号，跳过", i+1, email)
			continue
		}

		start, ok := ParseSheetTime(cellAt(row, startCol))
		if !ok {
			diag.Addf(model.StageForms, "第 %d 行：开始时间 %q 无法解析，跳过", i+1, cellAt(row, startCol))
			continue
		}

		done, ok := ParseSheetTime(cellAt(row, doneCol))
		if !ok {
			diag.Addf(model.StageForms, "第 %d 行：提交时间 %q 无法解析，跳过", i+1, cellAt(row, doneCol))
			continue
		}

		records = append(records, model.FormRecord{
			StudentID:      id,
			DateLabel:      DayMonthLabel(start),
			CompletionTime: done,
		})
	}

	return records, total, nil
}

// findColumn 按列名（大小写与首尾空白不敏感）查找列索引，找不到返回 -1
func findColumn(headers []string, name string) int {
	for i, h := range headers {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
