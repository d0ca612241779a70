package model

import "time"

// TransferReport 一次考勤转录运行的汇总报告
type TransferReport struct {
	RunID        string        `json:"runId"`
	FormsFile    string        `json:"formsFile"`
	TemplateFile string        `json:"templateFile"`
	OutputFile   string        `json:"outputFile"`
	TotalRows    int           `json:"totalRows"`    // 表单数据行数
	ValidRecords int           `json:"validRecords"` // 成功解析的签到记录数
	Updates      int           `json:"updates"`      // 写入的出勤记录数
	Absences     int           `json:"absences"`     // 标记的缺勤数
	DateLabels   []string      `json:"dateLabels"`   // 本次处理涉及的日期
	Duration     time.Duration `json:"duration"`
	Diagnostics  []Diagnostic  `json:"diagnostics,omitempty"`
}
