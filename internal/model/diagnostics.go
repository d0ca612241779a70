package model

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// DiagStage 诊断所属处理阶段
type DiagStage string

const (
	StageDiscover  DiagStage = "discover"  // 输入文件定位
	StageForms     DiagStage = "forms"     // 表单文件解析
	StageRoster    DiagStage = "roster"    // 模板结构解析
	StageReconcile DiagStage = "reconcile" // 考勤比对
)

// Diagnostic 一条非致命告警
// 单条记录的问题（学号无法解析、日期不在模板中等）只产生告警，
// 不会中断整次运行。
type Diagnostic struct {
	Stage   DiagStage `json:"stage"`
	Message string    `json:"message"`
}

// Diagnostics 结构化告警列表
// 代替直接往 stdout 打印，调用方（含测试）可以直接断言内容；
// 每条告警同时镜像到日志。
type Diagnostics struct {
	items []Diagnostic
}

// Addf 追加一条告警并写日志
func (d *Diagnostics) Addf(stage DiagStage, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	d.items = append(d.items, Diagnostic{Stage: stage, Message: msg})
	log.Warnf("[%s] %s", stage, msg)
}

// Items 全部告警
func (d *Diagnostics) Items() []Diagnostic {
	return d.items
}

// Len 告警条数
func (d *Diagnostics) Len() int {
	return len(d.items)
}

// ByStage 指定阶段的告警
func (d *Diagnostics) ByStage(stage DiagStage) []Diagnostic {
	var out []Diagnostic
	for _, item := range d.items {
		if item.Stage == stage {
			out = append(out, item)
		}
	}
	return out
}
