package attendance

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/huoston/attendance-transfer/internal/config"
	"github.com/huoston/attendance-transfer/internal/model"
	"github.com/huoston/attendance-transfer/internal/parser"
)

// Reconciler 表单签到记录与点名册的比对器
// 两阶段运行：先落实每条签到记录，再把仍为占位值的学生标记缺勤。
// 单条记录的问题只产生告警，从不中断整次运行。
type Reconciler struct {
	table    *model.RosterTable
	dateCols model.DateColumns
	cfg      config.TemplateConfig
	diag     *model.Diagnostics
}

// NewReconciler 创建比对器
func NewReconciler(table *model.RosterTable, dateCols model.DateColumns, cfg config.TemplateConfig, diag *model.Diagnostics) *Reconciler {
	return &Reconciler{
		table:    table,
		dateCols: dateCols,
		cfg:      cfg,
		diag:     diag,
	}
}

// ApplyResponses 第一阶段：按输入顺序落实每条签到记录
// 日期不在模板中、学生不在册上都只告警跳过。同一学号在册上出现
// 多行时只更新最先出现的一行。返回成功写入的记录数。
func (r *Reconciler) ApplyResponses(records []model.FormRecord, startTime string, durationMinutes int) int {
	updates := 0
	for _, rec := range records {
		pair, ok := r.dateCols[rec.DateLabel]
		if !ok {
			r.diag.Addf(model.StageReconcile, "日期 %s 不在模板中（学号 %s），跳过", rec.DateLabel, rec.StudentID)
			continue
		}

		row := r.findStudentRow(parser.CanonicalStudentID(rec.StudentID))
		if row < 0 {
			r.diag.Addf(model.StageReconcile, "学号 %s 不在点名册中", rec.StudentID)
			continue
		}

		code, minutes := Calculate(rec.CompletionTime, startTime, durationMinutes)
		r.table.Set(row, pair.CodeCol, code)
		r.table.Set(row, pair.MinutesCol, minutes)
		updates++
		log.Debugf("学号 %s / 日期 %s：Code=%s Minutes=%d", rec.StudentID, rec.DateLabel, code, minutes)
	}
	return updates
}

// findStudentRow 自学生起始行起查找学号，返回首个匹配行（找不到返回 -1）
// 后续重复行不更新，但会产生告警，让这条静默策略至少可见。
func (r *Reconciler) findStudentRow(id string) int {
	if id == "" {
		return -1
	}

	found := -1
	for row := r.cfg.StudentStartRow; row < r.table.RowCount(); row++ {
		got := parser.CanonicalStudentID(r.table.Cell(row, r.cfg.StudentIDCol))
		if got == "" || got != id {
			continue
		}
		if found < 0 {
			found = row
			continue
		}
		r.diag.Addf(model.StageReconcile, "学号 %s 在点名册第 %d 行重复出现，只更新第一处", id, row)
	}
	return found
}

// MarkAbsences 第二阶段：把代码列仍为占位值的学生标记为缺勤 (N, 0)
// 只处理表单数据中出现且模板里存在的日期。判断基于覆盖层之后的
// 有效值，因此重复执行不会产生新的写入。返回标记的缺勤数。
func (r *Reconciler) MarkAbsences(dateLabels []string) int {
	absences := 0
	for _, label := range dateLabels {
		pair, ok := r.dateCols[label]
		if !ok {
			continue
		}

		for row := r.cfg.StudentStartRow; row < r.table.RowCount(); row++ {
			if strings.TrimSpace(r.table.EffectiveCell(row, pair.CodeCol)) != r.cfg.Sentinel {
				continue
			}
			r.table.Set(row, pair.CodeCol, model.CodeAbsent)
			r.table.Set(row, pair.MinutesCol, 0)
			absences++
			log.Debugf("第 %d 行学生标记缺勤（日期 %s）", row, label)
		}
	}
	return absences
}

// SeenDateLabels 按首次出现顺序去重收集记录中的日期标签
func SeenDateLabels(records []model.FormRecord) []string {
	seen := make(map[string]struct{}, len(records))
	var labels []string
	for _, rec := range records {
		if _, ok := seen[rec.DateLabel]; ok {
			continue
		}
		seen[rec.DateLabel] = struct{}{}
		labels = append(labels, rec.DateLabel)
	}
	return labels
}
