package transfer

import (
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/huoston/attendance-transfer/internal/config"
	"github.com/huoston/attendance-transfer/internal/model"
	"github.com/huoston/attendance-transfer/internal/parser"
	"github.com/huoston/attendance-transfer/internal/service/attendance"
	"github.com/huoston/attendance-transfer/internal/service/excel"
	"github.com/huoston/attendance-transfer/internal/util"
)

// Options 一次运行的输入参数
type Options struct {
	StartTime       string // HH:MM，调用前必须已通过校验
	DurationMinutes int
}

// Run 执行一次完整的考勤转录
// 定位输入文件 -> 解析表单 -> 读取模板并建日期索引 -> 两阶段比对 ->
// 选择性写回。致命错误（文件缺失、读写失败）直接返回；单条记录的
// 问题只进入报告的诊断列表，运行照常完成并产出输出文件。
func Run(cfg *config.AppConfig, opts Options) (*model.TransferReport, error) {
	begin := time.Now()
	diag := &model.Diagnostics{}

	report := &model.TransferReport{
		RunID: uuid.New().String(),
	}

	formsPath, err := util.FindFormsFile(cfg.Data.WorkDir, diag)
	if err != nil {
		return nil, err
	}
	templatePath, err := util.FindTemplateFile(cfg.Data.WorkDir, diag)
	if err != nil {
		return nil, err
	}
	report.FormsFile = formsPath
	report.TemplateFile = templatePath

	log.Infof("读取表单文件: %s", formsPath)
	records, total, err := parser.NewFormsParser(formsPath).Parse(diag)
	if err != nil {
		return nil, err
	}
	report.TotalRows = total
	report.ValidRecords = len(records)
	log.Infof("共 %d 行，有效签到记录 %d 条", total, len(records))

	log.Infof("读取点名册模板: %s", templatePath)
	table, err := parser.ReadRosterTable(templatePath, cfg.Template.SheetIndex)
	if err != nil {
		return nil, err
	}

	dateCols := parser.IndexDateColumns(table, cfg.Template, diag)
	students := table.RowCount() - cfg.Template.StudentStartRow
	if students < 0 {
		students = 0
	}
	log.Infof("模板中有 %d 个日期列，%d 名学生", len(dateCols), students)

	rec := attendance.NewReconciler(table, dateCols, cfg.Template, diag)
	report.Updates = rec.ApplyResponses(records, opts.StartTime, opts.DurationMinutes)
	report.DateLabels = attendance.SeenDateLabels(records)
	report.Absences = rec.MarkAbsences(report.DateLabels)
	log.Infof("写入出勤 %d 条，标记缺勤 %d 条", report.Updates, report.Absences)

	out, written, err := excel.WriteUpdated(table, templatePath, cfg.Template.SheetIndex, cfg.Output.Suffix)
	if err != nil {
		return nil, err
	}
	report.OutputFile = out
	log.Infof("输出文件: %s（实际写入 %d 个单元格）", out, written)

	report.Duration = time.Since(begin)
	report.Diagnostics = diag.Items()
	return report, nil
}
