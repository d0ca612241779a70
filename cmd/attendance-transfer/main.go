package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/huoston/attendance-transfer/internal/config"
	"github.com/huoston/attendance-transfer/internal/service/attendance"
	"github.com/huoston/attendance-transfer/internal/service/transfer"
)

var (
	startTime string
	duration  int
)

// newRootCmd 构建根命令
// 只有两个必填参数，参数校验在任何文件 I/O 之前完成。
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attendance-transfer",
		Short: "把 Microsoft Forms 签到结果转录到考勤模板",
		Long: `把 Microsoft Forms 导出的签到结果（.xlsx）转录到考勤模板（.xls），
按课程开始时间和时长计算考勤代码与出勤分钟数，
未签到的学生自动标记缺勤，输出保留原模板的全部格式。`,
		Example: `  attendance-transfer --start_time 13:00 --duration 180
  attendance-transfer -s 09:30 -d 120`,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := attendance.ValidateStartTime(startTime); err != nil {
				return err
			}
			if duration <= 0 {
				return fmt.Errorf("duration must be positive, got: %d", duration)
			}

			// 参数合法之后的失败与用法无关，不再打印 usage
			cmd.SilenceUsage = true

			cfg, err := config.LoadConfig()
			if err != nil {
				log.Warnf("加载配置失败，使用默认配置: %v", err)
				cfg = config.DefaultConfig()
			}
			if cfg.Log.Verbose {
				log.SetLevel(log.DebugLevel)
			}

			fmt.Println("==========================================")
			fmt.Println("  attendance-transfer - 考勤转录工具")
			fmt.Println("==========================================")
			fmt.Printf("课程开始时间: %s\n", startTime)
			fmt.Printf("课程时长: %d 分钟\n", duration)

			report, err := transfer.Run(cfg, transfer.Options{
				StartTime:       startTime,
				DurationMinutes: duration,
			})
			if err != nil {
				return err
			}

			fmt.Println("------------------------------------------")
			fmt.Printf("运行 ID: %s\n", report.RunID)
			fmt.Printf("有效签到记录: %d / %d\n", report.ValidRecords, report.TotalRows)
			fmt.Printf("写入出勤 %d 条，标记缺勤 %d 条\n", report.Updates, report.Absences)
			if len(report.Diagnostics) > 0 {
				fmt.Printf("告警 %d 条（详见日志输出）\n", len(report.Diagnostics))
			}
			fmt.Printf("输出文件: %s\n", report.OutputFile)
			return nil
		},
	}

	cmd.Flags().StringVarP(&startTime, "start_time", "s", "", "课程开始时间，HH:MM 格式（如 13:00）")
	cmd.Flags().IntVarP(&duration, "duration", "d", 0, "课程时长（分钟）")
	_ = cmd.MarkFlagRequired("start_time")
	_ = cmd.MarkFlagRequired("duration")

	return cmd
}

func main() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}
