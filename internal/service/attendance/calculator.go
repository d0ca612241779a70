package attendance

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/huoston/attendance-transfer/internal/model"
)

// startTimePattern 课程开始时间的合法格式 HH:MM（0:00 - 23:59）
var startTimePattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

// ValidateStartTime 校验 HH:MM 格式的开始时间
func ValidateStartTime(s string) error {
	if !startTimePattern.MatchString(s) {
		return fmt.Errorf("invalid start_time format: %q (expected HH:MM, e.g. 13:00)", s)
	}
	return nil
}

// Calculate 根据提交时间计算考勤代码和出勤分钟数
// 课程开始时刻取提交时间的日期加上 startTime 的时分（秒归零）：
//   - 提交不晚于开始：全勤 (Y, duration)
//   - 提交不早于结束：缺勤 (N, 0)，不给部分学分
//   - 课中提交：迟到分钟数向下取整，(Y, duration - 迟到分钟)
//
// 纯函数，startTime 必须已通过 ValidateStartTime 校验。
func Calculate(completion time.Time, startTime string, durationMinutes int) (string, int) {
	parts := strings.SplitN(startTime, ":", 2)
	hour, _ := strconv.Atoi(parts[0])
	minute, _ := strconv.Atoi(parts[1])

	classStart := time.Date(
		completion.Year(), completion.Month(), completion.Day(),
		hour, minute, 0, 0, completion.Location(),
	)
	classEnd := classStart.Add(time.Duration(durationMinutes) * time.Minute)

	if !completion.After(classStart) {
		return model.CodePresent, durationMinutes
	}

	if !completion.Before(classEnd) {
		return model.CodeAbsent, 0
	}

	minutesLate := int(completion.Sub(classStart) / time.Minute)
	return model.CodePresent, durationMinutes - minutesLate
}
