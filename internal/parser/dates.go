package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// DayMonthLabel 把日期转成不带前导零的 "日/月" 标签
// 该标签必须与模板表头里的写法完全一致，是两张表之间唯一的关联键。
// 例: 2024-11-26 -> "26/11"；2024-12-03 -> "3/12"
func DayMonthLabel(t time.Time) string {
	return fmt.Sprintf("%d/%d", t.Day(), int(t.Month()))
}

// sheetTimeLayouts 表单导出中常见的时间写法
// Forms 导出经 Excel 渲染后格式随区域设置变化，按命中率排序逐个尝试。
var sheetTimeLayouts = []string{
	"1/2/06 15:04:05",
	"1/2/06 15:04",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/1/2 15:04:05",
	"2006/1/2 15:04",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"1/2/06 3:04:05 PM",
	"1/2/2006 3:04:05 PM",
}

// ParseSheetTime 宽松解析表格单元格里的时间
// 依次尝试常见布局，最后按 Excel 日期序列号处理；全部失败返回 false。
func ParseSheetTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range sheetTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}

	// 未套用日期格式的单元格会以序列号出现
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
