package model

import "time"

// 考勤代码
const (
	CodePresent = "Y" // 出勤（可能迟到，按分钟扣减）
	CodeAbsent  = "N" // 缺勤
)

// Sentinel 模板中"尚未评定"的占位值
const Sentinel = "--"

// FormRecord 一条表单签到记录
// 每次运行从 Microsoft Forms 导出文件解析一次，解析后不再修改。
type FormRecord struct {
	StudentID      string    // 规范化后的纯数字学号
	DateLabel      string    // 上课日期标签，"日/月" 不带前导零，如 "26/11"
	CompletionTime time.Time // 表单提交时间
}

// DateColumnPair 某个日期在模板中的列位置
// 约定：MinutesCol == CodeCol + 1
type DateColumnPair struct {
	CodeCol    int
	MinutesCol int
}

// DateColumns 日期标签 -> 列位置映射
type DateColumns map[string]DateColumnPair
