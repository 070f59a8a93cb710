// Package attendance 考勤汇总与报表组装引擎。
//
// 本包只包含纯计算逻辑：缺失月份检测、工时汇总、汇总行排序以及报表模板写入。
// 数据获取（数据库、时钟、模板文件）由 service 层注入。
package attendance

import (
	"fmt"
	"time"
)

// CalendarMonth 日历月（年 + 1–12 月）
type CalendarMonth struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// String 返回 2020-02 形式的文本
func (m CalendarMonth) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Clock 当前月份来源
type Clock interface {
	CurrentMonth() CalendarMonth
}

// SystemClock 基于系统时间的 Clock 实现，按指定时区换算当前月份
type SystemClock struct {
	Location *time.Location
	now      func() time.Time
}

// NewSystemClock 创建 SystemClock；loc 为 nil 时使用 time.Local
func NewSystemClock(loc *time.Location) *SystemClock {
	if loc == nil {
		loc = time.Local
	}
	return &SystemClock{Location: loc, now: time.Now}
}

// CurrentMonth 返回时区内的当前年月
func (c *SystemClock) CurrentMonth() CalendarMonth {
	now := c.now().In(c.Location)
	return CalendarMonth{Year: now.Year(), Month: now.Month()}
}

// InspectionLimit 计算 targetYear 需要检查的月份上限 limit，窗口为 [1, limit]。
//
//   - 未来年份：0
//   - 当前年份：只检查已经结束的月份（当前月不计入）
//   - 过去年份：12
//
// limit 为 0 时调用方不得再查询考勤数据。
func InspectionLimit(targetYear int, current CalendarMonth) int {
	switch {
	case targetYear > current.Year:
		return 0
	case targetYear == current.Year:
		return int(current.Month) - 1
	default:
		return 12
	}
}

// MissingMonths 返回 [1, limit] 中不在 monthsWithData 里的月份，按月份升序
func MissingMonths(targetYear, limit int, monthsWithData []int) []CalendarMonth {
	present := make(map[int]bool, len(monthsWithData))
	for _, m := range monthsWithData {
		present[m] = true
	}

	missing := make([]CalendarMonth, 0, limit)
	for m := 1; m <= limit; m++ {
		if !present[m] {
			missing = append(missing, CalendarMonth{Year: targetYear, Month: time.Month(m)})
		}
	}
	return missing
}
