package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record 一次到访（进入/离开）记录，是报表引擎的输入单元
type Record struct {
	EmployeeID       int64
	EmployeeFullName string
	OfficeID         int64
	OfficeName       string
	EntranceAt       time.Time
	ExitAt           time.Time
}

// Seconds 在办公室停留的整秒数
func (r Record) Seconds() int64 {
	return int64(r.ExitAt.Sub(r.EntranceAt) / time.Second)
}

var secondsPerHour = decimal.NewFromInt(3600)

// AggregateHours 按员工汇总工时并向上取整。
//
// 同一员工的多条记录以完整精度累加（先累加秒数，最后统一换算为小时再取整），
// 例如 1h + 40m + 40m 计为 3 小时。没有记录的员工不会出现在结果中。
func AggregateHours(records []Record) map[int64]int {
	seconds := make(map[int64]decimal.Decimal)
	for _, r := range records {
		seconds[r.EmployeeID] = seconds[r.EmployeeID].Add(decimal.NewFromInt(r.Seconds()))
	}

	hours := make(map[int64]int, len(seconds))
	for id, total := range seconds {
		hours[id] = int(total.Div(secondsPerHour).Ceil().IntPart())
	}
	return hours
}
