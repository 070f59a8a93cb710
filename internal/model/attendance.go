package model

import "time"

// Attendance 到访记录表 — 对应 attendances
// 由门禁系统写入；一条记录对应一次进入/离开，ExitTime 不早于 EntranceTime。
type Attendance struct {
	AttendanceID int64     `gorm:"primaryKey;autoIncrement" json:"attendance_id"`
	EmployeeID   int64     `gorm:"not null;index"           json:"employee_id"`
	OfficeID     int64     `gorm:"not null"                 json:"office_id"`
	EntranceTime time.Time `gorm:"not null;index"           json:"entrance_time"`
	ExitTime     time.Time `gorm:"not null"                 json:"exit_time"`
	BaseModel

	// 关联
	Employee *Employee `gorm:"foreignKey:EmployeeID;references:EmployeeID" json:"employee,omitempty"`
	Office   *Office   `gorm:"foreignKey:OfficeID;references:OfficeID"     json:"office,omitempty"`
}

// TableName 指定表名
func (Attendance) TableName() string { return "attendances" }
