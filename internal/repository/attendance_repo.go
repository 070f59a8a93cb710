package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/bardiniww/lanit.hrjedi/internal/model"
)

// AttendanceRepository 到访记录数据访问接口
type AttendanceRepository interface {
	// MonthsWithAttendance 返回 year 年内至少有一条记录的月份（1–12，去重）
	MonthsWithAttendance(ctx context.Context, year int) ([]int, error)
	// ListByMonth 返回某年某月的全部记录，预加载员工与办公室，按进入时间排序
	ListByMonth(ctx context.Context, year, month int) ([]model.Attendance, error)
}

type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo 创建 AttendanceRepository 实例
func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) MonthsWithAttendance(ctx context.Context, year int) ([]int, error) {
	var months []int
	err := r.db.WithContext(ctx).
		Model(&model.Attendance{}).
		Where("EXTRACT(YEAR FROM entrance_time) = ?", year).
		Distinct().
		Pluck("CAST(EXTRACT(MONTH FROM entrance_time) AS INTEGER)", &months).Error
	return months, err
}

func (r *attendanceRepo) ListByMonth(ctx context.Context, year, month int) ([]model.Attendance, error) {
	var records []model.Attendance
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Office").
		Where("EXTRACT(YEAR FROM entrance_time) = ? AND EXTRACT(MONTH FROM entrance_time) = ?", year, month).
		Order("entrance_time ASC, attendance_id ASC").
		Find(&records).Error
	return records, err
}
