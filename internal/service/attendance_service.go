package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/bardiniww/lanit.hrjedi/internal/attendance"
	"github.com/bardiniww/lanit.hrjedi/internal/repository"
)

// AttendanceService 考勤数据完整性业务接口
type AttendanceService interface {
	// FindMissingMonths 返回 year 年内已结束但没有任何到访记录的月份，按月份升序
	FindMissingMonths(ctx context.Context, year int) ([]attendance.CalendarMonth, error)
}

type attendanceService struct {
	repo   *repository.Repository
	clock  attendance.Clock
	logger *zap.Logger
}

// NewAttendanceService 创建 AttendanceService 实例
func NewAttendanceService(repo *repository.Repository, clock attendance.Clock, logger *zap.Logger) AttendanceService {
	return &attendanceService{repo: repo, clock: clock, logger: logger}
}

func (s *attendanceService) FindMissingMonths(ctx context.Context, year int) ([]attendance.CalendarMonth, error) {
	limit := attendance.InspectionLimit(year, s.clock.CurrentMonth())
	if limit == 0 {
		// 未来年份或当前为 1 月：无需查询
		return []attendance.CalendarMonth{}, nil
	}

	months, err := s.repo.Attendance.MonthsWithAttendance(ctx, year)
	if err != nil {
		s.logger.Error("查询有考勤记录的月份失败", zap.Int("year", year), zap.Error(err))
		return nil, err
	}

	return attendance.MissingMonths(year, limit, months), nil
}
