package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/bardiniww/lanit.hrjedi/internal/attendance"
	"github.com/bardiniww/lanit.hrjedi/internal/model"
	"github.com/bardiniww/lanit.hrjedi/internal/repository"
)

// ── Mock EmployeeRepository ──

type mockEmployeeRepo struct {
	employees map[int64]*model.Employee
	err       error
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{employees: make(map[int64]*model.Employee)}
}

func (m *mockEmployeeRepo) add(emp *model.Employee) *model.Employee {
	m.employees[emp.EmployeeID] = emp
	return emp
}

func (m *mockEmployeeRepo) GetByID(_ context.Context, id int64) (*model.Employee, error) {
	if m.err != nil {
		return nil, m.err
	}
	if e, ok := m.employees[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) GetByLogin(_ context.Context, login string) (*model.Employee, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, e := range m.employees {
		if e.Login == login {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) UpdateEmail(_ context.Context, id int64, email string) error {
	if m.err != nil {
		return m.err
	}
	e, ok := m.employees[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	e.Email = email
	return nil
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	months  map[int][]int // year → 有记录的月份
	records []model.Attendance
	err     error

	monthsCalls int
	listCalls   int
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{months: make(map[int][]int)}
}

func (m *mockAttendanceRepo) MonthsWithAttendance(_ context.Context, year int) ([]int, error) {
	m.monthsCalls++
	if m.err != nil {
		return nil, m.err
	}
	return m.months[year], nil
}

func (m *mockAttendanceRepo) ListByMonth(_ context.Context, year, month int) ([]model.Attendance, error) {
	m.listCalls++
	if m.err != nil {
		return nil, m.err
	}
	var result []model.Attendance
	for _, r := range m.records {
		if r.EntranceTime.Year() == year && int(r.EntranceTime.Month()) == month {
			result = append(result, r)
		}
	}
	return result, nil
}

// ── Mock 时钟 ──

type fixedClock attendance.CalendarMonth

func (c fixedClock) CurrentMonth() attendance.CalendarMonth {
	return attendance.CalendarMonth(c)
}

func clockAt(year int, month time.Month) fixedClock {
	return fixedClock{Year: year, Month: month}
}

// ── Mock Token 黑名单 ──

type mockBlacklist struct {
	entries map[string]time.Duration
	err     error
}

func newMockBlacklist() *mockBlacklist {
	return &mockBlacklist{entries: make(map[string]time.Duration)}
}

func (m *mockBlacklist) BlacklistToken(_ context.Context, jti string, ttl time.Duration) error {
	if m.err != nil {
		return m.err
	}
	m.entries[jti] = ttl
	return nil
}

// ── 测试辅助 ──

func newTestRepository(emp *mockEmployeeRepo, att *mockAttendanceRepo) *repository.Repository {
	return &repository.Repository{
		Employee:   emp,
		Attendance: att,
	}
}
