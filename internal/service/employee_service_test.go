package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/bardiniww/lanit.hrjedi/internal/model"
)

func setupTestEmployeeService() (EmployeeService, *mockEmployeeRepo) {
	empRepo := newMockEmployeeRepo()
	empRepo.add(&model.Employee{
		EmployeeID: 3,
		Login:      "petrov",
		FullName:   "Петров Пётр",
		Email:      "old@lanit.ru",
		Role:       model.RoleEmployee,
	})
	repo := newTestRepository(empRepo, newMockAttendanceRepo())
	return NewEmployeeService(repo, zap.NewNop()), empRepo
}

func TestEmployeeService_GetByID(t *testing.T) {
	svc, _ := setupTestEmployeeService()

	resp, err := svc.GetByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if resp.FullName != "Петров Пётр" || resp.Email != "old@lanit.ru" {
		t.Errorf("员工信息错误: %+v", resp)
	}
}

func TestEmployeeService_GetByID_NotFound(t *testing.T) {
	svc, _ := setupTestEmployeeService()

	if _, err := svc.GetByID(context.Background(), 404); !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("期望 ErrEmployeeNotFound，实际: %v", err)
	}
}

func TestEmployeeService_UpdateEmail_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"拉丁字母", "petrov@lanit.ru", "petrov@lanit.ru"},
		{"西里尔字母", "пётр@почта.рф", "пётр@почта.рф"},
		{"含点号与下划线", "p.petrov_1@mail-box.ru", "p.petrov_1@mail-box.ru"},
		{"去除首尾空白", "  trim@lanit.ru ", "trim@lanit.ru"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, empRepo := setupTestEmployeeService()

			resp, err := svc.UpdateEmail(context.Background(), 3, tt.input)
			if err != nil {
				t.Fatalf("UpdateEmail 应成功: %v", err)
			}
			if resp.Email != tt.want {
				t.Errorf("期望返回 email=%q，实际=%q", tt.want, resp.Email)
			}
			if empRepo.employees[3].Email != tt.want {
				t.Errorf("期望持久化 email=%q，实际=%q", tt.want, empRepo.employees[3].Email)
			}
		})
	}
}

func TestEmployeeService_UpdateEmail_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"空字符串", ""},
		{"仅空白", "   "},
		{"缺少@", "petrov.lanit.ru"},
		{"缺少本地部分", "@lanit.ru"},
		{"缺少域名", "petrov@"},
		{"两个@", "a@b@c"},
		{"包含空格", "pet rov@lanit.ru"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, empRepo := setupTestEmployeeService()

			if _, err := svc.UpdateEmail(context.Background(), 3, tt.input); !errors.Is(err, ErrInvalidEmail) {
				t.Errorf("期望 ErrInvalidEmail，实际: %v", err)
			}
			if empRepo.employees[3].Email != "old@lanit.ru" {
				t.Error("无效邮箱不应写入")
			}
		})
	}
}

func TestEmployeeService_UpdateEmail_NotFound(t *testing.T) {
	svc, _ := setupTestEmployeeService()

	if _, err := svc.UpdateEmail(context.Background(), 404, "a@b.ru"); !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("期望 ErrEmployeeNotFound，实际: %v", err)
	}
}
