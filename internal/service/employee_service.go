package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bardiniww/lanit.hrjedi/internal/dto"
	"github.com/bardiniww/lanit.hrjedi/internal/model"
	"github.com/bardiniww/lanit.hrjedi/internal/repository"
)

// ── 员工模块业务错误 ──

var (
	ErrEmployeeNotFound = errors.New("员工不存在")
	ErrInvalidEmail     = errors.New("邮箱格式无效")
)

// 本地部分与域名部分均允许任意文字的字母、数字以及 . _ -
var emailPattern = regexp.MustCompile(`^[\p{L}\p{N}._-]+@[\p{L}\p{N}._-]+$`)

// EmployeeService 员工业务接口
type EmployeeService interface {
	GetByID(ctx context.Context, id int64) (*dto.EmployeeResponse, error)
	UpdateEmail(ctx context.Context, id int64, email string) (*dto.EmployeeResponse, error)
}

type employeeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEmployeeService 创建 EmployeeService 实例
func NewEmployeeService(repo *repository.Repository, logger *zap.Logger) EmployeeService {
	return &employeeService{repo: repo, logger: logger}
}

func (s *employeeService) GetByID(ctx context.Context, id int64) (*dto.EmployeeResponse, error) {
	emp, err := s.repo.Employee.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("查询员工失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	resp := toEmployeeResponse(emp)
	return &resp, nil
}

func (s *employeeService) UpdateEmail(ctx context.Context, id int64, email string) (*dto.EmployeeResponse, error) {
	email = strings.TrimSpace(email)
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	if err := s.repo.Employee.UpdateEmail(ctx, id, email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("更新邮箱失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, id)
}

func toEmployeeResponse(emp *model.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:       emp.EmployeeID,
		Login:    emp.Login,
		FullName: emp.FullName,
		Email:    emp.Email,
		Role:     emp.Role,
	}
}
