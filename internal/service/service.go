package service

import (
	"go.uber.org/zap"

	"github.com/bardiniww/lanit.hrjedi/config"
	"github.com/bardiniww/lanit.hrjedi/internal/attendance"
	"github.com/bardiniww/lanit.hrjedi/internal/repository"
	"github.com/bardiniww/lanit.hrjedi/pkg/jwt"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth       AuthService
	Employee   EmployeeService
	Attendance AttendanceService
	Report     ReportService
}

// NewService 创建 Service 聚合
// blacklist 为 nil 时注销接口降级为仅客户端丢弃 Token
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	blacklist TokenBlacklist,
	clock attendance.Clock,
	loader attendance.TemplateLoader,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:       NewAuthService(cfg, repo, jwtMgr, blacklist, logger),
		Employee:   NewEmployeeService(repo, logger),
		Attendance: NewAttendanceService(repo, clock, logger),
		Report:     NewReportService(repo, loader, cfg.Report.TemplateName, cfg.Report.Ranking(), logger),
	}
}
