package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/bardiniww/lanit.hrjedi/internal/attendance"
	"github.com/bardiniww/lanit.hrjedi/internal/model"
	"github.com/bardiniww/lanit.hrjedi/internal/repository"
)

// ── 报表模块业务错误 ──

var (
	ErrReportInvalidPeriod = errors.New("年份或月份无效")
	ErrReportGenerateFail  = errors.New("生成 Excel 文件失败")
)

// ReportService 报表业务接口
//
// 设计说明：
//   - 报表基于固定模板 attendance.xlsx，每次请求重新加载模板
//   - 汇总表按办公室优先级、姓名排序，优先级来自 report.office_ranks
//   - 办公室未配置优先级时整份报表失败（ErrUnknownOffice），不输出部分结果
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ReportService interface {
	// CreateAttendanceReport 生成某年某月的考勤报表
	CreateAttendanceReport(ctx context.Context, year, month int) (*bytes.Buffer, string, error)
}

type reportService struct {
	repo         *repository.Repository
	loader       attendance.TemplateLoader
	templateName string
	ranking      attendance.OfficeRanking
	logger       *zap.Logger
}

// NewReportService 创建 ReportService 实例
func NewReportService(
	repo *repository.Repository,
	loader attendance.TemplateLoader,
	templateName string,
	ranking map[string]int,
	logger *zap.Logger,
) ReportService {
	return &reportService{
		repo:         repo,
		loader:       loader,
		templateName: templateName,
		ranking:      ranking,
		logger:       logger,
	}
}

// ═══════════════════════════════════════════════════════════
// CreateAttendanceReport — 月度考勤报表
// ═══════════════════════════════════════════════════════════
//
// 输出格式见 internal/attendance/layout.go：
//   - Sheet[0] 每位员工一行：姓名 | 工时（向上取整） | 办公室 | 年份
//   - Sheet[1] 原始到访记录 + 办公室字典
//
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *reportService) CreateAttendanceReport(ctx context.Context, year, month int) (*bytes.Buffer, string, error) {
	if year <= 0 || month < 1 || month > 12 {
		return nil, "", ErrReportInvalidPeriod
	}

	// 1. 查询当月记录
	items, err := s.repo.Attendance.ListByMonth(ctx, year, month)
	if err != nil {
		s.logger.Error("查询到访记录失败", zap.Int("year", year), zap.Int("month", month), zap.Error(err))
		return nil, "", err
	}

	records, err := toRecords(items)
	if err != nil {
		s.logger.Error("到访记录缺少关联数据", zap.Error(err))
		return nil, "", err
	}

	// 2. 汇总工时并排序
	hours := attendance.AggregateHours(records)
	rows, err := attendance.ComposeSummaryRows(records, hours, year, s.ranking)
	if err != nil {
		s.logger.Error("办公室排序配置与主数据不一致", zap.Error(err))
		return nil, "", err
	}

	// 3. 填充模板
	f, err := attendance.Populate(s.loader, s.templateName, rows, records)
	if err != nil {
		s.logger.Error("填充报表模板失败", zap.String("template", s.templateName), zap.Error(err))
		return nil, "", err
	}
	defer f.Close()

	// 4. 写入 buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrReportGenerateFail
	}

	filename := fmt.Sprintf("attendance_%04d_%02d.xlsx", year, month)
	return buf, filename, nil
}

// toRecords 将持久化模型转换为报表引擎输入
func toRecords(items []model.Attendance) ([]attendance.Record, error) {
	records := make([]attendance.Record, 0, len(items))
	for _, item := range items {
		if item.Employee == nil || item.Office == nil {
			return nil, fmt.Errorf("到访记录 %d 未加载员工或办公室", item.AttendanceID)
		}
		records = append(records, attendance.Record{
			EmployeeID:       item.EmployeeID,
			EmployeeFullName: item.Employee.FullName,
			OfficeID:         item.OfficeID,
			OfficeName:       item.Office.Name,
			EntranceAt:       item.EntranceTime,
			ExitAt:           item.ExitTime,
		})
	}
	return records, nil
}
