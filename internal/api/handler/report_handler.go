package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bardiniww/lanit.hrjedi/internal/attendance"
	"github.com/bardiniww/lanit.hrjedi/internal/dto"
	"github.com/bardiniww/lanit.hrjedi/internal/service"
	"github.com/bardiniww/lanit.hrjedi/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler 报表模块 HTTP 处理器
type ReportHandler struct {
	reportSvc service.ReportService
}

// NewReportHandler 创建 ReportHandler
func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// ExportAttendance 导出月度考勤报表
// GET /api/v1/reports/attendance?year=2020&month=11
func (h *ReportHandler) ExportAttendance(c *gin.Context) {
	var req dto.AttendanceReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "year 或 month 参数无效")
		return
	}

	buf, filename, err := h.reportSvc.CreateAttendanceReport(c.Request.Context(), req.Year, req.Month)
	if err != nil {
		h.handleReportError(c, err)
		return
	}

	response.Attachment(c, filename, xlsxContentType, buf.Bytes())
}

func (h *ReportHandler) handleReportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrReportInvalidPeriod):
		response.BadRequest(c, 14001, "year 或 month 参数无效")
	case errors.Is(err, attendance.ErrUnknownOffice):
		// 办公室主数据与排序配置不一致，属于服务端配置错误
		var unknown *attendance.UnknownOfficeError
		details := ""
		if errors.As(err, &unknown) {
			details = unknown.Office
		}
		response.ErrorWithDetails(c, http.StatusInternalServerError, 14002, "办公室未配置排序优先级", details)
	case errors.Is(err, attendance.ErrTemplate):
		response.Error(c, http.StatusInternalServerError, 14003, "报表模板不可用")
	default:
		response.InternalError(c)
	}
}
