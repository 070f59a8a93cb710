package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/bardiniww/lanit.hrjedi/internal/dto"
	"github.com/bardiniww/lanit.hrjedi/internal/service"
	"github.com/bardiniww/lanit.hrjedi/pkg/response"
)

// AttendanceHandler 考勤模块 HTTP 处理器
type AttendanceHandler struct {
	attendanceSvc service.AttendanceService
}

// NewAttendanceHandler 创建 AttendanceHandler
func NewAttendanceHandler(attendanceSvc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceSvc: attendanceSvc}
}

// GetMissingMonths 查询某年没有任何到访记录的已结束月份
// GET /api/v1/attendance/missing-months?year=2020
func (h *AttendanceHandler) GetMissingMonths(c *gin.Context) {
	var req dto.MissingMonthsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "year 参数无效")
		return
	}

	months, err := h.attendanceSvc.FindMissingMonths(c.Request.Context(), req.Year)
	if err != nil {
		response.InternalError(c)
		return
	}

	result := make([]dto.MonthResponse, 0, len(months))
	for _, m := range months {
		result = append(result, dto.MonthResponse{
			Year:  m.Year,
			Month: int(m.Month),
			Label: m.String(),
		})
	}
	response.OK(c, result)
}
