package dto

// ── 考勤模块 DTO ──

// MissingMonthsRequest 缺失月份查询参数
type MissingMonthsRequest struct {
	Year int `form:"year" binding:"required,min=1970,max=9999"`
}

// AttendanceReportRequest 月度考勤报表导出参数
type AttendanceReportRequest struct {
	Year  int `form:"year"  binding:"required,min=1970,max=9999"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}
