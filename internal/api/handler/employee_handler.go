package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/bardiniww/lanit.hrjedi/internal/dto"
	"github.com/bardiniww/lanit.hrjedi/internal/service"
	"github.com/bardiniww/lanit.hrjedi/pkg/response"
)

// EmployeeHandler 员工模块 HTTP 处理器
type EmployeeHandler struct {
	employeeSvc service.EmployeeService
}

// NewEmployeeHandler 创建 EmployeeHandler
func NewEmployeeHandler(employeeSvc service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeSvc: employeeSvc}
}

// GetCurrentEmployee 当前员工信息
// GET /api/v1/employees/me
func (h *EmployeeHandler) GetCurrentEmployee(c *gin.Context) {
	id, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	result, err := h.employeeSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.OK(c, result)
}

// UpdateEmail 修改当前员工邮箱
// PUT /api/v1/employees/me/email
func (h *EmployeeHandler) UpdateEmail(c *gin.Context) {
	id, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	var req dto.UpdateEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.employeeSvc.UpdateEmail(c.Request.Context(), id, req.Email)
	if err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *EmployeeHandler) handleEmployeeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, 12001, "员工不存在")
	case errors.Is(err, service.ErrInvalidEmail):
		response.BadRequest(c, 12002, "邮箱格式无效")
	default:
		response.InternalError(c)
	}
}
