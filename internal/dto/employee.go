package dto

// ── 员工模块 DTO ──

// UpdateEmailRequest 修改邮箱请求
// 格式校验在 Service 层完成（允许任意文字的字母）
type UpdateEmailRequest struct {
	Email string `json:"email" binding:"max=254"`
}
