package model

// 员工角色
const (
	RoleEmployee = "employee"
	RoleHR       = "hr"
	RoleAdmin    = "admin"
)

// Employee 员工表 — 对应 employees
type Employee struct {
	EmployeeID   int64  `gorm:"primaryKey;autoIncrement"                     json:"employee_id"`
	Login        string `gorm:"type:varchar(64);not null;uniqueIndex"        json:"login"`
	FullName     string `gorm:"type:varchar(255);not null"                   json:"full_name"`
	Email        string `gorm:"type:varchar(255)"                            json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                   json:"-"`
	Role         string `gorm:"type:varchar(20);not null;default:'employee'" json:"role"`
	BaseModel
}

// TableName 指定表名
func (Employee) TableName() string { return "employees" }
