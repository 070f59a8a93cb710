package model

// Office 办公室表 — 对应 offices
type Office struct {
	OfficeID int64  `gorm:"primaryKey;autoIncrement"            json:"office_id"`
	Name     string `gorm:"type:varchar(100);not null;unique"   json:"name"`
	Address  string `gorm:"type:varchar(255)"                   json:"address,omitempty"`
	BaseModel
}

// TableName 指定表名
func (Office) TableName() string { return "offices" }
