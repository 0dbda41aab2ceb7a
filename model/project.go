package model

type Project struct {
	ID     int64  `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"type:varchar(256);not null" json:"name" binding:"required"`
	Status string `gorm:"type:varchar(64);not null" json:"status" binding:"required"`
}

func (Project) TableName() string { return "projects" }
