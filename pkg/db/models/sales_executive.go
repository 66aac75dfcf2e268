package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SalesExecutive is a staff member whose orders feed the performance report.
type SalesExecutive struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	Name      string          `gorm:"column:name;not null"`
	ManagerID *uuid.UUID      `gorm:"column:manager_id;type:uuid"`
	Manager   *SalesExecutive `gorm:"foreignKey:ManagerID"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (SalesExecutive) TableName() string {
	return "sales_executives"
}

func (s *SalesExecutive) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
