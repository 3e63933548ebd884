package model

import (
	"time"

	"github.com/finance-tracker/client/internal/domain/entity"
)

// PlatformModel represents the platforms table in the database.
type PlatformModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Name         string    `gorm:"type:varchar(100);not null;index"`
	PlatformType string    `gorm:"type:varchar(20);not null"`
	LogoURL      string    `gorm:"type:varchar(500)"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the PlatformModel.
func (PlatformModel) TableName() string {
	return "platforms"
}

// ToEntity converts a PlatformModel to a domain Platform entity.
func (m *PlatformModel) ToEntity() *entity.Platform {
	return &entity.Platform{
		ID:      m.ID,
		Name:    m.Name,
		Type:    entity.PlatformType(m.PlatformType),
		LogoURL: m.LogoURL,
		Active:  m.IsActive,
	}
}

// PlatformFromEntity creates a PlatformModel from a domain Platform entity.
func PlatformFromEntity(platform *entity.Platform) *PlatformModel {
	return &PlatformModel{
		ID:           platform.ID,
		Name:         platform.Name,
		PlatformType: string(platform.Type),
		LogoURL:      platform.LogoURL,
		IsActive:     platform.Active,
	}
}
