// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/life-manager/backend/internal/domain/entity"
)

// FocusTaskModel represents the focus_tasks table in the database.
type FocusTaskModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title            string     `gorm:"type:varchar(200);not null"`
	Status           string     `gorm:"type:varchar(20);not null;default:'inbox';index"`
	Area             string     `gorm:"type:varchar(20);not null"`
	Priority         string     `gorm:"type:varchar(10);not null"`
	EnergyType       string     `gorm:"type:varchar(10);not null"`
	PomodoroEstimate int        `gorm:"not null;default:1"`
	ScheduledDate    *time.Time `gorm:"type:date;index"`
	ScheduledTime    *string    `gorm:"type:varchar(8)"`
	CreatedAt        time.Time  `gorm:"not null"`
	UpdatedAt        time.Time  `gorm:"not null"`
}

// TableName returns the table name for the FocusTaskModel.
func (FocusTaskModel) TableName() string {
	return "focus_tasks"
}

// ToEntity converts a FocusTaskModel to a domain FocusTask entity.
func (m *FocusTaskModel) ToEntity() *entity.FocusTask {
	var date *time.Time
	if m.ScheduledDate != nil {
		d := m.ScheduledDate.UTC()
		date = &d
	}
	return &entity.FocusTask{
		ID:               m.ID,
		UserID:           m.UserID,
		Title:            m.Title,
		Status:           entity.TaskStatus(m.Status),
		Area:             entity.TaskArea(m.Area),
		Priority:         entity.TaskPriority(m.Priority),
		EnergyType:       entity.EnergyType(m.EnergyType),
		PomodoroEstimate: m.PomodoroEstimate,
		ScheduledDate:    date,
		ScheduledTime:    m.ScheduledTime,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// FocusTaskFromEntity creates a FocusTaskModel from a domain FocusTask entity.
func FocusTaskFromEntity(t *entity.FocusTask) *FocusTaskModel {
	return &FocusTaskModel{
		ID:               t.ID,
		UserID:           t.UserID,
		Title:            t.Title,
		Status:           string(t.Status),
		Area:             string(t.Area),
		Priority:         string(t.Priority),
		EnergyType:       string(t.EnergyType),
		PomodoroEstimate: t.PomodoroEstimate,
		ScheduledDate:    t.ScheduledDate,
		ScheduledTime:    t.ScheduledTime,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}
