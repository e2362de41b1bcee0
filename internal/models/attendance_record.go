package models

import (
	"time"
)

type AttendanceRecord struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	AgentID   string    `gorm:"type:varchar(64);not null;index" json:"agent_id"`
	Date      time.Time `gorm:"type:date;not null;index" json:"date"`
	Scheduled int       `gorm:"not null;default:0" json:"scheduled"`
	Actual    int       `gorm:"not null;default:0" json:"actual"`
	IsWeekoff bool      `gorm:"not null;default:false" json:"is_weekoff"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}

// Shrinkage returns the percentage shortfall of actual against scheduled.
// A record with scheduled == 0 contributes 0, never a division error.
// The value is not clamped: over-attendance yields a negative percentage.
func (r *AttendanceRecord) Shrinkage() float64 {
	if r.Scheduled == 0 {
		return 0
	}
	return float64(r.Scheduled-r.Actual) / float64(r.Scheduled) * 100
}

// IsValid проверяет валидность данных
func (r *AttendanceRecord) IsValid() bool {
	if r.AgentID == "" {
		return false
	}
	if r.Date.IsZero() {
		return false
	}
	if r.Scheduled < 0 {
		return false
	}
	if r.Actual < 0 {
		return false
	}
	return true
}
