// internal/models/leave_record.go
package models

import "time"

type LeaveRecord struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	AgentID    string    `gorm:"type:varchar(64);not null;index" json:"agent_id"`
	Date       time.Time `gorm:"type:date;not null;index" json:"date"`
	LeaveType  string    `gorm:"type:varchar(8);not null" json:"leave_type"`
	Annotation string    `json:"annotation"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (LeaveRecord) TableName() string {
	return "leave_records"
}

const (
	LeaveTypeAL = "AL" // annual leave
	LeaveTypeSL = "SL" // sick leave
	LeaveTypeCL = "CL" // casual leave
)

// IsValidLeaveType проверяет тип отпуска
func IsValidLeaveType(leaveType string) bool {
	return leaveType == LeaveTypeAL || leaveType == LeaveTypeSL || leaveType == LeaveTypeCL
}

func (l *LeaveRecord) IsValid() bool {
	if l.AgentID == "" {
		return false
	}
	if l.Date.IsZero() {
		return false
	}
	if !IsValidLeaveType(l.LeaveType) {
		return false
	}
	return true
}
