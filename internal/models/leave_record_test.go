package models_test

import (
	"testing"
	"time"

	"shrinkage-bot/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestIsValidLeaveType(t *testing.T) {
	assert.True(t, models.IsValidLeaveType(models.LeaveTypeAL))
	assert.True(t, models.IsValidLeaveType(models.LeaveTypeSL))
	assert.True(t, models.IsValidLeaveType(models.LeaveTypeCL))

	assert.False(t, models.IsValidLeaveType("al"))
	assert.False(t, models.IsValidLeaveType("PL"))
	assert.False(t, models.IsValidLeaveType(""))
}

func TestLeaveRecordIsValid(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)

	valid := models.LeaveRecord{AgentID: "CSA1", Date: date, LeaveType: models.LeaveTypeSL}
	assert.True(t, valid.IsValid())

	// annotation is optional free text
	annotated := valid
	annotated.Annotation = "doctor visit"
	assert.True(t, annotated.IsValid())

	noAgent := valid
	noAgent.AgentID = ""
	assert.False(t, noAgent.IsValid())

	noDate := valid
	noDate.Date = time.Time{}
	assert.False(t, noDate.IsValid())

	badType := valid
	badType.LeaveType = "vacation"
	assert.False(t, badType.IsValid())
}
