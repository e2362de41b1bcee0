// internal/repository/leave_repo.go
package repository

import (
	"errors"
	"time"

	"shrinkage-bot/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type LeaveRepository interface {
	Create(record *models.LeaveRecord) error
	GetByDateRange(startDate, endDate time.Time) ([]models.LeaveRecord, error)
}

type GormLeaveRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormLeaveRepository(db *gorm.DB) (LeaveRepository, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if err := db.AutoMigrate(&models.LeaveRecord{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate leave_records table")
		return nil, err
	}

	logger.Info("Leave repository initialized")

	return &GormLeaveRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *GormLeaveRepository) Create(record *models.LeaveRecord) error {
	if !record.IsValid() {
		r.logger.WithFields(logrus.Fields{
			"agent_id": record.AgentID,
			"date":     record.Date.Format("2006-01-02"),
		}).Warn("Invalid leave record data")
		return errors.New("invalid leave record data")
	}

	result := r.db.Create(record)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to create leave record")
		return result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"id":         record.ID,
		"agent_id":   record.AgentID,
		"leave_type": record.LeaveType,
	}).Info("Leave record created successfully")

	return nil
}

func (r *GormLeaveRepository) GetByDateRange(startDate, endDate time.Time) ([]models.LeaveRecord, error) {
	var records []models.LeaveRecord

	// Та же полуоткрытая правая граница, что и в attendance-репозитории
	result := r.db.Where("date >= ? AND date < ?",
		startDate, endDate.AddDate(0, 0, 1)).
		Order("date ASC").
		Find(&records)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get leave records by date range")
		return nil, result.Error
	}

	return records, nil
}
