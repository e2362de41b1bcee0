// internal/repository/attendance_repo.go
package repository

import (
	"errors"
	"time"

	"shrinkage-bot/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AttendanceRepository interface {
	Create(record *models.AttendanceRecord) error
	GetByDateRange(startDate, endDate time.Time) ([]models.AttendanceRecord, error)
}

type GormAttendanceRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormAttendanceRepository(db *gorm.DB) (AttendanceRepository, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	// Автомиграция
	if err := db.AutoMigrate(&models.AttendanceRecord{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate attendance_records table")
		return nil, err
	}

	logger.Info("Attendance repository initialized")

	return &GormAttendanceRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *GormAttendanceRepository) Create(record *models.AttendanceRecord) error {
	r.logger.WithFields(logrus.Fields{
		"agent_id": record.AgentID,
		"date":     record.Date.Format("2006-01-02"),
	}).Info("Creating attendance record")

	if !record.IsValid() {
		r.logger.WithFields(logrus.Fields{
			"agent_id": record.AgentID,
			"date":     record.Date.Format("2006-01-02"),
		}).Warn("Invalid attendance record data")
		return errors.New("invalid attendance record data")
	}

	// Append-only: записи за один день для одного агента допускаются
	result := r.db.Create(record)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to create attendance record")
		return result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"id":        record.ID,
		"agent_id":  record.AgentID,
		"scheduled": record.Scheduled,
		"actual":    record.Actual,
	}).Info("Attendance record created successfully")

	return nil
}

func (r *GormAttendanceRepository) GetByDateRange(startDate, endDate time.Time) ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord

	// Обе границы включительно. Даты хранятся как полные timestamp-ы,
	// поэтому правая граница - полуоткрытая на следующий день, а значения
	// передаются как time.Time (формат хранения и формат сравнения совпадают).
	result := r.db.Where("date >= ? AND date < ?",
		startDate, endDate.AddDate(0, 0, 1)).
		Order("date ASC").
		Find(&records)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get attendance records by date range")
		return nil, result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"start_date": startDate.Format("2006-01-02"),
		"end_date":   endDate.Format("2006-01-02"),
		"count":      len(records),
	}).Debug("Retrieved attendance records by date range")

	return records, nil
}
