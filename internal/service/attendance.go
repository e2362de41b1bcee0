package service

import (
	"fmt"
	"time"

	"shrinkage-bot/internal/metrics"
	"shrinkage-bot/internal/models"
	"shrinkage-bot/internal/repository"
	"shrinkage-bot/pkg/workweek"

	"github.com/sirupsen/logrus"
)

type AttendanceService struct {
	attendanceRepo repository.AttendanceRepository
	logger         *logrus.Logger
}

func NewAttendanceService(attendanceRepo repository.AttendanceRepository) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		logger:         logrus.New(),
	}
}

// Record добавляет запись посещаемости (append-only, записи неизменяемы)
func (s *AttendanceService) Record(agentID string, date time.Time, scheduled, actual int, isWeekoff bool) (*models.AttendanceRecord, error) {
	if agentID == "" {
		return nil, fmt.Errorf("agent id must not be empty")
	}
	if scheduled < 0 || actual < 0 {
		return nil, fmt.Errorf("scheduled and actual counts must be non-negative")
	}

	record := &models.AttendanceRecord{
		AgentID:   agentID,
		Date:      workweek.Normalize(date),
		Scheduled: scheduled,
		Actual:    actual,
		IsWeekoff: isWeekoff,
	}

	if err := s.attendanceRepo.Create(record); err != nil {
		return nil, fmt.Errorf("failed to create attendance record: %v", err)
	}

	metrics.AttendanceRecordsTotal.Inc()

	s.logger.Infof("Recorded attendance for agent %s on %s", agentID, record.Date.Format("2006-01-02"))
	return record, nil
}

// WeekView возвращает записи за неделю Пн..Вс, содержащую refDate
func (s *AttendanceService) WeekView(refDate time.Time) ([]models.AttendanceRecord, time.Time, time.Time, error) {
	startDate, endDate := workweek.WeekRange(refDate)

	records, err := s.attendanceRepo.GetByDateRange(startDate, endDate)
	if err != nil {
		return nil, startDate, endDate, fmt.Errorf("failed to load attendance records: %v", err)
	}

	return records, startDate, endDate, nil
}
