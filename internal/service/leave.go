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

type LeaveService struct {
	leaveRepo repository.LeaveRepository
	logger    *logrus.Logger
}

func NewLeaveService(leaveRepo repository.LeaveRepository) *LeaveService {
	return &LeaveService{
		leaveRepo: leaveRepo,
		logger:    logrus.New(),
	}
}

// Record добавляет запись отпуска. Таблица независима от посещаемости:
// калькулятор шринкеджа эти записи не читает.
func (s *LeaveService) Record(agentID string, date time.Time, leaveType, annotation string) (*models.LeaveRecord, error) {
	if agentID == "" {
		return nil, fmt.Errorf("agent id must not be empty")
	}
	if !models.IsValidLeaveType(leaveType) {
		return nil, fmt.Errorf("unknown leave type %q, expected AL, SL or CL", leaveType)
	}

	record := &models.LeaveRecord{
		AgentID:    agentID,
		Date:       workweek.Normalize(date),
		LeaveType:  leaveType,
		Annotation: annotation,
	}

	if err := s.leaveRepo.Create(record); err != nil {
		return nil, fmt.Errorf("failed to create leave record: %v", err)
	}

	metrics.LeaveRecordsTotal.Inc()

	s.logger.Infof("Recorded %s leave for agent %s on %s", leaveType, agentID, record.Date.Format("2006-01-02"))
	return record, nil
}

// WeekView возвращает записи отпусков за неделю Пн..Вс
func (s *LeaveService) WeekView(refDate time.Time) ([]models.LeaveRecord, time.Time, time.Time, error) {
	startDate, endDate := workweek.WeekRange(refDate)

	records, err := s.leaveRepo.GetByDateRange(startDate, endDate)
	if err != nil {
		return nil, startDate, endDate, fmt.Errorf("failed to load leave records: %v", err)
	}

	return records, startDate, endDate, nil
}
