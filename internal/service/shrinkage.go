package service

import (
	"fmt"
	"math"
	"time"

	"shrinkage-bot/internal/metrics"
	"shrinkage-bot/internal/models"
	"shrinkage-bot/internal/repository"
	"shrinkage-bot/pkg/workweek"

	"github.com/sirupsen/logrus"
)

// ShrinkageReport - результат расчета за период (не сохраняется в БД)
type ShrinkageReport struct {
	StartDate time.Time
	EndDate   time.Time

	// Per-record percentages, in input order.
	PerRecord []float64

	// Average/WithinGoal/RequiredDeletion are meaningful only when
	// HasSummary is true, i.e. at least one record existed for the period.
	HasSummary       bool
	Average          float64
	Goal             float64
	WithinGoal       bool
	RequiredDeletion int
}

// BuildReport computes the shrinkage report for a set of attendance records.
//
// The average is an unweighted mean of per-record percentages, not a
// volume-weighted ratio of totals. This is the legacy behavior and is kept
// intentionally.
//
// When the average exceeds the goal, RequiredDeletion is the minimum integer
// reduction in the aggregate shortfall that brings shrinkage back within
// goal: totalGap - floor(goal/100 * totalScheduled), clamped at 0. The
// allowed gap uses floor truncation, not rounding.
func BuildReport(records []models.AttendanceRecord, goal float64, startDate, endDate time.Time) *ShrinkageReport {
	report := &ShrinkageReport{
		StartDate: startDate,
		EndDate:   endDate,
		Goal:      goal,
		PerRecord: make([]float64, 0, len(records)),
	}

	// Пустой период - не ошибка, просто нет сводки
	if len(records) == 0 {
		return report
	}

	var sum float64
	totalScheduled := 0
	totalActual := 0

	for i := range records {
		percent := records[i].Shrinkage()
		report.PerRecord = append(report.PerRecord, percent)
		sum += percent
		totalScheduled += records[i].Scheduled
		totalActual += records[i].Actual
	}

	report.HasSummary = true
	report.Average = sum / float64(len(records))

	// Сравнение с целью - на полной точности, округление только при выводе
	report.WithinGoal = report.Average <= goal
	if report.WithinGoal {
		return report
	}

	totalGap := totalScheduled - totalActual
	allowedGap := int(math.Floor(goal / 100 * float64(totalScheduled)))

	required := totalGap - allowedGap
	if required < 0 {
		required = 0
	}
	report.RequiredDeletion = required

	return report
}

type ShrinkageService struct {
	attendanceRepo repository.AttendanceRepository
	defaultGoal    float64
	logger         *logrus.Logger
}

func NewShrinkageService(attendanceRepo repository.AttendanceRepository, defaultGoal float64) *ShrinkageService {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &ShrinkageService{
		attendanceRepo: attendanceRepo,
		defaultGoal:    defaultGoal,
		logger:         logger,
	}
}

// DefaultGoal возвращает цель из конфига
func (s *ShrinkageService) DefaultGoal() float64 {
	return s.defaultGoal
}

// DailyReport строит отчет за один день
func (s *ShrinkageService) DailyReport(date time.Time, goal float64) (*ShrinkageReport, error) {
	if err := validateGoal(goal); err != nil {
		return nil, err
	}

	day := workweek.Normalize(date)
	return s.buildForPeriod(day, day, goal, "daily")
}

// WeeklyReport строит отчет за неделю Пн..Вс, содержащую refDate
func (s *ShrinkageService) WeeklyReport(refDate time.Time, goal float64) (*ShrinkageReport, error) {
	if err := validateGoal(goal); err != nil {
		return nil, err
	}

	startDate, endDate := workweek.WeekRange(refDate)
	return s.buildForPeriod(startDate, endDate, goal, "weekly")
}

func (s *ShrinkageService) buildForPeriod(startDate, endDate time.Time, goal float64, mode string) (*ShrinkageReport, error) {
	records, err := s.attendanceRepo.GetByDateRange(startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance records: %v", err)
	}

	report := BuildReport(records, goal, startDate, endDate)

	metrics.ReportsGeneratedTotal.WithLabelValues(mode).Inc()
	if report.HasSummary {
		metrics.LastAverageShrinkage.Set(report.Average)
	}

	s.logger.WithFields(logrus.Fields{
		"mode":        mode,
		"start_date":  startDate.Format("2006-01-02"),
		"end_date":    endDate.Format("2006-01-02"),
		"records":     len(records),
		"goal":        goal,
		"has_summary": report.HasSummary,
	}).Info("Shrinkage report generated")

	return report, nil
}

// validateGoal - цель ограничена на границе, калькулятор ее не проверяет
func validateGoal(goal float64) error {
	if goal < 0 || goal > 100 {
		return fmt.Errorf("goal must be in [0,100], got %.2f", goal)
	}
	return nil
}
