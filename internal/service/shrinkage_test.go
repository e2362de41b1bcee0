package service_test

import (
	"testing"
	"time"

	"shrinkage-bot/internal/models"
	"shrinkage-bot/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

func day(dayOfMonth int) time.Time {
	return time.Date(2026, 3, dayOfMonth, 0, 0, 0, 0, time.Local)
}

func TestBuildReport(t *testing.T) {
	tests := map[string]struct {
		records         []models.AttendanceRecord
		goal            float64
		wantPerRecord   []float64
		wantHasSummary  bool
		wantAverage     float64
		wantWithinGoal  bool
		wantRequiredDel int
	}{
		"EmptyPeriod": {
			records:        nil,
			goal:           10.0,
			wantPerRecord:  []float64{},
			wantHasSummary: false,
		},
		"ExactlyAtGoal": {
			// 10% shrinkage against a 10% goal is still within goal
			records: []models.AttendanceRecord{
				{AgentID: "CSA1", Date: day(2), Scheduled: 100, Actual: 90},
			},
			goal:            10.0,
			wantPerRecord:   []float64{10.0},
			wantHasSummary:  true,
			wantAverage:     10.0,
			wantWithinGoal:  true,
			wantRequiredDel: 0,
		},
		"OverGoal": {
			records: []models.AttendanceRecord{
				{AgentID: "CSA1", Date: day(2), Scheduled: 100, Actual: 80},
			},
			goal:            10.0,
			wantPerRecord:   []float64{20.0},
			wantHasSummary:  true,
			wantAverage:     20.0,
			wantWithinGoal:  false,
			wantRequiredDel: 10, // gap 20, allowed floor(0.10*100)=10
		},
		"ZeroScheduledFloor": {
			records: []models.AttendanceRecord{
				{AgentID: "CSA1", Date: day(2), Scheduled: 0, Actual: 0},
				{AgentID: "CSA2", Date: day(2), Scheduled: 50, Actual: 40},
			},
			goal:            15.0,
			wantPerRecord:   []float64{0, 20.0},
			wantHasSummary:  true,
			wantAverage:     10.0,
			wantWithinGoal:  true,
			wantRequiredDel: 0,
		},
		"DuplicateAgentDay": {
			// duplicates for the same agent/day each count independently
			records: []models.AttendanceRecord{
				{AgentID: "CSA1", Date: day(2), Scheduled: 50, Actual: 45},
				{AgentID: "CSA1", Date: day(2), Scheduled: 50, Actual: 30},
			},
			goal:            5.0,
			wantPerRecord:   []float64{10.0, 40.0},
			wantHasSummary:  true,
			wantAverage:     25.0,
			wantWithinGoal:  false,
			wantRequiredDel: 20, // gap 25, allowed floor(0.05*100)=5
		},
		"OverAttendanceNegativeAverage": {
			records: []models.AttendanceRecord{
				{AgentID: "CSA1", Date: day(2), Scheduled: 100, Actual: 110},
			},
			goal:            10.0,
			wantPerRecord:   []float64{-10.0},
			wantHasSummary:  true,
			wantAverage:     -10.0,
			wantWithinGoal:  true,
			wantRequiredDel: 0,
		},
		"ClampNegativeDeletion": {
			// Unweighted average is over goal while the aggregate gap is
			// already below the allowed one: the deletion count clamps to 0.
			records: []models.AttendanceRecord{
				{AgentID: "CSA1", Date: day(2), Scheduled: 1, Actual: 0},
				{AgentID: "CSA2", Date: day(2), Scheduled: 1000, Actual: 1000},
			},
			goal:            40.0,
			wantPerRecord:   []float64{100.0, 0},
			wantHasSummary:  true,
			wantAverage:     50.0,
			wantWithinGoal:  false,
			wantRequiredDel: 0, // gap 1, allowed floor(0.40*1001)=400
		},
		"FloorTruncationOnAllowedGap": {
			// allowed = floor(0.07*90) = floor(6.3) = 6, not 6.3 rounded
			records: []models.AttendanceRecord{
				{AgentID: "CSA1", Date: day(2), Scheduled: 90, Actual: 70},
			},
			goal:            7.0,
			wantPerRecord:   []float64{200.0 / 9.0},
			wantHasSummary:  true,
			wantAverage:     200.0 / 9.0,
			wantWithinGoal:  false,
			wantRequiredDel: 14, // gap 20, allowed 6
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			report := service.BuildReport(tc.records, tc.goal, day(2), day(8))

			require.NotNil(t, report)
			assert.Equal(t, day(2), report.StartDate)
			assert.Equal(t, day(8), report.EndDate)
			assert.InDelta(t, tc.goal, report.Goal, delta)
			assert.Equal(t, tc.wantHasSummary, report.HasSummary)

			require.Len(t, report.PerRecord, len(tc.wantPerRecord))
			for i := range tc.wantPerRecord {
				assert.InDelta(t, tc.wantPerRecord[i], report.PerRecord[i], delta, "per-record %d", i)
			}

			if !tc.wantHasSummary {
				assert.Zero(t, report.Average)
				assert.Zero(t, report.RequiredDeletion)
				return
			}

			assert.InDelta(t, tc.wantAverage, report.Average, delta)
			assert.Equal(t, tc.wantWithinGoal, report.WithinGoal)
			assert.Equal(t, tc.wantRequiredDel, report.RequiredDeletion)
		})
	}
}

func TestBuildReportOrderInvariance(t *testing.T) {
	records := []models.AttendanceRecord{
		{AgentID: "CSA1", Date: day(2), Scheduled: 100, Actual: 80},
		{AgentID: "CSA2", Date: day(3), Scheduled: 0, Actual: 0},
		{AgentID: "CSA3", Date: day(4), Scheduled: 50, Actual: 45},
		{AgentID: "CSA4", Date: day(5), Scheduled: 75, Actual: 30},
	}

	reversed := make([]models.AttendanceRecord, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		reversed = append(reversed, records[i])
	}

	forward := service.BuildReport(records, 5.0, day(2), day(8))
	backward := service.BuildReport(reversed, 5.0, day(2), day(8))

	assert.InDelta(t, forward.Average, backward.Average, delta)
	assert.Equal(t, forward.WithinGoal, backward.WithinGoal)
	assert.Equal(t, forward.RequiredDeletion, backward.RequiredDeletion)
}

// stubAttendanceRepo captures the queried range and returns canned records.
type stubAttendanceRepo struct {
	records   []models.AttendanceRecord
	lastStart time.Time
	lastEnd   time.Time
}

func (s *stubAttendanceRepo) Create(record *models.AttendanceRecord) error {
	s.records = append(s.records, *record)
	return nil
}

func (s *stubAttendanceRepo) GetByDateRange(startDate, endDate time.Time) ([]models.AttendanceRecord, error) {
	s.lastStart = startDate
	s.lastEnd = endDate
	return s.records, nil
}

func TestShrinkageServiceGoalValidation(t *testing.T) {
	svc := service.NewShrinkageService(&stubAttendanceRepo{}, 5.0)

	_, err := svc.DailyReport(day(2), -0.1)
	assert.Error(t, err)

	_, err = svc.WeeklyReport(day(2), 100.5)
	assert.Error(t, err)

	_, err = svc.DailyReport(day(2), 0)
	assert.NoError(t, err)

	_, err = svc.WeeklyReport(day(2), 100)
	assert.NoError(t, err)
}

func TestShrinkageServicePeriods(t *testing.T) {
	repo := &stubAttendanceRepo{}
	svc := service.NewShrinkageService(repo, 5.0)

	// 2026-03-04 is a Wednesday; its week is Mon 2026-03-02 .. Sun 2026-03-08
	report, err := svc.WeeklyReport(day(4), 5.0)
	require.NoError(t, err)
	assert.Equal(t, day(2), repo.lastStart)
	assert.Equal(t, day(8), repo.lastEnd)
	assert.Equal(t, day(2), report.StartDate)
	assert.Equal(t, day(8), report.EndDate)

	report, err = svc.DailyReport(day(4), 5.0)
	require.NoError(t, err)
	assert.Equal(t, day(4), repo.lastStart)
	assert.Equal(t, day(4), repo.lastEnd)
	assert.False(t, report.HasSummary)
}
