package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"shrinkage-bot/internal/models"
	"shrinkage-bot/pkg/workweek"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const addAttendanceUsage = "Usage: /addattendance <csa_id> <yyyy-mm-dd> <scheduled> <actual> [weekoff]"

// parseAttendanceArgs разбирает аргументы команды /addattendance
func parseAttendanceArgs(args string) (string, time.Time, int, int, bool, error) {
	fields := strings.Fields(args)
	if len(fields) < 4 || len(fields) > 5 {
		return "", time.Time{}, 0, 0, false, fmt.Errorf("expected 4 or 5 arguments, got %d", len(fields))
	}

	agentID := fields[0]

	date, err := workweek.ParseDate(fields[1])
	if err != nil {
		return "", time.Time{}, 0, 0, false, err
	}

	scheduled, err := strconv.Atoi(fields[2])
	if err != nil || scheduled < 0 {
		return "", time.Time{}, 0, 0, false, fmt.Errorf("scheduled must be a non-negative integer, got %q", fields[2])
	}

	actual, err := strconv.Atoi(fields[3])
	if err != nil || actual < 0 {
		return "", time.Time{}, 0, 0, false, fmt.Errorf("actual must be a non-negative integer, got %q", fields[3])
	}

	isWeekoff := false
	if len(fields) == 5 {
		if !strings.EqualFold(fields[4], "weekoff") {
			return "", time.Time{}, 0, 0, false, fmt.Errorf("unexpected argument %q, only \"weekoff\" is allowed", fields[4])
		}
		isWeekoff = true
	}

	return agentID, date, scheduled, actual, isWeekoff, nil
}

func (h *Handler) addAttendance(message *tgbotapi.Message, args string) {
	agentID, date, scheduled, actual, isWeekoff, err := parseAttendanceArgs(args)
	if err != nil {
		h.reply(message.Chat.ID, fmt.Sprintf("❌ %v\n%s", err, addAttendanceUsage))
		return
	}

	record, err := h.attendanceService.Record(agentID, date, scheduled, actual, isWeekoff)
	if err != nil {
		h.reply(message.Chat.ID, fmt.Sprintf("❌ Failed to record attendance: %v", err))
		return
	}

	weekoffMark := ""
	if record.IsWeekoff {
		weekoffMark = " (weekoff)"
	}
	h.reply(message.Chat.ID, fmt.Sprintf(
		"✅ Attendance recorded for %s on %s: scheduled %d, actual %d%s",
		record.AgentID, workweek.FormatDate(record.Date), record.Scheduled, record.Actual, weekoffMark))
}

func (h *Handler) weekAttendance(message *tgbotapi.Message, args string) {
	refDate, err := parseOptionalDate(args)
	if err != nil {
		h.reply(message.Chat.ID, fmt.Sprintf("❌ %v\nUsage: /weekattendance [yyyy-mm-dd]", err))
		return
	}

	records, startDate, endDate, err := h.attendanceService.WeekView(refDate)
	if err != nil {
		h.reply(message.Chat.ID, fmt.Sprintf("❌ Failed to load attendance: %v", err))
		return
	}

	h.reply(message.Chat.ID, formatAttendanceWeek(records, startDate, endDate))
}

func formatAttendanceWeek(records []models.AttendanceRecord, startDate, endDate time.Time) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📋 Attendance %s — %s\n\n",
		workweek.FormatDate(startDate), workweek.FormatDate(endDate))

	if len(records) == 0 {
		sb.WriteString("No attendance records for this week.")
		return sb.String()
	}

	for i := range records {
		r := &records[i]
		fmt.Fprintf(&sb, "%s | %s | scheduled %d | actual %d",
			workweek.FormatDate(r.Date), r.AgentID, r.Scheduled, r.Actual)
		if r.IsWeekoff {
			sb.WriteString(" | weekoff")
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "\nTotal records: %d", len(records))
	return sb.String()
}

// parseOptionalDate - пустой аргумент означает сегодня
func parseOptionalDate(args string) (time.Time, error) {
	trimmed := strings.TrimSpace(args)
	if trimmed == "" {
		return time.Now(), nil
	}
	return workweek.ParseDate(trimmed)
}
