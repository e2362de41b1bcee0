package handler

import (
	"fmt"
	"strings"
	"time"

	"shrinkage-bot/internal/models"
	"shrinkage-bot/pkg/workweek"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const addLeaveUsage = "Usage: /addleave <csa_id> <yyyy-mm-dd> <AL|SL|CL> [annotation]"

// parseLeaveArgs разбирает аргументы команды /addleave
func parseLeaveArgs(args string) (string, time.Time, string, string, error) {
	fields := strings.Fields(args)
	if len(fields) < 3 {
		return "", time.Time{}, "", "", fmt.Errorf("expected at least 3 arguments, got %d", len(fields))
	}

	agentID := fields[0]

	date, err := workweek.ParseDate(fields[1])
	if err != nil {
		return "", time.Time{}, "", "", err
	}

	leaveType := strings.ToUpper(fields[2])
	if !models.IsValidLeaveType(leaveType) {
		return "", time.Time{}, "", "", fmt.Errorf("unknown leave type %q, expected AL, SL or CL", fields[2])
	}

	annotation := strings.Join(fields[3:], " ")

	return agentID, date, leaveType, annotation, nil
}

func (h *Handler) addLeave(message *tgbotapi.Message, args string) {
	agentID, date, leaveType, annotation, err := parseLeaveArgs(args)
	if err != nil {
		h.reply(message.Chat.ID, fmt.Sprintf("❌ %v\n%s", err, addLeaveUsage))
		return
	}

	record, err := h.leaveService.Record(agentID, date, leaveType, annotation)
	if err != nil {
		h.reply(message.Chat.ID, fmt.Sprintf("❌ Failed to record leave: %v", err))
		return
	}

	h.reply(message.Chat.ID, fmt.Sprintf(
		"✅ %s leave recorded for %s on %s",
		record.LeaveType, record.AgentID, workweek.FormatDate(record.Date)))
}

func (h *Handler) weekLeaves(message *tgbotapi.Message, args string) {
	refDate, err := parseOptionalDate(args)
	if err != nil {
		h.reply(message.Chat.ID, fmt.Sprintf("❌ %v\nUsage: /weekleaves [yyyy-mm-dd]", err))
		return
	}

	records, startDate, endDate, err := h.leaveService.WeekView(refDate)
	if err != nil {
		h.reply(message.Chat.ID, fmt.Sprintf("❌ Failed to load leaves: %v", err))
		return
	}

	h.reply(message.Chat.ID, formatLeaveWeek(records, startDate, endDate))
}

func formatLeaveWeek(records []models.LeaveRecord, startDate, endDate time.Time) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🏖 Leaves %s — %s\n\n",
		workweek.FormatDate(startDate), workweek.FormatDate(endDate))

	if len(records) == 0 {
		sb.WriteString("No leave records for this week.")
		return sb.String()
	}

	for i := range records {
		r := &records[i]
		fmt.Fprintf(&sb, "%s | %s | %s",
			workweek.FormatDate(r.Date), r.AgentID, r.LeaveType)
		if r.Annotation != "" {
			fmt.Fprintf(&sb, " | %s", r.Annotation)
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "\nTotal records: %d", len(records))
	return sb.String()
}
