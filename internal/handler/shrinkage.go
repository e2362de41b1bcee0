package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"shrinkage-bot/internal/service"
	"shrinkage-bot/pkg/workweek"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const shrinkageUsage = "Usage: /shrinkage <daily|weekly> [yyyy-mm-dd] [goal%]"

// parseShrinkageArgs разбирает аргументы команды /shrinkage.
// Дата по умолчанию - сегодня, цель по умолчанию - из конфига.
func parseShrinkageArgs(args string, defaultGoal float64) (string, time.Time, float64, error) {
	fields := strings.Fields(args)
	if len(fields) < 1 || len(fields) > 3 {
		return "", time.Time{}, 0, fmt.Errorf("expected 1 to 3 arguments, got %d", len(fields))
	}

	mode := strings.ToLower(fields[0])
	if mode != "daily" && mode != "weekly" {
		return "", time.Time{}, 0, fmt.Errorf("mode must be daily or weekly, got %q", fields[0])
	}

	date := time.Now()
	goal := defaultGoal

	rest := fields[1:]

	// Второй аргумент может быть датой или целью
	if len(rest) > 0 {
		if parsed, err := workweek.ParseDate(rest[0]); err == nil {
			date = parsed
			rest = rest[1:]
		}
	}

	if len(rest) > 1 {
		return "", time.Time{}, 0, fmt.Errorf("too many arguments")
	}

	if len(rest) == 1 {
		parsed, err := strconv.ParseFloat(rest[0], 64)
		if err != nil {
			return "", time.Time{}, 0, fmt.Errorf("goal must be a number, got %q", rest[0])
		}
		if parsed < 0 || parsed > 100 {
			return "", time.Time{}, 0, fmt.Errorf("goal must be in [0,100], got %v", parsed)
		}
		goal = parsed
	}

	return mode, date, goal, nil
}

func (h *Handler) shrinkageReport(message *tgbotapi.Message, args string) {
	mode, date, goal, err := parseShrinkageArgs(args, h.shrinkageService.DefaultGoal())
	if err != nil {
		h.reply(message.Chat.ID, fmt.Sprintf("❌ %v\n%s", err, shrinkageUsage))
		return
	}

	var report *service.ShrinkageReport
	if mode == "daily" {
		report, err = h.shrinkageService.DailyReport(date, goal)
	} else {
		report, err = h.shrinkageService.WeeklyReport(date, goal)
	}
	if err != nil {
		h.reply(message.Chat.ID, fmt.Sprintf("❌ Failed to build report: %v", err))
		return
	}

	h.reply(message.Chat.ID, formatShrinkageReport(report, mode))
}

// formatShrinkageReport рендерит отчет. Среднее округляется до 2 знаков
// только здесь, сравнение с целью уже сделано на полной точности.
func formatShrinkageReport(report *service.ShrinkageReport, mode string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📊 Shrinkage report (%s) %s — %s\n\n",
		mode, workweek.FormatDate(report.StartDate), workweek.FormatDate(report.EndDate))

	// Пустой период: только таблица без сводки
	if !report.HasSummary {
		sb.WriteString("No attendance records for this period.")
		return sb.String()
	}

	fmt.Fprintf(&sb, "Records: %d\n", len(report.PerRecord))

	perRecord := make([]string, 0, len(report.PerRecord))
	for _, percent := range report.PerRecord {
		perRecord = append(perRecord, fmt.Sprintf("%.2f%%", percent))
	}
	fmt.Fprintf(&sb, "Per-record shrinkage: %s\n", strings.Join(perRecord, ", "))

	fmt.Fprintf(&sb, "Average shrinkage: %.2f%%\n", report.Average)
	fmt.Fprintf(&sb, "Goal: %.2f%%\n\n", report.Goal)

	if report.WithinGoal {
		sb.WriteString("✅ Shrinkage is within the goal.")
		return sb.String()
	}

	fmt.Fprintf(&sb, "⚠️ Shrinkage exceeds the goal. Delete %d leave(s) to meet your goal.",
		report.RequiredDeletion)
	return sb.String()
}
