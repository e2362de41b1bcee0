// internal/handler/commands.go
package handler

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (h *Handler) handleCommand(message *tgbotapi.Message) {
	command := message.Command()
	args := message.CommandArguments()

	switch command {
	case "start":
		h.sendStartMessage(message)
	case "help":
		h.sendHelpMessage(message)

	// Посещаемость
	case "addattendance":
		h.addAttendance(message, args)
	case "weekattendance":
		h.weekAttendance(message, args)

	// Отпуска
	case "addleave":
		h.addLeave(message, args)
	case "weekleaves":
		h.weekLeaves(message, args)

	// Отчет шринкеджа
	case "shrinkage":
		h.shrinkageReport(message, args)

	default:
		h.reply(message.Chat.ID, "Unknown command. Use /help for the list of commands.")
	}
}

func (h *Handler) sendStartMessage(message *tgbotapi.Message) {
	text := "👋 CSA shrinkage tracker.\n\n" +
		"Record attendance and leaves per agent and check whether shrinkage " +
		"for a day or week stays within your goal.\n\n" +
		"Use /help for the list of commands."
	h.reply(message.Chat.ID, text)
}

func (h *Handler) sendHelpMessage(message *tgbotapi.Message) {
	text := "Available commands:\n\n" +
		"📋 Attendance\n" +
		"/addattendance <csa_id> <yyyy-mm-dd> <scheduled> <actual> [weekoff]\n" +
		"/weekattendance [yyyy-mm-dd] - weekly attendance view\n\n" +
		"🏖 Leaves\n" +
		"/addleave <csa_id> <yyyy-mm-dd> <AL|SL|CL> [annotation]\n" +
		"/weekleaves [yyyy-mm-dd] - weekly leave view\n\n" +
		"📊 Shrinkage\n" +
		"/shrinkage <daily|weekly> [yyyy-mm-dd] [goal%]\n\n" +
		"Dates default to today, the goal defaults to the configured one."
	h.reply(message.Chat.ID, text)
}
