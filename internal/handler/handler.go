package handler

import (
	"shrinkage-bot/internal/config"
	"shrinkage-bot/internal/service"
	"shrinkage-bot/pkg/telegram"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	client            *telegram.Client
	attendanceService *service.AttendanceService
	leaveService      *service.LeaveService
	shrinkageService  *service.ShrinkageService
	config            *config.BotConfig
	logger            *logrus.Logger
}

func NewHandler(
	client *telegram.Client,
	attendanceService *service.AttendanceService,
	leaveService *service.LeaveService,
	shrinkageService *service.ShrinkageService,
	cfg *config.BotConfig,
) *Handler {
	return &Handler{
		client:            client,
		attendanceService: attendanceService,
		leaveService:      leaveService,
		shrinkageService:  shrinkageService,
		config:            cfg,
		logger:            logrus.New(),
	}
}

func (h *Handler) HandleUpdates(updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		if update.Message == nil {
			continue
		}

		h.handleMessage(update.Message)
	}
}

func (h *Handler) handleMessage(message *tgbotapi.Message) {
	if !h.isAllowed(message.Chat.ID) {
		h.logger.WithField("chat_id", message.Chat.ID).Warn("Message from unauthorized chat")
		h.reply(message.Chat.ID, "⛔ This bot is restricted to the workforce analyst.")
		return
	}

	if message.IsCommand() {
		h.handleCommand(message)
		return
	}

	h.reply(message.Chat.ID, "I only understand commands. Use /help to see what I can do.")
}

// isAllowed - 0 в конфиге означает, что бот открыт для всех
func (h *Handler) isAllowed(chatID int64) bool {
	return h.config.AnalystChatID == 0 || chatID == h.config.AnalystChatID
}

func (h *Handler) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.client.Bot.Send(msg); err != nil {
		h.logger.WithError(err).Error("Failed to send message")
	}
}
