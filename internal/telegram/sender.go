package telegram

import (
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// BotAPI is the interface for Telegram bot API operations
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// MessageSender defines the interface for sending Telegram messages
type MessageSender interface {
	SendPlain(chatID int64, text string) error
	SendMarkdown(chatID int64, text string) error
	SendKeyboard(chatID int64, text string, rows [][]string) error
	ClearKeyboard(chatID int64, text string) error
}

// Sender implements MessageSender using Telegram Bot API
type Sender struct {
	api BotAPI
}

// NewSender creates a new Sender
func NewSender(api BotAPI) *Sender {
	return &Sender{api: api}
}

// SendPlain sends a plain text message without formatting
func (s *Sender) SendPlain(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := s.api.Send(msg)
	if err != nil {
		slog.Error("Failed to send message", "chat_id", chatID, "error", err)
	}
	return err
}

// SendMarkdown sends a MarkdownV2 formatted message
func (s *Sender) SendMarkdown(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "MarkdownV2"
	_, err := s.api.Send(msg)
	if err != nil {
		slog.Error("Failed to send message", "chat_id", chatID, "error", err)
	}
	return err
}

// SendKeyboard sends a message with a one-time reply keyboard built from rows
func (s *Sender) SendKeyboard(chatID int64, text string, rows [][]string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = BuildReplyKeyboard(rows)
	_, err := s.api.Send(msg)
	if err != nil {
		slog.Error("Failed to send message with keyboard", "chat_id", chatID, "error", err)
	}
	return err
}

// ClearKeyboard sends a message and removes any active reply keyboard
func (s *Sender) ClearKeyboard(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(false)
	_, err := s.api.Send(msg)
	if err != nil {
		slog.Error("Failed to send message", "chat_id", chatID, "error", err)
	}
	return err
}

