package telegram

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// BuildReplyKeyboard converts label rows into a one-time reply keyboard.
// Empty rows are dropped so callers can build rows conditionally.
func BuildReplyKeyboard(rows [][]string) tgbotapi.ReplyKeyboardMarkup {
	var kbRows [][]tgbotapi.KeyboardButton
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		var kbRow []tgbotapi.KeyboardButton
		for _, label := range row {
			kbRow = append(kbRow, tgbotapi.NewKeyboardButton(label))
		}
		kbRows = append(kbRows, kbRow)
	}
	kb := tgbotapi.NewOneTimeReplyKeyboard(kbRows...)
	kb.ResizeKeyboard = true
	return kb
}

// Columns arranges labels into rows of n columns each
func Columns(labels []string, n int) [][]string {
	if n <= 0 {
		n = 1
	}
	var rows [][]string
	for i := 0; i < len(labels); i += n {
		end := i + n
		if end > len(labels) {
			end = len(labels)
		}
		rows = append(rows, labels[i:end])
	}
	return rows
}
