// Package telegram provides Telegram-specific utilities
package telegram

import "strings"

// MaxMessageLength is the maximum length for a Telegram message
const MaxMessageLength = 4000

// EscapeMarkdownV2 escapes special characters for Telegram MarkdownV2
func EscapeMarkdownV2(text string) string {
	replacer := strings.NewReplacer(
		"\\", "\\\\",
		"_", "\\_",
		"*", "\\*",
		"[", "\\[",
		"]", "\\]",
		"(", "\\(",
		")", "\\)",
		"~", "\\~",
		"`", "\\`",
		">", "\\>",
		"#", "\\#",
		"+", "\\+",
		"-", "\\-",
		"=", "\\=",
		"|", "\\|",
		"{", "\\{",
		"}", "\\}",
		".", "\\.",
		"!", "\\!",
	)
	return replacer.Replace(text)
}

// Bold wraps escaped text in MarkdownV2 bold markers
func Bold(text string) string {
	return "*" + EscapeMarkdownV2(text) + "*"
}
