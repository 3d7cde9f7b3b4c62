package wizard

import "strings"

// selectedMark prefixes a multi-select button label while the option is
// toggled on. It is a rendering concern only: Normalize strips it before any
// input is interpreted, so decoration is never parsed back as state.
const selectedMark = "✅" // checkmark

// Canonical control tokens recognized by the engine after normalization.
const (
	tokenCancel  = "cancel"
	tokenDone    = "done"
	tokenConfirm = "confirm"
	tokenSkip    = "skip"
	tokenPrev    = "prev"
	tokenNext    = "next"
)

// Button labels shown to the actor for the control tokens.
const (
	labelCancel  = "❌ Cancel"
	labelDone    = "✔ Done"
	labelConfirm = "✔ Confirm"
	labelSkip    = "⏭ Skip"
	labelPrev    = "◀ Back"
	labelNext    = "Next ▶"
)

// aliases maps every decorated or localized menu label to its canonical
// token, so the same logical command is recognized whether the client shows
// it with or without decoration.
var aliases = map[string]string{
	labelCancel:   tokenCancel,
	labelDone:     tokenDone,
	labelConfirm:  tokenConfirm,
	labelSkip:     tokenSkip,
	labelPrev:     tokenPrev,
	labelNext:     tokenNext,
	"Cancel":      tokenCancel,
	"Done":        tokenDone,
	"Confirm":     tokenConfirm,
	"Skip":        tokenSkip,
	"Back":        tokenPrev,
	"Next":        tokenNext,
	"/cancel":     tokenCancel,
}

// skipKeywords are accepted on optional steps in place of an answer.
var skipKeywords = map[string]bool{
	tokenSkip: true,
	"-":       true,
	"none":    true,
}

// Normalize canonicalizes raw inbound text: trims whitespace, strips a
// leading selection mark, and resolves menu-label aliases. It runs before
// wizard dispatch and before plain-menu dispatch.
func Normalize(raw string) string {
	t := strings.TrimSpace(raw)
	t = strings.TrimSpace(strings.TrimPrefix(t, selectedMark))
	if canon, ok := aliases[t]; ok {
		return canon
	}
	return t
}

// decorate prefixes a label with the selection mark when selected.
func decorate(label string, selected bool) string {
	if selected {
		return selectedMark + " " + label
	}
	return label
}
