package wizard

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const defaultSkillScore = 5

// result is the outcome of validating one input against one step.
type result struct {
	ok      bool
	value   any
	message string
}

func accept(v any) result      { return result{ok: true, value: v} }
func reject(msg string) result { return result{ok: false, message: msg} }

// validateInput parses and checks normalized text for a step. options is the
// resolved option set for enum steps (may differ from step.Options for
// branches). Multi-select toggling and document steps are handled by the
// engine, not here.
func validateInput(step Step, text string, options []string) result {
	text = strings.TrimSpace(text)

	// Skip keywords are honored only on optional steps; on required steps
	// they are rejected exactly like empty input.
	if skipKeywords[strings.ToLower(text)] {
		if step.Required {
			return reject("This field is required.")
		}
		return accept(nil)
	}

	if step.Required && text == "" {
		return reject("This field is required.")
	}

	switch step.Validate {
	case ValidateEnum:
		for _, opt := range options {
			if text == opt {
				return accept(text)
			}
		}
		return reject("Please choose one of the options on the keyboard.")

	case ValidateInt:
		n, err := strconv.Atoi(text)
		if err != nil {
			return reject(fmt.Sprintf("Enter a whole number between %d and %d.", step.Min, step.Max))
		}
		if n < step.Min || n > step.Max {
			return reject(fmt.Sprintf("Enter a whole number between %d and %d.", step.Min, step.Max))
		}
		return accept(n)

	case ValidateURL:
		u, err := url.Parse(text)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return reject("Enter a valid http(s) link.")
		}
		return accept(u.String())

	case ValidateCSV:
		items := splitList(text)
		if step.Required && len(items) == 0 {
			return reject("Enter at least one item, separated by commas.")
		}
		return accept(items)

	case ValidateSkills:
		skills := parseSkills(text)
		if step.Required && len(skills) == 0 {
			return reject("Enter skills as name:score pairs, separated by commas.")
		}
		return accept(skills)

	case ValidateFile:
		return reject("Please send the document as a file attachment.")

	case ValidateConfirm:
		// Only the confirm marker finalizes; anything else re-prompts.
		return reject("Press " + labelConfirm + " to finish, or " + labelCancel + " to discard.")

	default: // ValidateText
		if step.Required && len([]rune(text)) < 2 {
			return reject("Please enter at least 2 characters.")
		}
		return accept(text)
	}
}

// splitList splits on Latin and localized commas, trims items, drops empties.
func splitList(text string) []string {
	norm := strings.NewReplacer("،", ",", "、", ",").Replace(text)
	var items []string
	for _, part := range strings.Split(norm, ",") {
		if p := strings.TrimSpace(part); p != "" {
			items = append(items, p)
		}
	}
	return items
}

// ScoredSkill is a parsed name:score pair.
type ScoredSkill struct {
	Name  string
	Score int
}

// parseSkills parses "go:8, sql" style lists. A missing score defaults to the
// mid value; scores are clamped to [1,10].
func parseSkills(text string) []ScoredSkill {
	var skills []ScoredSkill
	for _, item := range splitList(text) {
		name, scoreText, found := strings.Cut(item, ":")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		score := defaultSkillScore
		if found {
			if n, err := strconv.Atoi(strings.TrimSpace(scoreText)); err == nil {
				score = n
			}
		}
		if score < 1 {
			score = 1
		}
		if score > 10 {
			score = 10
		}
		skills = append(skills, ScoredSkill{Name: name, Score: score})
	}
	return skills
}
