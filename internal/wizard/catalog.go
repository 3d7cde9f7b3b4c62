package wizard

import "context"

// ValidatorKind selects how a step's raw input is parsed and checked.
type ValidatorKind int

const (
	ValidateText ValidatorKind = iota
	ValidateEnum
	ValidateInt
	ValidateURL
	ValidateCSV
	ValidateSkills
	ValidateFile
	ValidateConfirm
)

// Step is one static question definition. Steps carry no per-session state;
// everything mutable lives in the Session.
type Step struct {
	Key      string
	Prompt   string
	Required bool
	Validate ValidatorKind

	// Options lists the valid answers for enum and multi-select steps.
	// OptionsFunc resolves them dynamically when the set depends on an
	// earlier answer or on stored data (a branch).
	Options     []string
	OptionsFunc func(ctx context.Context, sess *Session) ([]string, error)

	Multi    bool // multi-select with a done marker
	Min, Max int  // bounds for ValidateInt
	PageSize int  // >0 enables pagination of Options
}

// Catalog is the ordered step list for one wizard kind.
type Catalog struct {
	Kind  Kind
	Steps []Step
}

// Len returns the number of steps.
func (c *Catalog) Len() int { return len(c.Steps) }

// stepIndexOf returns the index of the step with the given key, or -1.
func (c *Catalog) stepIndexOf(key string) int {
	for i, s := range c.Steps {
		if s.Key == key {
			return i
		}
	}
	return -1
}

// options resolves the valid option set for a step, preferring the dynamic
// resolver when present.
func (c *Catalog) options(ctx context.Context, step Step, sess *Session) ([]string, error) {
	if step.OptionsFunc != nil {
		return step.OptionsFunc(ctx, sess)
	}
	return step.Options, nil
}
