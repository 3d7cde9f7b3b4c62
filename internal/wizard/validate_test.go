package wizard

import (
	"reflect"
	"testing"
)

func TestValidateInputText(t *testing.T) {
	required := Step{Key: "fullName", Required: true, Validate: ValidateText}
	optional := Step{Key: "metric", Validate: ValidateText}

	t.Run("rejects empty required input", func(t *testing.T) {
		res := validateInput(required, "", nil)
		if res.ok {
			t.Fatal("expected rejection")
		}
		if res.message != "This field is required." {
			t.Errorf("message = %q", res.message)
		}
	})

	t.Run("rejects single rune", func(t *testing.T) {
		if res := validateInput(required, "x", nil); res.ok {
			t.Error("expected rejection for 1-character input")
		}
	})

	t.Run("accepts two runes", func(t *testing.T) {
		res := validateInput(required, "Al", nil)
		if !res.ok {
			t.Fatalf("expected acceptance, got %q", res.message)
		}
		if res.value != "Al" {
			t.Errorf("value = %v", res.value)
		}
	})

	t.Run("skip keyword on optional step yields nil", func(t *testing.T) {
		for _, kw := range []string{"skip", "-", "none", "Skip"} {
			res := validateInput(optional, kw, nil)
			if !res.ok || res.value != nil {
				t.Errorf("validateInput(optional, %q) = %+v, want nil value", kw, res)
			}
		}
	})

	t.Run("skip keyword on required step is rejected like empty input", func(t *testing.T) {
		for _, kw := range []string{"skip", "Skip", "SKIP", "-", "none"} {
			res := validateInput(required, kw, nil)
			if res.ok {
				t.Errorf("validateInput(required, %q) accepted, want rejection", kw)
				continue
			}
			if res.message != "This field is required." {
				t.Errorf("validateInput(required, %q).message = %q", kw, res.message)
			}
		}
	})
}

func TestValidateInputEnum(t *testing.T) {
	step := Step{Key: "faculty", Required: true, Validate: ValidateEnum}
	options := []string{"Engineering", "Business"}

	if res := validateInput(step, "Business", options); !res.ok || res.value != "Business" {
		t.Errorf("valid option rejected: %+v", res)
	}
	res := validateInput(step, "Law", options)
	if res.ok {
		t.Fatal("expected rejection for unknown option")
	}
	if res.message != "Please choose one of the options on the keyboard." {
		t.Errorf("message = %q", res.message)
	}
}

func TestValidateInputInt(t *testing.T) {
	step := Step{Key: "weeklyHours", Required: true, Validate: ValidateInt, Min: 1, Max: 80}

	tests := []struct {
		input string
		ok    bool
		want  int
	}{
		{"1", true, 1},
		{"80", true, 80},
		{"42", true, 42},
		{"0", false, 0},
		{"90", false, 0},
		{"-3", false, 0},
		{"ten", false, 0},
		{"7.5", false, 0},
	}

	for _, tt := range tests {
		res := validateInput(step, tt.input, nil)
		if res.ok != tt.ok {
			t.Errorf("validateInput(%q).ok = %v, want %v", tt.input, res.ok, tt.ok)
			continue
		}
		if res.ok && res.value != tt.want {
			t.Errorf("validateInput(%q).value = %v, want %d", tt.input, res.value, tt.want)
		}
		if !res.ok && res.message != "Enter a whole number between 1 and 80." {
			t.Errorf("validateInput(%q).message = %q", tt.input, res.message)
		}
	}
}

func TestValidateInputURL(t *testing.T) {
	step := Step{Key: "linkedin", Required: true, Validate: ValidateURL}

	valid := []string{"https://linkedin.com/in/dana", "http://example.com"}
	for _, in := range valid {
		if res := validateInput(step, in, nil); !res.ok {
			t.Errorf("validateInput(%q) rejected: %q", in, res.message)
		}
	}

	invalid := []string{"linkedin.com/in/dana", "ftp://example.com", "https://", "not a url"}
	for _, in := range invalid {
		if res := validateInput(step, in, nil); res.ok {
			t.Errorf("validateInput(%q) accepted, want rejection", in)
		}
	}
}

func TestValidateInputCSV(t *testing.T) {
	step := Step{Key: "interests", Required: true, Validate: ValidateCSV}

	res := validateInput(step, "ai, web ,data", nil)
	if !res.ok {
		t.Fatalf("rejected: %q", res.message)
	}
	want := []string{"ai", "web", "data"}
	if !reflect.DeepEqual(res.value, want) {
		t.Errorf("value = %v, want %v", res.value, want)
	}

	if res := validateInput(step, ", ,", nil); res.ok {
		t.Error("expected rejection for list of empties")
	}
}

func TestValidateInputFileAndConfirm(t *testing.T) {
	file := Step{Key: "file", Required: true, Validate: ValidateFile}
	if res := validateInput(file, "here it is", nil); res.ok {
		t.Error("text must never satisfy a file step")
	}

	confirm := Step{Key: "confirm", Required: true, Validate: ValidateConfirm}
	if res := validateInput(confirm, "yes", nil); res.ok {
		t.Error("only the confirm marker may finalize")
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"latin commas", "a, b, c", []string{"a", "b", "c"}},
		{"arabic comma", "ai، web", []string{"ai", "web"}},
		{"ideographic comma", "ai、web", []string{"ai", "web"}},
		{"mixed separators", "a, b، c、d", []string{"a", "b", "c", "d"}},
		{"drops empties", "a,,  ,b", []string{"a", "b"}},
		{"empty input", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitList(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitList(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSkills(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []ScoredSkill
	}{
		{
			"scored pairs",
			"go:7, sql:5",
			[]ScoredSkill{{Name: "go", Score: 7}, {Name: "sql", Score: 5}},
		},
		{
			"missing score defaults to 5",
			"go, sql:3",
			[]ScoredSkill{{Name: "go", Score: 5}, {Name: "sql", Score: 3}},
		},
		{
			"scores clamp to 1..10",
			"go:15, sql:0, js:-2",
			[]ScoredSkill{{Name: "go", Score: 10}, {Name: "sql", Score: 1}, {Name: "js", Score: 1}},
		},
		{
			"garbage score defaults",
			"go:lots",
			[]ScoredSkill{{Name: "go", Score: 5}},
		},
		{
			"empty names dropped",
			":7, go:7",
			[]ScoredSkill{{Name: "go", Score: 7}},
		},
		{
			"localized separators",
			"go:7، sql:5",
			[]ScoredSkill{{Name: "go", Score: 7}, {Name: "sql", Score: 5}},
		},
		{"empty input", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseSkills(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseSkills(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
