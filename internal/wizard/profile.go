package wizard

import "context"

// Families lists the academic families a student can belong to.
var Families = []string{"Engineering", "Computer Science", "Business", "Science"}

// FamilyTracks maps each family to its academic tracks. The track step is a
// branch: its option set depends on the family chosen one step earlier, and
// it is paged because some families carry more tracks than fit one screen.
var FamilyTracks = map[string][]string{
	"Engineering":      {"Electrical", "Mechanical", "Civil", "Industrial", "Chemical", "Aerospace"},
	"Computer Science": {"Software Engineering", "Data Science", "Cybersecurity", "AI", "Networks"},
	"Business":         {"Finance", "Marketing", "Accounting"},
	"Science":          {"Physics", "Chemistry", "Biology", "Mathematics"},
}

// InterestOptions is the fixed interest tag set used by the profile and
// onboarding wizards.
var InterestOptions = []string{"ai", "web", "mobile", "data", "security", "cloud", "design", "research"}

const trackPageSize = 4

func profileCatalog() *Catalog {
	return &Catalog{
		Kind: KindProfile,
		Steps: []Step{
			{
				Key:      "fullName",
				Prompt:   "What is your full name?",
				Required: true,
				Validate: ValidateText,
			},
			{
				Key:      "faculty",
				Prompt:   "Which academic family are you in?",
				Required: true,
				Validate: ValidateEnum,
				Options:  Families,
			},
			{
				Key:      "track",
				Prompt:   "Pick your track:",
				Required: true,
				Validate: ValidateEnum,
				PageSize: trackPageSize,
				OptionsFunc: func(ctx context.Context, sess *Session) ([]string, error) {
					family, _ := sess.Answers["faculty"].(string)
					return FamilyTracks[family], nil
				},
			},
			{
				Key:      "term",
				Prompt:   "Which term are you in? (1-12)",
				Required: true,
				Validate: ValidateInt,
				Min:      1,
				Max:      12,
			},
			{
				Key:      "skills",
				Prompt:   "List your skills as name:score pairs (1-10), e.g. \"go:7, sql:5\". Send " + labelSkip + " to leave empty.",
				Validate: ValidateSkills,
			},
			{
				Key:      "interests",
				Prompt:   "Pick your interests, then press " + labelDone + ".",
				Required: true,
				Validate: ValidateEnum,
				Options:  InterestOptions,
				Multi:    true,
			},
			{
				Key:      "linkedin",
				Prompt:   "Share your LinkedIn profile link, or send " + labelSkip + ".",
				Validate: ValidateURL,
			},
			{
				Key:      "confirm",
				Prompt:   "Save your profile?",
				Required: true,
				Validate: ValidateConfirm,
			},
		},
	}
}
