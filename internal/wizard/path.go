package wizard

import (
	"context"

	"github.com/campuslink/campuslink-bot/internal/storage"
)

// Weekdays is the free-day option set for path onboarding.
var Weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func onboardingCatalog() *Catalog {
	return &Catalog{
		Kind: KindOnboarding,
		Steps: []Step{
			{
				Key:      "targetRole",
				Prompt:   "What role are you working towards? (e.g. backend developer)",
				Required: true,
				Validate: ValidateText,
			},
			{
				Key:      "interests",
				Prompt:   "Pick the areas you want your path to focus on, then press " + labelDone + ".",
				Required: true,
				Validate: ValidateEnum,
				Options:  InterestOptions,
				Multi:    true,
			},
			{
				Key:      "weeklyHours",
				Prompt:   "How many hours per week can you invest? (1-80)",
				Required: true,
				Validate: ValidateInt,
				Min:      1,
				Max:      80,
			},
			{
				Key:      "freeDays",
				Prompt:   "Which days are you free to work on your path? Press " + labelDone + " when finished.",
				Required: true,
				Validate: ValidateEnum,
				Options:  Weekdays,
				Multi:    true,
			},
			{
				Key:      "confirm",
				Prompt:   "Create your path with these settings?",
				Required: true,
				Validate: ValidateConfirm,
			},
		},
	}
}

func goalCatalog() *Catalog {
	return &Catalog{
		Kind: KindGoal,
		Steps: []Step{
			{
				Key:      "title",
				Prompt:   "What is the goal?",
				Required: true,
				Validate: ValidateText,
			},
			{
				Key:      "metric",
				Prompt:   "How will you measure it? Send " + labelSkip + " if you are not sure yet.",
				Validate: ValidateText,
			},
			{
				Key:      "deadlineWeeks",
				Prompt:   "In how many weeks should it be done? (1-52)",
				Required: true,
				Validate: ValidateInt,
				Min:      1,
				Max:      52,
			},
			{
				Key:      "confirm",
				Prompt:   "Add this goal?",
				Required: true,
				Validate: ValidateConfirm,
			},
		},
	}
}

func taskCatalog(paths storage.PathStore) *Catalog {
	return &Catalog{
		Kind: KindTask,
		Steps: []Step{
			{
				Key:      "goal",
				Prompt:   "Which goal is this task for?",
				Required: true,
				Validate: ValidateEnum,
				OptionsFunc: func(ctx context.Context, sess *Session) ([]string, error) {
					goals, err := paths.ListGoalsByActor(ctx, sess.ActorID)
					if err != nil {
						return nil, err
					}
					titles := make([]string, 0, len(goals))
					for _, g := range goals {
						titles = append(titles, g.Title)
					}
					return titles, nil
				},
			},
			{
				Key:      "title",
				Prompt:   "Describe the task.",
				Required: true,
				Validate: ValidateText,
			},
			{
				Key:      "estimateHours",
				Prompt:   "How many hours will it take? (1-80)",
				Required: true,
				Validate: ValidateInt,
				Min:      1,
				Max:      80,
			},
			{
				Key:      "confirm",
				Prompt:   "Add this task?",
				Required: true,
				Validate: ValidateConfirm,
			},
		},
	}
}

func artifactCatalog() *Catalog {
	return &Catalog{
		Kind: KindArtifact,
		Steps: []Step{
			{
				Key:      "title",
				Prompt:   "What is the artifact called?",
				Required: true,
				Validate: ValidateText,
			},
			{
				Key:      "link",
				Prompt:   "Share a link to it, or send " + labelSkip + " to upload a file instead.",
				Validate: ValidateURL,
			},
			{
				Key:      "tags",
				Prompt:   "Add comma-separated tags (e.g. \"go, backend\"), or send " + labelSkip + ".",
				Validate: ValidateCSV,
			},
			{
				Key:      "file",
				Prompt:   "Send the artifact as a PDF file, or " + labelSkip + " if you shared a link.",
				Validate: ValidateFile,
			},
			{
				Key:      "confirm",
				Prompt:   "Save this artifact?",
				Required: true,
				Validate: ValidateConfirm,
			},
		},
	}
}

// newCatalogs builds the static step catalogs for every wizard kind.
func newCatalogs(paths storage.PathStore) map[Kind]*Catalog {
	return map[Kind]*Catalog{
		KindProfile:    profileCatalog(),
		KindSubmission: submissionCatalog(),
		KindOnboarding: onboardingCatalog(),
		KindGoal:       goalCatalog(),
		KindTask:       taskCatalog(paths),
		KindArtifact:   artifactCatalog(),
	}
}
