package wizard

// SubmissionKinds lists the accepted content kinds for student submissions.
var SubmissionKinds = []string{"notes", "summary", "slides", "exam"}

func submissionCatalog() *Catalog {
	return &Catalog{
		Kind: KindSubmission,
		Steps: []Step{
			{
				Key:      "title",
				Prompt:   "What is the title of your submission?",
				Required: true,
				Validate: ValidateText,
			},
			{
				Key:      "kind",
				Prompt:   "What kind of content is it?",
				Required: true,
				Validate: ValidateEnum,
				Options:  SubmissionKinds,
			},
			{
				Key:      "course",
				Prompt:   "Which course is it for?",
				Required: true,
				Validate: ValidateText,
			},
			{
				Key:      "term",
				Prompt:   "Which term is the course taught in? (1-12)",
				Required: true,
				Validate: ValidateInt,
				Min:      1,
				Max:      12,
			},
			{
				Key:      "description",
				Prompt:   "Add a short description, or send " + labelSkip + ".",
				Validate: ValidateText,
			},
			{
				Key:      "file",
				Prompt:   "Now send the document as a PDF file.",
				Required: true,
				Validate: ValidateFile,
			},
			{
				Key:      "confirm",
				Prompt:   "Submit for review?",
				Required: true,
				Validate: ValidateConfirm,
			},
		},
	}
}
