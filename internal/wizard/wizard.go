// Package wizard implements the multi-step conversational flows of the bot:
// profile completion, content submission, and the path planner dialogues.
// One generic engine interprets a static step catalog per wizard kind.
package wizard

// Kind names one of the guided dialogues.
type Kind string

const (
	KindProfile    Kind = "profile"
	KindSubmission Kind = "submission"
	KindOnboarding Kind = "onboarding"
	KindGoal       Kind = "goal"
	KindTask       Kind = "task"
	KindArtifact   Kind = "artifact"
)

// dispatchOrder is the scan order when looking for an active session:
// submission first, then the path wizards, then profile. Since Start refuses
// to open a second wizard per actor, at most one entry can match.
var dispatchOrder = []Kind{
	KindSubmission,
	KindOnboarding, KindGoal, KindTask, KindArtifact,
	KindProfile,
}

// Document is an inbound file event from the transport.
type Document struct {
	Name string
	MIME string
	Data []byte
}

// Event is one normalized input from an actor: text or a document.
type Event struct {
	Text string
	Doc  *Document
}

// Reply is the single outbound message produced for an event.
type Reply struct {
	Text     string
	Keyboard [][]string
	Clear    bool // remove the reply keyboard
}

// Outcome reports whether the engine consumed the event. Other dispatchers
// must skip their own handling when Handled is true.
type Outcome struct {
	Handled bool
	Reply   Reply
}
