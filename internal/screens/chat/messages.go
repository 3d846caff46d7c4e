package chat

import (
	"github.com/abhisek/doubtbox/internal/llm"
	"github.com/abhisek/doubtbox/internal/tutor"
)

// turnDoneMsg is sent when the classifier reply for a turn arrives.
type turnDoneMsg struct {
	Assembled tutor.Assembled
	// Kind is the envelope tag for event logging, or "error".
	Kind string
	Err  error
}

// imageLoadedMsg is sent when an attachment load finishes.
type imageLoadedMsg struct {
	Path  string
	Image *llm.ImageAttachment
	Err   error
}

// subjectPickedMsg is sent when the learner picks a subject from the
// picker overlay.
type subjectPickedMsg struct {
	Subject string
}
