package practice

import (
	"time"

	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/grading"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/kata"
)

// statementLoadedMsg carries the kata's task statement from disk.
type statementLoadedMsg struct {
	Statement string
}

// judgedMsg is sent when the AI judge finishes grading a submission.
type judgedMsg struct {
	Result grading.Result
}

// recordedMsg is sent when attempt persistence completes.
type recordedMsg struct {
	Err error
}

// countdownTickMsg drives the auto-continue countdown display.
type countdownTickMsg time.Time

// autoContinueMsg fires when the auto-continue delay elapses. To is nil
// when the pending switch was cancelled.
type autoContinueMsg struct {
	To *kata.Kata
}
