package ui

import (
	"tooldeck/internal/domain"
	"tooldeck/internal/ui/input/types"
)

// directoryFetchedMsg carries the result of a catalog fetch
type directoryFetchedMsg struct {
	entries []domain.Entry
	err     error
}

// searchSettledMsg is posted by a debouncer once its search box went quiet
type searchSettledMsg struct {
	source types.Mode
}

// contactSentMsg carries the result of a form submission
type contactSentMsg struct {
	err error
}

// contactFormDoneMsg and contactFormCancelledMsg replace huh's default quit
type contactFormDoneMsg struct{}

type contactFormCancelledMsg struct{}

// noticeExpiredMsg hides the notice with the given id if it is still shown
type noticeExpiredMsg struct {
	id int
}

// linkOpenedMsg contains the result of opening a link in the browser
type linkOpenedMsg struct {
	link string
	err  error
}

// linkCopiedMsg contains the result of copying a link
type linkCopiedMsg struct {
	link string
	err  error
}

// pagerClosedMsg is sent when the pager returns
type pagerClosedMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
