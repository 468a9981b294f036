package app

import "github.com/jwulff/zen/internal/iching"

// DrawnMsg carries the result of one generate action.
type DrawnMsg struct {
	Result iching.Result
}

// NoticeMsg shows a transient warning in the error bar.
type NoticeMsg struct {
	Message string
}

// ClearTransientErrorMsg clears a transient error after a timeout.
type ClearTransientErrorMsg struct{}
