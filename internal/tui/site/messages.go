package site

import "time"

// frameMsg drives the page clock. gen ties the tick to the frame loop that
// scheduled it so a loop replaced by a reload dies out.
type frameMsg struct {
	gen int
	at  time.Time
}

// statusMsg flashes a line in the footer.
type statusMsg struct {
	text string
	err  bool
}
