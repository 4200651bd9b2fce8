package domain

// Calendar represents a bookable employee or asset with its own schedule.
// The working-hours schedule itself lives in SchedCore; the console only
// consumes the roster for resource mapping.
type Calendar struct {
	ID     string
	Name   string
	Active bool
}

// CalendarPage одна страница ростера календарей из SchedCore
type CalendarPage struct {
	Items      []Calendar
	Page       int
	Limit      int
	TotalItems int
}

// HasMore returns true if pages beyond the current one remain
func (p *CalendarPage) HasMore() bool {
	if p.Limit <= 0 {
		return false
	}
	return p.Page*p.Limit < p.TotalItems
}
