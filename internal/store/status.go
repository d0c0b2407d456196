package store

// Status tracks where an item sits in its lifecycle.
type Status string

const (
	StatusPending    Status = "pending"
	StatusOnHold     Status = "on-hold"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusStopped    Status = "stopped"
)

var statusLabels = map[Status]string{
	StatusPending:    "Ongoing",
	StatusOnHold:     "Hiatus",
	StatusInProgress: "Waiting",
	StatusCompleted:  "Completed",
	StatusStopped:    "Retired",
}

// Valid reports whether s is one of the five known statuses.
func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the display label for s, empty for unknown statuses.
func (s Status) Label() string {
	return statusLabels[s]
}

// Statuses lists the known statuses in lifecycle order.
func Statuses() []Status {
	return []Status{StatusPending, StatusOnHold, StatusInProgress, StatusCompleted, StatusStopped}
}
