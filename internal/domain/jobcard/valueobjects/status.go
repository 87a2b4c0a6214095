package valueobjects

import "fmt"

type Status string

const (
	StatusLogged           Status = "logged"
	StatusSentToTechnician Status = "sent_to_technician"
	StatusPending          Status = "pending"
	StatusCompleted        Status = "completed"
	StatusReturned         Status = "returned"
	StatusRejected         Status = "rejected"
)

var validStatuses = map[Status]bool{
	StatusLogged:           true,
	StatusSentToTechnician: true,
	StatusPending:          true,
	StatusCompleted:        true,
	StatusReturned:         true,
	StatusRejected:         true,
}

var statusTransitions = map[Status][]Status{
	StatusLogged: {
		StatusSentToTechnician,
		StatusRejected,
	},
	StatusSentToTechnician: {
		StatusPending,
		StatusCompleted,
		StatusRejected,
	},
	StatusPending: {
		StatusSentToTechnician,
		StatusCompleted,
		StatusRejected,
	},
	StatusCompleted: {
		StatusReturned,
	},
	StatusRejected: {
		StatusReturned,
	},
	StatusReturned: {},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) CanTransitionTo(newStatus Status) bool {
	allowedTransitions, ok := statusTransitions[s]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (s Status) IsLogged() bool {
	return s == StatusLogged
}

func (s Status) IsCompleted() bool {
	return s == StatusCompleted
}

func (s Status) IsReturned() bool {
	return s == StatusReturned
}

func (s Status) IsRejected() bool {
	return s == StatusRejected
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return len(statusTransitions[s]) == 0 && s.IsValid()
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid job card status: %s", s)
	}
	return st, nil
}
