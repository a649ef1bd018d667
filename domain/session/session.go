package session

import "time"

type State int

const (
	Free State = iota
	Active
	Retired
)

func (s State) String() string {
	switch s {
	case Free:
		return "free"
	case Active:
		return "active"
	case Retired:
		return "retired"
	default:
		return "unknown"
	}
}

// Session is a pure domain entity. Instances live inside the pool's
// storage plane and are recycled without being cleared, so every field
// is owned by Reset.
type Session struct {
	LeaseID uint64 // sequence number of the opening command
	UserID  uint64

	State       State
	OpenedNanos int64
	Touches     uint64
}

// Reset re-initialises a recycled instance. Pooled sessions arrive
// holding the previous lease's state; this is the only place allowed to
// assume otherwise.
func (s *Session) Reset(leaseID, userID uint64) {
	s.LeaseID = leaseID
	s.UserID = userID
	s.State = Active
	s.OpenedNanos = time.Now().UnixNano()
	s.Touches = 0
}

func (s *Session) Touch() {
	s.Touches++
}

func (s *Session) Age() time.Duration {
	return time.Duration(time.Now().UnixNano() - s.OpenedNanos)
}
