package domain

// SolveStatus is the lifecycle state of the single solution slot.
// Transitions: idle → solving → {success, error}; success and error return to
// solving only via a fresh explicit solve request. idle is the initial state
// and is never re-entered.
type SolveStatus string

const (
	SolveIdle    SolveStatus = "idle"
	SolveSolving SolveStatus = "solving"
	SolveSuccess SolveStatus = "success"
	SolveError   SolveStatus = "error"
)

// SolveState is a snapshot of the solution slot. Exactly one of Solution and
// ErrorKind is meaningful, selected by Status: Solution on success, ErrorKind
// on error, neither while idle or solving.
//
// Sequence is the monotonically increasing number of the solve request this
// snapshot reflects. A response from a superseded request (smaller sequence
// than the latest issued) is never committed, which makes the stale-response
// race observable and testable instead of silent.
type SolveState struct {
	Status   SolveStatus        `json:"status"`
	Sequence uint64             `json:"sequence"`
	Solution *ItinerarySolution `json:"solution,omitempty"`
	// ErrorKind is the stable error code of the failure (e.g.
	// "oracle_timeout"), not the raw error text. Detail goes to the logs.
	ErrorKind string `json:"errorKind,omitempty"`
}
