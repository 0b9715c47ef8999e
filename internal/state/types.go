package state

// Kind classifies a recorded operation.
type Kind string

const (
	KindCommit   Kind = "commit"
	KindBranch   Kind = "branch"
	KindMerge    Kind = "merge"
	KindCheckout Kind = "checkout"
	KindError    Kind = "error"
)

// DefaultBranch is the branch checked out in a fresh session.
const DefaultBranch = "main"

// Operation is one simulated git action recorded in a history.
// Field names on the wire match what the graph front-end expects.
type Operation struct {
	ID    int64  `json:"id"`
	Input string `json:"input"`
	Hash  string `json:"hash,omitempty"` // commit kind only
	Kind  Kind   `json:"type"`
	Arg   string `json:"arg,omitempty"`
}

// History is an ordered sequence of operations for one side (local or remote).
// Insertion order is the only ordering.
type History []Operation

// Append returns a new history with op added at the end.
// The receiver's backing array is never written to.
func (h History) Append(op Operation) History {
	out := make(History, len(h), len(h)+1)
	copy(out, h)
	return append(out, op)
}

// Clone returns a value copy of h. The result is never nil.
func (h History) Clone() History {
	out := make(History, len(h))
	copy(out, h)
	return out
}

// Equal reports whether both histories hold the same operations in the same order.
func (h History) Equal(other History) bool {
	if len(h) != len(other) {
		return false
	}
	for i := range h {
		if h[i] != other[i] {
			return false
		}
	}
	return true
}

// LastCommit scans from the end for the most recent commit-kind operation.
func (h History) LastCommit() (Operation, bool) {
	for i := len(h) - 1; i >= 0; i-- {
		if h[i].Kind == KindCommit {
			return h[i], true
		}
	}
	return Operation{}, false
}

// CommitCount returns the number of commit-kind operations.
func (h History) CommitCount() int {
	n := 0
	for _, op := range h {
		if op.Kind == KindCommit {
			n++
		}
	}
	return n
}

// Branches returns every branch name the history knows about, in order of
// first appearance, starting with the default branch.
func (h History) Branches() []string {
	seen := map[string]bool{DefaultBranch: true}
	names := []string{DefaultBranch}
	for _, op := range h {
		if op.Kind != KindBranch && op.Kind != KindCheckout {
			continue
		}
		if op.Arg == "" || seen[op.Arg] {
			continue
		}
		seen[op.Arg] = true
		names = append(names, op.Arg)
	}
	return names
}

// Snapshot is the whole simulator state: both histories and the checked-out branch.
// Transitions take a Snapshot and return a new one; the histories of a returned
// snapshot never share a backing array that a later transition writes to.
type Snapshot struct {
	Local  History `json:"local"`
	Remote History `json:"remote"`
	Branch string  `json:"branch"`
}

// NewSnapshot returns the initial state: empty histories on the default branch.
func NewSnapshot() Snapshot {
	return Snapshot{
		Local:  History{},
		Remote: History{},
		Branch: DefaultBranch,
	}
}

// Clone returns a deep copy of s.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Local:  s.Local.Clone(),
		Remote: s.Remote.Clone(),
		Branch: s.Branch,
	}
}

// InSync reports whether local and remote hold identical histories.
func (s Snapshot) InSync() bool {
	return s.Local.Equal(s.Remote)
}
