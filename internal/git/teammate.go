package git

import (
	"context"
	"fmt"

	"github.com/kurobon/gitflowsim/internal/state"
)

// TeammateInput is the input recorded on commits pushed by the simulated teammate.
const TeammateInput = "Teammate Push"

// TeammatePush appends a commit straight to the remote history, as if a
// collaborator had pushed. It is the only way the remote grows other than a
// local push.
func TeammatePush(st state.Snapshot, src *state.Sources) (state.Snapshot, string) {
	op := state.Operation{
		ID:    src.NextID(),
		Input: TeammateInput,
		Hash:  src.Hash(),
		Kind:  state.KindCommit,
		Arg:   fmt.Sprintf("Feature #%d (Team)", src.IntN(100)),
	}
	next := st
	next.Remote = st.Remote.Append(op)
	return next, "Update: A teammate just pushed code to origin/main!"
}

// SimulateTeammatePush runs TeammatePush against a session.
func SimulateTeammatePush(ctx context.Context, s *Session) string {
	s.Lock()
	defer s.Unlock()

	next, out := TeammatePush(s.State, s.Sources)
	s.State = next
	s.RecordReflog(TeammateInput, out)
	return out
}
