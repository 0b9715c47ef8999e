package mission

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/kurobon/gitflowsim/internal/git"
	"github.com/kurobon/gitflowsim/internal/state"
)

// ErrSessionNotFound is returned when verifying against an unknown session.
var ErrSessionNotFound = errors.New("session not found")

type Engine struct {
	Loader  *Loader
	Manager *state.SessionManager
}

func NewEngine(loader *Loader, manager *state.SessionManager) *Engine {
	return &Engine{
		Loader:  loader,
		Manager: manager,
	}
}

// StartMission creates a fresh session for the mission and runs its setup
// lines through the command engine. Every start gets its own session so
// concurrent learners never share state.
func (e *Engine) StartMission(ctx context.Context, missionID string) (string, error) {
	m, err := e.Loader.LoadMission(missionID)
	if err != nil {
		return "", err
	}

	sessionID := fmt.Sprintf("mission-%s-%s", m.ID, state.NewSessionID())
	sess, err := e.Manager.CreateSession(sessionID)
	if err != nil {
		return "", err
	}

	for _, line := range m.Setup {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if out := git.Execute(ctx, sess, line); git.IsErrorFeedback(out) {
			e.Manager.DeleteSession(sessionID)
			return "", fmt.Errorf("setup failed at '%s': %s", line, strings.TrimPrefix(out, git.ErrorPrefix))
		}
	}

	// The learner starts with an empty transcript.
	sess.Lock()
	sess.Reflog = nil
	sess.Unlock()

	return sessionID, nil
}

func (e *Engine) VerifyMission(sessionID string, missionID string) (*VerificationResult, error) {
	m, err := e.Loader.LoadMission(missionID)
	if err != nil {
		return nil, err
	}

	sess, ok := e.Manager.GetSession(sessionID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}

	return Verify(m, sess.Snapshot())
}

// Verify evaluates every check of m against st.
func Verify(m *Mission, st state.Snapshot) (*VerificationResult, error) {
	results := make([]CheckResult, 0, len(m.Validation.Checks))
	allPassed := true

	for _, check := range m.Validation.Checks {
		passed, err := evaluate(check, st)
		if err != nil {
			return nil, fmt.Errorf("mission %s: %w", m.ID, err)
		}
		if check.Negate {
			passed = !passed
		}

		results = append(results, CheckResult{
			Description: check.Description,
			Passed:      passed,
		})
		if !passed {
			allPassed = false
		}
	}

	return &VerificationResult{
		Success:   allPassed,
		MissionID: m.ID,
		Progress:  results,
	}, nil
}

func evaluate(check Check, st state.Snapshot) (bool, error) {
	switch check.Type {
	case CheckLocalCommits:
		return st.Local.CommitCount() >= check.Min, nil

	case CheckRemoteCommits:
		return st.Remote.CommitCount() >= check.Min, nil

	case CheckCurrentBranch:
		return st.Branch == check.Name, nil

	case CheckBranchExists:
		for _, b := range st.Local.Branches() {
			if b == check.Name {
				return true, nil
			}
		}
		return false, nil

	case CheckCommitExists:
		re, err := regexp.Compile(check.MessagePattern)
		if err != nil {
			return false, fmt.Errorf("invalid message_pattern %q: %w", check.MessagePattern, err)
		}
		for _, op := range st.Local {
			if op.Kind == state.KindCommit && re.MatchString(op.Arg) {
				return true, nil
			}
		}
		return false, nil

	case CheckMergeExists:
		for _, op := range st.Local {
			if op.Kind == state.KindMerge && (check.Name == "" || op.Arg == check.Name) {
				return true, nil
			}
		}
		return false, nil

	case CheckInSync:
		return st.InSync(), nil

	case CheckTeammateCommitLocal:
		for _, op := range st.Local {
			if op.Kind == state.KindCommit && op.Input == git.TeammateInput {
				return true, nil
			}
		}
		return false, nil

	default:
		return false, fmt.Errorf("unknown check type %q", check.Type)
	}
}
