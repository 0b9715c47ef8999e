package server

import (
	"encoding/json"
	"net/http"

	"github.com/kurobon/gitflowsim/internal/git"
	"github.com/kurobon/gitflowsim/internal/state"
)

type CommandRequest struct {
	SessionID string `json:"sessionId"`
	Command   string `json:"command"`
}

// CommandResponse carries the feedback line. Failures are reported in Error
// with a 200 status: they are part of the exercise, not transport errors.
type CommandResponse struct {
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
	Branch string `json:"branch"`
}

// StateResponse is everything a renderer needs to draw both graphs.
type StateResponse struct {
	Local         *state.GraphState `json:"local"`
	Remote        *state.GraphState `json:"remote"`
	Branch        string            `json:"branch"`
	LocalHistory  state.History     `json:"localHistory"`
	RemoteHistory state.History     `json:"remoteHistory"`
}

const (
	LocalGraphTitle  = "Local Repository"
	RemoteGraphTitle = "origin/main"
)

func (s *Server) handleExecCommand(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.Logger.Info("Command received", "session", req.SessionID, "cmd", req.Command)

	sess, ok := s.session(w, req.SessionID)
	if !ok {
		return
	}

	next, feedback := git.ExecuteSnapshot(r.Context(), sess, req.Command)
	resp := CommandResponse{Branch: next.Branch}
	if git.IsErrorFeedback(feedback) {
		s.Logger.Debug("Command rejected", "session", req.SessionID, "feedback", feedback)
		resp.Error = feedback
	} else {
		resp.Output = feedback
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetGraphState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sess, ok := s.session(w, r.URL.Query().Get("sessionId"))
	if !ok {
		return
	}

	resp, err := BuildStateResponse(sess.Snapshot())
	if err != nil {
		s.Logger.Error("Failed to build graph", "session", sess.ID, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// BuildStateResponse projects a snapshot into both graphs.
func BuildStateResponse(st state.Snapshot) (*StateResponse, error) {
	local, err := state.BuildGraph(st.Local, LocalGraphTitle, true)
	if err != nil {
		return nil, err
	}
	remote, err := state.BuildGraph(st.Remote, RemoteGraphTitle, false)
	if err != nil {
		return nil, err
	}
	return &StateResponse{
		Local:         local,
		Remote:        remote,
		Branch:        st.Branch,
		LocalHistory:  st.Local,
		RemoteHistory: st.Remote,
	}, nil
}
