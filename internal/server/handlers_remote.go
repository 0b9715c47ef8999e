package server

import (
	"encoding/json"
	"net/http"

	"github.com/kurobon/gitflowsim/internal/git"
)

// handleSimulateRemoteCommit appends a teammate commit to origin/main.
func (s *Server) handleSimulateRemoteCommit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	sess, ok := s.session(w, req.SessionID)
	if !ok {
		return
	}

	output := git.SimulateTeammatePush(r.Context(), sess)
	s.Logger.Info("Teammate push simulated", "session", sess.ID)

	writeJSON(w, http.StatusOK, CommandResponse{Output: output, Branch: sess.Snapshot().Branch})
}
