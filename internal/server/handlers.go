package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/kurobon/gitflowsim/internal/git"
	"github.com/kurobon/gitflowsim/internal/logging"
	"github.com/kurobon/gitflowsim/internal/mission"
	"github.com/kurobon/gitflowsim/internal/state"
)

type Server struct {
	SessionManager *git.SessionManager
	MissionEngine  *mission.Engine
	Logger         *slog.Logger
	Mux            *http.ServeMux
}

func NewServer(sm *git.SessionManager, engine *mission.Engine, logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.Discard()
	}
	s := &Server{
		SessionManager: sm,
		MissionEngine:  engine,
		Logger:         logger,
		Mux:            http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.Mux.HandleFunc("/ping", s.handlePing)
	s.Mux.HandleFunc("/api/session/init", s.handleInitSession)
	s.Mux.HandleFunc("/api/session/reset", s.handleResetSession)
	s.Mux.HandleFunc("/api/command", s.handleExecCommand)
	s.Mux.HandleFunc("/api/state", s.handleGetGraphState)
	s.Mux.HandleFunc("/api/strategies", s.handleGetStrategies)
	s.Mux.HandleFunc("/api/remote/simulate-commit", s.handleSimulateRemoteCommit)

	if s.MissionEngine != nil {
		s.Mux.HandleFunc("/api/missions", s.handleListMissions)
		s.Mux.HandleFunc("/api/mission/start", s.handleStartMission)
		s.Mux.HandleFunc("/api/mission/verify", s.handleVerifyMission)
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Mux.ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "pong",
		"system":  "GitFlowSim Backend",
	})
}

func (s *Server) handleGetStrategies(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, state.GetBranchingStrategies())
}

func (s *Server) handleInitSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sess, err := s.SessionManager.CreateSession("")
	if err != nil {
		s.Logger.Error("Failed to create session", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.Logger.Info("Session created", "session", sess.ID)

	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "session created",
		"sessionId": sess.ID,
	})
}

// SessionRequest is the body of endpoints that only name a session.
type SessionRequest struct {
	SessionID string `json:"sessionId"`
}

func (s *Server) handleResetSession(w http.ResponseWriter, r *http.Request) {
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

	output := git.Execute(r.Context(), sess, "clear")
	writeJSON(w, http.StatusOK, CommandResponse{Output: output, Branch: sess.Snapshot().Branch})
}

// session resolves a session ID, recreating sessions lost to expiry or a
// backend restart. It writes the error response itself.
func (s *Server) session(w http.ResponseWriter, id string) (*git.Session, bool) {
	if id == "" {
		http.Error(w, "sessionId required", http.StatusBadRequest)
		return nil, false
	}
	if sess, ok := s.SessionManager.GetSession(id); ok {
		return sess, true
	}

	s.Logger.Warn("Session not found (likely expired or backend restart). Recreating...", "session", id)
	sess, err := s.SessionManager.CreateSession(id)
	if err != nil {
		http.Error(w, "failed to restore session: "+err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	return sess, true
}
