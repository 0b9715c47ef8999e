package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/kurobon/gitflowsim/internal/mission"
)

type StartMissionRequest struct {
	MissionID string `json:"missionId"`
}

type StartMissionResponse struct {
	SessionID string `json:"sessionId"`
	MissionID string `json:"missionId"`
}

type VerifyMissionRequest struct {
	SessionID string `json:"sessionId"`
	MissionID string `json:"missionId"`
}

func (s *Server) handleListMissions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	missions, err := s.MissionEngine.Loader.ListMissions()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Simple detection for Japanese, the only translation shipped.
	if strings.Contains(strings.ToLower(r.Header.Get("Accept-Language")), "ja") {
		missions = localize(missions, "ja")
	}

	writeJSON(w, http.StatusOK, missions)
}

func localize(missions []*mission.Mission, lang string) []*mission.Mission {
	out := make([]*mission.Mission, len(missions))
	for i, m := range missions {
		val := *m
		if trans, ok := m.Translations[lang]; ok {
			if trans.Title != "" {
				val.Title = trans.Title
			}
			if trans.Description != "" {
				val.Description = trans.Description
			}
			if len(trans.Hints) > 0 {
				val.Hints = trans.Hints
			}
		}
		out[i] = &val
	}
	return out
}

func (s *Server) handleStartMission(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req StartMissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	sessionID, err := s.MissionEngine.StartMission(r.Context(), req.MissionID)
	if err != nil {
		s.Logger.Error("Failed to start mission", "mission", req.MissionID, "error", err)
		http.Error(w, err.Error(), missionStatus(err))
		return
	}
	s.Logger.Info("Mission started", "mission", req.MissionID, "session", sessionID)

	writeJSON(w, http.StatusOK, StartMissionResponse{
		SessionID: sessionID,
		MissionID: req.MissionID,
	})
}

func (s *Server) handleVerifyMission(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req VerifyMissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := s.MissionEngine.VerifyMission(req.SessionID, req.MissionID)
	if err != nil {
		http.Error(w, err.Error(), missionStatus(err))
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func missionStatus(err error) int {
	if errors.Is(err, mission.ErrMissionNotFound) || errors.Is(err, mission.ErrSessionNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
