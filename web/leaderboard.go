package web

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"flagbot/api/logic"
)

// scopeParams maps the scope query parameter to a leaderboard scope. An
// absent parameter defaults to weekly, matching the bot command.
var scopeParams = map[string]logic.Scope{
	"":         logic.ScopeWeekly,
	"weekly":   logic.ScopeWeekly,
	"monthly":  logic.ScopeMonthly,
	"all-time": logic.ScopeAllTime,
}

// HealthzHandler reports liveness for container orchestration probes
func (s *Server) HealthzHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// LeaderboardHandler serves the current standings as JSON.
// Preconditions: HTTP server has been started, receives HTTP ResponseWriter and HTTP Request
// Postconditions: Writes the leaderboard for the requested scope, 400 for an
// unknown scope, 500 when the store query fails
func (s *Server) LeaderboardHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	scope, ok := scopeParams[r.URL.Query().Get("scope")]
	if !ok {
		http.Error(w, "scope must be weekly, monthly or all-time", http.StatusBadRequest)
		return
	}

	board, err := s.api.GetLeaderboard(scope, s.leaderboardSize, time.Now().UTC())
	if err != nil {
		log.Println("failed to get leaderboard:", err)
		http.Error(w, "failed to get leaderboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(board); err != nil {
		log.Println("failed to encode leaderboard:", err)
	}
}
