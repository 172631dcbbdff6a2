package web

import (
	"flagbot/api/api"
)

// Config holds the configuration for the web server
type Config struct {
	Addr            string
	API             *api.API
	LeaderboardSize int // entries per leaderboard response, defaults to 15
}

// Server is the HTTP server that exposes read-only leaderboard data
type Server struct {
	api             *api.API
	leaderboardSize int
}
