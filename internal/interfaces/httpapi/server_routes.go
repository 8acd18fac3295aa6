package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerDashboardRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}/team-stats", handler.GetTeamStatsByMatch)
	mux.HandleFunc("GET /v1/matches/{matchID}/top-players", handler.TopPlayersByMatch)
	mux.HandleFunc("GET /v1/players/top", handler.TopPlayers)
	mux.HandleFunc("GET /v1/goalkeepers/top", handler.TopGoalkeepers)
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/rankings/aggression", handler.MostAggressiveTeams)
	mux.HandleFunc("GET /v1/teams/rankings/defense", handler.BestDefensiveTeams)
	mux.HandleFunc("GET /v1/teams/rankings/attack", handler.BestAttackingTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}/overview", handler.GetTeamOverview)
	mux.HandleFunc("GET /v1/teams/{teamID}/goals-by-match", handler.GetTeamGoalsByMatch)
	mux.HandleFunc("GET /v1/summary", handler.GetSummary)
}
