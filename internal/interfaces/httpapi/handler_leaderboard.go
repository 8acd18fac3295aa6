package httpapi

import (
	"context"
	"net/http"

	"github.com/soccerstats/dashboard-api/internal/usecase"
)

type teamRankingFunc func(ctx context.Context, limit int) ([]usecase.TeamRow, error)

func (h *Handler) TopPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TopPlayers")
	defer span.End()

	limit, err := h.limitFromQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.leaderboards.TopPlayersOverall(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "top players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerRowsToDTO(rows))
}

func (h *Handler) TopPlayersByMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TopPlayersByMatch")
	defer span.End()

	matchID, err := parsePathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	limit, err := h.limitFromQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.leaderboards.TopPlayersByMatch(ctx, matchID, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "top players by match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerRowsToDTO(rows))
}

func (h *Handler) TopGoalkeepers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TopGoalkeepers")
	defer span.End()

	limit, err := h.limitFromQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.leaderboards.TopGoalkeepers(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "top goalkeepers failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, keeperRowsToDTO(rows))
}

func (h *Handler) MostAggressiveTeams(w http.ResponseWriter, r *http.Request) {
	h.teamRanking(w, r, "httpapi.Handler.MostAggressiveTeams", h.leaderboards.MostAggressiveTeams)
}

func (h *Handler) BestDefensiveTeams(w http.ResponseWriter, r *http.Request) {
	h.teamRanking(w, r, "httpapi.Handler.BestDefensiveTeams", h.leaderboards.BestDefensiveTeams)
}

func (h *Handler) BestAttackingTeams(w http.ResponseWriter, r *http.Request) {
	h.teamRanking(w, r, "httpapi.Handler.BestAttackingTeams", h.leaderboards.BestAttackingTeams)
}

func (h *Handler) teamRanking(w http.ResponseWriter, r *http.Request, spanName string, list teamRankingFunc) {
	ctx, span := startSpan(r.Context(), spanName)
	defer span.End()

	limit, err := h.limitFromQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := list(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "team ranking failed", "span", spanName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamRowsToDTO(rows))
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSummary")
	defer span.End()

	limit, err := h.limitFromQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	summary, err := h.summaryService.Get(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "summary failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summaryDTO{
		TopPlayers:     playerRowsToDTO(summary.TopPlayers),
		TopGoalkeepers: keeperRowsToDTO(summary.TopGoalkeepers),
		MostAggressive: teamRowsToDTO(summary.MostAggressive),
		BestDefensive:  teamRowsToDTO(summary.BestDefensive),
		BestAttacking:  teamRowsToDTO(summary.BestAttacking),
	})
}
