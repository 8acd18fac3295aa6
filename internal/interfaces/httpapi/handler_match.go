package httpapi

import "net/http"

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	matches, err := h.matchService.ListRecent(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeamStatsByMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamStatsByMatch")
	defer span.End()

	matchID, err := parsePathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	lines, err := h.matchService.TeamStatsByMatch(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "team stats by match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamMatchLineDTO, 0, len(lines))
	for _, line := range lines {
		items = append(items, teamMatchLineDTO{
			TeamID:   line.TeamID,
			TeamName: line.TeamName,
			Logo:     line.Logo,
			Stat:     teamStatToDTO(line.Stat),
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
