package httpapi

import "net/http"

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.teamService.ListTeams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeamOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamOverview")
	defer span.End()

	teamID, err := parsePathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	overview, err := h.teamService.Overview(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "team overview failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamOverviewDTO{
		TeamID:           overview.TeamID,
		Name:             overview.Name,
		Logo:             overview.Logo,
		Matches:          overview.Matches,
		Wins:             overview.Wins,
		GoalsScored:      overview.GoalsScored,
		GoalsConceded:    overview.GoalsConceded,
		AvgPossessionPct: overview.AvgPossessionPct,
		AvgPassPct:       overview.AvgPassPct,
		AvgShots:         overview.AvgShots,
		Corners:          overview.Corners,
	})
}

func (h *Handler) GetTeamGoalsByMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamGoalsByMatch")
	defer span.End()

	teamID, err := parsePathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	points, err := h.teamService.GoalsByMatch(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "team goals by match failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchGoalsDTO, 0, len(points))
	for _, p := range points {
		items = append(items, matchGoalsDTO{
			MatchNumber: p.MatchNumber,
			MatchID:     p.MatchID,
			GoalsScored: p.GoalsScored,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
