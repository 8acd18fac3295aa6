package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/soccerstats/dashboard-api/internal/platform/logging"
	"github.com/soccerstats/dashboard-api/internal/usecase"
)

type Handler struct {
	leaderboards   usecase.Leaderboards
	matchService   *usecase.MatchService
	teamService    *usecase.TeamService
	summaryService *usecase.SummaryService
	defaultLimit   int
	logger         *logging.Logger
	validator      *validator.Validate
}

func NewHandler(
	leaderboards usecase.Leaderboards,
	matchService *usecase.MatchService,
	teamService *usecase.TeamService,
	summaryService *usecase.SummaryService,
	defaultLimit int,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if defaultLimit < 1 {
		defaultLimit = 5
	}

	return &Handler{
		leaderboards:   leaderboards,
		matchService:   matchService,
		teamService:    teamService,
		summaryService: summaryService,
		defaultLimit:   defaultLimit,
		logger:         logger,
		validator:      validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type limitQuery struct {
	Limit int `validate:"min=1,max=100"`
}

// limitFromQuery reads the optional ?limit= parameter, falling back to
// the configured default when absent.
func (h *Handler) limitFromQuery(ctx context.Context, r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("limit"))
	if raw == "" {
		return h.defaultLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid limit %q", usecase.ErrInvalidInput, raw)
	}
	if err := h.validateRequest(ctx, limitQuery{Limit: limit}); err != nil {
		return 0, err
	}

	return limit, nil
}

func parsePathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: invalid %s %q", usecase.ErrInvalidInput, name, raw)
	}

	return id, nil
}
