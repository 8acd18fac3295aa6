package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/soccerstats/dashboard-api/internal/config"
	"github.com/soccerstats/dashboard-api/internal/domain/match"
	"github.com/soccerstats/dashboard-api/internal/domain/player"
	"github.com/soccerstats/dashboard-api/internal/domain/playerstats"
	"github.com/soccerstats/dashboard-api/internal/domain/team"
	"github.com/soccerstats/dashboard-api/internal/domain/teamstats"
	"github.com/soccerstats/dashboard-api/internal/infrastructure/repository/memory"
	"github.com/soccerstats/dashboard-api/internal/infrastructure/repository/postgres"
	"github.com/soccerstats/dashboard-api/internal/interfaces/httpapi"
	"github.com/soccerstats/dashboard-api/internal/platform/cache"
	"github.com/soccerstats/dashboard-api/internal/platform/logging"
	"github.com/soccerstats/dashboard-api/internal/usecase"
)

type repositories struct {
	matches     match.Repository
	teams       team.Repository
	players     player.Repository
	teamStats   teamstats.Repository
	playerStats playerstats.Repository
	close       func() error
}

func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	leaderboardSvc := usecase.NewLeaderboardService(
		repos.matches,
		repos.teams,
		repos.players,
		repos.teamStats,
		repos.playerStats,
	)

	var leaderboards usecase.Leaderboards = leaderboardSvc
	if cfg.CacheEnabled {
		leaderboards = usecase.NewCachedLeaderboards(leaderboardSvc, cache.NewStore(cfg.CacheTTL))
		logger.Info("leaderboard cache enabled", "ttl", cfg.CacheTTL.String())
	}

	matchSvc := usecase.NewMatchService(repos.matches, repos.teams, repos.teamStats, cfg.MatchListLimit)
	teamSvc := usecase.NewTeamService(repos.teams, repos.matches, repos.teamStats)
	if cfg.CacheEnabled {
		teamSvc = teamSvc.WithCache(cache.NewStore(cfg.TeamCacheTTL))
	}
	summarySvc := usecase.NewSummaryService(leaderboards)

	handler := httpapi.NewHandler(leaderboards, matchSvc, teamSvc, summarySvc, cfg.DefaultLeaderboardLimit, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, repos.close, nil
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		logger.Info("store driver", "driver", config.StoreDriverMemory)
		return repositories{
			matches:     memory.NewMatchRepository(memory.SeedMatches()),
			teams:       memory.NewTeamRepository(memory.SeedTeams()),
			players:     memory.NewPlayerRepository(memory.SeedPlayers()),
			teamStats:   memory.NewTeamStatsRepository(memory.SeedTeamStats()),
			playerStats: memory.NewPlayerStatsRepository(memory.SeedPlayerStats()),
			close:       func() error { return nil },
		}, nil
	case config.StoreDriverPostgres:
		db, err := openDB(ctx, cfg)
		if err != nil {
			return repositories{}, err
		}
		if err := postgres.BootstrapSeed(ctx, db); err != nil {
			_ = db.Close()
			return repositories{}, fmt.Errorf("bootstrap seed: %w", err)
		}
		logger.Info("store driver", "driver", config.StoreDriverPostgres, "database", dbNameFromURL(cfg.DBURL))

		return repositories{
			matches:     postgres.NewMatchRepository(db),
			teams:       postgres.NewTeamRepository(db),
			players:     postgres.NewPlayerRepository(db),
			teamStats:   postgres.NewTeamStatsRepository(db),
			playerStats: postgres.NewPlayerStatsRepository(db),
			close:       db.Close,
		}, nil
	default:
		return repositories{}, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
