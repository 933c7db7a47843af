package lineups

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/pickup-teams-service/internal/balancer"
	domainlineups "github.com/preston-bernstein/pickup-teams-service/internal/domain/lineups"
	"github.com/preston-bernstein/pickup-teams-service/internal/logging"
	"github.com/preston-bernstein/pickup-teams-service/internal/metrics"
	"github.com/preston-bernstein/pickup-teams-service/internal/roster"
)

// Request asks for a roster to be split into TeamCount teams.
// A nil Seed draws a fresh one; the seed used is returned on the lineup.
type Request struct {
	Roster    string
	TeamCount int
	Seed      *uint64
}

// Service validates generation requests and runs the parser and balancer.
type Service struct {
	parser   roster.Parser
	recorder *metrics.Recorder
	logger   *slog.Logger
	maxTeams int

	now    func() time.Time
	seedFn func() uint64
	newID  func() string
}

// NewService constructs a Service. A nil parser uses the free-text grammar; maxTeams <= 0 means unbounded.
func NewService(parser roster.Parser, recorder *metrics.Recorder, logger *slog.Logger, maxTeams int) *Service {
	if parser == nil {
		parser = roster.FreeText{}
	}
	return &Service{
		parser:   parser,
		recorder: recorder,
		logger:   logger,
		maxTeams: maxTeams,
		now:      time.Now,
		seedFn:   rand.Uint64,
		newID:    uuid.NewString,
	}
}

// Generate parses the roster, checks there are enough players, and balances them into teams.
func (s *Service) Generate(ctx context.Context, req Request) (domainlineups.Lineup, error) {
	if err := ctx.Err(); err != nil {
		return domainlineups.Lineup{}, err
	}
	logger := logging.FromContext(ctx, s.logger)
	start := time.Now()

	if req.TeamCount < minTeams {
		return s.reject(logger, reasonTooFewTeams, ErrTooFewTeams)
	}
	if s.maxTeams > 0 && req.TeamCount > s.maxTeams {
		return s.reject(logger, reasonTooManyTeams, ErrTooManyTeams)
	}

	parsed := s.parser.Parse(req.Roster)
	if len(parsed) == 0 {
		return s.reject(logger, reasonEmptyRoster, ErrEmptyRoster)
	}
	if len(parsed) < req.TeamCount {
		return s.reject(logger, reasonTooFewPlayers, &InsufficientPlayersError{Players: len(parsed), Teams: req.TeamCount})
	}

	seed := s.seedFn()
	if req.Seed != nil {
		seed = *req.Seed
	}

	b := balancer.NewSeeded(seed)
	result := b.Balance(parsed, req.TeamCount)
	lineup := domainlineups.Lineup{
		ID:          s.newID(),
		Seed:        seed,
		GeneratedAt: s.now().UTC(),
		Roster:      parsed,
		Teams:       result.Teams,
		Colors:      result.Colors,
		SkillTotals: result.SkillTotals,
	}
	if m, ok := b.SuggestMatchup(req.TeamCount); ok {
		lineup.Matchup = &m
	}

	summary := roster.Stats(parsed)
	elapsed := time.Since(start)
	s.recorder.RecordGeneration(metrics.GenerationSample{
		TeamCount:   req.TeamCount,
		Players:     summary.Total,
		Goalkeepers: summary.Goalkeepers,
		Spread:      result.Spread(),
		Duration:    elapsed,
	})
	logging.Info(logger, "lineup generated",
		slog.String(logging.FieldLineupID, lineup.ID),
		slog.Int(logging.FieldTeamCount, req.TeamCount),
		slog.Int(logging.FieldPlayerCount, summary.Total),
		slog.Int(logging.FieldGoalkeepers, summary.Goalkeepers),
		slog.Int(logging.FieldSpread, result.Spread()),
		slog.Uint64(logging.FieldSeed, seed),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)

	return lineup, nil
}

func (s *Service) reject(logger *slog.Logger, reason string, err error) (domainlineups.Lineup, error) {
	s.recorder.RecordRejection(reason)
	logging.Warn(logger, "lineup rejected", slog.String("reason", reason), slog.Any("error", err))
	return domainlineups.Lineup{}, err
}
