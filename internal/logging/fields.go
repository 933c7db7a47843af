package logging

import "log/slog"

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService     = "service"
	FieldVersion     = "version"
	FieldRequestID   = "request_id"
	FieldSessionID   = "session_id"
	FieldLineupID    = "lineup_id"
	FieldPath        = "path"
	FieldMethod      = "method"
	FieldStatusCode  = "status_code"
	FieldTeamCount   = "team_count"
	FieldPlayerCount = "player_count"
	FieldGoalkeepers = "goalkeepers"
	FieldSeed        = "seed"
	FieldSpread      = "skill_spread"
	FieldCount       = "count"
	FieldDurationMS  = "duration_ms"
)

// WithCommon appends service/version fields when provided.
func WithCommon(attrs []slog.Attr, service, version string) []slog.Attr {
	if service != "" {
		attrs = append(attrs, slog.String(FieldService, service))
	}
	if version != "" {
		attrs = append(attrs, slog.String(FieldVersion, version))
	}
	return attrs
}
