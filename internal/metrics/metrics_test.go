package metrics

import (
	"testing"
	"time"
)

func TestRecorderTracksGenerations(t *testing.T) {
	rec := NewRecorder()
	rec.RecordGeneration(GenerationSample{TeamCount: 2, Players: 4, Spread: 8, Duration: 2 * time.Millisecond})
	rec.RecordGeneration(GenerationSample{TeamCount: 3, Players: 9, Spread: 1, Duration: 3 * time.Millisecond})

	if got := rec.Generations(); got != 2 {
		t.Fatalf("expected 2 generations, got %d", got)
	}

	snap := rec.Snapshot()
	if snap.PlayersBalanced != 13 {
		t.Fatalf("expected 13 players balanced, got %d", snap.PlayersBalanced)
	}
	if snap.LastSpread != 1 || snap.LastDuration != 3*time.Millisecond {
		t.Fatalf("unexpected last sample in snapshot %+v", snap)
	}
}

func TestRecorderTracksRejections(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRejection("too_few_players")
	rec.RecordRejection("too_few_players")
	rec.RecordRejection("too_few_teams")

	if got := rec.Rejections("too_few_players"); got != 2 {
		t.Fatalf("expected 2 rejections, got %d", got)
	}
	if got := rec.Rejections("too_few_teams"); got != 1 {
		t.Fatalf("expected 1 rejection, got %d", got)
	}
}

func TestRecorderSnapshotIsCopy(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRejection("empty_roster")

	snap := rec.Snapshot()
	snap.Rejections["empty_roster"] = 99

	if got := rec.Rejections("empty_roster"); got != 1 {
		t.Fatalf("expected recorder to be unaffected by snapshot mutation, got %d", got)
	}
}

func TestRecorderTracksSweeps(t *testing.T) {
	rec := NewRecorder()
	rec.RecordSweep(time.Millisecond, 3)
	rec.RecordSweep(time.Millisecond, 0)

	snap := rec.Snapshot()
	if snap.Sweeps != 2 || snap.SessionsExpired != 3 {
		t.Fatalf("unexpected sweep stats %+v", snap)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordGeneration(GenerationSample{})
	rec.RecordRejection("x")
	rec.RecordSweep(time.Second, 1)
	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	if rec.Generations() != 0 || rec.Rejections("x") != 0 {
		t.Fatalf("expected zero values from nil recorder")
	}
}
