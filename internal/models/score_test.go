package models

import "testing"

func TestScore_ScoreMap_AbsentIsZero(t *testing.T) {
	score := &Score{SessionKey: 42, Scores: `{"x": 2}`}

	scores, err := score.ScoreMap()
	if err != nil {
		t.Fatalf("ScoreMap() error = %v", err)
	}

	// An absent username reads as zero, so a bare increment is safe.
	if scores["y"] != 0 {
		t.Errorf(`scores["y"] = %d, want 0 for absent entry`, scores["y"])
	}

	scores["y"]++
	if scores["y"] != 1 {
		t.Errorf(`scores["y"] after increment = %d, want 1`, scores["y"])
	}
}

func TestScore_ScoreMap_EmptyColumn(t *testing.T) {
	score := &Score{SessionKey: 42}

	scores, err := score.ScoreMap()
	if err != nil {
		t.Fatalf("ScoreMap() error = %v", err)
	}
	if scores == nil {
		t.Fatal("ScoreMap() returned nil map")
	}
	if len(scores) != 0 {
		t.Errorf("ScoreMap() on empty column = %v, want empty", scores)
	}
}

func TestScore_SetScoreMapRoundTrip(t *testing.T) {
	score := &Score{SessionKey: 42}

	if err := score.SetScoreMap(map[string]int64{"x": 3, "y": 1}); err != nil {
		t.Fatalf("SetScoreMap() error = %v", err)
	}

	scores, err := score.ScoreMap()
	if err != nil {
		t.Fatalf("ScoreMap() error = %v", err)
	}
	if scores["x"] != 3 || scores["y"] != 1 {
		t.Errorf("round trip = %v, want x:3 y:1", scores)
	}
}

func TestScore_BeforeSave_RejectsMalformedScores(t *testing.T) {
	score := &Score{SessionKey: 42, Scores: "[1,2]"}

	if err := score.BeforeSave(nil); err == nil {
		t.Error("BeforeSave() expected error for non-object scores, got nil")
	}
}
