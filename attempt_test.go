package machconf

import (
	"context"
	"errors"
	"testing"
)

func TestAttemptLogRecordsFailuresOnly(t *testing.T) {
	var log attemptLog
	files := LoadFunc(func(ctx context.Context, path string) error {
		if path == "machine.d/good" {
			return nil
		}
		return errors.New("boom")
	})

	if log.try(context.Background(), files, KindName, "bad", "machine.d/bad") {
		t.Fatal("expected failing candidate to report false")
	}
	if !log.try(context.Background(), files, KindName, "good", "machine.d/good") {
		t.Fatal("expected loadable candidate to report true")
	}
	if len(log.attempts) != 1 {
		t.Fatalf("expected one recorded attempt, got %d", len(log.attempts))
	}
	att := log.attempts[0]
	if att.Kind != KindName || att.Candidate != "bad" || att.Path != "machine.d/bad" {
		t.Fatalf("unexpected attempt %+v", att)
	}
	if att.Err == nil {
		t.Fatal("expected attempt to carry the load error")
	}
}

func TestAttemptLogPreservesOrder(t *testing.T) {
	var log attemptLog
	files := LoadFunc(func(ctx context.Context, path string) error {
		return errors.New("boom")
	})

	for _, candidate := range []string{"first", "second", "third"} {
		log.try(context.Background(), files, KindUser, candidate, "machine.d/"+candidate)
	}
	if len(log.attempts) != 3 {
		t.Fatalf("expected three attempts, got %d", len(log.attempts))
	}
	for i, want := range []string{"first", "second", "third"} {
		if log.attempts[i].Candidate != want {
			t.Fatalf("attempt %d: expected %q, got %q", i, want, log.attempts[i].Candidate)
		}
	}
}
