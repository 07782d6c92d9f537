package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/format"
	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/internalerr"
	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/store"
)

func sampleRun(id string) store.Run {
	return store.Run{
		ID:        id,
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Producer:  "pipeline",
		Seed:      7,
		Input:     "The park opens in spring.",
		Outputs: format.Outputs{
			Grade5Explanation: "The park opens in spring.",
			BulletSummary:     []string{"The park opens.", "Kids play.", "Key topics: park."},
		},
		Grade: 2.5,
	}
}

func TestSaveAndGetRun(t *testing.T) {
	ctx := context.Background()
	s := New()

	want := sampleRun("01A")
	if err := s.SaveRun(ctx, want); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	got, err := s.GetRun(ctx, "01A")
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Run mismatch (-want +got):\n%s", diff)
	}

	// mutating the returned copy must not leak into the store
	got.Outputs.BulletSummary[0] = "changed"
	again, _ := s.GetRun(ctx, "01A")
	if again.Outputs.BulletSummary[0] != "The park opens." {
		t.Error("Store returned a shared slice")
	}
}

func TestGetRunNotFound(t *testing.T) {
	_, err := New().GetRun(context.Background(), "missing")
	if !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestSaveRunRequiresID(t *testing.T) {
	err := New().SaveRun(context.Background(), store.Run{})
	if !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := New()
	ids := store.NewIDGenerator()

	var saved []string
	for i := 0; i < 5; i++ {
		id := ids.New()
		saved = append(saved, id)
		if err := s.SaveRun(ctx, sampleRun(id)); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	runs, err := s.ListRuns(ctx, 3)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	for i, r := range runs {
		if want := saved[len(saved)-1-i]; r.ID != want {
			t.Errorf("Position %d: got %s, want %s", i, r.ID, want)
		}
	}

	all, _ := s.ListRuns(ctx, 0)
	if len(all) != 5 {
		t.Errorf("Default limit should return all 5 runs, got %d", len(all))
	}
}
