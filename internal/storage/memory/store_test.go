package memory

import (
	"context"
	"errors"
	"testing"

	"audio-summarizer-pipeline/internal/storage"
)

func TestStore_PutGet(t *testing.T) {
	s := New()
	ctx := context.Background()

	if err := s.Put(ctx, "b", "transcription/job.json", []byte("payload")); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := s.Get(ctx, "b", "transcription/job.json")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "payload" {
		t.Errorf("got %q, want %q", got, "payload")
	}
}

func TestStore_GetMissing(t *testing.T) {
	s := New()

	_, err := s.Get(context.Background(), "b", "nope")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_BucketsAreDistinct(t *testing.T) {
	s := New()
	ctx := context.Background()

	if err := s.Put(ctx, "bucket-a", "k", []byte("a")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := s.Get(ctx, "bucket-b", "k"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound from the other bucket, got %v", err)
	}
}

func TestStore_GetReturnsCopy(t *testing.T) {
	s := New()
	ctx := context.Background()

	if err := s.Put(ctx, "b", "k", []byte("abc")); err != nil {
		t.Fatalf("put: %v", err)
	}
	first, _ := s.Get(ctx, "b", "k")
	first[0] = 'x'

	second, _ := s.Get(ctx, "b", "k")
	if string(second) != "abc" {
		t.Errorf("mutation of a returned body leaked into the store: %q", second)
	}
}

func TestStore_InjectedFailures(t *testing.T) {
	s := New()
	s.FailPut = true
	if err := s.Put(context.Background(), "b", "k", nil); err == nil {
		t.Error("expected injected put failure")
	}

	s = New()
	s.FailGet = true
	if _, err := s.Get(context.Background(), "b", "k"); err == nil {
		t.Error("expected injected get failure")
	}
}
