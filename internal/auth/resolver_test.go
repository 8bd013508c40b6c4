package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lasville/giustizia/internal/ranks"
)

type stubResolver struct {
	calls    int
	profiles map[uuid.UUID]Profile
}

func (s *stubResolver) Resolve(_ context.Context, id uuid.UUID) (*Profile, error) {
	s.calls++
	if p, ok := s.profiles[id]; ok {
		return &p, nil
	}
	return nil, ErrProfileNotFound
}

func TestCachedResolverCachesWithinTTL(t *testing.T) {
	id := uuid.New()
	stub := &stubResolver{profiles: map[uuid.UUID]Profile{
		id: {ID: id, Username: "rossi", Level: 8, Function: ranks.FunctionRequirente},
	}}

	resolver := NewCachedResolver(stub, time.Minute)

	for range 3 {
		p, err := resolver.Resolve(context.Background(), id)
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if p.Username != "rossi" {
			t.Errorf("unexpected username: %s", p.Username)
		}
	}

	if stub.calls != 1 {
		t.Errorf("expected 1 inner call, got %d", stub.calls)
	}
}

func TestCachedResolverExpires(t *testing.T) {
	id := uuid.New()
	stub := &stubResolver{profiles: map[uuid.UUID]Profile{
		id: {ID: id, Level: 5},
	}}

	resolver := NewCachedResolver(stub, time.Minute)

	current := time.Now()
	resolver.now = func() time.Time { return current }

	if _, err := resolver.Resolve(context.Background(), id); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	current = current.Add(2 * time.Minute)

	if _, err := resolver.Resolve(context.Background(), id); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if stub.calls != 2 {
		t.Errorf("expected 2 inner calls after expiry, got %d", stub.calls)
	}
}

func TestCachedResolverInvalidate(t *testing.T) {
	id := uuid.New()
	stub := &stubResolver{profiles: map[uuid.UUID]Profile{
		id: {ID: id, Level: 5},
	}}

	resolver := NewCachedResolver(stub, time.Minute)

	if _, err := resolver.Resolve(context.Background(), id); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	resolver.Invalidate(id)

	if _, err := resolver.Resolve(context.Background(), id); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if stub.calls != 2 {
		t.Errorf("expected 2 inner calls after invalidation, got %d", stub.calls)
	}
}

func TestCachedResolverDoesNotCacheErrors(t *testing.T) {
	stub := &stubResolver{}
	resolver := NewCachedResolver(stub, time.Minute)

	id := uuid.New()
	for range 2 {
		if _, err := resolver.Resolve(context.Background(), id); err == nil {
			t.Fatal("expected resolve error")
		}
	}

	if stub.calls != 2 {
		t.Errorf("expected errors to bypass the cache, got %d calls", stub.calls)
	}
}
