package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

func makeTestClient(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	// spin up in-memory Redis
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run: %v", err)
	}
	t.Cleanup(mr.Close)
	// point the real client at it
	return redis.NewClient(&redis.Options{Addr: mr.Addr()}), mr
}

func makeTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	client, mr := makeTestClient(t)
	return NewCache(client), mr
}

func TestGetSetDeleteProjectDetails(t *testing.T) {
	c, mr := makeTestCache(t)
	ctx := context.Background()

	id := uuid.NewUUID()
	raw := []byte(`{"_id":"` + id.String() + `","title":"Poster"}`)
	validUntil := time.Now().Add(2 * time.Minute)

	// 1) Cache miss
	got, err := c.GetProjectDetails(ctx, id)
	if err != nil {
		t.Fatalf("GetProjectDetails miss: %v", err)
	}
	if got != nil {
		t.Errorf("GetProjectDetails miss: got %s; want nil", got)
	}

	// 2) Set + Get
	c.SetProjectDetails(ctx, id, raw, validUntil)
	c.SetEtagProjectDetails(ctx, id, `"abcd"`, validUntil)
	if ttl := mr.TTL(getCacheKey(id.String(), false)); ttl < time.Minute || ttl > 2*time.Minute+time.Second {
		t.Errorf("redis TTL = %v; want ~2m", ttl)
	}
	if ttl := mr.TTL(getCacheKey(id.String(), true)); ttl < time.Minute || ttl > 2*time.Minute+time.Second {
		t.Errorf("etag TTL = %v; want ~2m", ttl)
	}

	got, err = c.GetProjectDetails(ctx, id)
	if err != nil {
		t.Fatalf("GetProjectDetails hit: %v", err)
	}
	if string(got) != string(raw) {
		t.Errorf("GetProjectDetails hit = %s; want %s", got, raw)
	}
	etag, err := c.GetEtagProjectDetails(ctx, id)
	if err != nil || etag != `"abcd"` {
		t.Errorf("GetEtagProjectDetails = %q, %v", etag, err)
	}

	// 3) Delete + miss again
	if err := c.DeleteProjectDetails(ctx, id); err != nil {
		t.Fatalf("DeleteProjectDetails: %v", err)
	}
	if err := c.DeleteEtagProjectDetails(ctx, id); err != nil {
		t.Fatalf("DeleteEtagProjectDetails: %v", err)
	}
	if got, _ := c.GetProjectDetails(ctx, id); got != nil {
		t.Errorf("after delete, GetProjectDetails = %s; want nil", got)
	}
	if etag, _ := c.GetEtagProjectDetails(ctx, id); etag != "" {
		t.Errorf("after delete, etag = %q; want empty", etag)
	}
}

func TestGetProjectDetails_RedisError(t *testing.T) {
	c, mr := makeTestCache(t)
	ctx := context.Background()
	id := uuid.NewUUID()

	// Simulate Redis unreachable
	mr.Close()

	got, err := c.GetProjectDetails(ctx, id)
	if got != nil {
		t.Errorf("Expected nil on Redis error, got %v", got)
	}
	if err == nil || !strings.Contains(err.Error(), "redis get failed") {
		t.Errorf("Expected redis get failed error, got %v", err)
	}
	if _, err := c.GetEtagProjectDetails(ctx, id); err == nil || !strings.Contains(err.Error(), "redis get failed") {
		t.Errorf("expected redis get failed error, got %v", err)
	}
	if err := c.DeleteProjectDetails(ctx, id); err == nil || !strings.Contains(err.Error(), "redis del failed") {
		t.Errorf("Expected redis del failed error, got %v", err)
	}
	// writes are best effort
	c.SetProjectDetails(ctx, id, []byte("{}"), time.Now().Add(time.Minute))
}

func TestGetCacheKey(t *testing.T) {
	id := uuid.NewUUID().String()
	if got := getCacheKey(id, true); got != "project:"+id+":etag" {
		t.Errorf("getCacheKey(true) = %q; want %q", got, "project:"+id+":etag")
	}
	if got := getCacheKey(id, false); got != "project:"+id {
		t.Errorf("getCacheKey() = %q; want %q", got, "project:"+id)
	}
}

func TestNoop(t *testing.T) {
	n := NewNoop()
	ctx := context.Background()
	id := uuid.NewUUID()
	n.SetProjectDetails(ctx, id, []byte("{}"), time.Now().Add(time.Hour))
	if got, err := n.GetProjectDetails(ctx, id); got != nil || err != nil {
		t.Errorf("noop cache must always miss, got %s, %v", got, err)
	}
	if ok, _, err := (NoopRateLimiter{}).Allow(ctx, "k"); !ok || err != nil {
		t.Error("noop limiter must allow")
	}
}
