// Package integration contains full-stack tests: real client, mock API
// server, containerized Redis for the entity cache.
package integration

import (
	"context"
	"testing"
	"time"

	"github.com/Dzuchun/drukarnia-go/internal/testutil"
	"github.com/Dzuchun/drukarnia-go/pkg/drukarnia"
	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupRedis creates a Redis container for integration testing.
func setupRedis(t *testing.T) (*redis.Client, func()) {
	t.Helper()

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("Failed to start Redis container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := container.MappedPort(ctx, "6379")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr: host + ":" + port.Port(),
	})

	cleanup := func() {
		redisClient.Close()
		container.Terminate(ctx)
	}

	return redisClient, cleanup
}

func newClient(t *testing.T, mock *testutil.MockDrukarnia, redisClient *redis.Client) *drukarnia.Client {
	t.Helper()

	client, err := drukarnia.New(drukarnia.Config{
		BaseURL:   mock.URL(),
		UserAgent: "drukarnia-go-integration/1.0",
		Timeout:   5 * time.Second,
		Redis:     redisClient,
	})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return client
}

// TestEntityCacheFlow tests the complete cached entity flow: the first
// call hits the API and fills the cache, the second is served without
// touching the API.
func TestEntityCacheFlow(t *testing.T) {
	redisClient, cleanup := setupRedis(t)
	defer cleanup()

	mock := testutil.NewMockDrukarnia()
	defer mock.Close()
	mock.SetJSONResponse("/api/articles/tags/popular", []map[string]any{
		{"_id": "000000000000000000000001", "name": "Культура", "slug": "kultura", "mentionsNum": 120},
	})

	client := newClient(t, mock, redisClient)
	ctx := context.Background()

	first, err := client.PopularTags(ctx)
	if err != nil {
		t.Fatalf("First request failed: %v", err)
	}
	if len(first) != 1 || first[0].Slug != "kultura" {
		t.Fatalf("First response = %+v", first)
	}
	if got := mock.GetRequestCount(); got != 1 {
		t.Fatalf("Request count after first call = %d, want 1", got)
	}

	second, err := client.PopularTags(ctx)
	if err != nil {
		t.Fatalf("Second request failed: %v", err)
	}
	if len(second) != 1 || second[0].Slug != first[0].Slug {
		t.Fatalf("Second response = %+v", second)
	}
	if got := mock.GetRequestCount(); got != 1 {
		t.Errorf("Request count after cached call = %d, want 1 (served from cache)", got)
	}
}

// TestPaginatedRequestsBypassCache verifies that result pages are
// fetched fresh every time even with the cache enabled.
func TestPaginatedRequestsBypassCache(t *testing.T) {
	redisClient, cleanup := setupRedis(t)
	defer cleanup()

	mock := testutil.NewMockDrukarnia()
	defer mock.Close()
	mock.SetPagedResponse("/api/articles/search", [][]any{
		{map[string]any{"_id": "000000000000000000000010", "title": "Перша", "slug": "persha"}},
	})

	client := newClient(t, mock, redisClient)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		articles, err := client.SearchArticlesPage(ctx, "козаки", 1)
		if err != nil {
			t.Fatalf("Search %d failed: %v", i+1, err)
		}
		if len(articles) != 1 {
			t.Fatalf("Search %d returned %d articles, want 1", i+1, len(articles))
		}
	}

	// Both identical page requests reached the API.
	if got := mock.GetRequestCount(); got != 2 {
		t.Errorf("Request count = %d, want 2 (pages are never cached)", got)
	}
}

// TestStreamAgainstMockAPI walks a multi-page search end to end.
func TestStreamAgainstMockAPI(t *testing.T) {
	redisClient, cleanup := setupRedis(t)
	defer cleanup()

	mock := testutil.NewMockDrukarnia()
	defer mock.Close()
	mock.SetPagedResponse("/api/articles/search", [][]any{
		{
			map[string]any{"_id": "000000000000000000000010", "title": "Перша", "slug": "persha"},
			map[string]any{"_id": "000000000000000000000011", "title": "Друга", "slug": "druha"},
		},
		{
			map[string]any{"_id": "000000000000000000000012", "title": "Третя", "slug": "tretya"},
		},
	})

	client := newClient(t, mock, redisClient)

	var titles []string
	for article, err := range client.SearchArticles("козаки").Flatten().Items(context.Background()) {
		if err != nil {
			t.Fatalf("Stream failed: %v", err)
		}
		titles = append(titles, article.Title)
	}

	want := []string{"Перша", "Друга", "Третя"}
	if len(titles) != len(want) {
		t.Fatalf("Stream yielded %v, want %v", titles, want)
	}
	for i := range want {
		if titles[i] != want[i] {
			t.Errorf("Item %d = %q, want %q", i, titles[i], want[i])
		}
	}
}

// TestCacheExpiry verifies that a dropped entity entry falls back to
// the API.
func TestCacheExpiry(t *testing.T) {
	redisClient, cleanup := setupRedis(t)
	defer cleanup()

	mock := testutil.NewMockDrukarnia()
	defer mock.Close()
	mock.SetJSONResponse("/api/articles/tags/popular", []map[string]any{
		{"_id": "000000000000000000000001", "name": "Культура", "slug": "kultura", "mentionsNum": 120},
	})

	client := newClient(t, mock, redisClient)
	ctx := context.Background()

	if _, err := client.PopularTags(ctx); err != nil {
		t.Fatalf("First request failed: %v", err)
	}

	// Drop the cached entries to simulate TTL expiry.
	if err := redisClient.FlushAll(ctx).Err(); err != nil {
		t.Fatalf("Failed to flush Redis: %v", err)
	}

	if _, err := client.PopularTags(ctx); err != nil {
		t.Fatalf("Second request failed: %v", err)
	}
	if got := mock.GetRequestCount(); got != 2 {
		t.Errorf("Request count = %d, want 2 after expiry", got)
	}
}
