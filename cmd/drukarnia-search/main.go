// Command drukarnia-search streams Drukarnia article search results for
// a query and prints aggregate statistics over them.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Dzuchun/drukarnia-go/pkg/drukarnia"
	"github.com/Dzuchun/drukarnia-go/pkg/logging"
	"github.com/redis/go-redis/v9"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <search query>\n", os.Args[0])
		os.Exit(2)
	}
	query := os.Args[1]

	// Configuration from environment
	baseURL := getEnv("DRUKARNIA_URL", drukarnia.DefaultBaseURL)
	userAgent := getEnv("USER_AGENT", "drukarnia-search/0.2.0")
	redisURL := getEnv("REDIS_URL", "")
	maxArticles := getEnvInt("MAX_ARTICLES", 500)

	logger := logging.Setup(logging.Config{
		Level:  logging.LogLevel(getEnv("LOG_LEVEL", "warn")),
		Pretty: true,
		Output: os.Stderr,
	})

	cfg := drukarnia.DefaultConfig()
	cfg.BaseURL = baseURL
	cfg.UserAgent = userAgent

	// Optional entity cache
	if redisURL != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: redisURL})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warn().Err(err).Str("addr", redisURL).Msg("Redis unavailable, caching disabled")
		} else {
			cfg.Redis = redisClient
		}
		cancel()
	}

	client, err := drukarnia.New(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create client")
	}

	ctx := context.Background()

	var (
		totalArticles int
		totalLikes    int
		maxComments   int
		totalReads    int
	)

	articles := client.SearchArticles(query).Flatten()
	for article, err := range articles.Items(ctx) {
		if err != nil {
			logger.Error().Err(err).Msg("Search stream failed")
			break
		}

		totalArticles++
		totalLikes += article.LikeNum
		if article.CommentNum > maxComments {
			maxComments = article.CommentNum
		}
		totalReads += article.Owner.ReadNum

		if totalArticles >= maxArticles {
			break
		}
	}

	if totalArticles == 0 {
		fmt.Println("no articles found")
		return
	}

	fmt.Printf("%d articles processed\n", totalArticles)
	fmt.Printf("average like num: %.2f\n", float64(totalLikes)/float64(totalArticles))
	fmt.Printf("max comments: %d\n", maxComments)
	fmt.Printf("average author reads: %.2f\n", float64(totalReads)/float64(totalArticles))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
