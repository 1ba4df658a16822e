package drukarnia

import (
	"context"
	"fmt"
	"time"

	"github.com/Dzuchun/drukarnia-go/pkg/cache"
	"github.com/Dzuchun/drukarnia-go/pkg/executor"
	"github.com/Dzuchun/drukarnia-go/pkg/pagination"
	"github.com/Dzuchun/drukarnia-go/pkg/request"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the production Drukarnia API host.
const DefaultBaseURL = "https://drukarnia.com.ua/"

// defaultUserAgent identifies this library when the caller supplies none.
const defaultUserAgent = "drukarnia-go/0.2.0"

// Config holds the client configuration.
type Config struct {
	// BaseURL overrides the API host (default DefaultBaseURL).
	BaseURL string

	// UserAgent is sent with every request.
	UserAgent string

	// Timeout bounds a single network call.
	Timeout time.Duration

	// Redis enables the entity-response cache when set. Paginated
	// requests bypass the cache regardless.
	Redis *redis.Client
}

// DefaultConfig returns a safe default configuration.
func DefaultConfig() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		UserAgent: defaultUserAgent,
		Timeout:   30 * time.Second,
	}
}

// Client accesses the Drukarnia API. It is safe for concurrent use;
// every stream obtained from it owns its own pagination state.
type Client struct {
	exec   *executor.HTTPExecutor
	cfg    Config
	logger zerolog.Logger
}

// New creates a Drukarnia API client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}

	base, err := request.ParseBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("base url: %w", err)
	}

	execCfg := executor.Config{
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.Timeout,
	}
	if cfg.Redis != nil {
		execCfg.Cache = cache.NewStore(cfg.Redis)
	}

	exec, err := executor.New(base, execCfg)
	if err != nil {
		return nil, fmt.Errorf("create executor: %w", err)
	}

	return &Client{
		exec:   exec,
		cfg:    cfg,
		logger: log.With().Str("component", "drukarnia-client").Logger(),
	}, nil
}

// Executor exposes the underlying executor (for testing).
func (c *Client) Executor() *executor.HTTPExecutor {
	return c.exec
}

// PopularTags retrieves the currently popular tags.
func (c *Client) PopularTags(ctx context.Context) ([]PopularTag, error) {
	c.logger.Debug().Msg("Fetching popular tags")
	return executor.Send(ctx, c.exec, popularTagsRequest{})
}

// GetUser retrieves a user profile by username.
// Returns ErrNotFound when no such user exists.
func (c *Client) GetUser(ctx context.Context, username string) (*FullUser, error) {
	c.logger.Debug().Str("username", username).Msg("Loading user")
	return executor.Send(ctx, c.exec, getUserRequest{username: username})
}

// SearchUsersPage fetches one page of user search results.
func (c *Client) SearchUsersPage(ctx context.Context, name string, page request.PageIndex) ([]ShortUser, error) {
	c.logger.Debug().Str("name", name).Stringer("page", page).Msg("Searching users")
	return executor.Send(ctx, c.exec, searchUsersRequest{name: name, page: page})
}

// SearchUsers streams user search results page by page. The stream ends
// after the first error: past a failure there is no way to tell whether
// results had ended.
func (c *Client) SearchUsers(name string) *pagination.PageStream[ShortUser] {
	return pagination.NewPageStream(func(ctx context.Context, page request.PageIndex) ([]ShortUser, error) {
		return c.SearchUsersPage(ctx, name, page)
	})
}

// GetTag retrieves a tag profile by slug.
// Returns ErrNotFound when no such tag exists.
func (c *Client) GetTag(ctx context.Context, slug string) (*FullTag, error) {
	c.logger.Debug().Str("slug", slug).Msg("Loading tag")
	return executor.Send(ctx, c.exec, getTagRequest{slug: slug})
}

// GetArticle retrieves a full article by slug.
// Returns ErrNotFound when no such article exists.
func (c *Client) GetArticle(ctx context.Context, slug string) (*FullArticle, error) {
	c.logger.Debug().Str("slug", slug).Msg("Loading article")
	return executor.Send(ctx, c.exec, getArticleRequest{slug: slug})
}

// SearchArticlesPage fetches one page of article search results.
func (c *Client) SearchArticlesPage(ctx context.Context, title string, page request.PageIndex) ([]RecommendedArticle, error) {
	c.logger.Debug().Str("title", title).Stringer("page", page).Msg("Searching articles")
	return executor.Send(ctx, c.exec, searchArticlesRequest{title: title, page: page})
}

// SearchArticles streams article search results page by page.
func (c *Client) SearchArticles(title string) *pagination.PageStream[RecommendedArticle] {
	return pagination.NewPageStream(func(ctx context.Context, page request.PageIndex) ([]RecommendedArticle, error) {
		return c.SearchArticlesPage(ctx, title, page)
	})
}

// FollowersPage fetches one page of a user's followers.
func (c *Client) FollowersPage(ctx context.Context, user HexID, page request.PageIndex) ([]FollowerUser, error) {
	c.logger.Debug().Stringer("user", user).Stringer("page", page).Msg("Loading followers")
	return executor.Send(ctx, c.exec, followersRequest{user: user, page: page})
}

// Followers streams a user's followers page by page.
func (c *Client) Followers(user HexID) *pagination.PageStream[FollowerUser] {
	return pagination.NewPageStream(func(ctx context.Context, page request.PageIndex) ([]FollowerUser, error) {
		return c.FollowersPage(ctx, user, page)
	})
}

// GetReplies retrieves the replies of a comment.
// Returns ErrNotFound when no such comment exists.
func (c *Client) GetReplies(ctx context.Context, comment HexID) ([]ReplyComment, error) {
	c.logger.Debug().Stringer("comment", comment).Msg("Loading replies")
	return executor.Send(ctx, c.exec, repliesRequest{comment: comment})
}

// FeedPage fetches one page of the personal feed.
func (c *Client) FeedPage(ctx context.Context, page request.PageIndex) ([]FeedArticle, error) {
	c.logger.Debug().Stringer("page", page).Msg("Loading feed page")
	return executor.Send(ctx, c.exec, feedRequest{page: page})
}

// Feed streams the personal feed page by page.
func (c *Client) Feed() *pagination.PageStream[FeedArticle] {
	return pagination.NewPageStream(func(ctx context.Context, page request.PageIndex) ([]FeedArticle, error) {
		return c.FeedPage(ctx, page)
	})
}
