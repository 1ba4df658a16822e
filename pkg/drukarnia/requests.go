package drukarnia

import (
	"net/http"
	"time"

	"github.com/Dzuchun/drukarnia-go/pkg/request"
)

// How long cached entity responses stay valid. Pages of search results
// are never cached.
const (
	popularTagsTTL = 10 * time.Minute
	entityTTL      = 5 * time.Minute
)

// popularTagsRequest queries GET /api/articles/tags/popular.
type popularTagsRequest struct{}

func (popularTagsRequest) Endpoint() []string {
	return []string{"api", "articles", "tags", "popular"}
}

func (popularTagsRequest) Method() string {
	return http.MethodGet
}

func (popularTagsRequest) QueryParams() []request.QueryParam {
	return nil
}

func (popularTagsRequest) DecodeResponse(parts request.ResponseParts) ([]PopularTag, error) {
	return decodeJSON[[]PopularTag](parts.Body)
}

func (popularTagsRequest) CacheTTL() time.Duration {
	return popularTagsTTL
}

// getUserRequest queries GET /api/users/profile/{username}.
type getUserRequest struct {
	username string
}

func (r getUserRequest) Endpoint() []string {
	return []string{"api", "users", "profile", r.username}
}

func (getUserRequest) Method() string {
	return http.MethodGet
}

func (getUserRequest) QueryParams() []request.QueryParam {
	return nil
}

func (getUserRequest) DecodeResponse(parts request.ResponseParts) (*FullUser, error) {
	if parts.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	return decodeJSON[*FullUser](parts.Body)
}

func (getUserRequest) CacheTTL() time.Duration {
	return entityTTL
}

// searchUsersRequest queries GET /api/users/info for one result page.
type searchUsersRequest struct {
	name string
	page request.PageIndex
}

func (searchUsersRequest) Endpoint() []string {
	return []string{"api", "users", "info"}
}

func (searchUsersRequest) Method() string {
	return http.MethodGet
}

func (r searchUsersRequest) QueryParams() []request.QueryParam {
	return []request.QueryParam{
		{Name: "name", Value: r.name},
		{Name: "page", Value: r.page.String()},
		{Name: "withRelationships", Value: "true"},
	}
}

func (searchUsersRequest) DecodeResponse(parts request.ResponseParts) ([]ShortUser, error) {
	return decodeJSON[[]ShortUser](parts.Body)
}

// getTagRequest queries GET /api/articles/tags/{slug}.
type getTagRequest struct {
	slug string
}

func (r getTagRequest) Endpoint() []string {
	return []string{"api", "articles", "tags", r.slug}
}

func (getTagRequest) Method() string {
	return http.MethodGet
}

func (getTagRequest) QueryParams() []request.QueryParam {
	// The server answers 404 without a page parameter.
	return []request.QueryParam{{Name: "page", Value: "1"}}
}

func (getTagRequest) DecodeResponse(parts request.ResponseParts) (*FullTag, error) {
	if parts.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	return decodeJSON[*FullTag](parts.Body)
}

func (getTagRequest) CacheTTL() time.Duration {
	return entityTTL
}

// getArticleRequest queries GET /api/articles/{slug}.
type getArticleRequest struct {
	slug string
}

func (r getArticleRequest) Endpoint() []string {
	return []string{"api", "articles", r.slug}
}

func (getArticleRequest) Method() string {
	return http.MethodGet
}

func (getArticleRequest) QueryParams() []request.QueryParam {
	return nil
}

func (getArticleRequest) DecodeResponse(parts request.ResponseParts) (*FullArticle, error) {
	if parts.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	return decodeJSON[*FullArticle](parts.Body)
}

func (getArticleRequest) CacheTTL() time.Duration {
	return entityTTL
}

// searchArticlesRequest queries GET /api/articles/search for one result
// page.
type searchArticlesRequest struct {
	title string
	page  request.PageIndex
}

func (searchArticlesRequest) Endpoint() []string {
	return []string{"api", "articles", "search"}
}

func (searchArticlesRequest) Method() string {
	return http.MethodGet
}

func (r searchArticlesRequest) QueryParams() []request.QueryParam {
	return []request.QueryParam{
		{Name: "name", Value: r.title},
		{Name: "page", Value: r.page.String()},
	}
}

func (searchArticlesRequest) DecodeResponse(parts request.ResponseParts) ([]RecommendedArticle, error) {
	return decodeJSON[[]RecommendedArticle](parts.Body)
}

// followersRequest queries GET /api/relationships/{id}/followers for one
// result page.
type followersRequest struct {
	user HexID
	page request.PageIndex
}

func (r followersRequest) Endpoint() []string {
	return []string{"api", "relationships", r.user.String(), "followers"}
}

func (followersRequest) Method() string {
	return http.MethodGet
}

func (r followersRequest) QueryParams() []request.QueryParam {
	return []request.QueryParam{{Name: "page", Value: r.page.String()}}
}

func (r followersRequest) DecodeResponse(parts request.ResponseParts) ([]FollowerUser, error) {
	if parts.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	return decodeJSON[[]FollowerUser](parts.Body)
}

// repliesRequest queries the replies of a comment. The article id
// segment is ignored by the server, so a zero id is sent.
type repliesRequest struct {
	comment HexID
}

func (r repliesRequest) Endpoint() []string {
	return []string{"api", "articles", "000000000000000000000000", "comments", r.comment.String(), "replies"}
}

func (repliesRequest) Method() string {
	return http.MethodGet
}

func (repliesRequest) QueryParams() []request.QueryParam {
	return nil
}

func (repliesRequest) DecodeResponse(parts request.ResponseParts) ([]ReplyComment, error) {
	// The server answers 401 for an unknown comment id.
	if parts.StatusCode == http.StatusUnauthorized {
		return nil, ErrNotFound
	}
	return decodeJSON[[]ReplyComment](parts.Body)
}

// feedRequest queries GET /api/preferences/feed for one result page.
type feedRequest struct {
	page request.PageIndex
}

func (feedRequest) Endpoint() []string {
	return []string{"api", "preferences", "feed"}
}

func (feedRequest) Method() string {
	return http.MethodGet
}

func (r feedRequest) QueryParams() []request.QueryParam {
	return []request.QueryParam{{Name: "page", Value: r.page.String()}}
}

func (feedRequest) DecodeResponse(parts request.ResponseParts) ([]FeedArticle, error) {
	return decodeJSON[[]FeedArticle](parts.Body)
}
