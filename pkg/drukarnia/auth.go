package drukarnia

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Dzuchun/drukarnia-go/pkg/request"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// authResponse is the login response envelope.
type authResponse struct {
	User AuthorizedUser `json:"user"`
}

// loginBody is the login request payload.
type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates against POST /api/users/login and returns an
// authorized client sharing this client's base URL and user agent.
// Returns ErrBadCredentials for a wrong email/password pair and
// ErrNoToken when the server sent no session cookie.
//
// Session-bound calls do not flow through the request executor: they
// need bodies and the token cookie, which entity requests never carry.
func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthClient, error) {
	logger := log.With().Str("component", "drukarnia-auth").Logger()
	logger.Debug().Str("email", creds.Email).Msg("Authenticating user")

	a := &AuthClient{
		httpClient: &http.Client{Timeout: c.cfg.Timeout},
		base:       c.exec.BaseURL(),
		userAgent:  c.cfg.UserAgent,
		logger:     logger,
	}

	body, err := json.Marshal(loginBody{Email: creds.Email, Password: creds.Password})
	if err != nil {
		return nil, fmt.Errorf("encode credentials: %w", err)
	}

	u := a.base.Clone()
	u.AppendSegments("api", "users", "login")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create login request: %w", err)
	}
	req.Header.Set("User-Agent", a.userAgent)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send login request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrBadCredentials
	}

	token, ok := extractToken(resp)
	if !ok {
		return nil, ErrNoToken
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read login response: %w", err)
	}
	auth, err := decodeJSON[authResponse](string(raw))
	if err != nil {
		return nil, err
	}

	a.token = token
	a.user = auth.User
	logger.Info().Str("username", auth.User.Username).Msg("Authenticated")
	return a, nil
}

// extractToken finds the session token cookie in the login response.
func extractToken(resp *http.Response) (string, bool) {
	for _, value := range resp.Header.Values("Set-Cookie") {
		if strings.HasPrefix(value, "token=") {
			// Keep only the token pair, not the cookie attributes.
			if i := strings.IndexByte(value, ';'); i >= 0 {
				value = value[:i]
			}
			return value, true
		}
	}
	return "", false
}

// AuthClient performs the operations that require a logged-in session.
// It carries the session token for its whole lifetime; call Logout to
// end the session server-side.
type AuthClient struct {
	httpClient *http.Client
	base       *request.BaseURL
	userAgent  string
	token      string
	user       AuthorizedUser
	logger     zerolog.Logger
}

// User returns the account this client is logged in as.
func (a *AuthClient) User() *AuthorizedUser {
	return &a.user
}

// send performs one authenticated call and snapshots the response.
func (a *AuthClient) send(ctx context.Context, method string, segments []string, jsonBody any) (request.ResponseParts, error) {
	u := a.base.Clone()
	u.AppendSegments(segments...)

	var bodyReader io.Reader
	contentType := "application/x-www-form-urlencoded"
	if jsonBody != nil {
		data, err := json.Marshal(jsonBody)
		if err != nil {
			return request.ResponseParts{}, fmt.Errorf("encode body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), bodyReader)
	if err != nil {
		return request.ResponseParts{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", a.userAgent)
	req.Header.Set("Cookie", a.token)
	req.Header.Set("Content-Type", contentType)

	a.logger.Debug().
		Str("endpoint", u.URL().Path).
		Str("method", method).
		Msg("Executing authenticated request")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return request.ResponseParts{}, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return request.ResponseParts{}, fmt.Errorf("read response body: %w", err)
	}
	return request.ResponseParts{StatusCode: resp.StatusCode, Body: string(raw)}, nil
}

// SetFollowing follows (true) or unfollows (false) a user.
func (a *AuthClient) SetFollowing(ctx context.Context, user HexID, follow bool) error {
	method := http.MethodPost
	wantStatus := http.StatusCreated
	if !follow {
		method = http.MethodDelete
		wantStatus = http.StatusOK
	}

	parts, err := a.send(ctx, method, []string{"api", "relationships", "subscribe", user.String()}, nil)
	if err != nil {
		return err
	}
	if parts.StatusCode != wantStatus {
		return fmt.Errorf("unexpected status %d setting following", parts.StatusCode)
	}
	return nil
}

// BookmarkLists retrieves the user's bookmark lists.
func (a *AuthClient) BookmarkLists(ctx context.Context) ([]FullList, error) {
	parts, err := a.send(ctx, http.MethodGet, []string{"api", "articles", "bookmarks", "lists"}, nil)
	if err != nil {
		return nil, err
	}
	return decodeJSON[[]FullList](parts.Body)
}

// BookmarkArticle adds an article to a bookmark list.
func (a *AuthClient) BookmarkArticle(ctx context.Context, list, article HexID) (*FullBookmark, error) {
	body := struct {
		Article HexID `json:"article"`
		List    HexID `json:"list"`
	}{Article: article, List: list}

	parts, err := a.send(ctx, http.MethodPost, []string{"api", "articles", "bookmarks"}, body)
	if err != nil {
		return nil, err
	}
	return decodeJSON[*FullBookmark](parts.Body)
}

// UnbookmarkArticle removes an article from whichever list holds it.
func (a *AuthClient) UnbookmarkArticle(ctx context.Context, article HexID) (*FullBookmark, error) {
	parts, err := a.send(ctx, http.MethodDelete, []string{"api", "articles", article.String(), "bookmarks"}, nil)
	if err != nil {
		return nil, err
	}
	return decodeJSON[*FullBookmark](parts.Body)
}

// ListArticles retrieves the articles of a bookmark list.
func (a *AuthClient) ListArticles(ctx context.Context, list HexID) ([]ListArticle, error) {
	parts, err := a.send(ctx, http.MethodGet, []string{"api", "articles", "bookmarks", "lists", list.String()}, nil)
	if err != nil {
		return nil, err
	}
	return decodeJSON[[]ListArticle](parts.Body)
}

// LikeArticle spends likes on an article.
func (a *AuthClient) LikeArticle(ctx context.Context, article HexID, likes int) error {
	body := struct {
		Likes int `json:"likes"`
	}{Likes: likes}

	_, err := a.send(ctx, http.MethodPost, []string{"api", "articles", article.String(), "like"}, body)
	return err
}

// SetCommentLiked likes (true) or unlikes (false) a comment.
func (a *AuthClient) SetCommentLiked(ctx context.Context, article, comment HexID, liked bool) error {
	method := http.MethodPost
	if !liked {
		method = http.MethodDelete
	}
	_, err := a.send(ctx, method, []string{"api", "articles", article.String(), "comments", comment.String(), "likes"}, nil)
	return err
}

// Logout ends the session server-side. The client must not be used
// afterwards.
func (a *AuthClient) Logout(ctx context.Context) error {
	_, err := a.send(ctx, http.MethodGet, []string{"api", "users", "logout"}, nil)
	return err
}
