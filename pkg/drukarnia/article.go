package drukarnia

import (
	"encoding/json"
	"time"
)

// SearchArticle is an article as embedded in user profiles and search
// responses.
type SearchArticle struct {
	ID           HexID      `json:"_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Slug         string     `json:"slug"`
	Owner        HexID      `json:"owner"`
	ThumbPicture *MaybeURL  `json:"thumbPicture"`
	Picture      *MaybeURL  `json:"picture"`
	MainTag      string     `json:"mainTag"`
	MainTagID    HexID      `json:"mainTagId"`
	MainTagSlug  string     `json:"mainTagSlug"`
	ReadTime     Seconds    `json:"readTime"`
	Canonical    *string    `json:"canonical"`
	CreatedAt    time.Time  `json:"createdAt"`
	IsBookmarked bool       `json:"isBookmarked"`
}

// RecommendedArticle is an article as returned by article search and the
// recommendation block of a full article.
type RecommendedArticle struct {
	ID           HexID       `json:"_id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Slug         string      `json:"slug"`
	MainTag      string      `json:"mainTag"`
	MainTagSlug  string      `json:"mainTagSlug"`
	MainTagID    HexID       `json:"mainTagId"`
	Tags         []HexID     `json:"tags"`
	Sensitive    bool        `json:"sensitive"`
	Canonical    *string     `json:"canonical"`
	LikeNum      int         `json:"likeNum"`
	CommentNum   int         `json:"commentNum"`
	ReadTime     Seconds     `json:"readTime"`
	CreatedAt    time.Time   `json:"createdAt"`
	ThumbPicture *MaybeURL   `json:"thumbPicture"`
	Owner        ArticleUser `json:"owner"`
	IsBookmarked bool        `json:"isBookmarked"`
}

// TagArticle is an article as embedded in a full tag profile.
type TagArticle struct {
	ID            HexID          `json:"_id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Slug          string         `json:"slug"`
	ThumbPicture  *MaybeURL      `json:"thumbPicture"`
	MainTag       string         `json:"mainTag"`
	MainTagSlug   string         `json:"mainTagSlug"`
	MainTagID     HexID          `json:"mainTagId"`
	Tags          []HexID        `json:"tags"`
	Sensitive     bool           `json:"sensitive"`
	Canonical     *string        `json:"canonical"`
	LikeNum       int            `json:"likeNum"`
	CommentNum    int            `json:"commentNum"`
	ReadTime      Seconds        `json:"readTime"`
	Owner         ArticleUser    `json:"owner"`
	IsBookmarked  bool           `json:"isBookmarked"`
	CreatedAt     time.Time      `json:"createdAt"`
	Relationships *Relationships `json:"relationships"`
}

// FeedArticle is an article as returned by the personal feed.
type FeedArticle struct {
	ID           HexID       `json:"_id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Slug         string      `json:"slug"`
	ThumbPicture *MaybeURL   `json:"thumbPicture"`
	MainTag      string      `json:"mainTag"`
	MainTagID    HexID       `json:"mainTagId"`
	MainTagSlug  string      `json:"mainTagSlug"`
	Tags         []UserTag   `json:"tags"`
	Sensitive    bool        `json:"sensitive"`
	LikeNum      int         `json:"likeNum"`
	CommentNum   int         `json:"commentNum"`
	ReadTime     Seconds     `json:"readTime"`
	CreatedAt    time.Time   `json:"createdAt"`
	IsBookmarked bool        `json:"isBookmarked"`
	Owner        CommentUser `json:"owner"`
}

// ListArticle is an article as returned by bookmark list contents.
type ListArticle struct {
	ID           HexID     `json:"_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Slug         string    `json:"slug"`
	MainTag      string    `json:"mainTag"`
	MainTagSlug  string    `json:"mainTagSlug"`
	MainTagID    HexID     `json:"mainTagId"`
	ReadTime     Seconds   `json:"readTime"`
	CreatedAt    time.Time `json:"createdAt"`
	IsBookmarked bool      `json:"isBookmarked"`
}

// FullArticle is a complete article, content included. Content keeps the
// raw JSON document; its structure is editor-defined and not stable
// enough to type.
type FullArticle struct {
	ID            HexID                `json:"_id"`
	Title         string               `json:"title"`
	SeoTitle      string               `json:"seoTitle"`
	Description   string               `json:"description"`
	Slug          string               `json:"slug"`
	Picture       *MaybeURL            `json:"picture"`
	ThumbPicture  *MaybeURL            `json:"thumbPicture"`
	MainTag       string               `json:"mainTag"`
	MainTagID     HexID                `json:"mainTagId"`
	MainTagSlug   string               `json:"mainTagSlug"`
	Tags          []ArticleTag         `json:"tags"`
	Ads           *bool                `json:"ads"`
	Index         *bool                `json:"index"`
	Sensitive     bool                 `json:"sensitive"`
	Canonical     *string              `json:"canonical"`
	LikeNum       int                  `json:"likeNum"`
	CommentNum    int                  `json:"commentNum"`
	IsLiked       NumberFlag           `json:"isLiked"`
	ReadTime      Seconds              `json:"readTime"`
	CreatedAt     time.Time            `json:"createdAt"`
	IsBookmarked  bool                 `json:"isBookmarked"`
	Owner         ArticleUser          `json:"owner"`
	Relationships *Relationships       `json:"relationships"`
	Authors       []SearchArticle      `json:"authorArticles"`
	Recommended   []RecommendedArticle `json:"recommendedArticles"`
	Comments      []ArticleComment     `json:"comments"`
	Content       json.RawMessage      `json:"content"`
}
