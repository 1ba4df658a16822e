package drukarnia

import "time"

// PopularTag is a tag as returned by the popular-tags listing.
type PopularTag struct {
	ID          HexID  `json:"_id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	MentionsNum int    `json:"mentionsNum"`
}

// UserTag is the short tag record attached to user profiles.
type UserTag struct {
	ID   HexID  `json:"_id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ArticleTag is the tag record embedded in full article responses.
type ArticleTag struct {
	ID          HexID     `json:"_id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	CreatedAt   time.Time `json:"createdAt"`
	Default     bool      `json:"default"`
	Ignore      bool      `json:"ignore"`
	MentionsNum int       `json:"mentionsNum"`
}

// FullTag is a complete tag profile, including the articles tagged with
// it.
type FullTag struct {
	ID            HexID          `json:"_id"`
	Name          string         `json:"name"`
	Slug          string         `json:"slug"`
	MentionsNum   int            `json:"mentionsNum"`
	Relationships *Relationships `json:"relationships"`
	Articles      []TagArticle   `json:"articles"`
}
