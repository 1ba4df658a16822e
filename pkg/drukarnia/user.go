package drukarnia

import "time"

// ShortUser is a user as returned by user search.
type ShortUser struct {
	ID            HexID          `json:"_id"`
	Username      string         `json:"username"`
	Name          string         `json:"name"`
	Avatar        *MaybeURL      `json:"avatar"`
	Relationships *Relationships `json:"relationships"`
}

// CommentUser is the author attached to a comment.
type CommentUser struct {
	ID       HexID     `json:"_id"`
	Username string    `json:"username"`
	Name     string    `json:"name"`
	Avatar   *MaybeURL `json:"avatar"`
}

// FollowerUser is a user as returned by follower listings. The API
// sometimes omits the id and names for deleted accounts.
type FollowerUser struct {
	ID               *HexID         `json:"_id"`
	Username         *string        `json:"username"`
	Name             *string        `json:"name"`
	Avatar           *MaybeURL      `json:"avatar"`
	ShortDescription *string        `json:"descriptionShort"`
	Relationships    *Relationships `json:"relationships"`
}

// ArticleUser is the author record embedded in article responses.
type ArticleUser struct {
	ID               HexID     `json:"_id"`
	Name             string    `json:"name"`
	Username         string    `json:"username"`
	Avatar           *MaybeURL `json:"avatar"`
	ShortDescription *string   `json:"descriptionShort"`
	FollowingNum     int       `json:"followingNum"`
	FollowersNum     int       `json:"followersNum"`
	ReadNum          int       `json:"readNum"`
	CreatedAt        time.Time `json:"createdAt"`
	Socials          Socials   `json:"socials"`
	DonateURL        *MaybeURL `json:"donateUrl"`
}

// FullUser is a complete user profile.
type FullUser struct {
	ID               HexID           `json:"_id"`
	Name             string          `json:"name"`
	Username         string          `json:"username"`
	Avatar           *MaybeURL       `json:"avatar"`
	ShortDescription *string         `json:"descriptionShort"`
	Description      *string         `json:"description"`
	FollowingNum     int             `json:"followingNum"`
	FollowersNum     int             `json:"followersNum"`
	ReadNum          int             `json:"readNum"`
	AuthorTags       []UserTag       `json:"authorTags"`
	CreatedAt        time.Time       `json:"createdAt"`
	Socials          Socials         `json:"socials"`
	DonateURL        *MaybeURL       `json:"donateUrl"`
	Relationships    *Relationships  `json:"relationships"`
	Articles         []SearchArticle `json:"articles"`
}

// AuthorizedUser is the caller's own account, returned on login.
type AuthorizedUser struct {
	ID               HexID      `json:"_id"`
	Username         string     `json:"username"`
	Avatar           *MaybeURL  `json:"avatar"`
	ShortDescription *string    `json:"descriptionShort"`
	Description      *string    `json:"description"`
	FollowingNum     int        `json:"followingNum"`
	FollowersNum     int        `json:"followersNum"`
	Email            string     `json:"email"`
	ReadNum          int        `json:"readNum"`
	FirstPublishedAt *time.Time `json:"firstPublishedAt"`
	AuthorTags       []UserTag  `json:"authorTags"`
	NotificationsNum int        `json:"notificationsNum"`
	Socials          Socials    `json:"socials"`
}
