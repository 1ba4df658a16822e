package drukarnia

import "time"

// ArticleComment is a top-level comment on an article. Comment holds the
// raw HTML fragment as sent by the API.
type ArticleComment struct {
	ID             HexID        `json:"_id"`
	Comment        string       `json:"comment"`
	Owner          *CommentUser `json:"owner"`
	Article        HexID        `json:"article"`
	HiddenByAuthor bool         `json:"hiddenByAuthor"`
	ReplyNum       int          `json:"replyNum"`
	LikesNum       int          `json:"likesNum"`
	CreatedAt      time.Time    `json:"createdAt"`
	IsLiked        bool         `json:"isLiked"`
	IsBlocked      bool         `json:"isBlocked"`
}

// ReplyComment is a reply in a comment thread.
type ReplyComment struct {
	ID               HexID       `json:"_id"`
	Comment          string      `json:"comment"`
	Owner            CommentUser `json:"owner"`
	Article          HexID       `json:"article"`
	HiddenByAuthor   bool        `json:"hiddenByAuthor"`
	ReplyNum         int         `json:"replyNum"`
	LikesNum         int         `json:"likesNum"`
	CreatedAt        time.Time   `json:"createdAt"`
	IsLiked          bool        `json:"isLiked"`
	IsBlocked        bool        `json:"isBlocked"`
	ReplyToComment   HexID       `json:"replyToComment"`
	ReplyToUser      HexID       `json:"replyToUser"`
	RootComment      HexID       `json:"rootComment"`
	RootCommentOwner HexID       `json:"rootCommentOwner"`
}
