package drukarnia

import "time"

// FullBookmark is a single bookmarked article within a list.
type FullBookmark struct {
	ID        HexID     `json:"_id"`
	Article   HexID     `json:"article"`
	Owner     HexID     `json:"owner"`
	List      HexID     `json:"list"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// FullList is a bookmark list owned by the authorized user.
type FullList struct {
	ID          HexID  `json:"_id"`
	Name        string `json:"name"`
	ArticlesNum int    `json:"articlesNum"`
	Owner       HexID  `json:"owner"`
}
