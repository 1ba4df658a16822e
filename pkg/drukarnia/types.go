// Package drukarnia is a client library for the Drukarnia publishing
// platform API (https://drukarnia.com.ua). It provides typed records for
// the API's entities and a Client exposing every supported operation;
// paginated operations are available both page-wise and as flattened
// item streams.
package drukarnia

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"time"
)

// HexID is a 12-byte object id rendered as 24 lowercase hex characters,
// the way the API represents `_id` fields.
type HexID string

// UnmarshalJSON validates the hex form on decode.
func (id *HexID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if len(s) != 24 {
		return fmt.Errorf("object id %q: want 24 hex characters, got %d", s, len(s))
	}
	if _, err := hex.DecodeString(s); err != nil {
		return fmt.Errorf("object id %q: %w", s, err)
	}
	*id = HexID(s)
	return nil
}

// String returns the hex form.
func (id HexID) String() string {
	return string(id)
}

// MaybeURL is a URL that may not parse. Users can put invalid links in
// their profiles, so a bad value keeps the raw string instead of failing
// the whole record.
type MaybeURL struct {
	// URL is the parsed link, nil when parsing failed.
	URL *url.URL

	// Raw is the original string as received.
	Raw string
}

// UnmarshalJSON accepts any string, parsing it as a URL when possible.
func (m *MaybeURL) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	m.Raw = s
	if u, err := url.Parse(s); err == nil && u.Scheme != "" {
		m.URL = u
	}
	return nil
}

// Valid reports whether the link parsed as a URL.
func (m *MaybeURL) Valid() bool {
	return m.URL != nil
}

// Relationships is the caller's attitude to some object (another user,
// tag, article).
type Relationships struct {
	IsSubscribed bool `json:"isSubscribed"`
	IsBlocked    bool `json:"isBlocked"`
}

// Seconds decodes an integer second count into a duration. The API uses
// it for article read times.
type Seconds time.Duration

// UnmarshalJSON decodes a number of seconds.
func (s *Seconds) UnmarshalJSON(data []byte) error {
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = Seconds(time.Duration(n) * time.Second)
	return nil
}

// Duration returns the value as a time.Duration.
func (s Seconds) Duration() time.Duration {
	return time.Duration(s)
}

// NumberFlag decodes the API's numeric booleans (`isLiked` is a count on
// the wire) into a flag.
type NumberFlag bool

// UnmarshalJSON treats any positive number as true.
func (f *NumberFlag) UnmarshalJSON(data []byte) error {
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = n > 0
	return nil
}

// Socials maps social network names to user-supplied profile links.
type Socials map[string]MaybeURL

// Credentials carries the email/password pair used by Login.
type Credentials struct {
	Email    string
	Password string
}
