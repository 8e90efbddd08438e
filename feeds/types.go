// Package feeds provides an in-memory social feed: users post content, follow
// each other and read a merged news feed of the most recent posts.
package feeds

import (
	"chirp/models"

	mapset "github.com/deckarep/golang-set/v2"
)

// FeedStore is the public surface shared by Store and SyncStore
type FeedStore interface {
	PostTweet(userID, contentID int)
	Follow(followerID, followeeID int)
	Unfollow(followerID, followeeID int)
	GetNewsFeed(userID int) []int
}

// user is created on first reference and never removed
type user struct {
	followed mapset.Set[int]
	posts    []models.Post // newest first, at most Store.retention entries
}

func newUser(id int) *user {
	// A user always follows themselves so their own posts show up in their feed
	return &user{
		followed: mapset.NewThreadUnsafeSet(id),
	}
}

// Store owns every user record and the sequence counter. It is not safe for
// concurrent use; wrap it in a SyncStore for that.
type Store struct {
	users     map[int]*user
	seq       int64
	feedSize  int
	retention int
	metrics   *Metrics
}

type Option func(*Store)

// WithFeedSize sets how many content ids GetNewsFeed returns at most
func WithFeedSize(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.feedSize = n
		}
	}
}

// WithRetention sets how many posts are kept per user
func WithRetention(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.retention = n
		}
	}
}

func WithMetrics(m *Metrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

var _ FeedStore = (*Store)(nil)
var _ FeedStore = (*SyncStore)(nil)
