package feeds

import (
	"slices"

	"chirp/config"
	"chirp/models"

	log "github.com/sirupsen/logrus"
)

func NewStore(opts ...Option) *Store {
	s := &Store{
		users:     make(map[int]*user),
		feedSize:  config.DefaultFeedSize,
		retention: config.DefaultRetention,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FromConfig creates a store with the limits from the TOML configuration.
// Options passed after the config take precedence.
func FromConfig(cfg *config.Config, opts ...Option) *Store {
	base := []Option{
		WithFeedSize(cfg.Feed.FeedSize),
		WithRetention(cfg.Feed.Retention),
	}
	return NewStore(append(base, opts...)...)
}

// getOrCreate returns the user record for id, creating it if needed
func (s *Store) getOrCreate(id int) *user {
	u, ok := s.users[id]
	if !ok {
		u = newUser(id)
		s.users[id] = u
		s.metrics.setUsers(len(s.users))
		log.WithField("user", id).Debug("Created user")
	}
	return u
}

// PostTweet adds a post to the front of the user's timeline and evicts the
// oldest posts beyond the retention limit.
func (s *Store) PostTweet(userID, contentID int) {
	u := s.getOrCreate(userID)

	s.seq++
	post := models.Post{ContentId: contentID, Seq: s.seq}

	u.posts = slices.Insert(u.posts, 0, post)
	evicted := 0
	if len(u.posts) > s.retention {
		evicted = len(u.posts) - s.retention
		u.posts = u.posts[:s.retention]
	}

	s.metrics.post(evicted)
	log.WithFields(log.Fields{
		"user":    userID,
		"content": contentID,
		"seq":     post.Seq,
		"evicted": evicted,
	}).Debug("Posted")
}

// Follow makes followerID see followeeID's posts. Both users are created if
// they do not exist yet. Following yourself is allowed and changes nothing.
func (s *Store) Follow(followerID, followeeID int) {
	follower := s.getOrCreate(followerID)
	s.getOrCreate(followeeID)

	added := follower.followed.Add(followeeID)
	s.metrics.follow()
	log.WithFields(log.Fields{
		"follower": followerID,
		"followee": followeeID,
		"new":      added,
	}).Debug("Followed")
}

// Unfollow removes followeeID from followerID's follow set when both users
// exist. A user may unfollow themselves, after which their own posts no
// longer appear in their feed.
func (s *Store) Unfollow(followerID, followeeID int) {
	follower, ok := s.users[followerID]
	if !ok {
		log.WithField("follower", followerID).Debug("Unfollow from unknown user ignored")
		return
	}
	if _, ok := s.users[followeeID]; !ok {
		log.WithField("followee", followeeID).Debug("Unfollow of unknown user ignored")
		return
	}

	if followerID == followeeID {
		log.WithField("user", followerID).Warn("User unfollowed themselves")
	}

	follower.followed.Remove(followeeID)
	s.metrics.unfollow()
	log.WithFields(log.Fields{
		"follower": followerID,
		"followee": followeeID,
	}).Debug("Unfollowed")
}

// GetNewsFeed returns the content ids of the most recent posts by the user
// and everyone they follow, newest first. Unknown users get an empty feed.
func (s *Store) GetNewsFeed(userID int) []int {
	u, ok := s.users[userID]
	if !ok {
		s.metrics.feed(0)
		return []int{}
	}

	sources := make([][]models.Post, 0, u.followed.Cardinality())
	for _, id := range u.followed.ToSlice() {
		if followee, ok := s.users[id]; ok && len(followee.posts) > 0 {
			sources = append(sources, followee.posts)
		}
	}

	feed := contentIds(mergeNewest(sources, s.feedSize))
	s.metrics.feed(len(feed))
	return feed
}

// Followees returns the ids userID follows in ascending order, including
// the user themselves unless they unfollowed themselves. Nil for unknown users.
func (s *Store) Followees(userID int) []int {
	u, ok := s.users[userID]
	if !ok {
		return nil
	}
	ids := u.followed.ToSlice()
	slices.Sort(ids)
	return ids
}

// Posts returns a copy of the retained posts of a user, newest first
func (s *Store) Posts(userID int) []models.Post {
	u, ok := s.users[userID]
	if !ok {
		return nil
	}
	return slices.Clone(u.posts)
}

func (s *Store) HasUser(userID int) bool {
	_, ok := s.users[userID]
	return ok
}

// Users returns the number of known users
func (s *Store) Users() int {
	return len(s.users)
}

// Sequence returns the last assigned sequence number, 0 before the first post
func (s *Store) Sequence() int64 {
	return s.seq
}
