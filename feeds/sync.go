package feeds

import (
	"sync"

	"chirp/models"
)

// SyncStore guards a Store with a read/write lock so it can be shared between
// goroutines. Every public call holds the lock for its whole duration, which
// also serializes sequence number assignment.
type SyncStore struct {
	sync.RWMutex
	store *Store
}

func NewSyncStore(store *Store) *SyncStore {
	return &SyncStore{store: store}
}

func (s *SyncStore) PostTweet(userID, contentID int) {
	s.Lock()
	defer s.Unlock()
	s.store.PostTweet(userID, contentID)
}

func (s *SyncStore) Follow(followerID, followeeID int) {
	s.Lock()
	defer s.Unlock()
	s.store.Follow(followerID, followeeID)
}

func (s *SyncStore) Unfollow(followerID, followeeID int) {
	s.Lock()
	defer s.Unlock()
	s.store.Unfollow(followerID, followeeID)
}

// GetNewsFeed only reads user records, so concurrent readers share the lock.
// The metrics collectors are safe for concurrent use on their own.
func (s *SyncStore) GetNewsFeed(userID int) []int {
	s.RLock()
	defer s.RUnlock()
	return s.store.GetNewsFeed(userID)
}

func (s *SyncStore) Followees(userID int) []int {
	s.RLock()
	defer s.RUnlock()
	return s.store.Followees(userID)
}

func (s *SyncStore) Posts(userID int) []models.Post {
	s.RLock()
	defer s.RUnlock()
	return s.store.Posts(userID)
}

func (s *SyncStore) HasUser(userID int) bool {
	s.RLock()
	defer s.RUnlock()
	return s.store.HasUser(userID)
}

func (s *SyncStore) Users() int {
	s.RLock()
	defer s.RUnlock()
	return s.store.Users()
}

func (s *SyncStore) Sequence() int64 {
	s.RLock()
	defer s.RUnlock()
	return s.store.Sequence()
}
