package feeds_test

import (
	"testing"

	"chirp/config"
	"chirp/feeds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetNewsFeed(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(s *feeds.Store)
		user     int
		expected []int
	}{
		{
			name:     "unknown user gets empty feed",
			setup:    func(s *feeds.Store) {},
			user:     1,
			expected: []int{},
		},
		{
			name: "user without posts gets empty feed",
			setup: func(s *feeds.Store) {
				s.Follow(1, 2)
			},
			user:     1,
			expected: []int{},
		},
		{
			name: "own posts newest first",
			setup: func(s *feeds.Store) {
				s.PostTweet(1, 5)
				s.PostTweet(1, 3)
			},
			user:     1,
			expected: []int{3, 5},
		},
		{
			name: "followed posts are merged by recency",
			setup: func(s *feeds.Store) {
				s.PostTweet(1, 5)
				s.Follow(1, 2)
				s.PostTweet(2, 6)
				s.PostTweet(1, 7)
			},
			user:     1,
			expected: []int{7, 6, 5},
		},
		{
			name: "unfollowed posts disappear",
			setup: func(s *feeds.Store) {
				s.PostTweet(1, 5)
				s.Follow(1, 2)
				s.PostTweet(2, 6)
				s.Unfollow(1, 2)
			},
			user:     1,
			expected: []int{5},
		},
		{
			name: "followee does not see follower",
			setup: func(s *feeds.Store) {
				s.PostTweet(1, 5)
				s.Follow(1, 2)
				s.PostTweet(2, 6)
			},
			user:     2,
			expected: []int{6},
		},
		{
			name: "self unfollow hides own posts",
			setup: func(s *feeds.Store) {
				s.PostTweet(1, 5)
				s.Follow(1, 2)
				s.PostTweet(2, 6)
				s.Unfollow(1, 1)
			},
			user:     1,
			expected: []int{6},
		},
		{
			name: "feed is capped at ten across followees",
			setup: func(s *feeds.Store) {
				s.Follow(1, 2)
				s.Follow(1, 3)
				for i := 0; i < 6; i++ {
					s.PostTweet(1, 100+i)
					s.PostTweet(2, 200+i)
					s.PostTweet(3, 300+i)
				}
			},
			user:     1,
			expected: []int{305, 205, 105, 304, 204, 104, 303, 203, 103, 302},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := feeds.NewStore()
			tt.setup(s)
			assert.Equal(t, tt.expected, s.GetNewsFeed(tt.user))
		})
	}
}

func TestOwnPostsTruncatedToTenMostRecent(t *testing.T) {
	s := feeds.NewStore()
	for i := 1; i <= 15; i++ {
		s.PostTweet(1, i)
	}

	assert.Equal(t, []int{15, 14, 13, 12, 11, 10, 9, 8, 7, 6}, s.GetNewsFeed(1))
	assert.Len(t, s.Posts(1), 10)
}

func TestRetentionEvictsOldestPosts(t *testing.T) {
	s := feeds.NewStore(feeds.WithRetention(3), feeds.WithFeedSize(10))
	s.Follow(1, 2)
	for i := 1; i <= 5; i++ {
		s.PostTweet(2, i)
	}
	s.PostTweet(1, 99)

	posts := s.Posts(2)
	require.Len(t, posts, 3)
	assert.Equal(t, 5, posts[0].ContentId)
	assert.Equal(t, 3, posts[2].ContentId)

	// Evicted posts do not come back through a followee's feed either
	assert.Equal(t, []int{99, 5, 4, 3}, s.GetNewsFeed(1))
}

func TestSelfFollowHoldsBeforeAnyFollow(t *testing.T) {
	s := feeds.NewStore()
	s.PostTweet(7, 1)

	assert.Equal(t, []int{7}, s.Followees(7))
	assert.Equal(t, []int{1}, s.GetNewsFeed(7))
}

func TestFollowCreatesBothUsers(t *testing.T) {
	s := feeds.NewStore()
	s.Follow(1, 2)

	assert.True(t, s.HasUser(1))
	assert.True(t, s.HasUser(2))
	assert.Equal(t, 2, s.Users())
	assert.Equal(t, []int{1, 2}, s.Followees(1))
	assert.Equal(t, []int{2}, s.Followees(2))
}

func TestFollowIsIdempotent(t *testing.T) {
	once := feeds.NewStore()
	once.Follow(1, 2)

	twice := feeds.NewStore()
	twice.Follow(1, 2)
	twice.Follow(1, 2)

	assert.Equal(t, once.Followees(1), twice.Followees(1))
}

func TestFollowSelfIsHarmless(t *testing.T) {
	s := feeds.NewStore()
	s.Follow(3, 3)
	s.PostTweet(3, 30)

	assert.Equal(t, []int{3}, s.Followees(3))
	assert.Equal(t, []int{30}, s.GetNewsFeed(3))
}

func TestUnfollowNoOps(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *feeds.Store)
		from  int
		to    int
		users int
	}{
		{
			name:  "both users unknown",
			setup: func(s *feeds.Store) {},
			from:  1,
			to:    2,
			users: 0,
		},
		{
			name:  "followee unknown",
			setup: func(s *feeds.Store) { s.PostTweet(1, 10) },
			from:  1,
			to:    2,
			users: 1,
		},
		{
			name:  "follower unknown",
			setup: func(s *feeds.Store) { s.PostTweet(2, 10) },
			from:  1,
			to:    2,
			users: 1,
		},
		{
			name: "never followed",
			setup: func(s *feeds.Store) {
				s.PostTweet(1, 10)
				s.PostTweet(2, 20)
			},
			from:  1,
			to:    2,
			users: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := feeds.NewStore()
			tt.setup(s)
			before := s.Followees(tt.from)

			assert.NotPanics(t, func() { s.Unfollow(tt.from, tt.to) })
			assert.Equal(t, before, s.Followees(tt.from))
			assert.Equal(t, tt.users, s.Users())
		})
	}
}

func TestSequenceIsStrictlyIncreasingAcrossUsers(t *testing.T) {
	s := feeds.NewStore()
	assert.Equal(t, int64(0), s.Sequence())

	s.PostTweet(2, 1)
	s.PostTweet(1, 2)
	s.PostTweet(2, 3)

	a := s.Posts(1)
	b := s.Posts(2)
	require.Len(t, a, 1)
	require.Len(t, b, 2)

	assert.Equal(t, int64(1), b[1].Seq)
	assert.Equal(t, int64(2), a[0].Seq)
	assert.Equal(t, int64(3), b[0].Seq)
	assert.True(t, a[0].Newer(b[1]))
	assert.Equal(t, int64(3), s.Sequence())
}

func TestGetNewsFeedDoesNotMutatePosts(t *testing.T) {
	s := feeds.NewStore()
	s.Follow(1, 2)
	for i := 0; i < 4; i++ {
		s.PostTweet(1, i)
		s.PostTweet(2, 10+i)
	}
	before1, before2 := s.Posts(1), s.Posts(2)

	first := s.GetNewsFeed(1)
	second := s.GetNewsFeed(1)

	assert.Equal(t, first, second)
	assert.Equal(t, before1, s.Posts(1))
	assert.Equal(t, before2, s.Posts(2))
}

func TestPostsReturnsCopy(t *testing.T) {
	s := feeds.NewStore()
	s.PostTweet(1, 10)

	posts := s.Posts(1)
	posts[0].ContentId = 99

	assert.Equal(t, []int{10}, s.GetNewsFeed(1))
	assert.Nil(t, s.Posts(42))
	assert.Nil(t, s.Followees(42))
}

func TestFromConfig(t *testing.T) {
	cfg, err := config.Parse([]byte("[feed]\nfeed_size = 2\nretention = 3\n"))
	require.NoError(t, err)

	s := feeds.FromConfig(cfg)
	for i := 1; i <= 5; i++ {
		s.PostTweet(1, i)
	}

	assert.Equal(t, []int{5, 4}, s.GetNewsFeed(1))
	assert.Len(t, s.Posts(1), 3)
}

func TestNonPositiveLimitsKeepDefaults(t *testing.T) {
	s := feeds.FromConfig(&config.Config{}, feeds.WithFeedSize(-1))
	for i := 1; i <= 12; i++ {
		s.PostTweet(1, i)
	}

	assert.Len(t, s.GetNewsFeed(1), config.DefaultFeedSize)
	assert.Len(t, s.Posts(1), config.DefaultRetention)
}
