package feeds

import (
	"container/heap"

	"chirp/models"

	"github.com/samber/lo"
)

// cursor points at the next unread post of one followee's timeline
type cursor struct {
	posts []models.Post
	idx   int
}

func (c *cursor) head() models.Post {
	return c.posts[c.idx]
}

// newestFirst is a max-heap of cursors keyed by the sequence number of their
// head post
type newestFirst []*cursor

func (h newestFirst) Len() int           { return len(h) }
func (h newestFirst) Less(i, j int) bool { return h[i].head().Newer(h[j].head()) }
func (h newestFirst) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *newestFirst) Push(x any) {
	*h = append(*h, x.(*cursor))
}

func (h *newestFirst) Pop() any {
	old := *h
	n := len(old)
	c := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return c
}

// mergeNewest performs a k-way merge of timelines that are each sorted newest
// first and returns at most limit posts, newest first. The heap never holds
// more than one cursor per source and the sources are only read.
func mergeNewest(sources [][]models.Post, limit int) []models.Post {
	h := make(newestFirst, 0, len(sources))
	for _, posts := range sources {
		if len(posts) > 0 {
			h = append(h, &cursor{posts: posts})
		}
	}
	heap.Init(&h)

	merged := make([]models.Post, 0, max(0, min(limit, 16)))
	for h.Len() > 0 && len(merged) < limit {
		c := h[0]
		merged = append(merged, c.head())
		c.idx++
		if c.idx < len(c.posts) {
			heap.Fix(&h, 0)
		} else {
			heap.Pop(&h)
		}
	}

	return merged
}

func contentIds(posts []models.Post) []int {
	return lo.Map(posts, func(p models.Post, _ int) int {
		return p.ContentId
	})
}
