package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/socialcli/internal/client/models"
	"golang.org/x/sync/errgroup"
)

// DefaultFeedConcurrency bounds the comment fetches in flight.
const DefaultFeedConcurrency = 4

type FeedService interface {
	// Load returns every post in backend order, with comments when
	// withComments is set. Any failed fetch fails the whole load.
	Load(ctx context.Context, withComments bool) ([]models.FeedItem, error)
}

type feedService struct {
	posts    PostService
	comments CommentService
	limit    int
}

func NewFeedService(posts PostService, comments CommentService, limit int) FeedService {
	if limit <= 0 {
		limit = DefaultFeedConcurrency
	}
	return &feedService{posts: posts, comments: comments, limit: limit}
}

func (s *feedService) Load(ctx context.Context, withComments bool) ([]models.FeedItem, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load feed: %w", err)
	}

	items := make([]models.FeedItem, len(posts))
	for i, p := range posts {
		items[i].Post = p
	}
	if !withComments {
		return items, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.limit)
	for i := range items {
		g.Go(func() error {
			comments, err := s.comments.List(gctx, items[i].Post.ID)
			if err != nil {
				return err
			}
			items[i].Comments = comments
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load feed: %w", err)
	}
	return items, nil
}
