package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/socialcli/internal/client/client"
	"github.com/dmitrijs2005/socialcli/internal/client/models"
	"github.com/dmitrijs2005/socialcli/internal/common"
)

type PostService interface {
	List(ctx context.Context) ([]models.Post, error)
	Get(ctx context.Context, id models.ID) (models.Post, error)
	Create(ctx context.Context, author models.ID, body string) (models.Post, error)
	Update(ctx context.Context, id models.ID, author models.ID, body string) (models.Post, error)
	Delete(ctx context.Context, id models.ID) error
	Like(ctx context.Context, id models.ID) error
	Unlike(ctx context.Context, id models.ID) error
	// ToggleLike likes or unlikes p depending on p.Liked and returns the
	// updated copy. On error p is returned unchanged.
	ToggleLike(ctx context.Context, p models.Post) (models.Post, error)
}

type postService struct {
	client client.Client
}

func NewPostService(c client.Client) PostService {
	return &postService{client: c}
}

func (s *postService) List(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := client.Get(ctx, s.client, postsPath, &posts); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (s *postService) Get(ctx context.Context, id models.ID) (models.Post, error) {
	if err := checkID(id); err != nil {
		return models.Post{}, err
	}
	var p models.Post
	if err := client.Get(ctx, s.client, postPath(id), &p); err != nil {
		return models.Post{}, fmt.Errorf("get post %s: %w", id, err)
	}
	return p, nil
}

func (s *postService) Create(ctx context.Context, author models.ID, body string) (models.Post, error) {
	if strings.TrimSpace(body) == "" {
		return models.Post{}, fmt.Errorf("create post: %w", common.ErrorEmptyInput)
	}
	var p models.Post
	if err := client.Post(ctx, s.client, postsPath, models.PostRequest{Author: author, Body: body}, &p); err != nil {
		return models.Post{}, fmt.Errorf("create post: %w", err)
	}
	return p, nil
}

func (s *postService) Update(ctx context.Context, id models.ID, author models.ID, body string) (models.Post, error) {
	if err := checkID(id); err != nil {
		return models.Post{}, err
	}
	if strings.TrimSpace(body) == "" {
		return models.Post{}, fmt.Errorf("update post: %w", common.ErrorEmptyInput)
	}
	var p models.Post
	if err := client.Put(ctx, s.client, postPath(id), models.PostRequest{Author: author, Body: body}, &p); err != nil {
		return models.Post{}, fmt.Errorf("update post %s: %w", id, err)
	}
	return p, nil
}

func (s *postService) Delete(ctx context.Context, id models.ID) error {
	if err := checkID(id); err != nil {
		return err
	}
	if err := client.Delete(ctx, s.client, postPath(id)); err != nil {
		return fmt.Errorf("delete post %s: %w", id, err)
	}
	return nil
}

func (s *postService) Like(ctx context.Context, id models.ID) error {
	if err := checkID(id); err != nil {
		return err
	}
	if err := client.Post(ctx, s.client, postActionPath(id, "like"), nil, nil); err != nil {
		return fmt.Errorf("like post %s: %w", id, err)
	}
	return nil
}

func (s *postService) Unlike(ctx context.Context, id models.ID) error {
	if err := checkID(id); err != nil {
		return err
	}
	if err := client.Post(ctx, s.client, postActionPath(id, "remove_like"), nil, nil); err != nil {
		return fmt.Errorf("unlike post %s: %w", id, err)
	}
	return nil
}

func (s *postService) ToggleLike(ctx context.Context, p models.Post) (models.Post, error) {
	toggle := s.Like
	delta := 1
	if p.Liked {
		toggle = s.Unlike
		delta = -1
	}
	if err := toggle(ctx, p.ID); err != nil {
		return p, err
	}

	p.Liked = !p.Liked
	p.LikesCount += delta
	if p.LikesCount < 0 {
		p.LikesCount = 0
	}
	return p, nil
}
