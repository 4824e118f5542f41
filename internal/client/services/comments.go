package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/socialcli/internal/client/client"
	"github.com/dmitrijs2005/socialcli/internal/client/models"
	"github.com/dmitrijs2005/socialcli/internal/common"
)

type CommentService interface {
	List(ctx context.Context, postID models.ID) ([]models.Comment, error)
	Get(ctx context.Context, postID, commentID models.ID) (models.Comment, error)
	Create(ctx context.Context, postID, author models.ID, body string) (models.Comment, error)
	Update(ctx context.Context, postID, commentID, author models.ID, body string) (models.Comment, error)
	Delete(ctx context.Context, postID, commentID models.ID) error
}

type commentService struct {
	client client.Client
}

func NewCommentService(c client.Client) CommentService {
	return &commentService{client: c}
}

func (s *commentService) List(ctx context.Context, postID models.ID) ([]models.Comment, error) {
	if err := checkID(postID); err != nil {
		return nil, err
	}
	var comments []models.Comment
	if err := client.Get(ctx, s.client, commentsPath(postID), &comments); err != nil {
		return nil, fmt.Errorf("list comments of post %s: %w", postID, err)
	}
	return comments, nil
}

func (s *commentService) Get(ctx context.Context, postID, commentID models.ID) (models.Comment, error) {
	if err := checkIDs(postID, commentID); err != nil {
		return models.Comment{}, err
	}
	var c models.Comment
	if err := client.Get(ctx, s.client, commentPath(postID, commentID), &c); err != nil {
		return models.Comment{}, fmt.Errorf("get comment %s: %w", commentID, err)
	}
	return c, nil
}

func (s *commentService) Create(ctx context.Context, postID, author models.ID, body string) (models.Comment, error) {
	if err := checkID(postID); err != nil {
		return models.Comment{}, err
	}
	if strings.TrimSpace(body) == "" {
		return models.Comment{}, fmt.Errorf("create comment: %w", common.ErrorEmptyInput)
	}
	var c models.Comment
	in := models.CommentRequest{Author: author, Post: postID, Body: body}
	if err := client.Post(ctx, s.client, commentsPath(postID), in, &c); err != nil {
		return models.Comment{}, fmt.Errorf("create comment: %w", err)
	}
	return c, nil
}

func (s *commentService) Update(ctx context.Context, postID, commentID, author models.ID, body string) (models.Comment, error) {
	if err := checkIDs(postID, commentID); err != nil {
		return models.Comment{}, err
	}
	if strings.TrimSpace(body) == "" {
		return models.Comment{}, fmt.Errorf("update comment: %w", common.ErrorEmptyInput)
	}
	var c models.Comment
	in := models.CommentRequest{Author: author, Post: postID, Body: body}
	if err := client.Put(ctx, s.client, commentPath(postID, commentID), in, &c); err != nil {
		return models.Comment{}, fmt.Errorf("update comment %s: %w", commentID, err)
	}
	return c, nil
}

func (s *commentService) Delete(ctx context.Context, postID, commentID models.ID) error {
	if err := checkIDs(postID, commentID); err != nil {
		return err
	}
	if err := client.Delete(ctx, s.client, commentPath(postID, commentID)); err != nil {
		return fmt.Errorf("delete comment %s: %w", commentID, err)
	}
	return nil
}

func checkIDs(ids ...models.ID) error {
	for _, id := range ids {
		if err := checkID(id); err != nil {
			return err
		}
	}
	return nil
}
