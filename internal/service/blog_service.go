// Package service contains the business logic between HTTP handlers and
// repositories.
package service

import (
	"context"

	"codelogs/internal/models"
	"codelogs/internal/repository"
	"codelogs/internal/validation"
)

// BlogService owns validation and authorization rules for posts.
type BlogService struct {
	postRepo repository.PostRepository
}

// CreateBlogInput carries a validated create request plus the authenticated
// author. AuthorID always comes from the request identity, never the body.
type CreateBlogInput struct {
	AuthorID uint
	Title    string
	Content  string
}

// UpdateBlogInput carries an update request plus the authenticated caller.
type UpdateBlogInput struct {
	CallerID uint
	PostID   uint
	Title    string
	Content  string
}

// ListBlogsInput bounds a listing request.
type ListBlogsInput struct {
	Limit  int
	Offset int
}

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// NewBlogService returns a BlogService backed by the given repository.
func NewBlogService(postRepo repository.PostRepository) *BlogService {
	return &BlogService{postRepo: postRepo}
}

// CreateBlog validates the input and persists a new post attributed to the
// authenticated author.
func (s *BlogService) CreateBlog(ctx context.Context, in CreateBlogInput) (*models.Post, error) {
	if err := validation.ValidateCreateBlog(validation.CreateBlogInput{
		Title:   in.Title,
		Content: in.Content,
	}); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	post := &models.Post{
		Title:    in.Title,
		Content:  in.Content,
		AuthorID: in.AuthorID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// UpdateBlog validates the input, checks that the caller owns the post and
// persists the change. Updating a missing post fails with NOT_FOUND rather
// than silently creating or no-oping.
func (s *BlogService) UpdateBlog(ctx context.Context, in UpdateBlogInput) (*models.Post, error) {
	if err := validation.ValidateUpdateBlog(validation.UpdateBlogInput{
		ID:      in.PostID,
		Title:   in.Title,
		Content: in.Content,
	}); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != in.CallerID {
		return nil, models.NewForbiddenError("You can only update your own blogs")
	}

	post.Title = in.Title
	post.Content = in.Content
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListBlogs returns a page of posts, newest first.
func (s *BlogService) ListBlogs(ctx context.Context, in ListBlogsInput) ([]*models.Post, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := in.Offset
	if offset < 0 {
		offset = 0
	}

	return s.postRepo.List(ctx, limit, offset)
}

// GetBlog fetches a single post by id.
func (s *BlogService) GetBlog(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}
