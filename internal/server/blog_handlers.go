package server

import (
	"errors"
	"log/slog"
	"strconv"

	"codelogs/internal/middleware"
	"codelogs/internal/models"
	"codelogs/internal/service"
	"codelogs/internal/validation"

	"github.com/gofiber/fiber/v2"
)

func statusForAppError(err error) int {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		return fiber.StatusInternalServerError
	}
	switch appErr.Code {
	case "VALIDATION_ERROR":
		return fiber.StatusBadRequest
	case "UNAUTHORIZED":
		return fiber.StatusUnauthorized
	case "FORBIDDEN":
		return fiber.StatusForbidden
	case "NOT_FOUND":
		return fiber.StatusNotFound
	case "CONFLICT":
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// CreateBlog handles blog creation for the authenticated user
// @Summary Create a blog post
// @Tags blog
// @Accept json
// @Produce json
// @Param input body validation.CreateBlogInput true "Blog payload"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /blog [post]
func (s *Server) CreateBlog(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Unauthorized User"))
	}

	var input validation.CreateBlogInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid Input"))
	}

	post, err := s.blogService.CreateBlog(c.UserContext(), service.CreateBlogInput{
		AuthorID: userID,
		Title:    input.Title,
		Content:  input.Content,
	})
	if err != nil {
		status := statusForAppError(err)
		if status == fiber.StatusInternalServerError {
			middleware.Logger.ErrorContext(c.UserContext(), "failed to create blog", slog.Any("error", err))
		}
		return models.RespondWithError(c, status, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "blog created",
		slog.Uint64("blog_id", uint64(post.ID)))

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"msg":    "Blog created successfully",
		"blogId": post.ID,
	})
}

// UpdateBlog handles updates to an existing blog owned by the caller
// @Summary Update a blog post
// @Tags blog
// @Accept json
// @Produce json
// @Param input body validation.UpdateBlogInput true "Update payload"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /blog [put]
func (s *Server) UpdateBlog(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Unauthorized User"))
	}

	var input validation.UpdateBlogInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid Input"))
	}

	post, err := s.blogService.UpdateBlog(c.UserContext(), service.UpdateBlogInput{
		CallerID: userID,
		PostID:   input.ID,
		Title:    input.Title,
		Content:  input.Content,
	})
	if err != nil {
		status := statusForAppError(err)
		if status == fiber.StatusInternalServerError {
			middleware.Logger.ErrorContext(c.UserContext(), "failed to update blog", slog.Any("error", err))
		}
		return models.RespondWithError(c, status, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "blog updated",
		slog.Uint64("blog_id", uint64(post.ID)))

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"msg":    "Blog updated successfully",
		"blogId": post.ID,
	})
}

// GetBlogs returns all blogs, newest first
// @Summary List blog posts
// @Tags blog
// @Produce json
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Offset into the result set"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /blog/bulk [get]
func (s *Server) GetBlogs(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	offset := c.QueryInt("offset", 0)

	posts, err := s.blogService.ListBlogs(c.UserContext(), service.ListBlogsInput{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "failed to list blogs", slog.Any("error", err))
		return models.RespondWithError(c, statusForAppError(err), err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"msg":   "List of all blogs",
		"blogs": posts,
	})
}

// GetBlog returns a single blog by id
// @Summary Get a blog post by ID
// @Tags blog
// @Produce json
// @Param id path int true "Blog ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse
// @Router /blog/{id} [get]
func (s *Server) GetBlog(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"msg": "Blog not found",
		})
	}

	post, getErr := s.blogService.GetBlog(c.UserContext(), uint(id))
	if getErr != nil {
		if statusForAppError(getErr) == fiber.StatusNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"msg": "Blog not found",
			})
		}
		middleware.Logger.ErrorContext(c.UserContext(), "failed to load blog", slog.Any("error", getErr))
		return models.RespondWithError(c, statusForAppError(getErr), getErr)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"msg":  "Blog found",
		"blog": post,
	})
}
