package server

import (
	"errors"
	"log/slog"

	"codelogs/internal/middleware"
	"codelogs/internal/models"
	"codelogs/internal/observability"
	"codelogs/internal/validation"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Signup handles user registration
// @Summary Register a new user
// @Description Create an account with username, email and password, returning a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param input body validation.SignupInput true "Signup payload"
// @Success 200 {object} map[string]string
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /user/signup [post]
func (s *Server) Signup(c *fiber.Ctx) error {
	var input validation.SignupInput
	if err := c.BodyParser(&input); err != nil {
		observability.AuthAttempts.WithLabelValues("signup", "failure").Inc()
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid Input"))
	}

	if err := validation.ValidateSignup(input); err != nil {
		observability.AuthAttempts.WithLabelValues("signup", "failure").Inc()
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "failed to hash password", slog.Any("error", err))
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	user := &models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: string(hashed),
	}
	if err := s.userRepo.Create(c.UserContext(), user); err != nil {
		observability.AuthAttempts.WithLabelValues("signup", "failure").Inc()
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == "CONFLICT" {
			return models.RespondWithError(c, fiber.StatusConflict, appErr)
		}
		middleware.Logger.ErrorContext(c.UserContext(), "failed to create user", slog.Any("error", err))
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	tok, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "failed to issue token", slog.Any("error", err))
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	observability.AuthAttempts.WithLabelValues("signup", "success").Inc()
	middleware.Logger.InfoContext(c.UserContext(), "user registered",
		slog.Uint64("user_id", uint64(user.ID)),
		slog.String("username", user.Username))

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"token": tok})
}

// Signin handles user authentication
// @Summary Authenticate an existing user
// @Description Exchange email-or-username plus password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param input body validation.SigninInput true "Signin payload"
// @Success 200 {object} map[string]string
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /user/signin [post]
func (s *Server) Signin(c *fiber.Ctx) error {
	var input validation.SigninInput
	if err := c.BodyParser(&input); err != nil {
		observability.AuthAttempts.WithLabelValues("signin", "failure").Inc()
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid Input"))
	}

	if err := validation.ValidateSignin(input); err != nil {
		observability.AuthAttempts.WithLabelValues("signin", "failure").Inc()
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	user, err := s.userRepo.GetByEmailOrUsername(c.UserContext(), input.EmailUsername)
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "failed to look up user", slog.Any("error", err))
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if user == nil {
		observability.AuthAttempts.WithLabelValues("signin", "failure").Inc()
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid User"))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		observability.AuthAttempts.WithLabelValues("signin", "failure").Inc()
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Incorrect Password"))
	}

	tok, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "failed to issue token", slog.Any("error", err))
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	observability.AuthAttempts.WithLabelValues("signin", "success").Inc()
	middleware.Logger.InfoContext(c.UserContext(), "user signed in",
		slog.Uint64("user_id", uint64(user.ID)))

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"token": tok})
}

// Verify confirms the bearer token and returns the authenticated identity
// @Summary Verify the current bearer token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/verify [get]
func (s *Server) Verify(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Unauthorized User"))
	}

	user, err := s.userRepo.GetByID(c.UserContext(), userID)
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == "NOT_FOUND" {
			// Token is valid but the account no longer exists.
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Unauthorized User"))
		}
		middleware.Logger.ErrorContext(c.UserContext(), "failed to load user", slog.Any("error", err))
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"user": fiber.Map{
			"id":       user.ID,
			"email":    user.Email,
			"username": user.Username,
		},
	})
}
