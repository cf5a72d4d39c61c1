// Package validation provides input validation for request payloads.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// SignupInput is the request body for user signup.
type SignupInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SigninInput is the request body for user signin. EmailUsername matches
// either the email or the username of an existing account.
type SigninInput struct {
	EmailUsername string `json:"emailusername"`
	Password      string `json:"password"`
}

// CreateBlogInput is the request body for creating a post.
type CreateBlogInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateBlogInput is the request body for updating a post.
type UpdateBlogInput struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

const (
	maxTitleLen   = 300
	maxContentLen = 50000
)

// ValidateUsername checks if a username meets requirements.
func ValidateUsername(username string) error {
	if len(username) < 3 {
		return fmt.Errorf("username must be at least 3 characters long")
	}
	if len(username) > 30 {
		return fmt.Errorf("username must not exceed 30 characters")
	}
	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("username can only contain letters, numbers, underscores, and hyphens")
	}
	if username[0] == '_' || username[0] == '-' || username[len(username)-1] == '_' || username[len(username)-1] == '-' {
		return fmt.Errorf("username cannot start or end with underscore or hyphen")
	}
	return nil
}

// ValidateEmail checks basic email format.
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	if len(email) > 254 {
		return fmt.Errorf("email must not exceed 254 characters")
	}
	return nil
}

// ValidatePassword checks password length bounds.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters long")
	}
	if len(password) > 128 {
		return fmt.Errorf("password must not exceed 128 characters")
	}
	return nil
}

// ValidateSignup validates a signup request body.
func ValidateSignup(in SignupInput) error {
	if err := ValidateUsername(in.Username); err != nil {
		return err
	}
	if err := ValidateEmail(in.Email); err != nil {
		return err
	}
	return ValidatePassword(in.Password)
}

// ValidateSignin validates a signin request body.
func ValidateSignin(in SigninInput) error {
	if strings.TrimSpace(in.EmailUsername) == "" {
		return fmt.Errorf("email or username is required")
	}
	return ValidatePassword(in.Password)
}

// ValidateCreateBlog validates a post creation body.
func ValidateCreateBlog(in CreateBlogInput) error {
	return validateTitleContent(in.Title, in.Content)
}

// ValidateUpdateBlog validates a post update body.
func ValidateUpdateBlog(in UpdateBlogInput) error {
	if in.ID == 0 {
		return fmt.Errorf("post id is required")
	}
	return validateTitleContent(in.Title, in.Content)
}

func validateTitleContent(title, content string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLen {
		return fmt.Errorf("title must not exceed %d characters", maxTitleLen)
	}
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("content is required")
	}
	if len(content) > maxContentLen {
		return fmt.Errorf("content must not exceed %d characters", maxContentLen)
	}
	return nil
}
