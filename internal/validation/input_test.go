package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"Valid", "alice", false},
		{"Valid With Separators", "test_user-123", false},
		{"Exactly Min Length", "abc", false},
		{"Too Short", "ab", true},
		{"Too Long", strings.Repeat("a", 31), true},
		{"Illegal Chars", "user@123", true},
		{"Starts Dash", "-user", true},
		{"Ends Underscore", "user_", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"Valid", "a@x.com", false},
		{"Valid Subdomain", "user.name+tag@mail.example.co", false},
		{"Missing At", "a.x.com", true},
		{"Missing TLD", "a@x", true},
		{"Empty", "", true},
		{"Too Long", strings.Repeat("a", 250) + "@x.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"Valid", "secret1", false},
		{"Exactly Min Length", "secret", false},
		{"Too Short", "short", true},
		{"Too Long", strings.Repeat("p", 129), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSignup(t *testing.T) {
	t.Parallel()
	assert.NoError(t, ValidateSignup(SignupInput{Username: "alice", Email: "a@x.com", Password: "secret1"}))
	assert.Error(t, ValidateSignup(SignupInput{Username: "al", Email: "a@x.com", Password: "secret1"}))
	assert.Error(t, ValidateSignup(SignupInput{Username: "alice", Email: "nope", Password: "secret1"}))
	assert.Error(t, ValidateSignup(SignupInput{Username: "alice", Email: "a@x.com", Password: "short"}))
}

func TestValidateSignin(t *testing.T) {
	t.Parallel()
	assert.NoError(t, ValidateSignin(SigninInput{EmailUsername: "alice", Password: "secret1"}))
	assert.NoError(t, ValidateSignin(SigninInput{EmailUsername: "a@x.com", Password: "secret1"}))
	assert.Error(t, ValidateSignin(SigninInput{EmailUsername: "  ", Password: "secret1"}))
	assert.Error(t, ValidateSignin(SigninInput{EmailUsername: "alice", Password: "nope"}))
}

func TestValidateBlogInputs(t *testing.T) {
	t.Parallel()
	assert.NoError(t, ValidateCreateBlog(CreateBlogInput{Title: "Hello", Content: "World"}))
	assert.Error(t, ValidateCreateBlog(CreateBlogInput{Title: "", Content: "World"}))
	assert.Error(t, ValidateCreateBlog(CreateBlogInput{Title: "Hello", Content: "  "}))
	assert.Error(t, ValidateCreateBlog(CreateBlogInput{Title: strings.Repeat("t", 301), Content: "x"}))
	assert.Error(t, ValidateCreateBlog(CreateBlogInput{Title: "t", Content: strings.Repeat("c", 50001)}))

	assert.NoError(t, ValidateUpdateBlog(UpdateBlogInput{ID: 1, Title: "Hello", Content: "World"}))
	assert.Error(t, ValidateUpdateBlog(UpdateBlogInput{ID: 0, Title: "Hello", Content: "World"}))
}
