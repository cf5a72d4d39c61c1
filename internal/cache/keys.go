package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache TTLs per entity type.
const (
	PostTTL = 30 * time.Minute
	UserTTL = 5 * time.Minute
)

// PostKey returns the cache key for a post by id.
func PostKey(postID uint) string {
	return fmt.Sprintf("post:%d", postID)
}

// UserKey returns the cache key for a user by id.
func UserKey(userID uint) string {
	return fmt.Sprintf("user:%d", userID)
}

// Invalidate removes a key from the cache. Best-effort.
func Invalidate(ctx context.Context, key string) {
	if client == nil {
		return
	}
	client.Del(ctx, key)
}

// InvalidatePost drops the cached copy of a post.
func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}

// InvalidateUser drops the cached copy of a user.
func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}
