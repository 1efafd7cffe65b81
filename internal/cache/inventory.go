package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	userKeyPrefix         = "user:%d"
	postKeyPrefix         = "post:%d"
	followingSetKeyPrefix = "user:%d:followings"
)

const (
	UserTTL         = 5 * time.Minute
	PostTTL         = 10 * time.Minute
	FollowingSetTTL = 2 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(userKeyPrefix, userID)
}

func PostKey(postID uint) string {
	return fmt.Sprintf(postKeyPrefix, postID)
}

// FollowingSetKey caches the set of user IDs a viewer follows, used to
// decorate list results without a store round-trip per request.
func FollowingSetKey(userID uint) string {
	return fmt.Sprintf(followingSetKeyPrefix, userID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}

// InvalidateFollowEdge drops every cached view a follow/unfollow touches:
// both user aggregates (counters changed) and the follower's following-set.
func InvalidateFollowEdge(ctx context.Context, followerID, followingID uint) {
	Invalidate(ctx, UserKey(followerID))
	Invalidate(ctx, UserKey(followingID))
	Invalidate(ctx, FollowingSetKey(followerID))
}
