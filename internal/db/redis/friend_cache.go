package redis

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis"

	"Fritter/internal/core/users"
)

// friendCache keeps resolved friend-id sets in Redis so busy feed readers
// don't hit the users table on every request. Entries carry a short TTL;
// a friend-list change becomes visible once the entry expires, which is
// acceptable for a slow-moving relation. Any Redis failure falls through
// to the database, so a dead cache only costs latency.
type friendCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFriendCache creates a friend-set cache backed by the given client
func NewFriendCache(client *redis.Client, ttl time.Duration) users.FriendCache {
	return &friendCache{client: client, ttl: ttl}
}

func (c *friendCache) Get(viewerID int64) ([]int64, bool) {
	val, err := c.client.Get(friendKey(viewerID)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("[FRIEND-CACHE] Warning: get failed for user %d: %v", viewerID, err)
		return nil, false
	}

	var ids []int64
	if err := json.Unmarshal([]byte(val), &ids); err != nil {
		log.Printf("[FRIEND-CACHE] Warning: bad cache entry for user %d: %v", viewerID, err)
		return nil, false
	}
	return ids, true
}

func (c *friendCache) Set(viewerID int64, friendIDs []int64) {
	data, err := json.Marshal(friendIDs)
	if err != nil {
		log.Printf("[FRIEND-CACHE] Warning: encode failed for user %d: %v", viewerID, err)
		return
	}
	if err := c.client.Set(friendKey(viewerID), data, c.ttl).Err(); err != nil {
		log.Printf("[FRIEND-CACHE] Warning: set failed for user %d: %v", viewerID, err)
	}
}

func friendKey(viewerID int64) string {
	return fmt.Sprintf("fritter:friends:%d", viewerID)
}
