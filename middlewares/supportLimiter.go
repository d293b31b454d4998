package middlewares

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const supportMarkerPrefix = "issue-support"

// MarkerStore is the minimal counter surface the support marker
// needs. Kept as an interface so handler tests can stand in for
// Redis.
type MarkerStore interface {
	Incr(ctx context.Context, key string) (int64, error)
	Decr(ctx context.Context, key string) error
}

type redisMarkerStore struct {
	rdb *redis.Client
}

func (s redisMarkerStore) Incr(ctx context.Context, key string) (int64, error) {
	return s.rdb.Incr(ctx, key).Result()
}

func (s redisMarkerStore) Decr(ctx context.Context, key string) error {
	return s.rdb.Decr(ctx, key).Err()
}

// NewRedisMarkerStore wraps a Redis client as a MarkerStore. A nil
// client yields a nil store, which disables the marker.
func NewRedisMarkerStore(rdb *redis.Client) MarkerStore {
	if rdb == nil {
		return nil
	}
	return redisMarkerStore{rdb: rdb}
}

// SupportMarker blocks a repeat support click for the same issue from
// the same browser, keyed on the client cookie. The claim is taken
// before the handler runs, so two concurrent clicks cannot both pass,
// and released again when the handler fails, so a support that never
// landed can be retried. Advisory only: a different browser (or a
// cleared cookie) can support again, and a missing marker store fails
// open. Not a security control.
func SupportMarker(markers MarkerStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIDVal, _ := c.Get("client_id")
		clientID, ok := clientIDVal.(string)
		if !ok || clientID == "" || markers == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		markerKey := supportMarkerPrefix + ":" + clientID + ":" + c.Param("id")

		count, err := markers.Incr(ctx, markerKey)
		if err != nil {
			// Marker is advisory; let the support through.
			c.Next()
			return
		}

		if count > 1 {
			c.JSON(http.StatusConflict, gin.H{
				"error":        "You have already supported this issue",
				"alreadyVoted": true,
			})
			c.Abort()
			return
		}

		c.Next()

		// The support did not land; release the claim so the same
		// browser can retry.
		if c.Writer.Status() >= http.StatusBadRequest {
			if err := markers.Decr(ctx, markerKey); err != nil {
				log.Printf("failed to release support marker %s: %v", markerKey, err)
			}
		}
	}
}
