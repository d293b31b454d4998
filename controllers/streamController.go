package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StreamUpvotes handles GET /api/issues/:id/upvotes/stream: a
// server-sent-event stream of one record's upvote count. The first
// event is the value at attach time; one more follows per remote
// change. The subscription detaches when the client goes away.
func (ic *IssueController) StreamUpvotes(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	// Buffered so the synchronous initial delivery lands before the
	// stream loop starts. When the client falls behind, the oldest
	// buffered count is shed: every event carries the absolute count,
	// and the freshest value must always reach the client.
	updates := make(chan int, 8)
	unsubscribe, err := ic.Store.SubscribeUpvotes(ctx, id, func(n int) {
		for {
			select {
			case updates <- n:
				return
			default:
				select {
				case <-updates:
				default:
				}
			}
		}
	})
	if err != nil {
		status, msg := storeStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	defer unsubscribe()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Status(http.StatusOK)

	for {
		select {
		case <-ctx.Done():
			return
		case n := <-updates:
			c.SSEvent("upvotes", n)
			c.Writer.Flush()
		}
	}
}
