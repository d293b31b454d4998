package middlewares

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const clientCookie = "bb_client_id"

// cookie lifetime; long-lived on purpose so the support marker
// survives normal browsing sessions.
const clientCookieMaxAge = 60 * 60 * 24 * 365

// ClientID assigns each browser an opaque identifier cookie and puts
// it on the request context for the support marker. There are no
// accounts; this is the only caller identity the service has.
func ClientID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(clientCookie)
		if err != nil || id == "" {
			id = primitive.NewObjectID().Hex()
			c.SetCookie(clientCookie, id, clientCookieMaxAge, "/", "", false, true)
		}
		c.Set("client_id", id)
		c.Next()
	}
}
