package routes

import (
	"bolbharat-be/controllers"
	"bolbharat-be/middlewares"

	"github.com/gin-gonic/gin"
)

// IssueRoutes sets up the issue routes
func IssueRoutes(r *gin.Engine, ic *controllers.IssueController, markers middlewares.MarkerStore) {
	issues := r.Group("/api/issues")
	{
		issues.GET("", ic.ListIssues)
		issues.POST("", ic.CreateIssue)
		issues.GET("/recent", ic.RecentIssues)
		issues.GET("/:id", ic.GetIssue)
		issues.GET("/:id/upvotes/stream", ic.StreamUpvotes)
		issues.POST("/:id/support", middlewares.SupportMarker(markers), ic.SupportIssue)
	}

	r.GET("/api/options", ic.GetOptions)
}
