package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"bolbharat-be/models"
	"bolbharat-be/store"

	"github.com/gin-gonic/gin"
)

const storeTimeout = 10 * time.Second

// IssueController serves the issue read surface, the submission
// pipeline, and the support action over an injected IssueStore.
type IssueController struct {
	Store store.IssueStore
}

func NewIssueController(s store.IssueStore) *IssueController {
	return &IssueController{Store: s}
}

// storeStatus maps a store-layer error to the HTTP status and message
// the frontend shows. Empty results never come through here: a
// reachable store with zero issues is a 200, not an error.
func storeStatus(err error) (int, string) {
	switch {
	case errors.Is(err, store.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "Issue store is not configured"
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, "Issue not found"
	case errors.Is(err, store.ErrFetchFailed):
		return http.StatusServiceUnavailable, "Failed to load issues"
	default:
		return http.StatusInternalServerError, "Internal error"
	}
}

// fetchNormalized is the fetch-then-normalize pass every read handler
// shares: the whole collection, one canonical Issue per raw record.
func (ic *IssueController) fetchNormalized(ctx context.Context) ([]models.Issue, error) {
	raws, err := ic.Store.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	issues := make([]models.Issue, 0, len(raws))
	for _, raw := range raws {
		issues = append(issues, models.Normalize(raw.ID, raw.Fields))
	}
	return issues, nil
}

// ListIssues handles GET /api/issues: fetch, normalize, filter, sort.
func (ic *IssueController) ListIssues(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	issues, err := ic.fetchNormalized(ctx)
	if err != nil {
		status, msg := storeStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	criteria := models.FilterCriteria{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		State:    c.Query("state"),
		District: c.Query("district"),
		City:     c.Query("city"),
		Village:  c.Query("village"),
	}

	filtered := models.FilterIssues(issues, criteria)
	sorted := models.SortIssues(filtered, c.DefaultQuery("sort", models.SortNewest))

	c.JSON(http.StatusOK, gin.H{
		"issues":      sorted,
		"totalIssues": len(sorted),
	})
}

// GetIssue handles GET /api/issues/:id.
func (ic *IssueController) GetIssue(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	raw, err := ic.Store.Fetch(ctx, c.Param("id"))
	if err != nil {
		status, msg := storeStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, models.Normalize(raw.ID, raw.Fields))
}

// RecentIssues handles GET /api/issues/recent: the newest few for the
// home page preview.
func (ic *IssueController) RecentIssues(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "3"))
	if limit < 1 {
		limit = 3
	}
	if limit > 20 {
		limit = 20
	}

	issues, err := ic.fetchNormalized(ctx)
	if err != nil {
		status, msg := storeStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	sorted := models.SortIssues(issues, models.SortNewest)
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	c.JSON(http.StatusOK, sorted)
}

// CreateIssue handles POST /api/issues: validate, persist, return the
// new identifier so the client can navigate to the detail view.
func (ic *IssueController) CreateIssue(c *gin.Context) {
	var input struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Category    string   `json:"category"`
		Location    string   `json:"location"`
		Duration    string   `json:"duration"`
		Images      []string `json:"images"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.Location = strings.TrimSpace(input.Location)

	// Per-field validation: every problem reported at once, nothing
	// written until all pass.
	fieldErrors := map[string]string{}
	if input.Title == "" {
		fieldErrors["title"] = "Title is required"
	}
	if input.Description == "" {
		fieldErrors["description"] = "Description is required"
	}
	if input.Location == "" {
		fieldErrors["location"] = "Location is required"
	}
	if input.Category == "" {
		fieldErrors["category"] = "Category is required"
	} else if !models.ValidCategory(input.Category) {
		fieldErrors["category"] = "Invalid category"
	}
	if input.Duration == "" {
		fieldErrors["duration"] = "Duration is required"
	} else if !models.ValidDuration(input.Duration) {
		fieldErrors["duration"] = "Invalid duration"
	}
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":       "Please fill in all required fields",
			"fieldErrors": fieldErrors,
		})
		return
	}

	draft := store.IssueDraft{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Location:    input.Location,
		Duration:    input.Duration,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Status:      string(models.Reported),
		Priority:    string(models.Medium),
		Upvotes:     0,
	}
	// Only the first image is persisted as the record's primary image;
	// the stored schema has a single image field.
	if len(input.Images) > 0 {
		draft.Image = input.Images[0]
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	id, err := ic.Store.Create(ctx, draft)
	if err != nil {
		if errors.Is(err, store.ErrStoreUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Issue store is not configured"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not submit report"})
		return
	}

	raw, err := ic.Store.Fetch(ctx, id)
	if err != nil {
		// The write succeeded; hand back the identifier even if the
		// read-back did not.
		c.JSON(http.StatusCreated, gin.H{"id": id})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":    id,
		"issue": models.Normalize(raw.ID, raw.Fields),
	})
}

// SupportIssue handles POST /api/issues/:id/support, the one
// post-creation mutation. The count written is the read value plus
// one, so two supporters racing on the same stale read lose one
// increment. That is the store's semantics, kept on purpose.
func (ic *IssueController) SupportIssue(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	id := c.Param("id")
	raw, err := ic.Store.Fetch(ctx, id)
	if err != nil {
		status, msg := storeStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	current := models.Normalize(raw.ID, raw.Fields).Upvotes
	next, err := ic.Store.IncrementUpvotes(ctx, id, current)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not record your support"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Support recorded",
		"upvotes": next,
	})
}

// GetOptions handles GET /api/options: the fixed option lists for the
// report form and the filter dropdowns.
func (ic *IssueController) GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": models.CategoryOptions,
		"statuses":   models.StatusOptions,
		"priorities": models.PriorityOptions,
		"durations":  models.DurationOptions,
	})
}
