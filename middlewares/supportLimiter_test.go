package middlewares_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"bolbharat-be/middlewares"
)

type mockMarkerStore struct {
	counts  map[string]int64
	incrErr error
	decrErr error
	decrs   []string
}

func newMockMarkerStore() *mockMarkerStore {
	return &mockMarkerStore{counts: map[string]int64{}}
}

func (m *mockMarkerStore) Incr(_ context.Context, key string) (int64, error) {
	if m.incrErr != nil {
		return 0, m.incrErr
	}
	m.counts[key]++
	return m.counts[key], nil
}

func (m *mockMarkerStore) Decr(_ context.Context, key string) error {
	if m.decrErr != nil {
		return m.decrErr
	}
	m.counts[key]--
	m.decrs = append(m.decrs, key)
	return nil
}

var _ = Describe("SupportMarker", func() {
	var (
		router        *gin.Engine
		markers       *mockMarkerStore
		handlerStatus int
		handlerHits   int
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		markers = newMockMarkerStore()
		handlerStatus = http.StatusOK
		handlerHits = 0

		router = gin.New()
		router.Use(func(c *gin.Context) {
			c.Set("client_id", "client-1")
			c.Next()
		})
		router.POST("/api/issues/:id/support", middlewares.SupportMarker(markers), func(c *gin.Context) {
			handlerHits++
			if handlerStatus >= http.StatusBadRequest {
				c.JSON(handlerStatus, gin.H{"error": "Could not record your support"})
				return
			}
			c.JSON(handlerStatus, gin.H{"upvotes": 1})
		})
	})

	support := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/issues/a1/support", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	It("lets the first support through and keeps the claim", func() {
		rec := support()
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(handlerHits).To(Equal(1))
		Expect(markers.counts["issue-support:client-1:a1"]).To(Equal(int64(1)))
		Expect(markers.decrs).To(BeEmpty())
	})

	It("rejects a repeat support from the same browser", func() {
		Expect(support().Code).To(Equal(http.StatusOK))

		rec := support()
		Expect(rec.Code).To(Equal(http.StatusConflict))
		Expect(rec.Body.String()).To(ContainSubstring("already supported"))
		Expect(handlerHits).To(Equal(1))
	})

	It("releases the claim when the write fails so a retry can land", func() {
		handlerStatus = http.StatusInternalServerError
		Expect(support().Code).To(Equal(http.StatusInternalServerError))
		Expect(markers.counts["issue-support:client-1:a1"]).To(Equal(int64(0)))

		handlerStatus = http.StatusOK
		rec := support()
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(handlerHits).To(Equal(2))
	})

	It("releases the claim on a not-found issue too", func() {
		handlerStatus = http.StatusNotFound
		Expect(support().Code).To(Equal(http.StatusNotFound))
		Expect(markers.counts["issue-support:client-1:a1"]).To(Equal(int64(0)))
	})

	It("fails open when the marker store errors", func() {
		markers.incrErr = errors.New("connection refused")

		Expect(support().Code).To(Equal(http.StatusOK))
		Expect(support().Code).To(Equal(http.StatusOK))
		Expect(handlerHits).To(Equal(2))
	})

	It("passes through with no marker store at all", func() {
		bare := gin.New()
		bare.Use(func(c *gin.Context) {
			c.Set("client_id", "client-1")
			c.Next()
		})
		bare.POST("/api/issues/:id/support", middlewares.SupportMarker(nil), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"upvotes": 1})
		})

		req := httptest.NewRequest(http.MethodPost, "/api/issues/a1/support", nil)
		rec := httptest.NewRecorder()
		bare.ServeHTTP(rec, req)
		Expect(rec.Code).To(Equal(http.StatusOK))
	})

	It("passes through when no client identity is set", func() {
		anon := gin.New()
		anon.POST("/api/issues/:id/support", middlewares.SupportMarker(markers), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"upvotes": 1})
		})

		req := httptest.NewRequest(http.MethodPost, "/api/issues/a1/support", nil)
		rec := httptest.NewRecorder()
		anon.ServeHTTP(rec, req)
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(markers.counts).To(BeEmpty())
	})
})
