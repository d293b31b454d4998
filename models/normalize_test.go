package models_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"bolbharat-be/models"
)

var _ = Describe("Normalize", func() {
	It("fills every field of an empty record with its default", func() {
		issue := models.Normalize("abc", map[string]any{})

		Expect(issue.ID).To(Equal("abc"))
		Expect(issue.Title).To(Equal(models.DefaultTitle))
		Expect(issue.Description).To(Equal(models.DefaultDescription))
		Expect(issue.Category).To(Equal(models.Other))
		Expect(issue.Status).To(Equal(models.Reported))
		Expect(issue.Priority).To(Equal(models.Medium))
		Expect(issue.ReportedBy).To(Equal(models.DefaultReportedBy))
		Expect(issue.Duration).To(Equal(models.DefaultDuration))
		Expect(issue.Upvotes).To(Equal(0))
		Expect(issue.Images).To(BeEmpty())
		Expect(issue.Images).NotTo(BeNil())
		Expect(issue.Comments).To(BeEmpty())
		Expect(issue.Location.State).To(Equal(models.UnknownState))
	})

	It("never passes an unrecognized enum value through", func() {
		issue := models.Normalize("abc", map[string]any{
			"category": "potholes-and-such",
			"status":   "UNKNOWN",
			"priority": "",
		})

		Expect(issue.Category).To(Equal(models.Other))
		Expect(issue.Status).To(Equal(models.Reported))
		Expect(issue.Priority).To(Equal(models.Medium))
	})

	It("keeps recognized enum values", func() {
		issue := models.Normalize("abc", map[string]any{
			"category": "water",
			"status":   "in-progress",
			"priority": "urgent",
		})

		Expect(issue.Category).To(Equal(models.Water))
		Expect(issue.Status).To(Equal(models.InProgress))
		Expect(issue.Priority).To(Equal(models.Urgent))
	})

	It("infers administrative fields from a flat address string", func() {
		issue := models.Normalize("abc", map[string]any{
			"location": "Market Street, Pune",
		})

		Expect(issue.Location.Address).To(Equal("Market Street, Pune"))
		Expect(issue.Location.State).To(Equal("Maharashtra"))
		Expect(issue.Location.District).To(Equal("Pune"))
		Expect(issue.Location.City).To(Equal("Pune"))
		Expect(issue.Location.Village).To(BeEmpty())
	})

	It("maps an unknown address to the fallback state", func() {
		issue := models.Normalize("abc", map[string]any{
			"location": "Somewhere nobody has heard of",
		})

		Expect(issue.Location.State).To(Equal(models.UnknownState))
		Expect(issue.Location.District).To(BeEmpty())
		Expect(issue.Location.City).To(BeEmpty())
	})

	It("accepts the structured location shape as written", func() {
		issue := models.Normalize("abc", map[string]any{
			"location": map[string]any{
				"address":  "MG Road",
				"state":    "Karnataka",
				"district": "Bangalore Urban",
				"city":     "Bengaluru",
			},
		})

		Expect(issue.Location.Address).To(Equal("MG Road"))
		Expect(issue.Location.State).To(Equal("Karnataka"))
		Expect(issue.Location.District).To(Equal("Bangalore Urban"))
		Expect(issue.Location.City).To(Equal("Bengaluru"))
	})

	It("defaults the state inside a structured location", func() {
		issue := models.Normalize("abc", map[string]any{
			"location": map[string]any{"address": "MG Road"},
		})

		Expect(issue.Location.State).To(Equal(models.UnknownState))
	})

	It("parses an RFC3339 timestamp", func() {
		issue := models.Normalize("abc", map[string]any{
			"timestamp": "2025-06-01T10:30:00Z",
		})

		Expect(issue.ReportedAt).To(Equal(time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)))
	})

	It("substitutes the current time for a bad timestamp", func() {
		before := time.Now()
		issue := models.Normalize("abc", map[string]any{
			"timestamp": "last tuesday",
		})

		Expect(issue.ReportedAt).To(BeTemporally(">=", before))
		Expect(issue.ReportedAt).To(BeTemporally("<=", time.Now()))
	})

	It("turns the single image field into a one-element slice", func() {
		issue := models.Normalize("abc", map[string]any{
			"image": "https://cdn/photo.jpg",
		})

		Expect(issue.Images).To(Equal([]string{"https://cdn/photo.jpg"}))
	})

	It("accepts the numeric types a driver may decode upvotes into", func() {
		for _, v := range []any{int(7), int32(7), int64(7), float64(7)} {
			issue := models.Normalize("abc", map[string]any{"upvotes": v})
			Expect(issue.Upvotes).To(Equal(7))
		}
	})

	It("clamps a negative upvote count to zero", func() {
		issue := models.Normalize("abc", map[string]any{"upvotes": -3})
		Expect(issue.Upvotes).To(Equal(0))
	})
})
