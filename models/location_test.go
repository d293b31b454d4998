package models_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"bolbharat-be/models"
)

var _ = Describe("InferLocation", func() {
	It("assigns the full administrative triple for a known city", func() {
		loc := models.InferLocation("Market Street, Pune")
		Expect(loc.State).To(Equal("Maharashtra"))
		Expect(loc.District).To(Equal("Pune"))
		Expect(loc.City).To(Equal("Pune"))
	})

	It("matches case-insensitively", func() {
		loc := models.InferLocation("somewhere in MUMBAI")
		Expect(loc.State).To(Equal("Maharashtra"))
		Expect(loc.District).To(Equal("Mumbai"))
	})

	It("prefers the more specific rule when names overlap", func() {
		// Baramati sits in Pune district but is its own city.
		loc := models.InferLocation("Bus stand, Baramati")
		Expect(loc.District).To(Equal("Pune"))
		Expect(loc.City).To(Equal("Baramati"))
	})

	It("treats New Delhi and Delhi as different districts", func() {
		Expect(models.InferLocation("Janpath, New Delhi").District).To(Equal("New Delhi"))
		Expect(models.InferLocation("Chandni Chowk, Delhi").District).To(Equal("Central Delhi"))
	})

	It("falls back to Unknown with empty lower levels", func() {
		loc := models.InferLocation("rural road km 14")
		Expect(loc.State).To(Equal(models.UnknownState))
		Expect(loc.District).To(BeEmpty())
		Expect(loc.City).To(BeEmpty())
		Expect(loc.Village).To(BeEmpty())
	})

	It("keeps the original address text", func() {
		loc := models.InferLocation("Market Street, Pune")
		Expect(loc.Address).To(Equal("Market Street, Pune"))
	})
})

var _ = Describe("Cascading location options", func() {
	It("restricts districts to the selected state", func() {
		districts := models.DistrictsForState("Maharashtra")
		Expect(districts).To(ContainElement("Pune"))
		Expect(districts).NotTo(ContainElement("Chennai"))
	})

	It("returns every district when no state is selected", func() {
		all := models.DistrictsForState("")
		Expect(all).To(ContainElement("Pune"))
		Expect(all).To(ContainElement("Chennai"))
	})

	It("restricts cities and villages to the selected district", func() {
		Expect(models.CitiesForDistrict("Pune")).To(ContainElement("Pune City"))
		Expect(models.VillagesForDistrict("Pune")).To(ContainElement("Velhe"))
		Expect(models.CitiesForDistrict("Nagpur")).To(BeEmpty())
	})

	It("returns every city and village when no district is selected", func() {
		cities := models.CitiesForDistrict("")
		Expect(cities).To(ContainElement("Pune City"))
		Expect(cities).To(ContainElement("Bengaluru"))

		villages := models.VillagesForDistrict("all")
		Expect(villages).To(ContainElement("Velhe"))
		Expect(villages).To(ContainElement("Muttukadu"))
	})
})
