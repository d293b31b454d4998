package controllers

import (
	"net/http"

	"bolbharat-be/models"

	"github.com/gin-gonic/gin"
)

// Location option endpoints backing the cascading filter: each level's
// choices are restricted by the selected level above it.

func GetStates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"states": models.IndianStates})
}

func GetDistricts(c *gin.Context) {
	districts := models.DistrictsForState(c.Query("state"))
	if districts == nil {
		districts = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"districts": districts})
}

func GetCities(c *gin.Context) {
	cities := models.CitiesForDistrict(c.Query("district"))
	if cities == nil {
		cities = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"cities": cities})
}

func GetVillages(c *gin.Context) {
	villages := models.VillagesForDistrict(c.Query("district"))
	if villages == nil {
		villages = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"villages": villages})
}
