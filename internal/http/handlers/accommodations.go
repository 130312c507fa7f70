package handlers

import (
	"net/http"

	"travelplan/internal/domain/models"
	"travelplan/internal/repositories"

	"github.com/gin-gonic/gin"
)

func accommodationStore() repositories.Store[models.Accommodation] {
	return repositories.NewAccommodationStore(nil)
}

func GetAccommodations(c *gin.Context) {
	accommodations, err := accommodationStore().List(nil)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, accommodations)
}

// GetAccommodationByID returns the full read shape with the City expanded.
func GetAccommodationByID(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	accommodation, err := accommodationStore().Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	city, err := cityStore().Get(accommodation.CityID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.AccommodationFull{Accommodation: accommodation, City: city})
}

func CreateAccommodation(c *gin.Context) {
	var in models.Accommodation
	if !BindJSONOrError(c, &in) {
		return
	}
	in.ID = 0
	accommodation, err := accommodationStore().Insert(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, accommodation)
}

func UpdateAccommodation(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var patch models.AccommodationPatch
	if !BindJSONOrError(c, &patch) {
		return
	}
	accommodation, err := accommodationStore().UpdatePartial(id, patch)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, accommodation)
}

func DeleteAccommodation(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	if err := accommodationStore().Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
