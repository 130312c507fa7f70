package handlers

import (
	"net/http"

	"travelplan/internal/domain/models"
	"travelplan/internal/repositories"

	"github.com/gin-gonic/gin"
)

func cityStore() repositories.Store[models.City] {
	return repositories.NewCityStore(nil)
}

func GetCities(c *gin.Context) {
	cities, err := cityStore().List(nil)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cities)
}

func CreateCity(c *gin.Context) {
	var in models.City
	if !BindJSONOrError(c, &in) {
		return
	}
	in.ID = 0
	city, err := cityStore().Insert(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, city)
}

func UpdateCity(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var patch models.CityPatch
	if !BindJSONOrError(c, &patch) {
		return
	}
	city, err := cityStore().UpdatePartial(id, patch)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, city)
}

func DeleteCity(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	if err := cityStore().Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
