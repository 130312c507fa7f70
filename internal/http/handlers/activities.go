package handlers

import (
	"net/http"

	"travelplan/internal/domain/models"
	"travelplan/internal/repositories"

	"github.com/gin-gonic/gin"
)

func activityStore() repositories.Store[models.Activity] {
	return repositories.NewActivityStore(nil)
}

func GetActivities(c *gin.Context) {
	activities, err := activityStore().List(nil)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}

// GetActivityByID returns the full read shape with the City expanded.
func GetActivityByID(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	activity, err := activityStore().Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	city, err := cityStore().Get(activity.CityID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ActivityFull{Activity: activity, City: city})
}

func CreateActivity(c *gin.Context) {
	var in models.Activity
	if !BindJSONOrError(c, &in) {
		return
	}
	in.ID = 0
	activity, err := activityStore().Insert(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, activity)
}

func UpdateActivity(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var patch models.ActivityPatch
	if !BindJSONOrError(c, &patch) {
		return
	}
	activity, err := activityStore().UpdatePartial(id, patch)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, activity)
}

func DeleteActivity(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	if err := activityStore().Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
