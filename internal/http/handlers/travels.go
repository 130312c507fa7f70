package handlers

import (
	"fmt"
	"net/http"

	"travelplan/internal/domain/models"
	"travelplan/internal/http/middleware"
	"travelplan/internal/repositories"
	"travelplan/internal/services"

	"github.com/gin-gonic/gin"
)

func travelStore() repositories.Store[models.Travel] {
	return repositories.NewTravelStore(nil)
}

func GetTravels(c *gin.Context) {
	travels, err := travelStore().List(nil)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, travels)
}

func GetTravelByID(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	travel, err := travelStore().Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, travel)
}

func CreateTravel(c *gin.Context) {
	var in models.Travel
	if !BindJSONOrError(c, &in) {
		return
	}
	in.ID = 0
	travel, err := travelStore().Insert(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, travel)
}

func UpdateTravel(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var patch models.TravelPatch
	if !BindJSONOrError(c, &patch) {
		return
	}
	travel, err := travelStore().UpdatePartial(id, patch)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, travel)
}

// DeleteTravel removes the travel row; memberships and travel children go with
// it through the schema's ON DELETE CASCADE foreign keys.
func DeleteTravel(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	if err := travelStore().Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Children-of-travel listings. Unlike plain store listings these answer 404
// when the travel has no such children, matching the API contract.

func GetTravelAccommodations(c *gin.Context) {
	listTravelChildren(c, accommodationStore(), "accommodations")
}

func GetTravelTransports(c *gin.Context) {
	listTravelChildren(c, transportStore(), "transports")
}

func GetTravelActivities(c *gin.Context) {
	listTravelChildren(c, activityStore(), "activities")
}

func GetTravelExpenses(c *gin.Context) {
	listTravelChildren(c, expenseStore(), "expenses")
}

func listTravelChildren[T any](c *gin.Context, store repositories.Store[T], kind string) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	children, err := store.List(&repositories.Filter{Field: "travel_id", Values: []int64{id}})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if len(children) == 0 {
		respondError(c, http.StatusNotFound, "not_found",
			fmt.Sprintf("no %s found for travel %d", kind, id), nil)
		return
	}
	c.JSON(http.StatusOK, children)
}

// GetTravelExpenseReport streams the travel's expense summary as a PDF.
func GetTravelExpenseReport(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	svc := services.ReportService{
		Travels:   travelStore(),
		Expenses:  expenseStore(),
		RequestID: middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.ExpenseReport(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
