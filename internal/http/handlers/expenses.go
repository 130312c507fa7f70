package handlers

import (
	"net/http"

	"travelplan/internal/domain/models"
	"travelplan/internal/repositories"

	"github.com/gin-gonic/gin"
)

func expenseStore() repositories.Store[models.Expense] {
	return repositories.NewExpenseStore(nil)
}

func GetExpenseByID(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	expense, err := expenseStore().Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

func CreateExpense(c *gin.Context) {
	var in models.Expense
	if !BindJSONOrError(c, &in) {
		return
	}
	in.ID = 0
	expense, err := expenseStore().Insert(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, expense)
}

func UpdateExpense(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var patch models.ExpensePatch
	if !BindJSONOrError(c, &patch) {
		return
	}
	expense, err := expenseStore().UpdatePartial(id, patch)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

func DeleteExpense(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	if err := expenseStore().Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
