package handlers

import (
	"net/http"

	"travelplan/internal/domain/models"
	"travelplan/internal/repositories"

	"github.com/gin-gonic/gin"
)

func transportStore() repositories.Store[models.Transport] {
	return repositories.NewTransportStore(nil)
}

func GetTransports(c *gin.Context) {
	transports, err := transportStore().List(nil)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, transports)
}

func GetTransportByID(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	transport, err := transportStore().Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, transport)
}

func CreateTransport(c *gin.Context) {
	var in models.Transport
	if !BindJSONOrError(c, &in) {
		return
	}
	in.ID = 0
	transport, err := transportStore().Insert(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, transport)
}

func UpdateTransport(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var patch models.TransportPatch
	if !BindJSONOrError(c, &patch) {
		return
	}
	transport, err := transportStore().UpdatePartial(id, patch)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, transport)
}

func DeleteTransport(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	if err := transportStore().Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
