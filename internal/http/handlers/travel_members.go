package handlers

import (
	"net/http"

	"travelplan/internal/http/middleware"
	"travelplan/internal/repositories"
	"travelplan/internal/services"

	"github.com/gin-gonic/gin"
)

func membershipService(c *gin.Context) services.MembershipService {
	return services.MembershipService{
		Travels:   travelStore(),
		Members:   repositories.MembershipRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}

type addMembersInput struct {
	UserIDs []int64 `json:"user_ids" binding:"required"`
}

func GetTravelUsers(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	users, err := membershipService(c).ListMembers(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// AddTravelUsers attaches a batch of users to the travel. Already-attached
// users are skipped; an unknown user id rejects the whole batch.
func AddTravelUsers(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var in addMembersInput
	if !BindJSONOrError(c, &in) {
		return
	}
	travel, err := membershipService(c).AddMembers(id, in.UserIDs)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, travel)
}

func RemoveTravelUser(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	userID, ok := ParamID(c, "user_id")
	if !ok {
		return
	}
	if err := membershipService(c).RemoveMember(id, userID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
