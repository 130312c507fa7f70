package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "travelplan/internal/config"
	h "travelplan/internal/http/handlers"
	"travelplan/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = env.CORSOrigins
	corsCfg.AllowMethods = []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Request-ID"}
	corsCfg.AllowCredentials = true
	corsCfg.MaxAge = 24 * time.Hour
	r.Use(cors.New(corsCfg))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		users := api.Group("/users")
		users.GET("", h.GetUsers)
		users.GET("/:id", h.GetUserByID)
		users.POST("", h.CreateUser)
		users.PATCH("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)

		travels := api.Group("/travels")
		travels.GET("", h.GetTravels)
		travels.GET("/:id", h.GetTravelByID)
		travels.POST("", h.CreateTravel)
		travels.PATCH("/:id", h.UpdateTravel)
		travels.DELETE("/:id", h.DeleteTravel)

		// Travel membership
		travels.GET("/:id/users", h.GetTravelUsers)
		travels.POST("/:id/users", h.AddTravelUsers)
		travels.DELETE("/:id/users/:user_id", h.RemoveTravelUser)

		// Children of a travel
		travels.GET("/:id/accommodations", h.GetTravelAccommodations)
		travels.GET("/:id/transports", h.GetTravelTransports)
		travels.GET("/:id/activities", h.GetTravelActivities)
		travels.GET("/:id/expenses", h.GetTravelExpenses)
		travels.GET("/:id/expense-report", h.GetTravelExpenseReport)

		cities := api.Group("/cities")
		cities.GET("", h.GetCities)
		cities.POST("", h.CreateCity)
		cities.PATCH("/:id", h.UpdateCity)
		cities.DELETE("/:id", h.DeleteCity)

		accommodations := api.Group("/accommodations")
		accommodations.GET("", h.GetAccommodations)
		accommodations.GET("/:id", h.GetAccommodationByID)
		accommodations.POST("", h.CreateAccommodation)
		accommodations.PATCH("/:id", h.UpdateAccommodation)
		accommodations.DELETE("/:id", h.DeleteAccommodation)

		transports := api.Group("/transports")
		transports.GET("", h.GetTransports)
		transports.GET("/:id", h.GetTransportByID)
		transports.POST("", h.CreateTransport)
		transports.PATCH("/:id", h.UpdateTransport)
		transports.DELETE("/:id", h.DeleteTransport)

		activities := api.Group("/activities")
		activities.GET("", h.GetActivities)
		activities.GET("/:id", h.GetActivityByID)
		activities.POST("", h.CreateActivity)
		activities.PATCH("/:id", h.UpdateActivity)
		activities.DELETE("/:id", h.DeleteActivity)

		expenses := api.Group("/expenses")
		expenses.GET("/:id", h.GetExpenseByID)
		expenses.POST("", h.CreateExpense)
		expenses.PATCH("/:id", h.UpdateExpense)
		expenses.DELETE("/:id", h.DeleteExpense)
	}

	return r
}
