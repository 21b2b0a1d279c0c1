package routes

import (
	"time"

	"doctorsportal/handlers"
	"doctorsportal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the public catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/services", hb.Catalog.ListServices)
	r.GET("/available", hb.Catalog.GetAvailability)
}

// RegisterUserRoutes registers user and admin-role endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	verify := middleware.VerifyToken(hb.Tokens)
	admin := middleware.VerifyAdmin(hb.AdminUsers)

	if hb.UserListAdminOnly {
		r.GET("/user", verify, admin, hb.Users.ListUsersHandler)
	} else {
		r.GET("/user", verify, hb.Users.ListUsersHandler)
	}
	r.GET("/admin/:email", hb.Users.IsAdminHandler)
	r.PUT("/user/admin/:email", verify, admin, hb.Users.MakeAdminHandler)
	r.PUT("/user/:email", hb.Users.UpsertUserHandler)
}

// RegisterHealthRoute registers the liveness and health-check endpoints.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", handlers.Root)
	r.GET("/health", hb.HealthHandler)
}

// RegisterDoctorRoutes registers the admin-only doctor roster endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	doctorGroup := r.Group("/doctor")
	{
		doctorGroup.Use(middleware.VerifyToken(hb.Tokens), middleware.VerifyAdmin(hb.AdminUsers))
		doctorGroup.GET("", hb.Doctors.ListDoctors)
		doctorGroup.POST("", hb.Doctors.AddDoctor)
		doctorGroup.DELETE("/:email", hb.Doctors.RemoveDoctor)
	}
}

// RegisterPaymentRoutes registers the payment intent endpoint.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/create-payment-intent", middleware.VerifyToken(hb.Tokens), hb.Payments.CreatePaymentIntent)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, corsOrigins []string) {
	if len(corsOrigins) == 0 {
		corsOrigins = []string{"*"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: !containsWildcard(corsOrigins),
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
