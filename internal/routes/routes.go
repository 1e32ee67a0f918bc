package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/service-marketplace/internal/audit"
	"github.com/BruksfildServices01/service-marketplace/internal/auth"
	"github.com/BruksfildServices01/service-marketplace/internal/config"
	"github.com/BruksfildServices01/service-marketplace/internal/handlers"
	infraRepo "github.com/BruksfildServices01/service-marketplace/internal/infra/repository"
	"github.com/BruksfildServices01/service-marketplace/internal/middleware"
	ucBooking "github.com/BruksfildServices01/service-marketplace/internal/usecase/booking"
	ucCatalog "github.com/BruksfildServices01/service-marketplace/internal/usecase/catalog"
	ucIdentity "github.com/BruksfildServices01/service-marketplace/internal/usecase/identity"
	ucOffer "github.com/BruksfildServices01/service-marketplace/internal/usecase/offer"
	"github.com/BruksfildServices01/service-marketplace/internal/validators"
)

// RegisterRoutes wires repositories, use cases and handlers onto r. A nil
// catalogCache serves the catalog straight from the database.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	catalogCache ucCatalog.Cache,
) {

	// ======================================================
	// INFRA
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(db)
	catalogRepo := infraRepo.NewCatalogGormRepository(db)
	offerRepo := infraRepo.NewOfferGormRepository(db)
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)

	var checkDomain func(string) bool
	if cfg.CheckEmailDomain {
		checkDomain = validators.IsEmailDomainValid
	}

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(
		ucIdentity.NewSignUp(userRepo, tokens, checkDomain),
		ucIdentity.NewSignIn(userRepo, tokens),
	)

	userHandler := handlers.NewUserHandler(
		ucIdentity.NewGetUser(userRepo),
		ucIdentity.NewUpdateProfile(userRepo),
		ucIdentity.NewDeleteUser(userRepo),
	)

	catalogHandler := handlers.NewCatalogHandler(
		ucCatalog.NewListCategories(catalogRepo, catalogCache),
		ucCatalog.NewGetCategory(catalogRepo),
		ucCatalog.NewListServices(catalogRepo, catalogCache),
		ucCatalog.NewGetService(catalogRepo),
	)

	offerHandler := handlers.NewOfferHandler(
		ucOffer.NewCreateOffer(offerRepo),
		ucOffer.NewUpdateOffer(offerRepo),
		ucOffer.NewDeleteOffer(offerRepo),
		ucOffer.NewGetOffer(offerRepo),
		ucOffer.NewListOffersForProvider(offerRepo),
		ucOffer.NewListOffersForService(offerRepo),
	)

	bookingHandler := handlers.NewBookingHandler(handlers.BookingUseCases{
		Create:         ucBooking.NewCreateBooking(bookingRepo),
		Accept:         ucBooking.NewAcceptBooking(bookingRepo),
		Reject:         ucBooking.NewRejectBooking(bookingRepo),
		Cancel:         ucBooking.NewCancelBooking(bookingRepo),
		Complete:       ucBooking.NewCompleteBooking(bookingRepo),
		Get:            ucBooking.NewGetBooking(bookingRepo),
		ListByCustomer: ucBooking.NewListBookingsForCustomer(bookingRepo),
		ListByProvider: ucBooking.NewListBookingsForProvider(bookingRepo),
		ListOpen:       ucBooking.NewListOpenBookings(bookingRepo),
		ListAll:        ucBooking.NewListAllBookings(bookingRepo),
	})

	auditLogsHandler := handlers.NewAuditLogsHandler(audit.New(db), cfg.Timezone)

	// ======================================================
	// API (JSON)
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/sign-up", authHandler.SignUp)
		api.POST("/auth/sign-in", authHandler.SignIn)

		// ------------------------------
		// CATALOG + OFFERS (public reads)
		// ------------------------------
		api.GET("/categories", catalogHandler.ListCategories)
		api.GET("/categories/:name", catalogHandler.GetCategory)
		api.GET("/categories/:name/services", catalogHandler.ListCategoryServices)
		api.GET("/services", catalogHandler.ListServices)
		api.GET("/services/:name", catalogHandler.GetService)
		api.GET("/services/:name/offers", offerHandler.ListForService)

		api.GET("/offers/:id", offerHandler.Get)
		api.GET("/providers/:id/offers", offerHandler.ListForProvider)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(tokens))
		{
			secured.GET("/me", userHandler.Me)
			secured.GET("/users/:id", userHandler.Get)
			secured.PUT("/users/:id", userHandler.Update)
			secured.DELETE("/users/:id", userHandler.Delete)

			secured.POST("/offers", offerHandler.Create)
			secured.PATCH("/offers/:id", offerHandler.Update)
			secured.DELETE("/offers/:id", offerHandler.Delete)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings", bookingHandler.ListAll)
			secured.GET("/bookings/open", bookingHandler.ListOpen)
			secured.GET("/bookings/:id", bookingHandler.Get)
			secured.PUT("/bookings/:id/accept", bookingHandler.Accept())
			secured.PUT("/bookings/:id/reject", bookingHandler.Reject())
			secured.PUT("/bookings/:id/cancel", bookingHandler.Cancel())
			secured.PUT("/bookings/:id/complete", bookingHandler.Complete())

			secured.GET("/customers/:id/bookings", bookingHandler.ListForCustomer)
			secured.GET("/providers/:id/bookings", bookingHandler.ListForProvider)

			secured.GET("/admin/audit-logs", auditLogsHandler.List)
		}
	}
}
