package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/SumitSharma2000/Car-Wash-APP/internal/audit"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/config"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/domain/account"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/handlers"
	infraRepo "github.com/SumitSharma2000/Car-Wash-APP/internal/infra/repository"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/infra/security"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/metrics"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/middleware"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/timezone"
	ucAccount "github.com/SumitSharma2000/Car-Wash-APP/internal/usecase/account"
	ucAuth "github.com/SumitSharma2000/Car-Wash-APP/internal/usecase/auth"
	ucBooking "github.com/SumitSharma2000/Car-Wash-APP/internal/usecase/booking"
	ucReset "github.com/SumitSharma2000/Car-Wash-APP/internal/usecase/passwordreset"
)

// Deps are the process-wide collaborators built in main.
type Deps struct {
	DB          *gorm.DB
	Config      *config.Config
	Notifier    account.Notifier
	Audit       *audit.Dispatcher
	AuthLimiter *middleware.RateLimiter

	// BcryptCost defaults to bcrypt.DefaultCost; tests lower it.
	BcryptCost int
}

func RegisterRoutes(r *gin.Engine, d Deps) error {
	cfg := d.Config

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.MetricsMiddleware(),
		middleware.CORSMiddleware(cfg.CORSAllowedOrigins),
	)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	accountRepo := infraRepo.NewAccountGormRepository(d.DB)
	resetTokenRepo := infraRepo.NewResetTokenGormRepository(d.DB)
	bookingRepo := infraRepo.NewBookingGormRepository(d.DB)
	txManager := infraRepo.NewGormTransactionManager(d.DB)

	cost := d.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hasher := security.NewBcryptHasher(cost)

	issuer, err := security.NewJWTIssuer(cfg.JWTSecret, time.Duration(cfg.JWTExpiryHours)*time.Hour)
	if err != nil {
		return err
	}

	// ======================================================
	// USE CASES
	// ======================================================
	signupUC := ucAuth.NewSignup(accountRepo, hasher, issuer, d.Audit)
	loginUC := ucAuth.NewLogin(accountRepo, hasher, issuer)
	profileUC := ucAuth.NewGetProfile(accountRepo)

	forgotUC := ucReset.NewForgotPassword(txManager, d.Notifier, d.Audit)
	resetUC := ucReset.NewResetPassword(txManager, resetTokenRepo, hasher, d.Audit)

	createAccountUC := ucAccount.NewCreateAccount(accountRepo, hasher, d.Audit)
	updateAccountUC := ucAccount.NewUpdateAccount(txManager, accountRepo, d.Audit)
	deleteAccountUC := ucAccount.NewDeleteAccount(txManager, d.Audit)
	accountQueries := ucAccount.NewQueries(accountRepo)

	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, d.Audit)
	updateBookingUC := ucBooking.NewUpdateBooking(bookingRepo, d.Audit)
	updateStatusUC := ucBooking.NewUpdateBookingStatus(bookingRepo, d.Audit)
	assignProviderUC := ucBooking.NewAssignProvider(bookingRepo, d.Audit)
	deleteBookingUC := ucBooking.NewDeleteBooking(bookingRepo, d.Audit)
	bookingQueries := ucBooking.NewQueries(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(
		signupUC,
		loginUC,
		profileUC,
		forgotUC,
		resetUC,
		cfg.VerifyEmailDomain,
	)

	accountHandler := handlers.NewAccountHandler(
		createAccountUC,
		updateAccountUC,
		deleteAccountUC,
		accountQueries,
	)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		updateBookingUC,
		updateStatusUC,
		assignProviderUC,
		deleteBookingUC,
		bookingQueries,
		timezone.Location(cfg.BusinessTimezone),
	)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	metrics.Register()
	r.GET("/metrics", metrics.Handler())

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		authAPI := api.Group("/auth")
		if d.AuthLimiter != nil {
			authAPI.Use(d.AuthLimiter.Middleware())
		}
		{
			authAPI.POST("/signup", authHandler.Signup)
			authAPI.POST("/login", authHandler.Login)
			authAPI.POST("/forgot-password", authHandler.ForgotPassword)
			authAPI.POST("/reset-password", authHandler.ResetPassword)

			authAPI.GET("/me", middleware.AuthMiddleware(issuer), authHandler.Me)
		}

		// ------------------------------
		// USERS (account directory)
		// ------------------------------
		users := api.Group("/users")
		{
			users.POST("", accountHandler.Create)
			users.GET("", accountHandler.List)
			users.GET("/search", accountHandler.Search)
			users.GET("/:id", accountHandler.Get)
			users.PUT("/:id", accountHandler.Update)
			users.DELETE("/:id", accountHandler.Delete)

			users.GET("/email/:email", accountHandler.GetByEmail)
			users.GET("/role/:role", accountHandler.ListByRole)
			users.GET("/stats/:role", accountHandler.CountByRole)
		}

		// ------------------------------
		// BOOKINGS
		// ------------------------------
		bookings := api.Group("/bookings")
		{
			bookings.POST("", bookingHandler.Create)
			bookings.GET("", bookingHandler.List)
			bookings.GET("/:id", bookingHandler.Get)
			bookings.PUT("/:id", bookingHandler.Update)
			bookings.DELETE("/:id", bookingHandler.Delete)

			bookings.GET("/customer/:customerId", bookingHandler.ListByCustomer)
			bookings.GET("/provider/:providerId", bookingHandler.ListByProvider)
			bookings.GET("/status/:status", bookingHandler.ListByStatus)

			bookings.PATCH("/:id/status", bookingHandler.UpdateStatus)
			bookings.PATCH("/:id/assign/:providerId", bookingHandler.AssignProvider)

			bookings.GET("/stats/provider/:providerId/status/:status", bookingHandler.CountByProviderAndStatus)
		}
	}

	return nil
}
