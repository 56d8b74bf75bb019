package router

import (
	"time"

	"giveone/config"
	"giveone/internal/handler"
	"giveone/internal/middleware"
	"giveone/internal/models"
	"giveone/internal/repository"
	"giveone/internal/service"
	"giveone/internal/ws"
	"giveone/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// progressNotifier forwards case updates from the donation path to the
// live-progress websocket hub.
type progressNotifier struct {
	hub *ws.ProgressHub
}

func (n progressNotifier) CaseUpdated(c *models.Case) {
	n.hub.Publish(ws.ProgressEvent{
		CaseID:      c.ID,
		Title:       c.Title,
		RaisedCents: c.RaisedCents,
		GoalCents:   c.GoalCents,
		Status:      c.Status,
		UpdatedAt:   time.Now().Unix(),
	})
}

func Setup(cfg *config.Config, db *gorm.DB, cloud cloudinary.Client) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	walletRepo := repository.NewWalletRepository(db)
	txnRepo := repository.NewTransactionRepository(db)
	caseRepo := repository.NewCaseRepository(db)
	donationRepo := repository.NewDonationRepository(db)
	autopayRepo := repository.NewAutopayRepository(db)
	friendRepo := repository.NewFriendRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	progressHub := ws.NewProgressHub()

	// Services
	authSvc := service.NewAuthService(cfg, userRepo, walletRepo, autopayRepo, settingsRepo)
	donationSvc := service.NewDonationService(userRepo, walletRepo, caseRepo, donationRepo, txnRepo, progressNotifier{hub: progressHub})
	autopaySvc := service.NewAutopayService(autopayRepo, caseRepo, walletRepo, donationSvc, cfg.Autopay.MinInterval)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	walletHandler := handler.NewWalletHandler(walletRepo, txnRepo)
	caseHandler := handler.NewCaseHandler(caseRepo, cloud)
	donationHandler := handler.NewDonationHandler(donationSvc, donationRepo)
	meHandler := handler.NewMeHandler(userRepo, walletRepo, caseRepo, donationRepo, autopayRepo, donationSvc, autopaySvc)
	autopayHandler := handler.NewAutopayHandler(autopayRepo, caseRepo)
	friendHandler := handler.NewFriendHandler(friendRepo)
	settingsHandler := handler.NewSettingsHandler(settingsRepo)
	exportHandler := handler.NewExportHandler(userRepo, walletRepo, caseRepo, donationRepo, friendRepo, settingsRepo, autopayRepo)

	authMw := middleware.AuthRequired(&cfg.JWT)

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
		}

		api.GET("/cases", caseHandler.List)
		api.GET("/cases/:id", caseHandler.Get)
		api.POST("/cases/:id/image", authMw, caseHandler.UploadImage)

		api.POST("/donations", authMw, donationHandler.Create)

		me := api.Group("/me")
		me.Use(authMw)
		{
			me.GET("/profile", meHandler.GetProfile)
			me.GET("/dashboard", meHandler.GetDashboard)
			me.GET("/streak", meHandler.GetStreak)
			me.GET("/wallet", walletHandler.GetBalance)
			me.POST("/wallet/topup", walletHandler.Topup)
			me.GET("/wallet/transactions", walletHandler.GetTransactions)
			me.GET("/donations", donationHandler.ListMine)
			me.GET("/donations/month-total", donationHandler.MonthTotal)
			me.GET("/autopay", autopayHandler.Get)
			me.PUT("/autopay", autopayHandler.Update)
			me.GET("/friends", friendHandler.List)
			me.POST("/friends", friendHandler.Add)
			me.DELETE("/friends/:id", friendHandler.Remove)
			me.GET("/settings", settingsHandler.Get)
			me.PUT("/settings", settingsHandler.Update)
			me.GET("/export", exportHandler.Export)
		}
	}

	snapshot := func() []ws.ProgressEvent {
		cases, err := caseRepo.List()
		if err != nil {
			return nil
		}
		events := make([]ws.ProgressEvent, 0, len(cases))
		for _, c := range cases {
			events = append(events, ws.ProgressEvent{
				Type:        "case_progress",
				CaseID:      c.ID,
				Title:       c.Title,
				RaisedCents: c.RaisedCents,
				GoalCents:   c.GoalCents,
				Status:      c.Status,
				UpdatedAt:   c.UpdatedAt.Unix(),
			})
		}
		return events
	}
	r.GET("/ws/progress", ws.UpgradeProgressWS(&cfg.JWT, progressHub, snapshot))

	return r
}
