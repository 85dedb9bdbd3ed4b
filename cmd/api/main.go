package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMW "github.com/labstack/echo/v4/middleware"

	httpadp "coopvault-backend/internal/adapter/http"
	"coopvault-backend/internal/adapter/middleware"
	"coopvault-backend/internal/adapter/repository/mysql"
	"coopvault-backend/internal/config"
	"coopvault-backend/internal/infrastructure/cache"
	"coopvault-backend/internal/infrastructure/db"
	"coopvault-backend/internal/infrastructure/mail"
	auctionUC "coopvault-backend/internal/usecase/auction"
	loanUC "coopvault-backend/internal/usecase/loan"
	memberUC "coopvault-backend/internal/usecase/member"
	repaymentUC "coopvault-backend/internal/usecase/repayment"
	settingsUC "coopvault-backend/internal/usecase/settings"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	mailer := mail.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)

	loanRepo := mysql.NewLoanRepository(gdb)
	repaymentRepo := mysql.NewRepaymentRepository(gdb)
	auctionRepo := mysql.NewAuctionRepository(gdb)
	userRepo := mysql.NewUserRepository(gdb)
	investmentRepo := mysql.NewInvestmentRepository(gdb)
	settingsRepo := mysql.NewSettingsRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	loans := loanUC.NewUsecase(loanRepo, uow, mailer)
	repayments := repaymentUC.NewUsecase(repaymentRepo, uow)
	auctions := auctionUC.NewUsecase(auctionRepo, uow, mailer)
	rates := settingsUC.NewUsecase(settingsRepo)
	members := memberUC.NewUsecase(userRepo, investmentRepo, loanRepo)

	h := httpadp.NewHandler()
	loanH := httpadp.NewLoanHandler(loans)
	repaymentH := httpadp.NewRepaymentHandler(repayments)
	auctionH := httpadp.NewAuctionHandler(auctions)
	settingsH := httpadp.NewSettingsHandler(rates)
	memberH := httpadp.NewMemberHandler(members)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echoMW.Logger(), echoMW.Recover())

	e.GET("/health", h.Health)
	e.GET("/loans/:loan_id", loanH.Get)
	e.GET("/members/:user_id/loans", loanH.ListByBorrower)
	e.GET("/members/:user_id/guarantor-score", memberH.GuarantorScore)
	e.GET("/auctions", auctionH.ListActive)
	e.GET("/auctions/:auction_id", auctionH.Get)
	e.GET("/repayments/:repayment_id", repaymentH.Get)
	e.GET("/settings/rates", settingsH.GetRates)

	// Mutating routes go through the redis idempotency guard.
	idemp := middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)
	m := e.Group("", idemp)
	m.POST("/loans", loanH.Apply)
	m.POST("/loans/:loan_id/approve", loanH.Approve)
	m.POST("/loans/:loan_id/reject", loanH.Reject)
	m.POST("/loans/:loan_id/liquidate", loanH.Liquidate)
	m.POST("/loans/:loan_id/processing-fee", loanH.SetProcessingFee)
	m.POST("/repayments", repaymentH.Submit)
	m.POST("/repayments/:repayment_id/approve", repaymentH.Approve)
	m.POST("/repayments/:repayment_id/reject", repaymentH.Reject)
	m.POST("/auctions", auctionH.Create)
	m.POST("/auctions/:auction_id/bids", auctionH.PlaceBid)
	m.POST("/auctions/:auction_id/close", auctionH.Close)
	m.POST("/auctions/:auction_id/cancel", auctionH.Cancel)
	m.PUT("/settings/rates", settingsH.UpdateRates)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
