package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "finbridge-ledger/internal/adapter/http"
	appmw "finbridge-ledger/internal/adapter/middleware"
	"finbridge-ledger/internal/adapter/repository/mysql"
	"finbridge-ledger/internal/config"
	"finbridge-ledger/internal/domain/account"
	"finbridge-ledger/internal/domain/engine"
	"finbridge-ledger/internal/domain/event"
	"finbridge-ledger/internal/domain/loan"
	"finbridge-ledger/internal/domain/wallet"
	"finbridge-ledger/internal/infrastructure/cache"
	"finbridge-ledger/internal/infrastructure/db"
	ucAdmin "finbridge-ledger/internal/usecase/admin"
	ucLedger "finbridge-ledger/internal/usecase/ledger"
	ucQuery "finbridge-ledger/internal/usecase/query"
	ucWallet "finbridge-ledger/internal/usecase/wallet"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	if err := gdb.AutoMigrate(
		&loan.Loan{},
		&wallet.Connection{},
		&account.Account{},
		&engine.State{},
		&event.Event{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	loans := mysql.NewLoanRepository(gdb)
	wallets := mysql.NewWalletRepository(gdb)
	accounts := mysql.NewAccountRepository(gdb)
	engines := mysql.NewEngineRepository(gdb)
	events := mysql.NewEventRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	if err := engines.Init(context.Background(), strings.ToLower(cfg.OwnerAddress)); err != nil {
		log.Fatalf("engine state: %v", err)
	}

	walletUC := ucWallet.NewUsecase(wallets, tx)
	ledgerUC := ucLedger.NewUsecase(tx, ucLedger.OptionsFromConfig(cfg))
	adminUC := ucAdmin.NewUsecase(tx)
	queryUC := ucQuery.NewUsecase(loans, accounts, events, cfg)

	h := httpadp.NewHandler()
	wh := httpadp.NewWalletHandler(walletUC)
	lh := httpadp.NewLoanHandler(ledgerUC)
	ah := httpadp.NewAdminHandler(adminUC)
	qh := httpadp.NewQueryHandler(queryUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idem := appmw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	// routes
	e.GET("/health", h.Health)

	e.POST("/wallet/connect", wh.Connect, idem)
	e.POST("/wallet/disconnect", wh.Disconnect, idem)
	e.GET("/wallet/:address", wh.IsConnected)

	e.POST("/loans", lh.Create, idem)
	e.POST("/loans/:loan_id/fund", lh.Fund, idem)
	e.POST("/loans/:loan_id/repay", lh.Repay, idem)
	e.POST("/loans/:loan_id/withdraw", lh.Withdraw, idem)

	e.GET("/loans", qh.ListActive)
	e.GET("/loans/:loan_id", qh.GetLoan)
	e.GET("/users/:address/loans", qh.UserLoans)
	e.GET("/users/:address/funded", qh.UserFunded)
	e.GET("/users/:address/stats", qh.UserStats)
	e.GET("/accounts/:address/balance", qh.Balance)
	e.GET("/events", qh.Events)
	e.GET("/constants", qh.Constants)

	e.POST("/admin/pause", ah.Pause, idem)
	e.POST("/admin/unpause", ah.Unpause, idem)
	e.POST("/admin/deposit", ah.Deposit, idem)
	e.POST("/admin/emergency-withdraw", ah.EmergencyWithdraw, idem)
	e.GET("/admin/state", ah.State)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
