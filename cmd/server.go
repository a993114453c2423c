package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"sendr/internal/chain"
	"sendr/internal/config"
	"sendr/internal/core"
	"sendr/internal/db"
	"sendr/internal/fee"
	"sendr/internal/http/handler"
	"sendr/internal/http/handler/middleware"
	"sendr/internal/http/payload"
	"sendr/internal/http/server"
	"sendr/internal/keystore"
	"sendr/internal/observability"
	"sendr/internal/prices"
	"sendr/internal/relay"
	"sendr/internal/repository"
	"sendr/internal/resolver"
	"sendr/pkg/jwt"
	"sendr/pkg/log"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("sendr", zapcore.InfoLevel)

	cfg, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	observability.Init()

	dbConn, err := db.NewPostgresDB(cfg.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	repo := repository.NewWalletRepository(dbConn)
	if err := repo.MigrateAndSeed(context.Background(), repository.DefaultTokens()); err != nil {
		logger.Errorw("failed to migrate and seed database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(cfg.JWTSecret))

	// sender key encryption
	keys, err := keystore.New(cfg.KeystoreSecret, cfg.KeystoreSalt)
	if err != nil {
		logger.Errorw("failed to initialize keystore", "error", err)
		return err
	}

	// chain access
	client, err := ethclient.Dial(cfg.NodeURL)
	if err != nil {
		logger.Errorw("node connection failed", "error", err)
		return err
	}
	nodeService := chain.NewNodeService(logger, client, cfg.ChainID, cfg.FallbackGasPrice, cfg.CallTimeout, cfg.SubmitTimeout)

	// price feed: redis TTL cache in front of the market data source
	redisOpts, err := goredis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Errorw("invalid redis url", "error", err)
		return err
	}
	priceFeed := prices.NewFeed(
		logger,
		prices.NewRedisCache(goredis.NewClient(redisOpts)),
		prices.NewCoinGeckoSource(http.DefaultClient),
		cfg.PriceTTL,
		prices.DefaultFallbackPrices())

	// relay orchestrator
	orchestrator, err := relay.NewOrchestrator(logger, nodeService, keys, relay.Config{
		RelayerKeyHex:     cfg.RelayerKeyHex,
		GasMargin:         cfg.RelayerGasMargin,
		NativeTransferGas: cfg.NativeTransferGas,
		TokenTransferGas:  cfg.TokenTransferGas,
	})
	if err != nil {
		logger.Errorw("failed to create relay orchestrator", "error", err)
		return err
	}
	logger.Infow("relay orchestrator ready", "relayer", orchestrator.RelayerAddress())

	feeEngine := fee.NewEngine(fee.Policy{
		DomesticRate:      cfg.DomesticFeeRate,
		InternationalRate: cfg.InternationalFeeRate,
		MinPlatformFeeUSD: cfg.MinPlatformFeeUSD,
		MaxPlatformFeeUSD: cfg.MaxPlatformFeeUSD,
		FreeThresholdUSD:  cfg.FreeThresholdUSD,
		NativeTransferGas: cfg.NativeTransferGas,
		TokenTransferGas:  cfg.TokenTransferGas,
		SponsorGas:        cfg.SponsorGas,
	})

	// sendr
	sendrService := core.NewSendr(
		logger,
		repo,
		resolver.NewResolver(repo, cfg.AliasSuffix),
		feeEngine,
		orchestrator,
		priceFeed,
		nodeService,
		core.NopNotifier{},
		cfg.NativeSymbol)

	// handler
	walletHlr := handler.NewWalletHandler(
		logger,
		payload.Decoder{},
		sendrService)

	// middleware
	auth := middleware.NewAuthMiddleware(logger, jwtService)
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.Handle(handler.Send, auth.Authenticate(http.HandlerFunc(walletHlr.HandleSend)))
	mux.Handle(handler.EstimateFee, auth.Authenticate(http.HandlerFunc(walletHlr.HandleEstimateFee)))
	mux.Handle(handler.GetTransaction, auth.Authenticate(http.HandlerFunc(walletHlr.HandleGetTransaction)))
	mux.HandleFunc(handler.ResolveAddress, walletHlr.HandleResolveAddress)
	mux.HandleFunc(handler.GetBalances, walletHlr.HandleGetBalances)
	mux.HandleFunc(handler.ConfirmDelivery, walletHlr.HandleConfirmDelivery)
	mux.Handle("GET /metrics", promhttp.Handler())

	srv := server.NewHTTP(logger, hdlr, cfg.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
