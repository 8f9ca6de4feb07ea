package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/MMN3003/swapr-metrics/docs" // Swagger docs
	"github.com/MMN3003/swapr-metrics/src/Infrastructure/ethereum"
	"github.com/MMN3003/swapr-metrics/src/Infrastructure/subgraph"
	campaignSubgraph "github.com/MMN3003/swapr-metrics/src/campaign/adapter/subgraph"
	campaignHD "github.com/MMN3003/swapr-metrics/src/campaign/delivery/http"
	campaignDomain "github.com/MMN3003/swapr-metrics/src/campaign/domain"
	campaign "github.com/MMN3003/swapr-metrics/src/campaign/usecase"
	"github.com/MMN3003/swapr-metrics/src/config"
	cronRepo "github.com/MMN3003/swapr-metrics/src/cron/repository"
	cronUC "github.com/MMN3003/swapr-metrics/src/cron/usecase"
	feesSubgraph "github.com/MMN3003/swapr-metrics/src/fees/adapter/subgraph"
	feesHD "github.com/MMN3003/swapr-metrics/src/fees/delivery/http"
	feesDomain "github.com/MMN3003/swapr-metrics/src/fees/domain"
	fees "github.com/MMN3003/swapr-metrics/src/fees/usecase"
	"github.com/MMN3003/swapr-metrics/src/httpx"
	"github.com/MMN3003/swapr-metrics/src/logger"
	snapshotCron "github.com/MMN3003/swapr-metrics/src/snapshot/adapter/cron"
	snapshotHD "github.com/MMN3003/swapr-metrics/src/snapshot/delivery/http"
	snapshotDomain "github.com/MMN3003/swapr-metrics/src/snapshot/domain"
	snapshotRepo "github.com/MMN3003/swapr-metrics/src/snapshot/repository"
	snapshot "github.com/MMN3003/swapr-metrics/src/snapshot/usecase"
	supplyHD "github.com/MMN3003/swapr-metrics/src/supply/delivery/http"
	supplyDomain "github.com/MMN3003/swapr-metrics/src/supply/domain"
	supply "github.com/MMN3003/swapr-metrics/src/supply/usecase"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

type services struct {
	supply *supply.SupplyService
	fees   *fees.FeesService
	pools  *campaign.PoolsService
	close  func()
}

//	@title			Swapr metrics API
//	@version		1.0
//	@description	Circulating supply, uncollected protocol fees and liquidity-mining pools across mainnet, Gnosis Chain and Arbitrum One.
//	@BasePath		/
func main() {
	cfg := config.LoadFromEnv()
	logg := logger.New(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Dependencies ---
	svc, err := buildServices(ctx, cfg, logg)
	if err != nil {
		logg.Fatalf("Failed to build services: %v", err)
	}
	defer svc.close()

	// --- Router ---
	r := gin.New()

	// Core middleware
	r.Use(gin.Recovery())
	r.Use(httpx.RequestLogger(logg))

	// --- Healthcheck ---
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Swagger ---
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// --- API routes ---
	supplyHD.NewHandler(svc.supply, logg).RegisterRoutes(r)
	feesHD.NewHandler(svc.fees, logg).RegisterRoutes(r)
	campaignHD.NewHandler(svc.pools, cfg.Provider, logg).RegisterRoutes(r)

	// --- Snapshots (optional) ---
	if cfg.DatabaseURL != "" {
		scheduler, closeDB, err := startSnapshots(cfg, logg, svc, r)
		if err != nil {
			logg.Fatalf("Failed to start snapshots: %v", err)
		}
		defer closeDB()
		defer scheduler.Stop()
	} else {
		logg.Infof("DATABASE_URL not set, snapshots disabled")
	}

	// --- Start server ---
	logg.Infof("Starting service on %s (env=%s, chains=%d)", cfg.ListenAddr, cfg.Env, len(cfg.Chains))
	logg.Infof("Swagger UI available at http://localhost%s/swagger/index.html", cfg.ListenAddr)

	srv := &http.Server{
		Addr: cfg.ListenAddr,
		Handler: cors.New(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		}).Handler(r),
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      2 * cfg.HTTPTimeout,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatalf("Server terminated unexpectedly: %v", err)
		}
	}()

	<-ctx.Done()
	logg.Infof("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logg.Errorf("Graceful shutdown failed: %v", err)
	}
}

// buildServices wires one subgraph client and one RPC client per tracked chain
// into the three report services.
func buildServices(ctx context.Context, cfg *config.Config, logg *logger.Logger) (*services, error) {
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	supplySources := make(map[config.ChainID]supplyDomain.ChainSource)
	feeSources := make(map[config.ChainID]feesDomain.ChainSource)
	poolSources := make(map[config.ChainID]campaignDomain.ChainSource)
	var rpcs []*ethereum.Client
	closeAll := func() {
		for _, c := range rpcs {
			c.Close()
		}
	}

	for _, id := range cfg.ChainIDs() {
		chain := cfg.Chains[id]
		chainLog := logg.WithField("chain", chain.Key).Zerolog()

		sg, err := subgraph.NewClient(chain.SubgraphURL,
			subgraph.WithHTTPClient(httpClient),
			subgraph.WithLogger(chainLog),
		)
		if err != nil {
			closeAll()
			return nil, err
		}
		rpc, err := ethereum.Dial(ctx, chain.RPCURL, chain.MulticallAddress,
			ethereum.WithHTTPClient(httpClient),
			ethereum.WithLogger(chainLog),
		)
		if err != nil {
			closeAll()
			return nil, err
		}
		rpcs = append(rpcs, rpc)

		if !common.IsHexAddress(chain.FeeReceiver) || !common.IsHexAddress(chain.GovernanceToken) {
			closeAll()
			return nil, errors.New("invalid fee receiver or governance token address for " + chain.Key)
		}

		supplySources[id] = supplyDomain.ChainSource{
			Token:  common.HexToAddress(chain.GovernanceToken),
			Reader: rpc,
		}
		feeSources[id] = feesDomain.ChainSource{
			Key:         chain.Key,
			FeeReceiver: common.HexToAddress(chain.FeeReceiver),
			Pairs:       feesSubgraph.NewPairPort(sg),
			Balances:    rpc,
		}
		poolSources[id] = campaignDomain.ChainSource{
			Chain:  chain,
			Source: campaignSubgraph.NewCampaignPort(sg),
		}
	}

	supplySvc, err := supply.NewService(cfg.Supply, supplySources, logg)
	if err != nil {
		closeAll()
		return nil, err
	}
	return &services{
		supply: supplySvc,
		fees:   fees.NewService(feeSources, logg),
		pools: campaign.NewService(poolSources, cfg.Provider.PairLinkBase, logg,
			campaign.WithStrict(cfg.StrictCampaigns),
		),
		close: closeAll,
	}, nil
}

// startSnapshots opens Postgres, registers the snapshot route and schedules
// report snapshots under a DB lock.
func startSnapshots(cfg *config.Config, logg *logger.Logger, svc *services, r gin.IRouter) (*cron.Cron, func(), error) {
	logg.Infof("Connecting to database")
	gormDB, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger:         gormLogger.Default.LogMode(gormLogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, err
	}

	// Connection pool tuning
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)

	locks, err := cronRepo.NewCronRepo(gormDB, logg)
	if err != nil {
		sqlDB.Close()
		return nil, nil, err
	}
	snapshots, err := snapshotRepo.NewSnapshotRepo(gormDB, logg)
	if err != nil {
		sqlDB.Close()
		return nil, nil, err
	}

	snapshotSvc := snapshot.NewService(snapshots, map[snapshotDomain.Kind]snapshotDomain.Reporter{
		snapshotDomain.KindCirculatingSupply: func(ctx context.Context) (any, error) {
			report, err := svc.supply.CirculatingSupply(ctx)
			if err != nil {
				return nil, err
			}
			return supplyHD.ResponseFromDomain(report), nil
		},
		snapshotDomain.KindProtocolFees: func(ctx context.Context) (any, error) {
			report, err := svc.fees.UncollectedFees(ctx)
			if err != nil {
				return nil, err
			}
			return feesHD.ResponseFromDomain(report), nil
		},
		snapshotDomain.KindPools: func(ctx context.Context) (any, error) {
			report, err := svc.pools.Pools(ctx)
			if err != nil {
				return nil, err
			}
			return campaignHD.PoolsResponseFromDomain(report, cfg.Provider), nil
		},
	}, logg)
	snapshotHD.NewHandler(snapshotSvc, logg).RegisterRoutes(r)

	scheduler := cron.New(cron.WithSeconds())
	lockPort := snapshotCron.NewCronPort(cronUC.NewService(locks, logg))
	if err := snapshot.NewCronService(scheduler, cfg.SnapshotCron, 3*cfg.HTTPTimeout, snapshotSvc, lockPort, logg); err != nil {
		sqlDB.Close()
		return nil, nil, err
	}
	scheduler.Start()
	logg.Infof("Snapshots scheduled (%s)", cfg.SnapshotCron)

	return scheduler, func() { sqlDB.Close() }, nil
}
