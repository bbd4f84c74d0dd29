package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/escrow/base/ctx"
	"github.com/x-xyz/escrow/base/database/mongoclient"
	"github.com/x-xyz/escrow/base/database/redisclient"
	"github.com/x-xyz/escrow/base/log"
	"github.com/x-xyz/escrow/base/metrics"
	bValidator "github.com/x-xyz/escrow/base/validator"
	"github.com/x-xyz/escrow/domain"
	"github.com/x-xyz/escrow/domain/config"
	"github.com/x-xyz/escrow/domain/keys"
	"github.com/x-xyz/escrow/domain/purchase"
	mmiddleware "github.com/x-xyz/escrow/middleware"
	"github.com/x-xyz/escrow/service/cache"
	"github.com/x-xyz/escrow/service/cache/provider"
	"github.com/x-xyz/escrow/service/cache/provider/compound"
	"github.com/x-xyz/escrow/service/cache/provider/primitive"
	redisProvider "github.com/x-xyz/escrow/service/cache/provider/redis"
	"github.com/x-xyz/escrow/service/payment"
	"github.com/x-xyz/escrow/service/query"
	"github.com/x-xyz/escrow/service/redis"
	"github.com/x-xyz/escrow/service/registry"
	"github.com/x-xyz/escrow/service/scheduler"
	auth_delivery "github.com/x-xyz/escrow/stores/auth/delivery/http"
	auth_middleware "github.com/x-xyz/escrow/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/x-xyz/escrow/stores/auth/usecase"
	config_delivery "github.com/x-xyz/escrow/stores/config/delivery/http"
	config_repository "github.com/x-xyz/escrow/stores/config/repository"
	config_usecase "github.com/x-xyz/escrow/stores/config/usecase"
	hc_delivery "github.com/x-xyz/escrow/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/escrow/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/escrow/stores/healthcheck/usecase"
	ledger_delivery "github.com/x-xyz/escrow/stores/ledger/delivery/http"
	ledger_repository "github.com/x-xyz/escrow/stores/ledger/repository"
	ledger_usecase "github.com/x-xyz/escrow/stores/ledger/usecase"
	listing_delivery "github.com/x-xyz/escrow/stores/listing/delivery/http"
	listing_repository "github.com/x-xyz/escrow/stores/listing/repository"
	listing_usecase "github.com/x-xyz/escrow/stores/listing/usecase"
	purchase_delivery "github.com/x-xyz/escrow/stores/purchase/delivery/http"
	purchase_repository "github.com/x-xyz/escrow/stores/purchase/repository"
	purchase_usecase "github.com/x-xyz/escrow/stores/purchase/usecase"
)

func init() {
	configPath := pflag.String("config", "infra/configs/config.yaml", "path of the yaml config")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configPath)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func ensureIndexes(context ctx.Ctx, q query.Mongo) {
	indexes := []struct {
		table  domain.Table
		keys   bson.D
		unique bool
	}{
		{domain.TableListings, bson.D{{Key: "assetId", Value: 1}}, true},
		{domain.TableListings, bson.D{{Key: "ownerId", Value: 1}}, false},
		{domain.TablePurchases, bson.D{{Key: "id", Value: 1}}, true},
		{domain.TablePurchases, bson.D{{Key: "state", Value: 1}, {Key: "updatedAt", Value: 1}}, false},
		{domain.TablePurchases, bson.D{{Key: "buyer", Value: 1}, {Key: "updatedAt", Value: 1}}, false},
		{domain.TableLedgerEntries, bson.D{{Key: "id", Value: 1}}, true},
		{domain.TableLedgerEntries, bson.D{{Key: "purchaseId", Value: 1}, {Key: "createdAt", Value: 1}}, false},
		{domain.TableMarketplace, bson.D{{Key: "key", Value: 1}}, true},
	}
	for _, idx := range indexes {
		if err := q.EnsureIndex(context, idx.table, idx.keys, idx.unique); err != nil {
			context.WithFields(log.Fields{
				"table": idx.table,
				"keys":  idx.keys,
				"err":   err,
			}).Panic("q.EnsureIndex failed")
		}
	}
}

func bootstrapMarketplace(context ctx.Ctx, uc config.UseCase) {
	minPrice, err := domain.ParseAmount(viper.GetString("marketplace.minPrice"))
	if err != nil {
		context.WithField("err", err).Panic("invalid marketplace.minPrice")
	}
	m, err := uc.Bootstrap(context, &config.Marketplace{
		Owner:         domain.AccountId(viper.GetString("marketplace.owner")),
		MinPrice:      minPrice,
		RoyaltyBps:    viper.GetUint64("marketplace.royaltyBps"),
		Registry:      domain.AccountId(viper.GetString("marketplace.registry")),
		Charity:       domain.AccountId(viper.GetString("marketplace.charity")),
		MaxRecipients: viper.GetInt("marketplace.maxRecipients"),
	})
	if err != nil {
		context.WithField("err", err).Panic("config.Bootstrap failed")
	}
	context.WithField("marketplace", m).Info("marketplace config loaded")
}

// reconcile moves purchases whose registry call never came back to stuck.
func reconcile(context ctx.Ctx, uc purchase.UseCase, interval, expiry time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-context.Done():
			return
		case <-ticker.C:
			if _, err := uc.Reconcile(context, expiry); err != nil {
				context.WithField("err", err).Error("purchase.Reconcile failed")
			}
		}
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(bValidator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	// a purchase reserves its listing and records itself in one transaction
	if err := mongoClient.RequireTransactions(context); !checkIndex && err != nil {
		context.WithField("err", err).Panic("mongo.RequireTransactions failed")
	}
	q := query.New(mongoClient, checkIndex)
	ensureIndexes(context, q)

	// init Redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
		PoolMultiplier: redisCachePoolMultiplier,
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})

	// in-process layer in front of redis, capped so other instances' writes
	// show up quickly
	configCache := cache.New(cache.ServiceConfig{
		Ttl: viper.GetDuration("marketplaceCache.ttl"),
		Pfx: keys.PfxMarketplaceConfig,
		Cache: compound.NewCompound([]provider.Provider{
			primitive.NewPrimitive(keys.PfxMarketplaceConfig, 1, viper.GetDuration("marketplaceCache.localTtl")),
			redisProvider.NewRedis(redisCache),
		}),
	})
	httpCache := mmiddleware.NewHttpCache(compound.NewCompound([]provider.Provider{
		primitive.NewPrimitive("httpCache", 16, viper.GetDuration("http.listingsCacheTtl")),
		redisProvider.NewRedis(redisCache),
	}))

	// external services
	registryClient := registry.NewClient(&registry.ClientCfg{
		HttpClient: http.Client{},
		BaseUrl:    viper.GetString("registry.baseUrl"),
		ApiKey:     viper.GetString("registry.apiKey"),
		Timeout:    viper.GetDuration("registry.timeout"),
	})
	paymentClient := payment.NewClient(&payment.ClientCfg{
		BaseUrl:      viper.GetString("payment.baseUrl"),
		ApiKey:       viper.GetString("payment.apiKey"),
		Timeout:      viper.GetDuration("payment.timeout"),
		RetryMax:     viper.GetInt("payment.retryMax"),
		RetryWaitMin: viper.GetDuration("payment.retryWaitMin"),
		RetryWaitMax: viper.GetDuration("payment.retryWaitMax"),
	})
	sched := scheduler.New(&scheduler.Config{
		Registry:        registryClient,
		Redis:           redisCache,
		Workers:         viper.GetInt("purchase.workers"),
		QueueLength:     viper.GetInt("purchase.queueLength"),
		ScheduleTimeout: viper.GetDuration("purchase.scheduleTimeout"),
		CallTimeout:     viper.GetDuration("purchase.callTimeout"),
		GuardTTL:        viper.GetDuration("purchase.guardTtl"),
	})

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	configRepo := config_repository.NewConfigRepo(q)
	listingRepo := listing_repository.NewListingRepo(q)
	purchaseRepo := purchase_repository.NewPurchaseRepo(q)
	ledgerRepo := ledger_repository.NewLedgerRepo(q)

	hc := hc_usecase.New(hcRepo)
	marketplace := config_usecase.New(&config_usecase.ConfigUseCaseCfg{
		Repo:  configRepo,
		Cache: configCache,
	})
	bootstrapMarketplace(context, marketplace)
	listing := listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
		Repo:   listingRepo,
		Config: marketplace,
	})
	ledger := ledger_usecase.New(&ledger_usecase.LedgerUseCaseCfg{
		Repo:       ledgerRepo,
		Transferer: paymentClient,
	})
	purchase := purchase_usecase.New(&purchase_usecase.PurchaseUseCaseCfg{
		Repo:        purchaseRepo,
		ListingRepo: listingRepo,
		Config:      marketplace,
		Ledger:      ledger,
		Scheduler:   sched,
		Tx:          q,
	})
	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"), viper.GetDuration("auth.tokenTtl"))
	authMiddleware := auth_middleware.New(auth)

	hc_delivery.New(e, hc)
	if viper.GetBool("auth.enableSign") {
		auth_delivery.New(e, auth)
	}
	config_delivery.New(e, marketplace, authMiddleware)
	listing_delivery.New(e, listing, authMiddleware,
		mmiddleware.ValidAccountIdQuery("owner"),
		httpCache.CacheHttp(viper.GetDuration("http.listingsCacheTtl")),
	)
	purchase_delivery.New(e, purchase, authMiddleware, mmiddleware.ValidAccountIdQuery("buyer"))
	ledger_delivery.New(e, ledger)

	reconcileCtx, stopReconcile := ctx.WithCancel(context)
	go reconcile(reconcileCtx, purchase, viper.GetDuration("purchase.reconcileInterval"), viper.GetDuration("purchase.pendingExpiry"))

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	stopReconcile()
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
	// stop accepting transfers; whatever never settles is picked up by the reconciler on the next start
	sched.Release()
}
