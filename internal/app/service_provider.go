package app

import (
	"context"
	"net/http"
	"os"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/klauspost/compress/gzhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	authAPI "lucky_casino/internal/api/auth"
	classicAPI "lucky_casino/internal/api/classic"
	doghouseAPI "lucky_casino/internal/api/doghouse"
	statsAPI "lucky_casino/internal/api/stats"
	userAPI "lucky_casino/internal/api/user"
	"lucky_casino/internal/config"
	"lucky_casino/internal/config/env"
	classicGame "lucky_casino/internal/game/classic"
	doghouseGame "lucky_casino/internal/game/doghouse"
	"lucky_casino/internal/game/rng"
	"lucky_casino/internal/logger"
	"lucky_casino/internal/middleware"
	"lucky_casino/internal/notify"
	"lucky_casino/internal/repository"
	"lucky_casino/internal/repository/auth_repo"
	"lucky_casino/internal/repository/doghouse_repo"
	"lucky_casino/internal/repository/latch_repo"
	"lucky_casino/internal/repository/stats_repo"
	"lucky_casino/internal/repository/user_repo"
	"lucky_casino/internal/service"
	authServ "lucky_casino/internal/service/auth"
	classicServ "lucky_casino/internal/service/classic"
	doghouseServ "lucky_casino/internal/service/doghouse"
	userServ "lucky_casino/internal/service/user"
)

const gameConfigEnvName = "GAME_CONFIG"

type ServiceProvider struct {
	// Logging
	logCfg config.LogConfig
	log    *zap.Logger

	// TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Redis, AMQP
	redisCfg    config.RedisConfig
	redisClient redis.UniversalClient
	amqpCfg     config.AMQPConfig
	reporter    service.OutcomeReporter

	// Game tables
	gameCfg   config.GameConfig
	latch     repository.SpinLatch
	statsRepo *stats_repo.StatsRepo

	// Auth bits
	jwtCfg   config.JWTConfig
	authRepo repository.AuthRepository
	authServ service.AuthService
	authHand *authAPI.Handler

	// User bits
	userRepo repository.UserRepository
	userServ service.UserService
	userHand *userAPI.Handler

	// Dog House bits
	doghouseRepo repository.DogHouseRepository
	doghouseServ service.DogHouseService
	doghouseHand *doghouseAPI.Handler

	// Classic bits
	classicServ service.ClassicService
	classicHand *classicAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router

	// закрываются при остановке в обратном порядке
	closers []func() error
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.log == nil {
		l, err := logger.New(sp.LogCfg())
		if err != nil {
			panic("failed to build logger: " + err.Error())
		}
		sp.log = l
	}
	return sp.log
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
		sp.closers = append(sp.closers, func() error {
			dbc.Close()
			return nil
		})
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}
	return sp.txManager
}

func (sp *ServiceProvider) RedisCfg() config.RedisConfig {
	if sp.redisCfg == nil {
		cfg, err := env.NewRedisConfig()
		if err != nil {
			panic("failed to get redis config: " + err.Error())
		}
		sp.redisCfg = cfg
	}
	return sp.redisCfg
}

// RedisClient nil, если REDIS_ADDR не задан
func (sp *ServiceProvider) RedisClient(ctx context.Context) redis.UniversalClient {
	if sp.redisClient == nil && sp.RedisCfg().Addr() != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     sp.RedisCfg().Addr(),
			Password: sp.RedisCfg().Password(),
			DB:       sp.RedisCfg().DB(),
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			panic("failed to ping redis: " + err.Error())
		}
		sp.redisClient = rdb
		sp.closers = append(sp.closers, rdb.Close)
	}
	return sp.redisClient
}

func (sp *ServiceProvider) SpinLatch(ctx context.Context) repository.SpinLatch {
	if sp.latch == nil {
		if rdb := sp.RedisClient(ctx); rdb != nil {
			sp.latch = latch_repo.NewRedisLatch(rdb)
		} else {
			sp.Logger().Warn("REDIS_ADDR not set, spin latch is process-local")
			sp.latch = latch_repo.NewMemoryLatch()
		}
	}
	return sp.latch
}

func (sp *ServiceProvider) AMQPCfg() config.AMQPConfig {
	if sp.amqpCfg == nil {
		cfg, err := env.NewAMQPConfig()
		if err != nil {
			panic("failed to get amqp config: " + err.Error())
		}
		sp.amqpCfg = cfg
	}
	return sp.amqpCfg
}

// OutcomeReporter AMQP, если задан AMQP_URL, иначе лог
func (sp *ServiceProvider) OutcomeReporter() service.OutcomeReporter {
	if sp.reporter == nil {
		if url := sp.AMQPCfg().URL(); url != "" {
			r, err := notify.NewAMQPReporter(url, sp.AMQPCfg().Exchange(), sp.Logger())
			if err != nil {
				panic("failed to connect to amqp: " + err.Error())
			}
			sp.closers = append(sp.closers, r.Close)
			sp.reporter = r
		} else {
			sp.reporter = notify.NewLogReporter(sp.Logger())
		}
	}
	return sp.reporter
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		path := os.Getenv(gameConfigEnvName)
		if path == "" {
			path = "config.yaml"
		}
		cfg, err := env.NewGameConfigFromYAML(path)
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) StatsRepository() *stats_repo.StatsRepo {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository(stats_repo.DefaultWindowSize)
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) DogHouseRepo(ctx context.Context) repository.DogHouseRepository {
	if sp.doghouseRepo == nil {
		sp.doghouseRepo = doghouse_repo.NewDogHouseRepository(sp.DBClient(ctx))
	}
	return sp.doghouseRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = authServ.NewAuthService(
			sp.TXManager(ctx),
			sp.UserRepo(ctx),
			sp.AuthRepo(ctx),
			sp.JWTCfg(),
			sp.GameCfg().StartingBalance(),
			sp.Logger(),
		)
	}
	return sp.authServ
}

func (sp *ServiceProvider) UserService(ctx context.Context) service.UserService {
	if sp.userServ == nil {
		sp.userServ = userServ.NewUserService(sp.UserRepo(ctx), sp.AuthRepo(ctx), sp.TXManager(ctx), sp.Logger())
	}
	return sp.userServ
}

func (sp *ServiceProvider) DogHouseService(ctx context.Context) service.DogHouseService {
	if sp.doghouseServ == nil {
		settings := sp.GameCfg().DogHouse()
		engine, err := doghouseGame.NewEngine(settings.Engine, rng.Default())
		if err != nil {
			panic("failed to create doghouse engine: " + err.Error())
		}

		sp.doghouseServ = doghouseServ.NewDogHouseService(doghouseServ.Deps{
			Engine:    engine,
			Settings:  settings,
			LatchTTL:  sp.GameCfg().SpinLatchTTL(),
			Repo:      sp.DogHouseRepo(ctx),
			UserRepo:  sp.UserRepo(ctx),
			StatsRepo: sp.StatsRepository(),
			Latch:     sp.SpinLatch(ctx),
			Reporter:  sp.OutcomeReporter(),
			TxManager: sp.TXManager(ctx),
			Log:       sp.Logger(),
		})
	}
	return sp.doghouseServ
}

func (sp *ServiceProvider) ClassicService(ctx context.Context) service.ClassicService {
	if sp.classicServ == nil {
		settings := sp.GameCfg().Classic()
		engine, err := classicGame.NewEngine(settings.Engine, rng.Default())
		if err != nil {
			panic("failed to create classic engine: " + err.Error())
		}

		sp.classicServ = classicServ.NewClassicService(classicServ.Deps{
			Engine:    engine,
			Settings:  settings,
			LatchTTL:  sp.GameCfg().SpinLatchTTL(),
			UserRepo:  sp.UserRepo(ctx),
			StatsRepo: sp.StatsRepository(),
			Latch:     sp.SpinLatch(ctx),
			Reporter:  sp.OutcomeReporter(),
			TxManager: sp.TXManager(ctx),
			Log:       sp.Logger(),
		})
	}
	return sp.classicServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv:          sp.AuthService(ctx),
			Log:           sp.Logger(),
			CookieMaxAge:  int(sp.JWTCfg().RefreshTokenDuration().Seconds()),
			SecureCookies: !sp.LogCfg().Development(),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) UserHandler(ctx context.Context) *userAPI.Handler {
	if sp.userHand == nil {
		sp.userHand = userAPI.NewHandler(userAPI.HandlerDeps{Serv: sp.UserService(ctx), Log: sp.Logger()})
	}
	return sp.userHand
}

func (sp *ServiceProvider) DogHouseHandler(ctx context.Context) *doghouseAPI.Handler {
	if sp.doghouseHand == nil {
		sp.doghouseHand = doghouseAPI.NewHandler(doghouseAPI.HandlerDeps{Serv: sp.DogHouseService(ctx), Log: sp.Logger()})
	}
	return sp.doghouseHand
}

func (sp *ServiceProvider) ClassicHandler(ctx context.Context) *classicAPI.Handler {
	if sp.classicHand == nil {
		sp.classicHand = classicAPI.NewHandler(classicAPI.HandlerDeps{Serv: sp.ClassicService(ctx), Log: sp.Logger()})
	}
	return sp.classicHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.RequestID)
		r.Use(chimw.RealIP)
		r.Use(middleware.Logger(sp.Logger()))
		r.Use(chimw.Recoverer)
		r.Use(gzipMiddleware)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		requireAuth := middleware.Auth(sp.JWTCfg().AccessTokenSecretKey())

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		// Player endpoints
		userHandler := sp.UserHandler(ctx)
		r.Get("/players/top", userHandler.TopPlayers)
		r.With(requireAuth).Route("/me", func(rr chi.Router) {
			rr.Get("/", userHandler.Profile)
			rr.Delete("/", userHandler.Deactivate)
			rr.Post("/deposit", userHandler.Deposit)
		})

		// Dog House endpoints
		doghouseHandler := sp.DogHouseHandler(ctx)
		r.With(requireAuth).Route("/doghouse", func(rr chi.Router) {
			rr.Post("/spin", doghouseHandler.Spin)
			rr.Get("/state", doghouseHandler.State)
			rr.Put("/bet", doghouseHandler.SetBet)
			rr.Post("/bonus/end", doghouseHandler.EndBonus)
		})

		// Classic endpoints
		classicHandler := sp.ClassicHandler(ctx)
		r.With(requireAuth).Post("/classic/spin", classicHandler.Spin)

		r.Get("/stats", statsAPI.NewHandler(sp.StatsRepository()).Snapshot)

		sp.router = r
	}

	return sp.router
}

// Close освобождает ресурсы в порядке, обратном созданию
func (sp *ServiceProvider) Close() error {
	var err error
	for i := len(sp.closers) - 1; i >= 0; i-- {
		err = multierr.Append(err, sp.closers[i]())
	}
	sp.closers = nil
	return err
}

func gzipMiddleware(next http.Handler) http.Handler {
	return gzhttp.GzipHandler(next)
}
