package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/mobilitystats/internal/auth"
	"github.com/2beens/mobilitystats/internal/config"
	"github.com/2beens/mobilitystats/internal/db"
	"github.com/2beens/mobilitystats/internal/middleware"
	"github.com/2beens/mobilitystats/internal/misc"
	"github.com/2beens/mobilitystats/internal/mobility/badges"
	"github.com/2beens/mobilitystats/internal/mobility/checkins"
	"github.com/2beens/mobilitystats/internal/mobility/goals"
	"github.com/2beens/mobilitystats/internal/mobility/insights"
	"github.com/2beens/mobilitystats/internal/mobility/posture"
	"github.com/2beens/mobilitystats/internal/mobility/streaks"
	"github.com/2beens/mobilitystats/internal/mobility/workouts"
	"github.com/2beens/mobilitystats/internal/telemetry/metrics"
	"github.com/2beens/mobilitystats/internal/telemetry/tracing"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	mobileAppSecret   string // used with the companion mobility tracking phone app
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	MobileAppSecret         string
	VersionInfo             string
	AdminUsername           string
	AdminPasswordHash       string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": "mobilitystats_db"},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0) // will be set to 1 when all is set and ran

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewAuthService(&auth.Admin{
		Username:     params.AdminUsername,
		PasswordHash: params.AdminPasswordHash,
	}, auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "mobility-backend")
	if err != nil {
		return nil, err
	}

	return &Server{
		config:          params.Config,
		dbPool:          dbPool,
		mobileAppSecret: params.MobileAppSecret,
		versionInfo:     params.VersionInfo,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	miscHandler := misc.NewHandler(s.versionInfo, s.authService)
	miscHandler.SetupRoutes(r, reqRateLimiter, s.metricsManager, s.config.LoginRateLimitAllowedPerMin)

	workoutsRepo := workouts.NewRepo(s.dbPool)
	workoutsHandler := workouts.NewHandler(workoutsRepo, s.metricsManager)
	r.HandleFunc("/mobility/workouts", workoutsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-workout")
	r.HandleFunc("/mobility/workouts/import", workoutsHandler.HandleImport).Methods("POST", "OPTIONS").Name("import-workouts")
	r.HandleFunc("/mobility/workouts/list/page/{page}/size/{size}", workoutsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/mobility/workouts/{id}", workoutsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	r.HandleFunc("/mobility/workouts/{id}", workoutsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")
	r.HandleFunc("/mobility/stats/weekly-volume", workoutsHandler.HandleWeeklyVolume).Methods("GET", "OPTIONS").Name("stats-weekly-volume")
	r.HandleFunc("/mobility/stats/exercise/{exid}/weight-trend", workoutsHandler.HandleWeightTrend).Methods("GET", "OPTIONS").Name("stats-weight-trend")
	r.HandleFunc("/mobility/stats/exercise/{exid}/side-volume", workoutsHandler.HandleSideVolumeTrend).Methods("GET", "OPTIONS").Name("stats-side-volume")
	r.HandleFunc("/mobility/stats/asymmetry", workoutsHandler.HandleAsymmetry).Methods("GET", "OPTIONS").Name("stats-asymmetry")

	checkinsRepo := checkins.NewRepo(s.dbPool)
	checkinsHandler := checkins.NewHandler(checkinsRepo, s.metricsManager)
	r.HandleFunc("/mobility/checkins", checkinsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-checkin")
	r.HandleFunc("/mobility/checkins", checkinsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-checkins")
	r.HandleFunc("/mobility/checkins/{id}", checkinsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-checkin")

	postureRepo := posture.NewRepo(s.dbPool)
	postureHandler := posture.NewHandler(postureRepo)
	r.HandleFunc("/mobility/posture", postureHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-posture-session")
	r.HandleFunc("/mobility/posture", postureHandler.HandleList).Methods("GET", "OPTIONS").Name("list-posture-sessions")
	r.HandleFunc("/mobility/posture/{id}", postureHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-posture-session")

	goalsRepo := goals.NewRepo(s.dbPool)
	goalsHandler := goals.NewHandler(goalsRepo)
	r.HandleFunc("/mobility/goals", goalsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-goal")
	r.HandleFunc("/mobility/goals", goalsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-goals")
	r.HandleFunc("/mobility/goals/{id}", goalsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-goal")
	r.HandleFunc("/mobility/goals/{id}", goalsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-goal")
	r.HandleFunc("/mobility/goals/{id}/status", goalsHandler.HandleUpdateStatus).Methods("PUT", "OPTIONS").Name("update-goal-status")
	r.HandleFunc("/mobility/goals/{id}/progress", goalsHandler.HandleAddProgress).Methods("POST", "OPTIONS").Name("new-goal-progress")
	r.HandleFunc("/mobility/goals/{id}/progress", goalsHandler.HandleProgress).Methods("GET", "OPTIONS").Name("get-goal-progress")

	streaksHandler := streaks.NewHandler(workoutsRepo, postureRepo)
	r.HandleFunc("/mobility/streak", streaksHandler.HandleStreak).Methods("GET", "OPTIONS").Name("streak")
	r.HandleFunc("/mobility/streak/heatmap/{months}", streaksHandler.HandleHeatmap).Methods("GET", "OPTIONS").Name("streak-heatmap")

	insightsHandler := insights.NewHandler(
		insights.NewSnapshotBuilder(
			workouts.NewAnalyzer(workoutsRepo),
			workoutsRepo,
			checkinsRepo,
			postureRepo,
		),
		insights.NewDismissalStore(s.redisClient),
		s.metricsManager,
	)
	r.HandleFunc("/mobility/insights", insightsHandler.HandleGenerate).Methods("GET", "OPTIONS").Name("insights")
	r.HandleFunc("/mobility/insights/{id}/dismiss", insightsHandler.HandleDismiss).Methods("POST", "OPTIONS").Name("dismiss-insight")

	badgesRepo := badges.NewRepo(s.dbPool)
	badgesHandler := badges.NewHandler(
		goalsRepo,
		badges.NewAwarder(badgesRepo),
		badgesRepo,
		s.metricsManager,
	)
	r.HandleFunc("/mobility/badges/evaluate", badgesHandler.HandleEvaluate).Methods("POST", "OPTIONS").Name("evaluate-badges")
	r.HandleFunc("/mobility/badges/catalog", badgesHandler.HandleCatalog).Methods("GET", "OPTIONS").Name("badges-catalog")
	r.HandleFunc("/mobility/badges", badgesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-badges")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(
		s.mobileAppSecret,
		s.loginChecker,
	)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(_ context.Context, host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      otelhttp.NewHandler(router, "mobility-backend"),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusHost, strconv.Itoa(s.config.PrometheusPort))
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
