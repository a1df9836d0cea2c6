// cmd/web/main.go
//
// Portfolio Hub – HTTP entry point.
//
// Boot sequence
// -------------
//
//  1. Load configuration (conf/.env → conf/global.yaml → PORTFOLIO_ env
//     overrides).
//
//  2. Start daily rotating logger (tees to console when running in a TTY).
//
//  3. Open the portfolio database through the shared handle.
//
//  4. Build the tenant cache (lazy-loads each portfolio on first hit),
//     the response cache (Redis when configured, in-process otherwise),
//     and the visitor session manager.
//
//  5. Mount the router:
//
//     • /api/…     – JSON endpoints (users, projects, contact, validate)
//     • /metrics   – Prometheus
//     • /…         – server-rendered portfolio pages
//
//     wrapped in Tenant → RequestInfo → Security → ForceHTTPS middleware.
//
//  6. Serve with hardened timeouts, then drain gracefully on SIGTERM.
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/jatinPrakash2720/portfolio-hub/internal/api"
	"github.com/jatinPrakash2720/portfolio-hub/internal/apicache"
	"github.com/jatinPrakash2720/portfolio-hub/internal/config"
	"github.com/jatinPrakash2720/portfolio-hub/internal/directory"
	"github.com/jatinPrakash2720/portfolio-hub/internal/logger"
	"github.com/jatinPrakash2720/portfolio-hub/internal/mail"
	"github.com/jatinPrakash2720/portfolio-hub/internal/middleware"
	"github.com/jatinPrakash2720/portfolio-hub/internal/requestinfo"
	"github.com/jatinPrakash2720/portfolio-hub/internal/server"
	"github.com/jatinPrakash2720/portfolio-hub/internal/session"
	"github.com/jatinPrakash2720/portfolio-hub/internal/store"
	"github.com/jatinPrakash2720/portfolio-hub/internal/tenant"
	"github.com/jatinPrakash2720/portfolio-hub/internal/verify"
	"github.com/jatinPrakash2720/portfolio-hub/internal/web"
)

// localBase turns a listen address into a loopback base URL for the
// in-process profile fetcher (":8080" → "http://127.0.0.1:8080").
func localBase(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://127.0.0.1" + addr
	}
	return "http://" + addr
}

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func main() {
	//
	// ── 1.  Configuration ───────────────────────────────────────────────
	//
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logOut, err := logger.New(cfg.Paths.Root, runningInTTY())
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}
	defer func() { _ = logOut.Sync() }()

	//
	// ── 2.  Database handle ─────────────────────────────────────────────
	//
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	st, err := store.Handle(ctx, cfg.Database.DSN, cfg.Database.MaxOpen, cfg.Database.MaxIdle)
	cancel()
	if err != nil {
		logOut.Fatalf("connect database: %v", err)
	}
	defer st.Close()
	logOut.Infow("database online")

	//
	// ── 3.  Caches, sessions, and collaborators ─────────────────────────
	//
	rules := cfg.Host.Rules()
	dir := directory.New(rules, cfg.Directory.Entries, cfg.Directory.Fallback)

	idleTTL := tenant.IdleTTL
	if cfg.Cache.TenantIdleMins > 0 {
		idleTTL = time.Duration(cfg.Cache.TenantIdleMins) * time.Minute
	}
	maxEntries := tenant.MaxEntries
	if cfg.Cache.TenantMax > 0 {
		maxEntries = cfg.Cache.TenantMax
	}
	tenants := tenant.New(st, dir, idleTTL, maxEntries)
	defer tenants.Close()

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
	}
	apiTTL := 60 * time.Second
	if cfg.Cache.APITTLSeconds > 0 {
		apiTTL = time.Duration(cfg.Cache.APITTLSeconds) * time.Second
	}
	lruCap := cfg.Cache.LRUCapacity
	if lruCap <= 0 {
		lruCap = 256
	}
	responses := apicache.New(rdb, lruCap, apiTTL)

	sessions := session.NewManager(
		session.NewHTTPFetcher(localBase(cfg.HTTP.ListenAddr)),
		rules,
		30*time.Minute,
	)
	defer sessions.Close()

	var mailer api.Mailer
	if cfg.Mail.APIKey != "" {
		mailer = mail.New(cfg.Mail.APIKey, cfg.Mail.From)
	} else {
		logOut.Warnw("mail API key not configured, contact submissions will be persisted without email")
	}
	checker := verify.New(cfg.Verify.ZeroBounceKey)

	//
	// ── 4.  Router ──────────────────────────────────────────────────────
	//
	apiHandler := api.NewHandler(st, responses, checker, mailer, cfg.Mail.OwnerEmail)
	pages := web.New(tenants, sessions)

	r := chi.NewRouter()
	r.Use(middleware.Tenant(rules))
	r.Use(requestinfo.Enrich)
	r.Use(middleware.Security)
	if cfg.HTTP.ForceHTTPS {
		r.Use(middleware.ForceHTTPS)
	}
	r.Handle("/metrics", promhttp.Handler())
	r.Mount("/api", apiHandler.Routes())
	r.Mount("/", pages.Routes())

	//
	// ── 5.  Serve and drain ─────────────────────────────────────────────
	//
	srv := server.New(cfg.HTTP.ListenAddr, r,
		time.Duration(cfg.HTTP.ReadTimeoutSecs)*time.Second,
		time.Duration(cfg.HTTP.WriteTimeoutSecs)*time.Second,
		time.Duration(cfg.HTTP.IdleTimeoutSecs)*time.Second,
	)

	errCh := make(chan error, 1)
	go func() {
		logOut.Infow("listening", "addr", cfg.HTTP.ListenAddr)
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logOut.Fatalf("http server: %v", err)
		}
	case sig := <-stop:
		logOut.Infow("shutting down", "signal", sig.String())
		shutCtx, shutCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutCancel()
		if err := srv.Shutdown(shutCtx); err != nil {
			logOut.Errorw("shutdown incomplete", "err", err)
		}
	}
}
