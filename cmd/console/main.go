package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/studiofolio/site-console/internal/core/domain"
	"github.com/studiofolio/site-console/internal/core/ports"
	"github.com/studiofolio/site-console/internal/core/service"
	"github.com/studiofolio/site-console/internal/infrastructure/config"
	"github.com/studiofolio/site-console/internal/infrastructure/gateway"
	"github.com/studiofolio/site-console/internal/infrastructure/scheme"
	"github.com/studiofolio/site-console/internal/infrastructure/store"
	"github.com/studiofolio/site-console/pkg/logger"
)

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logg := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Persistence port ---
	var st ports.Store
	switch cfg.StoreBackend {
	case "redis":
		rs, err := store.Connect(ctx, store.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB}, logger.Component("store"))
		if err != nil {
			logg.Fatal().Err(err).Msg("redis store init failed")
		}
		defer rs.Close()
		st = rs
	case "memory":
		st = store.NewMemory()
	default:
		st = store.NewFile(cfg.StateFile, logger.Component("store"))
	}

	// --- Gateway ---
	// Navigation is the routing layer's job; headless, we log the forced
	// route change and let the guard's next decision do the rest.
	nav := ports.NavigatorFunc(func(route string) {
		logg.Info().Str("route", route).Msg("navigation forced")
	})
	gw, err := gateway.New(gateway.Config{
		BaseURL:   cfg.APIBaseURL,
		Store:     st,
		Navigator: nav,
		Logger:    logger.Component("gateway"),
	})
	if err != nil {
		logg.Fatal().Err(err).Msg("gateway init failed")
	}

	// --- Ambient state containers ---
	toasts := service.NewToasts(cfg.ToastDwell, nil)
	defer toasts.Close()

	session := service.NewSession(gw, st, logger.Component("session"))
	session.Rehydrate()

	var source ports.SchemeSource
	if cfg.SchemeHintPath != "" {
		source = scheme.NewFileSource(cfg.SchemeHintPath, 0, logger.Component("scheme"))
	} else {
		source = scheme.NewStatic(domain.ResolvedLight)
	}
	themes := service.NewThemeResolver(st, source, func(t domain.ResolvedTheme) {
		logg.Debug().Str("theme", string(t)).Msg("theme applied")
	}, logger.Component("theme"))
	go themes.Run(ctx)

	// --- Domain services ---
	site := service.NewSite(gw, session, toasts, logger.Component("site"))
	site.Load(ctx)

	contact := service.NewContact(gw, toasts, cfg.UnreadPollInterval, func(n int) {
		logg.Debug().Int("unread", n).Msg("unread badge")
	}, logger.Component("contact"))

	projects := service.NewProjectEditor(gw, nav, toasts, logger.Component("editor"))
	services := service.NewServiceEditor(gw, nav, toasts, logger.Component("editor"))
	blog := service.NewBlogEditor(gw, nav, toasts, logger.Component("editor"))
	testimonials := service.NewTestimonialEditor(gw, nav, toasts, logger.Component("editor"))
	media := service.NewMedia(gw, toasts, logger.Component("media"))

	guard := service.Guard{}
	switch guard.Decide(session.State()) {
	case service.Allow:
		logg.Info().Str("user", session.CurrentUser().Email).Msg("session active")
		// Warm the admin list caches; failures surface as stale screens,
		// not startup aborts.
		for name, refresh := range map[string]func(context.Context) error{
			"projects":     projects.Refresh,
			"services":     services.Refresh,
			"blog":         blog.Refresh,
			"testimonials": testimonials.Refresh,
			"contact":      contact.Refresh,
			"media":        media.Refresh,
		} {
			if err := refresh(ctx); err != nil {
				logg.Warn().Err(err).Str("list", name).Msg("initial list load failed")
			}
		}
		go contact.RunUnreadPoller(ctx)
	case service.RedirectToLogin:
		logg.Info().Msg("no session; sign in with LOGIN_EMAIL/LOGIN_PASSWORD")
		email, password := os.Getenv("LOGIN_EMAIL"), os.Getenv("LOGIN_PASSWORD")
		if email != "" {
			if err := session.Login(ctx, email, password); err != nil {
				logg.Error().Str("reason", domain.FailureMessage(err, "")).Msg("login failed")
			} else {
				go contact.RunUnreadPoller(ctx)
			}
		}
	}

	<-ctx.Done()
	logg.Info().Msg("shutting down")
}
