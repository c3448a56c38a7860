package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodshare-api/allocation"
	"foodshare-api/config"
	"foodshare-api/handlers"
	"foodshare-api/middleware"
	"foodshare-api/realtime"
	"foodshare-api/routes"
	"foodshare-api/store"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:   "foodshare",
		Usage:  "Food donation matching API",
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP API",
				Action: serve,
			},
			{
				Name:   "seed",
				Usage:  "Insert sample verified restaurants into an empty store",
				Action: seed,
			},
			{
				Name:    "allocate",
				Aliases: []string{"a"},
				Usage:   "Approve one acceptor request and print the allocation",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "id", Required: true, Usage: "acceptor id"},
				},
				Action: allocate,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal("Error: ", err)
	}
}

func openStore() (*config.Config, store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	s, err := config.OpenStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, s, nil
}

func serve(c *cli.Context) error {
	cfg, s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if cfg.Seed {
		if seeded, err := store.Seed(c.Context, s, time.Now()); err != nil {
			log.Printf("⚠️ Seeding failed: %v", err)
		} else if seeded {
			log.Println("🌱 Sample restaurants seeded")
		}
	}

	// Set Gin mode
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.DebugMode)
	}

	hub := realtime.NewHub()
	h := handlers.New(s, allocation.NewEngine(s), hub, cfg)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()
	r.Use(middleware.RequestID(), middleware.CORS())
	routes.SetupRoutes(r, h)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("🚀 Server running on http://localhost:%s (storage: %s)", cfg.Port, s.Engine())
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func seed(c *cli.Context) error {
	_, s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	seeded, err := store.Seed(c.Context, s, time.Now())
	if err != nil {
		return err
	}
	if !seeded {
		fmt.Println("Store already has restaurants, nothing to do")
		return nil
	}
	fmt.Println("Seeded sample restaurants into", s.Engine())
	return nil
}

func allocate(c *cli.Context) error {
	_, s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	out, err := allocation.NewEngine(s).Allocate(c.Context, c.Uint("id"))
	if err != nil {
		return err
	}
	fmt.Println(out.MatchInfo)
	if out.Pricing != nil {
		fmt.Printf("actual %.2f  payout %.2f  cost %.2f  profit %.2f\n",
			out.Pricing.ActualValue, out.Pricing.RestaurantPayout,
			out.Pricing.AcceptorCost, out.Pricing.PlatformProfit)
	}
	return nil
}
