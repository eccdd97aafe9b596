// main.go
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ariebrainware/patient-referral/config"
	_ "github.com/ariebrainware/patient-referral/docs"
	"github.com/ariebrainware/patient-referral/endpoint"
	"github.com/ariebrainware/patient-referral/middleware"
	"github.com/ariebrainware/patient-referral/model"
	"github.com/ariebrainware/patient-referral/referral"
	"github.com/ariebrainware/patient-referral/store"
	"github.com/ariebrainware/patient-referral/util"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title        Patient Referral API
// @version      1.0
// @description  Symptom pre-diagnosis, doctor recommendation and appointment management for patients.
// @BasePath     /
func main() {
	rootCmd := &cobra.Command{
		Use:   "referral",
		Short: "Patient referral service",
	}
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(diagnoseCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func diagnoseCmd() *cobra.Command {
	var tcNumber, symptoms, severity, duration string
	cmd := &cobra.Command{
		Use:   "diagnose",
		Short: "Run the symptom advisor once against the sample patients and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			patients := store.NewMemoryStore()
			if err := store.Seed(cmd.Context(), patients, model.SamplePatients()); err != nil {
				return err
			}
			svc := referral.NewService(patients)
			result, err := svc.Diagnose(cmd.Context(), referral.DiagnosisRequest{
				PatientID: tcNumber,
				Symptoms:  symptoms,
				Severity:  severity,
				Duration:  duration,
			})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}
	cmd.Flags().StringVar(&tcNumber, "tc-number", "12345678901", "patient identifier")
	cmd.Flags().StringVar(&symptoms, "symptoms", "", "free-text symptom description")
	cmd.Flags().StringVar(&severity, "severity", "", "reported severity")
	cmd.Flags().StringVar(&duration, "duration", "", "reported duration")
	_ = cmd.MarkFlagRequired("symptoms")
	return cmd
}

func runServer() error {
	// Load the configuration
	cfg := config.LoadConfig()

	logger := util.NewLogger(cfg.AppEnv, os.Stdout)
	util.SetLogger(logger)

	if !util.Contains(cfg.StoreBackend, []string{config.StoreMemory, config.StoreDatabase, config.StoreRedis}) {
		return fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	db, err := config.ConnectDatabase()
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	gormStore := store.NewGormStore(db)
	if err := gormStore.AutoMigrate(); err != nil {
		return fmt.Errorf("migrate patient tables: %w", err)
	}
	if err := db.AutoMigrate(&model.AuditLog{}); err != nil {
		return fmt.Errorf("migrate audit log: %w", err)
	}
	util.SetAuditLoggerDB(db)

	patients, err := selectStore(cfg, gormStore)
	if err != nil {
		return err
	}
	if cfg.SeedSampleData {
		if err := store.Seed(context.Background(), patients, model.SamplePatients()); err != nil {
			return fmt.Errorf("seed sample patients: %w", err)
		}
	}

	svc := referral.NewService(patients,
		referral.WithProfiles(store.NewGormProfiles(db)),
		referral.WithLogger(logger.With().Str("component", "referral").Logger()),
	)

	// Set Gin mode from config
	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.EndpointCallLogger(logger))
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.ServiceMiddleware(svc))

	// Basic HTTP handler for root path
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Welcome to %s!", cfg.AppName),
		})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	endpoint.RegisterRoutes(router, middleware.RateLimiter(middleware.RateLimitConfig{
		Limit:  cfg.RateLimit,
		Window: cfg.RateWindow,
	}))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.AppPort),
		Handler: router,
	}
	go func() {
		logger.Info().Str("addr", srv.Addr).Str("store", cfg.StoreBackend).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("error starting server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info().Msg("server stopped")
	return nil
}

func selectStore(cfg *config.Config, gormStore *store.GormStore) (store.PatientStore, error) {
	switch cfg.StoreBackend {
	case config.StoreDatabase:
		return gormStore, nil
	case config.StoreRedis:
		rdb, err := config.ConnectRedis()
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		if rdb == nil {
			return nil, fmt.Errorf("STORE_BACKEND=redis requires REDIS_ENABLED=true")
		}
		return store.NewRedisStore(rdb), nil
	default:
		return store.NewMemoryStore(), nil
	}
}
