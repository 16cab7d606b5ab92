package cmd

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	mongooptions "go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kevinemt0605/vitalmoto/app/controller"
	"github.com/kevinemt0605/vitalmoto/app/provider"
	"github.com/kevinemt0605/vitalmoto/app/repository"
	"github.com/kevinemt0605/vitalmoto/app/service"
	"github.com/kevinemt0605/vitalmoto/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  "Start the Echo HTTP server exposing the payment reconciliation endpoint.",
	Run:   runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) {
	services, cleanup := mustCreateServices()
	defer cleanup()

	cfg := services.cfg
	paymentController := controller.NewPaymentController(services.reconcile)

	e := setupHTTPServer(paymentController)

	go func() {
		httpAddr := net.JoinHostPort(cfg.HTTP.Host, cfg.HTTP.Port)
		logrus.WithField("addr", httpAddr).Info("Starting HTTP server")
		if err := e.Start(httpAddr); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Warn("HTTP shutdown error")
	}

	logrus.Info("Server stopped")
}

func setupHTTPServer(paymentController *controller.PaymentController) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogRemoteIP:  true,
		LogLatency:   true,
		LogUserAgent: true,
		LogError:     true,
		HandleError:  true,
		LogRequestID: true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			fields := logrus.Fields{
				"remote_ip":  v.RemoteIP,
				"host":       v.Host,
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"latency_ns": v.Latency.Nanoseconds(),
				"user_agent": v.UserAgent,
			}
			entry := logrus.WithFields(fields)
			if v.Error != nil {
				entry = entry.WithError(v.Error)
			}
			entry.Info("http_request")
			return nil
		},
	}))
	e.Use(echomiddleware.Recover())
	// The endpoint is called from the web client on another origin.
	e.Use(echomiddleware.CORS())

	e.GET("/health", paymentController.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	payments := e.Group("/payments")
	payments.POST("/reconcile", paymentController.ReconcilePayment)
	payments.GET("", paymentController.ListPayments)

	return e
}

type appServices struct {
	cfg       *config.Config
	reconcile *service.ReconcileService
	reset     *service.ResetService
}

func mustCreateServices() (*appServices, func()) {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	if err := configureLogging(cfg); err != nil {
		logrus.WithError(err).Fatal("Failed to configure logging")
	}

	connectCtx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, mongooptions.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		logrus.WithError(err).Fatal("Failed to ping MongoDB")
	}

	db := client.Database(cfg.Mongo.Database)
	ledgerRepo := repository.NewLedgerRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	serviceRepo := repository.NewServiceRecordRepository(db)

	bdvProvider := provider.NewBDVProvider(cfg.BDV)

	services := &appServices{
		cfg:       cfg,
		reconcile: service.NewReconcileService(ledgerRepo, accountRepo, serviceRepo, bdvProvider),
		reset:     service.NewResetService(accountRepo, cfg.Reset.BatchSize),
	}

	cleanup := func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logrus.WithError(err).Warn("Failed to disconnect from MongoDB")
		}
	}

	return services, cleanup
}

func configureLogging(cfg *config.Config) error {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.JSONFormatter{})
	return nil
}
