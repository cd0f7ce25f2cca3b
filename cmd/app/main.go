package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"parceltracking/cmd"
	"parceltracking/internal/adapters/out/postgres"
	"parceltracking/internal/generated/servers"
	"parceltracking/internal/pkg/metrics"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := postgres.Open(configs.DSN())
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	collector := metrics.NewCollector()
	prometheus.MustRegister(collector)

	app, err := cmd.NewCompositionRoot(
		configs,
		gormDB,
		collector,
		logger,
	)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	// Variables already set in the environment take precedence over .env.
	if err := godotenv.Load(".env"); err != nil {
		log.Infof("No .env file loaded: %v", err)
	}

	config := cmd.Config{
		HTTPPort:                 os.Getenv("HTTP_PORT"),
		DBHost:                   os.Getenv("DB_HOST"),
		DBPort:                   os.Getenv("DB_PORT"),
		DBUser:                   os.Getenv("DB_USER"),
		DBPassword:               os.Getenv("DB_PASSWORD"),
		DBName:                   os.Getenv("DB_NAME"),
		DBSslMode:                os.Getenv("DB_SSLMODE"),
		NextStandardLaunchDate:   os.Getenv("NEXT_STANDARD_LAUNCH_DATE"),
		TransitionReportSchedule: os.Getenv("TRANSITION_REPORT_SCHEDULE"),
		Origin:                   os.Getenv("ORIGIN"),
		Destination:              os.Getenv("DESTINATION"),
	}
	return config.WithDefaults()
}

func startWebServer(app cmd.CompositionRoot, port string, logger *slog.Logger) {
	doc, err := servers.GetSwagger()
	if err != nil {
		log.Fatalf("Error loading OpenAPI document: %v", err)
	}
	validator, err := servers.RequestValidator(doc)
	if err != nil {
		log.Fatalf("Error building request validator: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				level = slog.LevelError
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(context.Background(), level, "HTTP request", attrs...)
			return nil
		},
	}))
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/openapi.yaml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", servers.Spec)
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/openapi.yaml")))

	servers.RegisterHandlers(e, app.CreateServer())

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
