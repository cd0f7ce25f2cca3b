package cmd

import (
	"fmt"
	"time"

	"parceltracking/internal/adapters/out/postgres"
	"parceltracking/internal/jobs"
)

const (
	defaultHTTPPort               = "8080"
	defaultNextStandardLaunchDate = "2025-10-01"
	defaultOrigin                 = "Starport Thames Estuary"
	defaultDestination            = "New London"
)

type Config struct {
	HTTPPort                 string
	DBHost                   string
	DBPort                   string
	DBUser                   string
	DBPassword               string
	DBName                   string
	DBSslMode                string
	NextStandardLaunchDate   string
	TransitionReportSchedule string
	Origin                   string
	Destination              string
}

// WithDefaults fills every unset optional value.
func (c Config) WithDefaults() Config {
	c.HTTPPort = orDefault(c.HTTPPort, defaultHTTPPort)
	c.NextStandardLaunchDate = orDefault(c.NextStandardLaunchDate, defaultNextStandardLaunchDate)
	c.TransitionReportSchedule = orDefault(c.TransitionReportSchedule, jobs.DefaultTransitionReportSchedule)
	c.Origin = orDefault(c.Origin, defaultOrigin)
	c.Destination = orDefault(c.Destination, defaultDestination)
	return c
}

// DSN returns the PostgreSQL connection string.
func (c Config) DSN() string {
	return postgres.DSN(c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// NextStandardLaunch parses NextStandardLaunchDate as yyyy-MM-dd in UTC.
func (c Config) NextStandardLaunch() (time.Time, error) {
	launch, err := time.Parse(time.DateOnly, c.NextStandardLaunchDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid NEXT_STANDARD_LAUNCH_DATE %q: %w", c.NextStandardLaunchDate, err)
	}
	return launch, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
