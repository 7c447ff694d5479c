package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/dvdk01/uptimeobserver-status/internal/application"
	"github.com/dvdk01/uptimeobserver-status/internal/client"
	"github.com/dvdk01/uptimeobserver-status/internal/config"
	"github.com/dvdk01/uptimeobserver-status/internal/monitor"
	"github.com/dvdk01/uptimeobserver-status/internal/processor"
)

func printUsage(programName string) {
	fmt.Fprintf(os.Stderr, "Usage: %s <monitorKey1> <monitorKey2> ... <monitorKeyN>\n", programName)
}

func main() {
	args := os.Args[1:]
	args = removeDuplicates(args)

	if len(args) == 0 {
		printUsage(os.Args[0])
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Error("failed to load configuration")
		os.Exit(1)
	}

	logger := log.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(cfg.LogLevel)
	log.SetLevel(cfg.LogLevel)

	httpClient := &http.Client{Timeout: cfg.Timeout}
	fetcher := monitor.NewUptimeObserver(
		client.New(httpClient, logger),
		logger,
		monitor.WithBaseURL(cfg.BaseURL),
	)
	display := application.NewCLIApplication(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !processor.New(fetcher, display).Start(ctx, args) {
		stop()
		os.Exit(1)
	}
}

func removeDuplicates(slice []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(slice))

	for _, item := range slice {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}

	return result
}
