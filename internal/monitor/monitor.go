package monitor

import (
	"context"

	"github.com/dvdk01/uptimeobserver-status/internal/schema"
)

type StatusFetcher interface {
	FetchStatus(ctx context.Context, monitorKey string) (*schema.MonitorResponse, error)
}
