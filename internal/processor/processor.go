package processor

import (
	"context"
	"sync"
	"time"

	"github.com/dvdk01/uptimeobserver-status/internal/application"
	"github.com/dvdk01/uptimeobserver-status/internal/monitor"
	"github.com/dvdk01/uptimeobserver-status/internal/schema"
	"github.com/dvdk01/uptimeobserver-status/internal/serviceerrors"
	log "github.com/sirupsen/logrus"
)

type processor struct {
	fetcher     monitor.StatusFetcher
	application application.Application
}

func New(fetcher monitor.StatusFetcher, display application.Application) *processor {
	return &processor{
		fetcher:     fetcher,
		application: display,
	}
}

// Process fetches every key concurrently and returns the results in input order.
func (p *processor) Process(ctx context.Context, keys []string) []schema.Result {
	results := make([]schema.Result, len(keys))

	var wg sync.WaitGroup
	for i, key := range keys {
		wg.Add(1)
		go func(i int, key string) {
			defer wg.Done()

			start := time.Now()
			resp, err := p.fetcher.FetchStatus(ctx, key)
			results[i] = schema.Result{
				Key:      key,
				Response: resp,
				Err:      err,
				Duration: time.Since(start),
			}

			if err != nil {
				log.WithError(err).
					WithField("monitor", monitor.MaskKey(key)).
					Debug(serviceerrors.PrettyMessage(err))
			}
		}(i, key)
	}
	wg.Wait()

	return results
}

// Start processes keys, renders them and reports whether every fetch succeeded.
func (p *processor) Start(ctx context.Context, keys []string) bool {
	results := p.Process(ctx, keys)
	p.application.Render(results)

	for _, result := range results {
		if !result.Success() {
			return false
		}
	}
	return true
}
