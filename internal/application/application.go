package application

import (
	"github.com/dvdk01/uptimeobserver-status/internal/schema"
)

type Application interface {
	Render(results []schema.Result)
}
