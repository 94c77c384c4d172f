// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mage-os/github-dashboard/internal/dashboard"
	"github.com/mage-os/github-dashboard/internal/gateway"
	"github.com/mage-os/github-dashboard/internal/output"
)

// Generator is the use case for producing the dashboard.
// It runs fetch, render and write strictly in sequence.
type Generator struct {
	fetcher  gateway.Fetcher
	renderer *dashboard.HTMLRenderer
	writer   *output.FileWriter
	now      func() time.Time
	logger   *log.Logger
}

// NewGenerator creates a new Generator instance. A nil now means time.Now.
func NewGenerator(fetcher gateway.Fetcher, renderer *dashboard.HTMLRenderer, writer *output.FileWriter, now func() time.Time, logger *log.Logger) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{
		fetcher:  fetcher,
		renderer: renderer,
		writer:   writer,
		now:      now,
		logger:   logger,
	}
}

// Generate fetches org, renders the document and writes it, returning the
// written path. Nothing is written unless fetching and rendering succeed.
func (g *Generator) Generate(ctx context.Context, org string) (string, error) {
	g.logger.Println("Usecase: Starting dashboard generation...")

	data, err := g.fetcher.FetchOrganization(ctx, org)
	if err != nil {
		return "", err
	}

	html := g.renderer.Render(*data, g.now())
	g.logger.Printf("Usecase: Rendered %d bytes for %d repositories.\n", len(html), len(data.Repositories))

	path, err := g.writer.Write(html)
	if err != nil {
		return "", fmt.Errorf("failed to write dashboard: %w", err)
	}

	g.logger.Printf("Usecase: Dashboard written to %s.\n", path)
	return path, nil
}
