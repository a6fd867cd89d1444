// Package report produces the spreadsheet artifact that summarises one
// contract request and travels with the transport payload.
package report

import (
	"context"

	"github.com/propdesk/go-contractflow/pkg/payload"
)

// Artifact is a named binary spreadsheet summarising the operation.
type Artifact struct {
	Name    string
	Content []byte
}

// Generator consumes the pre-report transport payload and produces the
// artifact. The submission pipeline treats any failure as fatal to the
// attempt; the payload is never sent without its report.
type Generator interface {
	Generate(ctx context.Context, p *payload.Payload) (Artifact, error)
}

// GeneratorFunc adapts a function into a Generator.
type GeneratorFunc func(ctx context.Context, p *payload.Payload) (Artifact, error)

// Generate delegates to the underlying function.
func (fn GeneratorFunc) Generate(ctx context.Context, p *payload.Payload) (Artifact, error) {
	return fn(ctx, p)
}
