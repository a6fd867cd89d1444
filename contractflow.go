// Package contractflow assembles contract-request sessions: a wizard state
// machine that captures agent identity, transaction type, and the detail
// form for a sale/purchase or lease, then submits the collected data as a
// multipart payload with a generated spreadsheet summary.
package contractflow

import (
	"github.com/propdesk/go-contractflow/pkg/registry"
	"github.com/propdesk/go-contractflow/pkg/report"
	"github.com/propdesk/go-contractflow/pkg/session"
	"github.com/propdesk/go-contractflow/pkg/submit"
)

// Agent is the identity captured at session start.
type Agent = session.Agent

// Kind is the transaction type bound at the type-selection step.
type Kind = session.Kind

// Transaction kinds.
const (
	KindSale  = session.KindSale
	KindLease = session.KindLease
)

// Session re-exports the wizard state machine.
type Session = session.Session

// NewSession starts a session at the agent-entry step.
func NewSession() *Session {
	return session.New()
}

// SaleRegistry returns the declared fields of the sale/purchase form.
func SaleRegistry() *registry.Registry {
	return registry.Sale()
}

// LeaseRegistry returns the declared fields of the lease form.
func LeaseRegistry() *registry.Registry {
	return registry.Lease()
}

// NewPipeline wires the default submission pipeline: HTTP transport to the
// given endpoint URL and the Excel report generator. It is the simplest
// entry point for callers that just want to submit sessions.
func NewPipeline(endpoint string, confirmer submit.Confirmer, options ...submit.Option) (*submit.Pipeline, error) {
	return submit.New(
		submit.NewHTTPTransport(endpoint),
		report.NewExcel(),
		confirmer,
		options...,
	)
}
