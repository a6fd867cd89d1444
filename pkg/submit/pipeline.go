// Package submit orchestrates one submission attempt: confirmation, report
// generation, network transmission, and outcome handling.
package submit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/propdesk/go-contractflow/pkg/payload"
	"github.com/propdesk/go-contractflow/pkg/report"
	"github.com/propdesk/go-contractflow/pkg/session"
)

// State is the per-attempt pipeline position:
// Idle → Confirming → (Cancelled | Generating → Sending → (Succeeded | Failed)).
type State string

const (
	StateIdle       State = "idle"
	StateConfirming State = "confirming"
	StateCancelled  State = "cancelled"
	StateGenerating State = "generating"
	StateSending    State = "sending"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// ErrBusy is returned when a submit intent arrives while another attempt is
// in flight. Exactly one attempt may be in flight per session.
var ErrBusy = errors.New("submit: an attempt is already in flight")

// SuccessMessage is shown after the backend accepts the payload.
const SuccessMessage = "Tu solicitud ha sido enviada, el equipo legal la procesará y te enviará los detalles. No es necesario realizar ninguna otra acción."

// Pipeline runs submission attempts against a session. Collaborators are
// fixed at construction; the confirmation prompt, assembler, notifier, and
// logger are configurable through options.
type Pipeline struct {
	transport Transport
	generator report.Generator
	confirmer Confirmer
	assembler *payload.Assembler
	notifier  Notifier
	prompt    Prompt
	log       *logrus.Logger

	mu   sync.Mutex
	busy bool
}

// Option customises a Pipeline.
type Option func(*Pipeline)

// WithNotifier sets the outcome notifier. Defaults to NopNotifier.
func WithNotifier(notifier Notifier) Option {
	return func(p *Pipeline) {
		if notifier != nil {
			p.notifier = notifier
		}
	}
}

// WithAssembler replaces the payload assembler.
func WithAssembler(assembler *payload.Assembler) Option {
	return func(p *Pipeline) {
		if assembler != nil {
			p.assembler = assembler
		}
	}
}

// WithPrompt replaces the confirmation wording.
func WithPrompt(prompt Prompt) Option {
	return func(p *Pipeline) {
		p.prompt = prompt
	}
}

// WithLogger sets the structured logger. Defaults to a discard logger.
func WithLogger(log *logrus.Logger) Option {
	return func(p *Pipeline) {
		if log != nil {
			p.log = log
		}
	}
}

// New constructs a pipeline. Transport, generator, and confirmer are the
// required collaborators of every attempt.
func New(transport Transport, generator report.Generator, confirmer Confirmer, options ...Option) (*Pipeline, error) {
	if transport == nil {
		return nil, fmt.Errorf("submit: transport is required")
	}
	if generator == nil {
		return nil, fmt.Errorf("submit: report generator is required")
	}
	if confirmer == nil {
		return nil, fmt.Errorf("submit: confirmer is required")
	}
	p := &Pipeline{
		transport: transport,
		generator: generator,
		confirmer: confirmer,
		assembler: payload.NewAssembler(),
		notifier:  NopNotifier{},
		prompt:    DefaultPrompt(),
		log:       discardLogger(),
	}
	for _, option := range options {
		option(p)
	}
	return p, nil
}

// Busy reports whether an attempt is in flight.
func (p *Pipeline) Busy() bool {
	if p == nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.busy
}

// Submit runs one attempt for the session's open detail form and returns the
// terminal attempt state. A snapshot of the form is captured at entry, so
// later edits do not affect the in-flight attempt. On success the session is
// reset to the type-selection step; on failure or cancellation the form stays
// editable with unmodified values and any retry is user-initiated.
func (p *Pipeline) Submit(ctx context.Context, sess *session.Session) (State, error) {
	if p == nil {
		return StateIdle, fmt.Errorf("submit: pipeline is nil")
	}
	if sess == nil || sess.Step() != session.StepDetailForm || sess.Composer() == nil {
		return StateIdle, fmt.Errorf("submit: session has no open detail form")
	}

	p.mu.Lock()
	if p.busy {
		p.mu.Unlock()
		return StateIdle, ErrBusy
	}
	p.busy = true
	p.mu.Unlock()
	defer func() {
		p.mu.Lock()
		p.busy = false
		p.mu.Unlock()
	}()

	snapshot := sess.Composer().Snapshot()
	agent := sess.Agent()
	kind := sess.Kind()
	log := p.log.WithField("kind", string(kind))

	log.Info("solicitud: esperando confirmación")
	confirmed, err := p.confirmer.Confirm(ctx, p.prompt)
	if err != nil {
		return p.fail(ctx, log, fmt.Errorf("falló la confirmación: %w", err))
	}
	if !confirmed {
		log.Info("solicitud: cancelada por el agente")
		return StateCancelled, nil
	}

	log.Info("solicitud: generando reporte")
	body, err := p.assembler.Assemble(snapshot, agent, kind)
	if err != nil {
		return p.fail(ctx, log, err)
	}
	artifact, err := p.generator.Generate(ctx, body)
	if err != nil {
		return p.fail(ctx, log, fmt.Errorf("Falló la generación del archivo Excel: %w", err))
	}
	body.SetFile(payload.KeyReport, payload.File{Filename: artifact.Name, Content: artifact.Content})

	log.Info("solicitud: enviando")
	if err := p.transport.Send(ctx, body); err != nil {
		return p.fail(ctx, log, err)
	}

	log.Info("solicitud: enviada")
	p.notifier.Success(ctx, SuccessMessage)
	sess.BackToSelection()
	return StateSucceeded, nil
}

func (p *Pipeline) fail(ctx context.Context, log *logrus.Entry, err error) (State, error) {
	log.WithError(err).Error("solicitud: intento fallido")
	p.notifier.Failure(ctx, fmt.Sprintf("Hubo un error: %s", err))
	return StateFailed, err
}

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
