// Package session implements the wizard state machine for one contract
// request session: agent entry, transaction type selection, and the active
// detail form. All mutable state is owned by a single logical flow; the
// machine cycles indefinitely and has no terminal state.
package session

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/propdesk/go-contractflow/pkg/form"
)

// Kind is the transaction type bound at the type-selection step. Its string
// value is the "tipo_solicitud" wire tag.
type Kind string

const (
	// KindSale is a sale/purchase ("compraventa") request.
	KindSale Kind = "compraventa"
	// KindLease is a lease ("arriendo") request.
	KindLease Kind = "arriendo"
)

// OperationType returns the "tipo" wire discriminator for the kind.
func (k Kind) OperationType() string {
	if k == KindSale {
		return "compra/venta"
	}
	return string(k)
}

// Valid reports whether the kind is one of the two known transaction types.
func (k Kind) Valid() bool {
	return k == KindSale || k == KindLease
}

// Step identifies the wizard position.
type Step int

const (
	// StepAgentEntry collects the agent identity.
	StepAgentEntry Step = iota
	// StepTypeSelection chooses the transaction kind.
	StepTypeSelection
	// StepDetailForm edits the detail form for the bound kind.
	StepDetailForm
)

// String implements fmt.Stringer for log output.
func (s Step) String() string {
	switch s {
	case StepAgentEntry:
		return "agent-entry"
	case StepTypeSelection:
		return "type-selection"
	case StepDetailForm:
		return "detail-form"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// Agent is the identity captured at session start. All three fields must be
// non-empty after trimming before the session may advance; no format checks
// are applied to email or phone.
type Agent struct {
	Name  string
	Email string
	Phone string
}

// Validate checks the non-empty requirement on the trimmed fields.
func (a Agent) Validate() error {
	trimmed := a.trimmed()
	return validation.ValidateStruct(&trimmed,
		validation.Field(&trimmed.Name, validation.Required),
		validation.Field(&trimmed.Email, validation.Required),
		validation.Field(&trimmed.Phone, validation.Required),
	)
}

func (a Agent) trimmed() Agent {
	return Agent{
		Name:  strings.TrimSpace(a.Name),
		Email: strings.TrimSpace(a.Email),
		Phone: strings.TrimSpace(a.Phone),
	}
}

// Session carries the agent identity and the chosen transaction kind across
// steps, and owns the active detail-form composer while one is open.
type Session struct {
	step     Step
	agent    Agent
	kind     Kind
	composer *form.Composer
}

// New starts a session at the agent-entry step.
func New() *Session {
	return &Session{step: StepAgentEntry}
}

// Step reports the current wizard position.
func (s *Session) Step() Step {
	if s == nil {
		return StepAgentEntry
	}
	return s.step
}

// Agent returns the captured agent identity. Immutable once the session has
// advanced past entry.
func (s *Session) Agent() Agent {
	if s == nil {
		return Agent{}
	}
	return s.agent
}

// Kind returns the bound transaction kind. Empty until a detail form has
// been opened.
func (s *Session) Kind() Kind {
	if s == nil {
		return ""
	}
	return s.kind
}

// Composer returns the active detail-form composer, or nil outside the
// detail-form step.
func (s *Session) Composer() *form.Composer {
	if s == nil {
		return nil
	}
	return s.composer
}

// Advance moves agent-entry → type-selection, guarded by agent validation.
// On failure the session stays at agent entry; there is no partial advance.
func (s *Session) Advance(agent Agent) error {
	if s == nil {
		return fmt.Errorf("session: session is nil")
	}
	if s.step != StepAgentEntry {
		return fmt.Errorf("session: cannot advance from %s", s.step)
	}
	if err := agent.Validate(); err != nil {
		return fmt.Errorf("session: datos del agente incompletos: %w", err)
	}
	s.agent = agent.trimmed()
	s.step = StepTypeSelection
	return nil
}

// SelectKind moves type-selection → detail-form, binding the transaction
// kind and opening a fresh form for it. Selecting a kind carries only the
// agent identity forward.
func (s *Session) SelectKind(kind Kind) (*form.Composer, error) {
	if s == nil {
		return nil, fmt.Errorf("session: session is nil")
	}
	if s.step != StepTypeSelection {
		return nil, fmt.Errorf("session: cannot select a kind from %s", s.step)
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("session: unknown transaction kind %q", kind)
	}
	s.kind = kind
	if kind == KindSale {
		s.composer = form.NewSale(nil)
	} else {
		s.composer = form.NewLease(nil)
	}
	s.step = StepDetailForm
	return s.composer, nil
}

// BackToSelection moves detail-form → type-selection, discarding all
// in-progress detail-form state. It serves both the explicit back action and
// the implicit reset after a successful submission.
func (s *Session) BackToSelection() {
	if s == nil || s.step != StepDetailForm {
		return
	}
	s.composer = nil
	s.kind = ""
	s.step = StepTypeSelection
}
