package payload

import (
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/propdesk/go-contractflow/pkg/form"
	"github.com/propdesk/go-contractflow/pkg/registry"
	"github.com/propdesk/go-contractflow/pkg/session"
)

// Computed keys appended to every payload before transmission. For lease
// sessions the tenant-type and guarantor tags are appended as well.
const (
	KeyAgentName     = "agente_nombre"
	KeyAgentEmail    = "agente_email"
	KeyRequestType   = "tipo_solicitud"
	KeyCategory      = "etiqueta"
	KeyOperationType = "tipo"
	KeyTenantType    = "tipo_arrendatario"
	KeyGuarantor     = "tiene_fiador"
	KeyReport        = "reporte_excel"
)

// CategoryContracts is the fixed request-category tag.
const CategoryContracts = "contratos"

// Wire values for yes/no flags.
const (
	ValueYes = "si"
	ValueNo  = "no"
)

// Assembler converts a form's active field values plus the session context
// into a transport payload. Assembly is deterministic given identical inputs
// and performs no I/O.
type Assembler struct {
	sanitizer *bluemonday.Policy
}

// AssemblerOption customises an Assembler.
type AssemblerOption func(*Assembler)

// WithSanitizer overrides the policy applied to free-text blocks. The
// default is bluemonday's strict policy, stripping all markup.
func WithSanitizer(policy *bluemonday.Policy) AssemblerOption {
	return func(a *Assembler) {
		if policy != nil {
			a.sanitizer = policy
		}
	}
}

// NewAssembler constructs an Assembler.
func NewAssembler(options ...AssemblerOption) *Assembler {
	a := &Assembler{sanitizer: bluemonday.StrictPolicy()}
	for _, option := range options {
		option(a)
	}
	return a
}

// Assemble builds the transport payload from the composer's active field set
// and the session context:
//
//  1. The raw mapping is restricted to the active field keys.
//  2. Attachment fields with a missing or zero-byte file contribute no key
//     (transmitting an empty file is a known failure mode at the endpoint).
//  3. Date fields with the "no date" override transmit the override key as
//     "si" and omit the date key; an empty date is likewise omitted.
//  4. Free-text blocks are sanitized before inclusion.
//  5. The computed agent, request-type, category, and operation-type tags
//     are appended, plus the tenant-type and guarantor tags for leases.
func (a *Assembler) Assemble(composer *form.Composer, agent session.Agent, kind session.Kind) (*Payload, error) {
	if a == nil {
		return nil, fmt.Errorf("payload: assembler is nil")
	}
	if composer == nil {
		return nil, fmt.Errorf("payload: composer is required")
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("payload: unknown transaction kind %q", kind)
	}

	state := composer.State()
	reg := composer.Registry()
	out := New()

	for _, key := range composer.ActiveFieldKeys() {
		field, ok := reg.Lookup(key)
		if !ok {
			return nil, fmt.Errorf("payload: active key %q not declared in registry", key)
		}
		switch field.Kind {
		case registry.KindFile:
			attachment, ok := state.Attachment(key)
			if !ok || attachment.Empty() {
				continue
			}
			out.SetFile(key, File{Filename: attachment.Filename, Content: attachment.Content})

		case registry.KindDate:
			if state.NoDate(key) {
				out.SetValue(key+registry.NoDateSuffix, ValueYes)
				continue
			}
			if date, ok := state.Value(key); ok && date != "" {
				out.SetValue(key, date)
			}

		case registry.KindTextBlock:
			out.SetValue(key, a.sanitizer.Sanitize(a.textValue(state, field)))

		case registry.KindBool:
			if value, ok := state.Value(key); ok {
				out.SetValue(key, boolValue(value))
			}

		default:
			out.SetValue(key, a.textValue(state, field))
		}
	}

	out.SetValue(KeyAgentName, agent.Name)
	out.SetValue(KeyAgentEmail, agent.Email)
	out.SetValue(KeyRequestType, string(kind))
	out.SetValue(KeyCategory, CategoryContracts)
	out.SetValue(KeyOperationType, kind.OperationType())

	if composer.Lease() {
		out.SetValue(KeyTenantType, string(composer.TenantVariant()))
		if composer.GuarantorPresent() {
			out.SetValue(KeyGuarantor, ValueYes)
		} else {
			out.SetValue(KeyGuarantor, ValueNo)
		}
	}

	return out, nil
}

func (a *Assembler) textValue(state *form.State, field registry.Field) string {
	if value, ok := state.Value(field.Key); ok {
		return value
	}
	return field.Default
}

func boolValue(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case ValueYes, "yes", "true", "on", "1":
		return ValueYes
	default:
		return ValueNo
	}
}
