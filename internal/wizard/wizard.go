// Package wizard drives a full contract-request session from terminal
// prompts: agent entry, type selection, field capture, and submission.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/propdesk/go-contractflow/pkg/form"
	"github.com/propdesk/go-contractflow/pkg/registry"
	"github.com/propdesk/go-contractflow/pkg/session"
	"github.com/propdesk/go-contractflow/pkg/submit"
)

const exitOption = "Salir"

// Wizard walks one agent through sessions until they quit.
type Wizard struct {
	driver   PromptDriver
	pipeline *submit.Pipeline
	log      *logrus.Logger
}

// New constructs a wizard over a prompt driver and a submission pipeline.
func New(driver PromptDriver, pipeline *submit.Pipeline, log *logrus.Logger) (*Wizard, error) {
	if driver == nil {
		return nil, fmt.Errorf("wizard: prompt driver is required")
	}
	if pipeline == nil {
		return nil, fmt.Errorf("wizard: pipeline is required")
	}
	if log == nil {
		log = logrus.New()
	}
	return &Wizard{driver: driver, pipeline: pipeline, log: log}, nil
}

// NewConfirmer returns the pre-submission confirmation backed by a driver.
func NewConfirmer(driver PromptDriver) submit.Confirmer {
	return submit.ConfirmerFunc(func(ctx context.Context, prompt submit.Prompt) (bool, error) {
		return driver.Confirm(ctx, ConfirmConfig{
			Message: prompt.Message,
			Help:    prompt.Description,
		})
	})
}

// NewNotifier returns an outcome notifier printing through a driver.
func NewNotifier(driver PromptDriver) submit.Notifier {
	return driverNotifier{driver: driver}
}

type driverNotifier struct {
	driver PromptDriver
}

func (n driverNotifier) Success(ctx context.Context, message string) {
	_ = n.driver.Info(ctx, "✔ "+message)
}

func (n driverNotifier) Failure(ctx context.Context, message string) {
	_ = n.driver.Info(ctx, "✘ "+message)
}

// Run executes the session loop until the agent quits or the context ends.
func (w *Wizard) Run(ctx context.Context) error {
	sess := session.New()
	if err := w.collectAgent(ctx, sess); err != nil {
		return err
	}

	for {
		choice, err := w.driver.Select(ctx, SelectConfig{
			Message: "Tipo de solicitud",
			Options: []string{"Compraventa", "Arriendo", exitOption},
		})
		if err != nil {
			return err
		}

		var kind session.Kind
		switch choice {
		case 0:
			kind = session.KindSale
		case 1:
			kind = session.KindLease
		default:
			return nil
		}

		composer, err := sess.SelectKind(kind)
		if err != nil {
			return err
		}
		if err := w.collectStructure(ctx, composer); err != nil {
			return err
		}
		if err := w.collectFields(ctx, composer); err != nil {
			return err
		}
		if err := w.submitLoop(ctx, sess); err != nil {
			return err
		}
	}
}

func (w *Wizard) collectAgent(ctx context.Context, sess *session.Session) error {
	for {
		agent := session.Agent{}
		fields := []struct {
			label string
			dest  *string
		}{
			{"Nombre Completo", &agent.Name},
			{"Correo Electrónico", &agent.Email},
			{"Teléfono", &agent.Phone},
		}
		for _, field := range fields {
			value, err := w.driver.Input(ctx, InputConfig{Message: field.label})
			if err != nil {
				return err
			}
			*field.dest = value
		}
		if err := sess.Advance(agent); err != nil {
			w.log.WithError(err).Warn("datos del agente incompletos")
			if infoErr := w.driver.Info(ctx, "Por favor completa todos los datos del agente."); infoErr != nil {
				return infoErr
			}
			continue
		}
		return nil
	}
}

func (w *Wizard) collectStructure(ctx context.Context, composer *form.Composer) error {
	if composer.Lease() {
		variant, err := w.driver.Select(ctx, SelectConfig{
			Message: "Tipo de Arrendatario",
			Options: []string{"Persona Natural", "Persona Jurídica"},
		})
		if err != nil {
			return err
		}
		target := form.TenantNatural
		if variant == 1 {
			target = form.TenantLegalEntity
		}
		if err := composer.SetTenantVariant(target); err != nil {
			return err
		}

		guarantor, err := w.driver.Confirm(ctx, ConfirmConfig{
			Message: "¿Incluir Fiador / Codeudor Solidario?",
		})
		if err != nil {
			return err
		}
		composer.SetGuarantorPresence(guarantor)
		return nil
	}

	for _, role := range []struct {
		role  string
		label string
	}{
		{registry.RoleSeller, "¿Agregar Vendedor 2?"},
		{registry.RoleBuyer, "¿Agregar Comprador 2?"},
	} {
		second, err := w.driver.Confirm(ctx, ConfirmConfig{Message: role.label})
		if err != nil {
			return err
		}
		count := form.MinCardinality
		if second {
			count = form.MaxCardinality
		}
		if err := composer.SetCardinality(role.role, count); err != nil {
			return err
		}
	}
	return nil
}

func (w *Wizard) collectFields(ctx context.Context, composer *form.Composer) error {
	state := composer.State()
	reg := composer.Registry()
	for _, key := range composer.ActiveFieldKeys() {
		field, ok := reg.Lookup(key)
		if !ok {
			return fmt.Errorf("wizard: active key %q not declared", key)
		}
		switch field.Kind {
		case registry.KindFile:
			if err := w.collectAttachment(ctx, state, field); err != nil {
				return err
			}
		case registry.KindDate:
			value, err := w.driver.Input(ctx, InputConfig{
				Message: field.Label,
				Help:    "AAAA-MM-DD, deja vacío para Sin Fecha",
			})
			if err != nil {
				return err
			}
			if strings.TrimSpace(value) == "" {
				state.SetDate(field.Key, form.DateValue{NoDate: true})
			} else {
				state.SetDate(field.Key, form.DateValue{Date: strings.TrimSpace(value)})
			}
		case registry.KindTextBlock:
			value, err := w.driver.TextArea(ctx, TextAreaConfig{Message: field.Label})
			if err != nil {
				return err
			}
			state.Set(field.Key, value)
		case registry.KindBool:
			value, err := w.driver.Confirm(ctx, ConfirmConfig{Message: field.Label})
			if err != nil {
				return err
			}
			if value {
				state.Set(field.Key, "si")
			} else {
				state.Set(field.Key, "no")
			}
		default:
			value, err := w.driver.Input(ctx, InputConfig{
				Message: field.Label,
				Default: field.Default,
			})
			if err != nil {
				return err
			}
			state.Set(field.Key, value)
		}
	}
	return nil
}

func (w *Wizard) collectAttachment(ctx context.Context, state *form.State, field registry.Field) error {
	path, err := w.driver.Input(ctx, InputConfig{
		Message: field.Label,
		Help:    "Ruta a un PDF o imagen (máx. 10MB sugerido), deja vacío para omitir",
	})
	if err != nil {
		return err
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		w.log.WithError(err).WithField("campo", field.Key).Warn("no se pudo leer el adjunto")
		return w.driver.Info(ctx, fmt.Sprintf("No se pudo leer %s, el campo queda sin archivo.", path))
	}
	state.SetAttachment(field.Key, form.Attachment{
		Filename: filepath.Base(path),
		Content:  content,
	})
	return nil
}

func (w *Wizard) submitLoop(ctx context.Context, sess *session.Session) error {
	for {
		state, err := w.pipeline.Submit(ctx, sess)
		if err != nil && !errors.Is(err, context.Canceled) {
			w.log.WithError(err).WithField("estado", string(state)).Error("envío fallido")
		}
		if state == submit.StateSucceeded {
			return nil
		}
		retry, confirmErr := w.driver.Confirm(ctx, ConfirmConfig{
			Message: "¿Deseas reintentar el envío?",
		})
		if confirmErr != nil {
			return confirmErr
		}
		if !retry {
			sess.BackToSelection()
			return nil
		}
	}
}
