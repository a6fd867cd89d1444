package payload

import (
	"strings"
	"testing"

	"github.com/propdesk/go-contractflow/pkg/form"
	"github.com/propdesk/go-contractflow/pkg/registry"
	"github.com/propdesk/go-contractflow/pkg/session"
)

var testAgent = session.Agent{Name: "Juan Pérez", Email: "juan@x.cl", Phone: "56911112222"}

func TestAssemble_MinimalSaleCarriesComputedTags(t *testing.T) {
	composer := form.NewSale(nil)
	p, err := NewAssembler().Assemble(composer, testAgent, session.KindSale)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	want := map[string]string{
		KeyAgentName:     "Juan Pérez",
		KeyAgentEmail:    "juan@x.cl",
		KeyRequestType:   "compraventa",
		KeyCategory:      "contratos",
		KeyOperationType: "compra/venta",
	}
	for key, expected := range want {
		if value, _ := p.Value(key); value != expected {
			t.Errorf("%s = %q, want %q", key, value, expected)
		}
	}

	// No attachments were bound, so the attachment keys must be absent.
	for _, key := range []string{"dominio_vigente", "gp_certificado"} {
		if p.Has(key) {
			t.Errorf("empty attachment key %q present in payload", key)
		}
	}

	// Sale payloads carry no lease-only tags.
	if p.Has(KeyTenantType) || p.Has(KeyGuarantor) {
		t.Fatal("lease tags present in sale payload")
	}
}

func TestAssemble_ZeroByteAttachmentExcluded(t *testing.T) {
	composer := form.NewSale(nil)
	state := composer.State()
	state.SetAttachment("dominio_vigente", form.Attachment{Filename: "vacio.pdf"})
	state.SetAttachment("gp_certificado", form.Attachment{Filename: "gp.pdf", Content: []byte("contenido")})

	p, err := NewAssembler().Assemble(composer, testAgent, session.KindSale)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	if p.Has("dominio_vigente") {
		t.Fatal("zero-byte attachment transmitted")
	}
	file, ok := p.File("gp_certificado")
	if !ok {
		t.Fatal("non-empty attachment missing")
	}
	if len(file.Content) != len("contenido") {
		t.Fatalf("attachment length = %d, want %d", len(file.Content), len("contenido"))
	}
}

func TestAssemble_CollapsedSlotContributesNoKeys(t *testing.T) {
	composer := form.NewSale(nil)
	state := composer.State()
	if err := composer.SetCardinality(registry.RoleSeller, 2); err != nil {
		t.Fatalf("raise cardinality: %v", err)
	}
	state.ApplyParty(registry.RoleSeller, 2, form.Party{FirstNames: "Ana"})
	if err := composer.SetCardinality(registry.RoleSeller, 1); err != nil {
		t.Fatalf("collapse cardinality: %v", err)
	}

	p, err := NewAssembler().Assemble(composer, testAgent, session.KindSale)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	for _, key := range p.Keys() {
		if strings.HasPrefix(key, "vendedor_2_") {
			t.Fatalf("collapsed slot key %q present in payload", key)
		}
	}
}

func TestAssemble_LeaseLegalEntityWithoutGuarantor(t *testing.T) {
	composer := form.NewLease(nil)
	if err := composer.SetTenantVariant(form.TenantLegalEntity); err != nil {
		t.Fatalf("switch variant: %v", err)
	}
	composer.SetGuarantorPresence(false)

	p, err := NewAssembler().Assemble(composer, testAgent, session.KindLease)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	if value, _ := p.Value(KeyTenantType); value != "legal" {
		t.Fatalf("%s = %q, want legal", KeyTenantType, value)
	}
	if value, _ := p.Value(KeyGuarantor); value != ValueNo {
		t.Fatalf("%s = %q, want %q", KeyGuarantor, value, ValueNo)
	}
	if value, _ := p.Value(KeyOperationType); value != "arriendo" {
		t.Fatalf("%s = %q, want arriendo", KeyOperationType, value)
	}
	for _, key := range p.Keys() {
		if strings.HasPrefix(key, "fiador_") {
			t.Fatalf("guarantor key %q present while disabled", key)
		}
		if strings.HasPrefix(key, "arrendatario_") &&
			!strings.HasPrefix(key, "arrendatario_juridica") &&
			key != KeyTenantType {
			t.Fatalf("natural-person key %q present under legal-entity variant", key)
		}
	}
}

func TestAssemble_NoDateOverride(t *testing.T) {
	composer := form.NewSale(nil)
	state := composer.State()
	state.SetDate("fecha_cierre", form.DateValue{NoDate: true})
	state.SetDate("fecha_promesa", form.DateValue{Date: "2026-10-01"})

	p, err := NewAssembler().Assemble(composer, testAgent, session.KindSale)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	if p.Has("fecha_cierre") {
		t.Fatal("overridden date transmitted")
	}
	if value, _ := p.Value("fecha_cierre" + registry.NoDateSuffix); value != ValueYes {
		t.Fatalf("override flag = %q, want %q", value, ValueYes)
	}
	if value, _ := p.Value("fecha_promesa"); value != "2026-10-01" {
		t.Fatalf("fecha_promesa = %q", value)
	}
	// Untouched empty dates are omitted rather than sent as empty strings.
	if p.Has("fecha_entrega") {
		t.Fatal("empty date transmitted")
	}
}

func TestAssemble_DefaultsAndSanitizedNotes(t *testing.T) {
	composer := form.NewSale(nil)
	composer.State().Set("notas", "Avance <script>alert('x')</script> normal")

	p, err := NewAssembler().Assemble(composer, testAgent, session.KindSale)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	if value, _ := p.Value("vendedor_hon_comision"); value != "2% + iva" {
		t.Fatalf("commission default = %q", value)
	}
	notes, _ := p.Value("notas")
	if strings.Contains(notes, "<script>") {
		t.Fatalf("notes not sanitized: %q", notes)
	}
	if !strings.Contains(notes, "Avance") {
		t.Fatalf("notes text lost: %q", notes)
	}
}

func TestAssemble_DeterministicForIdenticalInputs(t *testing.T) {
	build := func() []string {
		composer := form.NewLease(nil)
		composer.SetGuarantorPresence(true)
		composer.State().Set("canon_arriendo", "$ 420.000")
		p, err := NewAssembler().Assemble(composer, testAgent, session.KindLease)
		if err != nil {
			t.Fatalf("assemble: %v", err)
		}
		return p.Keys()
	}

	first, second := build(), build()
	if len(first) != len(second) {
		t.Fatalf("key counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("key order differs at %d: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestAssemble_RequiresComposerAndKind(t *testing.T) {
	if _, err := NewAssembler().Assemble(nil, testAgent, session.KindSale); err == nil {
		t.Fatal("expected error for nil composer")
	}
	if _, err := NewAssembler().Assemble(form.NewSale(nil), testAgent, "permuta"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}
