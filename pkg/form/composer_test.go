package form

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/propdesk/go-contractflow/pkg/registry"
)

func TestActiveFieldKeys_Idempotent(t *testing.T) {
	composer := NewSale(nil)
	if err := composer.SetCardinality(registry.RoleSeller, 2); err != nil {
		t.Fatalf("set cardinality: %v", err)
	}

	first := composer.ActiveFieldKeys()
	second := composer.ActiveFieldKeys()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated calls differ (-first +second):\n%s", diff)
	}
}

func TestSetCardinality_CollapseDiscardsValues(t *testing.T) {
	composer := NewSale(nil)
	state := composer.State()

	if err := composer.SetCardinality(registry.RoleSeller, 2); err != nil {
		t.Fatalf("raise cardinality: %v", err)
	}
	state.ApplyParty(registry.RoleSeller, 2, Party{FirstNames: "Ana", NationalID: "11.111.111-1"})

	if err := composer.SetCardinality(registry.RoleSeller, 1); err != nil {
		t.Fatalf("collapse cardinality: %v", err)
	}
	// Raising it back must start from a blank slot: values are discarded,
	// not hidden.
	if err := composer.SetCardinality(registry.RoleSeller, 2); err != nil {
		t.Fatalf("re-raise cardinality: %v", err)
	}
	if value, ok := state.Value("vendedor_2_nombres"); ok {
		t.Fatalf("second seller value %q retained across collapse", value)
	}
}

func TestSetCardinality_Bounds(t *testing.T) {
	composer := NewSale(nil)
	if err := composer.SetCardinality(registry.RoleBuyer, 3); err == nil {
		t.Fatal("expected out-of-range error for count 3")
	}
	if err := composer.SetCardinality(registry.RoleBuyer, 0); err == nil {
		t.Fatal("expected out-of-range error for count 0")
	}
	if err := composer.SetCardinality("arrendador", 2); err == nil {
		t.Fatal("expected error for non-repeatable group")
	}
}

func TestSetTenantVariant_SwitchDiscardsOtherVariant(t *testing.T) {
	composer := NewLease(nil)
	state := composer.State()
	state.Set("arrendatario_nombres", "Luis")
	state.Set("arrendatario_ocupacion", "Contador")

	if err := composer.SetTenantVariant(TenantLegalEntity); err != nil {
		t.Fatalf("switch variant: %v", err)
	}
	if _, ok := state.Value("arrendatario_nombres"); ok {
		t.Fatal("natural-person value retained after switching to legal entity")
	}

	state.Set("arrendatario_juridica_razon", "Andes SpA")
	if err := composer.SetTenantVariant(TenantNatural); err != nil {
		t.Fatalf("switch back: %v", err)
	}
	if _, ok := state.Value("arrendatario_juridica_razon"); ok {
		t.Fatal("legal-entity value retained after switching back")
	}
}

func TestSetTenantVariant_SaleFormRejected(t *testing.T) {
	composer := NewSale(nil)
	if err := composer.SetTenantVariant(TenantNatural); err == nil {
		t.Fatal("expected error on sale form")
	}
}

func TestSetGuarantorPresence_ToggleOffDiscards(t *testing.T) {
	composer := NewLease(nil)
	state := composer.State()

	composer.SetGuarantorPresence(true)
	state.Set("fiador_nombres", "Carla")

	composer.SetGuarantorPresence(false)
	if _, ok := state.Value("fiador_nombres"); ok {
		t.Fatal("guarantor value retained after toggle off")
	}

	keys := composer.ActiveFieldKeys()
	for _, key := range keys {
		if key == "fiador_nombres" {
			t.Fatal("guarantor key active while toggled off")
		}
	}
}

func TestActiveFieldKeys_TenantVariantExclusive(t *testing.T) {
	composer := NewLease(nil)
	if err := composer.SetTenantVariant(TenantLegalEntity); err != nil {
		t.Fatalf("switch variant: %v", err)
	}

	active := make(map[string]bool)
	for _, key := range composer.ActiveFieldKeys() {
		active[key] = true
	}
	if active["arrendatario_nombres"] {
		t.Fatal("natural-person key active under legal-entity variant")
	}
	if !active["arrendatario_juridica_razon"] {
		t.Fatal("legal-entity key missing under legal-entity variant")
	}
}

func TestSnapshot_StructureAndStateIsolated(t *testing.T) {
	composer := NewSale(nil)
	if err := composer.SetCardinality(registry.RoleSeller, 2); err != nil {
		t.Fatalf("raise cardinality: %v", err)
	}
	composer.State().Set("comuna", "Vitacura")

	snapshot := composer.Snapshot()
	composer.State().Set("comuna", "Ñuñoa")
	if err := composer.SetCardinality(registry.RoleSeller, 1); err != nil {
		t.Fatalf("collapse cardinality: %v", err)
	}

	if value, _ := snapshot.State().Value("comuna"); value != "Vitacura" {
		t.Fatalf("snapshot value = %q, want original", value)
	}
	if snapshot.Cardinality(registry.RoleSeller) != 2 {
		t.Fatal("snapshot cardinality changed by later edits")
	}
}
