package form

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestState_DateOverrideDiscardsDate(t *testing.T) {
	state := NewState()
	state.SetDate("fecha_cierre", DateValue{Date: "2026-09-01"})
	state.SetDate("fecha_cierre", DateValue{NoDate: true})

	if got := state.Date("fecha_cierre"); !got.NoDate || got.Date != "" {
		t.Fatalf("date after override = %+v, want NoDate with empty date", got)
	}
	if _, ok := state.Value("fecha_cierre"); ok {
		t.Fatal("date value retained after override")
	}

	// Clearing the override starts from a blank date, not the old one.
	state.SetDate("fecha_cierre", DateValue{Date: "2026-10-15"})
	if state.NoDate("fecha_cierre") {
		t.Fatal("override flag retained after a date was set")
	}
}

func TestState_DiscardRemovesAllTraces(t *testing.T) {
	state := NewState()
	state.Set("fiador_nombres", "Carla")
	state.SetDate("fiador_nacimiento", DateValue{NoDate: true})
	state.SetAttachment("dominio_vigente", Attachment{Filename: "dominio.pdf", Content: []byte("pdf")})

	state.Discard("fiador_nombres", "fiador_nacimiento", "dominio_vigente")

	if _, ok := state.Value("fiador_nombres"); ok {
		t.Fatal("value survived discard")
	}
	if state.NoDate("fiador_nacimiento") {
		t.Fatal("override flag survived discard")
	}
	if _, ok := state.Attachment("dominio_vigente"); ok {
		t.Fatal("attachment survived discard")
	}
}

func TestState_SnapshotIsIsolated(t *testing.T) {
	state := NewState()
	state.Set("comuna", "Las Condes")
	state.SetAttachment("dominio_vigente", Attachment{Filename: "dominio.pdf", Content: []byte{1, 2, 3}})

	snapshot := state.Snapshot()
	state.Set("comuna", "Providencia")
	attachment, _ := state.Attachment("dominio_vigente")
	attachment.Content[0] = 9

	if value, _ := snapshot.Value("comuna"); value != "Las Condes" {
		t.Fatalf("snapshot value = %q, want original", value)
	}
	copied, _ := snapshot.Attachment("dominio_vigente")
	if copied.Content[0] != 1 {
		t.Fatal("snapshot attachment shares bytes with the live state")
	}
}

func TestApplyParty_FlattensToNamespacedKeys(t *testing.T) {
	state := NewState()
	state.ApplyParty("vendedor", 2, Party{
		FirstNames:    "María José",
		LastNames:     "Soto Rivas",
		NationalID:    "12.345.678-9",
		Profession:    "Arquitecta",
		MaritalStatus: "Casada",
		Address:       "Av. Apoquindo 1234",
		Phone:         "56922223333",
		Email:         "maria@x.cl",
	})

	want := map[string]string{
		"vendedor_2_nombres":      "María José",
		"vendedor_2_apellidos":    "Soto Rivas",
		"vendedor_2_rut":          "12.345.678-9",
		"vendedor_2_profesion":    "Arquitecta",
		"vendedor_2_estado_civil": "Casada",
		"vendedor_2_direccion":    "Av. Apoquindo 1234",
		"vendedor_2_telefono":     "56922223333",
		"vendedor_2_correo":       "maria@x.cl",
	}
	if diff := cmp.Diff(want, state.Values()); diff != "" {
		t.Fatalf("flattened party mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyLegalEntity_FlattensCompanyAndRepresentative(t *testing.T) {
	state := NewState()
	state.ApplyLegalEntity("arrendatario", LegalEntity{
		CompanyName: "Comercial Andes SpA",
		CompanyID:   "76.543.210-K",
		Address:     "Huérfanos 1022",
		Phone:       "56226001000",
		Representative: Representative{
			FirstNames: "Pedro",
			LastNames:  "Lagos",
			NationalID: "9.876.543-2",
			Email:      "pedro@andes.cl",
		},
	})

	if value, _ := state.Value("arrendatario_juridica_razon"); value != "Comercial Andes SpA" {
		t.Fatalf("company name = %q", value)
	}
	if value, _ := state.Value("arrendatario_juridica_rep_email"); value != "pedro@andes.cl" {
		t.Fatalf("representative email = %q", value)
	}
}
