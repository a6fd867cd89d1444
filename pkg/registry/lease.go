package registry

// Conditional groups for the lease form. Exactly one of the two tenant
// variants is active at a time; the guarantor block is active only while the
// guarantor toggle is on.
const (
	GroupTenantNatural = "arrendatario_natural"
	GroupTenantLegal   = "arrendatario_juridica"
	GroupGuarantor     = "fiador"
)

// Lease party roles. Lease slots are not indexed; keys are namespaced
// "{role}_{attribute}".
const (
	RoleLandlord  = "arrendador"
	RoleTenant    = "arrendatario"
	RoleGuarantor = "fiador"
)

// Lease returns the field registry for the lease ("arriendo") request form.
func Lease() *Registry {
	fields := []Field{
		// Contract and property.
		{Key: "plazo_contrato", Label: "Plazo del Contrato", Kind: KindText},
		{Key: "fecha_inicio", Label: "Fecha Inicio Arriendo", Kind: KindDate},
		{Key: "canon_arriendo", Label: "Canon de Arriendo", Kind: KindText},
		{Key: "documenta_cheque", Label: "Documenta con Cheque (SI/NO)", Kind: KindText},
		{Key: "cuenta_transferencia", Label: "Cuenta para Transferencia", Kind: KindText},
		{Key: "rol_propiedad", Label: "ROL Propiedad", Kind: KindText},
		{Key: "cliente_agua", Label: "N° Cliente Agua", Kind: KindText},
		{Key: "cliente_luz", Label: "N° Cliente Luz", Kind: KindText},
		{Key: "direccion_propiedad", Label: "Dirección de la Propiedad", Kind: KindText},
	}

	fields = append(fields, leasePersonFields(RoleLandlord, "", false)...)
	fields = append(fields, leasePersonFields(RoleTenant, GroupTenantNatural, true)...)
	fields = append(fields, legalEntityFields(RoleTenant, GroupTenantLegal)...)
	fields = append(fields, leasePersonFields(RoleGuarantor, GroupGuarantor, true)...)

	fields = append(fields,
		Field{Key: "dominio_vigente", Label: "Dominio Vigente", Kind: KindFile},
		Field{Key: "notas", Label: "Notas Adicionales", Kind: KindTextBlock},
	)

	return MustNew(fields...)
}

// leasePersonFields declares a natural-person slot. Lease persons carry birth
// date and nationality on top of the sale party attributes, plus an
// employment block for tenants and guarantors.
func leasePersonFields(role, group string, withEmployment bool) []Field {
	field := func(attr, label string, kind Kind) Field {
		return Field{Key: role + "_" + attr, Label: label, Kind: kind, Group: group}
	}
	fields := []Field{
		field("nombres", "Nombres", KindText),
		field("apellidos", "Apellidos", KindText),
		field("rut", "RUT / Pasaporte", KindText),
		field("nacimiento", "Fecha Nacimiento", KindDate),
		field("nacionalidad", "Nacionalidad", KindText),
		field("civil", "Estado Civil", KindText),
		field("direccion", "Domicilio Particular", KindText),
		field("comuna", "Comuna", KindText),
		field("telefono", "Teléfono Celular", KindText),
		field("email", "Correo Electrónico", KindText),
	}
	if withEmployment {
		fields = append(fields,
			field("ocupacion", "Ocupación", KindText),
			field("profesion", "Profesión", KindText),
			field("empleador", "Empleador", KindText),
			field("cargo", "Cargo", KindText),
			field("antiguedad", "Antigüedad", KindText),
			field("telefono_lab", "Teléfono Laboral", KindText),
			field("direccion_lab", "Domicilio Laboral", KindText),
		)
	}
	return fields
}

// legalEntityFields declares the legal-entity tenant variant: the company
// block plus its legal representative.
func legalEntityFields(role, group string) []Field {
	prefix := role + "_juridica"
	repPrefix := prefix + "_rep"
	field := func(key, label string, kind Kind) Field {
		return Field{Key: key, Label: label, Kind: kind, Group: group}
	}
	return []Field{
		field(prefix+"_razon", "Razón Social", KindText),
		field(prefix+"_rut", "RUT Empresa", KindText),
		field(prefix+"_direccion", "Domicilio Comercial", KindText),
		field(prefix+"_telefono", "Teléfono", KindText),

		field(repPrefix+"_nombres", "Nombres (Rep. Legal)", KindText),
		field(repPrefix+"_apellidos", "Apellidos (Rep. Legal)", KindText),
		field(repPrefix+"_rut", "RUT (Rep. Legal)", KindText),
		field(repPrefix+"_nacimiento", "Fecha Nacimiento (Rep. Legal)", KindDate),
		field(repPrefix+"_nacionalidad", "Nacionalidad (Rep. Legal)", KindText),
		field(repPrefix+"_civil", "Estado Civil (Rep. Legal)", KindText),
		field(repPrefix+"_telefono", "Teléfono (Rep. Legal)", KindText),
		field(repPrefix+"_email", "Correo (Rep. Legal)", KindText),
	}
}
