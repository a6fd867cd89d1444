package registry

import "fmt"

// Conditional groups for the sale/purchase form. The first seller and buyer
// slots are unconditional; the second slot of each exists only while its
// cardinality is raised to two.
const (
	GroupSecondSeller = "vendedor_2"
	GroupSecondBuyer  = "comprador_2"
)

// Repeatable party roles for the sale form.
const (
	RoleSeller = "vendedor"
	RoleBuyer  = "comprador"
)

// Sale returns the field registry for the sale/purchase ("compraventa")
// request form.
func Sale() *Registry {
	fields := []Field{
		// Operation information.
		{Key: "fecha_cierre", Label: "Fecha de cierre de negocio", Kind: KindDate},
		{Key: "codigo_remax", Label: "Código RE/MAX", Kind: KindText},
		{Key: "fecha_promesa", Label: "Fecha firma PROMESA", Kind: KindDate},
		{Key: "fecha_entrega", Label: "Fecha de entrega propiedad", Kind: KindDate},
		{Key: "fecha_escritura", Label: "Fecha firma Escritura", Kind: KindDate},

		// Property identification.
		{Key: "rol_propiedad", Label: "ROL Propiedad", Kind: KindText},
		{Key: "tipo_propiedad", Label: "Tipo de Propiedad", Kind: KindText},
		{Key: "comuna", Label: "Comuna", Kind: KindText},
		{Key: "valor_venta_pesos", Label: "Valor de Venta (Pesos)", Kind: KindText},
		{Key: "valor_venta_uf", Label: "Valor Referencial (UF)", Kind: KindText},
	}

	fields = append(fields, salePartyFields(RoleSeller, 1, "")...)
	fields = append(fields, salePartyFields(RoleSeller, 2, GroupSecondSeller)...)
	fields = append(fields, salePartyFields(RoleBuyer, 1, "")...)
	fields = append(fields, salePartyFields(RoleBuyer, 2, GroupSecondBuyer)...)

	fields = append(fields,
		// Promise agreements.
		Field{Key: "monto_pie", Label: "Monto del Pie", Kind: KindText},
		Field{Key: "monto_financiar", Label: "Monto a Financiar", Kind: KindText},
		Field{Key: "monto_contado", Label: "Monto Contado", Kind: KindText},

		// Seller banking details.
		Field{Key: "vendedor_banco", Label: "Banco (Vendedor)", Kind: KindText},
		Field{Key: "vendedor_ejecutivo", Label: "Ejecutivo (Vendedor)", Kind: KindText},
		Field{Key: "vendedor_correo_banco", Label: "Correo Banco (Vendedor)", Kind: KindText},
		Field{Key: "vendedor_telefono_banco", Label: "Teléfono Banco (Vendedor)", Kind: KindText},

		// Buyer banking details.
		Field{Key: "comprador_banco", Label: "Banco (Comprador)", Kind: KindText},
		Field{Key: "comprador_ejecutivo", Label: "Ejecutivo (Comprador)", Kind: KindText},
		Field{Key: "comprador_correo_banco", Label: "Correo Banco (Comprador)", Kind: KindText},
		Field{Key: "comprador_telefono_banco", Label: "Teléfono Banco (Comprador)", Kind: KindText},
	)

	fields = append(fields, instructionRow("vendedor_hon", "Vendedor Honorarios", "2% + iva")...)
	fields = append(fields, instructionRow("comprador_hon", "Comprador Honorarios", "")...)
	fields = append(fields, instructionRow("garantia_comp", "Garantía Comprador", "")...)
	fields = append(fields, instructionRow("garantia_vend", "Garantía Vendedor", "")...)

	fields = append(fields,
		Field{Key: "dominio_vigente", Label: "Dominio Vigente", Kind: KindFile},
		Field{Key: "gp_certificado", Label: "GP (Hip. y Grav.)", Kind: KindFile},
		Field{Key: "notas", Label: "Notas de Avance", Kind: KindTextBlock},
	)

	return MustNew(fields...)
}

// salePartyFields declares one indexed party slot. Keys are namespaced
// "{role}_{index}_{attribute}" so both slots of a role stay independently
// addressable inside the flat mapping.
func salePartyFields(role string, index int, group string) []Field {
	prefix := fmt.Sprintf("%s_%d", role, index)
	suffix := func(attr, label string) Field {
		return Field{
			Key:   prefix + "_" + attr,
			Label: label,
			Kind:  KindText,
			Group: group,
		}
	}
	return []Field{
		suffix("nombres", "Nombres"),
		suffix("apellidos", "Apellidos"),
		suffix("rut", "RUT"),
		suffix("profesion", "Profesión / Actividad"),
		suffix("estado_civil", "Estado Civil"),
		suffix("direccion", "Dirección"),
		suffix("telefono", "Teléfono Celular"),
		suffix("correo", "Correo"),
	}
}

// instructionRow declares one row of the cheque-instruction table.
func instructionRow(id, label, defaultCommission string) []Field {
	row := func(attr, attrLabel, def string) Field {
		return Field{
			Key:     id + "_" + attr,
			Label:   label + " — " + attrLabel,
			Kind:    KindText,
			Default: def,
		}
	}
	return []Field{
		row("orden", "A La Orden De", ""),
		row("banco", "Banco", ""),
		row("cta", "Cta.Cte N°", ""),
		row("serie", "N° Serie", ""),
		row("doc", "N° Doc", ""),
		row("comision", "% Comisión", defaultCommission),
		row("monto", "Monto", ""),
	}
}
