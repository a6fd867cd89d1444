package form

import "fmt"

// Party is the structured record behind one sale party slot (seller or
// buyer). It flattens into "{role}_{index}_{attribute}" keys via ApplyParty.
type Party struct {
	FirstNames    string
	LastNames     string
	NationalID    string
	Profession    string
	MaritalStatus string
	Address       string
	Phone         string
	Email         string
}

// Employment is the work block carried by lease tenants and guarantors.
type Employment struct {
	Occupation  string
	Profession  string
	Employer    string
	Title       string
	Tenure      string
	WorkPhone   string
	WorkAddress string
}

// LeasePerson is the structured record behind a lease natural-person slot
// (landlord, tenant, guarantor). It flattens into "{role}_{attribute}" keys.
type LeasePerson struct {
	FirstNames    string
	LastNames     string
	NationalID    string
	BirthDate     DateValue
	Nationality   string
	MaritalStatus string
	Address       string
	Commune       string
	Phone         string
	Email         string
	Employment    Employment
}

// Representative is the natural person acting for a legal-entity tenant.
type Representative struct {
	FirstNames    string
	LastNames     string
	NationalID    string
	BirthDate     DateValue
	Nationality   string
	MaritalStatus string
	Phone         string
	Email         string
}

// LegalEntity is the structured record behind the legal-entity tenant
// variant: the company plus its legal representative.
type LegalEntity struct {
	CompanyName    string
	CompanyID      string
	Address        string
	Phone          string
	Representative Representative
}

// ApplyParty flattens a sale party record into the state under
// "{role}_{index}_{attribute}" keys.
func (s *State) ApplyParty(role string, index int, party Party) {
	prefix := fmt.Sprintf("%s_%d", role, index)
	s.Set(prefix+"_nombres", party.FirstNames)
	s.Set(prefix+"_apellidos", party.LastNames)
	s.Set(prefix+"_rut", party.NationalID)
	s.Set(prefix+"_profesion", party.Profession)
	s.Set(prefix+"_estado_civil", party.MaritalStatus)
	s.Set(prefix+"_direccion", party.Address)
	s.Set(prefix+"_telefono", party.Phone)
	s.Set(prefix+"_correo", party.Email)
}

// ApplyLeasePerson flattens a lease person record into the state under
// "{role}_{attribute}" keys. The employment block is written only when the
// registry declares employment fields for the role (tenant and guarantor);
// stray keys for roles without the block are harmless because assembly is
// restricted to the active field set.
func (s *State) ApplyLeasePerson(role string, person LeasePerson) {
	s.Set(role+"_nombres", person.FirstNames)
	s.Set(role+"_apellidos", person.LastNames)
	s.Set(role+"_rut", person.NationalID)
	s.SetDate(role+"_nacimiento", person.BirthDate)
	s.Set(role+"_nacionalidad", person.Nationality)
	s.Set(role+"_civil", person.MaritalStatus)
	s.Set(role+"_direccion", person.Address)
	s.Set(role+"_comuna", person.Commune)
	s.Set(role+"_telefono", person.Phone)
	s.Set(role+"_email", person.Email)

	s.Set(role+"_ocupacion", person.Employment.Occupation)
	s.Set(role+"_profesion", person.Employment.Profession)
	s.Set(role+"_empleador", person.Employment.Employer)
	s.Set(role+"_cargo", person.Employment.Title)
	s.Set(role+"_antiguedad", person.Employment.Tenure)
	s.Set(role+"_telefono_lab", person.Employment.WorkPhone)
	s.Set(role+"_direccion_lab", person.Employment.WorkAddress)
}

// ApplyLegalEntity flattens a legal-entity tenant record into the state under
// "{role}_juridica_{attribute}" and "{role}_juridica_rep_{attribute}" keys.
func (s *State) ApplyLegalEntity(role string, entity LegalEntity) {
	prefix := role + "_juridica"
	s.Set(prefix+"_razon", entity.CompanyName)
	s.Set(prefix+"_rut", entity.CompanyID)
	s.Set(prefix+"_direccion", entity.Address)
	s.Set(prefix+"_telefono", entity.Phone)

	rep := prefix + "_rep"
	s.Set(rep+"_nombres", entity.Representative.FirstNames)
	s.Set(rep+"_apellidos", entity.Representative.LastNames)
	s.Set(rep+"_rut", entity.Representative.NationalID)
	s.SetDate(rep+"_nacimiento", entity.Representative.BirthDate)
	s.Set(rep+"_nacionalidad", entity.Representative.Nationality)
	s.Set(rep+"_civil", entity.Representative.MaritalStatus)
	s.Set(rep+"_telefono", entity.Representative.Phone)
	s.Set(rep+"_email", entity.Representative.Email)
}
