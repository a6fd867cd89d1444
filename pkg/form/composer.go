package form

import (
	"fmt"

	"github.com/propdesk/go-contractflow/pkg/registry"
)

const noDateSuffix = registry.NoDateSuffix

// TenantVariant selects which lease-tenant field set is active.
type TenantVariant string

const (
	// TenantNatural is a natural-person tenant.
	TenantNatural TenantVariant = "natural"
	// TenantLegalEntity is a legal-entity tenant with a representative block.
	TenantLegalEntity TenantVariant = "legal"
)

// Repeatable party cardinality bounds. Sale sessions allow one or two seller
// and buyer slots, independently.
const (
	MinCardinality = 1
	MaxCardinality = 2
)

// Composer owns the structural configuration of one detail form: repeatable
// party cardinality, the tenant variant, and the guarantor toggle. It decides
// which declared field keys are currently live, independent of any rendering
// layer. Deactivating a group discards its in-memory values, not merely
// hides them.
type Composer struct {
	reg         *registry.Registry
	state       *State
	cardinality map[string]int
	tenant      TenantVariant
	guarantor   bool
	lease       bool
}

// NewSale builds the composer for a sale/purchase form: one seller slot and
// one buyer slot active, the second of each collapsed.
func NewSale(state *State) *Composer {
	if state == nil {
		state = NewState()
	}
	return &Composer{
		reg:   registry.Sale(),
		state: state,
		cardinality: map[string]int{
			registry.RoleSeller: MinCardinality,
			registry.RoleBuyer:  MinCardinality,
		},
	}
}

// NewLease builds the composer for a lease form: natural-person tenant, no
// guarantor.
func NewLease(state *State) *Composer {
	if state == nil {
		state = NewState()
	}
	return &Composer{
		reg:    registry.Lease(),
		state:  state,
		tenant: TenantNatural,
		lease:  true,
	}
}

// Registry returns the declarations backing this form.
func (c *Composer) Registry() *registry.Registry {
	if c == nil {
		return nil
	}
	return c.reg
}

// State returns the mutable value state backing this form.
func (c *Composer) State() *State {
	if c == nil {
		return nil
	}
	return c.state
}

// SetCardinality raises or collapses a repeatable party group. Count is
// constrained to {1,2}. Collapsing 2→1 discards the second slot's values.
func (c *Composer) SetCardinality(role string, count int) error {
	if c == nil {
		return fmt.Errorf("form: composer is nil")
	}
	current, ok := c.cardinality[role]
	if !ok {
		return fmt.Errorf("form: %q is not a repeatable party group", role)
	}
	if count < MinCardinality || count > MaxCardinality {
		return fmt.Errorf("form: cardinality %d out of range for %q", count, role)
	}
	if count < current {
		c.state.Discard(c.reg.GroupKeys(secondSlotGroup(role))...)
	}
	c.cardinality[role] = count
	return nil
}

// Cardinality reports the active slot count for a repeatable party group.
func (c *Composer) Cardinality(role string) int {
	if c == nil {
		return 0
	}
	return c.cardinality[role]
}

// SetTenantVariant switches the lease tenant between the natural-person and
// legal-entity field sets. Switching discards the previous variant's values.
func (c *Composer) SetTenantVariant(variant TenantVariant) error {
	if c == nil {
		return fmt.Errorf("form: composer is nil")
	}
	if !c.lease {
		return fmt.Errorf("form: tenant variant only applies to lease forms")
	}
	switch variant {
	case TenantNatural, TenantLegalEntity:
	default:
		return fmt.Errorf("form: unknown tenant variant %q", variant)
	}
	if variant == c.tenant {
		return nil
	}
	c.state.Discard(c.reg.GroupKeys(tenantGroup(c.tenant))...)
	c.tenant = variant
	return nil
}

// TenantVariant reports the active tenant variant. Empty for sale forms.
func (c *Composer) TenantVariant() TenantVariant {
	if c == nil {
		return ""
	}
	return c.tenant
}

// SetGuarantorPresence toggles the guarantor block. Toggling off discards
// the guarantor values.
func (c *Composer) SetGuarantorPresence(present bool) {
	if c == nil || !c.lease {
		return
	}
	if !present && c.guarantor {
		c.state.Discard(c.reg.GroupKeys(registry.GroupGuarantor)...)
	}
	c.guarantor = present
}

// GuarantorPresent reports whether the guarantor block is active.
func (c *Composer) GuarantorPresent() bool {
	return c != nil && c.guarantor
}

// Lease reports whether this composer backs a lease form.
func (c *Composer) Lease() bool {
	return c != nil && c.lease
}

// ActiveFieldKeys returns the field keys that are currently live for this
// structural configuration, in declaration order. Calling it twice with no
// intervening structural change yields an identical sequence.
func (c *Composer) ActiveFieldKeys() []string {
	if c == nil {
		return nil
	}
	var keys []string
	for _, field := range c.reg.Fields() {
		if c.groupActive(field.Group) {
			keys = append(keys, field.Key)
		}
	}
	return keys
}

// Snapshot returns a composer over a deep copy of the state with the same
// structural configuration, for in-flight submission attempts.
func (c *Composer) Snapshot() *Composer {
	if c == nil {
		return nil
	}
	clone := &Composer{
		reg:       c.reg,
		state:     c.state.Snapshot(),
		tenant:    c.tenant,
		guarantor: c.guarantor,
		lease:     c.lease,
	}
	if c.cardinality != nil {
		clone.cardinality = make(map[string]int, len(c.cardinality))
		for role, count := range c.cardinality {
			clone.cardinality[role] = count
		}
	}
	return clone
}

func (c *Composer) groupActive(group string) bool {
	switch group {
	case "":
		return true
	case registry.GroupSecondSeller:
		return c.cardinality[registry.RoleSeller] >= 2
	case registry.GroupSecondBuyer:
		return c.cardinality[registry.RoleBuyer] >= 2
	case registry.GroupTenantNatural:
		return c.tenant == TenantNatural
	case registry.GroupTenantLegal:
		return c.tenant == TenantLegalEntity
	case registry.GroupGuarantor:
		return c.guarantor
	default:
		return false
	}
}

func secondSlotGroup(role string) string {
	return fmt.Sprintf("%s_%d", role, MaxCardinality)
}

func tenantGroup(variant TenantVariant) string {
	if variant == TenantLegalEntity {
		return registry.GroupTenantLegal
	}
	return registry.GroupTenantNatural
}
