package domain

// Patch is a partial update to a todo. A nil field means "leave as is";
// a set field overwrites. ID and CreatedAt are immutable and deliberately
// have no slot here.
type Patch struct {
	Name        *string
	Description *string
	Deadline    *string
	Status      *string
	Canceled    *bool
}

// IsEmpty reports whether the patch sets no fields at all.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Deadline == nil &&
		p.Status == nil && p.Canceled == nil
}

// Fields returns only the explicitly set fields as a name->value mapping,
// in the persisted field naming. This is the pure reduction step that the
// empty-patch check and the store-level $set both build on.
func (p Patch) Fields() map[string]interface{} {
	m := make(map[string]interface{})
	if p.Name != nil {
		m["name"] = *p.Name
	}
	if p.Description != nil {
		m["description"] = *p.Description
	}
	if p.Deadline != nil {
		m["deadline"] = *p.Deadline
	}
	if p.Status != nil {
		m["status"] = *p.Status
	}
	if p.Canceled != nil {
		m["canceled"] = *p.Canceled
	}
	return m
}
