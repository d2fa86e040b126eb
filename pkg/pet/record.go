package pet

// Attribute names the service owns on every record. Everything else in
// a Record is caller supplied and passes through untouched.
const (
	AttrID       = "id"
	AttrCreated  = "created"
	AttrModified = "modified"
)

// Record is one pet item: an open mapping from field names to loosely
// typed values. The store is schemaless aside from the key, so no
// struct schema is imposed here — only the `id` attribute has meaning
// to the service.
type Record map[string]any

// ID returns the record's identifier, or "" when absent or not a string.
func (r Record) ID() string {
	id, _ := r[AttrID].(string)
	return id
}

// HasID reports whether the record carries an `id` attribute of any type.
func (r Record) HasID() bool {
	_, ok := r[AttrID]
	return ok
}
