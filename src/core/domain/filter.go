package domain

import "time"

// SortOrder is the direction of a sort directive.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// FilterOp is the predicate applied to a single field.
type FilterOp int

const (
	// OpEquals matches the field value exactly.
	OpEquals FilterOp = iota
	// OpContains matches a case-insensitive substring of a text field.
	OpContains
	// OpRange matches a time field within [From, To]; either bound may be nil.
	OpRange
)

// Condition is one field predicate of a filter.
type Condition struct {
	Field string
	Op    FilterOp
	Value string
	From  *time.Time
	To    *time.Time
}

// Filter models the predicates and sort directives of a single list query.
// Query matches a case-insensitive substring across the store's designated
// text fields; Conditions apply per field. A zero Filter matches everything.
type Filter struct {
	Query      string
	Conditions []Condition
	SortBy     string
	SortOrder  SortOrder
}

// Where adds an equality condition.
func (f Filter) Where(field, value string) Filter {
	f.Conditions = append(f.Conditions, Condition{Field: field, Op: OpEquals, Value: value})
	return f
}

// WhereContains adds a case-insensitive substring condition.
func (f Filter) WhereContains(field, value string) Filter {
	f.Conditions = append(f.Conditions, Condition{Field: field, Op: OpContains, Value: value})
	return f
}

// WhereRange adds a time range condition. Nil bounds are open.
func (f Filter) WhereRange(field string, from, to *time.Time) Filter {
	f.Conditions = append(f.Conditions, Condition{Field: field, Op: OpRange, From: from, To: to})
	return f
}

// SortedBy sets the sort field and direction.
func (f Filter) SortedBy(field string, order SortOrder) Filter {
	f.SortBy = field
	f.SortOrder = order
	return f
}
