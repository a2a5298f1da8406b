package domain

// Patch is a partial update: field name to new value. Only fields present
// in the patch are written; stores whitelist the fields they accept.
type Patch map[string]any

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool { return len(p) == 0 }
