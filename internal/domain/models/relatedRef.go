package models

// RelatedRef points a record at an arbitrary entity outside this schema:
// Kind names the entity type, ID its key. Resolution happens in whatever
// system registered the kind; stored here as two nullable columns.
type RelatedRef struct {
	Kind string `json:"kind" db:"related_kind"`
	ID   int64  `json:"id" db:"related_id"`
}
