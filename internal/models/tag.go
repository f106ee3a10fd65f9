package models

// Tag is a row of gl_tags.
type Tag struct {
	TagID   string `db:"tag_id"`
	Kind    string `db:"kind"`
	Name    string `db:"name"`
	Version int64  `db:"version"`
	AuditFields
}
