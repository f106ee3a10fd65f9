package domain

// TagKind distinguishes the two descriptive dimensions an entry can carry.
type TagKind string

const (
	TagLocation   TagKind = "location"
	TagDepartment TagKind = "department"
)

// Tag is a location or department that entries can be labelled with.
type Tag struct {
	TagID   string  `json:"tagID"` // Primary Key (UUID)
	Kind    TagKind `json:"kind"`
	Name    string  `json:"name"`
	Version int64   `json:"version"`
	AuditFields
}

// FallbackName returns the placeholder shown when a tag of this kind does not resolve.
func (k TagKind) FallbackName() string {
	if k == TagDepartment {
		return DefaultDepartmentName
	}
	return DefaultLocationName
}
