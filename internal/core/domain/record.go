package domain

// RecordType classifies a dashboard item.
type RecordType string

// Known record types.
const (
	// RecordTypePlant is a single plant page.
	RecordTypePlant RecordType = "plant"

	// RecordTypeEnvironment is a room, greenhouse or other environment page.
	RecordTypeEnvironment RecordType = "environment"
)

// IsValid returns true if the record type is recognised.
func (t RecordType) IsValid() bool {
	return t == RecordTypePlant || t == RecordTypeEnvironment
}

// String returns the string representation.
func (t RecordType) String() string {
	return string(t)
}

// Record is one searchable entity of the dashboard dataset.
// Optional fields are empty strings when absent.
type Record struct {
	// ID is the full item identifier.
	ID string `json:"id"`

	// IDTail is the short suffix of the ID shown to users.
	IDTail string `json:"idTail,omitempty"`

	// Slug is the URL-friendly name of the item.
	Slug string `json:"slug,omitempty"`

	// Title is the display name.
	Title string `json:"title"`

	// Type is either plant or environment.
	Type RecordType `json:"type"`

	// URL is the page of the item, relative to the site root.
	URL string `json:"url"`

	// CustomName is a user-given nickname.
	CustomName string `json:"customName,omitempty"`

	// ScientificName is the botanical name.
	ScientificName string `json:"scientificName,omitempty"`

	// EnvironmentName is the environment a plant lives in.
	EnvironmentName string `json:"environmentName,omitempty"`
}

// IsPlant returns true for plant records.
func (r *Record) IsPlant() bool {
	return r.Type == RecordTypePlant
}

// DisplayID returns the ID tail when present, the full ID otherwise.
func (r *Record) DisplayID() string {
	if r.IDTail != "" {
		return r.IDTail
	}
	return r.ID
}

// Field returns the value of a searchable field by name.
// Unknown names return an empty string.
func (r *Record) Field(name FieldName) string {
	switch name {
	case FieldTitle:
		return r.Title
	case FieldCustomName:
		return r.CustomName
	case FieldScientificName:
		return r.ScientificName
	case FieldEnvironmentName:
		return r.EnvironmentName
	case FieldIDTail:
		return r.IDTail
	case FieldID:
		return r.ID
	case FieldSlug:
		return r.Slug
	default:
		return ""
	}
}

// FieldName identifies a searchable Record field.
type FieldName string

// Searchable fields.
const (
	FieldTitle           FieldName = "title"
	FieldCustomName      FieldName = "customName"
	FieldScientificName  FieldName = "scientificName"
	FieldEnvironmentName FieldName = "environmentName"
	FieldIDTail          FieldName = "idTail"
	FieldID              FieldName = "id"
	FieldSlug            FieldName = "slug"
)

// String returns the string representation.
func (f FieldName) String() string {
	return string(f)
}
