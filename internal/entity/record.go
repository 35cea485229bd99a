package entity

// Record is implemented by every persisted entity. Field returns the string
// form of the field stored under the given json name, or "" when unknown.
type Record[T any] interface {
	GetID() string
	WithID(id string) T
	Field(name string) string
}

const (
	FieldID          = "id"
	FieldName        = "name"
	FieldNationality = "nationality"
	FieldCountry     = "country"
	FieldTitle       = "title"
	FieldAuthorID    = "authorId"
	FieldPublisherID = "publisherId"
	FieldYear        = "year"
	FieldGenre       = "genre"
)
