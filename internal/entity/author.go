package entity

type Author struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Nationality string `json:"nationality"`
}

var _ Record[Author] = Author{}

func (a Author) GetID() string { return a.ID }

func (a Author) WithID(id string) Author {
	a.ID = id
	return a
}

func (a Author) Field(name string) string {
	switch name {
	case FieldID:
		return a.ID
	case FieldName:
		return a.Name
	case FieldNationality:
		return a.Nationality
	default:
		return ""
	}
}
