package entity

type Publisher struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

var _ Record[Publisher] = Publisher{}

func (p Publisher) GetID() string { return p.ID }

func (p Publisher) WithID(id string) Publisher {
	p.ID = id
	return p
}

func (p Publisher) Field(name string) string {
	switch name {
	case FieldID:
		return p.ID
	case FieldName:
		return p.Name
	case FieldCountry:
		return p.Country
	default:
		return ""
	}
}
