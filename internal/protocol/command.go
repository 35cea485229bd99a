package protocol

// Command is one parsed request line.
type Command struct {
	Verb     string // Upper-cased
	Category string // Upper-cased, may be empty
	Param    string // Id or search term, original case, may be empty
	Payload  map[string]any
}

// HasPayload reports whether the line carried a JSON object.
func (c Command) HasPayload() bool {
	return c.Payload != nil
}
