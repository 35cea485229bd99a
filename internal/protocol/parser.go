package protocol

import (
	"encoding/json"
	"strings"
)

// Parse splits a request line into a Command.
//
// Everything before the first '{' is the command part and is split on
// whitespace into verb, category and param; the rest of the line, when
// present, must be a JSON object. Missing category or param are returned as
// empty strings, it is up to the dispatcher to require them.
func Parse(line string) (Command, error) {
	line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
	if line == "" {
		return Command{}, &ParseError{Kind: ErrKindEmptyCommand}
	}

	commandPart, payloadPart := line, ""
	if idx := strings.IndexByte(line, '{'); idx >= 0 {
		commandPart, payloadPart = line[:idx], line[idx:]
	}

	tokens := strings.Fields(commandPart)
	if len(tokens) == 0 {
		return Command{}, &ParseError{Kind: ErrKindEmptyCommand, Value: line}
	}

	cmd := Command{Verb: strings.ToUpper(tokens[0])}
	if len(tokens) > 1 {
		cmd.Category = strings.ToUpper(tokens[1])
	}
	if len(tokens) > 2 {
		cmd.Param = strings.Join(tokens[2:], " ")
	}

	if payloadPart != "" {
		payload, err := parsePayload(payloadPart)
		if err != nil {
			return cmd, err
		}
		cmd.Payload = payload
	}

	return cmd, nil
}

func parsePayload(raw string) (map[string]any, error) {
	payload := make(map[string]any)
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, newMalformedPayloadError(raw, err)
	}
	if payload == nil {
		return map[string]any{}, nil
	}
	return payload, nil
}
