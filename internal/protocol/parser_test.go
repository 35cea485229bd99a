package protocol

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want Command
	}{
		{
			name: "verb only",
			line: "help",
			want: Command{Verb: "HELP"},
		},
		{
			name: "verb and category upper-cased",
			line: "list authors",
			want: Command{Verb: "LIST", Category: "AUTHORS"},
		},
		{
			name: "param keeps case and joins tokens",
			line: "SEARCH books   El    Aleph  ",
			want: Command{Verb: "SEARCH", Category: "BOOKS", Param: "El Aleph"},
		},
		{
			name: "payload after first brace",
			line: `ADD AUTHOR {"name":"borges","nationality":"argentina"}`,
			want: Command{Verb: "ADD", Category: "AUTHOR", Payload: map[string]any{"name": "borges", "nationality": "argentina"}},
		},
		{
			name: "param and payload",
			line: `EDIT BOOK 1A2B {"year": 1949}`,
			want: Command{Verb: "EDIT", Category: "BOOK", Param: "1A2B", Payload: map[string]any{"year": float64(1949)}},
		},
		{
			name: "empty payload object",
			line: "ADD AUTHOR {}",
			want: Command{Verb: "ADD", Category: "AUTHOR", Payload: map[string]any{}},
		},
		{
			name: "carriage return is stripped",
			line: "EXIT\r",
			want: Command{Verb: "EXIT"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.line)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.want.Payload != nil, got.HasPayload())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		kind ParseErrorKind
	}{
		{name: "empty line", line: "", kind: ErrKindEmptyCommand},
		{name: "blank line", line: " \t ", kind: ErrKindEmptyCommand},
		{name: "payload without verb", line: `{"name":"x"}`, kind: ErrKindEmptyCommand},
		{name: "truncated payload", line: `ADD AUTHOR {"name":`, kind: ErrKindMalformedPayload},
		{name: "trailing garbage", line: `ADD AUTHOR {"name":"x"} extra`, kind: ErrKindMalformedPayload},
		{name: "payload is not an object", line: `ADD AUTHOR {"a":1}[`, kind: ErrKindMalformedPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tt.line)
			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			require.Equal(t, tt.kind, parseErr.Kind)
		})
	}
}

func TestParse_MalformedKeepsVerb(t *testing.T) {
	t.Parallel()

	cmd, err := Parse(`add author {oops}`)
	require.Error(t, err)
	require.Equal(t, "ADD", cmd.Verb)
	require.Equal(t, "AUTHOR", cmd.Category)
	require.False(t, cmd.HasPayload())
}
