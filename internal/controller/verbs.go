package controller

import (
	"context"
	"fmt"

	"github.com/project/librarysrv/internal/protocol"
)

const (
	verbList   = "LIST"
	verbGet    = "GET"
	verbSearch = "SEARCH"
	verbAdd    = "ADD"
	verbEdit   = "EDIT"
	verbDelete = "DELETE"
	verbHelp   = "HELP"
	verbExit   = "EXIT"
)

// verbAliases maps every accepted verb, upper-cased, to its canonical form.
var verbAliases = map[string]string{
	verbList:  verbList,
	"GET-ALL": verbList,
	"LISTAR":  verbList,

	verbGet: verbGet,
	"VIEW":  verbGet,
	"VER":   verbGet,

	verbSearch: verbSearch,
	"BUSCAR":   verbSearch,

	verbAdd:   verbAdd,
	"POST":    verbAdd,
	"AGREGAR": verbAdd,

	verbEdit: verbEdit,
	"PUT":    verbEdit,
	"EDITAR": verbEdit,

	verbDelete: verbDelete,
	"ELIMINAR": verbDelete,
	"BORRAR":   verbDelete,

	verbHelp: verbHelp,
	"AYUDA":  verbHelp,

	verbExit: verbExit,
	"QUIT":   verbExit,
	"SALIR":  verbExit,
}

type verbHandler func(i *implementation, ctx context.Context, cmd protocol.Command) (protocol.Response, error)

var verbHandlers = map[string]verbHandler{
	verbList:   (*implementation).list,
	verbGet:    (*implementation).get,
	verbSearch: (*implementation).search,
	verbAdd:    (*implementation).add,
	verbEdit:   (*implementation).edit,
	verbDelete: (*implementation).delete,
}

const goodbyeMessage = "Goodbye!"

// CanonicalVerb resolves an alias. ok is false for unknown verbs.
func CanonicalVerb(verb string) (canonical string, ok bool) {
	canonical, ok = verbAliases[verb]
	return canonical, ok
}

func help() protocol.Response {
	return protocol.Success(protocol.HelpMessage(), protocol.HelpLines())
}

func goodbye() protocol.Response {
	return protocol.Success(goodbyeMessage, nil)
}

// Greeting is sent once when a connection is accepted.
func Greeting() protocol.Response {
	return protocol.Success(
		fmt.Sprintf("Welcome to the library server (protocol %s); type HELP", protocol.Version),
		nil,
	)
}

// resolve finds the category of a command that requires one.
func (i *implementation) resolve(verb string, cmd protocol.Command) (route, error) {
	if cmd.Category == "" {
		return route{}, protocol.NewMissingArgumentError(
			fmt.Sprintf("missing category for %s; expected AUTHOR(S), BOOK(S) or PUBLISHER(S)", verb))
	}

	r, ok := i.categories[cmd.Category]
	if !ok {
		return route{}, protocol.NewUnknownCategoryError(cmd.Category)
	}
	return r, nil
}

func missingID(verb string, r route) error {
	return protocol.NewMissingArgumentError(fmt.Sprintf("missing id for %s %s", verb, r.name))
}

func missingPayload(verb string, r route) error {
	return protocol.NewMissingArgumentError(fmt.Sprintf("missing JSON payload for %s %s", verb, r.name))
}
