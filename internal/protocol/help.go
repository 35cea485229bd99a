package protocol

import "fmt"

var helpLines = []string{
	"LIST <AUTHORS|BOOKS|PUBLISHERS>                      list a whole collection (alias GET-ALL, LISTAR)",
	"GET <AUTHOR|BOOK|PUBLISHER> <id>                     show one entity (alias VIEW, VER)",
	"GET <AUTHORS|BOOKS|PUBLISHERS>                       same as LIST",
	"SEARCH <AUTHORS|BOOKS|PUBLISHERS> <term>             search by name or title (alias BUSCAR)",
	"ADD AUTHOR {\"name\":...,\"nationality\":...}            create an author (alias POST, AGREGAR)",
	"ADD PUBLISHER {\"name\":...,\"country\":...}             create a publisher",
	"ADD BOOK {\"title\":...,\"authorName\":...,\"publisherName\":...,\"year\":...,\"genre\":...}",
	"EDIT AUTHOR <id> {\"name\"|\"nationality\":...}          update an author (alias PUT, EDITAR)",
	"EDIT PUBLISHER <id> {\"name\"|\"country\":...}           update a publisher",
	"EDIT BOOK <id> {\"title\"|\"year\"|\"genre\":...}          update a book",
	"DELETE <AUTHOR|BOOK|PUBLISHER> <id>                  delete an entity (alias ELIMINAR, BORRAR)",
	"HELP                                                 this listing (alias AYUDA)",
	"EXIT                                                 close the connection (alias QUIT, SALIR)",
}

// HelpMessage is the message of the HELP envelope.
func HelpMessage() string {
	return fmt.Sprintf("library protocol %s", Version)
}

// HelpLines returns a copy of the static command listing.
func HelpLines() []string {
	lines := make([]string, len(helpLines))
	copy(lines, helpLines)
	return lines
}
