package library

import (
	"testing"

	"github.com/project/librarysrv/internal/entity"
	"github.com/project/librarysrv/internal/usecase/repository"
	"github.com/stretchr/testify/require"
)

func TestAddBook(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		fields     map[string]any
		errRequire error
	}{
		{
			name: "valid book",
			fields: map[string]any{
				"title": "el aleph", "authorName": "Jorge Luis Borges", "publisherName": "planeta", "year": float64(1949), "genre": "cuento",
			},
		},
		{
			name: "year as string and upper case keys",
			fields: map[string]any{
				"TITLE": "ficciones", "AUTHORNAME": "borges", "PUBLISHERNAME": "Planeta", "YEAR": "1944", "GENRE": "cuento",
			},
		},
		{
			name:       "missing fields",
			fields:     map[string]any{"title": "El Aleph"},
			errRequire: entity.ErrValidation,
		},
		{
			name: "non numeric year",
			fields: map[string]any{
				"title": "El Aleph", "authorName": "Borges", "publisherName": "Planeta", "year": "mil", "genre": "Cuento",
			},
			errRequire: entity.ErrValidation,
		},
		{
			name: "year out of int range",
			fields: map[string]any{
				"title": "El Aleph", "authorName": "Borges", "publisherName": "Planeta", "year": 1e20, "genre": "Cuento",
			},
			errRequire: entity.ErrValidation,
		},
		{
			name: "unknown author",
			fields: map[string]any{
				"title": "El Aleph", "authorName": "Tolkien", "publisherName": "Planeta", "year": 1949, "genre": "Cuento",
			},
			errRequire: entity.ErrAuthorNotFound,
		},
		{
			name: "unknown publisher",
			fields: map[string]any{
				"title": "El Aleph", "authorName": "Borges", "publisherName": "Anagrama", "year": 1949, "genre": "Cuento",
			},
			errRequire: entity.ErrPublisherNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx, _, s := initLibraryTest(t, nil)
			seedAuthor(t, s, "Jorge Luis Borges", "Argentina")
			seedPublisher(t, s, "Planeta", "España")

			book, err := s.AddBook(ctx, tt.fields)
			require.ErrorIs(t, err, tt.errRequire)
			if err != nil {
				require.Empty(t, book)
				return
			}

			require.NotEmpty(t, book.ID)
			require.Equal(t, "Jorge Luis Borges", book.Author)
			require.Equal(t, "Planeta", book.Publisher)
			require.Equal(t, "Cuento", book.Genre)
		})
	}
}

func TestAddBook_DuplicateTitle(t *testing.T) {
	t.Parallel()
	ctx, _, s := initLibraryTest(t, nil)
	seedAuthor(t, s, "Jorge Luis Borges", "Argentina")
	seedPublisher(t, s, "Planeta", "España")

	fields := map[string]any{"title": "El Aleph", "authorName": "Borges", "publisherName": "Planeta", "year": 1949, "genre": "Cuento"}
	_, err := s.AddBook(ctx, fields)
	require.NoError(t, err)

	fields["title"] = "EL ALEPH"
	_, err = s.AddBook(ctx, fields)
	require.ErrorIs(t, err, entity.ErrConflict)
}

func TestAddBook_AmbiguousAuthor(t *testing.T) {
	t.Parallel()
	ctx, _, s := initLibraryTest(t, nil)

	seedAuthor(t, s, "Ana García", "España")
	_, err := s.authorRepository.Add(ctx, entity.Author{Name: "Ana García", Nationality: "México"})
	require.NoError(t, err)
	seedPublisher(t, s, "Planeta", "España")

	_, err = s.AddBook(ctx, map[string]any{
		"title": "Poemas", "authorName": "Ana García", "publisherName": "Planeta", "year": 2001, "genre": "Poesía",
	})
	require.ErrorIs(t, err, entity.ErrAmbiguousReference)
}

func TestAddBook_ExactMatchPreferred(t *testing.T) {
	t.Parallel()
	ctx, _, s := initLibraryTest(t, nil)

	borges := seedAuthor(t, s, "Borges", "Argentina")
	seedAuthor(t, s, "Borges Junior", "Argentina")
	seedPublisher(t, s, "Planeta", "España")

	book, err := s.AddBook(ctx, map[string]any{
		"title": "Ficciones", "authorName": "borges", "publisherName": "Planeta", "year": 1944, "genre": "Cuento",
	})
	require.NoError(t, err)
	require.Equal(t, borges.Name, book.Author)

	_, err = s.AddBook(ctx, map[string]any{
		"title": "Otro", "authorName": "orge", "publisherName": "Planeta", "year": 1944, "genre": "Cuento",
	})
	require.ErrorIs(t, err, entity.ErrAmbiguousReference)
}

func TestGetBook_RoundTrip(t *testing.T) {
	t.Parallel()
	ctx, _, s := initLibraryTest(t, nil)
	seedAuthor(t, s, "Jorge Luis Borges", "Argentina")
	seedPublisher(t, s, "Planeta", "España")

	added, err := s.AddBook(ctx, map[string]any{
		"title": "El Aleph", "authorName": "Jorge Luis Borges", "publisherName": "Planeta", "year": 1949, "genre": "Cuento",
	})
	require.NoError(t, err)

	got, err := s.GetBook(ctx, added.ID)
	require.NoError(t, err)
	require.Equal(t, entity.BookView{
		ID:        added.ID,
		Title:     "El Aleph",
		Author:    "Jorge Luis Borges",
		Publisher: "Planeta",
		Year:      1949,
		Genre:     "Cuento",
	}, got)

	_, err = s.GetBook(ctx, "missing")
	require.ErrorIs(t, err, entity.ErrBookNotFound)
}

func TestBookView_UnknownReferences(t *testing.T) {
	t.Parallel()
	ctx, _, s := initLibraryTest(t, nil)

	stored, err := s.booksRepository.Add(ctx, entity.Book{Title: "Huérfano", AuthorID: "a-1", PublisherID: "p-1", Year: 2000, Genre: "Drama"})
	require.NoError(t, err)

	got, err := s.GetBook(ctx, stored.ID)
	require.NoError(t, err)
	require.Equal(t, "Unknown author (ID: a-1)", got.Author)
	require.Equal(t, "Unknown publisher (ID: p-1)", got.Publisher)

	list, err := s.ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestUpdateBook_Partial(t *testing.T) {
	t.Parallel()
	ctx, _, s := initLibraryTest(t, nil)
	seedAuthor(t, s, "Jorge Luis Borges", "Argentina")
	seedPublisher(t, s, "Planeta", "España")

	added, err := s.AddBook(ctx, map[string]any{
		"title": "El Aleph", "authorName": "Borges", "publisherName": "Planeta", "year": 1949, "genre": "Cuento",
	})
	require.NoError(t, err)

	before, _, err := s.booksRepository.GetByID(ctx, added.ID)
	require.NoError(t, err)

	_, err = s.UpdateBook(ctx, added.ID, map[string]any{"year": "1985"})
	require.NoError(t, err)

	after, _, err := s.booksRepository.GetByID(ctx, added.ID)
	require.NoError(t, err)
	require.Equal(t, 1985, after.Year)
	require.Equal(t, before.Title, after.Title)
	require.Equal(t, before.Genre, after.Genre)
	require.Equal(t, before.AuthorID, after.AuthorID)
	require.Equal(t, before.PublisherID, after.PublisherID)

	_, err = s.UpdateBook(ctx, added.ID, map[string]any{"authorName": "X", "authorId": "y", "year": "abc"})
	require.ErrorIs(t, err, entity.ErrValidation)

	unchanged, _, err := s.booksRepository.GetByID(ctx, added.ID)
	require.NoError(t, err)
	require.Equal(t, after, unchanged)

	_, err = s.UpdateBook(ctx, "missing", map[string]any{"genre": "Poesía"})
	require.ErrorIs(t, err, entity.ErrBookNotFound)
}

func TestUpdateBook_OutOfRangeYear(t *testing.T) {
	t.Parallel()
	ctx, _, s := initLibraryTest(t, nil)
	seedAuthor(t, s, "Jorge Luis Borges", "Argentina")
	seedPublisher(t, s, "Planeta", "España")

	added, err := s.AddBook(ctx, map[string]any{
		"title": "El Aleph", "authorName": "Borges", "publisherName": "Planeta", "year": 1949, "genre": "Cuento",
	})
	require.NoError(t, err)

	_, err = s.UpdateBook(ctx, added.ID, map[string]any{"year": -1e30})
	require.ErrorIs(t, err, entity.ErrValidation)

	updated, err := s.UpdateBook(ctx, added.ID, map[string]any{"year": 1e20, "genre": "ensayo"})
	require.NoError(t, err)
	require.Equal(t, 1949, updated.Year)
	require.Equal(t, "Ensayo", updated.Genre)

	stored, _, err := s.booksRepository.GetByID(ctx, added.ID)
	require.NoError(t, err)
	require.Equal(t, 1949, stored.Year)
}

func TestSearchBooks(t *testing.T) {
	t.Parallel()
	ctx, collections, s := initLibraryTest(t, nil)
	seedAuthor(t, s, "Jorge Luis Borges", "Argentina")
	seedPublisher(t, s, "Planeta", "España")

	for _, title := range []string{"El Aleph", "El Hacedor", "Ficciones"} {
		_, err := s.AddBook(ctx, map[string]any{
			"title": title, "authorName": "Borges", "publisherName": "Planeta", "year": 1950, "genre": "Cuento",
		})
		require.NoError(t, err)
	}

	found, err := s.SearchBooks(ctx, "el ")
	require.NoError(t, err)
	require.Len(t, found, 2)

	_, err = s.SearchBooks(ctx, "zzz-nonexistent")
	require.ErrorIs(t, err, entity.ErrNotFound)

	collections.failReads(repository.BooksCollection)
	_, err = s.SearchBooks(ctx, "Aleph")
	require.ErrorIs(t, err, entity.ErrNotFound)
	require.Equal(t, UnverifiedCount, s.CountBooksByAuthorID(ctx, "any"))
}

func TestDeleteBook(t *testing.T) {
	t.Parallel()
	ctx, _, s := initLibraryTest(t, nil)
	seedAuthor(t, s, "Jorge Luis Borges", "Argentina")
	seedPublisher(t, s, "Planeta", "España")

	added, err := s.AddBook(ctx, map[string]any{
		"title": "El Aleph", "authorName": "Borges", "publisherName": "Planeta", "year": 1949, "genre": "Cuento",
	})
	require.NoError(t, err)

	deleted, err := s.DeleteBook(ctx, added.ID)
	require.NoError(t, err)
	require.Equal(t, added, deleted)

	_, err = s.DeleteBook(ctx, added.ID)
	require.ErrorIs(t, err, entity.ErrBookNotFound)
}

func TestPublisherBookScenario(t *testing.T) {
	t.Parallel()
	ctx, _, s := initLibraryTest(t, nil)
	seedAuthor(t, s, "Jorge Luis Borges", "Argentina")

	planeta, err := s.AddPublisher(ctx, map[string]any{"name": "Planeta", "country": "España"})
	require.NoError(t, err)
	require.NotEmpty(t, planeta.ID)

	book, err := s.AddBook(ctx, map[string]any{
		"title": "El Aleph", "authorName": "Jorge Luis Borges", "publisherName": "Planeta", "year": 1949, "genre": "Cuento",
	})
	require.NoError(t, err)

	_, err = s.DeletePublisher(ctx, planeta.ID)
	require.ErrorIs(t, err, entity.ErrConflict)
	require.Contains(t, err.Error(), "has 1 dependent books")

	_, err = s.DeleteBook(ctx, book.ID)
	require.NoError(t, err)

	_, err = s.DeletePublisher(ctx, planeta.ID)
	require.NoError(t, err)
}
