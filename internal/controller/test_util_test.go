package controller

import (
	"errors"
	"testing"

	"github.com/project/librarysrv/internal/controller/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

var errInternal = errors.New("internal error")

type useCaseMocks struct {
	authors    *mocks.MockAuthorUseCase
	books      *mocks.MockBooksUseCase
	publishers *mocks.MockPublisherUseCase
}

func initControllerTest(t *testing.T) (*useCaseMocks, *implementation, *Session) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &useCaseMocks{
		authors:    mocks.NewMockAuthorUseCase(ctrl),
		books:      mocks.NewMockBooksUseCase(ctrl),
		publishers: mocks.NewMockPublisherUseCase(ctrl),
	}
	service := New(zaptest.NewLogger(t), m.authors, m.books, m.publishers)
	return m, service, NewSession("127.0.0.1:50000")
}
