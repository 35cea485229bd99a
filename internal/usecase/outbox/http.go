package outbox

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"runtime"
	"time"

	"github.com/project/librarysrv/internal/usecase/repository"
)

const (
	dialerTimeoutSeconds   = 30
	dialerKeepAliveSeconds = 180
	transportMaxIdleConns  = 100
	transportMaxConnsPerHost
	transportIdleConnTimeoutSeconds       = 90
	transportTLSHandshakeTimeoutSeconds   = 15
	transportExpectContinueTimeoutSeconds = 2
	requestTimeoutSeconds                 = 10
)

const contentType = "application/json"

var (
	ErrFailRequest     = errors.New("not 2xx response")
	ErrUnsupportedKind = errors.New("unsupported outbox kind")
)

const statusOk = 2

func NewHTTPClient() *http.Client {
	dialer := &net.Dialer{
		Timeout:   dialerTimeoutSeconds * time.Second,
		KeepAlive: dialerKeepAliveSeconds * time.Second,
	}

	transport := &http.Transport{
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          transportMaxIdleConns,
		MaxConnsPerHost:       transportMaxConnsPerHost,
		IdleConnTimeout:       transportIdleConnTimeoutSeconds * time.Second,
		TLSHandshakeTimeout:   transportTLSHandshakeTimeoutSeconds * time.Second,
		ExpectContinueTimeout: transportExpectContinueTimeoutSeconds * time.Second,
		MaxIdleConnsPerHost:   runtime.GOMAXPROCS(0) + 1,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   requestTimeoutSeconds * time.Second,
	}
}

// NewHTTPHandler posts every message as is to the URL configured for its
// kind. Kinds without a URL are rejected so their messages get retried and
// eventually abandoned.
func NewHTTPHandler(client *http.Client, urls map[repository.OutboxKind]string) GlobalHandler {
	return func(kind repository.OutboxKind) (KindHandler, error) {
		url, ok := urls[kind]
		if !ok || url == "" {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
		}
		return postHandler(client, url), nil
	}
}

func postHandler(client *http.Client, url string) KindHandler {
	return func(ctx context.Context, data []byte) error {
		request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("can not build post request: %w", err)
		}
		request.Header.Set("Content-Type", contentType)

		response, err := client.Do(request)
		if err != nil {
			return fmt.Errorf("can not make post request to given url: %w", err)
		}

		defer response.Body.Close()

		if response.StatusCode/100 != statusOk {
			return fmt.Errorf("%w: %d", ErrFailRequest, response.StatusCode)
		}

		return nil
	}
}
