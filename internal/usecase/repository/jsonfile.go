package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/project/librarysrv/pkg/logger"
	"go.uber.org/zap"
)

var ErrInvalidCollectionName = errors.New("invalid collection name")

var _ Collections = (*jsonFileCollections)(nil)

// jsonFileCollections keeps every collection in <dir>/<name>.json as a
// pretty-printed array.
type jsonFileCollections struct {
	logger *zap.Logger
	dir    string
}

func NewJSONFile(logger *zap.Logger, dir string) (*jsonFileCollections, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("can not create data directory %s: %w", dir, err)
	}

	return &jsonFileCollections{
		logger: logger,
		dir:    dir,
	}, nil
}

func (j *jsonFileCollections) path(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\.`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidCollectionName, name)
	}
	return filepath.Join(j.dir, name+".json"), nil
}

func (j *jsonFileCollections) Read(_ context.Context, name string) ([]json.RawMessage, error) {
	path, err := j.path(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []json.RawMessage{}, nil
	}
	if logger.CheckError(err, j.logger, "can not read collection file", zap.String("path", path)) {
		return nil, err
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []json.RawMessage{}, nil
	}

	records := make([]json.RawMessage, 0)
	if err = json.Unmarshal(data, &records); err != nil {
		logger.CheckError(err, j.logger, "collection file is not a json array", zap.String("path", path))
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return records, nil
}

func (j *jsonFileCollections) Write(_ context.Context, name string, records []json.RawMessage) error {
	path, err := j.path(name)
	if err != nil {
		return err
	}

	if records == nil {
		records = []json.RawMessage{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(j.dir, name+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	err = os.Rename(tmp.Name(), path)
	if logger.CheckError(err, j.logger, "can not replace collection file", zap.String("path", path)) {
		return err
	}

	logger.MakeDebug(j.logger, "collection written", zap.String("path", path), zap.Int("records", len(records)))
	return nil
}
