// Package audit writes the per-run audit record to append-only sinks.
package audit

import (
	"context"
	"os"
	"path/filepath"

	"github.com/kagamino/repoforge/pkg/domain/interfaces"
	"github.com/kagamino/repoforge/pkg/domain/model"
	"github.com/kagamino/repoforge/pkg/domain/types"
	"github.com/kagamino/repoforge/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

// FileSink appends one pipe-delimited line per run to a local file.
// The file is opened, written and closed within the same call; no
// concurrent writers are expected.
type FileSink struct {
	path string
}

var _ interfaces.AuditSink = (*FileSink)(nil)

func NewFileSink(path string) (*FileSink, error) {
	if path == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "audit log path is empty")
	}
	return &FileSink{path: filepath.Clean(path)}, nil
}

func (x *FileSink) Name() string {
	return "file"
}

func (x *FileSink) Write(ctx context.Context, rec *model.AuditRecord) error {
	fd, err := os.OpenFile(x.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return goerr.Wrap(err, "failed to open audit log", goerr.V("path", x.path))
	}
	defer safe.Close(fd)

	if _, err := fd.WriteString(rec.Line() + "\n"); err != nil {
		return goerr.Wrap(err, "failed to append audit log", goerr.V("path", x.path))
	}

	return nil
}
