package safe

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/sujeethshingade/docster/pkg/utils/logging"
)

// Close safely closes the resource and logs error if any
func Close(closer io.Closer) {
	if closer != nil {
		if err := closer.Close(); err != nil {
			if err == io.EOF {
				return
			}
			logging.Default().Warn("Fail to close resource", slog.Any("error", err))
		}
	}
}

// Remove deletes a leftover file such as an unfinished temporary write. A
// missing file is not an error.
func Remove(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logging.Default().Warn("Fail to remove file", slog.String("path", path), slog.Any("error", err))
	}
}
