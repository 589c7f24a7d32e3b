package export

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sujeethshingade/docster/pkg/domain/interfaces"
	"github.com/sujeethshingade/docster/pkg/domain/types"
	"github.com/sujeethshingade/docster/pkg/utils/logging"
)

// Exporter renders markdown documentation into PDF or DOCX.
type Exporter struct{}

var _ interfaces.Exporter = (*Exporter)(nil)

func New() *Exporter {
	return &Exporter{}
}

func (x *Exporter) Export(ctx context.Context, markdown string, format types.ExportFormat) ([]byte, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}

	blocks, err := parseBlocks(markdown)
	if err != nil {
		return nil, err
	}
	logging.From(ctx).Debug("rendering export", slog.String("format", string(format)), slog.Int("blocks", len(blocks)))

	switch format {
	case types.ExportFormatPDF:
		return renderPDF(blocks)
	case types.ExportFormatDOCX:
		return renderDOCX(blocks)
	default:
		return nil, goerr.Wrap(types.ErrValidationFailed, "unsupported export format", goerr.V("format", format))
	}
}
