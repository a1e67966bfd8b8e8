package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ccipdocs/networkfees/internal/domain"
)

// ErrUnsupportedFormat is returned for a format name with no registered formatter.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// WriteReport renders report with the named formatter and writes it to w.
func WriteReport(w io.Writer, report *domain.LaneReport, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("%s formatter failed: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}
