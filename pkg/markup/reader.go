package markup

import (
	"encoding/xml"
	"io"
	"log/slog"

	"golang.org/x/net/html/charset"
)

// ErrorMode controls how reading reacts to content it cannot process,
// such as an unrecognized element.
type ErrorMode uint8

const (
	// IgnoreErrorMode skips unsupported content silently.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode skips unsupported content and logs a warning.
	WarnErrorMode
	// StrictErrorMode aborts reading at the first unsupported content.
	StrictErrorMode
)

// Handle resolves a recoverable read problem according to the mode:
// strict propagates err, warn logs it and continues, ignore continues
// silently. A nil logger falls back to slog.Default.
func (m ErrorMode) Handle(logger *slog.Logger, err error) error {
	switch m {
	case StrictErrorMode:
		return err
	case WarnErrorMode:
		if logger == nil {
			logger = slog.Default()
		}
		logger.Warn("skipping unsupported markup", "err", err)
	}
	return nil
}

// NewDecoder returns an xml.Decoder with charset detection, so documents
// declaring non-UTF-8 encodings decode correctly.
func NewDecoder(r io.Reader) *xml.Decoder {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel
	return decoder
}
