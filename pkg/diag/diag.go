// Package diag reports scan failures through zerolog. A Reporter is created
// and passed around explicitly; the scanning packages never log on their own.
package diag

import (
	"errors"
	"sync/atomic"

	"github.com/BLAZED-sh/fastparse/pkg/scan"
	"github.com/rs/zerolog"
)

// Severity ranks a reported failure.
type Severity uint8

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
	SeverityCritical
	SeverityPanic
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	case SeverityPanic:
		return "panic"
	}
	return "unknown"
}

// Level maps the severity onto a zerolog level. Panic maps to PanicLevel but
// is only ever logged with WithLevel, which does not panic.
func (s Severity) Level() zerolog.Level {
	switch s {
	case SeverityInfo:
		return zerolog.InfoLevel
	case SeverityWarning:
		return zerolog.WarnLevel
	case SeverityCritical:
		return zerolog.FatalLevel
	case SeverityPanic:
		return zerolog.PanicLevel
	}
	return zerolog.ErrorLevel
}

// DefaultSeverity is the severity used for a scan error code unless the
// Reporter overrides it.
func DefaultSeverity(code scan.Code) Severity {
	switch code {
	case scan.OK:
		return SeverityInfo
	case scan.EndOfInput:
		return SeverityWarning
	case scan.TooDeep:
		return SeverityCritical
	}
	return SeverityError
}

// Summary counts what a Reporter has seen.
type Summary struct {
	Errors   int64
	Warnings int64
}

// Reporter logs scan errors with their position and keeps error and warning
// counts. It is safe for concurrent use.
type Reporter struct {
	logger    zerolog.Logger
	overrides map[scan.Code]Severity

	errors   atomic.Int64
	warnings atomic.Int64
}

func NewReporter(logger zerolog.Logger) *Reporter {
	return &Reporter{
		logger:    logger,
		overrides: map[scan.Code]Severity{},
	}
}

// SetSeverity overrides the severity of one code. It must be called before
// the Reporter is shared.
func (r *Reporter) SetSeverity(code scan.Code, s Severity) {
	r.overrides[code] = s
}

func (r *Reporter) severity(code scan.Code) Severity {
	if s, ok := r.overrides[code]; ok {
		return s
	}
	return DefaultSeverity(code)
}

// ReportCursor logs the cursor's pending error, if any, and reports whether
// there was one. source names the input, e.g. a file name.
func (r *Reporter) ReportCursor(c *scan.Cursor, source string) bool {
	err := c.Err()
	if err == nil {
		return false
	}
	r.Report(err, source)
	return true
}

// Report logs err. Errors wrapping a *scan.Error are logged with their code
// and position; anything else is logged at error severity.
func (r *Reporter) Report(err error, source string) {
	sev := SeverityError
	var serr *scan.Error
	if errors.As(err, &serr) {
		sev = r.severity(serr.Code)
	}
	r.count(sev)

	ev := r.logger.WithLevel(sev.Level()).
		Str("severity", sev.String()).
		Str("source", source)
	if serr != nil {
		ev = ev.Str("code", serr.Code.String()).
			Int("offset", serr.Offset).
			Int("line", serr.Line).
			Int("column", serr.Column)
		if serr.Message != "" {
			ev = ev.Str("detail", serr.Message)
		}
	}
	ev.Err(err).Msg("Scan failed")
}

func (r *Reporter) count(sev Severity) {
	switch {
	case sev == SeverityWarning:
		r.warnings.Add(1)
	case sev >= SeverityError:
		r.errors.Add(1)
	}
}

func (r *Reporter) Summary() Summary {
	return Summary{Errors: r.errors.Load(), Warnings: r.warnings.Load()}
}
