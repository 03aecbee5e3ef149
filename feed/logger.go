package feed

import (
	"diligentdate/log"
	"fmt"
)

// Logger receives progress and anomaly notes during parsing. The parser
// reports malformed pieces here instead of failing the whole feed.
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// ZeroLogger forwards to the process-wide zerolog logger.
type ZeroLogger struct{}

func (ZeroLogger) Info(format string, args ...any) {
	log.Info().Msgf(format, args...)
}

func (ZeroLogger) Warn(format string, args ...any) {
	log.Warn().Msgf(format, args...)
}

func (ZeroLogger) Error(format string, args ...any) {
	log.Error().Msgf(format, args...)
}

// DummyLogger collects rendered messages for later inspection.
type DummyLogger struct {
	lines []string
}

func NewDummyLogger() *DummyLogger {
	return &DummyLogger{}
}

func (d *DummyLogger) Info(format string, args ...any) {
	d.append(format, args)
}

func (d *DummyLogger) Warn(format string, args ...any) {
	d.append(format, args)
}

func (d *DummyLogger) Error(format string, args ...any) {
	d.append(format, args)
}

func (d *DummyLogger) append(format string, args []any) {
	d.lines = append(d.lines, fmt.Sprintf(format, args...))
}

func (d *DummyLogger) Lines() []string {
	return d.lines
}
