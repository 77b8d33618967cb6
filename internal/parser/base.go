package parser

import "github.com/jbqneto/financial-flow/internal/logging"

// BaseParser carries the logger shared by all parser implementations.
// Format packages embed it:
//
//	type Parser struct {
//		parser.BaseParser
//	}
type BaseParser struct {
	logger logging.Logger
}

// NewBaseParser builds a BaseParser. A nil logger falls back to a
// default text logger at info level.
func NewBaseParser(logger logging.Logger) BaseParser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return BaseParser{logger: logger}
}

// SetLogger replaces the parser's logger. Nil is ignored.
func (b *BaseParser) SetLogger(logger logging.Logger) {
	if logger != nil {
		b.logger = logger
	}
}

// Logger returns the current logger.
func (b *BaseParser) Logger() logging.Logger {
	return b.logger
}
