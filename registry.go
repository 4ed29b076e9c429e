package imgbridge

import (
	"image"
	"sync"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/imgbridge/imgbridge/arena"
)

// Handle is the opaque token identifying one library-owned resource.
// 0 is the "no value" sentinel.
type Handle = arena.Handle

// Process-wide arenas. Images, transferred buffers, and owned strings are
// kept in separate tables so a token can never be released through the
// wrong free call.
var (
	images  = arena.NewTable[image.Image]()
	buffers = arena.NewTable[[]byte]()
	strs    = arena.NewTable[string]()
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the package logger. It is a no-op logger by default; a
// boundary library must stay silent unless the host opts in.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the package logger. Call before any boundary
// operations.
func SetLogger(l *zap.Logger) {
	logger = l
}

// validPath rejects the path failures detectable before delegation.
func validPath(path string) bool {
	return path != "" && utf8.ValidString(path)
}
