package parallax

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// logger receives engine diagnostics. Warnings are shown by default; debug
// output (skipped children, triggers, seeds) only in debug mode.
var logger = newLogger(log.WarnLevel)

// debugMode mirrors the most recent SetDebugMode call so that node
// operations, which lack a Container pointer, can check it cheaply.
var debugMode bool

func newLogger(level log.Level) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "parallax",
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// SetLogger replaces the package logger. A nil logger restores the default.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = newLogger(log.WarnLevel)
	}
	logger = l
}

// Logger returns the package logger.
func Logger() *log.Logger {
	return logger
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are logged, and the
// engine logs every skip and trigger at debug level.
func SetDebugMode(enabled bool) {
	debugMode = enabled
	if enabled {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("parallax debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		logger.Warn("tree depth exceeds threshold", "depth", depth, "max", debugMaxTreeDepth, "node", n.Name)
	}
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		logger.Warn("child count exceeds threshold", "node", n.Name, "children", len(n.children), "max", debugMaxChildCount)
	}
}
