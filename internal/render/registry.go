package render

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/costcocr/costcocr/internal/receipt"
)

// Writer builds a Funcs bundle for one output format. The vars map carries
// caller-supplied variables (typically from the command line) that the writer
// may fold into its rendering functions; writers are free to ignore it.
type Writer func(vars map[string]string) Funcs

// ErrUnknownWriter is returned by Lookup and Write when no writer is
// registered under the requested name.
var ErrUnknownWriter = errors.New("unknown writer")

var (
	registryMu sync.RWMutex
	registry   = map[string]Writer{}
)

// Register makes a writer available under name. It panics if the writer is
// nil or a writer is already registered under the same name; registration is
// expected to happen once, during init.
func Register(name string, w Writer) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if w == nil {
		panic("render: Register writer is nil")
	}
	if _, dup := registry[name]; dup {
		panic("render: Register called twice for writer " + name)
	}
	registry[name] = w
}

// Lookup returns the writer registered under name.
func Lookup(name string) (Writer, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	w, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownWriter)
	}
	return w, nil
}

// Writers returns the names of all registered writers, sorted.
func Writers() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Write renders r with the writer registered under name, passing vars through
// to the writer. An unknown name is a configuration error, detected before
// any rendering happens.
func Write(name string, vars map[string]string, r receipt.Receipt) (string, error) {
	w, err := Lookup(name)
	if err != nil {
		return "", err
	}
	return Render(w(vars), r)
}

func init() {
	// The default writer relies entirely on the built-in fallbacks.
	Register("default", func(map[string]string) Funcs { return Funcs{} })
	Register("csv", CSV)
	Register("json", JSON)
}
