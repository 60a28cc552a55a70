// Package recipients holds the closed whitelist of deliverable names.
// The list is loaded once at process start and never mutated; it is the
// single source of truth for valid recipient names.
package recipients

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/parcelworks/labelextract/internal/common"
)

// Whitelist is an ordered, read-only set of canonical full names.
// Order matters: the name resolver breaks similarity ties in list order.
type Whitelist struct {
	names []string
}

// New builds a whitelist from canonical full names, dropping blanks.
func New(names []string) *Whitelist {
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n != "" {
			out = append(out, n)
		}
	}
	return &Whitelist{names: out}
}

// Names returns the canonical names in whitelist order.
// Callers must not modify the returned slice.
func (w *Whitelist) Names() []string {
	return w.names
}

// Len reports the number of known recipients.
func (w *Whitelist) Len() int {
	return len(w.names)
}

// Contains reports whether name is exactly one of the known recipients.
func (w *Whitelist) Contains(name string) bool {
	for _, n := range w.names {
		if n == name {
			return true
		}
	}
	return false
}

type recipientsFile struct {
	Recipients []string `yaml:"recipients"`
}

// LoadFile reads a YAML whitelist of the form:
//
//	recipients:
//	  - Zoey Dong
//	  - Tashayanna Mixson
//
// An empty list is a configuration error: a pipeline with no known
// recipients can never produce a name.
func LoadFile(path string) (*Whitelist, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recipients file: %w", err)
	}
	var f recipientsFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse recipients file: %w", err)
	}
	w := New(f.Recipients)
	if w.Len() == 0 {
		return nil, common.NewAppError("CONFIG_ERROR", "recipients file lists no names", common.ErrInvalidInput)
	}
	return w, nil
}
