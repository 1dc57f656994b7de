// Package id provides centralized ID generation for the boardbridge service.
//
// IDs are prefixed ULIDs: lexicographically sortable, unique, and readable in
// logs (scr_*, dlg_*).
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ScreenID identifies a mounted whiteboard screen instance.
type ScreenID string

// DialogID identifies an open dialog.
type DialogID string

// ID prefixes used for debugging and type identification.
const (
	ScreenPrefix = "scr"
	DialogPrefix = "dlg"
)

// Generator generates ULIDs with optional prefixes.
type Generator struct {
	entropy   io.Reader
	entropyMu sync.Mutex // Protects entropy reader
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the singleton generator instance.
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// NewGenerator creates a new ULID generator backed by crypto/rand.
func NewGenerator() *Generator {
	return &Generator{entropy: rand.Reader}
}

// NewGeneratorWithEntropy creates a generator with a custom entropy source.
// Useful for testing with deterministic entropy.
func NewGeneratorWithEntropy(entropy io.Reader) *Generator {
	return &Generator{entropy: entropy}
}

// Generate creates a new ULID.
func (g *Generator) Generate() ulid.ULID {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
}

// GenerateString creates a new ULID as a string.
func (g *Generator) GenerateString() string {
	return g.Generate().String()
}

// GenerateWithPrefix creates a prefixed ULID string.
func (g *Generator) GenerateWithPrefix(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, g.GenerateString())
}

// NewScreenID generates a new screen ID.
func NewScreenID() ScreenID {
	return ScreenID(Default().GenerateWithPrefix(ScreenPrefix))
}

// NewDialogID generates a new dialog ID.
func NewDialogID() DialogID {
	return DialogID(Default().GenerateWithPrefix(DialogPrefix))
}

func (id ScreenID) String() string { return string(id) }
func (id DialogID) String() string { return string(id) }

// IsValid checks if an ID string is a valid ULID.
func IsValid(id string) bool {
	_, err := ulid.Parse(id)
	return err == nil
}

// Parse parses a ULID string.
func Parse(id string) (ulid.ULID, error) {
	return ulid.Parse(id)
}
