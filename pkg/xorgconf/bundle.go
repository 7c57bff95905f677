package xorgconf

import (
	"io/fs"
	"time"

	"github.com/google/uuid"
)

// Package represents a single rendered configuration file.
// For the xorg backend there is exactly one package, the xorg.conf text itself;
// the slice form keeps room for split configurations (xorg.conf.d fragments).
type Package struct {
	Name    string // File name (e.g., "xorg.conf")
	Content []byte // Rendered configuration text
}

// File represents an additional file that should be deployed alongside the
// main configuration (e.g., an EDID blob referenced from a Monitor option).
type File struct {
	Path    string      // Absolute file path where the file should be placed
	Content []byte      // File content (binary-safe)
	Mode    fs.FileMode // Unix file permissions (e.g., 0644, 0600)
}

// Metadata stores information about how and when the configuration was generated.
type Metadata struct {
	Format    string            // Format identifier ("xorg")
	Backend   string            // Backend name that generated this bundle
	Generated time.Time         // Timestamp when the bundle was created
	Version   string            // Optional version tag
	Custom    map[string]string // Extensible metadata for backend-specific information
}

// Bundle represents the complete output of a configuration render operation.
type Bundle struct {
	Packages []Package
	Files    []File
	Metadata Metadata
}

// NewBundle creates an empty Bundle with initialized metadata.
// Every bundle carries a unique generation id so that deployments can be
// traced back to the render that produced them.
func NewBundle(format, backend string) *Bundle {
	return &Bundle{
		Packages: make([]Package, 0),
		Files:    make([]File, 0),
		Metadata: Metadata{
			Format:    format,
			Backend:   backend,
			Generated: time.Now(),
			Custom: map[string]string{
				"generation_id": uuid.NewString(),
			},
		},
	}
}
