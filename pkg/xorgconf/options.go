package xorgconf

// RenderOptions controls the forward rendering process (model → xorg.conf).
type RenderOptions struct {
	// SkipIncomplete drops sections whose required fields are missing instead
	// of failing the whole render. The default is fail-fast: one incomplete
	// section aborts the document, since silently omitting required
	// infrastructure (e.g., a Device with no identifier) could produce a
	// misleading file.
	SkipIncomplete bool

	// GenerationTag, when non-empty, is written as a leading comment line.
	GenerationTag string
}

// ParseOptions controls the reverse parsing process (xorg.conf → model).
// Parsing is not implemented; the struct exists so the Parser interface
// mirrors the Renderer one.
type ParseOptions struct {
	AllowUnknown bool // Allow unknown entries in input
	BestEffort   bool // Continue parsing on non-fatal errors
}
