package pfat

// Handler bundles detection with the fallback writer so callers can
// hand the UCP engine a single delegate.
type Handler struct{}

// Detect reports an embedded PFAT image and its sub-buffer.
func (Handler) Detect(data []byte) ([]byte, bool) {
	return Detect(data)
}

// Extract persists the sub-image via the fallback writer.
func (Handler) Extract(sub []byte, outDir string) error {
	return Writer{}.Extract(sub, outDir)
}
