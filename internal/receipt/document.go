package receipt

// Document is a decoded JSON object. Candidate receipts arrive as arbitrary
// JSON, so every field access during validation goes through a checked
// extraction; the validator never assumes shape.
type Document map[string]any

// AsDocument converts a decoded JSON value to a Document when it is an
// object.
func AsDocument(v any) (Document, bool) {
	m, ok := v.(map[string]any)
	return Document(m), ok
}

// Has reports whether key is present, regardless of its type.
func (d Document) Has(key string) bool {
	_, ok := d[key]
	return ok
}

// String extracts key as a string.
func (d Document) String(key string) (string, bool) {
	s, ok := d[key].(string)
	return s, ok
}

// Array extracts key as a JSON array.
func (d Document) Array(key string) ([]any, bool) {
	a, ok := d[key].([]any)
	return a, ok
}
