package integrations

// Uploader is the remote side of the publisher: a key-value namespace for
// the manifest documents and an object-storage bucket for the SVG tree.
type Uploader interface {
	PutKV(key, path string) error
	PutObject(key, path, contentType string) error
}
