package interfaces

// BlobStoreInterface persists opaque blobs under a key. Load returns nil, nil
// when nothing was stored under the key yet.
type BlobStoreInterface interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
	Close() error
}
