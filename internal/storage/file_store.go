package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"perfumefinder/internal/providers"
	"perfumefinder/internal/storage/interfaces"
)

const fileStoreExt = ".json.zst"

// FileStore keeps one compressed file per key inside dir.
type FileStore struct {
	dir        string
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileStore(dir string, compressor interfaces.CompressorInterface, logger providers.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create storage dir %s: %w", dir, err)
	}
	return &FileStore{
		dir:        dir,
		compressor: compressor,
		logger:     logger,
	}, nil
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, key+fileStoreExt)
}

// Save writes to a temp file, syncs it and renames it over the old blob so a
// crash never leaves a half-written file behind.
func (f *FileStore) Save(key string, blob []byte) error {
	data, err := f.compressor.Compress(blob)
	if err != nil {
		return err
	}

	fileName := f.path(key)
	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

func (f *FileStore) Load(key string) ([]byte, error) {
	fileName := f.path(key)
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	blob, err := f.compressor.Decompress(data)
	if err != nil {
		f.logger.Warnf(providers.TypeApp, "Stored state %s is not readable: %s", fileName, err)
		return nil, err
	}
	return blob, nil
}

func (f *FileStore) Close() error {
	f.compressor.Close()
	return nil
}
