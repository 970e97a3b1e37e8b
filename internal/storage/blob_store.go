package storage

import (
	"fmt"
	"perfumefinder/internal/providers"
	"perfumefinder/internal/storage/interfaces"
	"perfumefinder/internal/structures"
)

const (
	DriverFile    = "file"
	DriverLevelDB = "leveldb"
	DriverSQLite  = "sqlite"
)

// NewBlobStore opens the driver named in persistence.driver. The compressor is
// only used by the file driver; the others own their on-disk format.
func NewBlobStore(conf *structures.Config, compressor interfaces.CompressorInterface, logger providers.Logger) (interfaces.BlobStoreInterface, error) {
	p := conf.Persistence
	logger.Infof(providers.TypeApp, "Opening %s state store at %s", p.Driver, p.Path)

	switch p.Driver {
	case DriverFile, "":
		fs, err := NewFileStore(p.Path, compressor, logger)
		if err != nil {
			compressor.Close()
			return nil, err
		}
		return fs, nil
	case DriverLevelDB:
		compressor.Close()
		return NewLevelDBStore(p.Path)
	case DriverSQLite:
		compressor.Close()
		return NewSQLiteStore(p.Path)
	default:
		compressor.Close()
		return nil, fmt.Errorf("unknown persistence driver %q", p.Driver)
	}
}
