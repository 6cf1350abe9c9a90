package dataset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libeasygo/pathutils"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
)

// NewFileStore keeps each DataSet in <root>/<name>.jjf.
func NewFileStore(root string, storage stg.FileStorage, logger l.Wrapper) Store {
	cfg := DefaultConfig()
	cfg.DataRoot = root

	return NewFileStoreWithConfig(cfg, storage, logger)
}

// NewFileStoreWithConfig builds a file store; a nil storage means the local file
// system, in which case the data root is created on first write.
func NewFileStoreWithConfig(cfg *Config, storage stg.FileStorage, logger l.Wrapper) Store {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "fileStoreImpl"))

	if cfg == nil {
		cfg = DefaultConfig()
	}

	c := *cfg
	c.fix()

	impl := &fileStoreImpl{
		logger:  logger,
		root:    c.DataRoot,
		ext:     c.FileExt,
		storage: storage,
	}

	if impl.storage == nil {
		impl.storage = rawfs.NewFSStorage("")
		impl.ensureDir = true
	}

	if c.ReadCacheTTL > 0 {
		impl.cache = cache.New(c.ReadCacheTTL, c.ReadCacheTTL*2)
	}

	return impl
}

type fileStoreImpl struct {
	logger l.Wrapper

	root      string
	ext       string
	storage   stg.FileStorage
	ensureDir bool

	cache *cache.Cache
}

func (impl *fileStoreImpl) fileNameByName(name string) string {
	return filepath.Join(impl.root, name+impl.ext)
}

func (impl *fileStoreImpl) Read(name string) (DataSet, error) {
	fileName := impl.fileNameByName(name)

	d, err := impl.readFile(fileName)
	if err != nil {
		return nil, err
	}

	return Decode(d)
}

func (impl *fileStoreImpl) readFile(fileName string) ([]byte, error) {
	if impl.cache != nil {
		if i, ok := impl.cache.Get(fileName); ok {
			if d, ok := i.([]byte); ok {
				return d, nil
			}
		}
	}

	d, err := impl.storage.ReadFile(fileName)
	if errors.Is(err, os.ErrNotExist) {
		impl.logger.WithFields(l.StringField("file", fileName)).Debug("no such file")

		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, fileName)
	}

	if err != nil {
		impl.logger.WithFields(l.StringField("file", fileName), l.ErrorField(err)).Error("read file failed")

		return nil, fmt.Errorf("%w: read %s: %v", ErrIOFailure, fileName, err)
	}

	if impl.cache != nil {
		impl.cache.SetDefault(fileName, d)
	}

	return d, nil
}

func (impl *fileStoreImpl) Write(ds DataSet, name string) error {
	if err := CheckEncodable(ds); err != nil {
		return err
	}

	fileName := impl.fileNameByName(name)

	if impl.ensureDir {
		_ = pathutils.MustDirExists(filepath.Dir(fileName))
	}

	d := Encode(ds)

	if err := impl.storage.WriteFile(fileName, d); err != nil {
		impl.logger.WithFields(l.StringField("file", fileName), l.UInt64Field("id", ds.GetID()), l.ErrorField(err)).
			Error("write file failed")

		if impl.cache != nil {
			impl.cache.Delete(fileName)
		}

		return fmt.Errorf("%w: write %s: %v", ErrIOFailure, fileName, err)
	}

	if impl.cache != nil {
		impl.cache.SetDefault(fileName, d)
	}

	return nil
}
