package archive

import (
	"os"
	"path/filepath"
	"time"

	"github.com/sirkon/errors"
	"go.etcd.io/bbolt"
)

const (
	// ErrNotFound контрольная точка не найдена.
	ErrNotFound errors.Const = "checkpoint not found"

	// ErrAmbiguous ссылке соответствует более одной контрольной точки.
	ErrAmbiguous errors.Const = "ambiguous checkpoint reference"
)

// RefLatest ссылка на последнюю сохранённую контрольную точку.
const RefLatest = "latest"

var checkpointsBucket = []byte("checkpoints")

// Archive долговременное хранилище слепков покрытия в файле bbolt.
type Archive struct {
	db  *bbolt.DB
	now func() time.Time
}

// Open открытие архива по данному пути. Файл и родительские директории
// создаются при необходимости.
func Open(path string, opts ...Option) (*Archive, error) {
	cfg := config{
		timeout: DefaultTimeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(&cfg, optRestriction{})
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "create archive directory").Str("archive-path", path)
	}

	db, err := bbolt.Open(path, 0o644, &bbolt.Options{
		Timeout: cfg.timeout,
	})
	if err != nil {
		return nil, errors.Wrap(err, "open archive file").Str("archive-path", path)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(checkpointsBucket)
		return err
	})
	if err != nil {
		if cerr := db.Close(); cerr != nil {
			return nil, errors.Wrap(cerr, "close archive after setup failure").Str("setup-error", err.Error())
		}
		return nil, errors.Wrap(err, "setup checkpoints bucket").Str("archive-path", path)
	}

	return &Archive{
		db:  db,
		now: cfg.now,
	}, nil
}

// Close закрытие файла архива.
func (a *Archive) Close() error {
	if err := a.db.Close(); err != nil {
		return errors.Wrap(err, "close archive file")
	}

	return nil
}
