package archive

import (
	"bytes"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/sirkon/errors"
	"github.com/sirkon/linecov/internal/snapshot"
	"go.etcd.io/bbolt"
)

// Save сохраняет слепок под новым идентификатором.
func (a *Archive) Save(label string, s *snapshot.Snapshot) (Checkpoint, error) {
	id := uuid.New()
	created := a.now()

	data, err := encodeRecord(label, created, s)
	if err != nil {
		return Checkpoint{}, errors.Wrap(err, "prepare checkpoint")
	}

	err = a.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(checkpointsBucket).Put([]byte(id.String()), data)
	})
	if err != nil {
		return Checkpoint{}, errors.Wrap(err, "store checkpoint").Str("checkpoint-id", id.String())
	}

	return Checkpoint{
		ID:      id,
		Label:   label,
		Created: created,
		Files:   s.Len(),
	}, nil
}

// Load достаёт слепок с данным идентификатором.
func (a *Archive) Load(id uuid.UUID) (*snapshot.Snapshot, Checkpoint, error) {
	var rec *record
	err := a.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(checkpointsBucket).Get([]byte(id.String()))
		if data == nil {
			return ErrNotFound
		}

		var err error
		rec, err = decodeRecord(data)
		return err
	})
	if err != nil {
		return nil, Checkpoint{}, errors.Wrap(err, "read checkpoint").Str("checkpoint-id", id.String())
	}

	s, err := rec.snapshot()
	if err != nil {
		return nil, Checkpoint{}, errors.Wrap(err, "load checkpoint").Str("checkpoint-id", id.String())
	}

	return s, rec.checkpoint(id), nil
}

// List описания всех контрольных точек упорядоченные по времени создания.
func (a *Archive) List() ([]Checkpoint, error) {
	var res []Checkpoint
	err := a.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(checkpointsBucket).ForEach(func(k, v []byte) error {
			id, err := uuid.ParseBytes(k)
			if err != nil {
				return errors.Wrap(err, "parse checkpoint id").Str("checkpoint-key", string(k))
			}

			rec, err := decodeRecord(v)
			if err != nil {
				return errors.Wrap(err, "decode checkpoint").Str("checkpoint-id", id.String())
			}

			res = append(res, rec.checkpoint(id))
			return nil
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "list checkpoints")
	}

	sort.Slice(res, func(i, j int) bool {
		if !res[i].Created.Equal(res[j].Created) {
			return res[i].Created.Before(res[j].Created)
		}
		return res[i].ID.String() < res[j].ID.String()
	})

	return res, nil
}

// Latest описание последней контрольной точки.
func (a *Archive) Latest() (Checkpoint, error) {
	list, err := a.List()
	if err != nil {
		return Checkpoint{}, err
	}

	if len(list) == 0 {
		return Checkpoint{}, ErrNotFound
	}

	return list[len(list)-1], nil
}

// Delete удаляет контрольную точку.
func (a *Archive) Delete(id uuid.UUID) error {
	err := a.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(checkpointsBucket)
		key := []byte(id.String())
		if b.Get(key) == nil {
			return ErrNotFound
		}

		return b.Delete(key)
	})
	if err != nil {
		return errors.Wrap(err, "delete checkpoint").Str("checkpoint-id", id.String())
	}

	return nil
}

// Resolve идентификатор по ссылке: RefLatest, полный идентификатор или
// однозначный префикс идентификатора.
func (a *Archive) Resolve(ref string) (uuid.UUID, error) {
	if ref == RefLatest {
		cp, err := a.Latest()
		if err != nil {
			return uuid.Nil, errors.Wrap(err, "get latest checkpoint")
		}

		return cp.ID, nil
	}

	if ref == "" {
		return uuid.Nil, errors.Wrap(ErrNotFound, "empty checkpoint reference")
	}

	var matches []uuid.UUID
	prefix := []byte(strings.ToLower(ref))
	err := a.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(checkpointsBucket).Cursor()
		for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
			id, err := uuid.ParseBytes(k)
			if err != nil {
				return errors.Wrap(err, "parse checkpoint id").Str("checkpoint-key", string(k))
			}

			matches = append(matches, id)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "look up checkpoint").Str("checkpoint-ref", ref)
	}

	switch len(matches) {
	case 0:
		return uuid.Nil, errors.Wrap(ErrNotFound, "look up checkpoint").Str("checkpoint-ref", ref)
	case 1:
		return matches[0], nil
	default:
		return uuid.Nil, errors.Wrap(ErrAmbiguous, "look up checkpoint").
			Str("checkpoint-ref", ref).
			Int("checkpoint-matches", len(matches))
	}
}
