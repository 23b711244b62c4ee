package archive

import (
	"bytes"
	"time"

	"github.com/google/uuid"
	"github.com/sirkon/errors"
	"github.com/sirkon/linecov/internal/snapshot"
	"github.com/vmihailenco/msgpack/v5"
)

// Checkpoint описание сохранённого слепка.
type Checkpoint struct {
	ID      uuid.UUID
	Label   string
	Created time.Time
	Files   int
}

// record сохраняемое представление контрольной точки. Data содержит
// двоичный дамп слепка.
type record struct {
	Label   string `msgpack:"label"`
	Created int64  `msgpack:"created"`
	Files   int    `msgpack:"files"`
	Data    []byte `msgpack:"data"`
}

func (r *record) checkpoint(id uuid.UUID) Checkpoint {
	return Checkpoint{
		ID:      id,
		Label:   r.Label,
		Created: time.Unix(0, r.Created),
		Files:   r.Files,
	}
}

func encodeRecord(label string, created time.Time, s *snapshot.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(s.DumpSize())
	if _, err := s.Dump(&buf); err != nil {
		return nil, errors.Wrap(err, "dump snapshot")
	}

	data, err := msgpack.Marshal(&record{
		Label:   label,
		Created: created.UnixNano(),
		Files:   s.Len(),
		Data:    buf.Bytes(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "encode checkpoint record")
	}

	return data, nil
}

func decodeRecord(data []byte) (*record, error) {
	var rec record
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return nil, errors.Wrap(err, "decode checkpoint record")
	}

	return &rec, nil
}

func (r *record) snapshot() (*snapshot.Snapshot, error) {
	s, err := snapshot.FromDump(bytes.NewReader(r.Data))
	if err != nil {
		return nil, errors.Wrap(err, "restore snapshot from checkpoint data")
	}

	return s, nil
}
