package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/ariebrainware/patient-referral/model"
	"github.com/redis/go-redis/v9"
)

// casScript writes the record hash only when the stored version matches ARGV[1].
// A missing hash counts as version 0.
const casScript = `
local current = redis.call('HGET', KEYS[1], 'version')
if not current then current = '0' end
if current ~= ARGV[1] then
	return 0
end
redis.call('HSET', KEYS[1], 'version', ARGV[2], 'data', ARGV[3])
return 1
`

// RedisStore keeps each patient record as a hash at patient:<id>.
type RedisStore struct {
	rdb redis.Cmdable
}

// NewRedisStore returns a store backed by rdb.
func NewRedisStore(rdb redis.Cmdable) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func patientKey(id string) string {
	return fmt.Sprintf("patient:%s", id)
}

func (s *RedisStore) Get(ctx context.Context, id string) (*model.PatientRecord, error) {
	data, err := s.rdb.HGet(ctx, patientKey(id), "data").Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	rec := model.NewPatientRecord(id)
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal patient %s: %w", id, err)
	}
	return rec, nil
}

func (s *RedisStore) Upsert(ctx context.Context, rec *model.PatientRecord) error {
	next := rec.Clone()
	next.Version = rec.Version + 1
	payload, err := json.Marshal(next)
	if err != nil {
		return err
	}

	res, err := s.rdb.Eval(ctx, casScript, []string{patientKey(rec.ID)},
		strconv.FormatInt(rec.Version, 10),
		strconv.FormatInt(next.Version, 10),
		string(payload),
	).Int64()
	if err != nil {
		return fmt.Errorf("failed to write patient %s: %w", rec.ID, err)
	}
	if res == 0 {
		return ErrVersionConflict
	}
	rec.Version = next.Version
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	n, err := s.rdb.Del(ctx, patientKey(id)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
