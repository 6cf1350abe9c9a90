package redisimpls

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libdataset/dataset"
)

// NewRedisStore keeps the .jjf text of each DataSet under <preKey>:dataset:<name>.
func NewRedisStore(preKey string, redisCli *redis.Client, logger l.Wrapper) dataset.Store {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "redisStore"))

	if redisCli == nil {
		logger.Fatal("no redis client")
	}

	return &redisStore{
		logger:   logger,
		preKey:   preKey,
		redisCli: redisCli,
	}
}

type redisStore struct {
	logger   l.Wrapper
	preKey   string
	redisCli *redis.Client
}

func (impl *redisStore) dataSetKey(name string) string {
	return impl.preKey + ":dataset:" + name
}

func (impl *redisStore) Read(name string) (dataset.DataSet, error) {
	key := impl.dataSetKey(name)

	d, err := impl.redisCli.Get(context.Background(), key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", dataset.ErrFileNotFound, key)
	}

	if err != nil {
		impl.logger.WithFields(l.StringField("key", key), l.ErrorField(err)).Error("get failed")

		return nil, fmt.Errorf("%w: get %s: %v", dataset.ErrIOFailure, key, err)
	}

	return dataset.Decode(d)
}

func (impl *redisStore) Write(ds dataset.DataSet, name string) error {
	err := dataset.CheckEncodable(ds)
	if err != nil {
		return err
	}

	key := impl.dataSetKey(name)

	err = impl.redisCli.Set(context.Background(), key, dataset.Encode(ds), 0).Err()
	if err != nil {
		impl.logger.WithFields(l.StringField("key", key), l.UInt64Field("id", ds.GetID()), l.ErrorField(err)).
			Error("set failed")

		return fmt.Errorf("%w: set %s: %v", dataset.ErrIOFailure, key, err)
	}

	return nil
}
