package store

import (
	"context"
	"encoding/json"

	"github.com/skillsfirst/briefapi/internal/config"
	"github.com/skillsfirst/briefapi/internal/data/redisStore"
	"github.com/skillsfirst/briefapi/internal/domain/briefModel"
	"github.com/skillsfirst/briefapi/pkg/logger_i"
)

const receiptKeyPrefix = "receipts:"

// RedisReceiptStore is the local append-only receipt ledger: one Redis list
// per document name.
type RedisReceiptStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

func GetRedisReceiptStore(ctx context.Context) *RedisReceiptStore {
	inner := redisStore.GetRedisStore(ctx, config.RedisReceiptStore)
	if inner == nil {
		return nil
	}
	return &RedisReceiptStore{
		store:  inner,
		logger: logger_i.NewLogger("ReceiptStore"),
	}
}

func (s *RedisReceiptStore) AppendReceipt(ctx context.Context, row briefModel.ReceiptRow) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "document", row.DocumentName)
	data, err := json.Marshal(row)
	if err != nil {
		log.Error("Error marshalling receipt row", "error", err)
		return err
	}
	err = s.store.ListPush(ctx, receiptKeyPrefix+row.DocumentName, data)
	if err != nil {
		log.Error("Error appending receipt row", "error", err)
		return err
	}
	log.Debug("Appended receipt row")
	return nil
}

func (s *RedisReceiptStore) GetReceipts(ctx context.Context, documentName string) ([]string, error) {
	return s.store.ListGetAll(ctx, receiptKeyPrefix+documentName)
}

func TestReceiptStore(store *redisStore.Store) *RedisReceiptStore {
	return &RedisReceiptStore{
		store:  store,
		logger: logger_i.NewLogger("test receipt redis"),
	}
}
