package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/skillsfirst/briefapi/internal/domain/briefModel"
)

type InMemoryReceiptStore struct {
	receiptLock *sync.RWMutex
	receiptMap  map[string][]string
}

func InitInMemoryReceiptStore() *InMemoryReceiptStore {
	return &InMemoryReceiptStore{
		receiptLock: new(sync.RWMutex),
		receiptMap:  make(map[string][]string),
	}
}

func (store *InMemoryReceiptStore) AppendReceipt(ctx context.Context, row briefModel.ReceiptRow) error {
	data, err := json.Marshal(row)
	if err != nil {
		return err
	}
	store.receiptLock.Lock()
	defer store.receiptLock.Unlock()
	store.receiptMap[row.DocumentName] = append(store.receiptMap[row.DocumentName], string(data))
	return nil
}

func (store *InMemoryReceiptStore) GetReceipts(ctx context.Context, documentName string) ([]string, error) {
	store.receiptLock.RLock()
	defer store.receiptLock.RUnlock()
	return store.receiptMap[documentName], nil
}
