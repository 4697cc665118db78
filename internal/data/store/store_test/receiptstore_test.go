package store_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/skillsfirst/briefapi/internal/config"
	"github.com/skillsfirst/briefapi/internal/data/redisStore"
	"github.com/skillsfirst/briefapi/internal/data/store"
	"github.com/skillsfirst/briefapi/internal/domain/briefModel"
)

func sampleRow(userName string) briefModel.ReceiptRow {
	return briefModel.ReceiptRow{
		Timestamp:    time.Now(),
		DocumentName: "spring_flyer.pdf",
		UserName:     userName,
		UserRole:     "parent",
		Skills:       "Deadline management; Form completion & submission",
	}
}

func TestRedisReceiptStore_AppendAndGet(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	receiptStore := store.TestReceiptStore(redisStore.NewTestStore(client))

	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")

	t.Run("Rows append in order per document", func(t *testing.T) {
		if err := receiptStore.AppendReceipt(ctx, sampleRow("Dana")); err != nil {
			t.Fatalf("AppendReceipt failed: %v", err)
		}
		if err := receiptStore.AppendReceipt(ctx, sampleRow("Sam")); err != nil {
			t.Fatalf("AppendReceipt failed: %v", err)
		}

		rows, err := receiptStore.GetReceipts(ctx, "spring_flyer.pdf")
		if err != nil {
			t.Fatalf("GetReceipts failed: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(rows))
		}

		var first briefModel.ReceiptRow
		if err := json.Unmarshal([]byte(rows[0]), &first); err != nil {
			t.Fatalf("stored row is not valid JSON: %v", err)
		}
		if first.UserName != "Dana" {
			t.Errorf("expected first row from Dana, got %s", first.UserName)
		}
	})

	t.Run("Unknown document is empty", func(t *testing.T) {
		rows, err := receiptStore.GetReceipts(ctx, "ghost.pdf")
		if err != nil {
			t.Fatalf("GetReceipts failed: %v", err)
		}
		if len(rows) != 0 {
			t.Errorf("expected no rows, got %d", len(rows))
		}
	})
}

func TestInMemoryReceiptStore(t *testing.T) {
	receiptStore := store.InitInMemoryReceiptStore()
	ctx := context.Background()

	if err := receiptStore.AppendReceipt(ctx, sampleRow("Dana")); err != nil {
		t.Fatalf("AppendReceipt failed: %v", err)
	}

	rows, err := receiptStore.GetReceipts(ctx, "spring_flyer.pdf")
	if err != nil {
		t.Fatalf("GetReceipts failed: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected 1 row, got %d", len(rows))
	}
}
