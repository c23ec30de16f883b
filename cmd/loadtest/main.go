// Command loadtest hammers the Redis stock gate with concurrent
// conditional decrements and verifies that exactly the seeded quantity
// is ever sold, mirroring the double-sell property of the payment path.
package main

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/nimbus-pos/nimbus/internal/adapter/storage"
)

const (
	redisAddr     = "localhost:6379"
	itemID        = "loadtest-item"
	initialStock  = 20
	totalRequests = 50
)

func main() {
	ctx := context.Background()

	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}
	defer rdb.Close()

	// Clear previous run
	rdb.Del(ctx, "stock:"+itemID)

	cache := storage.NewRedisAdapter(rdb)
	if err := cache.SetStock(ctx, itemID, initialStock); err != nil {
		log.Fatalf("failed to seed stock: %v", err)
	}

	var successCount atomic.Int32
	var failCount atomic.Int32

	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			key := "pay:" + uuid.New().String()
			ok, err := cache.SetIdempotency(ctx, key)
			if err != nil || !ok {
				failCount.Add(1)
				return
			}

			ok, err = cache.DecrementStock(ctx, itemID, 1)
			if err != nil {
				failCount.Add(1)
				return
			}
			if ok {
				successCount.Add(1)
			} else {
				cache.ReleaseIdempotency(ctx, key)
				failCount.Add(1)
			}
		}()
	}

	wg.Wait()
	elapsed := time.Since(start)

	success := successCount.Load()
	fail := failCount.Load()

	fmt.Println("========== STOCK GATE LOAD TEST ==========")
	fmt.Printf("Initial Stock:    %d\n", initialStock)
	fmt.Printf("Total Requests:   %d\n", totalRequests)
	fmt.Printf("Successful:       %d\n", success)
	fmt.Printf("Rejected:         %d\n", fail)
	fmt.Printf("Duration:         %v\n", elapsed)
	fmt.Println("==========================================")

	if success == int32(initialStock) && fail == int32(totalRequests-initialStock) {
		fmt.Printf("PASS: exactly %d decrements succeeded\n", initialStock)
	} else {
		fmt.Printf("FAIL: expected %d success/%d fail, got %d/%d\n",
			initialStock, totalRequests-initialStock, success, fail)
	}

	finalStock, _ := rdb.Get(ctx, "stock:"+itemID).Int()
	fmt.Printf("Final Stock: %d\n", finalStock)

	if finalStock == 0 {
		fmt.Println("PASS: stock depleted to 0")
	} else {
		fmt.Printf("FAIL: expected stock 0, got %d\n", finalStock)
	}
}
