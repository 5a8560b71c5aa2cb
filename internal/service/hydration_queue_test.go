package service

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestHydrationQueueEnqueueDequeue(t *testing.T) {
	queue := NewHydrationQueue(0, 2, 100)

	if _, ok := queue.Dequeue(); ok {
		t.Fatalf("Expected empty dequeue to report false")
	}

	if _, err := queue.Enqueue(HydrationItem{TmdbId: 1}); err != nil {
		t.Fatalf("Enqueue failed: %v", err)
	}
	if _, err := queue.Enqueue(HydrationItem{TmdbId: 2}); err != nil {
		t.Fatalf("Enqueue failed: %v", err)
	}
	if _, err := queue.Enqueue(HydrationItem{TmdbId: 3}); err != ErrOverflow {
		t.Fatalf("Expected ErrOverflow, got %v", err)
	}
	if queue.Size() != 2 {
		t.Fatalf("Expected size 2, got %v", queue.Size())
	}

	item, ok := queue.Dequeue()
	if !ok || item.TmdbId != 1 {
		t.Fatalf("Expected fifo order, got %+v", item)
	}
}

func TestHydrationQueueWorkersDrain(t *testing.T) {
	queue := NewHydrationQueue(3, 100, 1000)

	var processed atomic.Int64
	var mutex sync.Mutex
	seen := map[int64]bool{}

	queue.Start(func(wid int, item HydrationItem) {
		mutex.Lock()
		seen[item.TmdbId] = true
		mutex.Unlock()
		processed.Add(1)
	}, 5*time.Millisecond)

	for i := int64(1); i <= 20; i++ {
		if _, err := queue.Enqueue(HydrationItem{TmdbId: i, BatchId: "batch"}); err != nil {
			t.Fatalf("Enqueue failed: %v", err)
		}
	}

	deadline := time.Now().Add(5 * time.Second)
	for processed.Load() < 20 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	queue.Close()

	if processed.Load() != 20 {
		t.Fatalf("Expected 20 processed items, got %v", processed.Load())
	}
	for i := int64(1); i <= 20; i++ {
		if !seen[i] {
			t.Fatalf("Item %v never processed", i)
		}
	}
}

func TestHydrationQueueCloseStopsWorkers(t *testing.T) {
	queue := NewHydrationQueue(2, 10, 1000)

	var processed atomic.Int64
	queue.Start(func(wid int, item HydrationItem) {
		processed.Add(1)
	}, time.Millisecond)

	queue.Close()

	if _, err := queue.Enqueue(HydrationItem{TmdbId: 1}); err != nil {
		t.Fatalf("Enqueue failed: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if processed.Load() != 0 || queue.Size() != 1 {
		t.Fatalf("Expected stopped workers to leave the queue alone, got processed=%v size=%v", processed.Load(), queue.Size())
	}
}
