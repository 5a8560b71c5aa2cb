package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type IHydrationQueue interface {
	Enqueue(item HydrationItem) (int, error)
	Dequeue() (HydrationItem, bool)
	Start(consumerFunc HydrationConsumerFunc, emptyQueueSleep time.Duration)
	Size() int
	Close()
}

// HydrationQueue feeds the background metadata workers. It is bounded so a
// burst of list mutations cannot pile up unbounded work, and the shared rate
// limiter keeps the workers from hammering the metadata source.
type HydrationQueue struct {
	queue    []HydrationItem
	mutex    sync.Mutex
	capacity int
	workers  int
	limiter  *rate.Limiter
	done     bool
	wg       *sync.WaitGroup
}

type HydrationItem struct {
	TmdbId  int64
	BatchId string
}

type HydrationConsumerFunc func(wid int, item HydrationItem)

var ErrOverflow = errors.New("overflow")

func NewHydrationQueue(workers int, capacity int, ratePerSec int) *HydrationQueue {
	return &HydrationQueue{
		queue:    make([]HydrationItem, 0, capacity),
		capacity: capacity,
		workers:  workers,
		limiter:  rate.NewLimiter(rate.Limit(ratePerSec), 1),
		done:     false,
		wg:       &sync.WaitGroup{},
	}
}

//---------------------------------------
//---------------------------------------

func (hq *HydrationQueue) Enqueue(item HydrationItem) (int, error) {
	hq.mutex.Lock()
	defer hq.mutex.Unlock()

	if len(hq.queue) >= hq.capacity {
		return -1, ErrOverflow
	}

	hq.queue = append(hq.queue, item)
	return len(hq.queue) - 1, nil
}

func (hq *HydrationQueue) Dequeue() (HydrationItem, bool) {
	hq.mutex.Lock()
	defer hq.mutex.Unlock()

	if len(hq.queue) == 0 {
		return HydrationItem{}, false
	}

	item := hq.queue[0]
	hq.queue = hq.queue[1:]
	return item, true
}

func (hq *HydrationQueue) Size() int {
	hq.mutex.Lock()
	defer hq.mutex.Unlock()
	return len(hq.queue)
}

//---------------------------------------
//---------------------------------------

func (hq *HydrationQueue) Start(consumerFunc HydrationConsumerFunc, emptyQueueSleep time.Duration) {
	for i := 0; i < hq.workers; i++ {
		hq.wg.Add(1)
		go hq.worker(i, consumerFunc, emptyQueueSleep)
	}
}

func (hq *HydrationQueue) worker(wid int, consumerFunc HydrationConsumerFunc, emptyQueueSleep time.Duration) {
	defer hq.wg.Done()

	for {
		if hq.closed() {
			return
		}

		item, exist := hq.Dequeue()
		if !exist {
			time.Sleep(emptyQueueSleep)
			continue
		}

		_ = hq.limiter.Wait(context.Background())
		consumerFunc(wid, item)
	}
}

func (hq *HydrationQueue) closed() bool {
	hq.mutex.Lock()
	defer hq.mutex.Unlock()
	return hq.done
}

func (hq *HydrationQueue) Close() {
	hq.mutex.Lock()
	hq.done = true
	hq.mutex.Unlock()
	hq.wg.Wait()
}
