package workpool_test

import (
	"fmt"
	"sync/atomic"

	"github.com/c360/workpool"
)

func ExampleNew() {
	pool, err := workpool.New(2)
	if err != nil {
		fmt.Println(err)
		return
	}

	var sum int64
	for i := 1; i <= 10; i++ {
		i := i
		pool.Submit(func() {
			atomic.AddInt64(&sum, int64(i))
		})
	}

	// Close blocks until every submitted job has finished
	pool.Close()
	fmt.Println(atomic.LoadInt64(&sum))
	// Output: 55
}
