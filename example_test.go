// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

// This file contains examples that run producers concurrently with the
// consumer. These trigger false positives with Go's race detector because
// atomix atomic operations appear as regular memory accesses to the detector.
// The examples are correct; they're excluded from race testing.

package ringq_test

import (
	"fmt"
	"sync"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/ringq"
)

// ExampleNewMPSC demonstrates basic FIFO usage and the capacity rule.
func ExampleNewMPSC() {
	q, err := ringq.NewMPSC[int](5)
	if err != nil {
		panic(err)
	}
	defer q.Close()

	fmt.Println("slots:", q.Size(), "usable:", q.Cap())

	for i := 1; ; i++ {
		v := i * 10
		if err := q.Enqueue(&v); err != nil {
			fmt.Println("full after", i-1)
			break
		}
	}

	for {
		v, err := q.Dequeue()
		if err != nil {
			break
		}
		fmt.Println(v)
	}

	// Output:
	// slots: 5 usable: 4
	// full after 4
	// 10
	// 20
	// 30
	// 40
}

// ExampleMPSC_concurrent demonstrates multiple producers feeding one consumer.
func ExampleMPSC_concurrent() {
	q, _ := ringq.NewMPSC[string](4)
	defer q.Close()

	var wg sync.WaitGroup
	for p := range 3 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			backoff := iox.Backoff{}
			for i := range 2 {
				msg := fmt.Sprintf("producer %d message %d", id, i)
				for q.Enqueue(&msg) != nil {
					backoff.Wait()
				}
				backoff.Reset()
			}
		}(p)
	}

	backoff := iox.Backoff{}
	for received := 0; received < 6; {
		msg, err := q.Dequeue()
		if err != nil {
			backoff.Wait()
			continue
		}
		backoff.Reset()
		fmt.Println(msg)
		received++
	}
	wg.Wait()

	// Unordered output:
	// producer 0 message 0
	// producer 0 message 1
	// producer 1 message 0
	// producer 1 message 1
	// producer 2 message 0
	// producer 2 message 1
}

// ExampleMPSC_EnqueueMove demonstrates handing a buffer over to the consumer.
func ExampleMPSC_EnqueueMove() {
	q, _ := ringq.NewMPSC[[]byte](8)
	defer q.Close()

	buf := []byte("payload")
	if err := q.EnqueueMove(&buf); err != nil {
		panic(err)
	}
	fmt.Println("source after move:", buf == nil)

	got, _ := q.Dequeue()
	fmt.Println("received:", string(got))

	// Output:
	// source after move: true
	// received: payload
}

type conn struct{ name string }

func (c *conn) Release() { fmt.Println("released", c.name) }

// ExampleMPSC_Close demonstrates that Close discards buffered elements,
// releasing those that implement Releaser.
func ExampleMPSC_Close() {
	q, _ := ringq.NewMPSC[*conn](8)

	for _, name := range []string{"a", "b", "c"} {
		c := &conn{name: name}
		q.Enqueue(&c)
	}
	c, _ := q.Dequeue()
	fmt.Println("delivered", c.name)

	q.Shutdown()
	if _, err := q.Dequeue(); ringq.IsClosed(err) {
		fmt.Println("dequeue rejected after shutdown")
	}

	q.Close()
	fmt.Println("state:", q.State())

	// Output:
	// delivered a
	// dequeue rejected after shutdown
	// released b
	// released c
	// state: drained
}
