package pool_test

import (
	"fmt"

	"github.com/ajitpratap0/reuse/pkg/pool"
)

type connection struct {
	id int
}

// Example demonstrates the base pool: prefilled spares are served LIFO
// before the factory runs again.
func Example() {
	next := 0
	p, err := pool.New(func() *connection {
		next++
		return &connection{id: next}
	})
	if err != nil {
		panic(err)
	}

	p.Fill(2)

	a := p.Get()
	b := p.Get()
	fmt.Println(a.id, b.id)

	_ = p.Put(b)
	c := p.Get()
	fmt.Println(c == b)

	// Output:
	// 2 1
	// true
}

// ExampleNewTracking shows the safe pool variant: instances the pool did
// not issue are rejected.
func ExampleNewTracking() {
	p, err := pool.NewTracking(
		func() *connection { return &connection{} },
		func(c *connection) { fmt.Println("activate") },
		func(c *connection) { fmt.Println("deactivate") },
	)
	if err != nil {
		panic(err)
	}

	c := p.Get()
	if err := p.Put(c); err != nil {
		panic(err)
	}

	if err := p.Put(&connection{}); err != nil {
		fmt.Println("rejected foreign instance")
	}

	// Output:
	// activate
	// deactivate
	// rejected foreign instance
}

// ExampleNewIndexed shows identity-keyed pooling: repeated fetches with
// the same key return the same live instance.
func ExampleNewIndexed() {
	p, err := pool.NewIndexed(
		func() *connection { return &connection{} },
		func(key int, c *connection) { fmt.Println("activated key", key) },
		func(key int, c *connection) { fmt.Println("released key", key) },
	)
	if err != nil {
		panic(err)
	}

	a := p.Get(5)
	b := p.Get(5)
	fmt.Println(a == b)

	_ = p.Put(5)
	fmt.Println(p.IsActive(5))

	// Output:
	// activated key 5
	// true
	// released key 5
	// false
}
