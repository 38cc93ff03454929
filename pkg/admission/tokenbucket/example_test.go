package tokenbucket_test

import (
	"fmt"
	"time"

	"github.com/vnykmshr/goadmit/pkg/admission/tokenbucket"
)

// Example demonstrates basic token bucket admission control.
func Example() {
	// Two permits, one regained per second. The bucket starts full.
	limiter, err := tokenbucket.New(2, time.Second)
	if err != nil {
		panic(fmt.Sprintf("failed to create limiter: %v", err))
	}

	for i := 1; i <= 3; i++ {
		admitted, _ := limiter.TryConsume()
		fmt.Printf("request %d admitted: %v\n", i, admitted)
	}
	fmt.Printf("tokens left: %d\n", limiter.Tokens())

	// Output:
	// request 1 admitted: true
	// request 2 admitted: true
	// request 3 admitted: false
	// tokens left: 0
}

// Example_configuration demonstrates construction from a Config.
func Example_configuration() {
	config := tokenbucket.Config{
		Capacity:       5,
		RefillInterval: 200 * time.Millisecond,
	}

	limiter, err := tokenbucket.NewWithConfig(config)
	if err != nil {
		panic(fmt.Sprintf("failed to create limiter: %v", err))
	}

	fmt.Printf("capacity: %d\n", limiter.Capacity())
	fmt.Printf("refill interval: %v\n", limiter.RefillInterval())
	fmt.Printf("initial tokens: %d\n", limiter.Tokens())

	// Output:
	// capacity: 5
	// refill interval: 200ms
	// initial tokens: 5
}
