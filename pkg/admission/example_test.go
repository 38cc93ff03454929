package admission_test

import (
	"fmt"
	"time"

	"github.com/vnykmshr/goadmit/pkg/admission"
	"github.com/vnykmshr/goadmit/pkg/admission/fixedwindow"
	"github.com/vnykmshr/goadmit/pkg/admission/slidinglog"
	"github.com/vnykmshr/goadmit/pkg/admission/tokenbucket"
)

// Example demonstrates swapping algorithms behind the shared contract.
func Example() {
	build := func(algorithm string) (admission.Limiter, error) {
		switch algorithm {
		case "fixed_window":
			return fixedwindow.New(2, time.Second)
		case "token_bucket":
			return tokenbucket.New(2, 500*time.Millisecond)
		default:
			return slidinglog.New(2, time.Second)
		}
	}

	for _, algorithm := range []string{"fixed_window", "token_bucket", "sliding_log"} {
		limiter, err := build(algorithm)
		if err != nil {
			panic(fmt.Sprintf("failed to create limiter: %v", err))
		}

		admittedCount := 0
		for i := 0; i < 3; i++ {
			if admitted, _ := limiter.TryConsume(); admitted {
				admittedCount++
			}
		}
		fmt.Printf("%s admitted %d of 3\n", algorithm, admittedCount)
	}

	// Output:
	// fixed_window admitted 2 of 3
	// token_bucket admitted 2 of 3
	// sliding_log admitted 2 of 3
}
