package channel_test

import (
	"fmt"

	chstats "github.com/cwbudde/algo-eeg/stats/channel"
)

func ExampleCalculate() {
	s := chstats.Calculate([]float32{2, 4, 4, 4, 5, 5, 7, 9})
	fmt.Printf("mean=%.0f std=%.0f dist=%.0f\n", s.Mean, s.Std, s.Dist)

	// Output:
	// mean=5 std=2 dist=7
}
