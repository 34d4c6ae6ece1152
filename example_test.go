package taskfarm_test

import (
	"context"
	"fmt"

	"github.com/ygrebnov/taskfarm"
)

func ExampleRun() {
	report, err := taskfarm.Run(context.Background(), []int{3, 1, 2},
		func(_ context.Context, x int) int { return x + 1 },
		taskfarm.WithWorkers(2),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(report.Results)
	fmt.Println(len(report.Verify(func(x int) int { return x + 1 })))
	// Output:
	// [4 2 3]
	// 0
}
