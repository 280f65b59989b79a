package core

import "context"

// FetchData produces the sample data set asynchronously. It returns a FetchError if ctx ends
// before the data is ready.
func FetchData(ctx context.Context) ([]int, error) {
	result := make(chan []int, 1)
	go func() {
		result <- []int{1, 2, 3}
	}()

	select {
	case <-ctx.Done():
		return nil, FetchError{
			Reason: "failed to fetch data",
			Cause:  ctx.Err(),
		}
	case data := <-result:
		return data, nil
	}
}
