package resize

import (
	"runtime"
	"sync"
)

// forEachRowChunk partitions [0, rows) into contiguous, disjoint,
// statically sized chunks and runs task once per chunk on its own
// goroutine. threads <= 0 delegates to runtime.NumCPU(). The call returns
// only after every worker has finished, so it acts as a full
// synchronization barrier for the output buffer.
func forEachRowChunk(rows, threads int, task func(y0, y1 int)) {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	if threads > rows {
		threads = rows
	}

	chunk := (rows + threads - 1) / threads

	var wg sync.WaitGroup
	for start := 0; start < rows; start += chunk {
		end := start + chunk
		if end > rows {
			end = rows
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			task(y0, y1)
		}(start, end)
	}
	wg.Wait()
}
