package strarray

import "runtime"

// Config controls how element-wise operations are scheduled.
type Config struct {
	// Workers bounds the number of goroutines working on one call.
	// Values below 1 mean one worker.
	Workers int
	// ChunkSize is the number of consecutive elements a goroutine handles
	// per task. Values below 1 mean one element.
	ChunkSize int
}

// DefaultConfig uses one worker per usable CPU and chunks of 1024 elements.
func DefaultConfig() Config {
	return Config{
		Workers:   runtime.GOMAXPROCS(0),
		ChunkSize: 1024,
	}
}

func (c Config) normalized() Config {
	c.Workers = max(c.Workers, 1)
	c.ChunkSize = max(c.ChunkSize, 1)
	return c
}
