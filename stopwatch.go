package camptrees

import (
	"fmt"
	"time"
)

// Watch accumulates per-rule wall time across a solve.
var Watch Stopwatch

type Stopwatch struct {
	Buckets      map[string]time.Duration
	BucketStarts map[string]time.Time
}

func init() {
	Watch = Stopwatch{}
	Watch.Buckets = make(map[string]time.Duration)
	Watch.BucketStarts = make(map[string]time.Time)
}

func (s *Stopwatch) Start(b string) {
	s.BucketStarts[b] = time.Now()
	_, ok := s.Buckets[b]
	if !ok {
		s.Buckets[b] = 0
	}
}

func (s *Stopwatch) Stop(b string) {
	start, ok := s.BucketStarts[b]
	if !ok {
		return
	}
	s.Buckets[b] += time.Since(start)
	delete(s.BucketStarts, b)
}

func (s *Stopwatch) Results() string {
	out := ""
	for k, v := range s.Buckets {
		out += fmt.Sprintf("%s: %.4f\n", k, v.Seconds())
	}
	return out
}
