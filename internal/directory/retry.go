package directory

import "time"

// DefaultRoleRetry matches the provider's throttling guidance for role
// listings: up to 10 attempts with a fixed 750ms pause.
var DefaultRoleRetry = RetryPolicy{
	MaxAttempts: 10,
	Delay:       750 * time.Millisecond,
	Sleep:       time.Sleep,
}

// RetryPolicy is a bounded fixed-delay retry. The operation decides per
// error whether it is retryable; non-retryable errors end the loop at once.
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration
	// Sleep is injectable for tests.
	Sleep func(time.Duration)
}

// Do runs op until it succeeds, reports a non-retryable error, or the
// attempt budget is spent. The last error is returned.
func (p RetryPolicy) Do(op func() (retry bool, err error)) error {
	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	var err error
	for attempt := 0; attempt < p.MaxAttempts; attempt++ {
		var retry bool
		retry, err = op()
		if err == nil {
			return nil
		}
		if !retry {
			return err
		}
		if attempt < p.MaxAttempts-1 {
			sleep(p.Delay)
		}
	}
	return err
}
