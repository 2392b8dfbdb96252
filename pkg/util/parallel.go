package util

// ParCollect applies a given function to every job in parallel using
// go-routines, concatenating the results.  Jobs must be independent of each
// other, and the order of the concatenated results is unspecified.
func ParCollect[J any, R any](jobs []J, fn func(J) []R) []R {
	var results []R
	// Construct a communication channel for results.
	c := make(chan []R, 100)
	// Launch one worker per job
	for _, job := range jobs {
		go func(job J) {
			// Send outcome back
			c <- fn(job)
		}(job)
	}
	// Read responses back from each job.
	for range jobs {
		results = append(results, <-c...)
	}
	// Done
	return results
}
