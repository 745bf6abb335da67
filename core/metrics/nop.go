package metrics

type nopCounter struct{}

func (nopCounter) Inc() {}

type nopGauge struct{}

func (nopGauge) Set(float64) {}

type nopTimer struct{}

func (nopTimer) ObserveDuration() {}

// NopCounter returns a Counter that discards all observations.
func NopCounter() Counter { return nopCounter{} }

// NopGauge returns a Gauge that discards all observations.
func NopGauge() Gauge { return nopGauge{} }

// NopTimer returns a Timer that discards all observations.
func NopTimer() Timer { return nopTimer{} }
