package domain

import "time"

// ProbeStatus is the outcome of a single connect-query-disconnect attempt.
type ProbeStatus string

const (
	ProbeStatusSuccess ProbeStatus = "success"
	ProbeStatusFailure ProbeStatus = "failure"
)

// ProbeResult is created fresh for every probe and never persisted.
// Data holds the shaped first row (nil on failure or when the query returned no rows).
type ProbeResult struct {
	Target   string
	Query    string
	Status   ProbeStatus
	Message  string
	Data     any
	Err      error
	Duration time.Duration
}

// OK reports whether the probe succeeded.
func (r ProbeResult) OK() bool {
	return r.Status == ProbeStatusSuccess
}

// Succeeded builds a successful result carrying the shaped row.
func Succeeded(target, query string, data any, took time.Duration) ProbeResult {
	return ProbeResult{
		Target:   target,
		Query:    query,
		Status:   ProbeStatusSuccess,
		Message:  "connected",
		Data:     data,
		Duration: took,
	}
}

// Failed builds a failed result. Every failure kind collapses into one
// status; Message is the underlying error's text, taken from Cause() when
// err is a coded wrapper.
func Failed(target, query string, err error, took time.Duration) ProbeResult {
	msg := "unknown error"
	if c, ok := err.(interface{ Cause() string }); ok {
		msg = c.Cause()
	} else if err != nil {
		msg = err.Error()
	}
	return ProbeResult{
		Target:   target,
		Query:    query,
		Status:   ProbeStatusFailure,
		Message:  msg,
		Err:      err,
		Duration: took,
	}
}
