package chain

import "io"

// Report is the machine-readable outcome of a request after traversal.
type Report struct {
	Valid    bool     `json:"valid"`
	Failures []string `json:"failures,omitempty"`
	Keys     []string `json:"keys"`
}

// Report summarizes the request.
func (r *Request) Report() Report {
	report := Report{Valid: r.valid, Keys: r.Keys()}
	for _, failure := range r.failures {
		report.Failures = append(report.Failures, failure.Error())
	}
	return report
}

// Encode writes the report to w as a single JSON line.
func (r Report) Encode(w io.Writer) error {
	return json.NewEncoder(w).Encode(r)
}
