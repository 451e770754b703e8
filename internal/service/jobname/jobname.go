// Package jobname generates transcription job names.
//
// Every job name carries a fixed prefix so the job-state event rule can tell
// this pipeline's jobs apart from unrelated jobs in the same account. The
// suffix is 12 random lowercase-alphanumeric characters; collisions are not
// checked (36^12 names), so no idempotency key exists beyond the name itself.
package jobname

import "math/rand"

// Prefix is shared with the job-state event filter. Changing it requires
// changing the deployed EventBridge rule as well.
const Prefix = "summarizer-"

const (
	alphabet  = "abcdefghijklmnopqrstuvwxyz0123456789"
	suffixLen = 12
)

// Generator produces random job names. Safe for concurrent use.
type Generator struct{}

// New creates a job name generator.
func New() *Generator {
	return &Generator{}
}

// Next returns a fresh job name: Prefix plus a 12-character random suffix.
func (g *Generator) Next() string {
	b := make([]byte, suffixLen)
	for i := range b {
		b[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return Prefix + string(b)
}
