package event

import "github.com/drake/hooklab/loader"

// Type identifies the source of the message
type Type int

const (
	UserInput  Type = iota // A line typed at the console
	LoadResult             // A fetch completed off the loop
	InputClosed            // Stdin reached EOF
)

// Event is the universal packet sent to the console event loop
type Event struct {
	Type    Type
	Payload string        // For UserInput
	Result  loader.Result // For LoadResult
}
