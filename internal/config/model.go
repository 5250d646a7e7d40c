package config

// Params holds the two run parameters as decimal text. Values are validated
// by the caller with the same rules as command-line arguments.
type Params struct {
	Threshold string
	Limit     string
}
