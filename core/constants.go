package core

const (
	// DataFileName is the name of the append-only log file inside a
	// store directory.
	DataFileName = "data.jsonl"

	DefaultDirectoryPath = "./"
)
