package core

// SyncMode determines when log appends are synced to disk.
type SyncMode int

const (
	// SyncAlways - fsync after every append (slowest, most durable)
	SyncAlways SyncMode = iota
	// SyncNever - leave syncing to the operating system (fastest, least durable)
	SyncNever
)

type config struct {
	syncMode SyncMode
}

// Option configures a Store at Open time.
type Option func(*config)

// WithSyncMode controls when appended records are flushed to stable
// storage. The default is SyncAlways.
func WithSyncMode(mode SyncMode) Option {
	return func(c *config) {
		c.syncMode = mode
	}
}
