package byml

// Tracker is notified of every in-place write. byml/dirty.Tracker satisfies it.
type Tracker interface {
	// Add marks length bytes at absolute offset off as modified.
	Add(off, length int)
}

type options struct {
	nameIndex bool
	tracker   Tracker
}

// Option configures Open.
type Option func(*options)

// WithNameIndex makes named lookups build a name→index map per dictionary on
// first use instead of scanning linearly each time.
func WithNameIndex() Option {
	return func(o *options) { o.nameIndex = true }
}

// WithTracker registers t to be told about every scalar write.
func WithTracker(t Tracker) Option {
	return func(o *options) { o.tracker = t }
}
