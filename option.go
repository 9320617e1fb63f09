package dlist

type options struct {
	capacity int
}

type Option func(opts *options)

// WithCapacity preallocates room for n elements. The list still grows past n.
func WithCapacity(n int) Option {
	return func(opts *options) {
		opts.capacity = n
	}
}
