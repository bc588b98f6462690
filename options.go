package avlmap

type options struct {
	capacity int
}

// Option configures a Map at construction.
type Option func(*options)

// WithCapacity preallocates room for n entries. Maps grow past n as needed.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}
