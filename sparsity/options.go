// SPDX-License-Identifier: MIT

package sparsity

// DefaultStrict enables the column range check in NewPattern.
const DefaultStrict = true

// Option configures pattern construction.
type Option func(*options)

type options struct {
	strict bool // DefaultStrict
}

// WithTrustedInput skips the O(nnz) column scan. The O(N) offset checks
// remain, so Row and Adjacency stay in bounds; out-of-range columns then
// surface later as errors from the consumers.
func WithTrustedInput() Option {
	return func(o *options) { o.strict = false }
}

// WithStrictValidation restores the default full structure check.
func WithStrictValidation() Option {
	return func(o *options) { o.strict = true }
}

func gatherOptions(opts []Option) options {
	o := options{strict: DefaultStrict}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
