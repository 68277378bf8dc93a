package memo

import "errors"

// ErrNilFunc is returned by Call when the memoizer was built without a function.
var ErrNilFunc = errors.New("memo: nil function")

// Func is the wrapped computation: one key in, one value out, may fail.
type Func[V any] func(key string) (V, error)

// Cache is the surface shared by Memoizer and Sync.
type Cache[V any] interface {
	Call(key string) (V, error)
	Size() int
	Clear()
}

var (
	_ Cache[int] = (*Memoizer[int])(nil)
	_ Cache[int] = (*Sync[int])(nil)
)
