package question

// Func is a generic question: it asks through the console and produces a
// value of type T. A Question is equivalent to a Func[string].
type Func[T any] func(con Console) (T, error)

// ChainFuncs composes fs into a single Func that calls each in order and
// returns the last result. With no funcs, the result returns T's zero value.
func ChainFuncs[T any](fs ...Func[T]) Func[T] {
	return func(con Console) (T, error) {
		var last T
		for _, f := range fs {
			if f == nil {
				continue
			}
			v, err := f(con)
			if err != nil {
				var zero T
				return zero, err
			}
			last = v
		}
		return last, nil
	}
}
