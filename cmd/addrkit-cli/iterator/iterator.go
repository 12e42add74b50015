// Package iterator abstracts where address candidates come from, so the
// check command can treat an argument, a text stream and a CSV column alike.
package iterator

// New builds a Source from three closures: next reports whether another
// value is pending, value yields it and close runs any cleanup, optionally
// surfacing an error held back during iteration.
func New(next func() bool, value func() (string, error), close func() error) *Source {
	return &Source{
		next:  next,
		value: value,
		close: close,
	}
}

type Source struct {
	next  func() bool
	value func() (string, error)
	close func() error
}

func (s *Source) Next() bool {
	return s.next()
}

func (s *Source) Value() (string, error) {
	return s.value()
}

func (s *Source) Close() error {
	return s.close()
}
