package config

type Resolver interface {
	Resolve() (Values, error)
}

func DefaultResolver() Resolver {
	return defaultResolver{}
}

type defaultResolver struct{}

func (defaultResolver) Resolve() (Values, error) {
	return Load()
}
