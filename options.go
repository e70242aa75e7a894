package prefixid

// DefaultLength is the unique-part length applied to definitions that do not
// declare one, unless overridden with WithDefaultLength.
const DefaultLength = 8

// Option configures registry construction.
type Option func(*config)

// config holds the construction-time configuration.
type config struct {
	defaultLength int
	generator     Generator
}

// defaultConfig returns the default construction configuration.
func defaultConfig() *config {
	return &config{
		defaultLength: DefaultLength,
		generator:     NewRandomGenerator(),
	}
}

// WithDefaultLength overrides the unique-part length used by definitions with
// a zero Length. Build fails with ErrInvalidLength if n is not positive.
func WithDefaultLength(n int) Option {
	return func(c *config) {
		c.defaultLength = n
	}
}

// WithGenerator replaces the default crypto/rand generator. Passing nil keeps
// the default. The generator's output is validated on every Create call, so
// it does not need to be trusted.
func WithGenerator(g Generator) Option {
	return func(c *config) {
		if g != nil {
			c.generator = g
		}
	}
}
