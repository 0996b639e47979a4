package padstream

// Option configures a [Connector] at construction time.
type Option func(*Connector)

// WithRemapper binds r into every Controller the Connector produces.
// Without this option, Controllers get the identity Remapper: every
// abstract event passes through unchanged.
func WithRemapper(r Remapper) Option {
	return func(c *Connector) {
		c.remap = r
	}
}
