package commands

// WithGetwd replaces the working directory lookup.
func (c *CLI) WithGetwd(getwd func() (string, error)) *CLI {
	c.getwd = getwd
	return c
}

// WithInteractive replaces the terminal detection.
func (c *CLI) WithInteractive(interactive bool) *CLI {
	c.interactive = func() bool { return interactive }
	return c
}
