package browser

// NewOpenerWith creates an Opener around a custom launcher.
func NewOpenerWith(open func(url string) error) *Opener {
	return &Opener{open: open}
}
