package viewport

// Classifier tracks the current Class of a Source. Its subscription is held
// between Start and Stop only.
type Classifier struct {
	bp          Breakpoints
	class       Class
	unsubscribe func()

	// OnChange, if set, is called once per classification.
	OnChange func(Class)
}

// NewClassifier creates an unmeasured classifier.
func NewClassifier(bp Breakpoints) *Classifier {
	return &Classifier{bp: bp}
}

// Class returns the current bucket.
func (c *Classifier) Class() Class {
	return c.class
}

// Start classifies the current width, if known, and subscribes to changes.
// Starting a running classifier does nothing.
func (c *Classifier) Start(src Source) {
	if c.unsubscribe != nil {
		return
	}
	if w, ok := src.Width(); ok {
		c.update(w)
	}
	c.unsubscribe = src.Subscribe(c.update)
}

// Stop releases the subscription. The last class is kept.
func (c *Classifier) Stop() {
	if c.unsubscribe == nil {
		return
	}
	c.unsubscribe()
	c.unsubscribe = nil
}

func (c *Classifier) update(width int) {
	c.class = Classify(width, c.bp)
	if c.OnChange != nil {
		c.OnChange(c.class)
	}
}
