package animation

import (
	"fmt"
	"strconv"
	"strings"
)

const generatedNamePrefix = "Animation "

// PeekNextName returns the name the next generated animation will get.
func (c *Collection) PeekNextName() string {
	return fmt.Sprintf("%s%d", generatedNamePrefix, c.created+1)
}

// TakeNextName returns the next generated name and consumes it.
func (c *Collection) TakeNextName() string {
	name := c.PeekNextName()
	c.created++
	return name
}

// nextFreeName returns the first generated name not in use and the counter
// value that consumes it. The counter itself is left alone.
func (c *Collection) nextFreeName() (string, int) {
	n := c.created
	for {
		n++
		name := fmt.Sprintf("%s%d", generatedNamePrefix, n)
		if !c.Contains(name) {
			return name, n
		}
	}
}

// CreatedCount reports how many names have been generated this session.
func (c *Collection) CreatedCount() int {
	return c.created
}

// generatedNumber extracts N from "Animation N".
func generatedNumber(name string) (int, bool) {
	rest, ok := strings.CutPrefix(name, generatedNamePrefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// reconcileCreated moves the name counter past every generated name in the
// collection so that loaded documents do not block CreateAnimation.
func (c *Collection) reconcileCreated() {
	for _, a := range c.animations {
		if n, ok := generatedNumber(a.Name); ok && n > c.created {
			c.created = n
		}
	}
}
