package backtrack

// Captures is the capture table of one match attempt. Group 0 is the whole
// match; groups 1..n are the pattern's parenthesized groups.
//
// Spans are stored as byte offsets into the input, two slots per group, with
// -1 marking a group that has not matched.
type Captures struct {
	slots []int
}

// NewCaptures returns an empty table for a pattern with numGroups capturing
// groups.
func NewCaptures(numGroups int) *Captures {
	c := &Captures{slots: make([]int, 2*(numGroups+1))}
	c.Reset()
	return c
}

// Reset marks every group as unmatched.
func (c *Captures) Reset() {
	for i := range c.slots {
		c.slots[i] = -1
	}
}

// Len returns the number of groups including group 0.
func (c *Captures) Len() int {
	return len(c.slots) / 2
}

// Span returns the byte offsets recorded for group i.
func (c *Captures) Span(i int) (start, end int, ok bool) {
	if i < 0 || 2*i+1 >= len(c.slots) || c.slots[2*i] < 0 {
		return -1, -1, false
	}
	return c.slots[2*i], c.slots[2*i+1], true
}

// Set records the span of group i.
func (c *Captures) Set(i, start, end int) {
	c.slots[2*i] = start
	c.slots[2*i+1] = end
}

// Text returns the text captured by group i in input, and whether the group
// matched.
func (c *Captures) Text(input string, i int) (string, bool) {
	start, end, ok := c.Span(i)
	if !ok {
		return "", false
	}
	return input[start:end], true
}

// Clone returns an independent copy of c.
func (c *Captures) Clone() *Captures {
	return &Captures{slots: append([]int(nil), c.slots...)}
}

// CopyFrom overwrites c with the contents of o. Both tables must belong to
// the same pattern.
func (c *Captures) CopyFrom(o *Captures) {
	copy(c.slots, o.slots)
}

// Slots returns the raw slot slice, [start0, end0, start1, end1, ...].
// The slice aliases c.
func (c *Captures) Slots() []int {
	return c.slots
}

func (c *Captures) save() []int {
	return append([]int(nil), c.slots...)
}

func (c *Captures) restore(saved []int) {
	copy(c.slots, saved)
}
