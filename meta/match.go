package meta

// Match represents a successful match with its capture groups.
//
// A Match contains:
//   - Start position (inclusive)
//   - End position (exclusive)
//   - The span of every capture group
//   - Reference to the original input
//
// Positions are byte offsets into the input.
//
// Example:
//
//	engine, _ := meta.Compile(`(\w+) \1`)
//	m := engine.Find("say hello hello")
//	println(m.String())  // "hello hello"
//	g, _ := m.Group(1)
//	println(g)           // "hello"
type Match struct {
	input string

	// slots holds [start, end) pairs, group 0 first; -1 marks a group
	// that did not participate.
	slots []int
}

// NewMatch creates a Match from a slot slice of [start, end) pairs with
// group 0 first. The slots are copied.
func NewMatch(input string, slots []int) *Match {
	return &Match{
		input: input,
		slots: append([]int(nil), slots...),
	}
}

// Start returns the inclusive start position of the match.
func (m *Match) Start() int {
	return m.slots[0]
}

// End returns the exclusive end position of the match.
func (m *Match) End() int {
	return m.slots[1]
}

// Len returns the length of the match in bytes.
func (m *Match) Len() int {
	return m.End() - m.Start()
}

// String returns the matched text.
func (m *Match) String() string {
	return m.input[m.Start():m.End()]
}

// IsEmpty returns true if the match has zero length.
//
// Empty matches occur with patterns like "" or "a?" that can match
// without consuming input.
func (m *Match) IsEmpty() bool {
	return m.Start() == m.End()
}

// NumGroups returns the number of groups including group 0.
func (m *Match) NumGroups() int {
	return len(m.slots) / 2
}

// GroupIndex returns the byte span of group i, or (-1, -1) if the group did
// not participate in the match or i is out of range.
func (m *Match) GroupIndex(i int) (start, end int) {
	if i < 0 || i >= m.NumGroups() || m.slots[2*i] < 0 {
		return -1, -1
	}
	return m.slots[2*i], m.slots[2*i+1]
}

// Group returns the text of group i and whether it participated.
func (m *Match) Group(i int) (string, bool) {
	start, end := m.GroupIndex(i)
	if start < 0 {
		return "", false
	}
	return m.input[start:end], true
}

// Groups returns the text of every group, group 0 first. Groups that did
// not participate are "".
func (m *Match) Groups() []string {
	out := make([]string, m.NumGroups())
	for i := range out {
		out[i], _ = m.Group(i)
	}
	return out
}

// Slots returns a copy of the raw [start, end) pairs, group 0 first.
func (m *Match) Slots() []int {
	return append([]int(nil), m.slots...)
}
