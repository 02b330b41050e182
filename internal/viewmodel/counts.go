package viewmodel

// Counts maps a category to its number of records. Keys holds the
// categories in first-seen order for display.
type Counts struct {
	Keys   []string
	Values map[string]int
}

func newCounts() Counts {
	return Counts{Keys: []string{}, Values: map[string]int{}}
}

func (c *Counts) add(key string) {
	if _, ok := c.Values[key]; !ok {
		c.Keys = append(c.Keys, key)
	}
	c.Values[key]++
}

// Get returns the count for key, 0 when absent.
func (c Counts) Get(key string) int {
	return c.Values[key]
}

func (c Counts) Len() int {
	return len(c.Keys)
}

// Total sums all counts.
func (c Counts) Total() int {
	n := 0
	for _, v := range c.Values {
		n += v
	}
	return n
}
