package physics

// Composition maps an element to the number of parts of it in a planet. Parts are relative
// quantities; an empty or all-zero composition is valid and means there is no matter at all.
type Composition map[Element]float64

// Total returns the sum of all parts.
func (c Composition) Total() float64 {
	total := 0.0
	for _, parts := range c {
		total += parts
	}
	return total
}

// Parts returns the parts of e, zero when absent.
func (c Composition) Parts(e Element) float64 {
	return c[e]
}

// Has reports whether e contributes a positive number of parts.
func (c Composition) Has(e Element) bool {
	return c[e] > 0
}

// HasAll reports whether every element in es is present.
func (c Composition) HasAll(es ...Element) bool {
	for _, e := range es {
		if !c.Has(e) {
			return false
		}
	}
	return true
}

// Percent returns the share of e in percent of the total parts. It is zero when the
// composition is empty.
func (c Composition) Percent(e Element) float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	return c[e] / total * 100
}

// PercentSum adds up the percentages of es.
func (c Composition) PercentSum(es ...Element) float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	sum := 0.0
	for _, e := range es {
		sum += c[e]
	}
	return sum / total * 100
}

// Percentages returns the percentage of every element with positive parts.
func (c Composition) Percentages() map[Element]float64 {
	out := make(map[Element]float64, len(c))
	total := c.Total()
	if total == 0 {
		return out
	}
	for e, parts := range c {
		if parts > 0 {
			out[e] = parts / total * 100
		}
	}
	return out
}

// Clone returns an independent copy.
func (c Composition) Clone() Composition {
	out := make(Composition, len(c))
	for e, parts := range c {
		out[e] = parts
	}
	return out
}
