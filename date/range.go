package date

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// Window returns the range [from, from+days].
func Window(from Date, days int) Range { return Range{From: from, To: from.Add(days)} }

// Contains return true if date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// String formats the range as "from..to".
func (r Range) String() string { return r.From.String() + ".." + r.To.String() }
