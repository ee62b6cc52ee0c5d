package writer

//
// Column is an enum that represents a column of the CSV output, in output order.
//
type Column int

const (
	StartTime Column = iota
	Interval
	Open
	High
	Low
	Close
	Volume
	Count
	Average
)

var columns = [...]string{"StartTime", "Interval", "Open", "High", "Low", "Close", "Volume", "Count", "Average"}

func (o Column) String() string {
	return columns[o]
}

func header() []string {
	return append([]string(nil), columns[:]...)
}
