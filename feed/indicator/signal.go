package indicator

//
// Signal is an enum that represents what a moving average crossover says about the trend.
//
type Signal int

const (
	None Signal = iota
	UptrendDetected
	DowntrendDetected
)

func (o Signal) String() string {
	return [...]string{"None", "UptrendDetected", "DowntrendDetected"}[o]
}
