package portfolio

// Direction is the committed side of a position. It is fixed by the sign of
// the first transaction and never changes while the position stays open.
type Direction int

const (
	Short     Direction = -1
	Undefined Direction = 0
	Long      Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Long:
		return "long"
	case Short:
		return "short"
	default:
		return "undefined"
	}
}

// directionOf maps a signed quantity to the side it belongs to.
func directionOf(quantity float64) Direction {
	switch {
	case quantity > 0:
		return Long
	case quantity < 0:
		return Short
	default:
		return Undefined
	}
}
