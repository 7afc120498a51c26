package index

// Reserved symbol literals. Every vocabulary managed by this package
// begins with these seven symbols, in this order.
const (
	UnknownSymbol = "<UNK>"
	PadSymbol     = "<P>"
	StartSymbol   = "<S>"
	EndSymbol     = "<E>"
	MaskSymbol    = "<MASK>"
	Task1Symbol   = "<TASK1>"
	Task2Symbol   = "<TASK2>"
)

// NumSpecial is the number of reserved symbols at the head of every
// vocabulary.
const NumSpecial = 7

// Special identifies one of the reserved vocabulary symbols.
type Special int

// Reserved symbols in vocabulary order.
const (
	Unknown Special = iota // out-of-vocabulary replacement
	Pad                    // length filler
	Start                  // beginning-of-sequence marker
	End                    // end-of-sequence marker
	Mask                   // hidden-position marker
	Task1                  // task tag for multi-task setups
	Task2                  // task tag for multi-task setups
)

var reservedSymbols = [NumSpecial]string{
	UnknownSymbol,
	PadSymbol,
	StartSymbol,
	EndSymbol,
	MaskSymbol,
	Task1Symbol,
	Task2Symbol,
}

// Symbol returns the string literal for the reserved symbol.
func (s Special) Symbol() string {
	return reservedSymbols[s]
}

// String implements fmt.Stringer.
func (s Special) String() string {
	switch s {
	case Unknown:
		return "unknown"
	case Pad:
		return "pad"
	case Start:
		return "start"
	case End:
		return "end"
	case Mask:
		return "mask"
	case Task1:
		return "task1"
	case Task2:
		return "task2"
	default:
		return "invalid"
	}
}

// Reserved returns a copy of the reserved symbols in vocabulary order.
func Reserved() []string {
	out := make([]string, NumSpecial)
	copy(out, reservedSymbols[:])
	return out
}
