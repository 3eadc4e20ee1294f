package mines

var numberNames = [9]string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight",
}

// Spoiler wraps a symbol name in the spoiler-tag convention used for
// masked cells. Reproducible from the name and spacing flag alone.
func Spoiler(name string, spacing bool) string {
	if spacing {
		return "|| :" + name + ": ||"
	}
	return "||:" + name + ":||"
}

func emoji(name string) string {
	return ":" + name + ":"
}

// SymbolSet holds the rendered token for every cell state, derived
// once at generator construction.
type SymbolSet struct {
	sep        string
	mineMasked string
	mineOpen   string
	numMasked  [9]string
	numOpen    [9]string
}

func NewSymbolSet(mineName string, spacing bool) SymbolSet {
	s := SymbolSet{
		mineMasked: Spoiler(mineName, spacing),
		mineOpen:   emoji(mineName),
	}
	if spacing {
		s.sep = " "
	}
	for i, name := range numberNames {
		s.numMasked[i] = Spoiler(name, spacing)
		s.numOpen[i] = emoji(name)
	}
	return s
}

func (s SymbolSet) Cell(c Cell) string {
	switch {
	case c.Mined && c.Revealed:
		return s.mineOpen
	case c.Mined:
		return s.mineMasked
	case c.Revealed:
		return s.numOpen[c.Count]
	default:
		return s.numMasked[c.Count]
	}
}
