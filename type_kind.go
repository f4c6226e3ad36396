package aggie

// Kind distinguishes how a project is funded. The Summary sheet carries
// it in the "Project Type" column and only two values are valid there;
// anything else means the report layout changed under us and reading
// must stop.
type Kind int

const (
	// Sponsored projects are funded by an external award (grants).
	Sponsored Kind = iota
	// Internal projects are department-funded. They all share one
	// generic project label and are told apart by their task label.
	Internal
)

func (k Kind) String() string {
	switch k {
	case Sponsored:
		return "Sponsored"
	case Internal:
		return "Internal"
	default:
		return "unknown"
	}
}

// ParseKind parses the "Project Type" cell of a Summary row. The match
// ignores case and surrounding whitespace; an unknown value is a schema
// error reported by the caller with the cell's position.
func ParseKind(s string) (Kind, bool) {
	switch normalizeToken(s) {
	case "sponsored":
		return Sponsored, true
	case "internal":
		return Internal, true
	default:
		return 0, false
	}
}
