package predef

import "github.com/es-debug/latte-runtime/internal/domain"

var signatures = []domain.Signature{
	domain.NewSignature("printInt", domain.TypeVoid, false, domain.NewParam("a", domain.TypeInt)),
	domain.NewSignature("printString", domain.TypeVoid, false, domain.NewParam("a", domain.TypeString)),
	domain.NewSignature("error", domain.TypeVoid, false),
	domain.NewSignature("readInt", domain.TypeInt, false),
	domain.NewSignature("readString", domain.TypeString, false),
	domain.NewSignature(
		"Concat",
		domain.TypeString,
		true,
		domain.NewParam("s1", domain.TypeString),
		domain.NewParam("s2", domain.TypeString),
	),
}

// Signatures returns the predefined functions in declaration order.
func Signatures() []domain.Signature {
	res := make([]domain.Signature, 0, len(signatures))
	for _, s := range signatures {
		s.Params = append([]domain.Param(nil), s.Params...)
		res = append(res, s)
	}

	return res
}

func Lookup(name string) (domain.Signature, bool) {
	for _, s := range Signatures() {
		if s.Name == name {
			return s, true
		}
	}

	return domain.Signature{}, false
}
