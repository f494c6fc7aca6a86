package export

import (
	"errors"
	"fmt"

	"github.com/chewxy/sexp"
)

var errMalformed = errors.New("export: malformed s-expression")

// VerifySexp checks that out is a single, non-empty s-expression list.
func VerifySexp(out string) error {
	sexps, err := sexp.ParseString(out)
	if err != nil {
		return fmt.Errorf("%w: %v", errMalformed, err)
	}
	if len(sexps) != 1 {
		return fmt.Errorf("%w: expected 1 top-level expression, got %d", errMalformed, len(sexps))
	}
	if sexps[0].IsLeaf() || sexps[0].LeafCount() == 0 {
		return fmt.Errorf("%w: top-level expression is not a list", errMalformed)
	}
	return nil
}
