package loader

import (
	"errors"
	"fmt"

	"github.com/bft-labs/modbridge/pkg/cabi"
)

// ABIVersion reports the version exported by tab through modbridge_abi_version.
// ok is false when the symbol is absent.
func ABIVersion(tab SymbolTable) (version uint32, ok bool, err error) {
	fn, err := tab.Symbol(SymABIVersion)
	if errors.Is(err, ErrSymbolNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return callVersion(fn), true, nil
}

// CheckABI fails with ErrABIMismatch when tab exports a version other than
// cabi.ABIVersion. Libraries without a version symbol pass.
func CheckABI(tab SymbolTable) error {
	v, ok, err := ABIVersion(tab)
	if err != nil || !ok {
		return err
	}
	if v != cabi.ABIVersion {
		return fmt.Errorf("%w: library reports %d, host expects %d", ErrABIMismatch, v, cabi.ABIVersion)
	}
	return nil
}
