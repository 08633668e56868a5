package types

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/Zanda256/interest-bearing-vault/types/address"
)

// Authorization proves that a debit from a balance account is allowed. It is
// either a direct signature by the owner, already authenticated by the
// message layer, or a seed capability of a program-derived owner that the
// transfer pathway re-derives before accepting.
type Authorization struct {
	authority address.Address
	program   address.Address
	seeds     [][]byte
	bump      uint8
	derived   bool
}

// SignedBy authorizes on behalf of an owner who signed the enclosing message.
func SignedBy(owner address.Address) Authorization {
	return Authorization{authority: owner}
}

// SignedWithSeeds authorizes on behalf of the address program derives from
// seeds and bump.
func SignedWithSeeds(program address.Address, bump uint8, seeds ...[]byte) (Authorization, error) {
	withBump := make([][]byte, 0, len(seeds)+1)
	withBump = append(withBump, seeds...)
	withBump = append(withBump, []byte{bump})

	authority, err := address.CreateProgramAddress(withBump, program)
	if err != nil {
		return Authorization{}, errorsmod.Wrapf(ErrUnauthorized, "invalid signer seeds: %v", err)
	}
	return Authorization{
		authority: authority,
		program:   program,
		seeds:     withBump,
		bump:      bump,
		derived:   true,
	}, nil
}

// Authority is the address this authorization speaks for.
func (a Authorization) Authority() address.Address {
	return a.authority
}

// Verify checks the authorization against the owner of the debited account.
func (a Authorization) Verify(owner address.Address) error {
	if a.authority.IsZero() {
		return errorsmod.Wrap(ErrUnauthorized, "missing authorization")
	}
	if a.derived {
		derived, err := address.CreateProgramAddress(a.seeds, a.program)
		if err != nil || derived != a.authority {
			return errorsmod.Wrap(ErrUnauthorized, "signer seeds do not derive the authority")
		}
	}
	if a.authority != owner {
		return errorsmod.Wrapf(ErrOwnerMismatch, "expected %s, got %s", owner, a.authority)
	}
	return nil
}
