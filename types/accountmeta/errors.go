package accountmeta

import errorsmod "cosmossdk.io/errors"

// Codespace is the registered error namespace of this package.
const Codespace = "accountmeta"

var (
	ErrSeedConfigTooLarge      = errorsmod.Register(Codespace, 1, "seed configuration exceeds 32 bytes")
	ErrInvalidSeedConfig       = errorsmod.Register(Codespace, 2, "invalid seed configuration")
	ErrInvalidList             = errorsmod.Register(Codespace, 3, "invalid extra account meta list")
	ErrDiscriminatorMismatch   = errorsmod.Register(Codespace, 4, "extra account meta list discriminator mismatch")
	ErrAccountIndexOutOfRange  = errorsmod.Register(Codespace, 5, "seed references an account index out of range")
	ErrInstructionDataTooShort = errorsmod.Register(Codespace, 6, "seed references instruction data beyond its length")
	ErrUnsupportedMeta         = errorsmod.Register(Codespace, 7, "unsupported extra account meta discriminator")
)
