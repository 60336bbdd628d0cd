package common

const (
	// MaxSeedLength is the maximum length of a single seed part in bytes.
	MaxSeedLength = 32

	// MaxSeeds is the maximum number of seed parts, bump included.
	MaxSeeds = 16

	// DefaultDecimals is the decimal precision applied to the initial supply.
	DefaultDecimals uint8 = 6

	// UserBalanceScale multiplies the initial balance of a new user account.
	UserBalanceScale uint64 = 1000

	// DefaultEntropyThreshold is the minimum distinct byte count of account data.
	DefaultEntropyThreshold = 16

	// MaxBasisPoints is 100.00%.
	MaxBasisPoints uint16 = 10000
)

// ProgramStateSeed is the namespace tag of the singleton program state account.
var ProgramStateSeed = []byte("program_state")
