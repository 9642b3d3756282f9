package chain

import (
	"errors"
	"fmt"
)

var (
	// ErrChainCallFailed wraps every failure coming from the node or the
	// contracts. The cause stays available through errors.Is / errors.As.
	ErrChainCallFailed = errors.New("chain call failed")

	// ErrMintDisabled is returned when no NFT contract is configured.
	ErrMintDisabled = errors.New("minting disabled: no NFT contract configured")

	// ErrTxReverted is returned when a mined transaction has failed status.
	ErrTxReverted = errors.New("transaction reverted")

	// ErrTokenIDMissing is returned when a mint receipt carries no Transfer
	// event from the NFT contract.
	ErrTokenIDMissing = errors.New("mint receipt has no token id")
)

func mapChainError(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrChainCallFailed, op, err)
}
