package chain

import (
	"context"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// ENSRegistryAddress is the ENS registry on mainnet and most testnets.
var ENSRegistryAddress = common.HexToAddress("0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e")

const reverseSuffix = ".addr.reverse"

// Namehash implements the ENS name hashing algorithm (EIP-137).
func Namehash(name string) common.Hash {
	var node common.Hash
	if name == "" {
		return node
	}

	labels := strings.Split(name, ".")
	for i := len(labels) - 1; i >= 0; i-- {
		label := crypto.Keccak256([]byte(labels[i]))
		node = crypto.Keccak256Hash(node.Bytes(), label)
	}
	return node
}

// ReverseNode returns the namehash of <hex>.addr.reverse for account.
func ReverseNode(account common.Address) common.Hash {
	return Namehash(strings.ToLower(account.Hex()[2:]) + reverseSuffix)
}

type ensResolver struct {
	backend     bind.ContractBackend
	registry    *bind.BoundContract
	resolverABI abi.ABI
}

// NewENSResolver resolves primary names through the registry at
// ENSRegistryAddress. The reverse record is accepted only when the forward
// record points back at the same account.
func NewENSResolver(backend bind.ContractBackend) (NameResolver, error) {
	registryABI, err := parseABI("ens registry", ensRegistryABIJSON)
	if err != nil {
		return nil, err
	}
	resolverABI, err := parseABI("ens resolver", ensResolverABIJSON)
	if err != nil {
		return nil, err
	}

	return &ensResolver{
		backend:     backend,
		registry:    bind.NewBoundContract(ENSRegistryAddress, registryABI, backend, backend, backend),
		resolverABI: resolverABI,
	}, nil
}

func (r *ensResolver) LookupName(ctx context.Context, account common.Address) (string, error) {
	node := ReverseNode(account)

	resolver, err := r.resolverFor(ctx, node)
	if err != nil || resolver == nil {
		return "", err
	}

	var out []any
	if err = resolver.Call(&bind.CallOpts{Context: ctx}, &out, "name", node); err != nil {
		return "", mapChainError("ens name", err)
	}
	name := *abi.ConvertType(out[0], new(string)).(*string)
	if name == "" {
		return "", nil
	}

	forwardNode := Namehash(name)
	forward, err := r.resolverFor(ctx, forwardNode)
	if err != nil || forward == nil {
		return "", err
	}

	out = out[:0]
	if err = forward.Call(&bind.CallOpts{Context: ctx}, &out, "addr", forwardNode); err != nil {
		return "", mapChainError("ens addr", err)
	}
	if *abi.ConvertType(out[0], new(common.Address)).(*common.Address) != account {
		return "", nil
	}

	return name, nil
}

func (r *ensResolver) resolverFor(ctx context.Context, node common.Hash) (*bind.BoundContract, error) {
	var out []any
	if err := r.registry.Call(&bind.CallOpts{Context: ctx}, &out, "resolver", node); err != nil {
		return nil, mapChainError("ens resolver", err)
	}

	addr := *abi.ConvertType(out[0], new(common.Address)).(*common.Address)
	if addr == (common.Address{}) {
		return nil, nil
	}
	return bind.NewBoundContract(addr, r.resolverABI, r.backend, r.backend, r.backend), nil
}

type noopResolver struct{}

// NoopResolver never finds a name. It is used when ENS is not configured.
func NoopResolver() NameResolver { return noopResolver{} }

func (noopResolver) LookupName(context.Context, common.Address) (string, error) { return "", nil }

// ShortAddress renders account as 0x1234...abcd.
func ShortAddress(account common.Address) string {
	h := account.Hex()
	return h[:6] + "..." + h[len(h)-4:]
}

// DisplayName returns the resolved name of account, or its short form when
// no name is set or the lookup fails.
func DisplayName(ctx context.Context, r NameResolver, account common.Address) string {
	name, err := r.LookupName(ctx, account)
	if err != nil || name == "" {
		return ShortAddress(account)
	}
	return name
}
