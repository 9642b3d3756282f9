package chain

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/crypto"
)

const notesABIJSON = `[
  {"type":"function","name":"addNote","stateMutability":"nonpayable",
   "inputs":[{"name":"content","type":"string","internalType":"string"}],"outputs":[]},
  {"type":"function","name":"getNotesByUser","stateMutability":"view",
   "inputs":[{"name":"user","type":"address","internalType":"address"}],
   "outputs":[{"name":"","type":"tuple[]","internalType":"struct EtherNotes.Note[]","components":[
     {"name":"author","type":"address","internalType":"address"},
     {"name":"content","type":"string","internalType":"string"},
     {"name":"timestamp","type":"uint256","internalType":"uint256"}]}]}
]`

const nftABIJSON = `[
  {"type":"function","name":"mintNote","stateMutability":"nonpayable",
   "inputs":[
     {"name":"recipient","type":"address","internalType":"address"},
     {"name":"noteContent","type":"string","internalType":"string"},
     {"name":"originalTimestamp","type":"uint256","internalType":"uint256"}],
   "outputs":[{"name":"","type":"uint256","internalType":"uint256"}]},
  {"type":"event","name":"Transfer","anonymous":false,"inputs":[
     {"name":"from","type":"address","indexed":true},
     {"name":"to","type":"address","indexed":true},
     {"name":"tokenId","type":"uint256","indexed":true}]}
]`

const ensRegistryABIJSON = `[
  {"type":"function","name":"resolver","stateMutability":"view",
   "inputs":[{"name":"node","type":"bytes32"}],"outputs":[{"name":"","type":"address"}]}
]`

const ensResolverABIJSON = `[
  {"type":"function","name":"name","stateMutability":"view",
   "inputs":[{"name":"node","type":"bytes32"}],"outputs":[{"name":"","type":"string"}]},
  {"type":"function","name":"addr","stateMutability":"view",
   "inputs":[{"name":"node","type":"bytes32"}],"outputs":[{"name":"","type":"address"}]}
]`

// transferTopic is topic0 of the ERC-721 Transfer event.
var transferTopic = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))

func parseABI(name, raw string) (abi.ABI, error) {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("parse %s abi: %w", name, err)
	}
	return parsed, nil
}
