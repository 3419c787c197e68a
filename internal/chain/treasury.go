package chain

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"minka-treasury/internal/model"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

const (
	MethodGetActualVotation = "getActualVotation"
	MethodVote              = "vote"
)

//go:embed treasury.abi.json
var treasuryABIJSON string

// TreasuryABI 金库合约的接口描述 (只包含本服务用到的方法)
var TreasuryABI = mustParseABI(treasuryABIJSON)

var ErrEmptyResult = errors.New("empty call result (no contract code at address?)")

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("invalid treasury abi: %v", err))
	}
	return parsed
}

// Treasury 是金库合约的只读句柄。
// 不持有可变状态，进程启动时创建一次，可被并发请求共享
type Treasury struct {
	address common.Address
	caller  ethereum.ContractCaller
}

// NewTreasury 绑定合约地址和 RPC 调用方 (*ethclient.Client 实现了 ethereum.ContractCaller)
func NewTreasury(address common.Address, caller ethereum.ContractCaller) *Treasury {
	return &Treasury{
		address: address,
		caller:  caller,
	}
}

func (t *Treasury) Address() common.Address {
	return t.address
}

// ActiveProposals 调用 getActualVotation()，返回当前开放的提案 (ids, names)
func (t *Treasury) ActiveProposals(ctx context.Context) (model.ChainProposalSet, error) {
	input, err := TreasuryABI.Pack(MethodGetActualVotation)
	if err != nil {
		return model.ChainProposalSet{}, fmt.Errorf("pack %s: %w", MethodGetActualVotation, err)
	}

	to := t.address
	out, err := t.caller.CallContract(ctx, ethereum.CallMsg{To: &to, Data: input}, nil)
	if err != nil {
		return model.ChainProposalSet{}, fmt.Errorf("call %s: %w", MethodGetActualVotation, err)
	}
	if len(out) == 0 {
		return model.ChainProposalSet{}, ErrEmptyResult
	}

	return decodeProposalSet(out)
}

func decodeProposalSet(out []byte) (model.ChainProposalSet, error) {
	values, err := TreasuryABI.Unpack(MethodGetActualVotation, out)
	if err != nil {
		return model.ChainProposalSet{}, fmt.Errorf("unpack %s: %w", MethodGetActualVotation, err)
	}
	if len(values) != 2 {
		return model.ChainProposalSet{}, fmt.Errorf("unpack %s: expected 2 values, got %d", MethodGetActualVotation, len(values))
	}

	ids, ok := values[0].([]*big.Int)
	if !ok {
		return model.ChainProposalSet{}, fmt.Errorf("unpack %s: unexpected ids type %T", MethodGetActualVotation, values[0])
	}
	names, ok := values[1].([]string)
	if !ok {
		return model.ChainProposalSet{}, fmt.Errorf("unpack %s: unexpected names type %T", MethodGetActualVotation, values[1])
	}

	set := model.ChainProposalSet{IDs: ids, Names: names}
	if err := set.Validate(); err != nil {
		return model.ChainProposalSet{}, err
	}
	return set, nil
}

// EncodeVote 生成 vote(proposalId) 的 call data
func EncodeVote(proposalID *big.Int) ([]byte, error) {
	if proposalID == nil {
		return nil, errors.New("nil proposal id")
	}
	return TreasuryABI.Pack(MethodVote, proposalID)
}

// DecodeVote 从 call data 中还原 proposalId，非 vote 调用返回错误
func DecodeVote(data []byte) (*big.Int, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("call data too short: %d bytes", len(data))
	}

	method, err := TreasuryABI.MethodById(data[:4])
	if err != nil {
		return nil, err
	}
	if method.Name != MethodVote {
		return nil, fmt.Errorf("unexpected method %s", method.Name)
	}

	args, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, fmt.Errorf("unpack vote args: %w", err)
	}
	id, ok := args[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected proposal id type %T", args[0])
	}
	return id, nil
}
