package service

import (
	"fmt"
	"math/big"
	"strings"

	"minka-treasury/internal/chain"
	"minka-treasury/internal/model"
	"minka-treasury/pkg/errno"
	"minka-treasury/pkg/units"

	"github.com/ethereum/go-ethereum/common"
)

// ComposeService 构造未签名交易 (BUILD 阶段)，纯计算，不访问链
type ComposeService struct {
	contract  common.Address
	chainID   *big.Int
	chainName string
}

var _ Composer = (*ComposeService)(nil)

func NewComposeService(contract common.Address, chainID int64, chainName string) *ComposeService {
	return &ComposeService{
		contract:  contract,
		chainID:   big.NewInt(chainID),
		chainName: chainName,
	}
}

// Compose 校验参数并组装交易: to = 金库合约, data = vote(proposalId), value = 捐赠金额 (wei)
func (s *ComposeService) Compose(amount, proposalID string) (*model.UnsignedTransaction, error) {
	if err := requireParams(amount, proposalID); err != nil {
		return nil, err
	}

	value, err := units.ToSmallestUnit(amount, units.NativeDecimals)
	if err != nil {
		return nil, errno.ErrInvalidParam.
			WithMessage(fmt.Sprintf("Parameter %s must be a non-negative decimal amount", ParamAmount)).
			Wrap(err)
	}

	id, err := units.ParseUint256(proposalID)
	if err != nil {
		return nil, errno.ErrInvalidParam.
			WithMessage(fmt.Sprintf("Parameter %s must be a non-negative integer proposal id", ParamProposal)).
			Wrap(err)
	}

	data, err := chain.EncodeVote(id)
	if err != nil {
		return nil, errno.ErrEncoding.Wrap(err)
	}

	return &model.UnsignedTransaction{
		To:      s.contract,
		Data:    data,
		Value:   value,
		ChainID: new(big.Int).Set(s.chainID),
	}, nil
}

// Build 组装并序列化，返回给客户端的结构
func (s *ComposeService) Build(amount, proposalID string) (*model.ExecutionResponse, error) {
	tx, err := s.Compose(amount, proposalID)
	if err != nil {
		return nil, err
	}

	serialized, err := chain.SerializeUnsigned(tx)
	if err != nil {
		return nil, errno.ErrEncoding.Wrap(err)
	}

	return &model.ExecutionResponse{
		SerializedTransaction: serialized,
		ChainID:               s.chainName,
	}, nil
}

// requireParams 缺少的参数全部列在错误消息里
func requireParams(amount, proposalID string) error {
	var missing []string
	if strings.TrimSpace(amount) == "" {
		missing = append(missing, ParamAmount)
	}
	if strings.TrimSpace(proposalID) == "" {
		missing = append(missing, ParamProposal)
	}

	switch len(missing) {
	case 0:
		return nil
	case 1:
		return errno.ErrMissingParam.WithMessage(fmt.Sprintf("Parameter %s is required", missing[0]))
	default:
		return errno.ErrMissingParam.WithMessage(fmt.Sprintf("Parameters %s are required", strings.Join(missing, " and ")))
	}
}
