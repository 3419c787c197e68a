package chain

import (
	"errors"
	"fmt"

	"minka-treasury/internal/model"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

// SerializeUnsigned 把交易编码为 EIP-1559 (0x02) 信封的 0x 前缀十六进制串。
// nonce、gas 和 fee 字段为 0，签名 (v, r, s) 为 0，由钱包在签名前填充。
// 结果可以直接用 types.Transaction.UnmarshalBinary 解码。
func SerializeUnsigned(tx *model.UnsignedTransaction) (string, error) {
	if tx == nil {
		return "", errors.New("nil transaction")
	}
	if tx.ChainID == nil || tx.ChainID.Sign() <= 0 {
		return "", errors.New("missing chain id")
	}
	if tx.Value == nil || tx.Value.Sign() < 0 {
		return "", errors.New("value must be non-negative")
	}

	to := tx.To
	raw, err := types.NewTx(&types.DynamicFeeTx{
		ChainID: tx.ChainID,
		To:      &to,
		Value:   tx.Value,
		Data:    tx.Data,
	}).MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("marshal transaction: %w", err)
	}
	return hexutil.Encode(raw), nil
}

// DecodeUnsigned 是 SerializeUnsigned 的逆运算
func DecodeUnsigned(serialized string) (*model.UnsignedTransaction, error) {
	raw, err := hexutil.Decode(serialized)
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}

	tx := new(types.Transaction)
	if err := tx.UnmarshalBinary(raw); err != nil {
		return nil, fmt.Errorf("unmarshal transaction: %w", err)
	}
	if tx.To() == nil {
		return nil, errors.New("contract creation transactions are not supported")
	}

	return &model.UnsignedTransaction{
		To:      *tx.To(),
		Data:    tx.Data(),
		Value:   tx.Value(),
		ChainID: tx.ChainId(),
	}, nil
}
