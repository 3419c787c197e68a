package model

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// UnsignedTransaction 待钱包签名的交易。Nonce / Gas 由钱包填充
type UnsignedTransaction struct {
	To      common.Address `json:"to"`
	Data    hexutil.Bytes  `json:"data"`
	Value   *big.Int       `json:"value"`
	ChainID *big.Int       `json:"chainId"`
}

// ExecutionResponse 是 POST 的返回体。ChainID 字段实际是链名称 (例如 "Avalanche Fuji")
type ExecutionResponse struct {
	SerializedTransaction string `json:"serializedTransaction"`
	ChainID               string `json:"chainId"`
}
