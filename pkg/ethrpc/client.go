package ethrpc

import (
	"context"
	"fmt"

	"minka-treasury/pkg/logger"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

// Dial 连接到 EVM RPC 节点
// rpcURL: "https://api.avax-test.network/ext/bc/C/rpc"
// expectedChainID: 配置中的链 ID，为 0 时不校验
func Dial(ctx context.Context, rpcURL string, expectedChainID int64) (*ethclient.Client, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("无法连接到 RPC 节点: %w", err)
	}

	// 测试连接。节点暂时不可用不影响启动，请求时会直接返回错误
	chainID, err := client.ChainID(ctx)
	if err != nil {
		logger.Warn("RPC 节点暂不可用，GET 请求在节点恢复前会返回 500", zap.String("rpc", rpcURL), zap.Error(err))
		return client, nil
	}

	if expectedChainID != 0 && chainID.Int64() != expectedChainID {
		logger.Warn("RPC 节点链 ID 与配置不一致",
			zap.Int64("expected", expectedChainID),
			zap.String("actual", chainID.String()))
	}

	logger.Info("RPC 连接成功", zap.String("rpc", rpcURL), zap.String("chain_id", chainID.String()))
	return client, nil
}
