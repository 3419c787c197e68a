package main

import (
	"context"
	"time"

	"minka-treasury/internal/chain"
	"minka-treasury/internal/handler"
	"minka-treasury/internal/server"
	"minka-treasury/internal/service"

	"minka-treasury/pkg/config"
	"minka-treasury/pkg/ethrpc"
	"minka-treasury/pkg/logger"
	"minka-treasury/pkg/schema"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	_ "minka-treasury/docs/swagger"
)

// @title Minka Treasury Action API
// @version 1.0
// @description Donate & Vote mini-app: action metadata and unsigned transaction builder
// @termsOfService http://swagger.io/terms/

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:3000
// @BasePath /
func main() {
	// 0. 初始化 Config
	config.Init()

	// 1. 初始化 Logger
	logger.Init(config.Global.App.Env, config.Global.App.LogLevel)
	defer logger.Sync()

	chainCfg := config.Global.Chain
	if !common.IsHexAddress(chainCfg.Contract) {
		logger.Fatal("合约地址配置错误", zap.String("contract", chainCfg.Contract))
	}

	// 2. 连接 RPC 节点 (只读)
	dialCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := ethrpc.Dial(dialCtx, chainCfg.RpcUrl, chainCfg.ChainID)
	cancel()
	if err != nil {
		logger.Fatal("RPC 连接失败", zap.Error(err))
	}

	// 3. 金库合约句柄，两个阶段共用
	treasury := chain.NewTreasury(common.HexToAddress(chainCfg.Contract), client)
	logger.Info("金库合约已绑定",
		zap.String("contract", treasury.Address().Hex()),
		zap.Int64("chain_id", chainCfg.ChainID))

	// 4. 初始化业务服务
	validator, err := schema.NewMetadataValidator()
	if err != nil {
		logger.Fatal("加载元数据 Schema 失败", zap.Error(err))
	}

	actionCfg := config.Global.Action
	describer := service.NewDescribeService(actionCfg, chainCfg.Source, validator,
		service.DonateAndVote(actionCfg.Path, treasury))
	composer := service.NewComposeService(treasury.Address(), chainCfg.ChainID, chainCfg.Name)

	// 5. HTTP Router
	r := server.NewHTTPRouter(actionCfg.Path, handler.NewActionHandler(describer, composer))

	// 6. 启动应用
	app := server.New(server.Config{
		HttpPort:        config.Global.App.HttpPort,
		ShutdownTimeout: time.Duration(config.Global.App.ShutdownTimeout) * time.Second,
	}, r)
	app.OnShutdown(func() {
		logger.Info("正在关闭 RPC 连接...")
		client.Close()
	})

	// 运行 (阻塞)
	app.Run()

	logger.Info("系统已退出")
}
