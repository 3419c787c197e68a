package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"minka-treasury/internal/chain"
	"minka-treasury/internal/service"
	"minka-treasury/pkg/ethrpc"
	"minka-treasury/pkg/schema"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "读取链上提案并输出 Action 元数据 (Online)",
	Long:  `与 GET /api/mi-app 相同: 调用 getActualVotation() 并打印元数据 JSON。`,
	Run: func(cmd *cobra.Command, args []string) {
		rpcURL, _ := cmd.Flags().GetString("rpc")
		host, _ := cmd.Flags().GetString("host")
		proto, _ := cmd.Flags().GetString("proto")
		contract, _ := cmd.Flags().GetString("contract")
		chainID, _ := cmd.Flags().GetInt64("chain-id")

		if !common.IsHexAddress(contract) {
			color.Red("合约地址无效: %s", contract)
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// 1. 连接节点
		color.Cyan("正在连接 RPC: %s ...", rpcURL)
		client, err := ethrpc.Dial(ctx, rpcURL, chainID)
		if err != nil {
			color.Red("连接失败: %v", err)
			os.Exit(1)
		}
		defer client.Close()

		// 2. 生成元数据
		treasury := chain.NewTreasury(common.HexToAddress(contract), client)
		describer := service.NewDescribeService(defaults.Action, defaults.Chain.Source,
			schema.MustNewMetadataValidator(), service.DonateAndVote(defaults.Action.Path, treasury))

		descriptor, err := describer.Describe(ctx, service.RequestContext{Host: host, Proto: proto})
		if err != nil {
			color.Red("❌ 生成元数据失败: %v", err)
			os.Exit(1)
		}

		// 3. 输出
		out, _ := json.MarshalIndent(descriptor, "", "  ")
		fmt.Println(string(out))
		color.Green("✅ 共 %d 个开放提案", len(descriptor.Actions[0].Params[1].Options))
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().String("rpc", defaults.Chain.RpcUrl, "RPC 节点地址")
	describeCmd.Flags().String("host", defaults.Action.DefaultHost, "模拟请求的 Host 头")
	describeCmd.Flags().String("proto", defaults.Action.DefaultProto, "模拟请求的 X-Forwarded-Proto 头")
}
