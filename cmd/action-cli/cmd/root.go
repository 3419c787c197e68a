package cmd

import (
	"fmt"
	"os"

	"minka-treasury/pkg/config"

	"github.com/spf13/cobra"
)

// rootCmd 代表基础命令，没有子命令时直接调用
var rootCmd = &cobra.Command{
	Use:   "action-cli",
	Short: "Minka Treasury Action 命令行工具",
	Long: `调试 "Donate & Vote" Action 的命令行工具。
可以读取链上提案生成元数据 (describe)、离线构造未签名交易 (build-tx)、解码交易 (decode)。`,
}

// defaults 与服务端使用同一套默认配置
var defaults = config.Default()

// Execute 将所有子命令添加到根命令并设置标志
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("contract", defaults.Chain.Contract, "金库合约地址")
	rootCmd.PersistentFlags().Int64("chain-id", defaults.Chain.ChainID, "Chain ID (43113=Fuji, 43114=C-Chain)")
	rootCmd.PersistentFlags().String("chain-name", defaults.Chain.Name, "链名称")
}
