package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"minka-treasury/internal/chain"
	"minka-treasury/pkg/units"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [serializedTransaction]",
	Short: "解码未签名交易",
	Long:  `解码 POST /api/mi-app 返回的 serializedTransaction (或 build-tx 生成的文件)，核对收款合约、金额和投票。`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile, _ := cmd.Flags().GetString("input")

		// 1. 读取交易: 参数优先，其次是文件
		var serialized string
		if len(args) == 1 {
			serialized = strings.TrimSpace(args[0])
		} else {
			data, err := os.ReadFile(inputFile)
			if err != nil {
				color.Red("读取文件失败: %v", err)
				os.Exit(1)
			}
			var file unsignedFile
			if err := json.Unmarshal(data, &file); err != nil {
				color.Red("解析文件失败: %v", err)
				os.Exit(1)
			}
			serialized = file.SerializedTransaction
		}

		// 2. 解码
		tx, err := chain.DecodeUnsigned(serialized)
		if err != nil {
			color.Red("❌ 解码失败: %v", err)
			os.Exit(1)
		}

		fmt.Println("\n================ 交易详情 ================")
		fmt.Printf("ChainID:    %s\n", tx.ChainID)
		fmt.Printf("To:         %s\n", tx.To.Hex())
		fmt.Printf("Value:      %s wei (%s)\n", tx.Value, units.FromSmallestUnit(tx.Value, units.NativeDecimals))

		// 3. 解析 call data
		id, err := chain.DecodeVote(tx.Data)
		if err != nil {
			color.Yellow("Data:       %s (不是 vote 调用: %v)", tx.Data, err)
		} else {
			fmt.Printf("Call:       vote(%s)\n", id)
		}
		fmt.Println("==========================================")
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().StringP("input", "i", "unsigned.json", "build-tx 生成的文件")
}
