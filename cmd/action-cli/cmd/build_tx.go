package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"minka-treasury/internal/chain"
	"minka-treasury/internal/model"
	"minka-treasury/internal/service"
	"minka-treasury/pkg/errno"
	"minka-treasury/pkg/units"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// unsignedFile build-tx 的输出文件格式
type unsignedFile struct {
	model.UnsignedTransaction
	SerializedTransaction string `json:"serializedTransaction"`
	ChainName             string `json:"chainName"`
}

// buildTxCmd 与 POST /api/mi-app 相同，但在本地执行
var buildTxCmd = &cobra.Command{
	Use:   "build-tx",
	Short: "构造未签名的捐赠投票交易 (Offline)",
	Long:  `输入捐赠金额和提案 ID，输出 unsigned.json。不访问网络。`,
	Run: func(cmd *cobra.Command, args []string) {
		amount, _ := cmd.Flags().GetString("monto")
		proposal, _ := cmd.Flags().GetString("voto")
		contract, _ := cmd.Flags().GetString("contract")
		chainID, _ := cmd.Flags().GetInt64("chain-id")
		chainName, _ := cmd.Flags().GetString("chain-name")
		outputFile, _ := cmd.Flags().GetString("output")

		if !common.IsHexAddress(contract) {
			color.Red("合约地址无效: %s", contract)
			os.Exit(1)
		}

		composer := service.NewComposeService(common.HexToAddress(contract), chainID, chainName)
		tx, err := composer.Compose(amount, proposal)
		if err != nil {
			_, _, msg := errno.Decode(err)
			color.Red("❌ %s", msg)
			os.Exit(1)
		}

		serialized, err := chain.SerializeUnsigned(tx)
		if err != nil {
			color.Red("序列化失败: %v", err)
			os.Exit(1)
		}

		fmt.Println("\n================ 未签名交易 ================")
		fmt.Printf("Chain:      %s (ID: %s)\n", chainName, tx.ChainID)
		fmt.Printf("To:         %s\n", tx.To.Hex())
		fmt.Printf("Value:      %s wei (%s)\n", tx.Value, units.FromSmallestUnit(tx.Value, units.NativeDecimals))
		fmt.Printf("Vote:       %s\n", proposal)
		fmt.Printf("Data:       %s\n", tx.Data)
		fmt.Println("============================================")

		data, _ := json.MarshalIndent(unsignedFile{
			UnsignedTransaction:   *tx,
			SerializedTransaction: serialized,
			ChainName:             chainName,
		}, "", "  ")
		if err := os.WriteFile(outputFile, data, 0644); err != nil {
			color.Red("保存失败: %v", err)
			os.Exit(1)
		}

		color.Green("✅ 未签名交易已构造!")
		fmt.Printf("文件: %s\n", outputFile)
	},
}

func init() {
	rootCmd.AddCommand(buildTxCmd)

	buildTxCmd.Flags().String("monto", "", "捐赠金额 (AVAX)，例如 0.01")
	buildTxCmd.Flags().String("voto", "", "提案 ID")
	buildTxCmd.Flags().StringP("output", "o", "unsigned.json", "输出文件")

	buildTxCmd.MarkFlagRequired("monto")
	buildTxCmd.MarkFlagRequired("voto")
}
