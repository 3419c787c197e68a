// Package units 负责把用户输入的字符串转换为链上使用的精确整数。
//
// 全程使用十进制定点数 (shopspring/decimal) 和 *big.Int，不经过 float64。
// 唯一的取整发生在 ToSmallestUnit: 乘以 10^decimals 后向零截断。
package units

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// NativeDecimals AVAX / ETH 等 EVM 原生币的精度 (1 AVAX = 10^18 wei)
const NativeDecimals int32 = 18

var (
	ErrEmpty    = errors.New("empty value")
	ErrNegative = errors.New("negative value")
	ErrTooLarge = errors.New("value exceeds 256 bits")
	ErrFormat   = errors.New("not a plain decimal")
)

// MaxAmountLength 金额字符串的最大长度。2^256 约 78 位整数，再留出小数位
const MaxAmountLength = 128

// 只接受普通十进制写法，拒绝科学计数法 ("1e-300000000" 会让 Shift 放大到任意精度)
var plainDecimal = regexp.MustCompile(`^(\d+(\.\d*)?|\.\d+)$`)

// ToSmallestUnit 把十进制金额字符串 ("0.01") 转为最小单位整数 (10000000000000000)。
// 超出精度的小数位向零截断，例如 decimals=18 时 "0.0000000000000000019" -> 1。
func ToSmallestUnit(amount string, decimals int32) (*big.Int, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return nil, ErrEmpty
	}
	if strings.HasPrefix(amount, "-") {
		return nil, ErrNegative
	}
	if len(amount) > MaxAmountLength {
		return nil, ErrTooLarge
	}
	if !plainDecimal.MatchString(amount) {
		return nil, fmt.Errorf("invalid decimal %q: %w", amount, ErrFormat)
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid decimal %q: %w", amount, err)
	}
	if d.IsNegative() {
		return nil, ErrNegative
	}

	wei := d.Shift(decimals).Truncate(0).BigInt()
	if wei.BitLen() > 256 {
		return nil, ErrTooLarge
	}
	return wei, nil
}

// FromSmallestUnit 是 ToSmallestUnit 的逆运算，用于展示
func FromSmallestUnit(value *big.Int, decimals int32) string {
	if value == nil {
		return "0"
	}
	return decimal.NewFromBigInt(value, -decimals).String()
}

// ParseUint256 解析十进制非负整数字符串 (提案 ID)，范围 [0, 2^256)
func ParseUint256(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmpty
	}

	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	if n.Sign() < 0 {
		return nil, ErrNegative
	}
	if n.BitLen() > 256 {
		return nil, ErrTooLarge
	}
	return n, nil
}
