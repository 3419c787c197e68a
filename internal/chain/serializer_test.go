package chain

import (
	"math/big"
	"testing"

	"minka-treasury/internal/model"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeUnsignedRoundTrip(t *testing.T) {
	data, err := EncodeVote(big.NewInt(3))
	require.NoError(t, err)

	tx := &model.UnsignedTransaction{
		To:      testContract,
		Data:    data,
		Value:   big.NewInt(10000000000000000),
		ChainID: big.NewInt(43113),
	}

	serialized, err := SerializeUnsigned(tx)
	require.NoError(t, err)
	assert.True(t, len(serialized) > 4 && serialized[:4] == "0x02", "expected EIP-1559 envelope, got %s", serialized)

	decoded, err := DecodeUnsigned(serialized)
	require.NoError(t, err)
	assert.Equal(t, tx.To, decoded.To)
	assert.Equal(t, []byte(tx.Data), []byte(decoded.Data))
	assert.Equal(t, 0, tx.Value.Cmp(decoded.Value))
	assert.Equal(t, 0, tx.ChainID.Cmp(decoded.ChainID))

	// 同样的输入总是得到同样的字节
	again, err := SerializeUnsigned(tx)
	require.NoError(t, err)
	assert.Equal(t, serialized, again)
}

func TestSerializeUnsignedIsUnsigned(t *testing.T) {
	tx := &model.UnsignedTransaction{
		To:      testContract,
		Value:   big.NewInt(1),
		ChainID: big.NewInt(43113),
	}
	serialized, err := SerializeUnsigned(tx)
	require.NoError(t, err)

	raw, err := hexutil.Decode(serialized)
	require.NoError(t, err)
	var decoded types.Transaction
	require.NoError(t, decoded.UnmarshalBinary(raw))

	v, r, s := decoded.RawSignatureValues()
	assert.Equal(t, 0, v.Sign())
	assert.Equal(t, 0, r.Sign())
	assert.Equal(t, 0, s.Sign())
	assert.Equal(t, uint64(0), decoded.Nonce())
	assert.Equal(t, uint64(0), decoded.Gas())
	assert.Equal(t, uint8(types.DynamicFeeTxType), decoded.Type())
}

func TestSerializeUnsignedRejects(t *testing.T) {
	_, err := SerializeUnsigned(nil)
	assert.Error(t, err)

	_, err = SerializeUnsigned(&model.UnsignedTransaction{To: testContract, Value: big.NewInt(1)})
	assert.ErrorContains(t, err, "chain id")

	_, err = SerializeUnsigned(&model.UnsignedTransaction{To: testContract, Value: big.NewInt(-1), ChainID: big.NewInt(1)})
	assert.Error(t, err)
}

func TestDecodeUnsignedRejects(t *testing.T) {
	_, err := DecodeUnsigned("not-hex")
	assert.Error(t, err)

	_, err = DecodeUnsigned("0x02c0")
	assert.Error(t, err)
}
