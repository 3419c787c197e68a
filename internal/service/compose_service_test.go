package service

import (
	"net/http"
	"testing"

	"minka-treasury/internal/chain"
	"minka-treasury/pkg/errno"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var treasuryAddr = common.HexToAddress("0x610BDFD4408c8c9b87C3bd48e1128dF2c17301A8")

func newComposer() *ComposeService {
	return NewComposeService(treasuryAddr, 43113, "Avalanche Fuji")
}

func TestCompose(t *testing.T) {
	tx, err := newComposer().Compose("0.01", "3")
	require.NoError(t, err)

	assert.Equal(t, "10000000000000000", tx.Value.String())
	assert.Equal(t, treasuryAddr, tx.To)
	assert.Equal(t, int64(43113), tx.ChainID.Int64())

	id, err := chain.DecodeVote(tx.Data)
	require.NoError(t, err)
	assert.Equal(t, int64(3), id.Int64())
}

func TestBuildRoundTrip(t *testing.T) {
	resp, err := newComposer().Build("0.05", "12")
	require.NoError(t, err)
	assert.Equal(t, "Avalanche Fuji", resp.ChainID)

	decoded, err := chain.DecodeUnsigned(resp.SerializedTransaction)
	require.NoError(t, err)
	assert.Equal(t, treasuryAddr, decoded.To)
	assert.Equal(t, "50000000000000000", decoded.Value.String())
	assert.Equal(t, int64(43113), decoded.ChainID.Int64())

	id, err := chain.DecodeVote(decoded.Data)
	require.NoError(t, err)
	assert.Equal(t, int64(12), id.Int64())
}

func TestBuildMissingParams(t *testing.T) {
	tests := []struct {
		name       string
		amount     string
		proposalID string
		mentions   []string
	}{
		{"missing monto", "", "1", []string{"monto"}},
		{"missing voto", "0.01", "", []string{"voto"}},
		{"missing both", "", "", []string{"monto", "voto"}},
		{"blank monto", "  ", "1", []string{"monto"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := newComposer().Build(tt.amount, tt.proposalID)
			assert.Nil(t, resp)
			require.ErrorIs(t, err, errno.ErrMissingParam)

			status, _, msg := errno.Decode(err)
			assert.Equal(t, http.StatusBadRequest, status)
			for _, field := range tt.mentions {
				assert.Contains(t, msg, field)
			}
		})
	}
}

func TestBuildInvalidParams(t *testing.T) {
	tests := []struct {
		name       string
		amount     string
		proposalID string
		field      string
	}{
		{"non numeric voto", "0.01", "abc", "voto"},
		{"negative voto", "0.01", "-1", "voto"},
		{"fractional voto", "0.01", "1.5", "voto"},
		{"non numeric monto", "abc", "1", "monto"},
		{"negative monto", "-0.01", "1", "monto"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newComposer().Build(tt.amount, tt.proposalID)
			require.ErrorIs(t, err, errno.ErrInvalidParam)

			status, _, msg := errno.Decode(err)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Contains(t, msg, tt.field)
		})
	}
}

func TestComposeLargeProposalID(t *testing.T) {
	huge := "115792089237316195423570985008687907853269984665640564039457584007913129639935"
	tx, err := newComposer().Compose("0.1", huge)
	require.NoError(t, err)

	id, err := chain.DecodeVote(tx.Data)
	require.NoError(t, err)
	assert.Equal(t, huge, id.String())
}
