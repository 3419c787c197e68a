package server

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"minka-treasury/internal/chain"
	"minka-treasury/internal/handler"
	"minka-treasury/internal/handler/response"
	"minka-treasury/internal/model"
	"minka-treasury/internal/service"
	"minka-treasury/pkg/config"
	"minka-treasury/pkg/errno"
	"minka-treasury/pkg/schema"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubNode 模拟 RPC 节点: 返回打包好的 getActualVotation 结果
type stubNode struct {
	ids   []*big.Int
	names []string
	err   error
	calls int
}

func (s *stubNode) CallContract(context.Context, ethereum.CallMsg, *big.Int) ([]byte, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return chain.TreasuryABI.Methods[chain.MethodGetActualVotation].Outputs.Pack(s.ids, s.names)
}

func newTestRouter(t *testing.T, node *stubNode) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	treasury := chain.NewTreasury(common.HexToAddress(cfg.Chain.Contract), node)
	describer := service.NewDescribeService(cfg.Action, cfg.Chain.Source, schema.MustNewMetadataValidator(),
		service.DonateAndVote(cfg.Action.Path, treasury))
	composer := service.NewComposeService(treasury.Address(), cfg.Chain.ChainID, cfg.Chain.Name)

	return NewHTTPRouter(cfg.Action.Path, handler.NewActionHandler(describer, composer))
}

func do(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func assertCORS(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Headers"))
}

func TestDescribeEndpoint(t *testing.T) {
	node := &stubNode{
		ids:   []*big.Int{big.NewInt(1), big.NewInt(2)},
		names: []string{"Agua potable", "Escuela"},
	}
	r := newTestRouter(t, node)

	req := httptest.NewRequest(http.MethodGet, "/api/mi-app", nil)
	req.Host = "minka.example"
	req.Header.Set("X-Forwarded-Proto", "https")
	w := do(r, req)

	require.Equal(t, http.StatusOK, w.Code)
	assertCORS(t, w)
	assert.Equal(t, "Content-Type, Authorization", w.Header().Get("Access-Control-Allow-Headers"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, 1, node.calls)

	var d model.ActionDescriptor
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d))
	assert.Equal(t, "https://minka.example", d.BaseURL)
	require.Len(t, d.Actions, 1)
	assert.Equal(t, "/api/mi-app", d.Actions[0].Path)
	assert.Equal(t, []model.Option{
		{Label: "Agua potable", Value: "1"},
		{Label: "Escuela", Value: "2"},
	}, d.Actions[0].Params[1].Options)
}

func TestDescribeEndpointDefaultsBaseURL(t *testing.T) {
	r := newTestRouter(t, &stubNode{})

	req := httptest.NewRequest(http.MethodGet, "/api/mi-app", nil)
	req.Host = ""
	w := do(r, req)

	require.Equal(t, http.StatusOK, w.Code)
	var d model.ActionDescriptor
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d))
	assert.Equal(t, "http://localhost:3000", d.BaseURL)
}

func TestDescribeEndpointChainFailure(t *testing.T) {
	r := newTestRouter(t, &stubNode{err: errors.New("503 service unavailable")})

	w := do(r, httptest.NewRequest(http.MethodGet, "/api/mi-app", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assertCORS(t, w)

	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Error)
	assert.Equal(t, errno.ErrUpstreamRead.Code, body.Code)
	// RPC 的内部错误不暴露给客户端
	assert.NotContains(t, body.Error, "503")
}

func TestBuildEndpoint(t *testing.T) {
	node := &stubNode{}
	r := newTestRouter(t, node)

	w := do(r, httptest.NewRequest(http.MethodPost, "/api/mi-app?monto=0.01&voto=3", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assertCORS(t, w)
	// BUILD 不访问链
	assert.Equal(t, 0, node.calls)

	var resp model.ExecutionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Avalanche Fuji", resp.ChainID)

	tx, err := chain.DecodeUnsigned(resp.SerializedTransaction)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0x610BDFD4408c8c9b87C3bd48e1128dF2c17301A8"), tx.To)
	assert.Equal(t, "10000000000000000", tx.Value.String())
	assert.Equal(t, int64(43113), tx.ChainID.Int64())

	id, err := chain.DecodeVote(tx.Data)
	require.NoError(t, err)
	assert.Equal(t, int64(3), id.Int64())
}

func TestBuildEndpointClientErrors(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		code     int
		mentions []string
	}{
		{"missing monto", "?voto=1", errno.ErrMissingParam.Code, []string{"monto"}},
		{"missing voto", "?monto=0.01", errno.ErrMissingParam.Code, []string{"voto"}},
		{"missing both", "", errno.ErrMissingParam.Code, []string{"monto", "voto"}},
		{"empty values", "?monto=&voto=", errno.ErrMissingParam.Code, []string{"monto", "voto"}},
		{"non numeric voto", "?monto=0.01&voto=abc", errno.ErrInvalidParam.Code, []string{"voto"}},
		{"bad monto", "?monto=lots&voto=1", errno.ErrInvalidParam.Code, []string{"monto"}},
		{"exponent monto", "?monto=1e-99999999&voto=1", errno.ErrInvalidParam.Code, []string{"monto"}},
	}

	r := newTestRouter(t, &stubNode{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, httptest.NewRequest(http.MethodPost, "/api/mi-app"+tt.query, nil))

			require.Equal(t, http.StatusBadRequest, w.Code)
			assertCORS(t, w)

			var body response.ErrorBody
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			for _, field := range tt.mentions {
				assert.Contains(t, body.Error, field)
			}
		})
	}
}

func TestPreflight(t *testing.T) {
	// 节点故障不影响预检
	r := newTestRouter(t, &stubNode{err: errors.New("down")})

	w := do(r, httptest.NewRequest(http.MethodOptions, "/api/mi-app", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assertCORS(t, w)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "X-CSRF-Token")
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "X-Api-Version")
}

func TestRequestIDIsPropagated(t *testing.T) {
	r := newTestRouter(t, &stubNode{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := do(r, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t, &stubNode{})
	do(r, httptest.NewRequest(http.MethodPost, "/api/mi-app?monto=0.01&voto=1", nil))

	w := do(r, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "action_build_total")
}
