package etherscan

import (
	"reflect"
	"testing"
)

func TestNetworkBaseURL(t *testing.T) {
	tests := []struct {
		network Network
		wantURL string
		chainID uint64
	}{
		{Mainnet, "https://api.etherscan.io/api", 1},
		{Goerli, "https://api-goerli.etherscan.io/api", 5},
		{Sepolia, "https://api-sepolia.etherscan.io/api", 11155111},
		{BinanceSmartChain, "https://api.bscscan.com/api", 56},
		{Polygon, "https://api.polygonscan.com/api", 137},
		{Fantom, "https://api.ftmscan.com/api", 250},
		{Arbitrum, "https://api.arbiscan.io/api", 42161},
		{Optimism, "https://api-optimistic.etherscan.io/api", 10},
	}

	for _, tt := range tests {
		t.Run(tt.network.Name(), func(t *testing.T) {
			if got := tt.network.BaseURL(); got != tt.wantURL {
				t.Errorf("BaseURL() = %q, want %q", got, tt.wantURL)
			}
			if got := tt.network.ChainID(); got != tt.chainID {
				t.Errorf("ChainID() = %d, want %d", got, tt.chainID)
			}
		})
	}
}

func TestNetworkZeroValueIsMainnet(t *testing.T) {
	var n Network
	if n.BaseURL() != Mainnet.BaseURL() {
		t.Errorf("zero Network base URL = %q, want Mainnet", n.BaseURL())
	}
}

func TestBlockTag(t *testing.T) {
	if got := BlockTag(18216563); got != Tag("18216563") {
		t.Errorf("BlockTag(18216563) = %q", got)
	}
	if got := BlockTag(0); got != Tag("0") {
		t.Errorf("BlockTag(0) = %q", got)
	}
}

func TestPaginationQueryParams(t *testing.T) {
	tests := []struct {
		name string
		p    Pagination
		want []queryParam
	}{
		{
			name: "zero value contributes nothing",
			p:    Pagination{},
			want: nil,
		},
		{
			name: "full set in canonical order",
			p:    Pagination{}.Sort(SortDescending).EndBlock(200).StartBlock(100).Offset(25).Page(2),
			want: []queryParam{
				{"page", "2"},
				{"offset", "25"},
				{"startblock", "100"},
				{"endblock", "200"},
				{"sort", "desc"},
			},
		},
		{
			name: "partial set keeps order",
			p:    Pagination{}.Sort(SortAscending).Offset(100),
			want: []queryParam{
				{"offset", "100"},
				{"sort", "asc"},
			},
		},
		{
			name: "block range helper",
			p:    Pagination{}.BlockRange(0, 99999999),
			want: []queryParam{
				{"startblock", "0"},
				{"endblock", "99999999"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.queryParams()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("queryParams() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPaginationCopySemantics(t *testing.T) {
	base := Pagination{}.Page(1)
	modified := base.Page(2)

	baseParams := base.queryParams()
	if len(baseParams) != 1 || baseParams[0].value != "1" {
		t.Errorf("base mutated by derived copy: %v", baseParams)
	}
	modParams := modified.queryParams()
	if len(modParams) != 1 || modParams[0].value != "2" {
		t.Errorf("derived copy wrong: %v", modParams)
	}
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name          string
		err           *Error
		wantRetryable bool
		wantCategory  string
	}{
		{"network", errNetwork("boom", nil), true, "network"},
		{"rate limit", errRateLimit("slow down", 0), true, "rate_limit"},
		{"server error", errHTTP(503, "unavailable"), true, "http"},
		{"client error", errHTTP(404, "not found"), false, "http"},
		{"api", errAPI("NOTOK", "Error!"), false, "api"},
		{"parse", errParse("bad shape", nil), false, "parsing"},
		{"invalid address", errInvalidAddress("0x1"), false, "validation"},
		{"invalid hash", errInvalidTxHash("0x1"), false, "validation"},
		{"invalid params", errInvalidParams("too many"), false, "validation"},
		{"config", errConfig("missing key"), false, "configuration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Retryable(); got != tt.wantRetryable {
				t.Errorf("Retryable() = %v, want %v", got, tt.wantRetryable)
			}
			if got := tt.err.Category(); got != tt.wantCategory {
				t.Errorf("Category() = %q, want %q", got, tt.wantCategory)
			}
		})
	}
}
