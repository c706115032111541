package etherscan

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Contract endpoint address-list limits imposed upstream.
const (
	maxContractCreationAddresses = 5
)

// Contracts exposes the contract module endpoints.
type Contracts struct {
	client *Client
}

// ContractABI is a verified contract's ABI as returned by the explorer.
// The endpoint returns the ABI JSON as a bare string result.
type ContractABI struct {
	Raw string
}

func (a *ContractABI) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	a.Raw = s
	return nil
}

// IsEmpty reports whether the explorer returned no ABI.
func (a *ContractABI) IsEmpty() bool {
	return a.Raw == "" || a.Raw == "[]"
}

// Parse decodes the raw ABI JSON into a structured form.
func (a *ContractABI) Parse() (abi.ABI, error) {
	parsed, err := abi.JSON(strings.NewReader(a.Raw))
	if err != nil {
		return abi.ABI{}, errParse("parsing contract ABI", err)
	}
	return parsed, nil
}

// ABI fetches the ABI of a verified contract. Unverified contracts
// surface as an API error with the explorer's explanation.
func (c *Contracts) ABI(ctx context.Context, address string) (*ContractABI, error) {
	addr, err := ParseAddress(address)
	if err != nil {
		return nil, err
	}
	params := []queryParam{{"address", addr.String()}}
	contractABI, err := apiGet[ContractABI](ctx, c.client, "contract", "getabi", params)
	if err != nil {
		return nil, err
	}
	return &contractABI, nil
}

// ContractSource is one entry of a verified contract's source listing.
// The explorer capitalizes these field names.
type ContractSource struct {
	SourceCode           string `json:"SourceCode"`
	ABI                  string `json:"ABI"`
	ContractName         string `json:"ContractName"`
	CompilerVersion      string `json:"CompilerVersion"`
	OptimizationUsed     string `json:"OptimizationUsed"`
	Runs                 string `json:"Runs"`
	ConstructorArguments string `json:"ConstructorArguments"`
	EVMVersion           string `json:"EVMVersion"`
	Library              string `json:"Library"`
	LicenseType          string `json:"LicenseType"`
	Proxy                string `json:"Proxy"`
	Implementation       string `json:"Implementation"`
	SwarmSource          string `json:"SwarmSource"`
}

// IsVerified reports whether the explorer holds source for the
// contract. Unverified contracts come back with an empty ABI marker.
func (s *ContractSource) IsVerified() bool {
	return s.ABI != "" && s.ABI != "Contract source code not verified"
}

// IsOptimized reports whether the contract was compiled with the
// optimizer enabled.
func (s *ContractSource) IsOptimized() bool {
	return s.OptimizationUsed == "1"
}

// OptimizationRuns returns the optimizer run count, when known.
func (s *ContractSource) OptimizationRuns() (uint64, bool) {
	n, err := strconv.ParseUint(s.Runs, 10, 64)
	return n, err == nil
}

// IsProxy reports whether the explorer flagged the contract as a proxy.
func (s *ContractSource) IsProxy() bool {
	return s.Proxy == "1"
}

// ParseABI decodes the listed ABI into a structured form.
func (s *ContractSource) ParseABI() (abi.ABI, error) {
	parsed, err := abi.JSON(strings.NewReader(s.ABI))
	if err != nil {
		return abi.ABI{}, errParse("parsing contract ABI", err)
	}
	return parsed, nil
}

// SourceCode fetches the verified source listing of a contract.
func (c *Contracts) SourceCode(ctx context.Context, address string) ([]ContractSource, error) {
	addr, err := ParseAddress(address)
	if err != nil {
		return nil, err
	}
	params := []queryParam{{"address", addr.String()}}
	return apiGet[[]ContractSource](ctx, c.client, "contract", "getsourcecode", params)
}

// ContractCreation records who deployed a contract and in which
// transaction.
type ContractCreation struct {
	ContractAddress Address `json:"contractAddress"`
	ContractCreator Address `json:"contractCreator"`
	TxHash          TxHash  `json:"txHash"`
}

// ContractCreation fetches deployment details for up to 5 contracts in
// one request. Every address is validated before the request is
// issued; a single malformed address fails the whole call without any
// network traffic.
func (c *Contracts) ContractCreation(ctx context.Context, addresses []string) ([]ContractCreation, error) {
	if len(addresses) == 0 {
		return nil, errInvalidParams("at least one contract address required")
	}
	if len(addresses) > maxContractCreationAddresses {
		return nil, errInvalidParams("maximum %d contract addresses allowed, got %d", maxContractCreationAddresses, len(addresses))
	}

	normalized := make([]string, 0, len(addresses))
	for _, raw := range addresses {
		addr, err := ParseAddress(raw)
		if err != nil {
			return nil, err
		}
		normalized = append(normalized, addr.String())
	}

	params := []queryParam{{"contractaddresses", strings.Join(normalized, ",")}}
	return apiGet[[]ContractCreation](ctx, c.client, "contract", "getcontractcreation", params)
}

// VerificationStatus is the state of a source verification request.
// The endpoint returns the state text as a bare string result.
type VerificationStatus struct {
	Status string
}

func (v *VerificationStatus) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v.Status = s
	return nil
}

// IsVerified reports whether verification passed.
func (v *VerificationStatus) IsVerified() bool {
	return strings.HasPrefix(v.Status, "Pass")
}

// IsFailed reports whether verification failed.
func (v *VerificationStatus) IsFailed() bool {
	return strings.HasPrefix(v.Status, "Fail")
}

// IsPending reports whether verification is still in the queue.
func (v *VerificationStatus) IsPending() bool {
	return strings.Contains(v.Status, "Pending")
}

// VerificationStatus fetches the state of a source verification
// request by its receipt GUID.
func (c *Contracts) VerificationStatus(ctx context.Context, guid string) (*VerificationStatus, error) {
	if guid == "" {
		return nil, errInvalidParams("verification GUID required")
	}
	params := []queryParam{{"guid", guid}}
	status, err := apiGet[VerificationStatus](ctx, c.client, "contract", "checkverifystatus", params)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// ProxyVerificationStatus is the state of a proxy verification
// request.
type ProxyVerificationStatus struct {
	Result string
}

func (v *ProxyVerificationStatus) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v.Result = s
	return nil
}

// IsVerified reports whether the proxy's implementation record was
// updated.
func (v *ProxyVerificationStatus) IsVerified() bool {
	return strings.Contains(v.Result, "successfully updated")
}

// ProxyVerificationStatus fetches the state of a proxy verification
// request by its receipt GUID.
func (c *Contracts) ProxyVerificationStatus(ctx context.Context, guid string) (*ProxyVerificationStatus, error) {
	if guid == "" {
		return nil, errInvalidParams("verification GUID required")
	}
	params := []queryParam{{"guid", guid}}
	status, err := apiGet[ProxyVerificationStatus](ctx, c.client, "contract", "checkproxyverification", params)
	if err != nil {
		return nil, err
	}
	return &status, nil
}
