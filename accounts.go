package etherscan

import (
	"context"
	"strconv"
	"strings"
)

// Account endpoint address-list limits imposed upstream.
const (
	maxBalanceMultiAddresses = 20
)

// Accounts exposes the account module endpoints.
type Accounts struct {
	client *Client
}

// Balance fetches the current ETH balance of one address.
func (a *Accounts) Balance(ctx context.Context, address string) (*Balance, error) {
	return a.BalanceAtBlock(ctx, address, TagLatest)
}

// BalanceAtBlock fetches the ETH balance of one address at the given
// block tag.
func (a *Accounts) BalanceAtBlock(ctx context.Context, address string, tag Tag) (*Balance, error) {
	addr, err := ParseAddress(address)
	if err != nil {
		return nil, err
	}
	params := []queryParam{
		{"address", addr.String()},
		{"tag", string(tag)},
	}
	balance, err := apiGet[Balance](ctx, a.client, "account", "balance", params)
	if err != nil {
		return nil, err
	}
	if balance.Account == "" {
		balance.Account = addr
	}
	return &balance, nil
}

// BalanceMulti fetches ETH balances for up to 20 addresses in one
// request. Every address is validated before the request is issued; a
// single malformed address fails the whole call without any network
// traffic.
func (a *Accounts) BalanceMulti(ctx context.Context, addresses []string) ([]Balance, error) {
	if len(addresses) == 0 {
		return nil, errInvalidParams("at least one address required")
	}
	if len(addresses) > maxBalanceMultiAddresses {
		return nil, errInvalidParams("maximum %d addresses allowed, got %d", maxBalanceMultiAddresses, len(addresses))
	}

	normalized := make([]string, 0, len(addresses))
	for _, raw := range addresses {
		addr, err := ParseAddress(raw)
		if err != nil {
			return nil, err
		}
		normalized = append(normalized, addr.String())
	}

	params := []queryParam{
		{"address", strings.Join(normalized, ",")},
		{"tag", string(TagLatest)},
	}
	return apiGet[[]Balance](ctx, a.client, "account", "balancemulti", params)
}

// Transactions returns a query over the normal transaction history of
// an address.
func (a *Accounts) Transactions(address string) *TransactionQuery {
	return &TransactionQuery{client: a.client, address: address, action: "txlist"}
}

// InternalTransactions returns the entry point for internal-transaction
// queries. Internal transactions can be looked up by address, by parent
// transaction hash, or by block range; the three modes accept different
// parameters and are therefore separate query types.
func (a *Accounts) InternalTransactions() InternalTransactionQuery {
	return InternalTransactionQuery{client: a.client}
}

// TokenTransfers returns a query over the ERC-20 transfer history of an
// address.
func (a *Accounts) TokenTransfers(address string) *TokenTransferQuery {
	return &TokenTransferQuery{client: a.client, address: address, action: "tokentx"}
}

// NFTTransfers returns a query over the ERC-721 transfer history of an
// address.
func (a *Accounts) NFTTransfers(address string) *TokenTransferQuery {
	return &TokenTransferQuery{client: a.client, address: address, action: "tokennfttx"}
}

// ERC1155Transfers returns a query over the ERC-1155 transfer history
// of an address.
func (a *Accounts) ERC1155Transfers(address string) *TokenTransferQuery {
	return &TokenTransferQuery{client: a.client, address: address, action: "token1155tx"}
}

// TokenBalances fetches the ERC-20 tokens currently held by an address.
func (a *Accounts) TokenBalances(ctx context.Context, address string) ([]TokenBalance, error) {
	addr, err := ParseAddress(address)
	if err != nil {
		return nil, err
	}
	params := []queryParam{
		{"address", addr.String()},
		{"tag", string(TagLatest)},
	}
	return apiGet[[]TokenBalance](ctx, a.client, "account", "tokenlist", params)
}

// BlocksValidated returns a query over the blocks proposed by a
// validator address.
func (a *Accounts) BlocksValidated(address string) *ValidatedBlocksQuery {
	return &ValidatedBlocksQuery{client: a.client, address: address}
}

// BeaconWithdrawals returns a query over the beacon-chain withdrawals
// credited to an address.
func (a *Accounts) BeaconWithdrawals(address string) *BeaconWithdrawalsQuery {
	return &BeaconWithdrawalsQuery{client: a.client, address: address}
}

// HistoricalBalance returns a query for an address's balance at a past
// block.
func (a *Accounts) HistoricalBalance(address string) *HistoricalBalanceQuery {
	return &HistoricalBalanceQuery{client: a.client, address: address}
}

// TransactionQuery fetches the normal transaction history of one
// address with optional pagination and block-range filtering.
type TransactionQuery struct {
	client     *Client
	address    string
	action     string
	pagination Pagination
}

// Page sets the page number, starting from 1.
func (q *TransactionQuery) Page(page uint32) *TransactionQuery {
	q.pagination = q.pagination.Page(page)
	return q
}

// Offset sets the number of transactions per page.
func (q *TransactionQuery) Offset(offset uint32) *TransactionQuery {
	q.pagination = q.pagination.Offset(offset)
	return q
}

// StartBlock sets the inclusive starting block number.
func (q *TransactionQuery) StartBlock(block uint64) *TransactionQuery {
	q.pagination = q.pagination.StartBlock(block)
	return q
}

// EndBlock sets the inclusive ending block number.
func (q *TransactionQuery) EndBlock(block uint64) *TransactionQuery {
	q.pagination = q.pagination.EndBlock(block)
	return q
}

// Sort sets the result ordering.
func (q *TransactionQuery) Sort(sort Sort) *TransactionQuery {
	q.pagination = q.pagination.Sort(sort)
	return q
}

// BlockRange sets both block bounds at once.
func (q *TransactionQuery) BlockRange(start, end uint64) *TransactionQuery {
	q.pagination = q.pagination.BlockRange(start, end)
	return q
}

// Do validates the address and executes the query.
func (q *TransactionQuery) Do(ctx context.Context) ([]Transaction, error) {
	addr, err := ParseAddress(q.address)
	if err != nil {
		return nil, err
	}
	params := append([]queryParam{{"address", addr.String()}}, q.pagination.queryParams()...)
	return apiGet[[]Transaction](ctx, q.client, "account", q.action, params)
}

// TokenTransferQuery fetches the token transfer history of one
// address. The same query shape serves ERC-20, ERC-721 and ERC-1155
// lookups; only the upstream action differs.
type TokenTransferQuery struct {
	client          *Client
	address         string
	action          string
	contractAddress string
	pagination      Pagination
}

// ContractAddress restricts results to a single token contract.
func (q *TokenTransferQuery) ContractAddress(address string) *TokenTransferQuery {
	q.contractAddress = address
	return q
}

// Page sets the page number, starting from 1.
func (q *TokenTransferQuery) Page(page uint32) *TokenTransferQuery {
	q.pagination = q.pagination.Page(page)
	return q
}

// Offset sets the number of transfers per page.
func (q *TokenTransferQuery) Offset(offset uint32) *TokenTransferQuery {
	q.pagination = q.pagination.Offset(offset)
	return q
}

// StartBlock sets the inclusive starting block number.
func (q *TokenTransferQuery) StartBlock(block uint64) *TokenTransferQuery {
	q.pagination = q.pagination.StartBlock(block)
	return q
}

// EndBlock sets the inclusive ending block number.
func (q *TokenTransferQuery) EndBlock(block uint64) *TokenTransferQuery {
	q.pagination = q.pagination.EndBlock(block)
	return q
}

// Sort sets the result ordering.
func (q *TokenTransferQuery) Sort(sort Sort) *TokenTransferQuery {
	q.pagination = q.pagination.Sort(sort)
	return q
}

// BlockRange sets both block bounds at once.
func (q *TokenTransferQuery) BlockRange(start, end uint64) *TokenTransferQuery {
	q.pagination = q.pagination.BlockRange(start, end)
	return q
}

// Do validates the addresses and executes the query.
func (q *TokenTransferQuery) Do(ctx context.Context) ([]TokenTransfer, error) {
	addr, err := ParseAddress(q.address)
	if err != nil {
		return nil, err
	}
	params := []queryParam{{"address", addr.String()}}
	if q.contractAddress != "" {
		contract, err := ParseAddress(q.contractAddress)
		if err != nil {
			return nil, err
		}
		params = append(params, queryParam{"contractaddress", contract.String()})
	}
	params = append(params, q.pagination.queryParams()...)
	return apiGet[[]TokenTransfer](ctx, q.client, "account", q.action, params)
}

// InternalTransactionQuery dispatches to one of the three
// internal-transaction query modes.
type InternalTransactionQuery struct {
	client *Client
}

// ByAddress queries the internal transactions involving one address.
func (q InternalTransactionQuery) ByAddress(address string) *InternalTxByAddressQuery {
	return &InternalTxByAddressQuery{client: q.client, address: address}
}

// ByHash queries the internal transactions produced by one parent
// transaction. The result is the full call list; this mode has no
// pagination.
func (q InternalTransactionQuery) ByHash(txHash string) *InternalTxByHashQuery {
	return &InternalTxByHashQuery{client: q.client, txHash: txHash}
}

// ByBlockRange queries the internal transactions within an inclusive
// block range. Results default to ascending block order.
func (q InternalTransactionQuery) ByBlockRange(startBlock, endBlock uint64) *InternalTxByBlockRangeQuery {
	return &InternalTxByBlockRangeQuery{
		client:     q.client,
		startBlock: startBlock,
		endBlock:   endBlock,
		pagination: Pagination{}.Sort(SortAscending),
	}
}

// InternalTxByAddressQuery fetches internal transactions by address
// with full pagination and block-range filtering.
type InternalTxByAddressQuery struct {
	client     *Client
	address    string
	pagination Pagination
}

// Page sets the page number, starting from 1.
func (q *InternalTxByAddressQuery) Page(page uint32) *InternalTxByAddressQuery {
	q.pagination = q.pagination.Page(page)
	return q
}

// Offset sets the number of results per page.
func (q *InternalTxByAddressQuery) Offset(offset uint32) *InternalTxByAddressQuery {
	q.pagination = q.pagination.Offset(offset)
	return q
}

// StartBlock sets the inclusive starting block number.
func (q *InternalTxByAddressQuery) StartBlock(block uint64) *InternalTxByAddressQuery {
	q.pagination = q.pagination.StartBlock(block)
	return q
}

// EndBlock sets the inclusive ending block number.
func (q *InternalTxByAddressQuery) EndBlock(block uint64) *InternalTxByAddressQuery {
	q.pagination = q.pagination.EndBlock(block)
	return q
}

// Sort sets the result ordering.
func (q *InternalTxByAddressQuery) Sort(sort Sort) *InternalTxByAddressQuery {
	q.pagination = q.pagination.Sort(sort)
	return q
}

// BlockRange sets both block bounds at once.
func (q *InternalTxByAddressQuery) BlockRange(start, end uint64) *InternalTxByAddressQuery {
	q.pagination = q.pagination.BlockRange(start, end)
	return q
}

// Do validates the address and executes the query.
func (q *InternalTxByAddressQuery) Do(ctx context.Context) ([]InternalTransaction, error) {
	addr, err := ParseAddress(q.address)
	if err != nil {
		return nil, err
	}
	params := append([]queryParam{{"address", addr.String()}}, q.pagination.queryParams()...)
	return apiGet[[]InternalTransaction](ctx, q.client, "account", "txlistinternal", params)
}

// InternalTxByHashQuery fetches all internal transactions of one
// parent transaction.
type InternalTxByHashQuery struct {
	client *Client
	txHash string
}

// Do validates the hash and executes the query.
func (q *InternalTxByHashQuery) Do(ctx context.Context) ([]InternalTransaction, error) {
	hash, err := ParseTxHash(q.txHash)
	if err != nil {
		return nil, err
	}
	params := []queryParam{{"txhash", hash.String()}}
	return apiGet[[]InternalTransaction](ctx, q.client, "account", "txlistinternal", params)
}

// InternalTxByBlockRangeQuery fetches internal transactions within a
// mandatory block range.
type InternalTxByBlockRangeQuery struct {
	client     *Client
	startBlock uint64
	endBlock   uint64
	pagination Pagination
}

// Page sets the page number, starting from 1.
func (q *InternalTxByBlockRangeQuery) Page(page uint32) *InternalTxByBlockRangeQuery {
	q.pagination = q.pagination.Page(page)
	return q
}

// Offset sets the number of results per page.
func (q *InternalTxByBlockRangeQuery) Offset(offset uint32) *InternalTxByBlockRangeQuery {
	q.pagination = q.pagination.Offset(offset)
	return q
}

// Sort overrides the default ascending ordering.
func (q *InternalTxByBlockRangeQuery) Sort(sort Sort) *InternalTxByBlockRangeQuery {
	q.pagination = q.pagination.Sort(sort)
	return q
}

// Do executes the query.
func (q *InternalTxByBlockRangeQuery) Do(ctx context.Context) ([]InternalTransaction, error) {
	params := []queryParam{
		{"startblock", strconv.FormatUint(q.startBlock, 10)},
		{"endblock", strconv.FormatUint(q.endBlock, 10)},
	}
	params = append(params, q.pagination.queryParams()...)
	return apiGet[[]InternalTransaction](ctx, q.client, "account", "txlistinternal", params)
}

// ValidatedBlocksQuery fetches the blocks proposed by a validator
// address.
type ValidatedBlocksQuery struct {
	client     *Client
	address    string
	pagination Pagination
}

// Page sets the page number, starting from 1.
func (q *ValidatedBlocksQuery) Page(page uint32) *ValidatedBlocksQuery {
	q.pagination = q.pagination.Page(page)
	return q
}

// Offset sets the number of results per page.
func (q *ValidatedBlocksQuery) Offset(offset uint32) *ValidatedBlocksQuery {
	q.pagination = q.pagination.Offset(offset)
	return q
}

// Do validates the address and executes the query.
func (q *ValidatedBlocksQuery) Do(ctx context.Context) ([]ValidatedBlock, error) {
	addr, err := ParseAddress(q.address)
	if err != nil {
		return nil, err
	}
	params := append([]queryParam{{"address", addr.String()}}, q.pagination.queryParams()...)
	return apiGet[[]ValidatedBlock](ctx, q.client, "account", "getminedblocks", params)
}

// BeaconWithdrawalsQuery fetches the beacon-chain withdrawals credited
// to an address.
type BeaconWithdrawalsQuery struct {
	client     *Client
	address    string
	startBlock *uint64
	endBlock   *uint64
	pagination Pagination
}

// StartBlock sets the inclusive starting block number.
func (q *BeaconWithdrawalsQuery) StartBlock(block uint64) *BeaconWithdrawalsQuery {
	q.startBlock = &block
	return q
}

// EndBlock sets the inclusive ending block number.
func (q *BeaconWithdrawalsQuery) EndBlock(block uint64) *BeaconWithdrawalsQuery {
	q.endBlock = &block
	return q
}

// BlockRange sets both block bounds at once.
func (q *BeaconWithdrawalsQuery) BlockRange(start, end uint64) *BeaconWithdrawalsQuery {
	q.startBlock = &start
	q.endBlock = &end
	return q
}

// Page sets the page number, starting from 1.
func (q *BeaconWithdrawalsQuery) Page(page uint32) *BeaconWithdrawalsQuery {
	q.pagination = q.pagination.Page(page)
	return q
}

// Offset sets the number of results per page.
func (q *BeaconWithdrawalsQuery) Offset(offset uint32) *BeaconWithdrawalsQuery {
	q.pagination = q.pagination.Offset(offset)
	return q
}

// Sort sets the result ordering.
func (q *BeaconWithdrawalsQuery) Sort(sort Sort) *BeaconWithdrawalsQuery {
	q.pagination = q.pagination.Sort(sort)
	return q
}

// Do validates the address and executes the query.
func (q *BeaconWithdrawalsQuery) Do(ctx context.Context) ([]BeaconWithdrawal, error) {
	addr, err := ParseAddress(q.address)
	if err != nil {
		return nil, err
	}
	params := []queryParam{{"address", addr.String()}}
	if q.startBlock != nil {
		params = append(params, queryParam{"startblock", strconv.FormatUint(*q.startBlock, 10)})
	}
	if q.endBlock != nil {
		params = append(params, queryParam{"endblock", strconv.FormatUint(*q.endBlock, 10)})
	}
	params = append(params, q.pagination.queryParams()...)
	return apiGet[[]BeaconWithdrawal](ctx, q.client, "account", "beaconwithdrawal", params)
}

// HistoricalBalanceQuery fetches an address's ETH balance at a past
// block. When no block is set, the query resolves against the latest
// block rather than omitting the parameter.
type HistoricalBalanceQuery struct {
	client      *Client
	address     string
	blockNumber *uint64
}

// AtBlock sets the block number to resolve the balance at.
func (q *HistoricalBalanceQuery) AtBlock(block uint64) *HistoricalBalanceQuery {
	q.blockNumber = &block
	return q
}

// Do validates the address and executes the query.
func (q *HistoricalBalanceQuery) Do(ctx context.Context) (*Balance, error) {
	addr, err := ParseAddress(q.address)
	if err != nil {
		return nil, err
	}
	tag := TagLatest
	if q.blockNumber != nil {
		tag = BlockTag(*q.blockNumber)
	}
	params := []queryParam{
		{"address", addr.String()},
		{"tag", string(tag)},
	}
	balance, err := apiGet[Balance](ctx, q.client, "account", "balance", params)
	if err != nil {
		return nil, err
	}
	if balance.Account == "" {
		balance.Account = addr
	}
	return &balance, nil
}
