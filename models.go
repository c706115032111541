package etherscan

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	weiPerEthExp  = -18
	weiPerGweiExp = -9
)

func weiToEth(n BigNumber) (decimal.Decimal, bool) {
	d, ok := n.Decimal()
	if !ok {
		return decimal.Decimal{}, false
	}
	return d.Shift(weiPerEthExp), true
}

func weiToGwei(n BigNumber) (decimal.Decimal, bool) {
	d, ok := n.Decimal()
	if !ok {
		return decimal.Decimal{}, false
	}
	return d.Shift(weiPerGweiExp), true
}

// Balance is an account's ETH balance in wei. The balance endpoint
// returns the amount as a bare string while the multi-address variant
// returns {account, balance} objects; both shapes decode into this
// type.
type Balance struct {
	Account Address
	Wei     BigNumber
}

func (b *Balance) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var wei BigNumber
		if err := json.Unmarshal(data, &wei); err != nil {
			return err
		}
		*b = Balance{Wei: wei}
		return nil
	}
	var aux struct {
		Account Address   `json:"account"`
		Balance BigNumber `json:"balance"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*b = Balance{Account: aux.Account, Wei: aux.Balance}
	return nil
}

// Eth returns the balance denominated in ETH.
func (b Balance) Eth() (decimal.Decimal, bool) {
	return weiToEth(b.Wei)
}

// Gwei returns the balance denominated in gwei.
func (b Balance) Gwei() (decimal.Decimal, bool) {
	return weiToGwei(b.Wei)
}

// Transaction is one entry of an address's normal transaction history.
type Transaction struct {
	BlockNumber       StringNumber     `json:"blockNumber"`
	BlockHash         string           `json:"blockHash"`
	TransactionIndex  StringNumber     `json:"transactionIndex"`
	Hash              TxHash           `json:"hash"`
	Nonce             StringNumber     `json:"nonce"`
	From              Address          `json:"from"`
	To                Address          `json:"to"`
	Value             BigNumber        `json:"value"`
	Gas               StringNumber     `json:"gas"`
	GasPrice          BigNumber        `json:"gasPrice"`
	GasUsed           StringNumber     `json:"gasUsed"`
	CumulativeGasUsed StringNumber     `json:"cumulativeGasUsed"`
	Input             string           `json:"input"`
	Timestamp         StringNumber     `json:"timeStamp"`
	MethodID          string           `json:"methodId"`
	FunctionName      string           `json:"functionName"`
	ReceiptStatus     NullStringNumber `json:"txreceipt_status"`
	Confirmations     NullStringNumber `json:"confirmations"`
	IsError           NullStringNumber `json:"isError"`
}

// ValueEth returns the transferred amount in ETH.
func (t *Transaction) ValueEth() (decimal.Decimal, bool) {
	return weiToEth(t.Value)
}

// GasPriceGwei returns the gas price in gwei.
func (t *Transaction) GasPriceGwei() (decimal.Decimal, bool) {
	return weiToGwei(t.GasPrice)
}

// FeeEth returns gasUsed * gasPrice denominated in ETH.
func (t *Transaction) FeeEth() (decimal.Decimal, bool) {
	price, ok := t.GasPrice.Decimal()
	if !ok {
		return decimal.Decimal{}, false
	}
	fee := price.Mul(decimal.NewFromUint64(t.GasUsed.Value()))
	return fee.Shift(weiPerEthExp), true
}

// Successful reports whether the transaction succeeded. Transactions
// predating the receipt-status hard fork carry no status and are
// assumed successful.
func (t *Transaction) Successful() bool {
	if !t.ReceiptStatus.Valid {
		return true
	}
	return t.ReceiptStatus.Uint64 == 1
}

// HasError reports whether the isError flag is set.
func (t *Transaction) HasError() bool {
	return t.IsError.Valid && t.IsError.Uint64 == 1
}

// IsContractCreation reports whether the transaction created a
// contract (no recipient, or the zero address).
func (t *Transaction) IsContractCreation() bool {
	return t.To == "" || t.To.IsZero()
}

// MethodSignature returns the 4-byte selector prefix of the input
// data, if present.
func (t *Transaction) MethodSignature() (string, bool) {
	if strings.HasPrefix(t.Input, "0x") && len(t.Input) >= 10 {
		return t.Input[:10], true
	}
	return "", false
}

// InternalTransaction is a message call produced during the execution
// of a parent transaction.
type InternalTransaction struct {
	BlockNumber     StringNumber `json:"blockNumber"`
	Hash            TxHash       `json:"hash"`
	From            Address      `json:"from"`
	To              Address      `json:"to"`
	Value           BigNumber    `json:"value"`
	ContractAddress Address      `json:"contractAddress"`
	Input           string       `json:"input"`
	Type            string       `json:"type"`
	Gas             StringNumber `json:"gas"`
	GasUsed         StringNumber `json:"gasUsed"`
	TraceID         string       `json:"traceId"`
	IsError         StringNumber `json:"isError"`
	ErrCode         string       `json:"errCode"`
	Timestamp       StringNumber `json:"timeStamp"`
}

// ValueEth returns the transferred amount in ETH.
func (t *InternalTransaction) ValueEth() (decimal.Decimal, bool) {
	return weiToEth(t.Value)
}

// HasError reports whether this internal call failed.
func (t *InternalTransaction) HasError() bool {
	return t.IsError.Value() == 1
}

// IsContractCreation reports whether this call deployed a contract.
func (t *InternalTransaction) IsContractCreation() bool {
	return t.Type == "create" || t.ContractAddress != ""
}

// TokenTransfer is one ERC-20, ERC-721 or ERC-1155 transfer event.
type TokenTransfer struct {
	BlockNumber      StringNumber     `json:"blockNumber"`
	BlockHash        string           `json:"blockHash"`
	Hash             TxHash           `json:"hash"`
	TransactionIndex StringNumber     `json:"transactionIndex"`
	From             Address          `json:"from"`
	To               Address          `json:"to"`
	ContractAddress  Address          `json:"contractAddress"`
	Value            BigNumber        `json:"value"`
	TokenName        string           `json:"tokenName"`
	TokenSymbol      string           `json:"tokenSymbol"`
	TokenDecimal     StringNumber     `json:"tokenDecimal"`
	TokenID          BigNumber        `json:"tokenID"`
	GasPrice         BigNumber        `json:"gasPrice"`
	GasUsed          StringNumber     `json:"gasUsed"`
	Timestamp        StringNumber     `json:"timeStamp"`
	LogIndex         StringNumber     `json:"logIndex"`
	Confirmations    NullStringNumber `json:"confirmations"`
}

// DecimalValue returns the transferred amount scaled by the token's
// decimals.
func (t *TokenTransfer) DecimalValue() (decimal.Decimal, bool) {
	d, ok := t.Value.Decimal()
	if !ok {
		return decimal.Decimal{}, false
	}
	return d.Shift(-int32(t.TokenDecimal.Value())), true
}

// IsNFT reports whether this transfer carries a token id, which is the
// ERC-721/1155 shape.
func (t *TokenTransfer) IsNFT() bool {
	return t.TokenID != "" || t.TokenDecimal.Value() == 0
}

// GasPriceGwei returns the gas price in gwei.
func (t *TokenTransfer) GasPriceGwei() (decimal.Decimal, bool) {
	return weiToGwei(t.GasPrice)
}

// TokenBalance is one entry of an address's ERC-20 holdings.
type TokenBalance struct {
	ContractAddress Address          `json:"TokenAddress"`
	Name            string           `json:"TokenName"`
	Symbol          string           `json:"TokenSymbol"`
	Decimals        NullStringNumber `json:"TokenDecimal"`
	Quantity        BigNumber        `json:"TokenQuantity"`
}

// DecimalQuantity returns the held amount scaled by the token's
// decimals, when the decimals are known.
func (b *TokenBalance) DecimalQuantity() (decimal.Decimal, bool) {
	if !b.Decimals.Valid {
		return decimal.Decimal{}, false
	}
	d, ok := b.Quantity.Decimal()
	if !ok {
		return decimal.Decimal{}, false
	}
	return d.Shift(-int32(b.Decimals.Uint64)), true
}

// IsZero reports whether the held amount is zero.
func (b *TokenBalance) IsZero() bool {
	return b.Quantity == "0"
}

// ValidatedBlock is one block proposed by a validator address.
type ValidatedBlock struct {
	BlockNumber StringNumber `json:"blockNumber"`
	Timestamp   StringNumber `json:"timeStamp"`
	BlockReward BigNumber    `json:"blockReward"`
}

// RewardEth returns the block reward in ETH.
func (b *ValidatedBlock) RewardEth() (decimal.Decimal, bool) {
	return weiToEth(b.BlockReward)
}

// BeaconWithdrawal is one beacon-chain withdrawal credited to an
// address. Amounts are denominated in gwei upstream.
type BeaconWithdrawal struct {
	WithdrawalIndex StringNumber `json:"withdrawalIndex"`
	ValidatorIndex  StringNumber `json:"validatorIndex"`
	Address         Address      `json:"address"`
	AmountGwei      BigNumber    `json:"amount"`
	BlockNumber     StringNumber `json:"blockNumber"`
	Timestamp       StringNumber `json:"timestamp"`
}

// AmountEth returns the withdrawn amount in ETH.
func (w *BeaconWithdrawal) AmountEth() (decimal.Decimal, bool) {
	d, ok := w.AmountGwei.Decimal()
	if !ok {
		return decimal.Decimal{}, false
	}
	return d.Shift(-9), true
}

// AmountWei returns the withdrawn amount in wei.
func (w *BeaconWithdrawal) AmountWei() (decimal.Decimal, bool) {
	d, ok := w.AmountGwei.Decimal()
	if !ok {
		return decimal.Decimal{}, false
	}
	return d.Shift(9), true
}
