package etherscan

import (
	"encoding/json"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// ZeroAddress is the canonical all-zero account address.
const ZeroAddress Address = "0x0000000000000000000000000000000000000000"

// Address is an Ethereum account address in canonical form: lowercase,
// 0x-prefixed, 40 hex digits. Values produced by ParseAddress always
// satisfy that invariant, so equality and map keys are plain string
// comparisons.
type Address string

// ParseAddress validates and normalizes an address. The input must be
// exactly 42 characters: a 0x prefix (case-insensitive) followed by 40
// hex digits.
func ParseAddress(raw string) (Address, error) {
	if len(raw) != 42 || !has0xPrefix(raw) || !common.IsHexAddress(raw) {
		return "", errInvalidAddress(raw)
	}
	return Address(strings.ToLower(raw)), nil
}

func (a Address) String() string {
	return string(a)
}

// IsZero reports whether this is the all-zero address.
func (a Address) IsZero() bool {
	return a == ZeroAddress
}

// UnmarshalJSON normalizes case but does not validate: response data is
// the server's responsibility, and some endpoints legitimately return
// an empty string for absent addresses (e.g. the to field of a
// contract-creation transaction).
func (a *Address) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*a = Address(strings.ToLower(s))
	return nil
}

// TxHash is a transaction hash in canonical form: lowercase,
// 0x-prefixed, 64 hex digits.
type TxHash string

// ParseTxHash validates and normalizes a transaction hash. The input
// must be exactly 66 characters: a 0x prefix (case-insensitive)
// followed by 64 hex digits.
func ParseTxHash(raw string) (TxHash, error) {
	if len(raw) != 66 || !has0xPrefix(raw) || !isHex(raw[2:]) {
		return "", errInvalidTxHash(raw)
	}
	return TxHash(strings.ToLower(raw)), nil
}

func (h TxHash) String() string {
	return string(h)
}

func (h *TxHash) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*h = TxHash(strings.ToLower(s))
	return nil
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

func isHex(s string) bool {
	for _, c := range []byte(s) {
		switch {
		case '0' <= c && c <= '9':
		case 'a' <= c && c <= 'f':
		case 'A' <= c && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// BigNumber is an arbitrary-precision non-negative integer carried as
// its decimal string representation. Wei amounts routinely exceed the
// 64-bit range, so the raw string is authoritative; the narrowing
// accessors report ok=false when the value does not fit or is not a
// well-formed numeral.
type BigNumber string

func (n BigNumber) String() string {
	return string(n)
}

// Uint64 narrows to uint64 if the value fits.
func (n BigNumber) Uint64() (uint64, bool) {
	v, err := strconv.ParseUint(string(n), 10, 64)
	return v, err == nil
}

// BigInt parses the value as a *big.Int.
func (n BigNumber) BigInt() (*big.Int, bool) {
	v, ok := new(big.Int).SetString(string(n), 10)
	return v, ok
}

// Decimal parses the value as an exact decimal.
func (n BigNumber) Decimal() (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(string(n))
	return d, err == nil
}

func (n *BigNumber) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*n = BigNumber(s)
	return nil
}

// StringNumber is a uint64 field that the API transmits as a decimal
// string (block numbers, counts, timestamps). Unmarshaling fails if
// the string is not a well-formed decimal that fits 64 bits.
type StringNumber uint64

// Value returns the numeric value.
func (n StringNumber) Value() uint64 {
	return uint64(n)
}

func (n *StringNumber) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}
	*n = StringNumber(v)
	return nil
}

func (n StringNumber) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatUint(uint64(n), 10))
}

// NullStringNumber is an optional StringNumber. The API reports absent
// values either by omitting the field or by sending an empty string
// (pre-Byzantium transactions have no txreceipt_status, for example);
// both decode to Valid == false. A present, malformed value is still a
// decode error.
type NullStringNumber struct {
	Uint64 uint64
	Valid  bool
}

func (n *NullStringNumber) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = NullStringNumber{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*n = NullStringNumber{}
		return nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}
	*n = NullStringNumber{Uint64: v, Valid: true}
	return nil
}

func (n NullStringNumber) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return json.Marshal("")
	}
	return json.Marshal(strconv.FormatUint(n.Uint64, 10))
}

// HexNumber is a uint64 field transmitted as a hex string, with or
// without a 0x prefix.
type HexNumber uint64

// Value returns the numeric value.
func (n HexNumber) Value() uint64 {
	return uint64(n)
}

func (n *HexNumber) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return err
	}
	*n = HexNumber(v)
	return nil
}

func (n HexNumber) MarshalJSON() ([]byte, error) {
	return json.Marshal("0x" + strconv.FormatUint(uint64(n), 16))
}
