package pricing

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Token identifies a currency on a chain. Native currencies and USD use the zero address.
type Token struct {
	ChainID  uint64
	Address  common.Address
	Decimals int32
	Symbol   string
	Name     string
}

// USD is the display currency. 18 decimals keeps USD amounts exact for 18-decimal inputs.
var USD = Token{Decimals: 18, Symbol: "USD", Name: "US dollar"}

func NewToken(chainID uint64, address string, decimals int32, symbol, name string) (Token, error) {
	addr, err := ParseChecksumAddress(address)
	if err != nil {
		return Token{}, err
	}
	if decimals < 0 {
		return Token{}, fmt.Errorf("%w: %s has %d decimals", ErrInvalidDecimals, symbol, decimals)
	}
	return Token{ChainID: chainID, Address: addr, Decimals: decimals, Symbol: symbol, Name: name}, nil
}

func NativeCurrency(chainID uint64, symbol string, decimals int32) Token {
	return Token{ChainID: chainID, Decimals: decimals, Symbol: symbol, Name: symbol}
}

func (t Token) Equal(o Token) bool {
	return t.ChainID == o.ChainID && t.Address == o.Address
}

func (t Token) String() string {
	if t.Symbol != "" {
		return t.Symbol
	}
	return t.Address.Hex()
}

// ParseChecksumAddress accepts a 20-byte hex address. All-lowercase and
// all-uppercase inputs carry no checksum and are accepted; mixed case must match EIP-55.
func ParseChecksumAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	hex := s
	if strings.HasPrefix(hex, "0x") || strings.HasPrefix(hex, "0X") {
		hex = hex[2:]
	}
	addr := common.HexToAddress(s)
	if hex != strings.ToLower(hex) && hex != strings.ToUpper(hex) && addr.Hex()[2:] != hex {
		return common.Address{}, fmt.Errorf("%w: bad checksum %q", ErrInvalidAddress, s)
	}
	return addr, nil
}
