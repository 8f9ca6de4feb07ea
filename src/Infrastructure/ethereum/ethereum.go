package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"time"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const erc20ABI = `[
	{
		"constant": true,
		"inputs": [{"name": "owner", "type": "address"}],
		"name": "balanceOf",
		"outputs": [{"name": "", "type": "uint256"}],
		"type": "function"
	}
]`

// Multicall2 aggregate: reverts as a whole if any inner call fails.
const multicallABI = `[
	{
		"inputs": [
			{
				"components": [
					{"internalType": "address", "name": "target", "type": "address"},
					{"internalType": "bytes", "name": "callData", "type": "bytes"}
				],
				"internalType": "struct Multicall2.Call[]",
				"name": "calls",
				"type": "tuple[]"
			}
		],
		"name": "aggregate",
		"outputs": [
			{"internalType": "uint256", "name": "blockNumber", "type": "uint256"},
			{"internalType": "bytes[]", "name": "returnData", "type": "bytes[]"}
		],
		"stateMutability": "nonpayable",
		"type": "function"
	}
]`

// Errors
var (
	ErrConnectNetwork = errors.New("failed to connect to network")
	ErrParseABI       = errors.New("failed to parse ABI")
	ErrMulticall      = errors.New("multicall failed")
	ErrDecode         = errors.New("failed to decode call result")
)

var (
	ERC20ABI     abi.ABI
	MulticallABI abi.ABI
)

func init() {
	var err error
	if ERC20ABI, err = abi.JSON(strings.NewReader(erc20ABI)); err != nil {
		panic(fmt.Errorf("%w: erc20: %v", ErrParseABI, err))
	}
	if MulticallABI, err = abi.JSON(strings.NewReader(multicallABI)); err != nil {
		panic(fmt.Errorf("%w: multicall: %v", ErrParseABI, err))
	}
}

// ContractCaller is the slice of ethclient.Client the reader needs.
type ContractCaller interface {
	CallContract(ctx context.Context, call geth.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// Call is one (target, calldata) pair of a batch. Field names match the
// Multicall2.Call tuple so the struct packs directly.
type Call struct {
	Target   common.Address
	CallData []byte
}

// BalanceQuery asks for Holder's balance of the ERC20 at Token.
type BalanceQuery struct {
	Token  common.Address
	Holder common.Address
}

// Client executes read-only batches against a Multicall2 deployment.
type Client struct {
	caller     ContractCaller
	multicall  common.Address
	closer     func()
	logger     zerolog.Logger
	httpClient *http.Client
}

type Option func(*Client)

func WithLogger(l zerolog.Logger) Option { return func(c *Client) { c.logger = l } }

// WithHTTPClient is used by Dial for HTTP endpoints.
func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.httpClient = h } }

func NewClient(caller ContractCaller, multicallAddress string, opts ...Option) (*Client, error) {
	if caller == nil {
		return nil, fmt.Errorf("%w: nil contract caller", ErrConnectNetwork)
	}
	if !common.IsHexAddress(multicallAddress) {
		return nil, fmt.Errorf("%w: invalid multicall address %q", ErrConnectNetwork, multicallAddress)
	}
	c := &Client{
		caller:    caller,
		multicall: common.HexToAddress(multicallAddress),
		closer:    func() {},
		logger:    log.Logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Dial connects to a JSON-RPC endpoint. The connection is established lazily by
// the underlying rpc client for HTTP endpoints.
func Dial(ctx context.Context, rpcURL, multicallAddress string, opts ...Option) (*Client, error) {
	if rpcURL == "" {
		return nil, fmt.Errorf("%w: empty rpc url", ErrConnectNetwork)
	}
	var probe Client
	for _, opt := range opts {
		opt(&probe)
	}
	var dialOpts []rpc.ClientOption
	if probe.httpClient != nil {
		dialOpts = append(dialOpts, rpc.WithHTTPClient(probe.httpClient))
	}

	rc, err := rpc.DialOptions(ctx, rpcURL, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectNetwork, err)
	}
	ec := ethclient.NewClient(rc)
	c, err := NewClient(ec, multicallAddress, opts...)
	if err != nil {
		ec.Close()
		return nil, err
	}
	c.closer = ec.Close
	return c, nil
}

func (c *Client) Close() { c.closer() }

// Multicall executes calls in one eth_call and returns their raw return data in
// input order. Any failure fails the whole batch.
func (c *Client) Multicall(ctx context.Context, calls []Call) ([][]byte, error) {
	if len(calls) == 0 {
		return [][]byte{}, nil
	}

	data, err := MulticallABI.Pack("aggregate", calls)
	if err != nil {
		return nil, fmt.Errorf("%w: pack aggregate: %v", ErrMulticall, err)
	}

	start := time.Now()
	out, err := c.caller.CallContract(ctx, geth.CallMsg{To: &c.multicall, Data: data}, nil)
	c.logger.Info().
		Str("multicall", c.multicall.Hex()).
		Int("calls", len(calls)).
		Str("duration", time.Since(start).String()).
		Err(err).
		Msg("multicall aggregate")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMulticall, err)
	}

	values, err := MulticallABI.Unpack("aggregate", out)
	if err != nil {
		return nil, fmt.Errorf("%w: unpack aggregate: %v", ErrDecode, err)
	}
	if len(values) != 2 {
		return nil, fmt.Errorf("%w: aggregate returned %d values", ErrDecode, len(values))
	}
	returnData, ok := values[1].([][]byte)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected returnData type %T", ErrDecode, values[1])
	}
	if len(returnData) != len(calls) {
		return nil, fmt.Errorf("%w: %d results for %d calls", ErrDecode, len(returnData), len(calls))
	}
	return returnData, nil
}

// BalanceOf batches ERC20 balanceOf lookups; results follow query order.
func (c *Client) BalanceOf(ctx context.Context, queries []BalanceQuery) ([]*big.Int, error) {
	calls := make([]Call, len(queries))
	for i, q := range queries {
		data, err := ERC20ABI.Pack("balanceOf", q.Holder)
		if err != nil {
			return nil, fmt.Errorf("%w: pack balanceOf: %v", ErrMulticall, err)
		}
		calls[i] = Call{Target: q.Token, CallData: data}
	}

	results, err := c.Multicall(ctx, calls)
	if err != nil {
		return nil, err
	}

	balances := make([]*big.Int, len(results))
	for i, raw := range results {
		values, err := ERC20ABI.Unpack("balanceOf", raw)
		if err != nil {
			return nil, fmt.Errorf("%w: balanceOf(%s) on %s: %v", ErrDecode, queries[i].Holder.Hex(), queries[i].Token.Hex(), err)
		}
		balance, ok := values[0].(*big.Int)
		if !ok {
			return nil, fmt.Errorf("%w: balanceOf returned %T", ErrDecode, values[0])
		}
		balances[i] = balance
	}
	return balances, nil
}
