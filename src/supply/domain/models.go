package domain

import (
	"errors"
	"math/big"
)

var ErrNegativeSupply = errors.New("excluded balances exceed initial supply")

// Balance is one excluded holding, echoed in the report under Label.
type Balance struct {
	Label  string
	Amount *big.Int
}

type Report struct {
	Decimals          int32
	InitialSupply     *big.Int
	Excluded          []Balance
	CirculatingSupply *big.Int
}
