package subgraph

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Int decodes GraphQL integers that subgraphs serialise either as JSON numbers or
// as strings (BigInt fields).
type Int int64

func (i *Int) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		return fmt.Errorf("empty integer")
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %s: %w", string(b), err)
	}
	*i = Int(v)
	return nil
}

func (i Int) MarshalJSON() ([]byte, error) {
	return json.Marshal(int64(i))
}
