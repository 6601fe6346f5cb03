package query

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

var (
	tk     *tiktoken.Tiktoken
	tkErr  error
	tkOnce sync.Once
)

// EstimateTokens counts tokens with the cl100k_base encoding. When the
// encoding cannot be loaded (offline host), a rough len/4 estimate is
// returned instead of failing the query.
func EstimateTokens(text string) int {
	tkOnce.Do(func() {
		tk, tkErr = tiktoken.GetEncoding("cl100k_base")
	})
	if tkErr != nil {
		return len(text) / 4
	}
	return len(tk.Encode(text, nil, nil))
}
