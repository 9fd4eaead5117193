package codec

import (
	"net/url"
	"strings"

	"github.com/neighborswap/proposal-exchange/internal/proposals/domain"
)

// eqOperator prefixes a value with the store's equality filter operator.
const eqOperator = "eq."

// QueryParam is one ordered key/value pair of a list query
type QueryParam struct {
	Key   string
	Value string
}

// EncodeFilterQuery always selects every column and adds an acquirer filter
// when one is set.
func EncodeFilterQuery(f domain.Filter) []QueryParam {
	params := []QueryParam{{Key: "select", Value: "*"}}
	if f.AcquirerID != nil {
		params = append(params, QueryParam{Key: "acquirer_id", Value: eqOperator + *f.AcquirerID})
	}
	return params
}

// RawQuery renders params in order. url.Values would sort them by key.
// '*' is left unescaped so the select list reads as the store documents it.
func RawQuery(params []QueryParam) string {
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(queryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(queryEscape(p.Value))
	}
	return b.String()
}

func queryEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "%2A", "*")
}
