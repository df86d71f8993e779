package activity

import (
	"encoding/json"
	"strings"
)

// SplitList turns one comma-delimited input ("apple, banana ,  pear") into
// ordered tokens, trimming whitespace per token. Empty tokens are kept;
// they only appear when the user typed consecutive commas. A fully empty
// input yields nil. Splitting the output of JoinList reproduces the same
// tokens, so normalization is idempotent after one pass.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

func JoinList(tokens []string) string {
	return strings.Join(tokens, ", ")
}

// StringList is an ordered list field that also accepts the intake form's
// single comma-delimited string ("rice, beans") on decode. It always
// serializes as a JSON array.
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*l = SplitList(s)
		return nil
	}
	var arr []string
	if err := json.Unmarshal(b, &arr); err != nil {
		return err
	}
	*l = arr
	return nil
}
