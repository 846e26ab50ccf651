package argv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

//
// Tests -----------------------------------------------------------------------------------
//

// TestClassify checks that every raw argument shape maps onto exactly one token.
func TestClassify(t *testing.T) {
	tt := []struct {
		name string
		arg  string
		exp  token
	}{
		{
			name: "bare word",
			arg:  "make",
			exp:  token{class: tokenBare, text: "make"},
		},
		{
			name: "bare word with inner dash",
			arg:  "two-words",
			exp:  token{class: tokenBare, text: "two-words"},
		},
		{
			name: "bare word with equals sign",
			arg:  "key=value",
			exp:  token{class: tokenBare, text: "key=value"},
		},
		{
			name: "short option",
			arg:  "-o",
			exp:  token{class: tokenOption, kind: Short, key: "o"},
		},
		{
			name: "short option with long key",
			arg:  "-out",
			exp:  token{class: tokenOption, kind: Short, key: "out"},
		},
		{
			name: "short option with inline value",
			arg:  "-o=dist",
			exp:  token{class: tokenOption, kind: Short, key: "o", value: "dist"},
		},
		{
			name: "long option",
			arg:  "--input",
			exp:  token{class: tokenOption, kind: Long, key: "input"},
		},
		{
			name: "long option with inline value",
			arg:  "--name=John",
			exp:  token{class: tokenOption, kind: Long, key: "name", value: "John"},
		},
		{
			name: "inline value keeps later equals signs",
			arg:  "--filter=a=b",
			exp:  token{class: tokenOption, kind: Long, key: "filter", value: "a=b"},
		},
		{
			name: "empty inline value",
			arg:  "--flag=",
			exp:  token{class: tokenOption, kind: Long, key: "flag"},
		},
		{
			name: "lone dash",
			arg:  "-",
			exp:  token{class: tokenOption, kind: Short},
		},
		{
			name: "double dash",
			arg:  "--",
			exp:  token{class: tokenOption, kind: Long},
		},
		{
			name: "triple dash keeps the extra dash in the key",
			arg:  "---v",
			exp:  token{class: tokenOption, kind: Long, key: "-v"},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.exp, classify(tc.arg))
		})
	}
}
