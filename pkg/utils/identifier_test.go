package utils_test

import (
	"testing"

	"github.com/sqlbundle/sqlbundle/pkg/utils"
	"github.com/stretchr/testify/require"
)

func TestBracketIdentifier(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple_name", "Sales", "[Sales]"},
		{"already_bracketed", "[Sales]", "[Sales]"},
		{"empty", "", ""},
		{"name_with_underscore", "_Migrations", "[_Migrations]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, utils.BracketIdentifier(tt.input))
		})
	}
}

func TestIsBracketed(t *testing.T) {
	require.True(t, utils.IsBracketed("[Sales]"))
	require.False(t, utils.IsBracketed("Sales"))
	require.False(t, utils.IsBracketed("[a].[b]"))
	require.False(t, utils.IsBracketed(""))
	require.False(t, utils.IsBracketed("["))
}

func TestStripBrackets(t *testing.T) {
	require.Equal(t, "Sales", utils.StripBrackets("[Sales]"))
	require.Equal(t, "Sales", utils.StripBrackets("Sales"))
	require.Equal(t, "", utils.StripBrackets(""))
}
