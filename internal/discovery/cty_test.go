package discovery

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestCtyToNative(t *testing.T) {
	tests := []struct {
		name string
		in   cty.Value
		want any
	}{
		{name: "string", in: cty.StringVal("TERM"), want: "TERM"},
		{name: "int", in: cty.NumberIntVal(10), want: 10},
		{name: "float", in: cty.NumberFloatVal(0.5), want: 0.5},
		{name: "bool", in: cty.True, want: true},
		{name: "null", in: cty.NullVal(cty.String), want: nil},
		{name: "unknown", in: cty.UnknownVal(cty.String), want: nil},
		{
			name: "list",
			in:   cty.ListVal([]cty.Value{cty.StringVal("a"), cty.StringVal("b")}),
			want: []any{"a", "b"},
		},
		{
			name: "tuple",
			in:   cty.TupleVal([]cty.Value{cty.StringVal("a"), cty.NumberIntVal(1)}),
			want: []any{"a", 1},
		},
		{name: "empty tuple", in: cty.EmptyTupleVal, want: []any{}},
		{
			name: "map",
			in:   cty.MapVal(map[string]cty.Value{"APP_ENV": cty.StringVal("prod")}),
			want: map[string]any{"APP_ENV": "prod"},
		},
		{
			name: "nested object",
			in: cty.ObjectVal(map[string]cty.Value{
				"autorestart": cty.True,
				"environment": cty.ObjectVal(map[string]cty.Value{
					"DEBUG": cty.StringVal("0"),
				}),
			}),
			want: map[string]any{
				"autorestart": true,
				"environment": map[string]any{"DEBUG": "0"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ctyToNative(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCtyToNative_Unsupported(t *testing.T) {
	_, err := ctyToNative(cty.CapsuleVal(cty.Capsule("thing", reflect.TypeOf(0)), new(int)))

	assert.Error(t, err)
}
