package cli

import (
	"bytes"
	"slices"
	"testing"
)

func TestNormalizeArgs(t *testing.T) {
	root := New(&bytes.Buffer{}, &bytes.Buffer{}, LogInfo).RootCommand()

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"empty", nil, nil},
		{"positive count", []string{"50"}, []string{"50"}},
		{"negative count", []string{"-5"}, []string{"--", "-5"}},
		{"negative before flags", []string{"-5", "-o", "out.json"}, []string{"-o", "out.json", "--", "-5"}},
		{"negative after flags", []string{"-o", "out.json", "-12"}, []string{"-o", "out.json", "--", "-12"}},
		{"flag value", []string{"--seed", "-5"}, []string{"--seed", "-5"}},
		{"shorthand value", []string{"-o", "-5"}, []string{"-o", "-5"}},
		{"bool flag before count", []string{"--detailed", "-5"}, []string{"--detailed", "--", "-5"}},
		{"already terminated", []string{"--", "-5"}, []string{"--", "-5"}},
		{"not a number", []string{"-x"}, []string{"-x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeArgs(root, tt.args)
			if !slices.Equal(got, tt.want) {
				t.Errorf("NormalizeArgs(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}
