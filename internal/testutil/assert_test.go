package testutil

import (
	"errors"
	"fmt"
	"testing"
)

// Only success paths can be exercised without a fake testing.TB.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, 42, 42, "value should be %d", 42)
}

func TestAssertSameElements_Success(t *testing.T) {
	AssertSameElements(t, []string{"e2e4", "d2d4"}, []string{"d2d4", "e2e4"})
	AssertSameElements(t, nil, []string{})
}

func TestAssertErrorIs_Success(t *testing.T) {
	base := errors.New("base")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", base), base)
	AssertNoError(t, nil)
}

func TestAssertContains_Success(t *testing.T) {
	AssertContains(t, "hello world", "world")
	AssertContains(t, "test", "")
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"plain string", []interface{}{"msg"}, "msg"},
		{"format", []interface{}{"depth %d", 3}, "depth 3"},
		{"non-string", []interface{}{42}, "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestPerftCasesWellFormed(t *testing.T) {
	for _, c := range PerftCases {
		if len(c.Nodes) == 0 {
			t.Errorf("%s: no node counts", c.Name)
		}
		for i := 1; i < len(c.Nodes); i++ {
			if c.Nodes[i] <= c.Nodes[i-1] {
				t.Errorf("%s: counts not increasing at depth %d", c.Name, i+1)
			}
		}
	}
}
