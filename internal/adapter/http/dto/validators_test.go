package dto

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

// --- TrimStrings tests ---

func TestTrimStrings_TrimsWhitespace(t *testing.T) {
	req := CreateWagerRequest{OutcomeA: "  Team1 ", OutcomeB: "\tTeam2\n"}
	TrimStrings(&req)

	assert.Equal(t, "Team1", req.OutcomeA)
	assert.Equal(t, "Team2", req.OutcomeB)
}

func TestTrimStrings_HandlesPointerString(t *testing.T) {
	label := "  Final  "
	req := CreateWagerRequest{OutcomeA: "A", OutcomeB: "B", Label: &label}
	TrimStrings(&req)

	assert.Equal(t, "Final", *req.Label)
}

func TestTrimStrings_NilPointerIsNoOp(t *testing.T) {
	req := CreateWagerRequest{OutcomeA: "A", OutcomeB: "B"}
	TrimStrings(&req)
	assert.Nil(t, req.Label)
}

func TestTrimStrings_NonPointerIsNoOp(t *testing.T) {
	req := CreateWagerRequest{OutcomeA: "  A  "}
	TrimStrings(req)
	assert.Equal(t, "  A  ", req.OutcomeA)
}

// --- custom validator tests ---

func TestValidateSide(t *testing.T) {
	tests := []struct {
		side  string
		valid bool
	}{
		{"A", true},
		{"b", true},
		{"VOID", false},
		{"C", false},
	}

	for _, tt := range tests {
		t.Run(tt.side, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(AcceptRequest{Side: tt.side})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateResult(t *testing.T) {
	tests := []struct {
		result string
		valid  bool
	}{
		{"A", true},
		{"B", true},
		{"void", true},
		{"DRAW", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.result, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(SettleRequest{Result: tt.result})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
