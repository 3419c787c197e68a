package validator

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

type sample struct {
	Amount     string `form:"monto" binding:"required"`
	ProposalID string `form:"voto" binding:"required,numeric"`
	Note       string `json:"note" binding:"max=3"`
}

func TestGetErrorMsgUsesTagNames(t *testing.T) {
	Init()

	err := binding.Validator.ValidateStruct(&sample{})
	msg := GetErrorMsg(err)
	assert.Contains(t, msg, "monto is required")
	assert.Contains(t, msg, "voto is required")
	assert.True(t, MissingOnly(err))

	err = binding.Validator.ValidateStruct(&sample{Amount: "0.01", ProposalID: "abc", Note: "toolong"})
	msg = GetErrorMsg(err)
	assert.Contains(t, msg, "voto must be numeric")
	assert.Contains(t, msg, "note must be at most 3")
	assert.False(t, MissingOnly(err))
}

func TestGetErrorMsgFallback(t *testing.T) {
	assert.Equal(t, "Invalid request parameters", GetErrorMsg(errors.New("boom")))
	assert.False(t, MissingOnly(errors.New("boom")))
}
