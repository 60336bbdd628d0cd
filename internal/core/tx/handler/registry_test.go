package handler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kohla-sky/sample-program/internal/core/account"
)

type stubHandler struct {
	tag  uint8
	name string
}

func (s stubHandler) Tag() uint8 { return s.tag }
func (s stubHandler) Name() string { return s.name }
func (s stubHandler) Preflight(args []byte) error { return nil }
func (s stubHandler) Apply(context.Context, []byte, []*account.Info) (*Outcome, error) {
	return &Outcome{}, nil
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(stubHandler{tag: 2, name: "b"}))
	require.NoError(t, r.Register(stubHandler{tag: 0, name: "a"}))

	assert.Equal(t, 2, r.Count())
	assert.True(t, r.Has(0))
	assert.False(t, r.Has(1))
	assert.Nil(t, r.Get(1))
	assert.Equal(t, "b", r.Get(2).Name())
	assert.Equal(t, []uint8{0, 2}, r.Tags())
}

func TestRegistry_Duplicate(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(stubHandler{tag: 1, name: "first"})

	err := r.Register(stubHandler{tag: 1, name: "second"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "first")
	assert.Equal(t, "first", r.Get(1).Name())

	assert.Panics(t, func() { r.MustRegister(stubHandler{tag: 1}) })
}
