package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/nixcrate/internal/core/domain"
)

func TestOr(t *testing.T) {
	a := domain.Clause("a")
	b := domain.Clause("b")

	assert.Equal(t, domain.Never{}, domain.Or())
	assert.Equal(t, domain.Always{}, domain.Or(a, domain.Always{}))
	assert.Equal(t, a, domain.Or(domain.Never{}, a))
	assert.Equal(t, "(a || b)", domain.Or(a, b).Render())
}

func TestAnd(t *testing.T) {
	a := domain.Clause("a")
	b := domain.Clause("b")

	assert.Equal(t, domain.Always{}, domain.And())
	assert.Equal(t, domain.Never{}, domain.And(a, domain.Never{}))
	assert.Equal(t, a, domain.And(domain.Always{}, a))
	assert.Equal(t, "(a && b)", domain.And(a, b).Render())
}

func TestCondition_Nested(t *testing.T) {
	c := domain.And(domain.Or(domain.Clause("a"), domain.Clause("b")), domain.Clause("c"))
	assert.Equal(t, "((a || b) && c)", c.Render())
}
