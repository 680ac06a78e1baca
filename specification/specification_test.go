package specification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type Mobile struct {
	Brand string
}

const (
	MI      = "xiaomi"
	VIVO    = "vivo"
	OPPO    = "oppo"
	Samsung = "samsung"
)

func brand(name string) Specification[Mobile] {
	return New[Mobile](func(_ context.Context, t Mobile) bool {
		return t.Brand == name
	})
}

func TestSpecification(t *testing.T) {
	ctx := context.Background()
	isMIMobile := brand(MI)
	isVIVOMobile := brand(VIVO)
	isOPPOMobile := brand(OPPO)
	isSamSungMobile := brand(Samsung)

	a := Mobile{Brand: MI}
	assert.True(t, isMIMobile.IsSatisfiedBy(ctx, a))
	assert.False(t, isVIVOMobile.IsSatisfiedBy(ctx, a))
	assert.False(t, isOPPOMobile.IsSatisfiedBy(ctx, a))
	assert.False(t, isSamSungMobile.IsSatisfiedBy(ctx, a))

	assert.False(t, And(isMIMobile, isVIVOMobile).IsSatisfiedBy(ctx, a))
	assert.False(t, And(isOPPOMobile, isSamSungMobile).IsSatisfiedBy(ctx, a))

	assert.True(t, Or(isMIMobile, isVIVOMobile).IsSatisfiedBy(ctx, a))
	assert.False(t, Or(isOPPOMobile, isSamSungMobile).IsSatisfiedBy(ctx, a))

	assert.False(t, Not(isMIMobile).IsSatisfiedBy(ctx, a))
	assert.True(t, Not(isVIVOMobile).IsSatisfiedBy(ctx, a))
	assert.True(t, Not(isOPPOMobile).IsSatisfiedBy(ctx, a))
	assert.True(t, Not(isSamSungMobile).IsSatisfiedBy(ctx, a))
}

func TestSpecification_Methods(t *testing.T) {
	ctx := context.Background()
	a := Mobile{Brand: VIVO}

	assert.True(t, brand(VIVO).And(brand(VIVO)).IsSatisfiedBy(ctx, a))
	assert.True(t, brand(MI).Or(brand(VIVO)).IsSatisfiedBy(ctx, a))
	assert.False(t, brand(VIVO).Not().IsSatisfiedBy(ctx, a))
	assert.False(t, brand(VIVO).Conjunction(brand(VIVO), brand(MI)).IsSatisfiedBy(ctx, a))
	assert.True(t, brand(MI).Disjunction(brand(OPPO), brand(VIVO)).IsSatisfiedBy(ctx, a))
}

func TestSpecification_Empty(t *testing.T) {
	ctx := context.Background()
	a := Mobile{Brand: OPPO}

	assert.True(t, Conjunction[Mobile]().IsSatisfiedBy(ctx, a))
	assert.False(t, Disjunction[Mobile]().IsSatisfiedBy(ctx, a))
	assert.False(t, New[Mobile](nil).IsSatisfiedBy(ctx, a))
}
