package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestBoolRequirement(t *testing.T) {
	assert.Equal(t, BoolUnconstrained, NewBoolRequirement(nil))
	assert.Equal(t, RequireTrue, NewBoolRequirement(boolPtr(true)))
	assert.Equal(t, RequireFalse, NewBoolRequirement(boolPtr(false)))

	assert.True(t, BoolUnconstrained.Allows(true))
	assert.True(t, BoolUnconstrained.Allows(false))
	assert.True(t, RequireTrue.Allows(true))
	assert.False(t, RequireTrue.Allows(false))
	assert.True(t, RequireFalse.Allows(false))
	assert.False(t, RequireFalse.Allows(true))

	assert.Nil(t, BoolUnconstrained.Ptr())
	assert.Equal(t, false, *RequireFalse.Ptr())
}

func TestEnumRequirement(t *testing.T) {
	assert.True(t, AnyValue().Allows(nil))
	assert.True(t, NewEnumRequirement(nil).Allows(strPtr("female")))

	req := RequireEquals("female")
	assert.True(t, req.Constrained())
	assert.True(t, req.Allows(strPtr("female")))
	assert.False(t, req.Allows(strPtr("Female")))
	assert.False(t, req.Allows(nil))
}

func TestMandatoryAllowlistEmptyAdmitsNobody(t *testing.T) {
	empty := NewMandatoryAllowlist()
	assert.False(t, empty.Permits("full_time"))
	assert.False(t, empty.Permits(""))

	list := NewMandatoryAllowlist("full_time", "part_time", "full_time")
	assert.Equal(t, 2, list.Len())
	assert.True(t, list.Permits("part_time"))
	assert.False(t, list.Permits("Part_Time"))
	assert.Equal(t, []string{"full_time", "part_time"}, list.Values())
}

func TestOptionalAllowlistEmptyIsUnconstrained(t *testing.T) {
	empty := NewOptionalAllowlist()
	assert.False(t, empty.Constrained())
	assert.True(t, empty.Permits(nil))
	assert.True(t, empty.PermitsAny(nil))

	list := NewOptionalAllowlist("B", "C")
	assert.True(t, list.Constrained())
	assert.False(t, list.Permits(nil))
	assert.True(t, list.Permits(strPtr("C")))
	assert.True(t, list.PermitsAny([]string{"A", "B"}))
	assert.False(t, list.PermitsAny([]string{"A"}))
	assert.False(t, list.PermitsAny(nil))
}

func TestHasFinancialNeed(t *testing.T) {
	low, high, edge := int64(30000), int64(80000), int64(50000)
	assert.False(t, HasFinancialNeed(nil))
	assert.True(t, HasFinancialNeed(&low))
	assert.False(t, HasFinancialNeed(&high))
	assert.False(t, HasFinancialNeed(&edge))
}
