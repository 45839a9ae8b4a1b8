package seeder

import (
	"testing"

	"github.com/MichalMitros/commerce-seeder/internal/platform/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitRegistry(t *testing.T) {
	refs := newRegistry()
	refs.set(models.StepCategory, "ソファ", "pcat_1")
	refs.set(models.StepCategory, "アームチェア", "pcat_2")
	refs.set(models.StepMaterial, "ソファ", "mat_1")

	id, err := refs.resolve(models.StepCategory, "ソファ")
	require.NoError(t, err)
	assert.Equal(t, "pcat_1", id)

	ids, err := refs.resolveAll(models.StepCategory, []string{"アームチェア", "ソファ"})
	require.NoError(t, err)
	assert.Equal(t, []string{"pcat_2", "pcat_1"}, ids)

	_, err = refs.resolve(models.StepCollection, "ソファ")
	assert.ErrorIs(t, err, ErrUnresolvedReference)
	assert.ErrorContains(t, err, `collection "ソファ"`, "should name kind and key")

	_, err = refs.resolveAll(models.StepCategory, []string{"ソファ", "チェア"})
	assert.ErrorIs(t, err, ErrUnresolvedReference)
}
