package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_IsValid(t *testing.T) {
	assert.True(t, CategoryFrutas.IsValid())
	assert.True(t, CategoryOutros.IsValid())
	assert.False(t, Category("Eletronicos").IsValid())
	assert.False(t, Category("").IsValid())
}

func TestMeasure_IsValid(t *testing.T) {
	assert.True(t, MeasureKilograma.IsValid())
	assert.True(t, MeasureDuzia.IsValid())
	assert.False(t, Measure("tonelada").IsValid())
	assert.False(t, Measure("").IsValid())
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleComprador.IsValid())
	assert.True(t, RoleVendedor.IsValid())
	assert.True(t, RoleEntregador.IsValid())
	assert.False(t, Role("astronauta").IsValid())
}

func TestProduct_UnitPrice(t *testing.T) {
	assert.Equal(t, 0.0, (&Product{}).UnitPrice())
	assert.Equal(t, 8.90, (&Product{Price: pricePtr(8.90)}).UnitPrice())
}
