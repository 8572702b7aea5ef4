package service

import (
	"testing"

	"github.com/sangkips/pos-register/internal/domain/entity"
	"github.com/sangkips/pos-register/internal/domain/repository"
	"github.com/stretchr/testify/assert"
)

func TestObserverRegistryNotifiesInOrder(t *testing.T) {
	registry := NewSaleObserverRegistry()
	var calls []string

	registry.Register(repository.SaleObserverFunc(func(total entity.Money) {
		calls = append(calls, "first:"+total.String())
	}))
	registry.Register(nil)
	registry.Register(repository.SaleObserverFunc(func(total entity.Money) {
		calls = append(calls, "second:"+total.String())
	}))

	registry.NotifySalePaid(entity.NewMoney(34.5))

	assert.Equal(t, 2, registry.Len())
	assert.Equal(t, []string{"first:34.50", "second:34.50"}, calls)
}

func TestObserverRegistryIsolatesPanics(t *testing.T) {
	registry := NewSaleObserverRegistry()
	var reached bool

	registry.Register(repository.SaleObserverFunc(func(entity.Money) {
		panic("revenue display unavailable")
	}))
	registry.Register(repository.SaleObserverFunc(func(entity.Money) {
		reached = true
	}))

	assert.NotPanics(t, func() { registry.NotifySalePaid(entity.NewMoney(10)) })
	assert.True(t, reached)
}

func TestObserverRegistryEmpty(t *testing.T) {
	registry := NewSaleObserverRegistry()
	assert.NotPanics(t, func() { registry.NotifySalePaid(entity.ZeroMoney()) })
	assert.Equal(t, 0, registry.Len())
}

type countingObserver struct {
	calls int
}

func (o *countingObserver) OnSalePaid(entity.Money) {
	o.calls++
}

func TestObserverRegistryUnregister(t *testing.T) {
	registry := NewSaleObserverRegistry()
	first := &countingObserver{}
	second := &countingObserver{}
	fn := repository.SaleObserverFunc(func(entity.Money) {})

	registry.Register(first)
	registry.Register(fn)
	registry.Register(second)

	assert.True(t, registry.Unregister(first))
	assert.False(t, registry.Unregister(first))
	assert.False(t, registry.Unregister(&countingObserver{}))
	assert.False(t, registry.Unregister(fn))
	assert.False(t, registry.Unregister(nil))
	assert.Equal(t, 2, registry.Len())

	registry.NotifySalePaid(entity.NewMoney(5))

	assert.Equal(t, 0, first.calls)
	assert.Equal(t, 1, second.calls)
}
