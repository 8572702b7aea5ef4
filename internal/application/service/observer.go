package service

import (
	"log"
	"reflect"
	"sync"

	"github.com/sangkips/pos-register/internal/domain/entity"
	"github.com/sangkips/pos-register/internal/domain/repository"
)

// SaleObserverRegistry fans a paid sale out to its registered observers
type SaleObserverRegistry struct {
	mu        sync.RWMutex
	observers []repository.SaleObserver
}

// NewSaleObserverRegistry creates an empty registry
func NewSaleObserverRegistry() *SaleObserverRegistry {
	return &SaleObserverRegistry{}
}

// Register appends an observer. Nil observers are ignored.
func (r *SaleObserverRegistry) Register(observer repository.SaleObserver) {
	if observer == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers = append(r.observers, observer)
}

// Unregister removes the first registration of observer and reports whether
// one was found. Observers of an uncomparable type, such as
// SaleObserverFunc, cannot be told apart and are never removed.
func (r *SaleObserverRegistry) Unregister(observer repository.SaleObserver) bool {
	if observer == nil || !reflect.TypeOf(observer).Comparable() {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for i, registered := range r.observers {
		if registered == observer {
			r.observers = append(r.observers[:i:i], r.observers[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of registered observers
func (r *SaleObserverRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.observers)
}

// NotifySalePaid calls every observer once, in registration order.
// A panicking observer is logged and skipped so the rest still run.
func (r *SaleObserverRegistry) NotifySalePaid(total entity.Money) {
	r.mu.RLock()
	observers := make([]repository.SaleObserver, len(r.observers))
	copy(observers, r.observers)
	r.mu.RUnlock()

	for i, observer := range observers {
		notifyObserver(i, observer, total)
	}
}

func notifyObserver(index int, observer repository.SaleObserver, total entity.Money) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("Warning: sale observer #%d (%T) failed: %v", index, observer, rec)
		}
	}()
	observer.OnSalePaid(total)
}

var _ entity.PaymentNotifier = (*SaleObserverRegistry)(nil)
