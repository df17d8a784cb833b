package repository

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"pattern_lab/internal/domain"
)

func testStoredOrder(id string) StoredOrder {
	return StoredOrder{Order: domain.Order{ID: id, Symbol: "BTCUSD", Status: domain.StatusPending}}
}

func TestAddAndGetByID(t *testing.T) {
	repo := New[StoredOrder]()
	repo.Add(testStoredOrder("ord-1"))

	got, err := repo.GetByID("ord-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ID != "ord-1" {
		t.Errorf("ID = %q", got.ID)
	}
}

func TestGetByIDMissing(t *testing.T) {
	repo := New[StoredOrder]()
	_, err := repo.GetByID("nope")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateExistingAndMissing(t *testing.T) {
	repo := New[StoredOrder]()
	repo.Add(testStoredOrder("ord-1"))

	updated := testStoredOrder("ord-1")
	updated.Status = domain.StatusPlaced
	if err := repo.Update(updated); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, _ := repo.GetByID("ord-1")
	if got.Status != domain.StatusPlaced {
		t.Errorf("Status = %s after update", got.Status)
	}

	if err := repo.Update(testStoredOrder("ghost")); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("updating missing entity: err = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	repo := New[StoredOrder]()
	repo.Add(testStoredOrder("ord-1"))

	if err := repo.Delete("ord-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID("ord-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Error("entity still present after delete")
	}
	if err := repo.Delete("ord-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second delete: err = %v, want ErrNotFound", err)
	}
}

func TestGetAllAndCount(t *testing.T) {
	repo := New[StoredOrder]()
	for i := 0; i < 5; i++ {
		repo.Add(testStoredOrder(fmt.Sprintf("ord-%d", i)))
	}
	if repo.Count() != 5 {
		t.Errorf("Count = %d, want 5", repo.Count())
	}
	if got := len(repo.GetAll()); got != 5 {
		t.Errorf("GetAll returned %d entities, want 5", got)
	}
}

func TestConcurrentAccess(t *testing.T) {
	repo := New[StoredOrder]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("ord-%d", i)
			repo.Add(testStoredOrder(id))
			repo.GetByID(id)
			repo.GetAll()
		}(i)
	}
	wg.Wait()
	if repo.Count() != 50 {
		t.Errorf("Count = %d after concurrent adds, want 50", repo.Count())
	}
}

func TestUnitOfWorkLifecycle(t *testing.T) {
	uow := NewUnitOfWork()
	if uow.InTransaction() {
		t.Error("fresh unit of work reports active transaction")
	}
	uow.Begin()
	if !uow.InTransaction() {
		t.Error("Begin did not mark transaction active")
	}
	uow.Commit()
	if uow.InTransaction() {
		t.Error("Commit did not end transaction")
	}
	uow.Begin()
	uow.Rollback()
	if uow.InTransaction() {
		t.Error("Rollback did not end transaction")
	}
}
