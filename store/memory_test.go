package store

import (
	"errors"
	"testing"

	"github.com/carewell/patient-records/model"
)

func TestMemoryStoreInsertAssignsUniqueIDs(t *testing.T) {
	s := NewMemoryStore()

	first, err := s.Insert(model.Patient{FirstName: "A", LastName: "One"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	second, err := s.Insert(model.Patient{FirstName: "B", LastName: "Two"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	if first == "" || second == "" || first == second {
		t.Fatalf("expected distinct non-empty ids, got %q and %q", first, second)
	}
}

func TestMemoryStoreListKeepsInsertionOrder(t *testing.T) {
	s := NewMemoryStore()
	names := []string{"One", "Two", "Three"}
	for _, n := range names {
		if _, err := s.Insert(model.Patient{FirstName: n, LastName: "X"}); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	patients, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(patients) != len(names) {
		t.Fatalf("expected %d patients, got %d", len(names), len(patients))
	}
	for i, n := range names {
		if patients[i].FirstName != n {
			t.Fatalf("insertion order lost: %+v", patients)
		}
	}
}

func TestMemoryStoreUpdateReplacesWholeRecord(t *testing.T) {
	s := NewMemoryStore()
	id, _ := s.Insert(model.Patient{FirstName: "Old", LastName: "Name", City: "Austin"})

	if err := s.Update(id, model.Patient{FirstName: "New", LastName: "Name"}); err != nil {
		t.Fatalf("update: %v", err)
	}

	patients, _ := s.List()
	if patients[0].FirstName != "New" {
		t.Fatalf("update did not apply: %+v", patients[0])
	}
	if patients[0].City != "" {
		t.Fatalf("update must replace the whole record, city survived: %+v", patients[0])
	}
	if patients[0].ID != id {
		t.Fatalf("identifier must never change on update")
	}
}

func TestMemoryStoreUpdateMissing(t *testing.T) {
	s := NewMemoryStore()
	err := s.Update("no-such-id", model.Patient{FirstName: "X", LastName: "Y"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore()
	id, _ := s.Insert(model.Patient{FirstName: "A", LastName: "B"})

	if err := s.Delete(id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	patients, _ := s.List()
	if len(patients) != 0 {
		t.Fatalf("expected empty collection after delete, got %+v", patients)
	}

	if err := s.Delete(id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for deleted id, got %v", err)
	}
}
