package mysql

import (
	"context"
	"testing"

	eventDomain "finbridge-ledger/internal/domain/event"
	"finbridge-ledger/internal/testutil/sqlitedb"
)

func TestEventRepository_AppendAndListAfter(t *testing.T) {
	repo := NewEventRepository(sqlitedb.Open(t))
	ctx := context.Background()

	for _, typ := range []string{eventDomain.TypeLoanRequestCreated, eventDomain.TypeLoanFunded, eventDomain.TypeLoanRepaid} {
		id := uint64(1)
		e, err := eventDomain.New(typ, &id, borrower, nil)
		if err != nil {
			t.Fatalf("New(%s): %v", typ, err)
		}
		if err := repo.Append(ctx, e); err != nil {
			t.Fatalf("Append(%s): %v", typ, err)
		}
	}

	all, err := repo.ListAfter(ctx, 0, 10)
	if err != nil {
		t.Fatalf("ListAfter: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].Seq <= all[i-1].Seq {
			t.Fatalf("seq not increasing: %d then %d", all[i-1].Seq, all[i].Seq)
		}
	}
	if all[0].EventID == "" || all[0].EventID == all[1].EventID {
		t.Fatalf("event ids not unique: %q vs %q", all[0].EventID, all[1].EventID)
	}

	tail, err := repo.ListAfter(ctx, all[0].Seq, 10)
	if err != nil {
		t.Fatalf("ListAfter tail: %v", err)
	}
	if len(tail) != 2 || tail[0].Type != eventDomain.TypeLoanFunded {
		t.Fatalf("tail = %+v", tail)
	}

	capped, err := repo.ListAfter(ctx, 0, 1)
	if err != nil {
		t.Fatalf("ListAfter capped: %v", err)
	}
	if len(capped) != 1 {
		t.Fatalf("capped len = %d, want 1", len(capped))
	}
}

func TestEngineRepository_InitIsIdempotent(t *testing.T) {
	repo := NewEngineRepository(sqlitedb.Open(t))
	ctx := context.Background()

	if err := repo.Init(ctx, borrower); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := repo.Init(ctx, lender); err != nil {
		t.Fatalf("second Init: %v", err)
	}

	s, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if s.Owner != borrower {
		t.Fatalf("owner = %s, second Init must not overwrite", s.Owner)
	}
	if s.Paused {
		t.Fatal("fresh state must not be paused")
	}
}
