package models

import (
	"encoding/json"
	"testing"
)

func TestUserPatchOnlySuppliedFields(t *testing.T) {
	name := "Ana"
	p := UserPatch{Name: &name}

	cols, args := p.Changes()
	if len(cols) != 1 || cols[0] != "name" {
		t.Fatalf("expected only name column, got %v", cols)
	}
	if len(args) != 1 || args[0] != "Ana" {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestUserPatchEmptyMeansNoChanges(t *testing.T) {
	cols, args := UserPatch{}.Changes()
	if len(cols) != 0 || len(args) != 0 {
		t.Fatalf("empty patch should carry no changes, got %v %v", cols, args)
	}
}

func TestTravelPatchExplicitEmptyStringIsAChange(t *testing.T) {
	desc := ""
	cols, args := TravelPatch{Description: &desc}.Changes()
	if len(cols) != 1 || cols[0] != "description" {
		t.Fatalf("description should be marked changed, got %v", cols)
	}
	if args[0] != "" {
		t.Fatalf("expected empty string arg, got %v", args[0])
	}
}

func TestExpensePatchZeroOptionalFKStoresNull(t *testing.T) {
	var accID int64
	cols, args := ExpensePatch{AccommodationID: &accID}.Changes()
	if len(cols) != 1 || cols[0] != "accommodation_id" {
		t.Fatalf("expected accommodation_id, got %v", cols)
	}
	if args[0] != nil {
		t.Fatalf("zero optional FK should become NULL, got %v", args[0])
	}
}

func TestAccommodationPatchCanReparentTravel(t *testing.T) {
	var p AccommodationPatch
	if err := json.Unmarshal([]byte(`{"travel_id":9}`), &p); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	cols, args := p.Changes()
	if len(cols) != 1 || cols[0] != "travel_id" {
		t.Fatalf("travel_id in the payload must be merged, got %v", cols)
	}
	if args[0] != int64(9) {
		t.Fatalf("expected 9, got %v", args[0])
	}
}

func TestChildPatchesCarryTravelID(t *testing.T) {
	tid := int64(4)

	if cols, _ := (TransportPatch{TravelID: &tid}).Changes(); len(cols) != 1 || cols[0] != "travel_id" {
		t.Fatalf("transport patch lost travel_id, got %v", cols)
	}
	if cols, _ := (ActivityPatch{TravelID: &tid}).Changes(); len(cols) != 1 || cols[0] != "travel_id" {
		t.Fatalf("activity patch lost travel_id, got %v", cols)
	}
	if cols, _ := (ExpensePatch{TravelID: &tid}).Changes(); len(cols) != 1 || cols[0] != "travel_id" {
		t.Fatalf("expense patch lost travel_id, got %v", cols)
	}
}

func TestExpensePatchNonZeroOptionalFKKept(t *testing.T) {
	accID := int64(7)
	_, args := ExpensePatch{AccommodationID: &accID}.Changes()
	if args[0] != int64(7) {
		t.Fatalf("expected 7, got %v", args[0])
	}
}
