package services

import (
	"testing"
)

func TestFetchProfiles_AllFound(t *testing.T) {
	db := testDB(t)
	a := seedUser(t, db, "a@example.com", "resident")
	b := seedUser(t, db, "b@example.com", "coach")

	profiles, err := FetchProfiles(db, []uint{a.ID, b.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("len(profiles) = %d, expected 2", len(profiles))
	}
	if profiles[a.ID].Email != "a@example.com" {
		t.Errorf("profile email = %q, expected %q", profiles[a.ID].Email, "a@example.com")
	}
}

func TestFetchProfiles_MissingIDsSkipped(t *testing.T) {
	db := testDB(t)
	a := seedUser(t, db, "a@example.com", "resident")

	profiles, err := FetchProfiles(db, []uint{a.ID, 9999})
	if err != nil {
		t.Fatalf("a missing profile is not an error: %v", err)
	}
	if len(profiles) != 1 {
		t.Fatalf("len(profiles) = %d, expected 1", len(profiles))
	}
	if _, ok := profiles[9999]; ok {
		t.Error("missing id should not appear in result")
	}
}

func TestFetchProfiles_EmptyInput(t *testing.T) {
	db := testDB(t)

	profiles, err := FetchProfiles(db, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(profiles) != 0 {
		t.Errorf("len(profiles) = %d, expected 0", len(profiles))
	}
}

func TestFetchProfiles_DuplicateIDs(t *testing.T) {
	db := testDB(t)
	a := seedUser(t, db, "a@example.com", "resident")

	profiles, err := FetchProfiles(db, []uint{a.ID, a.ID, a.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(profiles) != 1 {
		t.Errorf("len(profiles) = %d, expected 1", len(profiles))
	}
}
