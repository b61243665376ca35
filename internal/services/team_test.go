package services

import (
	"testing"

	"github.com/renohub/backend/internal/models"
)

func TestResolveIdentity_ProfileWins(t *testing.T) {
	userID := uint(1)
	profiles := map[uint]models.User{
		1: {Email: "profile@example.com", Name: "Profile Name"},
	}

	name, email := resolveIdentity(profiles, &userID, "Invited Name", "invited@example.com")
	if name != "Profile Name" {
		t.Errorf("name = %q, expected %q", name, "Profile Name")
	}
	if email != "profile@example.com" {
		t.Errorf("email = %q, expected %q", email, "profile@example.com")
	}
}

func TestResolveIdentity_InviteCaptureFallback(t *testing.T) {
	userID := uint(1)
	// Profile exists but carries no identity fields.
	profiles := map[uint]models.User{1: {}}

	name, email := resolveIdentity(profiles, &userID, "Invited Name", "invited@example.com")
	if name != "Invited Name" {
		t.Errorf("name = %q, expected %q", name, "Invited Name")
	}
	if email != "invited@example.com" {
		t.Errorf("email = %q, expected %q", email, "invited@example.com")
	}
}

func TestResolveIdentity_Placeholders(t *testing.T) {
	name, email := resolveIdentity(nil, nil, "", "")
	if name != "Unnamed" {
		t.Errorf("name = %q, expected %q", name, "Unnamed")
	}
	if email != "No email" {
		t.Errorf("email = %q, expected %q", email, "No email")
	}
}

func TestResolveIdentity_MissingProfileUsesCapture(t *testing.T) {
	userID := uint(42)

	name, email := resolveIdentity(map[uint]models.User{}, &userID, "Captured", "captured@example.com")
	if name != "Captured" {
		t.Errorf("name = %q, expected %q", name, "Captured")
	}
	if email != "captured@example.com" {
		t.Errorf("email = %q, expected %q", email, "captured@example.com")
	}
}

func TestListTeamMembers_OwnerFirst(t *testing.T) {
	db := testDB(t)
	owner := seedUser(t, db, "owner@example.com", "resident")
	coach := seedUser(t, db, "coach@example.com", "coach")
	project := seedProject(t, db, owner.ID, "Kitchen Remodel")
	seedMember(t, db, project.ID, &coach.ID, "coach", "", coach.Email)

	views, err := NewTeamService(db).ListTeamMembers(project.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(views) != 2 {
		t.Fatalf("len(views) = %d, expected 2", len(views))
	}
	if views[0].Role != "owner" {
		t.Errorf("first entry role = %q, expected %q", views[0].Role, "owner")
	}
	if views[0].UserID == nil || *views[0].UserID != owner.ID {
		t.Error("first entry should be the project owner")
	}
	if views[1].Role != "coach" {
		t.Errorf("second entry role = %q, expected %q", views[1].Role, "coach")
	}
}

func TestListTeamMembers_OwnerRoleOverride(t *testing.T) {
	db := testDB(t)
	owner := seedUser(t, db, "owner@example.com", "resident")
	project := seedProject(t, db, owner.ID, "Attic Conversion")
	// Stale membership row for the owner with a subordinate role.
	seedMember(t, db, project.ID, &owner.ID, "coach", "", owner.Email)

	views, err := NewTeamService(db).ListTeamMembers(project.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, v := range views {
		if v.UserID != nil && *v.UserID == owner.ID && v.Role != "owner" {
			t.Errorf("owner entry shows role %q, expected %q", v.Role, "owner")
		}
	}
}

func TestListTeamMembers_PendingInvitePlaceholders(t *testing.T) {
	db := testDB(t)
	owner := seedUser(t, db, "owner@example.com", "resident")
	project := seedProject(t, db, owner.ID, "Basement Refit")
	// Email-only invite with no captured name.
	seedMember(t, db, project.ID, nil, "service_pro", "", "pro@example.com")
	// Invite with nothing captured at all.
	seedMember(t, db, project.ID, nil, "coach", "", "")

	views, err := NewTeamService(db).ListTeamMembers(project.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 3 {
		t.Fatalf("len(views) = %d, expected 3", len(views))
	}

	if views[1].Name != "Unnamed" {
		t.Errorf("invitee name = %q, expected %q", views[1].Name, "Unnamed")
	}
	if views[1].Email != "pro@example.com" {
		t.Errorf("invitee email = %q, expected %q", views[1].Email, "pro@example.com")
	}
	if views[2].Name != "Unnamed" || views[2].Email != "No email" {
		t.Errorf("blank invitee = %q/%q, expected placeholders", views[2].Name, views[2].Email)
	}
}

func TestListTeamMembers_AvatarFromEmail(t *testing.T) {
	db := testDB(t)
	owner := seedUser(t, db, "owner@example.com", "resident")
	project := seedProject(t, db, owner.ID, "Sunroom Addition")

	views, err := NewTeamService(db).ListTeamMembers(project.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if views[0].AvatarURL == "" {
		t.Error("owner avatar URL should be set")
	}
}

func TestListTeamMembers_MissingProject(t *testing.T) {
	db := testDB(t)

	if _, err := NewTeamService(db).ListTeamMembers(9999); err == nil {
		t.Error("expected error for missing project")
	}
}

func TestAddTeamMember_OwnerConflict(t *testing.T) {
	db := testDB(t)
	owner := seedUser(t, db, "owner@example.com", "resident")
	project := seedProject(t, db, owner.ID, "Kitchen Remodel")

	if _, err := NewTeamService(db).AddTeamMember(project.ID, owner.Email, "coach", ""); err == nil {
		t.Error("inviting the owner should fail")
	}
}

func TestAddTeamMember_DuplicateRejected(t *testing.T) {
	db := testDB(t)
	owner := seedUser(t, db, "owner@example.com", "resident")
	coach := seedUser(t, db, "coach@example.com", "coach")
	project := seedProject(t, db, owner.ID, "Kitchen Remodel")

	svc := NewTeamService(db)
	if _, err := svc.AddTeamMember(project.ID, coach.Email, "coach", ""); err != nil {
		t.Fatalf("first invite failed: %v", err)
	}
	if _, err := svc.AddTeamMember(project.ID, coach.Email, "coach", ""); err == nil {
		t.Error("duplicate invite should fail")
	}
}

func TestAddTeamMember_NormalizesRoleSpelling(t *testing.T) {
	db := testDB(t)
	owner := seedUser(t, db, "owner@example.com", "resident")
	project := seedProject(t, db, owner.ID, "Kitchen Remodel")

	member, err := NewTeamService(db).AddTeamMember(project.ID, "pro@example.com", "service-pro", "Pro")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if member.Role != "service_pro" {
		t.Errorf("stored role = %q, expected %q", member.Role, "service_pro")
	}
	if member.InviteToken == "" {
		t.Error("invite token should be set")
	}
}

func TestClaimInvites_BindsPendingRows(t *testing.T) {
	db := testDB(t)
	owner := seedUser(t, db, "owner@example.com", "resident")
	project := seedProject(t, db, owner.ID, "Kitchen Remodel")
	seedMember(t, db, project.ID, nil, "coach", "", "late@example.com")

	late := seedUser(t, db, "late@example.com", "coach")
	if err := NewTeamService(db).ClaimInvites(late.ID, late.Email); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var member models.TeamMember
	if err := db.Where("project_id = ? AND email = ?", project.ID, late.Email).First(&member).Error; err != nil {
		t.Fatalf("membership row missing: %v", err)
	}
	if member.UserID == nil || *member.UserID != late.ID {
		t.Error("pending invite should be bound to the new account")
	}
}

func TestRemoveTeamMember_MissingRow(t *testing.T) {
	db := testDB(t)

	if err := NewTeamService(db).RemoveTeamMember(9999); err == nil {
		t.Error("expected error for missing member")
	}
}

func TestListTeamMembers_FetchErrorAbortsListing(t *testing.T) {
	db := testDB(t)
	owner := seedUser(t, db, "owner@example.com", "resident")
	coach := seedUser(t, db, "coach@example.com", "coach")
	project := seedProject(t, db, owner.ID, "Deck Build")
	seedMember(t, db, project.ID, &coach.ID, "coach", "", "")
	svc := NewTeamService(db)

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("failed to close connection: %v", err)
	}

	views, err := svc.ListTeamMembers(project.ID)
	if err == nil {
		t.Fatal("expected an error from the failed fetch")
	}
	if views != nil {
		t.Errorf("fetch failure must not produce a partial listing, got %d entries", len(views))
	}
}
