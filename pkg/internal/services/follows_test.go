package services

import (
	"testing"

	"github.com/hearthside/chronicle/pkg/internal/database"
	"github.com/hearthside/chronicle/pkg/internal/models"
)

func countFollows(t *testing.T) int64 {
	t.Helper()
	var count int64
	if err := database.C.Model(&models.Follow{}).Count(&count).Error; err != nil {
		t.Fatalf("unable to count follows: %v", err)
	}
	return count
}

func TestFollowAuthorIdempotent(t *testing.T) {
	resetTables(t)
	user := makeAccount(t, "reader")
	target := makeAccount(t, "writer")

	outcome, err := FollowAuthor(user, target)
	if err != nil {
		t.Fatalf("FollowAuthor: %v", err)
	}
	if outcome != FollowCreated {
		t.Fatalf("first follow outcome = %s, want %s", outcome, FollowCreated)
	}

	outcome, err = FollowAuthor(user, target)
	if err != nil {
		t.Fatalf("FollowAuthor: %v", err)
	}
	if outcome != FollowDuplicate {
		t.Fatalf("second follow outcome = %s, want %s", outcome, FollowDuplicate)
	}

	if count := countFollows(t); count != 1 {
		t.Errorf("follow rows = %d, want exactly 1", count)
	}
}

func TestFollowSelfIsNoOp(t *testing.T) {
	resetTables(t)
	user := makeAccount(t, "narcissus")

	outcome, err := FollowAuthor(user, user)
	if err != nil {
		t.Fatalf("FollowAuthor: %v", err)
	}
	if outcome != FollowSelf {
		t.Fatalf("outcome = %s, want %s", outcome, FollowSelf)
	}
	if count := countFollows(t); count != 0 {
		t.Errorf("self-follow created %d rows", count)
	}
}

func TestUnfollowMissingIsNoOp(t *testing.T) {
	resetTables(t)
	user := makeAccount(t, "reader")
	target := makeAccount(t, "writer")

	outcome, err := UnfollowAuthor(user, target)
	if err != nil {
		t.Fatalf("UnfollowAuthor: %v", err)
	}
	if outcome != UnfollowMissing {
		t.Fatalf("outcome = %s, want %s", outcome, UnfollowMissing)
	}
}

func TestUnfollowDeletesRow(t *testing.T) {
	resetTables(t)
	user := makeAccount(t, "reader")
	target := makeAccount(t, "writer")

	if _, err := FollowAuthor(user, target); err != nil {
		t.Fatalf("FollowAuthor: %v", err)
	}

	outcome, err := UnfollowAuthor(user, target)
	if err != nil {
		t.Fatalf("UnfollowAuthor: %v", err)
	}
	if outcome != UnfollowDeleted {
		t.Fatalf("outcome = %s, want %s", outcome, UnfollowDeleted)
	}
	if count := countFollows(t); count != 0 {
		t.Errorf("follow rows = %d after unfollow, want 0", count)
	}
	if IsFollowing(user.ID, target.ID) {
		t.Error("IsFollowing still true after unfollow")
	}
}

func TestRefollowAfterUnfollow(t *testing.T) {
	resetTables(t)
	user := makeAccount(t, "reader")
	target := makeAccount(t, "writer")

	if _, err := FollowAuthor(user, target); err != nil {
		t.Fatalf("FollowAuthor: %v", err)
	}
	if _, err := UnfollowAuthor(user, target); err != nil {
		t.Fatalf("UnfollowAuthor: %v", err)
	}

	// The unfollow must leave the unique pair index clear, or this insert
	// bounces off the leftover row.
	outcome, err := FollowAuthor(user, target)
	if err != nil {
		t.Fatalf("re-follow after unfollow failed: %v", err)
	}
	if outcome != FollowCreated {
		t.Fatalf("re-follow outcome = %s, want %s", outcome, FollowCreated)
	}
	if count := countFollows(t); count != 1 {
		t.Errorf("follow rows = %d after re-follow, want 1", count)
	}
}

func TestListFollowedPosts(t *testing.T) {
	resetTables(t)
	viewer := makeAccount(t, "viewer")
	followed := makeAccount(t, "followed")
	stranger := makeAccount(t, "stranger")

	makePost(t, followed, "from a followed author")
	makePost(t, stranger, "from a stranger")

	if _, err := FollowAuthor(viewer, followed); err != nil {
		t.Fatalf("FollowAuthor: %v", err)
	}

	items, meta, err := ListFollowedPosts(viewer, 1)
	if err != nil {
		t.Fatalf("ListFollowedPosts: %v", err)
	}
	if meta.Count != 1 || len(items) != 1 {
		t.Fatalf("feed has %d items, want 1", len(items))
	}
	if items[0].AuthorID != followed.ID {
		t.Errorf("feed contains post by %d, want %d", items[0].AuthorID, followed.ID)
	}
}
