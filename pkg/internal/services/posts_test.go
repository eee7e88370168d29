package services

import (
	"errors"
	"testing"

	"github.com/hearthside/chronicle/pkg/internal/database"
)

func TestNewPost(t *testing.T) {
	resetTables(t)
	author := makeAccount(t, "paperboy")

	before, _ := CountPost(database.C)

	post, err := NewPost(author, "hello, world", nil, nil)
	if err != nil {
		t.Fatalf("NewPost: %v", err)
	}

	after, _ := CountPost(database.C)
	if after != before+1 {
		t.Fatalf("post count = %d, want %d", after, before+1)
	}
	if post.AuthorID != author.ID {
		t.Errorf("post author = %d, want %d", post.AuthorID, author.ID)
	}
	if post.GroupID != nil {
		t.Errorf("groupless post should have nil group, got %v", *post.GroupID)
	}
	if post.PublishedAt.IsZero() {
		t.Error("published_at should be stamped at creation")
	}
}

func TestNewPostWithGroup(t *testing.T) {
	resetTables(t)
	author := makeAccount(t, "paperboy")
	group := makeGroup(t, "letters")

	post, err := NewPost(author, "to the editor", &group.ID, nil)
	if err != nil {
		t.Fatalf("NewPost: %v", err)
	}
	if post.GroupID == nil || *post.GroupID != group.ID {
		t.Fatalf("post group = %v, want %d", post.GroupID, group.ID)
	}
}

func TestNewPostValidation(t *testing.T) {
	resetTables(t)
	author := makeAccount(t, "paperboy")

	if _, err := NewPost(author, "", nil, nil); !errors.Is(err, ErrTextRequired) {
		t.Errorf("empty text: err = %v, want ErrTextRequired", err)
	}

	missing := uint(9999)
	if _, err := NewPost(author, "text", &missing, nil); !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("missing group: err = %v, want ErrGroupNotFound", err)
	}

	if count, _ := CountPost(database.C); count != 0 {
		t.Errorf("failed validations must not persist posts, found %d", count)
	}
}

func TestEditPostByNonAuthor(t *testing.T) {
	resetTables(t)
	author := makeAccount(t, "owner")
	intruder := makeAccount(t, "intruder")
	post := makePost(t, author, "original text")

	_, outcome, err := EditPost(intruder, author.Name, post.ID, "hijacked", nil, nil)
	if err != nil {
		t.Fatalf("EditPost: %v", err)
	}
	if outcome != EditDenied {
		t.Fatalf("outcome = %s, want %s", outcome, EditDenied)
	}

	fresh, err := GetPost(author.Name, post.ID)
	if err != nil {
		t.Fatalf("GetPost: %v", err)
	}
	if fresh.Text != "original text" {
		t.Errorf("text changed to %q after denied edit", fresh.Text)
	}
	if fresh.AuthorID != author.ID {
		t.Errorf("author changed to %d after denied edit", fresh.AuthorID)
	}
}

func TestEditPostByAuthor(t *testing.T) {
	resetTables(t)
	author := makeAccount(t, "owner")
	group := makeGroup(t, "news")
	post := makePost(t, author, "first draft")

	edited, outcome, err := EditPost(author, author.Name, post.ID, "second draft", &group.ID, nil)
	if err != nil {
		t.Fatalf("EditPost: %v", err)
	}
	if outcome != EditApplied {
		t.Fatalf("outcome = %s, want %s", outcome, EditApplied)
	}
	if edited.Text != "second draft" {
		t.Errorf("text = %q, want %q", edited.Text, "second draft")
	}
	if edited.GroupID == nil || *edited.GroupID != group.ID {
		t.Errorf("group = %v, want %d", edited.GroupID, group.ID)
	}
	if !edited.PublishedAt.Equal(post.PublishedAt) {
		t.Errorf("published_at moved from %v to %v on edit", post.PublishedAt, edited.PublishedAt)
	}
	if edited.AuthorID != author.ID {
		t.Errorf("author = %d, want %d", edited.AuthorID, author.ID)
	}
}

func TestEditPostMissing(t *testing.T) {
	resetTables(t)
	author := makeAccount(t, "owner")

	if _, _, err := EditPost(author, author.Name, 4242, "text", nil, nil); err == nil {
		t.Error("editing a missing post should fail")
	}
}

func TestGetPostAuthorMismatch(t *testing.T) {
	resetTables(t)
	author := makeAccount(t, "owner")
	other := makeAccount(t, "someone-else")
	post := makePost(t, author, "mine")

	if _, err := GetPost(other.Name, post.ID); err == nil {
		t.Error("post under the wrong username should be treated as missing")
	}
	if _, err := GetPost(author.Name, post.ID); err != nil {
		t.Errorf("post under its own username should resolve: %v", err)
	}
}
