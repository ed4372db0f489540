package library

import (
	"errors"
	"testing"

	"github.com/vodarr/vodarr/pkg/platform"
)

func testVideo(sourceID, title string) *Video {
	return &Video{
		SourceID:  sourceID,
		Platform:  platform.YouTube,
		Title:     title,
		Author:    "Veritasium",
		SourceURL: "https://www.youtube.com/watch?v=" + sourceID,
		FilePath:  "Veritasium/" + title + ".mkv",
	}
}

func TestStore_SaveVideo(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	v := testVideo("abc123", "First Video")
	if err := store.SaveVideo(v); err != nil {
		t.Fatalf("SaveVideo: %v", err)
	}

	if v.ID == "" {
		t.Error("ID should be set after SaveVideo")
	}
	if v.DownloadedAt.IsZero() {
		t.Error("DownloadedAt should be set after SaveVideo")
	}
}

func TestStore_SaveVideo_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	first := testVideo("abc123", "First Video")
	if err := store.SaveVideo(first); err != nil {
		t.Fatalf("SaveVideo: %v", err)
	}

	// Saving the same source id again returns the existing row.
	again := testVideo("abc123", "Renamed Upload")
	if err := store.SaveVideo(again); err != nil {
		t.Fatalf("SaveVideo again: %v", err)
	}
	if again.ID != first.ID {
		t.Errorf("second save got ID %q, want existing %q", again.ID, first.ID)
	}
	if again.Title != "First Video" {
		t.Errorf("second save got Title %q, want original row", again.Title)
	}

	_, total, err := store.ListVideos(VideoFilter{})
	if err != nil {
		t.Fatalf("ListVideos: %v", err)
	}
	if total != 1 {
		t.Errorf("total = %d, want 1", total)
	}
}

func TestStore_HasVideo(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	if err := store.SaveVideo(testVideo("abc123", "First Video")); err != nil {
		t.Fatalf("SaveVideo: %v", err)
	}

	ok, err := store.HasVideo(platform.YouTube, "abc123")
	if err != nil {
		t.Fatalf("HasVideo: %v", err)
	}
	if !ok {
		t.Error("HasVideo = false, want true")
	}

	ok, err = store.HasVideo(platform.YouTube, "missing")
	if err != nil {
		t.Fatalf("HasVideo: %v", err)
	}
	if ok {
		t.Error("HasVideo = true for missing video")
	}

	// Same source id on another platform is a different video.
	ok, err = store.HasVideo(platform.Bilibili, "abc123")
	if err != nil {
		t.Fatalf("HasVideo: %v", err)
	}
	if ok {
		t.Error("HasVideo = true across platforms")
	}
}

func TestStore_GetVideo_NotFound(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	if _, err := store.GetVideo("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetVideo = %v, want ErrNotFound", err)
	}
}

func TestStore_ListVideos_Filter(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	a := testVideo("a1", "A One")
	b := testVideo("b1", "B One")
	b.Author = "Other Channel"
	for _, v := range []*Video{a, b} {
		if err := store.SaveVideo(v); err != nil {
			t.Fatalf("SaveVideo: %v", err)
		}
	}

	videos, total, err := store.ListVideos(VideoFilter{Author: ptr("Veritasium")})
	if err != nil {
		t.Fatalf("ListVideos: %v", err)
	}
	if total != 1 || len(videos) != 1 {
		t.Fatalf("total = %d, len = %d, want 1", total, len(videos))
	}
	if videos[0].SourceID != "a1" {
		t.Errorf("got %q, want a1", videos[0].SourceID)
	}
}

func TestStore_ListVideos_CollectionFilter(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	v := testVideo("a1", "A One")
	if err := store.SaveVideo(v); err != nil {
		t.Fatalf("SaveVideo: %v", err)
	}
	if err := store.SaveVideo(testVideo("b1", "B One")); err != nil {
		t.Fatalf("SaveVideo: %v", err)
	}

	c, err := store.CreateCollection("Favorites")
	if err != nil {
		t.Fatalf("CreateCollection: %v", err)
	}
	if err := store.AddToCollection(c.ID, v.ID); err != nil {
		t.Fatalf("AddToCollection: %v", err)
	}

	videos, total, err := store.ListVideos(VideoFilter{CollectionID: &c.ID})
	if err != nil {
		t.Fatalf("ListVideos: %v", err)
	}
	if total != 1 || len(videos) != 1 || videos[0].ID != v.ID {
		t.Errorf("collection filter returned %d videos (total %d)", len(videos), total)
	}
}

func TestStore_DeleteVideo(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	v := testVideo("abc123", "First Video")
	if err := store.SaveVideo(v); err != nil {
		t.Fatalf("SaveVideo: %v", err)
	}

	if err := store.DeleteVideo(v.ID); err != nil {
		t.Fatalf("DeleteVideo: %v", err)
	}
	if err := store.DeleteVideo(v.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete = %v, want ErrNotFound", err)
	}
}
