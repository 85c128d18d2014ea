package app

import (
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"
)

// withTempDataPath points DataPath at a fresh temp directory for one test.
func withTempDataPath(t *testing.T) {
	t.Helper()
	old := DataPath
	DataPath = t.TempDir()
	t.Cleanup(func() { DataPath = old })
}

func testEvent(date, topic string, presenters ...string) Event {
	return Event{Date: date, Time: "6:30pm", Topic: topic, Presenters: presenters}
}

func TestLoadOrCreateStoreEmpty(t *testing.T) {
	withTempDataPath(t)

	store, err := LoadOrCreateStore(2026)
	if err != nil {
		t.Fatalf("LoadOrCreateStore() failed: %v", err)
	}
	if store.Year != 2026 {
		t.Errorf("Year = %d, want 2026", store.Year)
	}
	if len(store.Events) != 0 {
		t.Errorf("new store should be empty, got %d events", len(store.Events))
	}

	// Nothing is written until Persist
	if _, err := os.Stat(StorePath(2026)); !os.IsNotExist(err) {
		t.Error("LoadOrCreateStore should not create files on disk")
	}
}

func TestInsertKeepsAscendingOrder(t *testing.T) {
	store := &YearStore{Year: 2026}
	dates := []string{"2026-05-01", "2026-02-06", "2026-09-04", "2026-03-06"}

	for _, d := range dates {
		if err := store.Insert(testEvent(d, "Topic "+d, "Alex Hart")); err != nil {
			t.Fatalf("Insert(%s) failed: %v", d, err)
		}
	}

	want := []string{"2026-02-06", "2026-03-06", "2026-05-01", "2026-09-04"}
	for i, ev := range store.Events {
		if ev.Date != want[i] {
			t.Errorf("events[%d].Date = %s, want %s", i, ev.Date, want[i])
		}
	}
}

func TestInsertDuplicateDate(t *testing.T) {
	store := &YearStore{Year: 2026}
	if err := store.Insert(testEvent("2026-03-06", "Original", "Alex Hart")); err != nil {
		t.Fatalf("Insert() failed: %v", err)
	}

	before := make([]Event, len(store.Events))
	copy(before, store.Events)

	err := store.Insert(testEvent("2026-03-06", "Imposter", "Michael Go"))
	if !errors.Is(err, ErrDuplicateDate) {
		t.Fatalf("Insert() error = %v, want ErrDuplicateDate", err)
	}
	if !reflect.DeepEqual(store.Events, before) {
		t.Error("failed insert must leave the store unchanged")
	}
}

func TestInsertYearMismatch(t *testing.T) {
	store := &YearStore{Year: 2026}
	err := store.Insert(testEvent("2027-01-01", "Wrong year", "Alex Hart"))
	if !errors.Is(err, ErrYearMismatch) {
		t.Fatalf("Insert() error = %v, want ErrYearMismatch", err)
	}
}

func TestPersistRoundTrip(t *testing.T) {
	withTempDataPath(t)

	store := &YearStore{Year: 2026}
	events := []Event{
		testEvent("2026-03-06", "My crazy topic", "Alex Hart"),
		testEvent("2026-02-06", "Generics", "Alex Hart", "Michael Go"),
	}
	for _, ev := range events {
		if err := store.Insert(ev); err != nil {
			t.Fatalf("Insert() failed: %v", err)
		}
	}
	if err := store.Persist(); err != nil {
		t.Fatalf("Persist() failed: %v", err)
	}

	reloaded, err := LoadOrCreateStore(2026)
	if err != nil {
		t.Fatalf("LoadOrCreateStore() after Persist failed: %v", err)
	}
	if !reflect.DeepEqual(reloaded, store) {
		t.Errorf("reloaded store differs:\n got %+v\nwant %+v", reloaded, store)
	}
}

func TestPersistIsDeterministic(t *testing.T) {
	withTempDataPath(t)

	store := &YearStore{Year: 2026}
	if err := store.Insert(testEvent("2026-03-06", "My crazy topic", "Alex Hart")); err != nil {
		t.Fatalf("Insert() failed: %v", err)
	}

	if err := store.Persist(); err != nil {
		t.Fatalf("first Persist() failed: %v", err)
	}
	first, err := os.ReadFile(StorePath(2026))
	if err != nil {
		t.Fatalf("reading store file failed: %v", err)
	}

	if err := store.Persist(); err != nil {
		t.Fatalf("second Persist() failed: %v", err)
	}
	second, err := os.ReadFile(StorePath(2026))
	if err != nil {
		t.Fatalf("reading store file failed: %v", err)
	}

	if string(first) != string(second) {
		t.Error("persisting the same store twice must produce identical bytes")
	}
}

func TestPersistRegeneratesListing(t *testing.T) {
	withTempDataPath(t)

	store := &YearStore{Year: 2026}
	if err := store.Insert(testEvent("2026-03-06", "My crazy topic", "Alex Hart")); err != nil {
		t.Fatalf("Insert() failed: %v", err)
	}
	if err := store.Persist(); err != nil {
		t.Fatalf("Persist() failed: %v", err)
	}

	// Insert an earlier event; the listing must be fully regenerated in the
	// new order, not patched
	if err := store.Insert(testEvent("2026-02-06", "Generics", "Michael Go")); err != nil {
		t.Fatalf("Insert() failed: %v", err)
	}
	if err := store.Persist(); err != nil {
		t.Fatalf("Persist() failed: %v", err)
	}

	listing, err := os.ReadFile(ListingPath(2026))
	if err != nil {
		t.Fatalf("reading listing failed: %v", err)
	}
	if string(listing) != RenderListing(store) {
		t.Error("listing file must equal RenderListing of the persisted store")
	}
	got := string(listing)
	febIdx := strings.Index(got, "February 06, 2026")
	marIdx := strings.Index(got, "March 06, 2026")
	if febIdx == -1 || marIdx == -1 || febIdx > marIdx {
		t.Errorf("listing not in ascending date order:\n%s", got)
	}
}

func TestLoadCorruptStore(t *testing.T) {
	withTempDataPath(t)

	tests := []struct {
		name    string
		content string
	}{
		{name: "Malformed JSON", content: "{not json"},
		{name: "Wrong year field", content: `{"year": 2025, "events": []}`},
		{name: "Event outside store year", content: `{"year": 2026, "events": [{"date": "2025-12-05", "time": "6:30pm", "topic": "X", "presenters": ["A"]}]}`},
		{name: "Unparseable event date", content: `{"year": 2026, "events": [{"date": "garbage", "time": "6:30pm", "topic": "X", "presenters": ["A"]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := os.MkdirAll(YearDir(2026), DirPermissions); err != nil {
				t.Fatalf("MkdirAll failed: %v", err)
			}
			if err := os.WriteFile(StorePath(2026), []byte(tt.content), FilePermissions); err != nil {
				t.Fatalf("WriteFile failed: %v", err)
			}

			_, err := LoadOrCreateStore(2026)
			if !errors.Is(err, ErrCorruptStore) {
				t.Errorf("LoadOrCreateStore() error = %v, want ErrCorruptStore", err)
			}
		})
	}
}
