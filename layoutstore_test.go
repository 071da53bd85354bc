package willowgui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	bolt "go.etcd.io/bbolt"
)

func openTestStore(t *testing.T) *LayoutStore {
	t.Helper()
	s, err := OpenLayoutStore(filepath.Join(t.TempDir(), "layout.db"))
	if err != nil {
		t.Fatalf("OpenLayoutStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLayoutStoreSaveLoad(t *testing.T) {
	s := openTestStore(t)

	if _, ok, err := s.Load("W"); err != nil || ok {
		t.Fatalf("Load(missing) = ok %v, err %v; want false, nil", ok, err)
	}

	want := WindowStyle{
		Position: &Vec2{12, 34},
		Size:     &Vec2{200, 100},
		TitleBar: ptr(false),
	}
	if err := s.Save("W", want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save("Other", WindowStyle{Resizable: ptr(true)}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, ok, err := s.Load("W")
	if err != nil || !ok {
		t.Fatalf("Load = ok %v, err %v; want true, nil", ok, err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("loaded style mismatch (-want +got):\n%s", diff)
	}
	if got.Scrollable != nil {
		t.Error("unset field should load as nil")
	}

	gwids, err := s.Gwids()
	if err != nil {
		t.Fatalf("Gwids: %v", err)
	}
	if diff := cmp.Diff([]string{"Other", "W"}, gwids); diff != "" {
		t.Errorf("Gwids mismatch (-want +got):\n%s", diff)
	}

	if err := s.Delete("W"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete("W"); err != nil {
		t.Errorf("second Delete: %v", err)
	}
	if _, ok, _ := s.Load("W"); ok {
		t.Error("deleted style still loads")
	}
}

func TestLayoutStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.db")
	s, err := OpenLayoutStore(path)
	if err != nil {
		t.Fatalf("OpenLayoutStore: %v", err)
	}
	if err := s.Save("W", WindowStyle{Position: &Vec2{1, 2}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s, err = OpenLayoutStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	got, ok, err := s.Load("W")
	if err != nil || !ok {
		t.Fatalf("Load after reopen = ok %v, err %v", ok, err)
	}
	if *got.Position != (Vec2{1, 2}) {
		t.Errorf("Position = %v, want {1 2}", *got.Position)
	}
}

func TestLayoutStoreClosed(t *testing.T) {
	s := openTestStore(t)
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}

	tests := []struct {
		name string
		call func() error
	}{
		{"Save", func() error { return s.Save("W", WindowStyle{}) }},
		{"Load", func() error { _, _, err := s.Load("W"); return err }},
		{"Delete", func() error { return s.Delete("W") }},
		{"Gwids", func() error { _, err := s.Gwids(); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, ErrClosedStore) {
				t.Errorf("%s after Close = %v, want ErrClosedStore", tt.name, err)
			}
		})
	}
}

func TestGuiSavesAndRestoresLayout(t *testing.T) {
	store := openTestStore(t)
	ui := func(g *Gui) {
		g.Window("W").Position(10, 10).Size(200, 150).Show(func(*Gui) {})
	}

	_, g := newTestGui(t, WithLayoutStore(store))
	g.Run(ui)
	saved, ok, err := store.Load("W")
	if err != nil || !ok {
		t.Fatalf("Load after first tick = ok %v, err %v", ok, err)
	}
	if *saved.Position != (Vec2{10, 10}) || *saved.Size != (Vec2{200, 150}) {
		t.Errorf("saved = %v %v, want {10 10} {200 150}", *saved.Position, *saved.Size)
	}

	w := mustLookup[*Window](t, g, "W", KindWindow)
	w.Node().SetPosition(70, 80)
	g.Run(ui)
	saved, _, _ = store.Load("W")
	if *saved.Position != (Vec2{70, 80}) {
		t.Errorf("saved position = %v after move, want {70 80}", *saved.Position)
	}

	// A fresh Gui seeds the window from the store instead of the builder.
	_, g2 := newTestGui(t, WithLayoutStore(store))
	g2.Run(ui)
	w2 := mustLookup[*Window](t, g2, "W", KindWindow)
	if got := w2.Position(); got != (Vec2{70, 80}) {
		t.Errorf("restored position = %v, want {70 80}", got)
	}
	if got := w2.Node().Size(); got != (Vec2{200, 150}) {
		t.Errorf("restored size = %v, want {200 150}", got)
	}
}

func TestLayoutStoreWrapsDatabaseErrors(t *testing.T) {
	s := openTestStore(t)
	// Close the database underneath the store so bbolt reports the error.
	if err := s.db.Close(); err != nil {
		t.Fatalf("db.Close: %v", err)
	}

	tests := []struct {
		name   string
		prefix string
		call   func() error
	}{
		{"Save", "willowgui: save layout", func() error { return s.Save("W", WindowStyle{}) }},
		{"Load", "willowgui: load layout", func() error { _, _, err := s.Load("W"); return err }},
		{"Delete", "willowgui: delete layout", func() error { return s.Delete("W") }},
		{"Gwids", "willowgui: list layouts", func() error { _, err := s.Gwids(); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if !errors.Is(err, bolt.ErrDatabaseNotOpen) {
				t.Fatalf("%s = %v, want ErrDatabaseNotOpen", tt.name, err)
			}
			if !strings.HasPrefix(err.Error(), tt.prefix) {
				t.Errorf("%s error = %q, want prefix %q", tt.name, err, tt.prefix)
			}
		})
	}
}
