package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/habitflow/internal/constants"
	"github.com/julianstephens/habitflow/internal/models"
	"github.com/julianstephens/habitflow/internal/storage/sqlite"
)

func setupTestDB(t *testing.T, habitIDs ...string) string {
	dbPath := filepath.Join(t.TempDir(), constants.DatabaseFileName)

	store, err := sqlite.Open(dbPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	defer store.Close()

	for _, id := range habitIDs {
		err := store.AddHabit(models.Habit{
			ID: id, Name: "Habit " + id, Icon: "⭐", Color: "#fff",
			Frequency: models.FrequencyDaily, TargetCount: 1, CreatedAt: time.Now(),
		})
		if err != nil {
			t.Fatalf("failed to insert test habit: %v", err)
		}
	}

	return dbPath
}

func countHabits(t *testing.T, path string) int {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM habits").Scan(&count); err != nil {
		t.Fatalf("failed to count habits: %v", err)
	}
	return count
}

// fakeClock advances one second per call
func fakeClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		t := current
		current = current.Add(time.Second)
		return t
	}
}

func TestCreate(t *testing.T) {
	dbPath := setupTestDB(t, "h1", "h2")

	mgr := NewManager(dbPath)
	backupPath, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if filepath.Dir(backupPath) != filepath.Join(filepath.Dir(dbPath), "backups") {
		t.Errorf("backup written outside the backups directory: %s", backupPath)
	}
	if got := countHabits(t, backupPath); got != 2 {
		t.Errorf("expected 2 habits in backup, got %d", got)
	}
}

func TestCreateWithoutDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), constants.DatabaseFileName))

	if _, err := mgr.Create(); err == nil {
		t.Fatal("expected an error when the database does not exist")
	}
}

func TestUniqueFilenames(t *testing.T) {
	dbPath := setupTestDB(t)

	mgr := NewManager(dbPath)
	fixed := time.Date(2024, 3, 1, 9, 30, 0, 0, time.Local)
	mgr.now = func() time.Time { return fixed }

	want := []string{
		"habitflow-20240301-0930.db",
		"habitflow-20240301-093000.db",
		"habitflow-20240301-093000-1.db",
		"habitflow-20240301-093000-2.db",
	}
	for i, name := range want {
		path, err := mgr.Create()
		if err != nil {
			t.Fatalf("Create #%d failed: %v", i, err)
		}
		if filepath.Base(path) != name {
			t.Errorf("backup %d: expected %s, got %s", i, name, filepath.Base(path))
		}
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != len(want) {
		t.Fatalf("expected %d backups, got %d", len(want), len(backups))
	}
	for i := range backups {
		expected := want[len(want)-1-i]
		if filepath.Base(backups[i].Path) != expected {
			t.Errorf("position %d: expected %s, got %s", i, expected, filepath.Base(backups[i].Path))
		}
	}
}

func TestRotation(t *testing.T) {
	dbPath := setupTestDB(t)

	mgr := NewManager(dbPath)
	mgr.now = fakeClock(time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local))

	var newest string
	for i := 0; i < constants.MaxBackups+5; i++ {
		p, err := mgr.Create()
		if err != nil {
			t.Fatalf("Create #%d failed: %v", i, err)
		}
		newest = p
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != constants.MaxBackups {
		t.Errorf("expected %d backups after rotation, got %d", constants.MaxBackups, len(backups))
	}
	if backups[0].Path != newest {
		t.Errorf("expected newest backup %s first, got %s", newest, backups[0].Path)
	}
	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Errorf("backups are not sorted: %d is newer than %d", i, i-1)
		}
	}
}

func TestListIgnoresForeignFiles(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List on missing directory failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}

	if err := os.MkdirAll(mgr.Dir(), 0700); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"notes.txt", "habitflow-latest.db", "other-20240101-1200.db"} {
		if err := os.WriteFile(filepath.Join(mgr.Dir(), name), []byte("x"), 0600); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := mgr.Create(); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	backups, err = mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != 1 {
		t.Errorf("expected only the real backup, got %d entries", len(backups))
	}
}

func TestParseName(t *testing.T) {
	tests := []struct {
		name    string
		ok      bool
		wantSeq int
	}{
		{"habitflow-20240301-0930.db", true, 0},
		{"habitflow-20240301-093015.db", true, 1},
		{"habitflow-20240301-093015-3.db", true, 5},
		{"habitflow-20240301-0930-x.db", false, 0},
		{"habitflow-2024.db", false, 0},
		{"other-20240301-0930.db", false, 0},
		{"habitflow-20240301-0930.sqlite", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, seq, ok := parseName(tt.name)
			if ok != tt.ok {
				t.Fatalf("parseName(%q) ok = %v, want %v", tt.name, ok, tt.ok)
			}
			if ok && seq != tt.wantSeq {
				t.Errorf("parseName(%q) seq = %d, want %d", tt.name, seq, tt.wantSeq)
			}
		})
	}
}

func TestRestore(t *testing.T) {
	dbPath := setupTestDB(t, "h1")
	mgr := NewManager(dbPath)
	mgr.now = fakeClock(time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local))

	backupPath, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	store, err := sqlite.Open(dbPath)
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	if err := store.DeleteHabit("h1"); err != nil {
		t.Fatalf("DeleteHabit failed: %v", err)
	}
	store.Close()

	if got := countHabits(t, dbPath); got != 0 {
		t.Fatalf("expected 0 habits before restore, got %d", got)
	}

	previous, err := mgr.Restore(backupPath)
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if got := countHabits(t, dbPath); got != 1 {
		t.Errorf("expected 1 habit after restore, got %d", got)
	}

	if previous == "" {
		t.Fatal("expected a snapshot of the pre-restore database")
	}
	if got := countHabits(t, previous); got != 0 {
		t.Errorf("pre-restore snapshot should hold the emptied database, got %d habits", got)
	}
}

func TestRestoreRejectsInvalidFiles(t *testing.T) {
	dbPath := setupTestDB(t, "h1")
	mgr := NewManager(dbPath)

	if _, err := mgr.Restore(filepath.Join(t.TempDir(), "missing.db")); err == nil {
		t.Error("expected an error for a missing backup file")
	}

	corrupt := filepath.Join(t.TempDir(), "corrupt.db")
	if err := os.WriteFile(corrupt, []byte("this is not a sqlite database"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := mgr.Restore(corrupt); err == nil {
		t.Error("expected an error for a corrupted backup file")
	}

	if got := countHabits(t, dbPath); got != 1 {
		t.Errorf("database should be untouched after failed restores, got %d habits", got)
	}
}

func TestVerify(t *testing.T) {
	dbPath := setupTestDB(t)
	if err := Verify(dbPath); err != nil {
		t.Errorf("Verify failed on a valid database: %v", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.db")
	if err := os.WriteFile(bad, []byte("garbage garbage garbage"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := Verify(bad); err == nil {
		t.Error("Verify should fail on a non-database file")
	}
}
