package ledger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zaptest"

	"github.com/bigredeye/gradebook/internal/models"
)

func TestAppendAndRead(t *testing.T) {
	ledger := NewLedger(t.TempDir(), zaptest.NewLogger(t))

	for _, row := range []struct {
		student string
		grade   int
	}{{"S1", 80}, {"S1", 90}, {"S2", 70}} {
		if err := ledger.Append("CS101", row.student, row.grade); err != nil {
			t.Fatal("Failed to append grade:", err)
		}
	}

	body, err := os.ReadFile(ledger.Path("CS101"))
	if err != nil {
		t.Fatal(err)
	}
	if string(body) != "S1,80\nS1,90\nS2,70\n" {
		t.Fatalf("Unexpected ledger content: %q", body)
	}

	entries, err := ledger.ReadAll("CS101")
	if err != nil {
		t.Fatal("Failed to read ledger:", err)
	}
	expected := []models.GradeEntry{
		{StudentCode: "S1", Grade: 80},
		{StudentCode: "S1", Grade: 90},
		{StudentCode: "S2", Grade: 70},
	}
	if diff := cmp.Diff(expected, entries); diff != "" {
		t.Fatalf("Unexpected entries (-want +got):\n%s", diff)
	}
}

func TestReadMissingCreatesLedger(t *testing.T) {
	dir := t.TempDir()
	ledger := NewLedger(dir, zaptest.NewLogger(t))

	exists, err := ledger.Exists("MATH1")
	if err != nil || exists {
		t.Fatalf("Ledger must not exist yet: %v, %v", exists, err)
	}

	first, err := ledger.ReadAll("MATH1")
	if err != nil {
		t.Fatal("Failed to read missing ledger:", err)
	}
	if len(first) != 0 {
		t.Fatalf("Expected no entries, got %+v", first)
	}

	info, err := os.Stat(filepath.Join(dir, "MATH1.csv"))
	if err != nil {
		t.Fatal("Ledger was not created:", err)
	}
	if info.Size() != 0 {
		t.Fatalf("Created ledger is not empty: %d bytes", info.Size())
	}

	second, err := ledger.ReadAll("MATH1")
	if err != nil {
		t.Fatal(err)
	}
	if !cmp.Equal(first, second) {
		t.Fatalf("Repeated reads differ: %+v vs %+v", first, second)
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 {
		t.Fatalf("Expected exactly one ledger file, got %d", len(files))
	}
}

func TestEnsureCreatedKeepsContent(t *testing.T) {
	ledger := NewLedger(t.TempDir(), zaptest.NewLogger(t))
	if err := ledger.Append("CS101", "S1", 80); err != nil {
		t.Fatal(err)
	}

	created, err := ledger.EnsureCreated("CS101")
	if err != nil {
		t.Fatal(err)
	}
	if created {
		t.Fatal("Existing ledger reported as created")
	}

	entries, err := ledger.ReadAll("CS101")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("Ledger content lost: %+v", entries)
	}
}

func TestRegistrations(t *testing.T) {
	ledger := NewLedger(t.TempDir(), zaptest.NewLogger(t))
	for _, student := range []string{"S1", "S1", "S2"} {
		if err := ledger.Append("CS101", student, 50); err != nil {
			t.Fatal(err)
		}
	}

	count, err := ledger.Registrations("CS101")
	if err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Fatalf("Invalid registrations: %d, expected: 3", count)
	}

	count, err = ledger.Registrations("MATH1")
	if err != nil || count != 0 {
		t.Fatalf("Missing ledger must count as zero: %d, %v", count, err)
	}
	exists, err := ledger.Exists("MATH1")
	if err != nil || exists {
		t.Fatal("Counting registrations must not create a ledger")
	}
}

func TestMalformedRows(t *testing.T) {
	dir := t.TempDir()
	ledger := NewLedger(dir, zaptest.NewLogger(t))

	if err := os.WriteFile(ledger.Path("BAD"), []byte("S1,eighty\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ledger.ReadAll("BAD"); err == nil {
		t.Fatal("Expected an error for a non-integer grade")
	}

	if err := os.WriteFile(ledger.Path("SHORT"), []byte("S1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ledger.ReadAll("SHORT"); err == nil {
		t.Fatal("Expected an error for a row without grade")
	}

	if err := os.WriteFile(ledger.Path("SPACED"), []byte("S1, 75\n"), 0644); err != nil {
		t.Fatal(err)
	}
	entries, err := ledger.ReadAll("SPACED")
	if err != nil {
		t.Fatal(err)
	}
	if entries[0].Grade != 75 {
		t.Fatalf("Invalid grade: %d, expected: 75", entries[0].Grade)
	}
}
