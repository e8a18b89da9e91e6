package genopack

import (
	"testing"
	"time"
)

func TestTimeScan(t *testing.T) {
	unix := time.Date(2021, 6, 15, 10, 30, 0, 0, time.UTC).Unix()

	var fromInt Time
	if err := fromInt.Scan(unix); err != nil {
		t.Fatal(err)
	}
	if fromInt.Time().Unix() != unix {
		t.Errorf("Got %d, expected %d", fromInt.Time().Unix(), unix)
	}

	// Other SQLite tooling writes text timestamps into the same column.
	var fromText Time
	if err := fromText.Scan("2021-06-15 10:30:00"); err != nil {
		t.Fatal(err)
	}
	if fromText.Time().Unix() != unix {
		t.Errorf("Got %d, expected %d", fromText.Time().Unix(), unix)
	}

	var fromBytes Time
	if err := fromBytes.Scan([]byte("2021-06-15 10:30:00")); err != nil {
		t.Fatal(err)
	}
	if fromBytes.Time().Unix() != unix {
		t.Errorf("Got %d, expected %d", fromBytes.Time().Unix(), unix)
	}

	var bad Time
	if err := bad.Scan(3.14); err == nil {
		t.Error("scanning a float should fail")
	}
}
