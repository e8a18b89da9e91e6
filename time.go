package genopack

import (
	"fmt"
	"time"
)

// Time exists to facilitate time parsing from store metadata: the store
// writes unixtime integers, while other SQLite tooling writes text
// timestamps into the same column type.
type Time time.Time

// Time returns the underlying time.Time.
func (t Time) Time() time.Time {
	return time.Time(t)
}

func (t *Time) Scan(v interface{}) error {
	switch which := v.(type) {
	case int64:
		*t = Time(time.Unix(which, 0))
		return nil
	case int:
		*t = Time(time.Unix(int64(which), 0))
		return nil
	case []byte:
		vt, err := time.Parse("2006-01-02 15:04:05", string(which))
		if err != nil {
			return err
		}
		*t = Time(vt)
		return nil
	case string:
		vt, err := time.Parse("2006-01-02 15:04:05", which)
		if err != nil {
			return err
		}
		*t = Time(vt)
		return nil
	}

	return fmt.Errorf("No appropriate type could be found to decode %v", v)
}
