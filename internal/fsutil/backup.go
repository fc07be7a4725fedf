package fsutil

import (
	"fmt"
	"time"
)

const backupTimeFormat = "2006-01-02-15-04-05"

// BackupName appends the nyoom backup suffix stamped with now to name, e.g.
// "user.js" becomes "user.js.nyoom-2024-03-05-07-08-09.bak"
func BackupName(name string, now time.Time) string {
	return fmt.Sprintf("%s.nyoom-%s.bak", name, now.Format(backupTimeFormat))
}
