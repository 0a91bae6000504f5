package notify

import (
	"fmt"
	"time"
)

// Message builders for the three notified state changes. The receiving
// endpoint renders the text verbatim, so the format is part of the
// external contract.

func StartMessage(at time.Time) string {
	return fmt.Sprintf("[Start] %s", at.Format("15:04"))
}

func StopMessage(at time.Time, memo string) string {
	return fmt.Sprintf("[Stop] %s\n%s", at.Format("15:04"), memo)
}

func MemoMessage(text string) string {
	return fmt.Sprintf("[Memo] %s", text)
}
