package export

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/willsoar-boundare/working-time-around/internal/domain"
)

// MailtoURI builds a mailto: link addressed to address, with the
// month's date range as subject and the given CSV lines as body.
// Values are percent-encoded; spaces use %20 rather than '+' since
// mail clients do not apply form decoding.
func MailtoURI(address string, firstDay time.Time, lines []string) string {
	first := domain.FirstOfMonth(firstDay)
	last := first.AddDate(0, 0, domain.DaysInMonth(first)-1)

	subject := fmt.Sprintf("Working time %s - %s",
		first.Format("2006-01-02"), last.Format("2006-01-02"))

	q := url.Values{}
	q.Set("subject", subject)
	q.Set("body", strings.Join(lines, "\n"))

	u := url.URL{
		Scheme:   "mailto",
		Opaque:   address,
		RawQuery: strings.ReplaceAll(q.Encode(), "+", "%20"),
	}
	return u.String()
}
