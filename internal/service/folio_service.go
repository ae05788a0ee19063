package service

import (
	"fmt"
	"math/rand"
	"time"
)

// folioPrefix is the literal prefix operators grep mailboxes for; it appears
// in email subjects and bodies only, never in client responses.
const folioPrefix = "MD"

// timestampLayout matches the millisecond ISO-8601 folios the feedback
// channel has always produced.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// GenerateFolio produces a reference for a general form submission, e.g.
// MD-OR-2026-004217. The random part is a human-correlation aid, not a
// uniqueness guarantee.
func GenerateFolio(formKey string) string {
	return folioAt(formKey, time.Now().Year(), rand.Intn(1_000_000))
}

func folioAt(formKey string, year, rnd int) string {
	return fmt.Sprintf("%s-%s-%d-%06d", folioPrefix, formKey, year, rnd)
}

// TimestampFolio produces the feedback channel's folio: the submission
// instant in UTC.
func TimestampFolio() string {
	return time.Now().UTC().Format(timestampLayout)
}
