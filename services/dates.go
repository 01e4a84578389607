package services

import (
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

var dateParser *when.Parser

func init() {
	dateParser = when.New(nil)
	dateParser.Add(en.All...)
	dateParser.Add(common.All...)
}

// ParseDateFromMessage resolves a natural-language date expression inside
// the message ("yesterday", "last monday", "on july 5"). When nothing
// parses the current time is returned; absence of a date is not an error.
func ParseDateFromMessage(message string) time.Time {
	return ParseDateFromMessageAt(message, time.Now())
}

// ParseDateFromMessageAt is ParseDateFromMessage with an explicit "now".
func ParseDateFromMessageAt(message string, now time.Time) time.Time {
	result, err := dateParser.Parse(message, now)
	if err != nil || result == nil {
		return now
	}
	return result.Time
}
