// Package message renders notification templates. Templates carry verbatim
// bracketed tokens such as [[RECIPIENT_FIRSTNAME]] which are substituted
// literally; rendering is pure and side-effect free.
package message

import (
	"fmt"
	"strings"
	"time"
)

// Token names recognized across the template set.
const (
	TokenRecipientFirstname    = "RECIPIENT_FIRSTNAME"
	TokenBirthdayCelebrant     = "BIRTH_DAY_CELEBRANT"
	TokenBirthDate             = "BIRTH_DATE"
	TokenAnniversaryCelebrant  = "ANNIVERSARY_CELEBRANT"
	TokenAnniversaryDate       = "ANNIVERSARY_DATE"
	TokenBirthdayCelebrants    = "BIRTHDAY_CELEBRANTS"
	TokenAnniversaryCelebrants = "ANNIVERSARY_CELEBRANTS"
	TokenAccountDueCompanies   = "ACCOUNT_DUE_COMPANIES"
	TokenReturnsDueCompanies   = "RETURNS_DUE_COMPANIES"
	TokenAppName               = "APP_NAME"
)

// Render substitutes every occurrence of each token in tokens into tpl.
// Token names are wrapped as [[NAME]] in the template. Tokens present in the
// template but absent from the mapping are left verbatim.
func Render(tpl string, tokens map[string]string) string {
	out := tpl
	for name, value := range tokens {
		out = strings.ReplaceAll(out, "[["+name+"]]", value)
	}
	return out
}

// JoinNames renders a comma-joined name list, falling back to "None" when
// the list is empty.
func JoinNames(names []string) string {
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, ", ")
}

// FormatEventDate renders a celebration date as "Monday, 2nd January".
func FormatEventDate(t time.Time) string {
	return fmt.Sprintf("%s, %s %s", t.Weekday(), ordinal(t.Day()), t.Month())
}

func ordinal(day int) string {
	suffix := "th"
	if day%100 < 11 || day%100 > 13 {
		switch day % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", day, suffix)
}
