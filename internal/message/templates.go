package message

// Templates is the configurable template set used by the dispatcher. Each
// channel keeps its own variant; email bodies are HTML, chat bodies plain
// text.
type Templates struct {
	BirthdayEmail        string
	BirthdayChat         string
	AnniversaryEmail     string
	AnniversaryChat      string
	CelebrationsEmail    string
	CelebrationsChat     string
	CompanyEventsEmail   string
	BirthdaySubject      string
	AnniversarySubject   string
	CelebrationsSubject  string
	CompanyEventsSubject string
}

// Defaults returns the stock template set.
func Defaults() Templates {
	return Templates{
		BirthdayEmail:        birthdayEmail,
		BirthdayChat:         birthdayChat,
		AnniversaryEmail:     anniversaryEmail,
		AnniversaryChat:      anniversaryChat,
		CelebrationsEmail:    celebrationsEmail,
		CelebrationsChat:     celebrationsChat,
		CompanyEventsEmail:   companyEventsEmail,
		BirthdaySubject:      "Birthday Reminder",
		AnniversarySubject:   "Anniversary Reminder",
		CelebrationsSubject:  "Today's Celebrations Reminder 🎉",
		CompanyEventsSubject: "Company Events Reminder 🗣️",
	}
}

const birthdayEmail = `<div>
  <h1>BIRTHDAY REMINDER 🎉</h1>
  <p>Hi [[RECIPIENT_FIRSTNAME]], 👋🏽</p>
  <p>This is a friendly birthday reminder.</p>
  <p>Today, <b>[[BIRTH_DATE]]</b> is <b><i>[[BIRTH_DAY_CELEBRANT]]'s</i></b> birthday!🎉</p>
  <p>Best regards,</p>
  <p>[[APP_NAME]] Team</p>
</div>`

const anniversaryEmail = `<div>
  <h1>ANNIVERSARY REMINDER 🎊</h1>
  <p>Hi [[RECIPIENT_FIRSTNAME]], 👋🏽</p>
  <p>This is a friendly wedding anniversary reminder.</p>
  <p>Today, <b>[[ANNIVERSARY_DATE]]</b> is <b><i>[[ANNIVERSARY_CELEBRANT]]'s</i></b> wedding anniversary!🎊</p>
  <p>Best regards,</p>
  <p>[[APP_NAME]] Team</p>
</div>`

const birthdayChat = `Hi [[RECIPIENT_FIRSTNAME]], it is [[BIRTH_DAY_CELEBRANT]]'s birthday today! 🎉`

const anniversaryChat = `Hi [[RECIPIENT_FIRSTNAME]], it is [[ANNIVERSARY_CELEBRANT]]'s wedding anniversary today!🎊`

const celebrationsEmail = `<div>
  <h1> CELEBRATIONS REMINDER 🎉</h1>
  <p>Hi [[RECIPIENT_FIRSTNAME]], 👋🏽</p>
  <p>This is a friendly reminder for today's celebrations.</p>
  <h2>Today's Birthdays 🎉</h2>
  <p>[[BIRTHDAY_CELEBRANTS]]</p>
  <p></p>
  <h2>Today's Wedding Anniversaries 🎊</h2>
  <p>[[ANNIVERSARY_CELEBRANTS]]</p>
  <p></p>
  <p>Best regards,</p>
  <p>[[APP_NAME]] Team</p>
</div>`

const celebrationsChat = `Hi [[RECIPIENT_FIRSTNAME]],
  here are today's celebrations!
  Birthdays🎉:  [[BIRTHDAY_CELEBRANTS]]
  Anniversaries🎊: [[ANNIVERSARY_CELEBRANTS]]`

const companyEventsEmail = `<div>
  <h1> COMPANY EVENT REMINDER 🗣️</h1>
  <p>Hi [[RECIPIENT_FIRSTNAME]], 👋🏽</p>
  <p>This is a friendly reminder for company events due in the next 30 days.</p>
  <h2>Upcoming Due Accounts</h2>
  <p>[[ACCOUNT_DUE_COMPANIES]]</p>
  <p></p>
  <h2>Upcoming Due Returns</h2>
  <p>[[RETURNS_DUE_COMPANIES]]</p>
  <p></p>
  <p>Best regards,</p>
  <p>[[APP_NAME]] Team</p>
</div>`
