package telegram

// UI texts in English
const (
	greetingText = "👋 I am a life counter bot.\n\n" +
		"Register your birth moment:\n" +
		"/start YYYY-MM-DD HH:MM\n\n" +
		"I will then message you every day with how many days, weeks, months and years you have lived."

	usageText = "Usage: /start YYYY-MM-DD HH:MM\nExample: /start 1990-01-15 08:30"

	helpText = "Commands:\n" +
		"/start YYYY-MM-DD HH:MM — register your birth moment\n" +
		"/info — your current life stats\n" +
		"/help — this help\n\n" +
		"If an access key is configured, pass it first: /start KEY YYYY-MM-DD HH:MM"

	accessDeniedText = "Access denied."

	notRegisteredText = "You are not registered yet. Use /start YYYY-MM-DD HH:MM."

	internalErrText = "Something went wrong. Please try again later."

	scheduleWarnText = "⚠️ Daily notifications could not be scheduled; your registration is saved."

	infoGreeting = "Hello!"

	// registeredFmt: birth moment, daily delivery time.
	registeredFmt = "Birth moment set: %s.\nNotifications will arrive every day at %s."
)
