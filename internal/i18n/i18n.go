// ABOUTME: English/Malayalam message catalog for user-facing CLI output
// ABOUTME: Unknown keys and languages fall back to English rather than failing

package i18n

// Lang is a supported display language.
type Lang string

const (
	English   Lang = "en"
	Malayalam Lang = "ml"
)

// Message keys.
const (
	KeyLoginSuccess       = "login_success"
	KeySignupSuccess      = "signup_success"
	KeyLogoutSuccess      = "logout_success"
	KeyNotSignedIn        = "not_signed_in"
	KeySessionExpiresIn   = "session_expires_in"
	KeySessionExpired     = "session_expired"
	KeyProfileMissing     = "profile_missing"
	KeyProfileUpdated     = "profile_updated"
	KeyActivityCreated    = "activity_created"
	KeyActivityCompleted  = "activity_completed"
	KeyNoActivities       = "no_activities"
	KeyFarmCreated        = "farm_created"
	KeyWeatherUnavailable = "weather_unavailable"
	KeyContinueNormal     = "continue_normal"
	KeyAlertHighTemp      = "alert_high_temp"
	KeyAlertHighHumidity  = "alert_high_humidity"
	KeyAlertRain          = "alert_rain"
	KeyAlertRabiSeason    = "alert_rabi_season"
)

var catalog = map[string]map[Lang]string{
	KeyLoginSuccess: {
		English:   "Signed in successfully.",
		Malayalam: "വിജയകരമായി സൈൻ ഇൻ ചെയ്തു.",
	},
	KeySignupSuccess: {
		English:   "Account created. You are now signed in.",
		Malayalam: "അക്കൗണ്ട് സൃഷ്ടിച്ചു. നിങ്ങൾ ഇപ്പോൾ സൈൻ ഇൻ ചെയ്തിരിക്കുന്നു.",
	},
	KeyLogoutSuccess: {
		English:   "Signed out.",
		Malayalam: "സൈൻ ഔട്ട് ചെയ്തു.",
	},
	KeyNotSignedIn: {
		English:   "Not signed in. Run 'krishi login' first.",
		Malayalam: "സൈൻ ഇൻ ചെയ്തിട്ടില്ല. ആദ്യം 'krishi login' പ്രവർത്തിപ്പിക്കുക.",
	},
	KeySessionExpiresIn: {
		English:   "Session expires in %d minutes.",
		Malayalam: "സെഷൻ %d മിനിറ്റിനുള്ളിൽ കാലഹരണപ്പെടും.",
	},
	KeySessionExpired: {
		English:   "Session expired. Please sign in again.",
		Malayalam: "സെഷൻ കാലഹരണപ്പെട്ടു. ദയവായി വീണ്ടും സൈൻ ഇൻ ചെയ്യുക.",
	},
	KeyProfileMissing: {
		English:   "No profile yet. Run 'krishi profile set' to complete onboarding.",
		Malayalam: "പ്രൊഫൈൽ ഇതുവരെയില്ല. 'krishi profile set' ഉപയോഗിച്ച് പൂർത്തിയാക്കുക.",
	},
	KeyProfileUpdated: {
		English:   "Profile updated.",
		Malayalam: "പ്രൊഫൈൽ പുതുക്കി.",
	},
	KeyActivityCreated: {
		English:   "Activity scheduled.",
		Malayalam: "പ്രവർത്തനം ഷെഡ്യൂൾ ചെയ്തു.",
	},
	KeyActivityCompleted: {
		English:   "Activity marked as done.",
		Malayalam: "പ്രവർത്തനം പൂർത്തിയായതായി അടയാളപ്പെടുത്തി.",
	},
	KeyNoActivities: {
		English:   "No activities found.",
		Malayalam: "പ്രവർത്തനങ്ങളൊന്നും കണ്ടെത്തിയില്ല.",
	},
	KeyFarmCreated: {
		English:   "Farm registered.",
		Malayalam: "ഫാം രജിസ്റ്റർ ചെയ്തു.",
	},
	KeyWeatherUnavailable: {
		English:   "Weather data unavailable",
		Malayalam: "കാലാവസ്ഥാ വിവരങ്ങൾ ലഭിക്കുന്നില്ല",
	},
	KeyContinueNormal: {
		English:   "Continue normal farming activities",
		Malayalam: "സാധാരണ കൃഷി പ്രവർത്തനങ്ങൾ തുടരുക",
	},
	KeyAlertHighTemp: {
		English:   "High temperature - Increase crop irrigation",
		Malayalam: "ഉയർന്ന താപനില - വിളകളുടെ ജലസേചനം വർദ്ധിപ്പിക്കുക",
	},
	KeyAlertHighHumidity: {
		English:   "High humidity - Increased pest activity possible",
		Malayalam: "ഉയർന്ന ആർദ്രത - കീടങ്ങളുടെ പ്രവർത്തനം വർദ്ധിക്കാം",
	},
	KeyAlertRain: {
		English:   "Rain expected - Postpone harvesting activities",
		Malayalam: "മഴ പ്രതീക്ഷിക്കുന്നു - വിളവെടുപ്പ് മാറ്റിവയ്ക്കുക",
	},
	KeyAlertRabiSeason: {
		English:   "Ideal time for Rabi crop planning",
		Malayalam: "റാബി വിളകൾ നടുന്നതിനുള്ള അനുയോജ്യ സമയം",
	},
}

// ParseLang returns the Lang for a code, defaulting to English.
func ParseLang(code string) Lang {
	if code == string(Malayalam) {
		return Malayalam
	}
	return English
}

// T returns the message for key in lang, falling back to English, then to the
// key itself so missing entries are visible instead of blank.
func T(lang Lang, key string) string {
	msgs, ok := catalog[key]
	if !ok {
		return key
	}
	if msg, ok := msgs[lang]; ok {
		return msg
	}
	return msgs[English]
}
