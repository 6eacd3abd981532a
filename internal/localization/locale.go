package localization

// Language is the closed set of assistant languages.
type Language string

const (
	English Language = "en"
	Italian Language = "it"
)

// Parse coerces an arbitrary language value to a supported Language.
// Anything outside the supported set falls back to English.
func Parse(s string) Language {
	switch Language(s) {
	case English, Italian:
		return Language(s)
	default:
		return English
	}
}

// Locale holds every user-facing string for one language. Keeping them in
// one struct (instead of a string-keyed map) means a missing translation is
// a missing struct field, caught at compile time.
type Locale struct {
	// Sensor context block
	DataHeader    string
	DeviceLabel   string
	NoData        string
	ParseError    string
	InvalidFormat string
	NoReadings    string

	// Field lines, fmt templates
	TemperatureLine string
	HumidityLine    string
	PressureLine    string
	LightLine       string
	NoiseLine       string
	TofLine         string
	PositionLine    string
	TimeLine        string

	// Assistant flow
	UnableToTranscribe string
	RetryPrompt        string
	ServerError        string

	// SystemTemplate embeds the sensor context block (one %s verb).
	SystemTemplate string
}

var locales = map[Language]Locale{
	English: {
		DataHeader:    "PARK SENSOR DATA:",
		DeviceLabel:   "Device %v:",
		NoData:        "(no sensor data provided)",
		ParseError:    "(sensor data could not be parsed)",
		InvalidFormat: "(sensor data is not a JSON array)",
		NoReadings:    "(no sensor readings available)",

		TemperatureLine: "Temperature: %.1f°C",
		HumidityLine:    "Humidity: %.0f%%",
		PressureLine:    "Pressure: %.1f hPa",
		LightLine:       "Light: %.0f lux",
		NoiseLine:       "Noise: %.0f dB",
		TofLine:         "Distance (ToF): %.0f mm",
		PositionLine:    "Position: %.5f, %.5f",
		TimeLine:        "Time: %v",

		UnableToTranscribe: "[unable to transcribe audio]",
		RetryPrompt:        "I could not hear your question clearly. Could you please repeat it?",
		ServerError:        "The assistant is temporarily unavailable. Please try again later.",

		SystemTemplate: `You are a Dual-Mode AI Assistant for a Smart Park.
You may receive questions spoken by voice or typed as text.

GROUNDING DATA (authoritative for park weather questions):
%s

RULES:
- If the user asks about park weather or conditions (temperature, humidity, pressure, light, noise by device): use ONLY the grounding data above.
- If data is missing for a device, say: "I don't have sensor data there, but generally..."
- If the user is chatting or asking general questions: answer normally.
- Keep answers concise and include measurement units.`,
	},
	Italian: {
		DataHeader:    "DATI DEI SENSORI DEL PARCO:",
		DeviceLabel:   "Dispositivo %v:",
		NoData:        "(nessun dato dei sensori fornito)",
		ParseError:    "(impossibile interpretare i dati dei sensori)",
		InvalidFormat: "(i dati dei sensori non sono un array JSON)",
		NoReadings:    "(nessuna lettura dei sensori disponibile)",

		TemperatureLine: "Temperatura: %.1f°C",
		HumidityLine:    "Umidità: %.0f%%",
		PressureLine:    "Pressione: %.1f hPa",
		LightLine:       "Luce: %.0f lux",
		NoiseLine:       "Rumore: %.0f dB",
		TofLine:         "Distanza (ToF): %.0f mm",
		PositionLine:    "Posizione: %.5f, %.5f",
		TimeLine:        "Ora: %v",

		UnableToTranscribe: "[impossibile trascrivere l'audio]",
		RetryPrompt:        "Non ho capito bene la tua domanda. Puoi ripeterla per favore?",
		ServerError:        "L'assistente non è al momento disponibile. Riprova più tardi.",

		SystemTemplate: `Sei un assistente AI a doppia modalità per uno Smart Park.
Puoi ricevere domande vocali o scritte.

DATI DI RIFERIMENTO (autorevoli per le domande sul meteo del parco):
%s

REGOLE:
- Se l'utente chiede del meteo o delle condizioni del parco (temperatura, umidità, pressione, luce, rumore per dispositivo): usa SOLO i dati di riferimento sopra.
- Se mancano dati per un dispositivo, rispondi: "Non ho dati dei sensori lì, ma in generale..."
- Se l'utente conversa o fa domande generiche: rispondi normalmente.
- Mantieni le risposte concise e includi le unità di misura.`,
	},
}

// For returns the Locale of a language. The map is keyed by the closed
// Language set, so lookups never miss for parsed values.
func For(lang Language) Locale {
	if loc, ok := locales[lang]; ok {
		return loc
	}
	return locales[English]
}
