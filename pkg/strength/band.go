package strength

// Severity mirrors the contextual colour names of the strength bar.
type Severity string

const (
	SeverityDanger  Severity = "danger"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
	SeverityPrimary Severity = "primary"
	SeveritySuccess Severity = "success"
)

// Band classifies a score for display.
type Band struct {
	Label    string
	Severity Severity
}

// IdleLabel is shown before anything has been typed or after a reset.
const IdleLabel = "Password strength"

// BandFor maps a score onto one of the five bands.
func BandFor(score int) Band {
	switch {
	case score <= 20:
		return Band{Label: "Very Weak", Severity: SeverityDanger}
	case score <= 40:
		return Band{Label: "Weak", Severity: SeverityWarning}
	case score <= 60:
		return Band{Label: "Fair", Severity: SeverityInfo}
	case score <= 80:
		return Band{Label: "Good", Severity: SeverityPrimary}
	default:
		return Band{Label: "Strong", Severity: SeveritySuccess}
	}
}
