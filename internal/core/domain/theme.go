package domain

// ThemePreference is the operator's stored choice.
type ThemePreference string

const (
	ThemeLight  ThemePreference = "light"
	ThemeDark   ThemePreference = "dark"
	ThemeSystem ThemePreference = "system"
)

// ParseThemePreference maps a stored value onto a valid preference.
// Anything unrecognized (including a corrupt store value) is ThemeSystem.
func ParseThemePreference(s string) ThemePreference {
	switch ThemePreference(s) {
	case ThemeLight, ThemeDark:
		return ThemePreference(s)
	default:
		return ThemeSystem
	}
}

// ResolvedTheme is the concrete value applied to the presentation layer.
type ResolvedTheme string

const (
	ResolvedLight ResolvedTheme = "light"
	ResolvedDark  ResolvedTheme = "dark"
)

// Resolve derives the applied theme from a preference and the current OS
// color-scheme signal.
func Resolve(pref ThemePreference, system ResolvedTheme) ResolvedTheme {
	switch pref {
	case ThemeLight:
		return ResolvedLight
	case ThemeDark:
		return ResolvedDark
	default:
		return system
	}
}
