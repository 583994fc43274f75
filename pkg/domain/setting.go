package domain

// setting keys used by the settings manager
const (
	SettingFormat       = "format"
	SettingPlaceholders = "placeholders"
	SettingFilters      = "filters"
)
