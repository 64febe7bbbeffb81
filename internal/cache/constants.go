package cache

import "fmt"

// key names definition
const (
	ThemeListKey = "catalog:themes"    // all themes, unfiltered
	ShowListKey  = "catalog:shows"     // all shows with themes
	DomeListKey  = "catalog:domes"     // all domes
	ShowKey      = "catalog:show:%d"   // one show, '%d' is show id
	DomeKey      = "catalog:dome:%d"   // one dome, '%d' is dome id
	ThemeKey     = "catalog:theme:%d"  // one theme, '%d' is theme id
)

func MakeShowKey(showID uint) string {
	return fmt.Sprintf(ShowKey, showID)
}

func MakeDomeKey(domeID uint) string {
	return fmt.Sprintf(DomeKey, domeID)
}

func MakeThemeKey(themeID uint) string {
	return fmt.Sprintf(ThemeKey, themeID)
}
